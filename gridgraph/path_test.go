package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazerunner/gridgraph"
)

// openAll connects every neighbor pair in both directions.
func openAll(g *gridgraph.Graph) {
	for _, a := range g.Coordinates() {
		for _, b := range g.Neighbors(a) {
			g.AddConnection(a, b)
		}
	}
}

func TestShortestPath_OpenGrid(t *testing.T) {
	g, err := gridgraph.New(4)
	require.NoError(t, err)
	openAll(g)

	path, err := g.ShortestPath(xy{0, 0}, xy{3, 2})
	require.NoError(t, err)
	assert.Len(t, path, 6)
	assert.Equal(t, xy{0, 0}, path[0])
	assert.Equal(t, xy{3, 2}, path[len(path)-1])
	for i := 1; i < len(path); i++ {
		assert.True(t, g.IsConnected(path[i-1], path[i]), "step %d", i)
	}
}

// TestShortestPath_Corridor forces a detour through a serpentine corridor.
//
//	+--+--+--+
//	|        |
//	+--+--+  +
//	|        |
//	+  +--+--+
//	|        |
//	+--+--+--+
func TestShortestPath_Corridor(t *testing.T) {
	g, err := gridgraph.New(3)
	require.NoError(t, err)
	route := []xy{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {1, 1}, {0, 1}, {0, 2}, {1, 2}, {2, 2}}
	for i := 1; i < len(route); i++ {
		g.AddConnection(route[i-1], route[i])
		g.AddConnection(route[i], route[i-1])
	}

	path, err := g.ShortestPath(xy{0, 0}, xy{2, 2})
	require.NoError(t, err)
	assert.Equal(t, route, path)
}

func TestShortestPath_SameCell(t *testing.T) {
	g, err := gridgraph.New(2)
	require.NoError(t, err)

	path, err := g.ShortestPath(xy{1, 1}, xy{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []xy{{1, 1}}, path)
}

func TestShortestPath_Errors(t *testing.T) {
	g, err := gridgraph.New(3)
	require.NoError(t, err)
	g.AddConnection(xy{0, 0}, xy{1, 0})
	g.AddConnection(xy{1, 0}, xy{0, 0})

	_, err = g.ShortestPath(xy{0, 0}, xy{2, 2})
	assert.ErrorIs(t, err, gridgraph.ErrNoPath)

	_, err = g.ShortestPath(xy{-1, 0}, xy{2, 2})
	assert.ErrorIs(t, err, gridgraph.ErrCoordinateOutOfRange)
	_, err = g.ShortestPath(xy{0, 0}, xy{0, 3})
	assert.ErrorIs(t, err, gridgraph.ErrCoordinateOutOfRange)
}

// TestShortestPath_DirectedOnly: BFS follows connections in their stored
// direction only.
func TestShortestPath_DirectedOnly(t *testing.T) {
	g, err := gridgraph.New(2)
	require.NoError(t, err)
	g.AddConnection(xy{0, 0}, xy{1, 0})

	_, err = g.ShortestPath(xy{0, 0}, xy{1, 0})
	assert.NoError(t, err)
	_, err = g.ShortestPath(xy{1, 0}, xy{0, 0})
	assert.ErrorIs(t, err, gridgraph.ErrNoPath)
}
