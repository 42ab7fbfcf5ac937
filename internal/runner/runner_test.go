package runner_test

import (
	"math/rand"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazerunner/internal/runner"
)

// seed42Maze is the 4×4 maze carved by a stream seeded with 42.
const seed42Maze = "" +
	"+--+--+--+--+\n" +
	"|  |        |\n" +
	"+  +  +  +  +\n" +
	"|  |  |  |  |\n" +
	"+  +  +  +  +\n" +
	"|  |  |  |  |\n" +
	"+  +--+  +  +\n" +
	"|        |  |\n" +
	"+--+--+--+--+\n"

func smallConfig() runner.Config {
	cfg := runner.DefaultConfig()
	cfg.Size = 4

	return *cfg
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.Size = -2
	r, err := runner.New(cfg)
	assert.Nil(t, r)
	assert.ErrorIs(t, err, runner.ErrInvalidConfig)
}

func TestNew_Initial(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	r, err := runner.New(smallConfig(), runner.WithLogger(logger))
	require.NoError(t, err)

	assert.Equal(t, runner.PhaseCarving, r.Phase())
	assert.Equal(t, 4, r.Graph().Size())
	assert.Same(t, r.Graph(), r.Carver().Graph())
	assert.False(t, r.Finder().Initialized())
	assert.Zero(t, r.Searches())
	assert.Equal(t, smallConfig(), r.Config())
}

// TestUpdate_Lifecycle walks one carve and one search, checking the
// pacing rules and the structured log entries.
func TestUpdate_Lifecycle(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	r, err := runner.New(smallConfig(),
		runner.WithRand(rand.New(rand.NewSource(42))),
		runner.WithLogger(logger))
	require.NoError(t, err)

	// 31 carver calls fit in one tick of 100.
	r.Update(1.0 / 60)
	assert.Equal(t, runner.PhaseIdle, r.Phase())
	assert.Equal(t, seed42Maze, r.Graph().String())
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "maze carved", hook.LastEntry().Message)
	assert.Equal(t, 4, hook.LastEntry().Data["size"])
	assert.Equal(t, 31, hook.LastEntry().Data["steps"])

	// The pause must be exceeded before a search starts.
	r.Update(0.5)
	r.Update(0.6)
	assert.Equal(t, runner.PhaseIdle, r.Phase())
	r.Update(0)
	require.Equal(t, runner.PhaseSearching, r.Phase())
	assert.Equal(t, "search started", hook.LastEntry().Message)
	assert.True(t, r.Graph().IsValidCoordinate(r.Finder().Start()))
	assert.True(t, r.Graph().IsValidCoordinate(r.Finder().Goal()))

	ticks := 0
	for r.Phase() == runner.PhaseSearching {
		r.Update(1.0 / 60)
		ticks++
		require.LessOrEqual(t, ticks, 16, "search must end within size² steps")
	}
	assert.Equal(t, 1, r.Searches())
	assert.True(t, r.Finder().Found(), "every pair is connected in a perfect maze")

	want, err := r.Graph().ShortestPath(r.Finder().Start(), r.Finder().Goal())
	require.NoError(t, err)
	last := hook.LastEntry()
	assert.Equal(t, "search finished", last.Message)
	assert.Equal(t, true, last.Data["found"])
	assert.Equal(t, len(want), last.Data["length"])
	assert.Len(t, hook.AllEntries(), 3)
}

// TestUpdate_SearchStepsPerTick checks that each tick spends at most the
// configured number of A* steps.
func TestUpdate_SearchStepsPerTick(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	cfg := smallConfig()
	cfg.Size = 8
	cfg.SearchStepsPerTick = 2
	cfg.SearchPause = 0
	r, err := runner.New(cfg, runner.WithLogger(logger))
	require.NoError(t, err)

	r.Update(0)
	require.Equal(t, runner.PhaseCarving, r.Phase(), "127 carver calls need two ticks")
	r.Update(0)
	require.Equal(t, runner.PhaseIdle, r.Phase())
	r.Update(0.1)
	r.Update(0)
	require.True(t, r.Finder().Initialized())

	prev := 0
	for r.Phase() == runner.PhaseSearching {
		r.Update(0)
		assert.LessOrEqual(t, r.Finder().Steps()-prev, 2)
		prev = r.Finder().Steps()
	}
}

func TestReset(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	r, err := runner.New(smallConfig(), runner.WithRand(rand.New(rand.NewSource(7))), runner.WithLogger(logger))
	require.NoError(t, err)
	for r.Searches() == 0 {
		r.Update(0.5)
	}
	old := r.Graph()

	r.Reset()
	assert.NotSame(t, old, r.Graph())
	assert.Equal(t, runner.PhaseCarving, r.Phase())
	assert.Zero(t, r.Searches())
	assert.Zero(t, r.Graph().ConnectionCount())
	assert.False(t, r.Finder().Initialized())

	r.Update(0)
	assert.Equal(t, 2*(16-1), r.Graph().ConnectionCount())
	assert.Len(t, r.Graph().Components(), 1)
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "carving", runner.PhaseCarving.String())
	assert.Equal(t, "searching", runner.PhaseSearching.String())
	assert.Equal(t, "idle", runner.PhaseIdle.String())
	assert.Equal(t, "Phase(9)", runner.Phase(9).String())
}

// TestNew_ConfigSeed seeds the stream from the config when WithRand is absent.
func TestNew_ConfigSeed(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	cfg := smallConfig()
	cfg.Seed = 42
	r, err := runner.New(cfg, runner.WithLogger(logger))
	require.NoError(t, err)

	r.Update(0)
	assert.Equal(t, seed42Maze, r.Graph().String())
}
