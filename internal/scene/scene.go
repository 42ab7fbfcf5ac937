// Package scene turns the state of a maze session into a flat list of
// filled rectangles and line segments, ready for any 2D backend.
package scene

import (
	"image/color"

	"github.com/katalvlaran/mazerunner/astar"
	"github.com/katalvlaran/mazerunner/gridgraph"
	"github.com/katalvlaran/mazerunner/maze"
)

// Palette.
var (
	Background   = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Wall         = color.RGBA{A: 0xff}
	CarverCursor = color.RGBA{A: 0xff}
	OpenSet      = color.RGBA{B: 0xff, A: 0xff}
	Path         = color.RGBA{R: 0xff, G: 0xa3, A: 0xff}
	Start        = color.RGBA{G: 0xff, A: 0xff}
	SearchCursor = color.RGBA{A: 0xff}
	Goal         = color.RGBA{R: 0xff, A: 0xff}
)

// Rect is a filled axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float32
	Color      color.RGBA
}

// Line is a one-pixel segment.
type Line struct {
	X1, Y1, X2, Y2 float32
	Color          color.RGBA
}

// Frame lists what to draw, in order: all rects, then all lines.
type Frame struct {
	Rects []Rect
	Lines []Line
}

// Source is the session state a frame is built from.
type Source interface {
	Graph() *gridgraph.Graph
	Carver() *maze.Carver
	Finder() *astar.PathFinder
}

// layout maps grid cells to pixels.
type layout struct {
	size          float32
	width, height float32
}

func (l layout) cell(c gridgraph.Coordinate, clr color.RGBA) Rect {
	return Rect{
		X:     float32(c.X) / l.size * l.width,
		Y:     float32(c.Y) / l.size * l.height,
		W:     l.width / l.size,
		H:     l.height / l.size,
		Color: clr,
	}
}

// wall returns the edge of node that faces its neighbor n.
func (l layout) wall(node, n gridgraph.Coordinate) Line {
	r := l.cell(node, Wall)
	left, top := r.X, r.Y
	right, bottom := r.X+r.W, r.Y+r.H
	switch {
	case node.X == n.X && node.Y < n.Y:
		return Line{X1: right, Y1: bottom, X2: left, Y2: bottom, Color: Wall}
	case node.X == n.X:
		return Line{X1: left, Y1: top, X2: right, Y2: top, Color: Wall}
	case node.X < n.X:
		return Line{X1: right, Y1: bottom, X2: right, Y2: top, Color: Wall}
	default:
		return Line{X1: left, Y1: top, X2: left, Y2: bottom, Color: Wall}
	}
}

// Build draws src into a width×height frame.
//
// Layers, bottom to top: background; carver cursor while carving; open set
// while searching; path; start, search cursor and goal once a search has
// begun; window border; a wall for every neighbor pair without a passage.
// Walls between two cells are emitted once from each side.
func Build(src Source, width, height float32) Frame {
	g := src.Graph()
	l := layout{size: float32(g.Size()), width: width, height: height}
	f := Frame{
		Rects: []Rect{{W: width, H: height, Color: Background}},
	}

	if c := src.Carver(); !c.IsFinished() {
		f.Rects = append(f.Rects, l.cell(c.Current(), CarverCursor))
	}
	p := src.Finder()
	if !p.IsFinished() {
		for _, c := range p.OpenSet() {
			f.Rects = append(f.Rects, l.cell(c, OpenSet))
		}
	}
	for _, c := range p.Path() {
		f.Rects = append(f.Rects, l.cell(c, Path))
	}
	if p.Initialized() {
		f.Rects = append(f.Rects,
			l.cell(p.Start(), Start),
			l.cell(p.Current(), SearchCursor),
			l.cell(p.Goal(), Goal),
		)
	}

	f.Lines = append(f.Lines,
		Line{X1: 1, Y1: 1, X2: width - 1, Y2: 1, Color: Wall},
		Line{X1: 1, Y1: 1, X2: 1, Y2: height - 1, Color: Wall},
		Line{X1: width - 1, Y1: height - 1, X2: width - 1, Y2: 1, Color: Wall},
		Line{X1: width - 1, Y1: height - 1, X2: 1, Y2: height - 1, Color: Wall},
	)
	for _, node := range g.Coordinates() {
		for _, n := range g.Neighbors(node) {
			if g.IsConnected(node, n) {
				continue
			}
			f.Lines = append(f.Lines, l.wall(node, n))
		}
	}

	return f
}
