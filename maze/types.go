package maze

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/mazerunner/gridgraph"
)

// Sentinel errors returned by New.
var (
	// ErrGraphNil indicates that a nil *gridgraph.Graph was passed to New.
	ErrGraphNil = errors.New("maze: graph is nil")

	// ErrStartOutOfRange indicates a start cell outside [0,size)².
	ErrStartOutOfRange = errors.New("maze: start coordinate out of range")
)

// Options configures a Carver.
type Options struct {
	// Rand drives neighbor selection. When nil, a stream seeded with Seed
	// is created.
	Rand *rand.Rand

	// Seed is used only when Rand is nil. Zero selects defaultSeed.
	Seed int64

	// Start is the first cell entered by the carver.
	Start gridgraph.Coordinate
}

// Option mutates Options.
type Option func(*Options)

// WithRand makes the carver draw from r. The carver advances r's state;
// do not share r across goroutines.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		o.Rand = r
	}
}

// WithSeed seeds a private random stream. Ignored when WithRand is given.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithStart sets the first cell the carver enters.
func WithStart(c gridgraph.Coordinate) Option {
	return func(o *Options) {
		o.Start = c
	}
}

// DefaultOptions returns carving from (0,0) with the default seed.
func DefaultOptions() Options {
	return Options{Start: gridgraph.Coordinate{X: 0, Y: 0}}
}
