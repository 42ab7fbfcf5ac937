// Package runner drives a maze session: it carves the maze a few steps per
// tick, then runs A* searches between random cells, pausing between them.
package runner

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazerunner/astar"
	"github.com/katalvlaran/mazerunner/gridgraph"
	"github.com/katalvlaran/mazerunner/maze"
)

// Phase is the stage a Runner is in.
type Phase int

const (
	// PhaseCarving means the maze is still being built.
	PhaseCarving Phase = iota
	// PhaseSearching means an A* search is in progress.
	PhaseSearching
	// PhaseIdle means the runner is waiting to start the next search.
	PhaseIdle
)

func (p Phase) String() string {
	switch p {
	case PhaseCarving:
		return "carving"
	case PhaseSearching:
		return "searching"
	case PhaseIdle:
		return "idle"
	}

	return fmt.Sprintf("Phase(%d)", int(p))
}

// defaultSeed seeds the runner when neither WithRand nor Config.Seed is set.
const defaultSeed int64 = 1

type options struct {
	rng *rand.Rand
	log logrus.FieldLogger
}

// Option configures a Runner.
type Option func(*options)

// WithRand sets the random stream shared by the carver and the start/goal
// picker.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

// WithLogger sets where session events are logged.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		o.log = l
	}
}

// Runner owns one graph, one carver and one path finder.
// It is driven by calling Update once per frame and is not safe for
// concurrent use.
type Runner struct {
	cfg Config
	rng *rand.Rand
	log logrus.FieldLogger

	graph  *gridgraph.Graph
	carver *maze.Carver
	finder *astar.PathFinder

	carved   bool
	timer    float64
	searches int
}

// New validates cfg and builds a runner ready to carve.
func New(cfg Config, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = defaultSeed
		}
		o.rng = rand.New(rand.NewSource(seed))
	}
	if o.log == nil {
		o.log = logrus.StandardLogger()
	}

	r := &Runner{cfg: cfg, rng: o.rng, log: o.log}
	if err := r.build(); err != nil {
		return nil, err
	}

	return r, nil
}

// build creates a fresh graph, carver and idle path finder.
func (r *Runner) build() error {
	g, err := gridgraph.New(r.cfg.Size)
	if err != nil {
		return fmt.Errorf("runner: building graph: %w", err)
	}
	c, err := maze.New(g, maze.WithRand(r.rng))
	if err != nil {
		return fmt.Errorf("runner: building carver: %w", err)
	}
	r.graph, r.carver, r.finder = g, c, astar.New()
	r.carved = false
	r.timer = 0
	r.searches = 0
	r.log.WithField("size", r.cfg.Size).Debug("maze reset")

	return nil
}

// Update advances the session by one tick of dt seconds.
//
// While carving it runs CarveStepsPerTick carver steps. Once carved it runs
// SearchStepsPerTick A* steps while a search is active. Otherwise it waits:
// dt accumulates until it exceeds SearchPause, then a new search starts
// between two random cells.
func (r *Runner) Update(dt float64) {
	if !r.carver.IsFinished() {
		for i := 0; i < r.cfg.CarveStepsPerTick; i++ {
			r.carver.Advance()
		}
		if r.carver.IsFinished() && !r.carved {
			r.carved = true
			r.log.WithFields(logrus.Fields{
				"size":  r.cfg.Size,
				"steps": r.carver.Steps(),
			}).Info("maze carved")
		}
		return
	}

	switch {
	case !r.finder.IsFinished():
		for i := 0; i < r.cfg.SearchStepsPerTick && !r.finder.IsFinished(); i++ {
			r.finder.GeneratePath(r.graph)
		}
		if r.finder.IsFinished() {
			r.searches++
			r.log.WithFields(logrus.Fields{
				"start":  r.finder.Start().String(),
				"goal":   r.finder.Goal().String(),
				"found":  r.finder.Found(),
				"length": len(r.finder.Path()),
				"steps":  r.finder.Steps(),
			}).Info("search finished")
		}
	case r.timer > r.cfg.SearchPause:
		r.startSearch()
		r.timer = 0
	default:
		r.timer += dt
	}
}

// startSearch picks a random start and goal and initializes the finder.
func (r *Runner) startSearch() {
	size := r.cfg.Size
	start := gridgraph.Coordinate{X: r.rng.Intn(size), Y: r.rng.Intn(size)}
	goal := gridgraph.Coordinate{X: r.rng.Intn(size), Y: r.rng.Intn(size)}
	r.finder.Initialize(start, goal)
	r.log.WithFields(logrus.Fields{
		"start": start.String(),
		"goal":  goal.String(),
	}).Info("search started")
}

// Reset discards the maze and starts carving a new one. The random stream
// continues, so the new maze differs from the old one.
func (r *Runner) Reset() {
	// build only fails on an invalid size, which New already rejected.
	if err := r.build(); err != nil {
		r.log.WithError(err).Error("reset failed")
	}
}

// Phase reports what the next Update will do.
func (r *Runner) Phase() Phase {
	switch {
	case !r.carver.IsFinished():
		return PhaseCarving
	case !r.finder.IsFinished():
		return PhaseSearching
	}

	return PhaseIdle
}

// Graph returns the maze graph.
func (r *Runner) Graph() *gridgraph.Graph { return r.graph }

// Carver returns the maze carver.
func (r *Runner) Carver() *maze.Carver { return r.carver }

// Finder returns the path finder.
func (r *Runner) Finder() *astar.PathFinder { return r.finder }

// Searches returns how many searches have finished since the last reset.
func (r *Runner) Searches() int { return r.searches }

// Config returns the runner's settings.
func (r *Runner) Config() Config { return r.cfg }
