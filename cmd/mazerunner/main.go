// Command mazerunner carves a random maze and keeps solving it with A*
// between random cells, either in a window or headless.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	ebitenrender "github.com/katalvlaran/mazerunner/internal/render/ebiten"
	"github.com/katalvlaran/mazerunner/internal/runner"
)

var log = logrus.New()

// headlessTick is the simulated frame time in headless mode.
const headlessTick = 1.0 / 60

func main() {
	configPath := flag.String("config", "mazerunner.json", "JSON config file; missing file means defaults")
	size := flag.Int("size", 0, "Cells per side (overrides config)")
	seed := flag.Int64("seed", 0, "Random seed; 0 picks one from the clock")
	headless := flag.Bool("headless", false, "Run without a window")
	searches := flag.Int("searches", 5, "Searches to run before exiting in headless mode")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	logJSON := flag.Bool("log-json", false, "Log as JSON")
	flag.Parse()

	if err := setupLogging(*logLevel, *logJSON); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg, err := runner.LoadConfig(*configPath)
	if err != nil {
		log.WithError(err).Fatal("loading config")
	}
	if *size > 0 {
		cfg.Size = *size
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	r, err := runner.New(*cfg, runner.WithLogger(log))
	if err != nil {
		log.WithError(err).Fatal("creating runner")
	}
	log.WithFields(logrus.Fields{
		"size":     cfg.Size,
		"seed":     cfg.Seed,
		"headless": *headless,
	}).Info("starting")

	if *headless {
		runHeadless(r, *searches)
		return
	}
	if err := ebitenrender.Run(r); err != nil {
		log.WithError(err).Fatal("window closed with error")
	}
}

func setupLogging(level string, asJSON bool) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid -log-level: %w", err)
	}
	log.SetLevel(lvl)
	if asJSON {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	return nil
}

// runHeadless ticks the runner at 60 Hz of simulated time until the
// requested number of searches has finished.
func runHeadless(r *runner.Runner, searches int) {
	ticks := 0
	for r.Searches() < searches {
		r.Update(headlessTick)
		ticks++
	}
	log.WithFields(logrus.Fields{
		"searches": r.Searches(),
		"ticks":    ticks,
	}).Info("done")
}
