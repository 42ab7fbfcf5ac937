package runner

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrInvalidConfig is wrapped by Validate with the offending field.
var ErrInvalidConfig = errors.New("runner: invalid config")

// Config holds the settings of one maze-runner session.
type Config struct {
	// Maze
	Size int   `json:"size"` // Cells per side
	Seed int64 `json:"seed"` // 0 lets the caller pick a seed

	// Pacing
	CarveStepsPerTick  int     `json:"carve_steps_per_tick"`  // Carver steps per Update while carving
	SearchStepsPerTick int     `json:"search_steps_per_tick"` // A* steps per Update while searching
	SearchPause        float64 `json:"search_pause"`          // Seconds idle between searches

	// Window
	WindowWidth  int    `json:"window_width"`
	WindowHeight int    `json:"window_height"`
	Title        string `json:"title"`
}

// DefaultConfig returns a 50×50 maze in a 750×750 window, carving 100 steps
// and searching 3 steps per tick with a one-second pause between searches.
func DefaultConfig() *Config {
	return &Config{
		Size:               50,
		CarveStepsPerTick:  100,
		SearchStepsPerTick: 3,
		SearchPause:        1.0,
		WindowWidth:        750,
		WindowHeight:       750,
		Title:              "Maze Runner",
	}
}

// LoadConfig reads a JSON config from path on top of DefaultConfig.
// A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read runner config: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse runner config: %w", err)
	}

	return config, nil
}

// Validate reports the first setting that cannot drive a session.
func (c *Config) Validate() error {
	switch {
	case c.Size <= 0:
		return fmt.Errorf("%w: size must be positive, got %d", ErrInvalidConfig, c.Size)
	case c.CarveStepsPerTick <= 0:
		return fmt.Errorf("%w: carve_steps_per_tick must be positive, got %d", ErrInvalidConfig, c.CarveStepsPerTick)
	case c.SearchStepsPerTick <= 0:
		return fmt.Errorf("%w: search_steps_per_tick must be positive, got %d", ErrInvalidConfig, c.SearchStepsPerTick)
	case c.SearchPause < 0:
		return fmt.Errorf("%w: search_pause must be non-negative, got %g", ErrInvalidConfig, c.SearchPause)
	case c.WindowWidth <= 0 || c.WindowHeight <= 0:
		return fmt.Errorf("%w: window must be positive, got %dx%d", ErrInvalidConfig, c.WindowWidth, c.WindowHeight)
	}

	return nil
}
