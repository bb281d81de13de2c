package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

const (
	// ProfileWidth and ProfileHeight size the board of the argument-less profiling run
	ProfileWidth  = 100
	ProfileHeight = 100
	// ProfileIterations is the iteration limit of the profiling run
	ProfileIterations = 10
)

// ErrInvalidFrameRate is returned for a non-positive frame rate
var ErrInvalidFrameRate = errors.New("invalid frame rate")

// Config holds the configuration for a simulation run
type Config struct {
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	IterationLimit int     `json:"iteration_limit"`
	Occupancy      float64 `json:"occupancy"`
	// Seed of the initial board; zero picks one from the clock
	Seed          uint64 `json:"seed"`
	FrameRate     int    `json:"frame_rate"`
	ProfileOutput string `json:"profile_output"`
	LogLevel      string `json:"log_level"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:          ProfileWidth,
		Height:         ProfileHeight,
		IterationLimit: 10000,
		Occupancy:      0.25,
		FrameRate:      60,
		ProfileOutput:  "cprof.out",
		LogLevel:       "info",
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate reports the first invalid setting
func (c Config) Validate() error {
	if err := model.ValidateDimensions(c.Width, c.Height); err != nil {
		return err
	}
	if err := model.ValidateOccupancy(c.Occupancy); err != nil {
		return err
	}
	if err := model.ValidateIterationLimit(c.IterationLimit); err != nil {
		return err
	}
	if c.FrameRate <= 0 {
		return errors.Wrapf(ErrInvalidFrameRate, "[Config.Validate] frame rate must be positive, got %d", c.FrameRate)
	}
	return nil
}

// FrameInterval returns the delay between rendered frames
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}

// SeedOrNow returns the configured seed, or a clock-derived one when unset
func (c Config) SeedOrNow() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}
