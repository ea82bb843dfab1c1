package game

import (
	"fmt"
	"os"
	"strconv"

	"github.com/samdwyer/minesweeper/internal/field"
)

// Environment variables read by LoadConfig.
const (
	EnvWidth   = "MINESWEEPER_WIDTH"
	EnvHeight  = "MINESWEEPER_HEIGHT"
	EnvMines   = "MINESWEEPER_MINES"
	EnvSeed    = "MINESWEEPER_SEED"
	EnvLogFile = "MINESWEEPER_LOG_FILE"
	EnvAPIKey  = "MINESWEEPER_HONEYCOMB_API_KEY"
)

// Config holds game configuration options.
type Config struct {
	Width  int
	Height int
	Mines  int

	// Seed for random number generation. Used for reproducible mine layouts.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// LogFile receives the game log while the terminal is in use.
	// Empty discards it.
	LogFile string

	// Telemetry enables trace export.
	Telemetry bool
}

// DefaultConfig returns the classic 15x15 board with 30 mines.
func DefaultConfig() Config {
	return Config{
		Width:  15,
		Height: 15,
		Mines:  30,
	}
}

// LoadConfig overlays DefaultConfig with values from the environment.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	for _, v := range []struct {
		name string
		dst  *int
	}{
		{EnvWidth, &cfg.Width},
		{EnvHeight, &cfg.Height},
		{EnvMines, &cfg.Mines},
	} {
		raw, ok := os.LookupEnv(v.name)
		if !ok || raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", v.name, err)
		}
		*v.dst = n
	}

	if raw := os.Getenv(EnvSeed); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}

	cfg.LogFile = os.Getenv(EnvLogFile)
	cfg.Telemetry = os.Getenv(EnvAPIKey) != "" || os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != ""

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the board dimensions and mine count can build a field.
func (c Config) Validate() error {
	return field.Validate(c.Width, c.Height, c.Mines)
}
