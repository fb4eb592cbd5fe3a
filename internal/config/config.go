package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	cerr "github.com/saeidalz13/seabattle/internal/error"
)

const (
	StageProd = "prod"
	StageDev  = "dev"

	OutputText = "text"
	OutputJSON = "json"

	defaultComputerDelay = time.Second
)

type Config struct {
	Stage    string
	LogLevel log.Level

	// Pause between two computer shots in a row
	ComputerDelay time.Duration

	// 0 means seeded from the clock
	Seed   int64
	Output string
}

// Load reads the configuration from the environment. Outside of
// prod the variables in envFile are loaded first; a missing file
// is fine, existing variables are never overridden.
func Load(envFile string) (Config, error) {
	if os.Getenv("STAGE") != StageProd {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	cfg := Config{
		Stage:         StageDev,
		LogLevel:      log.InfoLevel,
		ComputerDelay: defaultComputerDelay,
		Output:        OutputText,
	}

	if stage := os.Getenv("STAGE"); stage != "" {
		if stage != StageDev && stage != StageProd {
			return Config{}, cerr.ErrInvalidStage(stage)
		}
		cfg.Stage = stage
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return Config{}, err
		}
		cfg.LogLevel = parsed
	}

	if delay := os.Getenv("COMPUTER_DELAY"); delay != "" {
		parsed, err := time.ParseDuration(delay)
		if err != nil {
			return Config{}, fmt.Errorf("invalid COMPUTER_DELAY: %w", err)
		}
		cfg.ComputerDelay = parsed
	}

	if seed := os.Getenv("SEED"); seed != "" {
		parsed, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SEED: %w", err)
		}
		cfg.Seed = parsed
	}

	if output := os.Getenv("OUTPUT"); output != "" {
		output = strings.ToLower(output)
		if output != OutputText && output != OutputJSON {
			return Config{}, cerr.ErrInvalidOutput(output)
		}
		cfg.Output = output
	}

	return cfg, nil
}
