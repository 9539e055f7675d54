package app

import (
	"errors"
	"fmt"
	"strings"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// FormulaPath points at a .hcl formula file or a directory of them.
	FormulaPath string
	// Sets holds raw `name=value` input assignments from the command line,
	// applied in order after defaults.
	Sets []string
	// Target selects a single node to compute instead of the declared
	// outputs. Empty means "compute all outputs".
	Target string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.FormulaPath == "" {
		return nil, errors.New("FormulaPath is a required configuration field and cannot be empty")
	}
	for _, set := range cfg.Sets {
		if !strings.Contains(set, "=") {
			return nil, fmt.Errorf("invalid -set %q: expected name=value", set)
		}
	}
	return &cfg, nil
}
