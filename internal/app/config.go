package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ModelPath   string // hcl files defining network models
	TargetsPath string // hcl files defining accelerator targets
	Target      string // name of the target to schedule for

	LogFormat string
	LogLevel  string
}

// NewConfig validates and returns the configuration.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ModelPath == "" {
		return nil, errors.New("ModelPath is a required configuration field and cannot be empty")
	}
	if cfg.Target == "" {
		return nil, errors.New("Target is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
