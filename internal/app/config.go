package app

import "errors"

// Config holds everything a single benchmark run needs.
type Config struct {
	FilePath string // module file to parse, exactly one per run

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.FilePath == "" {
		return nil, errors.New("FilePath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
