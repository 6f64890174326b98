package app

import (
	"io"
	"log/slog"

	"github.com/vk/parsebench/internal/cputime"
)

// App encapsulates one benchmark run's dependencies and lifecycle.
type App struct {
	outW   io.Writer // carries exactly the two result lines
	logger *slog.Logger
	clock  cputime.Clock
	config *Config
}

// NewApp wires a benchmark run. outW receives the result lines and
// nothing else; logs go to errW so they cannot contaminate the output
// contract. A nil clock selects the platform process clock.
func NewApp(outW, errW io.Writer, cfg *Config, clock cputime.Clock) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	if clock == nil {
		clock = cputime.New()
	}

	return &App{
		outW:   outW,
		logger: logger,
		clock:  clock,
		config: cfg,
	}
}
