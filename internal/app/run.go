package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/parsebench/internal/cputime"
	"github.com/vk/parsebench/internal/grammar"
	"github.com/vk/parsebench/internal/report"
	"github.com/vk/parsebench/internal/source"
)

// ErrInput marks a failure to read the input file, so the entrypoint can
// map it to its own exit code.
var ErrInput = errors.New("input file unreadable")

// Run executes the benchmark pipeline: load the buffer, bracket exactly
// the parse call with two processor-time samples, then report. Strictly
// sequential; one parse per run, never retried. A failed parse is a
// normal result, not an error.
func (a *App) Run(ctx context.Context) error {
	a.logger.Debug("App.Run method started.")

	buf, err := source.Load(a.config.FilePath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInput, err)
	}
	a.logger.Debug("Input buffer loaded.", "name", buf.Name, "bytes", len(buf.Src))

	// The fixed benchmark configuration: no warnings, no unit identity,
	// extensions disabled.
	cfg := grammar.Config{}

	start, err := a.clock.Sample()
	if err != nil {
		return fmt.Errorf("sampling process clock: %w", err)
	}
	outcome := grammar.Parse(cfg, buf)
	end, err := a.clock.Sample()
	if err != nil {
		return fmt.Errorf("sampling process clock: %w", err)
	}

	elapsed, err := cputime.Elapsed(start, end)
	if err != nil {
		return err
	}
	a.logger.Debug("Parse measured.", "passed", outcome.Passed(), "elapsed_ns", int64(elapsed))

	return report.Write(a.outW, outcome.Passed(), elapsed)
}
