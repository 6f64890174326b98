package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/parsebench/internal/app"
	"github.com/vk/parsebench/internal/cli"
	"github.com/vk/parsebench/internal/cputime"
)

// Exit codes per fault class. A failed parse is a reported result, not a
// fault, and exits zero.
const (
	exitInput       = 3
	exitMeasurement = 4
)

// main is the entrypoint for the parsebench tool.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the program logic for easier testing and error
// handling. outW carries the two result lines; everything else goes to
// errW.
func run(outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	benchApp := app.NewApp(outW, errW, appConfig, cputime.New())
	if err := benchApp.Run(context.Background()); err != nil {
		switch {
		case errors.Is(err, app.ErrInput):
			return &cli.ExitError{Code: exitInput, Message: err.Error()}
		case errors.Is(err, cputime.ErrNonMonotonic):
			return &cli.ExitError{Code: exitMeasurement, Message: err.Error()}
		}
		return err
	}
	return nil
}
