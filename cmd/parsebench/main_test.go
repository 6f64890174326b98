package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/parsebench/internal/cli"
)

// groupedDurationRE matches the second output line: a digit-grouped
// nonnegative integer followed by the clock unit.
var groupedDurationRE = regexp.MustCompile(`^\d{1,3}(,\d{3})* ns$`)

func writeTempModule(t *testing.T, contents string) string {
	t.Helper()
	filePath := filepath.Join(t.TempDir(), "main.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(contents), 0600))
	return filePath
}

func TestRun_EndToEnd_Success(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	filePath := writeTempModule(t, `
		step "print" "A" {
			arguments {
				message = "hello"
			}
		}
	`)
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, []string{"-log-level", "error", filePath})

	// --- Assert ---
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2, "stdout carries exactly two lines")
	require.Equal(t, "Parse success", lines[0])
	require.Regexp(t, groupedDurationRE, lines[1])
}

func TestRun_EndToEnd_ParseFail(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// An unterminated block that is guaranteed to fail the grammar.
	filePath := writeTempModule(t, `
		step "print" "A" {
			arguments {
		// Missing closing brace here
	`)
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, []string{"-log-level", "error", filePath})

	// --- Assert ---
	require.NoError(t, err, "a failed parse still completes the run normally")
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "Parse fail", lines[0])
	require.Regexp(t, groupedDurationRE, lines[1], "a failed parse still reports its duration")
}

func TestRun_MissingFile(t *testing.T) {
	t.Parallel()

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	err := run(out, errOut, []string{filepath.Join(t.TempDir(), "absent.hcl")})

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, exitInput, exitErr.Code)
	require.Empty(t, out.String(), "no partial benchmark output on an input fault")
}

func TestRun_UsageFault(t *testing.T) {
	t.Parallel()

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	err := run(out, errOut, nil)

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, errOut.String(), "Usage:")
	require.Empty(t, out.String())
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	err := run(out, errOut, []string{"-h"})

	require.NoError(t, err, "help is a clean exit")
	require.Contains(t, errOut.String(), "Usage:")
}
