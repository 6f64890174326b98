// Package report renders the benchmark verdict and elapsed time as the
// program's two fixed output lines.
package report

import (
	"fmt"
	"io"

	"github.com/vk/parsebench/internal/cputime"
	"github.com/vk/parsebench/internal/numfmt"
)

// Write emits the verdict line followed by the elapsed process time,
// digit-grouped and suffixed with its unit. No filename, no diagnostic
// detail: the verdict and the duration are the whole contract.
func Write(w io.Writer, passed bool, elapsed cputime.Duration) error {
	verdict := "Parse fail"
	if passed {
		verdict = "Parse success"
	}
	if _, err := fmt.Fprintln(w, verdict); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s ns\n", numfmt.Group(uint64(elapsed)))
	return err
}
