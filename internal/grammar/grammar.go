// Package grammar invokes the external HCL grammar parser over an
// in-memory buffer and reduces its result to a pass/fail outcome.
package grammar

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"

	"github.com/vk/parsebench/internal/source"
)

// placeholderName is the filename handed to the parser instead of the
// real path. Diagnostics are discarded anyway, so decoupling them from
// the on-disk name keeps location-sensitive formatting out of the
// measured call.
const placeholderName = "<benchmark>"

// Config carries the knobs the harness passes to its parser. The
// benchmark always runs one fixed configuration: the zero value.
type Config struct {
	// Warnings is the warning-flag set. A syntax-only parse never
	// consults it; the field exists for interface parity and is ignored
	// for this harness.
	Warnings []string

	// UnitName identifies the compilation unit in diagnostics. Ignored
	// for this harness: diagnostics are discarded before formatting.
	UnitName string

	// Extensions is the language-extension bitmask. Must be zero; the
	// benchmark never enables extensions.
	Extensions uint64
}

// Outcome is the parser's verdict for one invocation. Exactly one of the
// two payloads is meaningful: the AST on success, diagnostics on failure.
type Outcome struct {
	ast   *hcl.File
	diags hcl.Diagnostics
}

// Passed reports whether the parse succeeded.
func (o Outcome) Passed() bool {
	return !o.diags.HasErrors()
}

// AST returns the parsed file, or nil when the parse failed. The harness
// discards it; it is exposed so reporting can grow without changing Parse.
func (o Outcome) AST() *hcl.File {
	if !o.Passed() {
		return nil
	}
	return o.ast
}

// Diagnostics returns the parser's diagnostics, nil on a clean parse.
func (o Outcome) Diagnostics() hcl.Diagnostics {
	return o.diags
}

// Parse runs the grammar parser exactly once over buf, anchored at line 1
// column 1. The call is never retried or resumed: a second pass over the
// buffer would invalidate the timing bracketed around this one.
func Parse(cfg Config, buf *source.Buffer) Outcome {
	if cfg.Extensions != 0 {
		// A nonzero mask can only come from harness code, never from
		// user input.
		panic(fmt.Sprintf("grammar: extension bitmask must be zero, got %#x", cfg.Extensions))
	}
	ast, diags := hclsyntax.ParseConfig(buf.Src, placeholderName, hcl.InitialPos)
	return Outcome{ast: ast, diags: diags}
}
