// Package scanio centralizes terminal IO for diagnostic output: injectable
// writers bound to process stdio by default, and ANSI color capability
// detection so red error text degrades to plain text on pipes and dumb
// terminals.
package scanio

import (
	stdio "io"
	"os"
	"strings"
)

// IOManager holds the streams diagnostics are written to, along with the
// color policy.
type IOManager struct {
	in  stdio.Reader
	out stdio.Writer
	err stdio.Writer

	forceColor bool
	noColor    bool
}

// New returns a manager bound to process stdio.
func New() *IOManager {
	return &IOManager{in: os.Stdin, out: os.Stdout, err: os.Stderr}
}

// WithIn sets the input reader and returns the manager for chaining.
func (m *IOManager) WithIn(r stdio.Reader) *IOManager { m.in = r; return m }

// WithOut sets the standard output writer and returns the manager for chaining.
func (m *IOManager) WithOut(w stdio.Writer) *IOManager { m.out = w; return m }

// WithErr sets the standard error writer and returns the manager for chaining.
func (m *IOManager) WithErr(w stdio.Writer) *IOManager { m.err = w; return m }

// ForceColor forces color output on, regardless of environment.
func (m *IOManager) ForceColor() *IOManager { m.forceColor = true; m.noColor = false; return m }

// NoColor disables color output, regardless of environment.
func (m *IOManager) NoColor() *IOManager { m.noColor = true; m.forceColor = false; return m }

// ColorAuto uses environment heuristics to determine color support.
func (m *IOManager) ColorAuto() *IOManager { m.noColor = false; m.forceColor = false; return m }

// In returns the configured input reader.
func (m *IOManager) In() stdio.Reader { return m.in }

// Out returns the configured standard output writer.
func (m *IOManager) Out() stdio.Writer { return m.out }

// Err returns the configured standard error writer.
func (m *IOManager) Err() stdio.Writer { return m.err }

// IsTTY reports whether stderr is connected to a terminal. Diagnostics are
// the only output this library produces, so capability checks look at the
// error stream rather than stdout.
func (m *IOManager) IsTTY() bool {
	f, ok := m.err.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// SupportsColor reports whether ANSI color sequences should be emitted,
// honoring NO_COLOR and FORCE_COLOR over terminal detection.
func (m *IOManager) SupportsColor() bool {
	if m.noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	if m.forceColor || os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if !m.IsTTY() {
		return false
	}
	term := os.Getenv("TERM")
	return term != "" && term != "dumb"
}

// ColorLevel returns 0 for none, 1 for basic 16 colors, 2 for 256 colors,
// and 3 for truecolor.
func (m *IOManager) ColorLevel() int {
	if !m.SupportsColor() {
		return 0
	}
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return 3
	}
	term := os.Getenv("TERM")
	if strings.Contains(term, "truecolor") || strings.Contains(term, "24bit") {
		return 3
	}
	if strings.Contains(term, "256color") {
		return 2
	}
	return 1
}

// Colorize wraps s with the given ANSI SGR code (e.g., "31" for red) and a
// trailing reset. If color is not supported, it returns s unchanged.
func (m *IOManager) Colorize(s, code string) string {
	if !m.SupportsColor() {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}

// Bold returns s in bold when color is supported; otherwise s unchanged.
func (m *IOManager) Bold(s string) string { return m.Colorize(s, "1") }

// Faint returns s in faint intensity when supported; otherwise s unchanged.
func (m *IOManager) Faint(s string) string { return m.Colorize(s, "2") }
