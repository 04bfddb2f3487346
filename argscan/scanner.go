package argscan

import (
	"errors"
	"fmt"
	"os"

	scanio "github.com/argscan/go-argscan/io"
)

// Scanner is the fatal boundary over the pure lookup functions: each method
// either returns a valid value or prints a red diagnostic to the error
// stream and terminates the process. This is the calling convention a CLI
// entry point wants; embedders that need recoverable errors use the
// package-level functions directly.
type Scanner struct {
	io        *scanio.IOManager
	handler   *ErrorHandler
	exitCodes *ExitCodeManager
	exitFunc  func(int)
}

// New returns a Scanner bound to process stdio that exits via os.Exit.
func New() *Scanner {
	return &Scanner{
		io:        scanio.New(),
		handler:   NewErrorHandler(),
		exitCodes: newExitCodeManager(),
		exitFunc:  os.Exit,
	}
}

// IO returns the scanner's IO manager for writer and color configuration.
func (s *Scanner) IO() *scanio.IOManager { return s.io }

// Errors returns the scanner's error handler. Use it to opt in to fuzzy
// suggestions.
func (s *Scanner) Errors() *ErrorHandler { return s.handler }

// ExitCodes returns the scanner's exit-code manager for per-category
// overrides.
func (s *Scanner) ExitCodes() *ExitCodeManager { return s.exitCodes }

// FindArgument is the non-fatal raw lookup, provided on Scanner for
// symmetry with the typed methods.
func (s *Scanner) FindArgument(name string, args []string) (string, bool) {
	return FindArgument(name, args)
}

// RequireArgument returns the flag's value, terminating the process when
// the flag is absent.
func (s *Scanner) RequireArgument(name string, args []string) string {
	value, err := RequireArgument(name, args)
	if err != nil {
		s.fail(err)
		return ""
	}
	return value
}

// BoolArgument returns the flag's presence, terminating the process when a
// non-empty value is attached.
func (s *Scanner) BoolArgument(name string, args []string) bool {
	value, err := FindBoolArgument(name, args)
	if err != nil {
		s.fail(err)
		return false
	}
	return value
}

// IntArgument returns the flag's integer value within [minValue, maxValue],
// terminating the process on parse or range failures.
func (s *Scanner) IntArgument(name string, defaultValue, minValue, maxValue int, args []string) int {
	value, err := FindIntArgument(name, defaultValue, minValue, maxValue, args)
	if err != nil {
		s.fail(err)
		return 0
	}
	return value
}

// FloatArgument returns the flag's float value within [minValue, maxValue],
// terminating the process on parse or range failures.
func (s *Scanner) FloatArgument(name string, defaultValue, minValue, maxValue float64, args []string) float64 {
	value, err := FindFloatArgument(name, defaultValue, minValue, maxValue, args)
	if err != nil {
		s.fail(err)
		return 0
	}
	return value
}

// EnumArgument returns the index of the flag's value within knownValues,
// terminating the process on unrecognized values.
func (s *Scanner) EnumArgument(name string, defaultIndex int, knownValues, args []string) int {
	value, err := FindEnumArgument(name, defaultIndex, knownValues, args)
	if err != nil {
		s.fail(err)
		return 0
	}
	return value
}

// CheckUnknownArguments terminates the process when args contains a flag
// token not covered by knownNames.
func (s *Scanner) CheckUnknownArguments(knownNames []string, mode string, args []string) {
	if err := CheckUnknownArguments(knownNames, mode, args); err != nil {
		s.fail(err)
	}
}

// fail renders the diagnostic in red on the error stream and exits with the
// code resolved for the error's category.
func (s *Scanner) fail(err error) {
	text := err.Error()
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		text = s.handler.Diagnose(parseErr)
	}
	fmt.Fprintln(s.io.Err(), s.io.Colorize(text, "31"))
	s.exitFunc(s.exitCodes.resolve(err))
}
