package argscan

import "errors"

// ExitCodeDefaults holds the codes used when no per-category mapping
// matches.
type ExitCodeDefaults struct {
	Success      int // default: 0
	GeneralError int // default: 1
}

func defaultExitDefaults() ExitCodeDefaults {
	return ExitCodeDefaults{Success: 0, GeneralError: 1}
}

// ExitCodeManager maps argument-error categories to process exit codes.
// Out of the box every failure exits with 1, matching the traditional CLI
// contract; Define lets a tool distinguish, say, misusage from bad values.
type ExitCodeManager struct {
	codesByType map[ErrorType]int
	defaults    ExitCodeDefaults
}

func newExitCodeManager() *ExitCodeManager {
	return &ExitCodeManager{
		codesByType: make(map[ErrorType]int),
		defaults:    defaultExitDefaults(),
	}
}

// Define maps an error category to an exit code.
func (m *ExitCodeManager) Define(typ ErrorType, code int) *ExitCodeManager {
	m.codesByType[typ] = code
	return m
}

// Default replaces the manager's default codes.
func (m *ExitCodeManager) Default(d ExitCodeDefaults) *ExitCodeManager {
	m.defaults = d
	return m
}

// resolve converts an error to an exit code. A nil error maps to Success,
// a ParseError with a registered category mapping to that code, and
// everything else to GeneralError.
func (m *ExitCodeManager) resolve(err error) int {
	if err == nil {
		return m.defaults.Success
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		if code, ok := m.codesByType[parseErr.Type]; ok {
			return code
		}
	}
	return m.defaults.GeneralError
}
