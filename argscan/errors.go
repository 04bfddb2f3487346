package argscan

import (
	"fmt"
	"strings"

	"github.com/argscan/go-argscan/internal/fuzzy"
)

// ErrorType categorizes argument failures. Scanner uses the category to
// resolve the process exit code (via ExitCodeManager), and ErrorHandler uses
// it to decide what contextual detail belongs in the diagnostic.
type ErrorType string

const (
	ErrorTypeMissingArgument       ErrorType = "missing_argument"
	ErrorTypeMissingRequiredValue  ErrorType = "missing_required_value"
	ErrorTypeInvalidBooleanValue   ErrorType = "invalid_boolean_value"
	ErrorTypeInvalidIntegerValue   ErrorType = "invalid_integer_value"
	ErrorTypeInvalidFloatValue     ErrorType = "invalid_float_value"
	ErrorTypeIntegerOutOfRange     ErrorType = "integer_out_of_range"
	ErrorTypeFloatOutOfRange       ErrorType = "float_out_of_range"
	ErrorTypeUnrecognizedArgument  ErrorType = "unrecognized_argument"
	ErrorTypeUnrecognizedEnumValue ErrorType = "unrecognized_enum_value"
)

// ParseError is the failure value produced by every lookup in this package.
// The core functions return it instead of terminating the process, so the
// library can be embedded in non-CLI contexts; Scanner owns the decision to
// print and exit.
type ParseError struct {
	Type    ErrorType
	Message string
	Flag    string
	Value   string

	// Mode is the optional context label passed to CheckUnknownArguments.
	Mode string

	// Known holds the recognized flag names (unrecognized-argument errors)
	// or the accepted enum values (enum errors). It feeds both the
	// diagnostic listing and fuzzy suggestions.
	Known []string

	// DefaultIndex marks which Known entry is the enum default, -1 when
	// there is none or the error is not an enum error.
	DefaultIndex int
}

func (e *ParseError) Error() string {
	return e.Message
}

// ErrorHandler renders ParseError values as the multi-line diagnostics shown
// to the user, optionally adding fuzzy "did you mean" suggestions.
type ErrorHandler struct {
	suggest     bool
	maxDistance int
}

// NewErrorHandler returns a handler with suggestions disabled; callers
// opt in via Suggest.
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{maxDistance: 2}
}

// Suggest enables or disables fuzzy suggestions for unrecognized flags and
// enum values.
func (h *ErrorHandler) Suggest(enabled bool) *ErrorHandler {
	h.suggest = enabled
	return h
}

// MaxDistance sets the maximum edit distance for suggestions.
func (h *ErrorHandler) MaxDistance(distance int) *ErrorHandler {
	h.maxDistance = distance
	return h
}

// Diagnose builds the full human-readable diagnostic for err: the one-line
// message, an optional suggestion, and the recognized-argument or
// recognized-value listing when the category carries one.
func (h *ErrorHandler) Diagnose(err *ParseError) string {
	var b strings.Builder
	b.WriteString(err.Message)
	b.WriteByte('\n')

	if h.suggest {
		if s := h.suggestion(err); s != "" {
			fmt.Fprintf(&b, "  %s\n", s)
		}
	}

	switch err.Type {
	case ErrorTypeUnrecognizedArgument:
		if err.Mode == "" {
			b.WriteString("Recognized command line arguments:\n")
		} else {
			fmt.Fprintf(&b, "Recognized command line arguments for mode %s:\n", err.Mode)
		}
		for _, name := range err.Known {
			fmt.Fprintf(&b, "    %s\n", name)
		}

	case ErrorTypeUnrecognizedEnumValue, ErrorTypeMissingRequiredValue:
		// Known is populated only for enum flags; int/float flags report
		// the bare message.
		if len(err.Known) > 0 {
			b.WriteString("Recognized values are:\n")
			for i, value := range err.Known {
				marker := ""
				if i == err.DefaultIndex {
					marker = " (default)"
				}
				fmt.Fprintf(&b, "    '%s'%s\n", value, marker)
			}
		}

	case ErrorTypeMissingArgument, ErrorTypeInvalidBooleanValue,
		ErrorTypeInvalidIntegerValue, ErrorTypeInvalidFloatValue,
		ErrorTypeIntegerOutOfRange, ErrorTypeFloatOutOfRange:
		// Single-line diagnostics.
	}

	return strings.TrimRight(b.String(), "\n")
}

func (h *ErrorHandler) suggestion(err *ParseError) string {
	switch err.Type {
	case ErrorTypeUnrecognizedArgument:
		// The offending token may carry an inline value; match on the name
		// part only.
		name, _, _ := strings.Cut(err.Value, "=")
		if best := fuzzy.FindBest(name, err.Known, h.maxDistance); best != "" {
			return fmt.Sprintf("Did you mean '%s'?", best)
		}
	case ErrorTypeUnrecognizedEnumValue:
		if best := fuzzy.FindBest(err.Value, err.Known, h.maxDistance); best != "" {
			return fmt.Sprintf("Did you mean '%s'?", best)
		}
	case ErrorTypeMissingArgument, ErrorTypeMissingRequiredValue,
		ErrorTypeInvalidBooleanValue, ErrorTypeInvalidIntegerValue,
		ErrorTypeInvalidFloatValue, ErrorTypeIntegerOutOfRange,
		ErrorTypeFloatOutOfRange:
		// No suggestions for these.
	}
	return ""
}
