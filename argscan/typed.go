package argscan

import (
	"fmt"
	"strconv"
)

// FindBoolArgument treats the flag as pure presence: absent is false,
// present with an empty value is true. Attaching a non-empty value to a
// boolean flag is an error.
func FindBoolArgument(name string, args []string) (bool, error) {
	text, ok := FindArgument(name, args)
	if !ok {
		return false, nil
	}
	if text == "" {
		return true, nil
	}
	return false, &ParseError{
		Type:         ErrorTypeInvalidBooleanValue,
		Message:      fmt.Sprintf("Got non-empty value '%s' for boolean flag '%s'.", text, name),
		Flag:         name,
		Value:        text,
		DefaultIndex: -1,
	}
}

// FindIntArgument returns the flag's value parsed as a base-10 integer and
// validated against [minValue, maxValue]. When the flag is absent or has an
// empty value, defaultValue is returned instead; a default outside the
// range means the flag has no usable default and a value must be supplied.
func FindIntArgument(name string, defaultValue, minValue, maxValue int, args []string) (int, error) {
	text, ok := FindArgument(name, args)
	if !ok || text == "" {
		if defaultValue < minValue || defaultValue > maxValue {
			return 0, &ParseError{
				Type:         ErrorTypeMissingRequiredValue,
				Message:      fmt.Sprintf("Must specify a value for int flag '%s'.", name),
				Flag:         name,
				DefaultIndex: -1,
			}
		}
		return defaultValue, nil
	}

	parsed, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, &ParseError{
			Type:         ErrorTypeInvalidIntegerValue,
			Message:      fmt.Sprintf("Got non-integer value '%s' for integer flag '%s'.", text, name),
			Flag:         name,
			Value:        text,
			DefaultIndex: -1,
		}
	}

	if parsed < int64(minValue) || parsed > int64(maxValue) {
		return 0, &ParseError{
			Type: ErrorTypeIntegerOutOfRange,
			Message: fmt.Sprintf(
				"Integer value '%s' for flag '%s' doesn't satisfy %d <= %d <= %d.",
				text, name, minValue, parsed, maxValue),
			Flag:         name,
			Value:        text,
			DefaultIndex: -1,
		}
	}

	return int(parsed), nil
}

// FindFloatArgument returns the flag's value parsed as a float and validated
// against [minValue, maxValue]. NaN never satisfies the range.
//
// Unlike the integer path, only a fully absent flag triggers the default
// logic: a present flag with an empty value is fed to the parser and fails
// as a non-float. Callers relying on empty-means-default must use
// FindIntArgument semantics instead. A NaN defaultValue passes the default
// range check (both comparisons are false) and is returned as-is.
func FindFloatArgument(name string, defaultValue, minValue, maxValue float64, args []string) (float64, error) {
	text, ok := FindArgument(name, args)
	if !ok {
		if defaultValue < minValue || defaultValue > maxValue {
			return 0, &ParseError{
				Type:         ErrorTypeMissingRequiredValue,
				Message:      fmt.Sprintf("Must specify a value for float flag '%s'.", name),
				Flag:         name,
				DefaultIndex: -1,
			}
		}
		return defaultValue, nil
	}

	parsed, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, &ParseError{
			Type:         ErrorTypeInvalidFloatValue,
			Message:      fmt.Sprintf("Got non-float value '%s' for float flag '%s'.", text, name),
			Flag:         name,
			Value:        text,
			DefaultIndex: -1,
		}
	}

	if parsed < minValue || parsed > maxValue || parsed != parsed {
		return 0, &ParseError{
			Type: ErrorTypeFloatOutOfRange,
			Message: fmt.Sprintf(
				"Float value '%s' for flag '%s' doesn't satisfy %v <= %v <= %v.",
				text, name, minValue, parsed, maxValue),
			Flag:         name,
			Value:        text,
			DefaultIndex: -1,
		}
	}

	return parsed, nil
}

// FindEnumArgument matches the flag's value against knownValues and returns
// the matching index. An absent flag returns defaultIndex when it is
// non-negative; the index is returned as-is, without bounds-checking against
// knownValues. The empty string is a legal enum member, so a bare flag can
// select it.
func FindEnumArgument(name string, defaultIndex int, knownValues, args []string) (int, error) {
	text, ok := FindArgument(name, args)
	if !ok {
		if defaultIndex >= 0 {
			return defaultIndex, nil
		}
		return 0, &ParseError{
			Type:         ErrorTypeMissingRequiredValue,
			Message:      fmt.Sprintf("Must specify a value for enum flag '%s'.", name),
			Flag:         name,
			Known:        knownValues,
			DefaultIndex: defaultIndex,
		}
	}

	for i, value := range knownValues {
		if value == text {
			return i, nil
		}
	}

	return 0, &ParseError{
		Type:         ErrorTypeUnrecognizedEnumValue,
		Message:      fmt.Sprintf("Unrecognized value '%s' for enum flag '%s'.", text, name),
		Flag:         name,
		Value:        text,
		Known:        knownValues,
		DefaultIndex: defaultIndex,
	}
}
