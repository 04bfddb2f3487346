// Package argscan locates and validates named flags inside a C-style
// argument vector. Index 0 is the program name and is never scanned; a
// literal "--" token terminates flag scanning, and everything after it is
// positional passthrough.
//
// Flag names are matched literally, including any leading dashes the caller
// chose to require: "--shots" matches "--shots" and "--shots=100" but not
// "-shots". A bare flag may take its value from the next token when that
// token does not begin with '-'.
//
// Every function here is a pure read over the caller-owned slice. Failures
// are reported as *ParseError values; Scanner wraps these functions with the
// print-and-exit behavior expected at a CLI entry point.
package argscan

import (
	"fmt"
	"strings"
)

// flagBoundary returns the index of the first literal "--" token, or
// len(args) when none exists. Only indices in [1, boundary) are eligible
// flag positions.
func flagBoundary(args []string) int {
	n := 1
	for n < len(args) && args[n] != "--" {
		n++
	}
	return n
}

// FindArgument scans for the first token matching name and returns its
// value. The boolean result distinguishes "flag absent" (false) from "flag
// present without a value" (true with an empty string).
//
// A token matches when it begins with name followed by end-of-string or
// '='. For an exact match the value is the next token, unless that token
// begins with '-' or the match is the last token of the vector; in both of
// those cases the flag is present with an empty value. Later duplicates of
// the flag are ignored.
func FindArgument(name string, args []string) (string, bool) {
	boundary := flagBoundary(args)
	for i := 1; i < boundary; i++ {
		rest, ok := strings.CutPrefix(args[i], name)
		if !ok || (rest != "" && rest[0] != '=') {
			continue
		}

		if rest == "" {
			// Bare flag. The next token is its value only when one exists
			// and it does not look like another flag. The "--" terminator
			// begins with '-' and therefore never becomes a value.
			if i == len(args)-1 || strings.HasPrefix(args[i+1], "-") {
				return "", true
			}
			return args[i+1], true
		}

		// Inline "name=value" form; the value may be empty.
		return rest[1:], true
	}
	return "", false
}

// RequireArgument is FindArgument for flags that must be present. An absent
// flag yields a MissingArgument error; a present flag with an empty value
// is not missing.
func RequireArgument(name string, args []string) (string, error) {
	value, ok := FindArgument(name, args)
	if !ok {
		return "", &ParseError{
			Type:         ErrorTypeMissingArgument,
			Message:      fmt.Sprintf("Missing command line argument: '%s'", name),
			Flag:         name,
			DefaultIndex: -1,
		}
	}
	return value, nil
}
