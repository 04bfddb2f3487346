package argscan

import (
	"fmt"
	"strings"
)

// CheckUnknownArguments validates that every flag token before the "--"
// boundary matches one of knownNames, either exactly or as "name=value".
// When a bare known flag is followed by a token that does not begin with
// '-', that token is consumed as the flag's value and skipped, mirroring
// FindArgument; a value that happens to look like a word is never reported
// as an unrecognized flag.
//
// mode is an optional label naming the invocation context for the
// diagnostic ("" for none). The first unmatched token produces an
// UnrecognizedArgument error carrying the token, the mode, and the full
// known-name list.
func CheckUnknownArguments(knownNames []string, mode string, args []string) error {
	for i := 1; i < len(args); i++ {
		if args[i] == "--" {
			break
		}

		matched := false
		for _, name := range knownNames {
			rest, ok := strings.CutPrefix(args[i], name)
			if !ok || (rest != "" && rest[0] != '=') {
				continue
			}
			// Skip the next token when it is this flag's value.
			if rest == "" && i < len(args)-1 && !strings.HasPrefix(args[i+1], "-") {
				i++
			}
			matched = true
			break
		}

		if !matched {
			message := fmt.Sprintf("Unrecognized command line argument %s.", args[i])
			if mode != "" {
				message = fmt.Sprintf("Unrecognized command line argument %s for mode %s.", args[i], mode)
			}
			return &ParseError{
				Type:         ErrorTypeUnrecognizedArgument,
				Message:      message,
				Value:        args[i],
				Mode:         mode,
				Known:        knownNames,
				DefaultIndex: -1,
			}
		}
	}
	return nil
}
