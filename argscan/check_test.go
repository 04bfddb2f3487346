package argscan

import (
	"errors"
	"testing"
)

// TestCheckUnknownArgumentsRecognized: bare flags with next-token values and
// inline values are all accepted.
func TestCheckUnknownArgumentsRecognized(t *testing.T) {
	known := []string{"--mode", "--test", "--other"}
	args := []string{"skipped", "--mode", "2", "--test", "5"}
	if err := CheckUnknownArguments(known, "", args); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestCheckUnknownArgumentsInlineValue accepts the name=value form.
func TestCheckUnknownArgumentsInlineValue(t *testing.T) {
	if err := CheckUnknownArguments([]string{"--flag"}, "", []string{"prog", "--flag=3"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestCheckUnknownArgumentsUnmatched reports the first unmatched token with
// the full known-name list.
func TestCheckUnknownArgumentsUnmatched(t *testing.T) {
	known := []string{"--mode", "--test"}
	args := []string{"skipped", "--mode", "2", "--unknown", "5"}

	err := CheckUnknownArguments(known, "", args)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if parseErr.Type != ErrorTypeUnrecognizedArgument {
		t.Errorf("type = %s, want %s", parseErr.Type, ErrorTypeUnrecognizedArgument)
	}
	if parseErr.Value != "--unknown" {
		t.Errorf("value = %q, want \"--unknown\"", parseErr.Value)
	}
	if len(parseErr.Known) != 2 {
		t.Errorf("known = %v, want %v", parseErr.Known, known)
	}
}

// TestCheckUnknownArgumentsSimpleUnmatched mirrors the minimal single-flag
// failure case.
func TestCheckUnknownArgumentsSimpleUnmatched(t *testing.T) {
	err := CheckUnknownArguments([]string{"--flag"}, "", []string{"prog", "--other"})
	if err == nil {
		t.Fatal("expected error for unmatched flag")
	}
}

// TestCheckUnknownArgumentsTerminator: everything after "--" is positional
// and exempt from validation.
func TestCheckUnknownArgumentsTerminator(t *testing.T) {
	known := []string{"--mode"}
	args := []string{"skipped", "--mode", "2", "--", "--unknown"}
	if err := CheckUnknownArguments(known, "", args); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestCheckUnknownArgumentsValueConsumption: a value that looks like a word
// is consumed by its bare flag and never misflagged, matching FindArgument's
// next-token rule. A bare known flag just before "--" consumes nothing.
func TestCheckUnknownArgumentsValueConsumption(t *testing.T) {
	known := []string{"--in"}

	// "data.txt" is --in's value, not an unrecognized token.
	if err := CheckUnknownArguments(known, "", []string{"prog", "--in", "data.txt"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The terminator begins with '-' and is never consumed as a value.
	if err := CheckUnknownArguments(known, "", []string{"prog", "--in", "--", "word"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Without a preceding bare flag the same word is unrecognized.
	err := CheckUnknownArguments(known, "", []string{"prog", "data.txt"})
	var parseErr *ParseError
	if !errors.As(err, &parseErr) || parseErr.Value != "data.txt" {
		t.Fatalf("expected unrecognized \"data.txt\", got %v", err)
	}
}

// TestCheckUnknownArgumentsModeLabel threads the mode label into the message.
func TestCheckUnknownArgumentsModeLabel(t *testing.T) {
	err := CheckUnknownArguments([]string{"--shots"}, "sample", []string{"prog", "--bad"})
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if parseErr.Mode != "sample" {
		t.Errorf("mode = %q, want \"sample\"", parseErr.Mode)
	}
	want := "Unrecognized command line argument --bad for mode sample."
	if parseErr.Message != want {
		t.Errorf("message = %q, want %q", parseErr.Message, want)
	}
}
