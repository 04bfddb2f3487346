package argscan

import (
	"errors"
	"testing"
)

// TestFindArgument covers the raw lookup forms: exact name, inline value,
// next-token value, and literal prefix matching without dash normalization.
func TestFindArgument(t *testing.T) {
	args := []string{"skipped", "--mode", "2", "--test", "aba", "--a", "-b"}

	tests := []struct {
		name  string
		value string
		found bool
	}{
		{"--mode", "2", true},
		{"-mode", "", false},
		{"mode", "", false},
		{"--test", "aba", true},
		{"--a", "", true}, // next token begins with '-', so no value
		{"-a", "", false},
		{"--b", "", false},
		{"-b", "", true}, // last token of the vector
	}

	for _, tt := range tests {
		value, found := FindArgument(tt.name, args)
		if found != tt.found || value != tt.value {
			t.Errorf("FindArgument(%q) = (%q, %v), want (%q, %v)",
				tt.name, value, found, tt.value, tt.found)
		}
	}
}

// TestFindArgumentValueForms checks the value extraction rules one by one.
func TestFindArgumentValueForms(t *testing.T) {
	tests := []struct {
		args  []string
		value string
		found bool
	}{
		{[]string{"prog", "x"}, "", true},        // bare, end of vector
		{[]string{"prog", "x", "--"}, "", true},  // bare, boundary follows
		{[]string{"prog", "x", "5"}, "5", true},  // next-token value
		{[]string{"prog", "x=5"}, "5", true},     // inline value
		{[]string{"prog", "x="}, "", true},       // inline empty value
		{[]string{"prog", "x", "-5"}, "", true},  // dash token is not a value
		{[]string{"prog"}, "", false},            // absent
		{[]string{"prog", "y", "5", "--", "x"}, "", false}, // positional after boundary
		{[]string{"prog", "--", "x"}, "", false}, // boundary first
		{[]string{"prog", "xy"}, "", false},      // prefix without '=' or end
	}

	for _, tt := range tests {
		value, found := FindArgument("x", tt.args)
		if found != tt.found || value != tt.value {
			t.Errorf("FindArgument(\"x\", %v) = (%q, %v), want (%q, %v)",
				tt.args, value, found, tt.value, tt.found)
		}
	}
}

// TestFindArgumentFirstMatchWins verifies duplicates are not an error and
// later occurrences are ignored.
func TestFindArgumentFirstMatchWins(t *testing.T) {
	args := []string{"prog", "--n", "1", "--n", "2"}
	value, found := FindArgument("--n", args)
	if !found || value != "1" {
		t.Errorf("FindArgument(--n) = (%q, %v), want (\"1\", true)", value, found)
	}
}

// TestFindArgumentIdempotent verifies repeated and interleaved lookups over
// the same vector yield identical results in any order.
func TestFindArgumentIdempotent(t *testing.T) {
	args := []string{"prog", "--a", "1", "--b=2"}

	a1, _ := FindArgument("--a", args)
	b1, _ := FindArgument("--b", args)
	b2, _ := FindArgument("--b", args)
	a2, _ := FindArgument("--a", args)

	if a1 != a2 || b1 != b2 {
		t.Errorf("lookups are not order independent: a=%q/%q b=%q/%q", a1, a2, b1, b2)
	}
	if a1 != "1" || b1 != "2" {
		t.Errorf("got a=%q b=%q, want a=\"1\" b=\"2\"", a1, b1)
	}
}

// TestRequireArgument verifies the required-flag wrapper: present flags pass
// through (including present-with-empty-value), absent flags fail with
// MissingArgument.
func TestRequireArgument(t *testing.T) {
	args := []string{"skipped", "--mode", "2", "--test", "aba", "--a", "-b"}

	if v, err := RequireArgument("--mode", args); err != nil || v != "2" {
		t.Errorf("RequireArgument(--mode) = (%q, %v), want (\"2\", nil)", v, err)
	}
	if v, err := RequireArgument("--a", args); err != nil || v != "" {
		t.Errorf("RequireArgument(--a) = (%q, %v), want (\"\", nil)", v, err)
	}
	if v, err := RequireArgument("-b", args); err != nil || v != "" {
		t.Errorf("RequireArgument(-b) = (%q, %v), want (\"\", nil)", v, err)
	}

	for _, name := range []string{"-mode", "-a", "--b"} {
		_, err := RequireArgument(name, args)
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("RequireArgument(%q): expected *ParseError, got %v", name, err)
		}
		if parseErr.Type != ErrorTypeMissingArgument {
			t.Errorf("RequireArgument(%q): type = %s, want %s", name, parseErr.Type, ErrorTypeMissingArgument)
		}
		if parseErr.Flag != name {
			t.Errorf("RequireArgument(%q): flag = %q", name, parseErr.Flag)
		}
	}
}

// TestFlagBoundary pins the boundary computation, including the degenerate
// empty and program-name-only vectors.
func TestFlagBoundary(t *testing.T) {
	tests := []struct {
		args []string
		want int
	}{
		{nil, 1},
		{[]string{"prog"}, 1},
		{[]string{"prog", "--a"}, 2},
		{[]string{"prog", "--"}, 1},
		{[]string{"prog", "--a", "--", "--b"}, 2},
	}
	for _, tt := range tests {
		if got := flagBoundary(tt.args); got != tt.want {
			t.Errorf("flagBoundary(%v) = %d, want %d", tt.args, got, tt.want)
		}
	}
}
