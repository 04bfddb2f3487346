package scanio

import (
	"fmt"
	"strconv"
)

// ColorSpec represents a color in the basic 16-color space (0-7 normal,
// 8-15 bright).
type ColorSpec struct {
	index int
}

var (
	Black   = ColorSpec{0}
	Red     = ColorSpec{1}
	Green   = ColorSpec{2}
	Yellow  = ColorSpec{3}
	Blue    = ColorSpec{4}
	Magenta = ColorSpec{5}
	Cyan    = ColorSpec{6}
	White   = ColorSpec{7}

	BrightBlack   = ColorSpec{8} // Gray
	BrightRed     = ColorSpec{9}
	BrightGreen   = ColorSpec{10}
	BrightYellow  = ColorSpec{11}
	BrightBlue    = ColorSpec{12}
	BrightMagenta = ColorSpec{13}
	BrightCyan    = ColorSpec{14}
	BrightWhite   = ColorSpec{15}
)

// Style is a fluent builder for foreground color and attributes.
type Style struct {
	fg                *ColorSpec
	bold, faint       bool
	underline, invert bool
}

// NewStyle creates a new empty style builder.
func NewStyle() *Style                 { return &Style{} }
func (s *Style) Fg(c ColorSpec) *Style { s.fg = &c; return s }
func (s *Style) Bold() *Style          { s.bold = true; return s }
func (s *Style) Faint() *Style         { s.faint = true; return s }
func (s *Style) Underline() *Style     { s.underline = true; return s }
func (s *Style) Invert() *Style        { s.invert = true; return s }

// Sprint returns a styled string if color is supported; otherwise it
// returns the text unchanged.
func (s *Style) Sprint(io *IOManager, text string) string {
	if !io.SupportsColor() {
		return text
	}
	seq := s.ansiPrefix()
	if seq == "" {
		return text
	}
	return "\x1b[" + seq + "m" + text + "\x1b[0m"
}

// Sprintf formats the content with fmt.Sprintf and then applies the style.
func (s *Style) Sprintf(io *IOManager, format string, a ...any) string {
	return s.Sprint(io, fmt.Sprintf(format, a...))
}

func (s *Style) ansiPrefix() string {
	codes := make([]string, 0, 4)
	if s.bold {
		codes = append(codes, "1")
	}
	if s.faint {
		codes = append(codes, "2")
	}
	if s.underline {
		codes = append(codes, "4")
	}
	if s.invert {
		codes = append(codes, "7")
	}
	if s.fg != nil {
		idx := s.fg.index
		if idx < 8 {
			codes = append(codes, strconv.Itoa(30+idx))
		} else {
			codes = append(codes, strconv.Itoa(90+idx-8))
		}
	}
	out := ""
	for _, c := range codes {
		if out != "" {
			out += ";"
		}
		out += c
	}
	return out
}
