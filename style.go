// Package termui is an embeddable toolkit for tabbed, full-screen terminal
// interfaces: styled text, tables, progress bars, selectable lists and a
// directory browser, driven by a raw-mode keyboard event loop. Every frame
// is recomputed and rewritten in full; there is no diffing.
package termui

import "strconv"

// Color is one of the 16 basic terminal colors, or ColorDefault for no
// override. The value doubles as the ANSI SGR foreground code; the matching
// background code is foreground + 10, which holds for both the normal
// 30-37 range and the bright 90-97 range.
type Color int

const (
	ColorDefault Color = 0

	Black   Color = 30
	Red     Color = 31
	Green   Color = 32
	Yellow  Color = 33
	Blue    Color = 34
	Magenta Color = 35
	Cyan    Color = 36
	White   Color = 37

	BrightBlack   Color = 90
	BrightRed     Color = 91
	BrightGreen   Color = 92
	BrightYellow  Color = 93
	BrightBlue    Color = 94
	BrightMagenta Color = 95
	BrightCyan    Color = 96
	BrightWhite   Color = 97
)

// Attr represents text attributes that can be combined.
type Attr uint8

const (
	AttrNone Attr = 0
	AttrBold Attr = 1 << iota
	AttrUnderline
	AttrReverse
)

// Has returns true if the attribute set contains attr.
func (a Attr) Has(attr Attr) bool {
	return a&attr != 0
}

// With returns a new attribute set with attr added.
func (a Attr) With(attr Attr) Attr {
	return a | attr
}

// Style combines foreground and background colors with text attributes.
// It is a value type: every mutator returns a modified copy, so styles can
// be shared and chained freely.
type Style struct {
	FG   Color
	BG   Color
	Attr Attr
}

// NewStyle returns a style with the given foreground color.
func NewStyle(fg Color) Style {
	return Style{FG: fg}
}

// BoldStyle returns a bold style with the given foreground color.
func BoldStyle(fg Color) Style {
	return Style{FG: fg, Attr: AttrBold}
}

// Bold returns a new style with bold enabled.
func (s Style) Bold() Style {
	s.Attr = s.Attr.With(AttrBold)
	return s
}

// Underline returns a new style with underline enabled.
func (s Style) Underline() Style {
	s.Attr = s.Attr.With(AttrUnderline)
	return s
}

// Reversed returns a new style with reverse video enabled.
func (s Style) Reversed() Style {
	s.Attr = s.Attr.With(AttrReverse)
	return s
}

// Fg returns a new style with the given foreground color.
func (s Style) Fg(c Color) Style {
	s.FG = c
	return s
}

// Bg returns a new style with the given background color.
func (s Style) Bg(c Color) Style {
	s.BG = c
	return s
}

// Begin returns the SGR sequence that activates the style. The sequence
// always starts from a reset baseline so nothing leaks in from earlier
// output; attributes left at their default are omitted entirely rather
// than emitted as neutral codes. Emission order is fixed: bold, underline,
// reverse, foreground, background.
func (s Style) Begin() string {
	seq := make([]byte, 0, 16)
	seq = append(seq, "\x1b[0"...)
	if s.Attr.Has(AttrBold) {
		seq = append(seq, ";1"...)
	}
	if s.Attr.Has(AttrUnderline) {
		seq = append(seq, ";4"...)
	}
	if s.Attr.Has(AttrReverse) {
		seq = append(seq, ";7"...)
	}
	if s.FG != ColorDefault {
		seq = append(seq, ';')
		seq = strconv.AppendInt(seq, int64(s.FG), 10)
	}
	if s.BG != ColorDefault {
		seq = append(seq, ';')
		seq = strconv.AppendInt(seq, int64(s.BG)+10, 10)
	}
	seq = append(seq, 'm')
	return string(seq)
}

// Reset is the SGR sequence that returns the terminal to its default
// rendition.
const Reset = "\x1b[0m"
