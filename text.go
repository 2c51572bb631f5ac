package termui

import "strings"

// Span is a run of content rendered with a single style.
type Span struct {
	Content string
	Style   Style
}

// Text is an ordered sequence of styled spans forming one display line.
// Spans render left to right in insertion order. The zero value is an empty
// line and ready to use.
type Text struct {
	spans []Span
}

// Plain returns a Text holding content in the default style.
func Plain(content string) Text {
	return Text{spans: []Span{{Content: content}}}
}

// Styled returns a Text holding content in the given style.
func Styled(content string, style Style) Text {
	return Text{spans: []Span{{Content: content, Style: style}}}
}

// Colored returns a Text holding content in the given foreground color.
func Colored(content string, fg Color) Text {
	return Styled(content, NewStyle(fg))
}

// Add appends a styled span and returns the extended line, so spans can be
// chained: Plain("Path: ").Add(path, NewStyle(Green)).
func (t Text) Add(content string, style Style) Text {
	t.spans = append(t.spans, Span{Content: content, Style: style})
	return t
}

// Spans returns the line's spans in rendering order.
func (t Text) Spans() []Span {
	return t.spans
}

// Render serializes the line to escape-coded output. If maxWidth > 0 each
// span is measured by display width and truncated once the remaining budget
// is exhausted; further spans are dropped. Every span, including empty ones,
// is bracketed by its Begin sequence and a full reset so no attribute bleeds
// into the next span.
func (t Text) Render(maxWidth int) string {
	var b strings.Builder
	b.Grow(len(t.spans) * 32)
	remaining := maxWidth
	for _, span := range t.spans {
		if maxWidth > 0 && remaining <= 0 {
			break
		}
		content := span.Content
		if maxWidth > 0 {
			if w := DisplayWidth(content); w > remaining {
				content = Truncate(content, remaining)
				remaining = 0
			} else {
				remaining -= w
			}
		}
		b.WriteString(span.Style.Begin())
		b.WriteString(content)
		b.WriteString(Reset)
	}
	return b.String()
}

// Length returns the total display width of the line in columns.
func (t Text) Length() int {
	n := 0
	for _, span := range t.spans {
		n += DisplayWidth(span.Content)
	}
	return n
}
