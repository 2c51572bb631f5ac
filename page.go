package termui

// Page is one tab's content: a title, ordered static lines, an optional
// selectable list rendered below the static lines, and a scroll offset.
// Pages are created through App.AddPage and mutated in place; the canonical
// live-update pattern is Clear followed by re-adding lines, a full content
// replace rather than incremental patching.
type Page struct {
	title  string
	lines  []Text
	list   *SelectableList
	scroll int
}

// NewPage returns an empty page with the given tab title.
func NewPage(title string) *Page {
	return &Page{title: title}
}

// Title returns the tab title.
func (p *Page) Title() string {
	return p.title
}

// AddLine appends a styled line.
func (p *Page) AddLine(line Text) *Page {
	p.lines = append(p.lines, line)
	return p
}

// AddPlain appends an unstyled line.
func (p *Page) AddPlain(content string) *Page {
	return p.AddLine(Plain(content))
}

// AddLines appends a batch of lines, e.g. a rendered table.
func (p *Page) AddLines(lines []Text) *Page {
	p.lines = append(p.lines, lines...)
	return p
}

// AddBlank appends an empty line.
func (p *Page) AddBlank() *Page {
	return p.AddLine(Text{})
}

// UpdateLine replaces a single static line in place. Out-of-range indices
// are silently ignored.
func (p *Page) UpdateLine(index int, line Text) *Page {
	if index >= 0 && index < len(p.lines) {
		p.lines[index] = line
	}
	return p
}

// Clear removes all static lines and resets the scroll position. An
// attached list is kept; replace it explicitly with SetList if needed.
func (p *Page) Clear() *Page {
	p.lines = nil
	p.scroll = 0
	return p
}

// SetList attaches a selectable list, replacing any previous one.
func (p *Page) SetList(list *SelectableList) *Page {
	p.list = list
	return p
}

// List returns the attached list, or nil if the page has none.
func (p *Page) List() *SelectableList {
	return p.list
}

// Lines returns the static lines.
func (p *Page) Lines() []Text {
	return p.lines
}

// ScrollUp moves the viewport up by n lines, clamped at the top.
func (p *Page) ScrollUp(n int) {
	p.scroll -= n
	if p.scroll < 0 {
		p.scroll = 0
	}
}

// ScrollDown moves the viewport down by n lines, clamped so the last
// visibleRows lines stay reachable. visibleRows <= 0 pins the page to the
// top (everything already fits).
func (p *Page) ScrollDown(n, visibleRows int) {
	effectiveRows := visibleRows
	if effectiveRows <= 0 {
		effectiveRows = p.TotalLines()
	}
	maxScroll := p.TotalLines() - effectiveRows
	if maxScroll < 0 {
		maxScroll = 0
	}
	p.scroll += n
	if p.scroll > maxScroll {
		p.scroll = maxScroll
	}
}

// ScrollOffset returns the current scroll position.
func (p *Page) ScrollOffset() int {
	return p.scroll
}

// TotalLines returns the number of content lines: static lines plus the
// attached list's items, counted live rather than cached.
func (p *Page) TotalLines() int {
	n := len(p.lines)
	if p.list != nil {
		n += p.list.Len()
	}
	return n
}
