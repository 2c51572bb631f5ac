package termui

// Border glyphs for the application frame.
const (
	glyphTopLeft     = "┌" // ┌
	glyphTopRight    = "┐" // ┐
	glyphBottomLeft  = "└" // └
	glyphBottomRight = "┘" // ┘
)

// Status bar hints, chosen by the active page's interaction mode.
const (
	hintScroll = " [q] quit  [←→] tabs  [↑↓] scroll "
	hintSelect = " [q] quit  [←→] tabs  [↑↓] select  [Enter] choose "
	hintToggle = " [q] quit  [←→] tabs  [↑↓] select  [Space] toggle  [Enter] confirm "
)

// App owns the ordered collection of pages, the active tab, the tab bar's
// horizontal scroll window, and the event loop. Rendering is a pure
// function of current state: every frame is recomputed in full and written
// to the terminal in a single raw write.
type App struct {
	title     string // reserved; not rendered
	pages     []*Page
	activeTab int
	tabOffset int // leftmost visible tab when the bar overflows
	running   bool
	onTick    func()
	term      *Terminal
}

// NewApp returns an app with no pages. The title is reserved for future
// use and not currently rendered.
func NewApp(title string) *App {
	return &App{title: title, term: NewTerminal()}
}

// SetOnTick registers a callback invoked roughly every 100 ms while no key
// is pressed. Mutating page content inside the callback is enough: the app
// re-renders automatically after it returns.
func (a *App) SetOnTick(cb func()) *App {
	a.onTick = cb
	return a
}

// AddPage appends a tab and returns its page. Returned pointers remain
// valid across later AddPage calls, so callbacks may safely capture them.
func (a *App) AddPage(name string) *Page {
	p := NewPage(name)
	a.pages = append(a.pages, p)
	return p
}

// Page returns the page at index. The index must be in range; an invalid
// index is a programming error and panics.
func (a *App) Page(index int) *Page {
	return a.pages[index]
}

// ActivePage returns the page of the active tab.
func (a *App) ActivePage() *Page {
	return a.pages[a.activeTab]
}

// PageCount returns the number of pages.
func (a *App) PageCount() int {
	return len(a.pages)
}

// ActiveTab returns the index of the active tab.
func (a *App) ActiveTab() int {
	return a.activeTab
}

// SetActiveTab switches the active tab. Out-of-range indices are ignored.
func (a *App) SetActiveTab(index int) {
	if index >= 0 && index < len(a.pages) {
		a.activeTab = index
	}
}

// Stop makes the event loop exit after the current iteration.
func (a *App) Stop() {
	a.running = false
}

// Run installs signal handling, enters raw mode and drives the event loop
// until a quit key or a terminating signal. On exit the cursor, screen and
// terminal mode are restored. An app with no pages returns immediately.
func (a *App) Run() {
	if len(a.pages) == 0 {
		return
	}
	a.term.InstallSignalHandlers()
	a.term.EnterRawMode()
	a.term.HideCursor()
	a.running = true

	a.render()
	for a.running {
		key := a.term.ReadKey()
		if key == KeyNone {
			if a.onTick != nil {
				a.onTick()
				a.render()
			}
			continue
		}
		a.handleKey(key)
	}

	a.term.ShowCursor()
	a.term.ClearScreen()
	a.term.HomeCursor()
	a.term.ExitRawMode()
}

// handleKey dispatches one key event: quit and resize first, then the
// active page's list, then tab navigation and page scrolling.
func (a *App) handleKey(key Key) {
	switch key {
	case KeyNone:
		return
	case KeyQuit, KeyCtrlC:
		a.running = false
		return
	case KeyResize:
		a.render()
		return
	}

	p := a.pages[a.activeTab]
	if l := p.List(); l != nil && l.HandleKey(key) {
		a.render()
		return
	}

	switch key {
	case KeyLeft:
		if a.activeTab > 0 {
			a.activeTab--
			if a.activeTab < a.tabOffset {
				a.tabOffset = a.activeTab
			}
			a.render()
		}
	case KeyRight:
		if a.activeTab+1 < len(a.pages) {
			a.activeTab++
			a.render()
		}
	case KeyUp:
		p.ScrollUp(1)
		a.render()
	case KeyDown:
		_, rows := a.term.Size()
		p.ScrollDown(1, contentRows(rows))
		a.render()
	}
}

// contentRows returns the viewport height for a terminal of the given row
// count: everything except the two border rows and the spare bottom row.
func contentRows(rows int) int {
	if rows-3 < 1 {
		return 1
	}
	return rows - 3
}

// render queries the terminal size, builds the frame and issues exactly one
// raw write. Outside the event loop it is a no-op.
func (a *App) render() {
	if !a.running {
		return
	}
	cols, rows := a.term.Size()
	frame := a.renderFrame(cols, rows)
	if frame != nil {
		a.term.WriteRaw(frame)
	}
}

// lastVisibleTab returns the index of the last tab that fits when the bar
// is rendered from offset within budget display columns, reserving two
// columns for the " >" continuation indicator whenever more tabs follow.
// It always returns at least offset.
func (a *App) lastVisibleTab(offset, budget int) int {
	if offset >= len(a.pages) {
		return offset
	}
	last := offset
	used := DisplayWidth(a.pages[offset].Title()) + 2
	for i := offset + 1; i < len(a.pages); i++ {
		tabW := DisplayWidth(a.pages[i].Title()) + 2
		rightReserve := 0
		if i+1 < len(a.pages) {
			rightReserve = 2
		}
		if used+1+tabW+rightReserve > budget {
			break
		}
		used += 1 + tabW // separator + tab
		last = i
	}
	return last
}

// renderFrame builds one complete ANSI frame for a cols x rows terminal.
// It returns nil, skipping the frame, when the terminal is too small to
// hold the chrome; rendering resumes on the next frame once the terminal
// grows again.
func (a *App) renderFrame(cols, rows int) []byte {
	if cols < 10 || rows < 5 {
		return nil
	}

	dim := NewStyle(BrightBlack)
	buf := make([]byte, 0, cols*rows*8)
	buf = append(buf, "\x1b[H\x1b[0m"...)

	// The advancement loop below only ever moves the window right, so snap
	// it left first when the active tab is off the left edge.
	if a.activeTab < a.tabOffset {
		a.tabOffset = a.activeTab
	}
	for {
		budget := cols - 3
		if a.tabOffset > 0 {
			budget -= 2
		}
		if a.activeTab <= a.lastVisibleTab(a.tabOffset, budget) {
			break
		}
		a.tabOffset++
	}

	tabBudget := cols - 3
	if a.tabOffset > 0 {
		tabBudget -= 2
	}
	lastVisible := a.lastVisibleTab(a.tabOffset, tabBudget)

	var tabBar []byte
	tabPlainLen := 0
	if a.tabOffset > 0 {
		tabBar = append(tabBar, dim.Begin()+"<"+Reset+" "...)
		tabPlainLen += 2
	}
	for i := a.tabOffset; i <= lastVisible; i++ {
		title := a.pages[i].Title()
		if i == a.activeTab {
			tabBar = append(tabBar, Style{}.Bold().Reversed().Begin()+" "+title+" "+Reset...)
		} else {
			tabBar = append(tabBar, Reset+" "+title+" "...)
		}
		tabPlainLen += DisplayWidth(title) + 2
		if i < lastVisible {
			tabBar = append(tabBar, dim.Begin()+glyphVRule+Reset...)
			tabPlainLen++
		}
	}
	if lastVisible+1 < len(a.pages) {
		tabBar = append(tabBar, " "+dim.Begin()+">"+Reset...)
		tabPlainLen += 2
	}

	// Top border: corner, one dash, the tab bar, dashes to fill, corner.
	buf = append(buf, dim.Begin()+glyphTopLeft+glyphHRule+Reset...)
	buf = append(buf, tabBar...)
	if remaining := cols - 3 - tabPlainLen; remaining > 0 {
		buf = append(buf, dim.Begin()...)
		for i := 0; i < remaining; i++ {
			buf = append(buf, glyphHRule...)
		}
		buf = append(buf, Reset...)
	}
	buf = append(buf, dim.Begin()+glyphTopRight+Reset...)

	viewRows := contentRows(rows)
	p := a.pages[a.activeTab]
	scroll := p.ScrollOffset()

	staticLines := p.Lines()
	var listLines []Text
	if l := p.List(); l != nil {
		listLines = l.Render(cols - 4)
	}
	total := len(staticLines) + len(listLines)

	for row := 0; row < viewRows; row++ {
		buf = append(buf, "\x1b["...)
		buf = appendInt(buf, 2+row)
		buf = append(buf, ";1H"...)
		buf = append(buf, dim.Begin()+glyphVRule+Reset...)

		lineIdx := scroll + row
		if lineIdx < total {
			var line Text
			if lineIdx < len(staticLines) {
				line = staticLines[lineIdx]
			} else {
				line = listLines[lineIdx-len(staticLines)]
			}
			contentWidth := cols - 3
			buf = append(buf, ' ')
			buf = append(buf, line.Render(contentWidth)...)
			for pad := contentWidth - line.Length(); pad > 0; pad-- {
				buf = append(buf, ' ')
			}
		} else {
			for i := 0; i < cols-2; i++ {
				buf = append(buf, ' ')
			}
		}

		buf = append(buf, dim.Begin()+glyphVRule+Reset...)
	}

	// Bottom border: centered key hints, then a first-last/total scroll
	// indicator right of center when the content overflows the viewport.
	buf = append(buf, "\x1b["...)
	buf = appendInt(buf, rows-1)
	buf = append(buf, ";1H"...)

	hint := hintScroll
	if l := p.List(); l != nil {
		if l.MultiSelect() {
			hint = hintToggle
		} else {
			hint = hintSelect
		}
	}

	var scrollHint []byte
	if total > viewRows {
		end := scroll + viewRows
		if end > total {
			end = total
		}
		scrollHint = append(scrollHint, ' ')
		scrollHint = appendInt(scrollHint, scroll+1)
		scrollHint = append(scrollHint, '-')
		scrollHint = appendInt(scrollHint, end)
		scrollHint = append(scrollHint, '/')
		scrollHint = appendInt(scrollHint, total)
		scrollHint = append(scrollHint, ' ')
	}

	totalFixed := DisplayWidth(hint) + len(scrollHint)
	leftDash := (cols - 2 - totalFixed) / 2
	if leftDash < 0 {
		leftDash = 0
	}
	rightDash := cols - 2 - totalFixed - leftDash
	if rightDash < 0 {
		rightDash = 0
	}

	buf = append(buf, dim.Begin()+glyphBottomLeft...)
	for i := 0; i < leftDash; i++ {
		buf = append(buf, glyphHRule...)
	}
	buf = append(buf, Reset...)
	buf = append(buf, hint...)
	buf = append(buf, dim.Begin()...)
	for i := 0; i < rightDash; i++ {
		buf = append(buf, glyphHRule...)
	}
	if len(scrollHint) > 0 {
		buf = append(buf, Reset...)
		buf = append(buf, scrollHint...)
		buf = append(buf, dim.Begin()...)
	}
	buf = append(buf, glyphBottomRight+Reset...)
	buf = append(buf, "\x1b[J"...) // clear from cursor to end of screen

	return buf
}

// appendInt appends the decimal representation of n without allocating.
func appendInt(b []byte, n int) []byte {
	if n == 0 {
		return append(b, '0')
	}
	if n < 0 {
		b = append(b, '-')
		n = -n
	}
	var scratch [10]byte
	i := len(scratch)
	for n > 0 {
		i--
		scratch[i] = byte('0' + n%10)
		n /= 10
	}
	return append(b, scratch[i:]...)
}
