package termui

// Key is one decoded logical key event as delivered by Terminal.ReadKey.
type Key int

const (
	KeyNone Key = iota // read timed out, nothing pressed
	KeyQuit
	KeyCtrlC
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyEnter
	KeySpace
	KeyResize // terminal was resized since the last read
	KeyOther  // recognized but unhandled input
)

// Fallback dimensions when the size query fails (no tty, CI, pipes).
const (
	defaultCols = 80
	defaultRows = 24
)

// csiDrainLimit caps how many bytes of an unrecognized CSI sequence are
// read and discarded before giving up, so malformed input cannot stall the
// decoder.
const csiDrainLimit = 32

// restoreSeq makes the terminal usable again after a full-screen session:
// show cursor, clear screen, home cursor. Kept as literal bytes so the
// interrupt path can write it without any formatting or allocation.
var restoreSeq = []byte("\x1b[?25h\x1b[2J\x1b[1;1H")

// Cursor and screen control sequences used by the render pipeline.
var (
	seqHideCursor  = []byte("\x1b[?25l")
	seqShowCursor  = []byte("\x1b[?25h")
	seqClearScreen = []byte("\x1b[2J")
	seqHomeCursor  = []byte("\x1b[H")
)

// HideCursor makes the cursor invisible.
func (t *Terminal) HideCursor() {
	t.WriteRaw(seqHideCursor)
}

// ShowCursor makes the cursor visible.
func (t *Terminal) ShowCursor() {
	t.WriteRaw(seqShowCursor)
}

// ClearScreen erases the whole screen.
func (t *Terminal) ClearScreen() {
	t.WriteRaw(seqClearScreen)
}

// HomeCursor moves the cursor to the top-left corner.
func (t *Terminal) HomeCursor() {
	t.WriteRaw(seqHomeCursor)
}
