//go:build linux || darwin

package termui

import (
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Terminal owns the interactive console session on POSIX systems: saved
// termios state, the resize flag, and the stdin/stdout descriptors. It is
// acquired once before the event loop and must be released exactly once on
// every exit path, including signal-driven termination.
type Terminal struct {
	inFd  int
	outFd int

	origTermios *unix.Termios
	inRawMode   atomic.Bool

	// Set by the SIGWINCH goroutine, consumed at the top of ReadKey. The
	// only shared mutable state in the package.
	resized atomic.Bool

	winch chan os.Signal
}

// NewTerminal returns a session bound to stdin/stdout. No terminal state is
// touched until EnterRawMode.
func NewTerminal() *Terminal {
	return &Terminal{
		inFd:  int(os.Stdin.Fd()),
		outFd: int(os.Stdout.Fd()),
	}
}

// EnterRawMode switches the terminal to raw mode: no line buffering, no
// echo, no signal-generating keys, and a ~100 ms input read timeout
// (VMIN=0, VTIME=1) that doubles as the event loop's tick interval. It is
// a silent no-op when the process has no controlling terminal.
func (t *Terminal) EnterRawMode() {
	if t.inRawMode.Load() || !term.IsTerminal(t.inFd) {
		return
	}
	orig, err := unix.IoctlGetTermios(t.inFd, ioctlGetTermios)
	if err != nil {
		return
	}
	t.origTermios = orig

	raw := *orig
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1 // deciseconds

	if err := unix.IoctlSetTermios(t.inFd, ioctlSetTermios, &raw); err != nil {
		return
	}
	t.inRawMode.Store(true)
}

// ExitRawMode restores the saved terminal mode. The compare-and-swap makes
// it safe to call repeatedly and concurrently with the signal exit path:
// whichever caller wins performs the restore, the rest are no-ops.
func (t *Terminal) ExitRawMode() {
	if !t.inRawMode.CompareAndSwap(true, false) {
		return
	}
	unix.IoctlSetTermios(t.inFd, ioctlSetTermios, t.origTermios)
}

// Size returns the current terminal dimensions, falling back to 80x24 when
// the query fails.
func (t *Terminal) Size() (cols, rows int) {
	cols, rows, err := term.GetSize(t.outFd)
	if err != nil || cols <= 0 || rows <= 0 {
		return defaultCols, defaultRows
	}
	return cols, rows
}

// InstallSignalHandlers routes SIGWINCH into the resize flag and makes
// SIGINT/SIGTERM restore the terminal before terminating the process. The
// interrupt path performs only fixed work: one literal write, the termios
// restore, and the exit. All other cleanup belongs to the normal loop exit.
func (t *Terminal) InstallSignalHandlers() {
	t.winch = make(chan os.Signal, 1)
	signal.Notify(t.winch, syscall.SIGWINCH)
	go func() {
		for range t.winch {
			t.resized.Store(true)
		}
	}()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-interrupt
		unix.Write(t.outFd, restoreSeq)
		t.ExitRawMode()
		os.Exit(0)
	}()
}

// ReadKey blocks for up to the raw-mode read timeout and returns one
// decoded key, or KeyNone when the timeout elapses. A pending resize is
// reported before any buffered input is consumed.
func (t *Terminal) ReadKey() Key {
	if t.resized.Swap(false) {
		return KeyResize
	}

	var b [1]byte
	n, err := unix.Read(t.inFd, b[:])
	if err != nil || n <= 0 {
		return KeyNone
	}

	switch b[0] {
	case '\r':
		return KeyEnter
	case 'q', 'Q':
		return KeyQuit
	case 0x03:
		return KeyCtrlC
	case ' ':
		return KeySpace
	case 0x1b:
		return t.readEscape()
	}
	return KeyOther
}

// readEscape decodes the remainder of an ESC-initiated sequence. Arrow keys
// arrive as ESC [ A..D. Longer CSI sequences (ESC [ digits ... letter) are
// drained up to csiDrainLimit bytes so stray bytes cannot desynchronize the
// next ReadKey call.
func (t *Terminal) readEscape() Key {
	var seq [2]byte
	if n, err := unix.Read(t.inFd, seq[:1]); err != nil || n <= 0 {
		return KeyOther
	}
	if n, err := unix.Read(t.inFd, seq[1:]); err != nil || n <= 0 {
		return KeyOther
	}
	if seq[0] != '[' {
		return KeyOther
	}
	switch seq[1] {
	case 'A':
		return KeyUp
	case 'B':
		return KeyDown
	case 'C':
		return KeyRight
	case 'D':
		return KeyLeft
	}
	if seq[1] >= '0' && seq[1] <= '9' {
		var d [1]byte
		for limit := csiDrainLimit; limit > 0; limit-- {
			if n, err := unix.Read(t.inFd, d[:]); err != nil || n <= 0 {
				break
			}
			if c := d[0]; (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
				break
			}
		}
	}
	return KeyOther
}

// WriteRaw writes buf to the terminal in full, looping over partial writes.
// Interrupted writes are retried; on any other error the remaining bytes of
// the frame are dropped.
func (t *Terminal) WriteRaw(buf []byte) {
	for len(buf) > 0 {
		n, err := unix.Write(t.outFd, buf)
		if err == unix.EINTR {
			continue
		}
		if err != nil || n <= 0 {
			return
		}
		buf = buf[n:]
	}
}
