//go:build windows

package termui

import (
	"encoding/binary"
	"os"
	"os/signal"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Terminal owns the interactive console session on Windows: saved console
// modes and code page, and the stdin/stdout handles. Resize is surfaced as
// a console event rather than a signal, so ReadKey reports it directly.
type Terminal struct {
	hIn  windows.Handle
	hOut windows.Handle

	origInMode  uint32
	origOutMode uint32
	origCP      uint32
	inRawMode   atomic.Bool
}

var (
	modkernel32            = windows.NewLazySystemDLL("kernel32.dll")
	procPeekConsoleInputW  = modkernel32.NewProc("PeekConsoleInputW")
	procReadConsoleInputW  = modkernel32.NewProc("ReadConsoleInputW")
	procGetConsoleOutputCP = modkernel32.NewProc("GetConsoleOutputCP")
	procSetConsoleOutputCP = modkernel32.NewProc("SetConsoleOutputCP")
)

const (
	keyEvent              = 0x0001
	windowBufferSizeEvent = 0x0004

	vkReturn = 0x0D
	vkSpace  = 0x20
	vkLeft   = 0x25
	vkUp     = 0x26
	vkRight  = 0x27
	vkDown   = 0x28

	utf8CodePage = 65001
)

// inputRecord mirrors the Win32 INPUT_RECORD layout. For key events the
// payload is a KEY_EVENT_RECORD: BOOL bKeyDown, WORD wRepeatCount, WORD
// wVirtualKeyCode, WORD wVirtualScanCode, WCHAR UnicodeChar, DWORD
// dwControlKeyState.
type inputRecord struct {
	eventType uint16
	_         uint16
	event     [16]byte
}

func (r *inputRecord) keyDown() bool {
	return binary.LittleEndian.Uint32(r.event[0:4]) != 0
}

func (r *inputRecord) virtualKeyCode() uint16 {
	return binary.LittleEndian.Uint16(r.event[6:8])
}

func (r *inputRecord) unicodeChar() uint16 {
	return binary.LittleEndian.Uint16(r.event[10:12])
}

// NewTerminal returns a session bound to the console's stdin/stdout
// handles. No console state is touched until EnterRawMode.
func NewTerminal() *Terminal {
	return &Terminal{
		hIn:  windows.Handle(os.Stdin.Fd()),
		hOut: windows.Handle(os.Stdout.Fd()),
	}
}

// EnterRawMode enables virtual terminal processing on the output, switches
// the input to window-event reporting only (no line input, echo or
// processed keys), and selects the UTF-8 code page. It is a silent no-op
// when stdout is not a console.
func (t *Terminal) EnterRawMode() {
	if t.inRawMode.Load() {
		return
	}
	if err := windows.GetConsoleMode(t.hOut, &t.origOutMode); err != nil {
		return
	}
	if err := windows.GetConsoleMode(t.hIn, &t.origInMode); err != nil {
		return
	}
	windows.SetConsoleMode(t.hOut, t.origOutMode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
	windows.SetConsoleMode(t.hIn, windows.ENABLE_WINDOW_INPUT)

	cp, _, _ := procGetConsoleOutputCP.Call()
	t.origCP = uint32(cp)
	procSetConsoleOutputCP.Call(uintptr(utf8CodePage))

	t.inRawMode.Store(true)
}

// ExitRawMode restores the saved console modes and code page. Safe to call
// repeatedly; only the first caller performs the restore.
func (t *Terminal) ExitRawMode() {
	if !t.inRawMode.CompareAndSwap(true, false) {
		return
	}
	windows.SetConsoleMode(t.hOut, t.origOutMode)
	windows.SetConsoleMode(t.hIn, t.origInMode)
	procSetConsoleOutputCP.Call(uintptr(t.origCP))
}

// Size returns the visible console window dimensions, falling back to
// 80x24 when the query fails.
func (t *Terminal) Size() (cols, rows int) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(t.hOut, &info); err != nil {
		return defaultCols, defaultRows
	}
	cols = int(info.Window.Right-info.Window.Left) + 1
	rows = int(info.Window.Bottom-info.Window.Top) + 1
	if cols <= 0 || rows <= 0 {
		return defaultCols, defaultRows
	}
	return cols, rows
}

// InstallSignalHandlers makes Ctrl-Break style interrupts restore the
// console before terminating the process. Resize needs no handler here:
// it arrives as a console input event.
func (t *Terminal) InstallSignalHandlers() {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		t.WriteRaw(restoreSeq)
		t.ExitRawMode()
		os.Exit(0)
	}()
}

// ReadKey waits up to ~100 ms for a console input record and decodes it.
// Window buffer size events are reported as KeyResize; non-key records and
// key releases are skipped without blocking.
func (t *Terminal) ReadKey() Key {
	event, err := windows.WaitForSingleObject(t.hIn, 100)
	if err != nil || event != windows.WAIT_OBJECT_0 {
		return KeyNone
	}

	for {
		var rec inputRecord
		var count uint32
		ret, _, _ := procPeekConsoleInputW.Call(
			uintptr(t.hIn), uintptr(unsafe.Pointer(&rec)), 1,
			uintptr(unsafe.Pointer(&count)))
		if ret == 0 || count == 0 {
			return KeyNone
		}
		ret, _, _ = procReadConsoleInputW.Call(
			uintptr(t.hIn), uintptr(unsafe.Pointer(&rec)), 1,
			uintptr(unsafe.Pointer(&count)))
		if ret == 0 || count == 0 {
			return KeyNone
		}

		if rec.eventType == windowBufferSizeEvent {
			return KeyResize
		}
		if rec.eventType != keyEvent || !rec.keyDown() {
			continue
		}

		vk := rec.virtualKeyCode()
		ch := rec.unicodeChar()
		if vk == vkReturn {
			return KeyEnter
		}
		if ch == 'q' || ch == 'Q' {
			return KeyQuit
		}
		if ch == 0x03 {
			return KeyCtrlC
		}
		switch vk {
		case vkLeft:
			return KeyLeft
		case vkRight:
			return KeyRight
		case vkUp:
			return KeyUp
		case vkDown:
			return KeyDown
		case vkSpace:
			return KeySpace
		}
		if ch != 0 {
			return KeyOther
		}
	}
}

// WriteRaw writes buf to the console in full, looping over partial writes.
// Virtual terminal processing interprets the embedded escape sequences.
func (t *Terminal) WriteRaw(buf []byte) {
	for len(buf) > 0 {
		n, err := windows.Write(t.hOut, buf)
		if err != nil || n <= 0 {
			return
		}
		buf = buf[n:]
	}
}
