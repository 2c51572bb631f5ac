package termui

import (
	"strings"
	"testing"
)

func newTestApp(tabs ...string) *App {
	a := NewApp("test")
	for _, name := range tabs {
		a.AddPage(name)
	}
	return a
}

func TestAppTabNavigationClamps(t *testing.T) {
	a := newTestApp("one", "two")
	a.handleKey(KeyRight)
	a.handleKey(KeyRight)
	if a.ActiveTab() != 1 {
		t.Errorf("ActiveTab = %d after Right past the end, want 1", a.ActiveTab())
	}
	a.handleKey(KeyLeft)
	a.handleKey(KeyLeft)
	if a.ActiveTab() != 0 {
		t.Errorf("ActiveTab = %d after Left past the start, want 0", a.ActiveTab())
	}
}

func TestAppListConsumesArrowsBeforeTabs(t *testing.T) {
	a := newTestApp("one", "two")
	a.Page(0).SetList(newTestList("a", "b"))

	a.handleKey(KeyDown)
	if got := a.Page(0).List().Cursor(); got != 1 {
		t.Errorf("list cursor = %d after Down, want 1", got)
	}
	if a.ActiveTab() != 0 {
		t.Errorf("ActiveTab = %d, list should have consumed the key", a.ActiveTab())
	}

	// At the bottom the list rejects Down and the page scrolls instead,
	// so the tab still must not change.
	a.handleKey(KeyDown)
	if a.ActiveTab() != 0 {
		t.Errorf("ActiveTab = %d after Down at list bottom, want 0", a.ActiveTab())
	}
}

func TestAppSetActiveTab(t *testing.T) {
	a := newTestApp("one", "two", "three")
	a.SetActiveTab(2)
	if a.ActiveTab() != 2 {
		t.Errorf("ActiveTab = %d, want 2", a.ActiveTab())
	}
	a.SetActiveTab(99)
	a.SetActiveTab(-1)
	if a.ActiveTab() != 2 {
		t.Errorf("ActiveTab = %d after out-of-range sets, want 2", a.ActiveTab())
	}
}

func TestAppQuitKeysStopLoop(t *testing.T) {
	for _, k := range []Key{KeyQuit, KeyCtrlC} {
		a := newTestApp("one")
		a.running = true
		a.handleKey(k)
		if a.running {
			t.Errorf("key %d did not stop the loop", k)
		}
	}
}

func TestRenderFrameTooSmall(t *testing.T) {
	a := newTestApp("one")
	if frame := a.renderFrame(9, 24); frame != nil {
		t.Error("frame rendered at 9 columns")
	}
	if frame := a.renderFrame(80, 4); frame != nil {
		t.Error("frame rendered at 4 rows")
	}
	if frame := a.renderFrame(10, 5); frame == nil {
		t.Error("no frame at the minimum usable size")
	}
}

func TestRenderFrameChrome(t *testing.T) {
	a := newTestApp("Dash", "Logs")
	a.Page(0).AddPlain("hello")

	frame := string(a.renderFrame(80, 24))
	if !strings.HasPrefix(frame, "\x1b[H\x1b[0m") {
		t.Errorf("frame does not start with home+reset: %q", frame[:12])
	}
	if !strings.Contains(frame, "\x1b[0;1;7m Dash \x1b[0m") {
		t.Error("active tab not rendered bold reverse")
	}
	if !strings.Contains(frame, " Logs ") {
		t.Error("inactive tab title missing")
	}
	for _, glyph := range []string{glyphTopLeft, glyphTopRight, glyphBottomLeft, glyphBottomRight} {
		if !strings.Contains(frame, glyph) {
			t.Errorf("frame missing border glyph %q", glyph)
		}
	}
	if !strings.Contains(frame, "hello") {
		t.Error("page content missing")
	}
	if !strings.Contains(frame, hintScroll) {
		t.Error("status hints missing")
	}
	if !strings.HasSuffix(frame, "\x1b[J") {
		t.Error("frame does not end with clear-to-end")
	}
}

func TestRenderFrameStatusHintsFollowListMode(t *testing.T) {
	a := newTestApp("one")
	a.Page(0).SetList(newTestList("a"))
	if !strings.Contains(string(a.renderFrame(100, 24)), hintSelect) {
		t.Error("single-select hints missing")
	}
	a.Page(0).List().SetMultiSelect(true)
	if !strings.Contains(string(a.renderFrame(100, 24)), hintToggle) {
		t.Error("multi-select hints missing")
	}
}

func TestRenderFrameScrollIndicator(t *testing.T) {
	a := newTestApp("one")
	for i := 0; i < 10; i++ {
		a.Page(0).AddPlain("line")
	}

	// 7 rows leave 4 content rows, so 10 lines overflow.
	frame := string(a.renderFrame(80, 7))
	if !strings.Contains(frame, " 1-4/10 ") {
		t.Errorf("scroll indicator missing from frame")
	}

	a.Page(0).ScrollDown(6, 4)
	frame = string(a.renderFrame(80, 7))
	if !strings.Contains(frame, " 7-10/10 ") {
		t.Errorf("scroll indicator not tracking offset")
	}
}

func TestRenderFrameNoScrollIndicatorWhenContentFits(t *testing.T) {
	a := newTestApp("one")
	a.Page(0).AddPlain("line")
	if strings.Contains(string(a.renderFrame(80, 24)), "1-1/1") {
		t.Error("scroll indicator shown for content that fits")
	}
}

func TestRenderFrameTabOverflow(t *testing.T) {
	a := newTestApp(
		"Alpha", "Bravo", "Charlie", "Delta", "Echo",
		"Foxtrot", "Golf", "Hotel", "India", "Juliett",
	)
	a.SetActiveTab(9)

	frame := string(a.renderFrame(40, 24))
	if !strings.Contains(frame, " Juliett ") {
		t.Error("active tab scrolled out of view")
	}
	if !strings.Contains(frame, "<") {
		t.Error("left continuation indicator missing")
	}
	if strings.Contains(frame, " Alpha ") {
		t.Error("leftmost tab should have scrolled off")
	}

	// Moving back left follows the active tab.
	a.SetActiveTab(0)
	frame = string(a.renderFrame(40, 24))
	if !strings.Contains(frame, " Alpha ") {
		t.Error("window did not snap back to the leftmost tab")
	}
	if !strings.Contains(frame, ">") {
		t.Error("right continuation indicator missing")
	}
}

func TestAppAddPagePointerStability(t *testing.T) {
	a := NewApp("test")
	p := a.AddPage("first")
	p.AddPlain("kept")
	for i := 0; i < 32; i++ {
		a.AddPage("filler")
	}
	if got := plainContent(a.Page(0).Lines()[0]); got != "kept" {
		t.Errorf("page 0 line = %q after many AddPage calls", got)
	}
	if a.Page(0) != p {
		t.Error("AddPage invalidated an earlier page pointer")
	}
}

func TestAppPagePanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Page(1) on a one-page app did not panic")
		}
	}()
	newTestApp("only").Page(1)
}

func TestAppendInt(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{0, "0"}, {7, "7"}, {42, "42"}, {1234, "1234"}, {-5, "-5"},
	}
	for _, c := range cases {
		if got := string(appendInt(nil, c.n)); got != c.want {
			t.Errorf("appendInt(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}
