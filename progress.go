package termui

import (
	"strconv"
	"strings"
)

// Progress bar glyphs: full block for the filled portion, light shade for
// the rest.
const (
	glyphBlock = "█" // █
	glyphShade = "░" // ░
)

// ProgressBar renders a fractional value as a block-character bar with a
// percentage label. The caller owns the value and typically re-renders
// inside a tick callback:
//
//	bar.SetValue(progress)
//	livePage.Clear()
//	livePage.AddLine(bar.Render(30))
type ProgressBar struct {
	value      float64
	fillStyle  Style
	emptyStyle Style
}

// NewProgressBar returns a bar at zero with a green fill.
func NewProgressBar() *ProgressBar {
	return &ProgressBar{fillStyle: NewStyle(Green)}
}

// SetValue sets the fill fraction, clamped into [0, 1].
func (p *ProgressBar) SetValue(v float64) *ProgressBar {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	p.value = v
	return p
}

// SetFillColor sets the color of the filled block characters.
func (p *ProgressBar) SetFillColor(c Color) *ProgressBar {
	p.fillStyle = NewStyle(c)
	return p
}

// SetEmptyColor sets the color of the empty shade characters.
func (p *ProgressBar) SetEmptyColor(c Color) *ProgressBar {
	p.emptyStyle = NewStyle(c)
	return p
}

// Value returns the current fill fraction.
func (p *ProgressBar) Value() float64 {
	return p.value
}

// Render produces a bar of the given character width followed by a
// percentage label. Filled columns and the percentage both round half up,
// so value 0 is all shade glyphs and value 1 all block glyphs.
func (p *ProgressBar) Render(width int) Text {
	if width <= 0 {
		width = 1
	}
	filled := int(p.value*float64(width) + 0.5)
	empty := width - filled
	pct := int(p.value*100 + 0.5)

	t := Styled("[", NewStyle(BrightBlack))
	if filled > 0 {
		t = t.Add(strings.Repeat(glyphBlock, filled), p.fillStyle)
	}
	if empty > 0 {
		t = t.Add(strings.Repeat(glyphShade, empty), p.emptyStyle)
	}
	t = t.Add("] ", NewStyle(BrightBlack))
	return t.Add(strconv.Itoa(pct)+"%", Style{}.Bold())
}
