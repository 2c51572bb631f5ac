package termui

import "strings"

// Line-drawing and truncation glyphs shared by the table renderer.
const (
	glyphHRule    = "─" // ─
	glyphVRule    = "│" // │
	glyphJunction = "┼" // ┼
	glyphEllipsis = "…" // …
)

// Column describes one table column. Width 0 means auto-sized to the widest
// of the header and the column's cells.
type Column struct {
	Name  string
	Width int
}

// Table lays out rows of cells under named columns and renders them as Text
// lines. It is a transient value object: it holds no layout state between
// renders.
type Table struct {
	columns     []Column
	rows        [][]string
	headerStyle Style
}

// NewTable returns an empty table with the default bold+underline header
// style.
func NewTable() *Table {
	return &Table{headerStyle: Style{}.Bold().Underline()}
}

// AddColumn appends a column. Width 0 auto-sizes to content.
func (t *Table) AddColumn(name string, width int) *Table {
	t.columns = append(t.columns, Column{Name: name, Width: width})
	return t
}

// AddRow appends a data row. Rows may carry fewer cells than there are
// columns; missing cells render empty.
func (t *Table) AddRow(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// SetHeaderStyle overrides the style applied to the header row.
func (t *Table) SetHeaderStyle(s Style) *Table {
	t.headerStyle = s
	return t
}

// Render produces the header row, a rule row with a junction at each column
// boundary, and one row per data row. If availableWidth > 0 and the natural
// column widths would overflow the space left after " │ " separators, every
// column is rescaled proportionally (round half up, floored at one column).
func (t *Table) Render(availableWidth int) []Text {
	if len(t.columns) == 0 {
		return nil
	}

	widths := make([]int, len(t.columns))
	for c, col := range t.columns {
		if col.Width > 0 {
			widths[c] = col.Width
			continue
		}
		w := DisplayWidth(col.Name)
		for _, row := range t.rows {
			if c < len(row) {
				if cw := DisplayWidth(row[c]); cw > w {
					w = cw
				}
			}
		}
		widths[c] = w
	}

	if availableWidth > 0 {
		total := 0
		for _, w := range widths {
			total += w
		}
		usable := availableWidth - 3*(len(t.columns)-1)
		if usable > 0 && total > usable {
			// Round half up so cumulative rounding error does not starve
			// the later columns.
			for c, w := range widths {
				scaled := (w*usable + total/2) / total
				if scaled < 1 {
					scaled = 1
				}
				widths[c] = scaled
			}
		}
	}

	ruleStyle := NewStyle(BrightBlack)
	lines := make([]Text, 0, len(t.rows)+2)

	var header Text
	for c, col := range t.columns {
		if c > 0 {
			header = header.Add(" "+glyphVRule+" ", ruleStyle)
		}
		header = header.Add(padOrTruncate(col.Name, widths[c]), t.headerStyle)
	}
	lines = append(lines, header)

	var rule Text
	for c := range t.columns {
		if c > 0 {
			rule = rule.Add(glyphHRule+glyphJunction+glyphHRule, ruleStyle)
		}
		rule = rule.Add(strings.Repeat(glyphHRule, widths[c]), ruleStyle)
	}
	lines = append(lines, rule)

	for _, row := range t.rows {
		var line Text
		for c := range t.columns {
			if c > 0 {
				line = line.Add(" "+glyphVRule+" ", ruleStyle)
			}
			cell := ""
			if c < len(row) {
				cell = row[c]
			}
			line = line.Add(padOrTruncate(cell, widths[c]), Style{})
		}
		lines = append(lines, line)
	}

	return lines
}

// padOrTruncate fits s into exactly width display columns: shorter content
// is padded with trailing spaces, longer content is cut to width-1 columns
// with an ellipsis appended. At width 1 only the ellipsis survives.
func padOrTruncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := DisplayWidth(s)
	if w <= width {
		return s + strings.Repeat(" ", width-w)
	}
	if width == 1 {
		return glyphEllipsis
	}
	return Truncate(s, width-1) + glyphEllipsis
}
