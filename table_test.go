package termui

import (
	"strings"
	"testing"
)

// plainContent concatenates a line's span contents, discarding styling.
func plainContent(line Text) string {
	var b strings.Builder
	for _, s := range line.Spans() {
		b.WriteString(s.Content)
	}
	return b.String()
}

func TestTableAutoWidths(t *testing.T) {
	tbl := NewTable().
		AddColumn("ID", 0).
		AddColumn("Name", 0)
	tbl.AddRow("1", "alpha")
	tbl.AddRow("2", "beta")

	lines := tbl.Render(0)
	if len(lines) != 4 {
		t.Fatalf("Render produced %d lines, want 4", len(lines))
	}
	if got := plainContent(lines[0]); got != "ID "+glyphVRule+" Name " {
		t.Errorf("header = %q", got)
	}
	wantRule := glyphHRule + glyphHRule + glyphHRule + glyphJunction + glyphHRule + strings.Repeat(glyphHRule, 5)
	if got := plainContent(lines[1]); got != wantRule {
		t.Errorf("rule = %q, want %q", got, wantRule)
	}
	if got := plainContent(lines[2]); got != "1  "+glyphVRule+" alpha" {
		t.Errorf("row = %q", got)
	}
	if got := plainContent(lines[3]); got != "2  "+glyphVRule+" beta " {
		t.Errorf("row = %q", got)
	}
}

func TestTableFixedWidthTruncates(t *testing.T) {
	tbl := NewTable().AddColumn("Name", 4)
	tbl.AddRow("abcdef")
	lines := tbl.Render(0)
	if got := plainContent(lines[2]); got != "abc"+glyphEllipsis {
		t.Errorf("cell = %q, want %q", got, "abc"+glyphEllipsis)
	}
}

func TestTableProportionalRescale(t *testing.T) {
	tbl := NewTable().
		AddColumn("A", 0).
		AddColumn("B", 0)
	tbl.AddRow(strings.Repeat("a", 10), strings.Repeat("b", 10))

	// 11 columns leave 8 usable after the separator, so each 10-wide
	// column rescales to 4.
	lines := tbl.Render(11)
	row := plainContent(lines[2])
	if got := DisplayWidth(row); got != 11 {
		t.Errorf("row width = %d, want 11", got)
	}
	if row != "aaa"+glyphEllipsis+" "+glyphVRule+" bbb"+glyphEllipsis {
		t.Errorf("row = %q", row)
	}
}

func TestTableRescaleFloorsAtOne(t *testing.T) {
	tbl := NewTable().
		AddColumn("A", 0).
		AddColumn("B", 0)
	tbl.AddRow("x", strings.Repeat("y", 50))
	lines := tbl.Render(10)
	row := plainContent(lines[2])
	for _, col := range strings.Split(row, " "+glyphVRule+" ") {
		if DisplayWidth(col) < 1 {
			t.Errorf("column collapsed to zero width in %q", row)
		}
	}
}

func TestTableMissingCellsRenderEmpty(t *testing.T) {
	tbl := NewTable().
		AddColumn("A", 0).
		AddColumn("B", 0)
	tbl.AddRow("only")
	lines := tbl.Render(0)
	if got := plainContent(lines[2]); got != "only "+glyphVRule+"  " {
		t.Errorf("row = %q", got)
	}
}

func TestTableEmpty(t *testing.T) {
	if lines := NewTable().Render(80); lines != nil {
		t.Errorf("empty table rendered %d lines", len(lines))
	}
}
