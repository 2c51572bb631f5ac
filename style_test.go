package termui

import "testing"

func TestStyleBegin(t *testing.T) {
	cases := []struct {
		name  string
		style Style
		want  string
	}{
		{"default", Style{}, "\x1b[0m"},
		{"fg only", NewStyle(Red), "\x1b[0;31m"},
		{"bold fg", BoldStyle(Green), "\x1b[0;1;32m"},
		{"bg derived from fg code", NewStyle(White).Bg(Blue), "\x1b[0;37;44m"},
		{"bright fg", NewStyle(BrightCyan), "\x1b[0;96m"},
		{"bright bg", Style{}.Bg(BrightBlack), "\x1b[0;100m"},
		{"all attrs", NewStyle(Yellow).Bold().Underline().Reversed(), "\x1b[0;1;4;7;33m"},
		{"reverse only", Style{}.Reversed(), "\x1b[0;7m"},
	}
	for _, c := range cases {
		if got := c.style.Begin(); got != c.want {
			t.Errorf("%s: Begin() = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestAttrHasWith(t *testing.T) {
	a := AttrNone.With(AttrBold).With(AttrUnderline)
	if !a.Has(AttrBold) || !a.Has(AttrUnderline) {
		t.Errorf("attrs %b missing bold or underline", a)
	}
	if a.Has(AttrReverse) {
		t.Errorf("attrs %b should not have reverse", a)
	}
}

func TestStyleChainingDoesNotMutate(t *testing.T) {
	base := NewStyle(Red)
	_ = base.Bold()
	if base.Attr.Has(AttrBold) {
		t.Error("Bold() mutated its receiver")
	}
}
