package termui

import (
	"testing"
	"unicode/utf8"
)

func TestDisplayWidth(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"hello", 5},
		{"héllo", 5},
		{"日本語", 3},
		{"a\xffb", 2}, // invalid byte advances the scan but adds no width
		{"café ☕", 6},
	}
	for _, c := range cases {
		if got := DisplayWidth(c.in); got != c.want {
			t.Errorf("DisplayWidth(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello", 3, "hel"},
		{"hello", 0, ""},
		{"hello", -1, ""},
		{"héllo", 2, "hé"},
		{"日本語", 2, "日本"},
	}
	for _, c := range cases {
		if got := Truncate(c.in, c.width); got != c.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", c.in, c.width, got, c.want)
		}
	}
}

func TestTruncateNeverSplitsCodepoints(t *testing.T) {
	s := "aé日b"
	for w := 0; w <= DisplayWidth(s); w++ {
		got := Truncate(s, w)
		if DisplayWidth(got) != w {
			t.Errorf("Truncate(%q, %d) has width %d, want %d", s, w, DisplayWidth(got), w)
		}
		if !utf8.ValidString(got) {
			t.Errorf("Truncate(%q, %d) = %q splits a codepoint", s, w, got)
		}
	}
}
