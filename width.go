package termui

// UTF-8 measurement primitives. All codepoints are assumed to occupy a
// single terminal column (no CJK fullwidth handling), so display width is
// the count of valid codepoints, not bytes.

// utf8SeqLen returns the byte length of the UTF-8 sequence whose lead byte
// is b: 1, 2, 3 or 4. It returns 0 for continuation bytes and invalid lead
// bytes; callers must advance by a single byte in that case so a corrupt
// byte cannot throw the rest of the scan out of sync.
func utf8SeqLen(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	}
	return 0
}

// DisplayWidth returns the number of terminal columns s occupies. Each valid
// codepoint counts as one column; continuation bytes, invalid lead bytes and
// truncated trailing sequences count as zero.
func DisplayWidth(s string) int {
	width := 0
	for i := 0; i < len(s); {
		n := utf8SeqLen(s[i])
		if n == 0 || i+n > len(s) {
			i++
			continue
		}
		i += n
		width++
	}
	return width
}

// Truncate returns the longest prefix of s that occupies at most maxWidth
// display columns. Multi-byte codepoints are never split.
func Truncate(s string, maxWidth int) string {
	width, i := 0, 0
	for i < len(s) && width < maxWidth {
		n := utf8SeqLen(s[i])
		if n == 0 || i+n > len(s) {
			i++
			continue
		}
		i += n
		width++
	}
	return s[:i]
}
