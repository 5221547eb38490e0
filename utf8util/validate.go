package utf8util

// FindPrevChar scans s backward from index p (exclusive) for the start of
// the UTF-8 character immediately before it: the first byte, moving
// toward index 0, that is not a continuation byte (10xxxxxx). It reports
// false if the scan reaches index 0 without finding one.
func FindPrevChar(s string, p int) (int, bool) {
	for i := p - 1; i >= 0; i-- {
		if s[i]&0xc0 != 0x80 {
			return i, true
		}
	}
	return 0, false
}

// findPrevCharFloor is FindPrevChar generalized to a caller-supplied lower
// bound instead of always stopping at index 0; MergeBackspace needs this
// to avoid re-scanning past text it has already decided is unusable.
func findPrevCharFloor(b []byte, floor, p int) (int, bool) {
	for i := p - 1; i >= floor; i-- {
		if b[i]&0xc0 != 0x80 {
			return i, true
		}
	}
	return 0, false
}

const unicodeMax = 0x110000

// unicodeValid rejects surrogate halves, the noncharacter block
// U+FDD0..U+FDEF, the per-plane noncharacters U+xFFFE/U+xFFFF, and
// anything at or past the Unicode ceiling.
func unicodeValid(v uint32) bool {
	return v < unicodeMax &&
		v&0xFFFFF800 != 0xD800 &&
		(v < 0xFDD0 || v > 0xFDEF) &&
		v&0xFFFE != 0xFFFE
}

// scanValid walks b from the start, stopping at the first embedded zero
// byte, an invalid sequence, or (when maxLen >= 0) after maxLen bytes,
// whichever comes first, and returns the offset where it stopped.
func scanValid(b []byte, maxLen int) int {
	bounded := maxLen >= 0
	i := 0
	for {
		if bounded && i >= maxLen {
			return i
		}
		if i >= len(b) || b[i] == 0 {
			return i
		}

		c := b[i]
		if c < 0x80 {
			i++
			continue
		}

		start := i
		if c&0xe0 == 0xc0 { // 110xxxxx: 2-byte sequence
			if bounded && maxLen-i < 2 {
				return start
			}
			if c&0x1e == 0 { // overlong
				return start
			}
			i++
			if i >= len(b) || b[i]&0xc0 != 0x80 {
				return start
			}
			i++
			continue
		}

		var val, min uint32
		var continuations int
		switch {
		case c&0xf0 == 0xe0: // 1110xxxx: 3-byte sequence
			if bounded && maxLen-i < 3 {
				return start
			}
			min, val, continuations = 1<<11, uint32(c&0x0f), 2
		case c&0xf8 == 0xf0: // 11110xxx: 4-byte sequence
			if bounded && maxLen-i < 4 {
				return start
			}
			min, val, continuations = 1<<16, uint32(c&0x07), 3
		default:
			return start
		}
		i++

		for n := 0; n < continuations; n++ {
			if i >= len(b) || b[i]&0xc0 != 0x80 {
				return start
			}
			val = val<<6 | uint32(b[i]&0x3f)
			i++
		}

		if val < min || !unicodeValid(val) {
			return start
		}
	}
}

// Validate reports whether b (or, if maxLen >= 0, the first maxLen bytes
// of b) is valid UTF-8, along with the offset where validation stopped. A
// negative maxLen means "scan until an embedded zero byte or the end of
// b", matching a NUL-terminated C string; zero bytes inside the first
// maxLen bytes of a bounded scan make the result invalid, since a bounded
// caller is asking to validate exactly that many bytes.
func Validate(b []byte, maxLen int) (ok bool, end int) {
	end = scanValid(b, maxLen)
	if maxLen >= 0 {
		return end == maxLen, end
	}
	return end >= len(b) || b[end] == 0, end
}
