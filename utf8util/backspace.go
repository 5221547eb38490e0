package utf8util

import "bytes"

const backspace = 0x08

// MergeBackspace collapses backspace bytes in line by deleting the UTF-8
// character immediately before each one, along with the backspace itself,
// shifting the remainder of line left to fill the gap. It returns a
// subslice of line (the backing array is reused and mutated in place).
//
// It never splits a multi-byte rune. A backspace with no character before
// it to delete (for example at the very start of line) is kept as an
// ordinary byte, which a later backspace can then delete. If, once
// collapsing has begun, the bytes preceding a backspace hold no character
// boundary, it stops collapsing there and leaves the rest of line
// untouched, rather than guessing.
func MergeBackspace(line []byte) []byte {
	start, newStart := -1, -1
	notBefore := 0

	ptr := indexBackspace(line, notBefore)
	for ptr >= 0 {
		next := ptr + 1

		if newStart >= 0 {
			end, found := findPrevCharFloor(line, notBefore, ptr)
			if !found {
				break
			}
			switch {
			case end > start:
				copy(line[newStart:], line[start:end])
				newStart += end - start
				start = next
			case end == start:
				start = next
			default:
				if ns, found := findPrevCharFloor(line, notBefore, newStart); found {
					newStart = ns
					start = next
				} else {
					notBefore = ptr
				}
			}
		} else if ns, found := findPrevCharFloor(line, notBefore, ptr); found {
			newStart = ns
			start = next
		} else {
			notBefore = ptr
		}

		ptr = indexBackspace(line, next)
	}

	if newStart >= 0 {
		copy(line[newStart:], line[start:])
		return line[:newStart+(len(line)-start)]
	}
	return line
}

func indexBackspace(line []byte, from int) int {
	rel := bytes.IndexByte(line[from:], backspace)
	if rel < 0 {
		return -1
	}
	return from + rel
}
