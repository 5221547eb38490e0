package fsckprogress

import (
	"bytes"
	"strings"

	"github.com/joeycumines/go-workqueue/utf8util"
)

// stripSet is the wrapping e2fsck puts around pretty progress messages
// ("\x01 ... \r\x02"), plus ordinary line terminators.
const stripSet = "\r\n\x01\x02"

// stripMessage trims wrapping bytes from both ends of line and reports
// whether a line terminator was among the stripped tail bytes; a message
// that did not end in one was cut mid-redraw and should be merged with
// whatever arrives next.
func stripMessage(line []byte) (stripped []byte, newline bool) {
	for len(line) > 0 && strings.IndexByte(stripSet, line[len(line)-1]) >= 0 {
		if c := line[len(line)-1]; c == '\n' || c == '\r' {
			newline = true
		}
		line = line[:len(line)-1]
	}
	for len(line) > 0 && strings.IndexByte(stripSet, line[0]) >= 0 {
		line = line[1:]
	}
	return line, newline
}

// Tracker accumulates pretty-form fsck progress output, in which the
// checker redraws its status line in place with backspaces instead of
// emitting complete lines. Each Update consumes one read's worth of raw
// locale-encoded bytes and returns the latest rendered status line.
//
// The zero value is ready to use.
type Tracker struct {
	progress []byte
	merge    bool

	// Cancel, once set, prefixes every rendered line with a stop marker,
	// signalling that the user asked to interrupt the check.
	Cancel bool
}

// Update folds one chunk of raw progress bytes into the tracker. ok is
// false when the chunk contributed nothing displayable (it was empty, or
// could not be converted to UTF-8).
func (t *Tracker) Update(msg []byte) (info string, ok bool) {
	line, _, err := utf8util.LocaleToUTF8(msg)
	if err != nil {
		Logger.Warn().Err(err).Msg("fsckprogress: discarding unconvertible progress bytes")
		return "", false
	}
	if len(line) == 0 {
		return "", false
	}

	doMerge := t.merge
	stripped, newline := stripMessage(line)
	t.merge = !newline

	// Only the last line matters: a complete line anywhere in the chunk
	// makes both the accumulated text and everything before it obsolete.
	if i := bytes.LastIndexAny(stripped, "\n\r"); i >= 0 {
		doMerge = false
		stripped = stripped[i+1:]
		stripped, _ = stripMessage(stripped)
	}
	if doMerge && len(t.progress) > 0 {
		t.progress = utf8util.MergeBackspace(append(t.progress, stripped...))
	} else {
		t.progress = append(t.progress[:0], utf8util.MergeBackspace(stripped)...)
	}

	if t.Cancel {
		return "STOP\t " + string(t.progress), true
	}
	return string(t.progress), true
}
