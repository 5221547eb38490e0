package fsckprogress

import (
	"bytes"
	"errors"
	"fmt"
)

// ErrMalformed is returned by ParseReport when the input does not end in a
// line carrying the four machine-readable fields fsck emits in -C mode.
var ErrMalformed = errors.New("fsckprogress: malformed progress report")

// Report is one machine-readable fsck progress line, as written to the -C
// file descriptor: "<pass> <cur> <max> <device>\n".
type Report struct {
	Pass   int
	Cur    uint64
	Max    uint64
	Device string
}

// ParseReport extracts the most recent Report from msg. A single read may
// deliver several concatenated reports; only the last complete line is
// meaningful, since each report supersedes the ones before it. Success is
// judged by the number of fields converted, not by any errno-style side
// channel: a line that yields fewer than all four fields is malformed.
func ParseReport(msg []byte) (Report, error) {
	var r Report
	if len(msg) == 0 {
		return r, ErrMalformed
	}

	msg = bytes.TrimSuffix(msg, []byte("\n"))
	if i := bytes.LastIndexAny(msg, "\n\x00"); i >= 0 {
		msg = msg[i+1:]
	}

	n, err := fmt.Sscanf(string(msg), "%d %d %d %s", &r.Pass, &r.Cur, &r.Max, &r.Device)
	if err != nil || n != 4 {
		return Report{}, ErrMalformed
	}
	return r, nil
}

// Percent returns the report's completion percentage. A negative pass
// means the checker has not started (0%); a zero max means it has nothing
// left to measure (100%).
func (r Report) Percent() float64 {
	switch {
	case r.Pass < 0:
		return 0
	case r.Max == 0:
		return 100
	default:
		return float64(r.Cur) / float64(r.Max) * 100
	}
}

// Info renders the report as the single status line shown by the splash
// daemon. cancel prefixes a stop marker, signalling that the user asked to
// interrupt the check.
func (r Report) Info(cancel bool) string {
	pass := r.Pass
	if pass < 0 {
		pass = 0
	}
	var prefix string
	if cancel {
		prefix = "STOP\t "
	}
	return fmt.Sprintf("%s%s: \tPass:%d %.1f%%", prefix, r.Device, pass, r.Percent())
}
