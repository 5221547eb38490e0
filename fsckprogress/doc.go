// Package fsckprogress parses the progress stream fsck writes while
// checking a device and renders it for a boot splash daemon. It handles
// both forms the checker can emit: the machine-readable
// "pass cur max device" reports written when fsck runs with -C against a
// pipe, and the pretty human-oriented form some checkers redraw in place
// with backspaces (wrapped in \x01...\r\x02 framing). It also frames the
// update and quit messages the splash daemon accepts over its
// abstract-namespace UNIX socket; actually connecting and writing is left
// to the caller.
package fsckprogress
