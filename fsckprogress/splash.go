package fsckprogress

import "errors"

// PlymouthSocket is the splash daemon's listening address: an
// abstract-namespace UNIX socket, selected by the leading NUL.
const PlymouthSocket = "\x00/org/freedesktop/plymouthd"

// ErrMessageTooLong is returned by UpdateMessage when a string segment,
// with its terminating NUL, does not fit the single length byte the wire
// format allows.
var ErrMessageTooLong = errors.New("fsckprogress: splash message segment exceeds 255 bytes")

// UpdateMessage frames a progress update for the splash daemon: the
// command byte 'U', the update type 0x03, then two length-prefixed
// NUL-terminated strings, "fsck:<device>" and the rendered progress text.
// Each length byte counts the string plus its NUL.
func UpdateMessage(device, info string) ([]byte, error) {
	tag := "fsck:" + device
	if len(tag)+1 > 255 || len(info)+1 > 255 {
		return nil, ErrMessageTooLong
	}

	msg := make([]byte, 0, 2+1+len(tag)+1+1+len(info)+1)
	msg = append(msg, 'U', 0x03, byte(len(tag)+1))
	msg = append(msg, tag...)
	msg = append(msg, 0, byte(len(info)+1))
	msg = append(msg, info...)
	msg = append(msg, 0)
	return msg, nil
}

// QuitMessage frames the request asking the splash daemon to exit.
func QuitMessage() []byte {
	return []byte{'Q', 0}
}
