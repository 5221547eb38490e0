package fsckprogress

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateMessage_Framing(t *testing.T) {
	msg, err := UpdateMessage("/dev/sda1", "x")
	require.NoError(t, err)

	want := []byte{'U', 0x03, byte(len("fsck:/dev/sda1") + 1)}
	want = append(want, "fsck:/dev/sda1"...)
	want = append(want, 0, 2, 'x', 0)
	assert.Equal(t, want, msg)
}

func TestUpdateMessage_RejectsOverlongSegments(t *testing.T) {
	_, err := UpdateMessage(strings.Repeat("a", 300), "ok")
	assert.ErrorIs(t, err, ErrMessageTooLong)

	_, err = UpdateMessage("/dev/sda1", strings.Repeat("b", 300))
	assert.ErrorIs(t, err, ErrMessageTooLong)
}

func TestQuitMessage(t *testing.T) {
	assert.Equal(t, []byte{'Q', 0}, QuitMessage())
}
