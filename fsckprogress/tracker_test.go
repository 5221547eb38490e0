package fsckprogress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func utf8Locale(t *testing.T) {
	t.Helper()
	t.Setenv("LC_ALL", "C.UTF-8")
	t.Setenv("LC_CTYPE", "")
	t.Setenv("LANG", "")
}

func TestTracker_StripsPrettyWrapping(t *testing.T) {
	utf8Locale(t)
	var tr Tracker

	info, ok := tr.Update([]byte("\x01/dev/sda1: |=====     | 40%\r\x02"))
	require.True(t, ok)
	assert.Equal(t, "/dev/sda1: |=====     | 40%", info)
}

func TestTracker_MergesChunksCutMidRedraw(t *testing.T) {
	utf8Locale(t)
	var tr Tracker

	_, ok := tr.Update([]byte("/dev/sda1: 4"))
	require.True(t, ok)
	info, ok := tr.Update([]byte("0%"))
	require.True(t, ok)
	assert.Equal(t, "/dev/sda1: 40%", info)

	// the checker redraws in place: backspaces erase the old percentage
	info, ok = tr.Update([]byte("\b\b\b50%"))
	require.True(t, ok)
	assert.Equal(t, "/dev/sda1: 50%", info)
}

func TestTracker_CompleteLineReplacesAccumulated(t *testing.T) {
	utf8Locale(t)
	var tr Tracker

	_, ok := tr.Update([]byte("first line\n"))
	require.True(t, ok)
	info, ok := tr.Update([]byte("second"))
	require.True(t, ok)
	assert.Equal(t, "second", info)
}

func TestTracker_CancelPrefixesStopMarker(t *testing.T) {
	utf8Locale(t)
	tr := Tracker{Cancel: true}

	info, ok := tr.Update([]byte("/dev/sda1: 40%"))
	require.True(t, ok)
	assert.Equal(t, "STOP\t /dev/sda1: 40%", info)
}

func TestTracker_DiscardsUnconvertibleBytes(t *testing.T) {
	utf8Locale(t)
	var tr Tracker

	_, ok := tr.Update([]byte{0xFF, 0xFE})
	assert.False(t, ok)

	_, ok = tr.Update(nil)
	assert.False(t, ok)
}
