package utf8util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindPrevChar(t *testing.T) {
	s := "a" + string([]byte{0xC3, 0xA9}) + "b" // a é b

	idx, ok := FindPrevChar(s, len(s))
	require.True(t, ok)
	assert.Equal(t, len(s)-1, idx) // 'b'

	idx, ok = FindPrevChar(s, len(s)-1) // scanning back from just before 'b'
	require.True(t, ok)
	assert.Equal(t, 1, idx) // lead byte of é, continuation byte skipped

	_, ok = FindPrevChar(s, 0)
	assert.False(t, ok)
}

func TestValidate_AcceptsValidUTF8(t *testing.T) {
	b := []byte("hello, 世界")
	ok, end := Validate(b, -1)
	assert.True(t, ok)
	assert.Equal(t, len(b), end)
}

func TestValidate_RejectsOverlongEncoding(t *testing.T) {
	b := []byte{0xC0, 0x80} // overlong encoding of NUL
	ok, end := Validate(b, len(b))
	assert.False(t, ok)
	assert.Equal(t, 0, end)
}

func TestValidate_RejectsSurrogateHalf(t *testing.T) {
	b := []byte{0xED, 0xA0, 0x80} // U+D800, a lone UTF-16 surrogate half
	ok, _ := Validate(b, len(b))
	assert.False(t, ok)
}

func TestValidate_RejectsTruncatedSequence(t *testing.T) {
	b := []byte{0xE4, 0xB8} // first two bytes of 世, missing the third
	ok, end := Validate(b, len(b))
	assert.False(t, ok)
	assert.Equal(t, 0, end)
}

func TestValidate_BoundedStopsAtEmbeddedZero(t *testing.T) {
	b := []byte{'a', 0, 'b'}
	ok, end := Validate(b, len(b))
	assert.False(t, ok)
	assert.Equal(t, 1, end)
}

func TestValidate_UnboundedStopsAtEmbeddedZero(t *testing.T) {
	b := []byte{'a', 0, 'b'}
	ok, end := Validate(b, -1)
	assert.True(t, ok)
	assert.Equal(t, 1, end)
}
