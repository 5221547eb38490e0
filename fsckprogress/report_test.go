package fsckprogress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReport_MachineReadableLine(t *testing.T) {
	r, err := ParseReport([]byte("2 1234 4567 /dev/sda1\n"))
	require.NoError(t, err)
	assert.Equal(t, Report{Pass: 2, Cur: 1234, Max: 4567, Device: "/dev/sda1"}, r)
	assert.Equal(t, "/dev/sda1: \tPass:2 27.0%", r.Info(false))
}

func TestParseReport_UsesLastLine(t *testing.T) {
	r, err := ParseReport([]byte("1 10 100 /dev/sda1\n2 20 100 /dev/sda1\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, r.Pass)
	assert.Equal(t, uint64(20), r.Cur)
}

func TestParseReport_Malformed(t *testing.T) {
	for _, in := range []string{
		"",
		"not a report\n",
		"2 1234\n", // too few fields must be an error, not a partial parse
	} {
		_, err := ParseReport([]byte(in))
		assert.ErrorIs(t, err, ErrMalformed, "input %q", in)
	}
}

func TestReport_PercentEdgeCases(t *testing.T) {
	assert.Equal(t, float64(100), Report{Pass: 1, Max: 0}.Percent())
	assert.Equal(t, float64(0), Report{Pass: -1, Cur: 5, Max: 10}.Percent())
	assert.Equal(t, "/dev/sda1: \tPass:0 0.0%",
		Report{Pass: -1, Cur: 5, Max: 10, Device: "/dev/sda1"}.Info(false))
}

func TestReport_InfoCancelPrefix(t *testing.T) {
	r := Report{Pass: 1, Cur: 1, Max: 2, Device: "/dev/sdb2"}
	assert.Equal(t, "STOP\t /dev/sdb2: \tPass:1 50.0%", r.Info(true))
}
