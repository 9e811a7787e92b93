package fixtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrictOverflowPanics(t *testing.T) {
	setStrict(t, true)

	var x Text8
	x.AssignString("1234567") // Cap-1 bytes fit, no panic
	require.Equal(t, "1234567", x.String())

	require.PanicsWithValue(t,
		"fixtext: assigning 8 bytes to capacity 8 would truncate",
		func() { x.AssignString("12345678") })
	require.Panics(t, func() { x.AssignString("HelloWorld") })
}

func TestReleaseOverflowTruncatesSilently(t *testing.T) {
	setStrict(t, false)
	var x Text8
	x.AssignString("HelloWorld")
	require.Equal(t, "HelloWo", x.String())
	require.Equal(t, 7, x.Len())
}

func TestZeroCapacity(t *testing.T) {
	var x Text[[0]byte]
	require.Equal(t, 0, x.Cap())
	require.True(t, x.Empty())
	require.Equal(t, 0, x.Len())

	setStrict(t, false)
	x.AssignString("anything") // release: no room at all, no-op
	require.True(t, x.Empty())

	SetStrict(true)
	require.Panics(t, func() { x.Assign(nil) }, "zero capacity is a defect in strict mode")
}

func TestStrictRejectsNonByteArray(t *testing.T) {
	setStrict(t, true)
	var x Text[[2]int16]
	require.Panics(t, func() { x.Assign([]byte{1}) })
}

func TestSetStrictToggle(t *testing.T) {
	setStrict(t, false)
	assert.False(t, StrictMode())

	SetStrict(true)
	assert.True(t, StrictMode())
	var x Text8
	assert.Panics(t, func() { x.AssignString("overflowing") })

	SetStrict(false)
	assert.False(t, StrictMode())
	x.AssignString("overflowing")
	assert.Equal(t, "overflo", x.String())
}

func TestStrictDoesNotAffectReads(t *testing.T) {
	setStrict(t, true)
	x := From[[16]byte]("safe")
	y := From[[8]byte]("safe")
	assert.True(t, Equal(&x, &y))
	assert.Equal(t, "safesafe", Concat(&x, &y))
	assert.Equal(t, 4, x.Len())
	assert.Equal(t, "safe", x.View().String())
}
