package ts_test

import (
	"math"
	"testing"

	"github.com/marcas756/myos-sub001/ts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff_NoWrap(t *testing.T) {
	require.Equal(t, int32(5), ts.Diff(105, 100))
	require.Equal(t, int32(-5), ts.Diff(100, 105))
	require.Equal(t, int32(0), ts.Diff(100, 100))
}

func TestDiff_Wraps(t *testing.T) {
	var max ts.Timestamp = math.MaxUint32
	// one tick past the wraparound point is "after" a timestamp just before it
	assert.True(t, ts.After(0, max))
	assert.True(t, ts.Before(max, 0))
}

func TestCompare(t *testing.T) {
	assert.Equal(t, -1, ts.Compare(1, 2))
	assert.Equal(t, 1, ts.Compare(2, 1))
	assert.Equal(t, 0, ts.Compare(2, 2))
}

func TestExpired(t *testing.T) {
	assert.True(t, ts.Expired(100, 100))
	assert.True(t, ts.Expired(101, 100))
	assert.False(t, ts.Expired(99, 100))
}

func TestDeadline(t *testing.T) {
	assert.Equal(t, ts.Timestamp(150), ts.Deadline(100, 50))
}

func TestSourceFunc(t *testing.T) {
	var called bool
	src := ts.SourceFunc(func() ts.Timestamp {
		called = true
		return 42
	})
	assert.Equal(t, ts.Timestamp(42), src.Now())
	assert.True(t, called)
}
