package bits

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSigned(t *testing.T) {
	assert.Equal(t, int64(7), ToSigned(7, 4))
	assert.Equal(t, int64(-7), ToSigned(9, 4))
	assert.Equal(t, int64(-1), ToSigned(0xFFFFFFFF, 32))
	assert.Equal(t, int64(math.MinInt32), ToSigned(0x80000000, 32))
	assert.Equal(t, int64(math.MaxInt32), ToSigned(0x7FFFFFFF, 32))
	assert.Equal(t, int64(-1), ToSigned(math.MaxUint64, 64))
	assert.Equal(t, int64(math.MinInt64), ToSigned(1<<63, 64))
	assert.Equal(t, int64(0), ToSigned(0, 64))
}

func TestToUnsignedBits(t *testing.T) {
	assert.Equal(t, uint64(9), ToUnsignedBits(-7, 4))
	assert.Equal(t, uint64(0xFFFFFFFF), ToUnsignedBits(-1, 32))
	assert.Equal(t, uint64(0x80000000), ToUnsignedBits(math.MinInt32, 32))
	assert.Equal(t, uint64(math.MaxUint64), ToUnsignedBits(-1, 64))
	assert.Equal(t, uint64(1<<63), ToUnsignedBits(math.MinInt64, 64))
	assert.Equal(t, uint64(42), ToUnsignedBits(42, 64))
}

func TestRoundTrip(t *testing.T) {
	edges := []int64{0, 1, -1, math.MaxInt64, math.MinInt64, math.MaxInt32, math.MinInt32}
	for _, x := range edges {
		assert.Equal(t, x, ToSigned(ToUnsignedBits(x, 64), 64), "width 64: %d", x)
	}
	for _, x := range edges {
		if x < math.MinInt32 || x > math.MaxInt32 {
			continue
		}
		assert.Equal(t, x, ToSigned(ToUnsignedBits(x, 32), 32), "width 32: %d", x)
	}

	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		x := int64(rnd.Uint64())
		require.Equal(t, x, ToSigned(ToUnsignedBits(x, 64), 64))
		y := int64(int32(rnd.Uint32()))
		require.Equal(t, y, ToSigned(ToUnsignedBits(y, 32), 32))
	}
}

func TestSplitJoin(t *testing.T) {
	hi, lo := Split(-4971030886054769832)
	assert.Equal(t, uint32(0xBB0359BF), hi)
	assert.Equal(t, int64(-4971030886054769832), Join(hi, lo))

	hi, lo = Split(-1)
	assert.Equal(t, uint32(math.MaxUint32), hi)
	assert.Equal(t, uint32(math.MaxUint32), lo)

	hi, lo = Split(1)
	assert.Equal(t, uint32(0), hi)
	assert.Equal(t, uint32(1), lo)
}

func TestInvalidWidth(t *testing.T) {
	assert.Panics(t, func() { ToSigned(1, 0) })
	assert.Panics(t, func() { ToUnsignedBits(1, 65) })
}
