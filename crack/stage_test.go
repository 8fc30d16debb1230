package crack

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tutils/jcrack/bits"
	"github.com/tutils/jcrack/lcg"
)

func TestStagePrefix(t *testing.T) {
	pattern := bits.ToUnsignedBits(-4971030886054769832, 64)
	hi, _ := bits.Split(-4971030886054769832)

	st := newStage(pattern, 16)
	assert.Equal(t, uint64(hi), st.prefix)
	assert.Equal(t, lcg.State(uint64(hi)<<16|7), st.candidate(7))

	st = newStage(pattern, 19)
	assert.Equal(t, uint64(hi>>3), st.prefix)
	assert.Equal(t, uint64(1<<19), st.size())
}

func TestStageFirstMatchWins(t *testing.T) {
	st := stage{width: 16, prefix: 0xABCD}
	accept := map[lcg.State]bool{
		st.candidate(9):     true,
		st.candidate(5):     true,
		st.candidate(40000): true,
	}
	var order []lcg.State
	i, tested, found, err := st.run(context.Background(), func(s lcg.State) bool {
		order = append(order, s)
		return accept[s]
	})
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, uint64(5), i)
	assert.Equal(t, uint64(6), tested)
	for n, s := range order {
		assert.Equal(t, st.candidate(uint64(n)), s)
	}
}

func TestStageExhausted(t *testing.T) {
	st := stage{width: 16}
	_, tested, found, err := st.run(context.Background(), func(lcg.State) bool { return false })
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, uint64(1<<16), tested)
}

func TestStageCancelledMidway(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	st := stage{width: 20}
	_, tested, found, err := st.run(ctx, func(s lcg.State) bool {
		if s == st.candidate(checkEvery+1) {
			cancel()
		}
		return false
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, found)
	assert.Equal(t, uint64(2*checkEvery), tested)
}
