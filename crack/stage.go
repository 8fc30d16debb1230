package crack

import (
	"context"

	"github.com/tutils/jcrack/lcg"
)

// ctx is polled once per this many candidates
const checkEvery = 1 << 12

// stage is one brute-force pass: the top 48-width bits of the candidate
// state are fixed, the low width bits are enumerated.
type stage struct {
	width  uint
	prefix uint64
}

// newStage takes the known prefix from the top 48-width bits of the
// token's 64-bit pattern.
func newStage(pattern uint64, width uint) stage {
	return stage{
		width:  width,
		prefix: pattern >> (64 - (lcg.StateBits - width)),
	}
}

func (st stage) size() uint64 {
	return 1 << st.width
}

func (st stage) candidate(i uint64) lcg.State {
	return lcg.State(st.prefix<<st.width | i)
}

// run tries candidates in ascending order and stops at the first one match
// accepts. tested is the number of candidates evaluated.
func (st stage) run(ctx context.Context, match func(lcg.State) bool) (index, tested uint64, found bool, err error) {
	n := st.size()
	for i := uint64(0); i < n; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return 0, i, false, err
			}
		}
		if match(st.candidate(i)) {
			return i, i + 1, true, nil
		}
	}
	return 0, n, false, nil
}
