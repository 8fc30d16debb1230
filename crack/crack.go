// Package crack recovers java.util.Random state from a single nextLong
// output.
//
// The upper word a of a nextLong token is the top 32 bits of the state S1
// that produced it, so only the low 16 bits of S1 are unknown. They are
// brute forced and every candidate is checked by regenerating the second
// word b. Some tokens do not carry a's bits verbatim, so the search widens
// the unknown suffix step by step (16, 17, 18, 19 bits by default) and
// repeats the whole enumeration at each step.
package crack

import (
	"context"
	"fmt"

	"github.com/go-kit/log/level"
	"github.com/tutils/jcrack/bits"
	"github.com/tutils/jcrack/lcg"
)

// Result is a recovered generator position.
type Result struct {
	Token  int64
	Width  uint   // width of the stage that matched
	Index  uint64 // matching low bits within that stage
	Tested uint64 // candidates evaluated over all stages

	// Upper is the state S1 right after the token's first word.
	Upper lcg.State
	// Lower is the state S2 right after the token's second word; generation
	// continues from here.
	Lower lcg.State
}

// Seed returns the setSeed argument that puts a generator at Upper.
func (r *Result) Seed() int64 {
	return lcg.Unscramble(r.Upper)
}

// NextSeed returns the setSeed argument that puts a generator at Lower.
func (r *Result) NextSeed() int64 {
	return lcg.Unscramble(r.Lower)
}

func (r *Result) String() string {
	return fmt.Sprintf("token=%d width=%d state=%d next=%d", r.Token, r.Width, r.Upper, r.Lower)
}

// Recover searches the state that produced token.
func Recover(ctx context.Context, token int64, opts ...Option) (*Result, error) {
	opt, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}

	pattern := bits.ToUnsignedBits(token, 64)
	want := int32(bits.ToSigned(pattern&bits.Mask(32), 32))
	match := func(s lcg.State) bool {
		_, b := lcg.Advance(s)
		return b == want
	}

	res := &Result{Token: token}
	for n, width := range opt.widths {
		if err := ctx.Err(); err != nil {
			return nil, ErrCancelled.Wrap(err, "search stopped before width %d", width)
		}

		st := newStage(pattern, width)
		if opt.progress != nil {
			opt.progress(Progress{Width: width, Prefix: st.prefix, Stage: n, Stages: len(opt.widths)})
		}
		level.Debug(opt.logger).Log("msg", "brute forcing", "token", token, "width", width, "prefix", st.prefix)

		i, tested, found, err := st.run(ctx, match)
		res.Tested += tested
		if err != nil {
			return nil, ErrCancelled.Wrap(err, "search stopped at width %d", width)
		}
		if !found {
			level.Debug(opt.logger).Log("msg", "width exhausted", "token", token, "width", width)
			continue
		}

		res.Width = width
		res.Index = i
		res.Upper = st.candidate(i)
		res.Lower, _ = lcg.Advance(res.Upper)
		level.Debug(opt.logger).Log("msg", "seed found", "token", token, "width", width, "state", res.Upper, "tested", res.Tested)
		return res, nil
	}

	return nil, ErrSeedNotFound.New("no state reproduces token %d", token).
		WithProperty(EKToken, token).
		WithProperty(EKWidths, opt.widths)
}

// Prediction is a recovered position plus the generator's next output.
type Prediction struct {
	*Result

	// NextLong is the value the generator returns on its next nextLong call.
	NextLong int64
	// FollowingSeed is the setSeed argument for the state after NextLong.
	FollowingSeed int64
}

// Generator returns a generator positioned right after the token; its first
// NextLong equals p.NextLong.
func (p *Prediction) Generator() *lcg.Random {
	return lcg.NewFromState(p.Lower)
}

// RecoverAndPredict recovers the state behind token and predicts the next
// nextLong value.
func RecoverAndPredict(ctx context.Context, token int64, opts ...Option) (*Prediction, error) {
	res, err := Recover(ctx, token, opts...)
	if err != nil {
		return nil, err
	}
	s3, next := lcg.NextLong(res.Lower)
	return &Prediction{
		Result:        res,
		NextLong:      next,
		FollowingSeed: lcg.Unscramble(s3),
	}, nil
}
