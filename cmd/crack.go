package cmd

import (
	"context"
	"strconv"

	"github.com/joomcode/errorx"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tutils/jcrack/crack"
)

func runCrack(cmd *cobra.Command, args []string) error {
	token, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return ErrInvalidInvocation.Wrap(err, "token %q is not a 64-bit integer", args[0])
	}
	count := viper.GetInt("count")
	if count < 1 {
		return ErrInvalidInvocation.New("count must be positive, got %d", count)
	}
	opts, err := searchOptions()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if timeout := viper.GetDuration("timeout"); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	out := newPrinter(cmd.OutOrStdout())
	opts = append(opts, crack.WithProgress(out.stage))
	p, err := crack.RecoverAndPredict(ctx, token, opts...)
	if err != nil {
		if errorx.IsOfType(err, crack.ErrSeedNotFound) {
			out.notFound()
		}
		return err
	}

	out.found(p.Result)
	gen := p.Generator()
	for i := 1; i <= count; i++ {
		out.prediction(i, gen.NextLong())
	}
	out.followingSeed(gen.State())
	return nil
}
