package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tutils/jcrack/lcg"
)

// genCmd represents the gen command
var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Print nextLong() values of new Random(seed)",
	Long: `Print the first nextLong() values of a java.util.Random created with the given seed,
e.g. to get a token to crack. For example:
  jcrack gen --seed=5 --count=2`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if genCount < 0 {
			return ErrInvalidInvocation.New("count must not be negative, got %d", genCount)
		}
		r := lcg.New(genSeed)
		for i := 0; i < genCount; i++ {
			fmt.Fprintln(cmd.OutOrStdout(), r.NextLong())
		}
		return nil
	},
}

var (
	genSeed  int64
	genCount int
)

func init() {
	rootCmd.AddCommand(genCmd)

	flags := genCmd.Flags()
	flags.Int64VarP(&genSeed, "seed", "s", 5, "seed passed to new Random(seed)")
	flags.IntVarP(&genCount, "count", "n", 2, "number of values to print")
}
