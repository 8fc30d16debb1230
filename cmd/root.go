package cmd

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/joomcode/errorx"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tutils/jcrack/crack"
)

var (
	cfgFile string

	// logger is replaced once flags and config are known
	logger = log.NewNopLogger()
)

var (
	// Errors is the namespace of command line failures.
	Errors = errorx.NewNamespace("cli")
	// ErrInvalidInvocation - wrong arguments; usage is printed.
	ErrInvalidInvocation = Errors.NewType("invalid_invocation")
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jcrack <token>",
	Short: "Crack java.util.Random from one nextLong() token.",
	Long: banner + `
This tool was built to crack Java's PRNG.
If we have one token that was generated with nextLong() we can crack the seed and generate
all following *random* values. Simply pass the generated token as parameter and let it run.
` + example,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return ErrInvalidInvocation.New("expected exactly one token, got %d arguments", len(args))
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = newLogger(cmd.ErrOrStderr(), viper.GetBool("verbose"))
		if f := viper.ConfigFileUsed(); f != "" {
			level.Debug(logger).Log("msg", "using config file", "file", f)
		}
		return nil
	},
	RunE: runCrack,
}

const banner = `
	Me*Own the java.util.Random()!
	******************************
`

const example = `
Assuming the following Java example, we can use this tool
to predict the second token from only the first token. We
don't have to know the used seed.

  import java.util.Random;

  class Main {
    public static void main(String args[]) {
      Random rng = new Random(5L);
      System.out.println(rng.nextLong());
      System.out.println(rng.nextLong());
    }
  }

This also works with seeds that were generated with SecureRandom.
Some seeds take longer to crack: for them the first 32 bits are not
exactly the upper 32 bits of the token, and more bits are brute forced.
`

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd.SetArgs(normalizeArgs(rootCmd, os.Args[1:]))
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if errorx.IsOfType(err, ErrInvalidInvocation) {
			printUsage(rootCmd, err)
		} else {
			level.Error(logger).Log("err", err)
		}
		stop()
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return ErrInvalidInvocation.Wrap(err, "bad flags")
	})

	pflags := rootCmd.PersistentFlags()
	pflags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.jcrack.yaml)")
	pflags.BoolP("verbose", "v", false, "log search stages")
	pflags.Bool("no-color", false, "disable colored output")
	pflags.IntSlice("widths", []int{16, 17, 18, 19}, "escalating numbers of brute-forced low state bits")
	pflags.Duration("timeout", 0, "give up the search after this long (0 means no limit)")

	flags := rootCmd.Flags()
	flags.IntP("count", "n", 1, "number of nextLong() values to predict")

	for _, name := range []string{"verbose", "no-color", "widths", "timeout"} {
		viper.BindPFlag(name, pflags.Lookup(name))
	}
	viper.BindPFlag("count", flags.Lookup("count"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err == nil {
			// Search config in home directory with name ".jcrack" (without extension).
			viper.AddConfigPath(home)
			viper.SetConfigName(".jcrack")
		}
	}

	viper.SetEnvPrefix("jcrack")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		newLogger(os.Stderr, false).Log("msg", "cannot read config file", "file", cfgFile, "err", err)
		os.Exit(1)
	}
}

// configuredWidths reads the brute-force widths from flags, config or the
// environment (comma separated there).
func configuredWidths() ([]uint, error) {
	var raw []int
	if s, ok := viper.Get("widths").(string); ok {
		for _, f := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' }) {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, ErrInvalidInvocation.Wrap(err, "bad width %q", f)
			}
			raw = append(raw, n)
		}
	} else {
		raw = viper.GetIntSlice("widths")
	}

	widths := make([]uint, 0, len(raw))
	for _, w := range raw {
		if w < 0 {
			return nil, ErrInvalidInvocation.New("negative width %d", w)
		}
		widths = append(widths, uint(w))
	}
	return widths, nil
}

func searchOptions() ([]crack.Option, error) {
	widths, err := configuredWidths()
	if err != nil {
		return nil, err
	}
	return []crack.Option{crack.WithWidths(widths...), crack.WithLogger(logger)}, nil
}
