package cmd

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tutils/jcrack/counter/period"
	"github.com/tutils/jcrack/serve"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Crack tokens sent over websocket",
	Long: `Start a websocket service; every text message is a token, every reply a JSON prediction. For example:
  jcrack serve --listen=ws://0.0.0.0:8080/crack`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := searchOptions()
		if err != nil {
			return err
		}

		tested := period.NewPeriodCounter(10 * time.Second)
		s, err := serve.NewServer(
			serve.WithListenAddress(viper.GetString("listen")),
			serve.WithLogger(logger),
			serve.WithTimeout(viper.GetDuration("timeout")),
			serve.WithTestedCounter(tested),
			serve.WithSearchOptions(opts...),
		)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			s.Shutdown(shutdownCtx)
		}()

		err = s.ListenAndServe()
		level.Info(logger).Log("msg", "stopped", "tested", tested.Value(), "tested_per_sec", tested.RatePerSec())
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	flags := serveCmd.Flags()
	flags.StringP("listen", "l", serve.DefaultListenAddress, "websocket url to listen on")
	viper.BindPFlag("listen", flags.Lookup("listen"))
}
