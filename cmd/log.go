package cmd

import (
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

func newLogger(w io.Writer, verbose bool) log.Logger {
	l := log.NewLogfmtLogger(log.NewSyncWriter(w))
	if verbose {
		l = level.NewFilter(l, level.AllowDebug())
	} else {
		l = level.NewFilter(l, level.AllowInfo())
	}
	return log.With(l, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
}
