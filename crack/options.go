package crack

import (
	"github.com/go-kit/log"
)

// Progress describes a search stage that is about to start.
type Progress struct {
	Width  uint   // number of brute-forced low bits
	Prefix uint64 // known top 48-Width bits of the candidate state
	Stage  int    // zero based
	Stages int
}

// ProgressFunc receives stage notifications.
type ProgressFunc func(Progress)

// Options are search options
type Options struct {
	widths   []uint
	progress ProgressFunc
	logger   log.Logger
}

// Option is option setter for the search
type Option func(*Options)

// default search options
var (
	DefaultWidths = []uint{16, 17, 18, 19}
)

const (
	minWidth = 16
	maxWidth = 32
)

func newOptions(opts ...Option) (*Options, error) {
	opt := &Options{}
	for _, o := range opts {
		o(opt)
	}

	if opt.widths == nil {
		opt.widths = DefaultWidths
	}
	if opt.logger == nil {
		opt.logger = log.NewNopLogger()
	}

	if len(opt.widths) == 0 {
		return nil, ErrInvalidOptions.New("no brute-force widths")
	}
	for i, w := range opt.widths {
		if w < minWidth || w > maxWidth {
			return nil, ErrInvalidOptions.New("width %d outside [%d, %d]", w, minWidth, maxWidth)
		}
		if i > 0 && w <= opt.widths[i-1] {
			return nil, ErrInvalidOptions.New("widths must increase: %v", opt.widths)
		}
	}

	return opt, nil
}

// WithWidths sets the escalating sequence of brute-forced bit counts
func WithWidths(widths ...uint) Option {
	return func(opts *Options) {
		opts.widths = append([]uint{}, widths...)
	}
}

// WithProgress sets a callback invoked before every stage
func WithProgress(fn ProgressFunc) Option {
	return func(opts *Options) {
		opts.progress = fn
	}
}

// WithLogger sets the logger for stage diagnostics
func WithLogger(logger log.Logger) Option {
	return func(opts *Options) {
		opts.logger = logger
	}
}
