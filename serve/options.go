package serve

import (
	"time"

	"github.com/go-kit/log"
	"github.com/tutils/jcrack/counter"
	"github.com/tutils/jcrack/crack"
)

// Options is server options
type Options struct {
	addr       string
	logger     log.Logger
	timeout    time.Duration
	tested     counter.Counter
	searchOpts []crack.Option
}

// Option is option setter for server
type Option func(*Options)

// default server options
var (
	DefaultListenAddress = "ws://0.0.0.0:8080/crack"
	DefaultTimeout       = 30 * time.Second
)

func newOptions(opts ...Option) *Options {
	opt := &Options{}
	for _, o := range opts {
		o(opt)
	}

	if opt.addr == "" {
		opt.addr = DefaultListenAddress
	}
	if opt.logger == nil {
		opt.logger = log.NewNopLogger()
	}
	if opt.timeout <= 0 {
		opt.timeout = DefaultTimeout
	}

	return opt
}

// WithListenAddress sets the websocket url to listen on, e.g. ws://0.0.0.0:8080/crack
func WithListenAddress(addr string) Option {
	return func(opts *Options) {
		opts.addr = addr
	}
}

// WithLogger sets server logger
func WithLogger(logger log.Logger) Option {
	return func(opts *Options) {
		opts.logger = logger
	}
}

// WithTimeout bounds the search time of a single token
func WithTimeout(d time.Duration) Option {
	return func(opts *Options) {
		opts.timeout = d
	}
}

// WithTestedCounter sets a counter that accumulates tested candidates
func WithTestedCounter(c counter.Counter) Option {
	return func(opts *Options) {
		opts.tested = c
	}
}

// WithSearchOptions sets options passed to every search
func WithSearchOptions(opts ...crack.Option) Option {
	return func(o *Options) {
		o.searchOpts = append(o.searchOpts, opts...)
	}
}
