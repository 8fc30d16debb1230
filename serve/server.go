// Package serve answers crack requests over websocket. Every text message
// is one token in base 10; every reply is a JSON Reply.
package serve

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/joomcode/errorx"
	"github.com/tutils/jcrack/crack"
)

var (
	upgrader = websocket.Upgrader{
		ReadBufferSize:  4 << 10,
		WriteBufferSize: 4 << 10,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
)

// Reply is sent for every received token. 64-bit values are encoded as
// strings so that JavaScript clients keep their precision.
type Reply struct {
	Input string `json:"input"`
	Error string `json:"error,omitempty"`

	Width         uint   `json:"width,omitempty"`
	Tested        uint64 `json:"tested,omitempty"`
	State         uint64 `json:"state,string,omitempty"`
	Seed          int64  `json:"seed,string,omitempty"`
	NextState     uint64 `json:"nextState,string,omitempty"`
	NextLong      int64  `json:"nextLong,string,omitempty"`
	FollowingSeed int64  `json:"followingSeed,string,omitempty"`
}

// Server is a websocket crack service
type Server struct {
	opts Options
	srv  *http.Server
}

// NewServer creates a server; the listen url's path is the websocket endpoint.
func NewServer(opts ...Option) (*Server, error) {
	opt := newOptions(opts...)
	u, err := url.Parse(opt.addr)
	if err != nil {
		return nil, errorx.IllegalArgument.Wrap(err, "bad listen address %q", opt.addr)
	}

	s := &Server{
		opts: *opt,
	}
	path := u.Path
	if path == "" {
		path = "/"
	}
	mux := http.NewServeMux()
	mux.Handle(path, s)
	s.srv = &http.Server{
		Addr:    u.Host,
		Handler: mux,
	}
	return s, nil
}

func (s *Server) ListenAndServe() error {
	level.Info(s.opts.logger).Log("msg", "listening", "addr", s.opts.addr)
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		level.Warn(s.opts.logger).Log("msg", "upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}
	defer conn.Close()

	logger := log.With(s.opts.logger, "conn", uuid.New().String()[:8])
	level.Info(logger).Log("msg", "connected", "remote", r.RemoteAddr)

	conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readTimeout))
		return nil
	})
	done := make(chan struct{})
	defer close(done)
	go startPing(conn, done)

	ctx := r.Context()
	for {
		typ, data, err := conn.ReadMessage()
		if err != nil {
			level.Info(logger).Log("msg", "disconnected", "err", err)
			return
		}
		if typ != websocket.TextMessage {
			continue
		}

		reply := s.handle(ctx, logger, string(data))
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(reply); err != nil {
			level.Warn(logger).Log("msg", "write failed", "err", err)
			return
		}
	}
}

func (s *Server) handle(ctx context.Context, logger log.Logger, input string) *Reply {
	reply := &Reply{Input: input}
	token, err := strconv.ParseInt(strings.TrimSpace(input), 10, 64)
	if err != nil {
		reply.Error = "token is not a 64-bit integer"
		level.Debug(logger).Log("msg", "bad token", "input", input)
		return reply
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.timeout)
	defer cancel()
	p, err := crack.RecoverAndPredict(ctx, token, s.opts.searchOpts...)
	if err != nil {
		reply.Error = err.Error()
		level.Info(logger).Log("msg", "crack failed", "token", token, "err", err)
		return reply
	}

	if s.opts.tested != nil {
		s.opts.tested.Add(int64(p.Tested))
	}
	reply.Width = p.Width
	reply.Tested = p.Tested
	reply.State = uint64(p.Upper)
	reply.Seed = p.Seed()
	reply.NextState = uint64(p.Lower)
	reply.NextLong = p.NextLong
	reply.FollowingSeed = p.FollowingSeed
	level.Info(logger).Log("msg", "cracked", "token", token, "width", p.Width, "next", p.NextLong)
	return reply
}

const readTimeout = time.Second * 15
const pingPeriod = time.Second * 10
const writeTimeout = time.Second

func startPing(conn *websocket.Conn, done chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			conn.WriteControl(websocket.PingMessage, []byte{}, time.Now().Add(writeTimeout))
		case <-done:
			return
		}
	}
}
