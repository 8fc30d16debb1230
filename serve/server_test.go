package serve

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tutils/jcrack/counter/period"
	"github.com/tutils/jcrack/crack"
)

func dial(t *testing.T, s *Server) *websocket.Conn {
	ts := httptest.NewServer(s)
	t.Cleanup(ts.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func roundTrip(t *testing.T, conn *websocket.Conn, msg string) *Reply {
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(msg)))
	reply := &Reply{}
	require.NoError(t, conn.ReadJSON(reply))
	return reply
}

func TestServerCracksToken(t *testing.T) {
	tested := period.NewPeriodCounter(time.Minute)
	s, err := NewServer(WithTestedCounter(tested))
	require.NoError(t, err)
	conn := dial(t, s)

	reply := roundTrip(t, conn, "-4971030886054769832\n")
	assert.Empty(t, reply.Error)
	assert.Equal(t, uint(16), reply.Width)
	assert.Equal(t, uint64(205623065021011), reply.State)
	assert.Equal(t, int64(205636714589246), reply.Seed)
	assert.Equal(t, uint64(49709068089186), reply.NextState)
	assert.Equal(t, int64(1628080142987304160), reply.NextLong)
	assert.Equal(t, int64(172235739125633), reply.FollowingSeed)
	assert.Equal(t, int64(35412), tested.Value())

	// the connection stays usable after a failure
	reply = roundTrip(t, conn, "not a number")
	assert.Equal(t, "not a number", reply.Input)
	assert.NotEmpty(t, reply.Error)

	reply = roundTrip(t, conn, "-4975988339999789512")
	assert.Contains(t, reply.Error, "seed_not_found")
	assert.Zero(t, reply.NextLong)

	reply = roundTrip(t, conn, "-4967725919621401576")
	assert.Empty(t, reply.Error)
	assert.Equal(t, int64(-4627004027837150407), reply.NextLong)
}

func TestServerSearchOptions(t *testing.T) {
	s, err := NewServer(WithSearchOptions(crack.WithWidths(16)))
	require.NoError(t, err)
	conn := dial(t, s)

	// new Random(7) needs 17 bits
	reply := roundTrip(t, conn, "-4967725919621401576")
	assert.Contains(t, reply.Error, "seed_not_found")
}

func TestNewServerAddress(t *testing.T) {
	s, err := NewServer()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8080", s.srv.Addr)

	s, err = NewServer(WithListenAddress("ws://127.0.0.1:9000"))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", s.srv.Addr)

	_, err = NewServer(WithListenAddress("ws://[::1"))
	assert.Error(t, err)
}
