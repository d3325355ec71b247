package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFeed(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()

	hub := NewHub()
	go hub.Run()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ServeWS(hub, w, r)
	}))
	t.Cleanup(func() {
		ts.Close()
		hub.Stop()
	})
	return hub, ts
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var event Event
	require.NoError(t, json.Unmarshal(payload, &event))
	return event
}

func TestHub_BroadcastReachesEveryClient(t *testing.T) {
	hub, ts := newFeed(t)

	first := dial(t, ts)
	second := dial(t, ts)

	require.Eventually(t, func() bool {
		return hub.ClientCount() == 2
	}, 2*time.Second, 10*time.Millisecond)

	hub.BroadcastChanged()

	a := readEvent(t, first)
	b := readEvent(t, second)
	assert.Equal(t, EventEmployeesChanged, a.Type)
	assert.Equal(t, a.Seq, b.Seq, "one broadcast carries one sequence number")
}

func TestHub_SequenceNumbersIncrease(t *testing.T) {
	hub, ts := newFeed(t)
	conn := dial(t, ts)

	require.Eventually(t, func() bool {
		return hub.ClientCount() == 1
	}, 2*time.Second, 10*time.Millisecond)

	hub.BroadcastChanged()
	hub.BroadcastChanged()

	first := readEvent(t, conn)
	second := readEvent(t, conn)
	assert.Equal(t, first.Seq+1, second.Seq)
}

func TestHub_DisconnectedClientIsRemoved(t *testing.T) {
	hub, ts := newFeed(t)
	conn := dial(t, ts)

	require.Eventually(t, func() bool {
		return hub.ClientCount() == 1
	}, 2*time.Second, 10*time.Millisecond)

	conn.Close()

	require.Eventually(t, func() bool {
		return hub.ClientCount() == 0
	}, 2*time.Second, 10*time.Millisecond)

	// Broadcasting with nobody connected is fine
	hub.BroadcastChanged()
}
