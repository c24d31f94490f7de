package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestManager(t *testing.T) (*ConnectionManager, *httptest.Server) {
	t.Helper()

	manager := NewConnectionManager(5 * time.Second)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))

	t.Cleanup(func() { server.Close() })
	return manager, server
}

func connectWS(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readJSON(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func writeJSON(t *testing.T, conn *websocket.Conn, v interface{}) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

// waitForSubscribers polls until the channel has the expected subscriber count.
func waitForSubscribers(t *testing.T, m *ConnectionManager, channel string, want int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return m.subscriberCount(channel) == want
	}, 2*time.Second, 10*time.Millisecond)
}

func TestConnectionManager_ConnectionEstablished(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server)

	msg := readJSON(t, conn)
	assert.Equal(t, "connection.established", msg["type"])
	assert.NotEmpty(t, msg["connection_id"])
}

func TestConnectionManager_SubscribeUnsubscribe(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: JobChannel("abc")})

	msg := readJSON(t, conn)
	assert.Equal(t, "subscription.confirmed", msg["type"])
	assert.Equal(t, "job:abc", msg["channel"])
	waitForSubscribers(t, manager, "job:abc", 1)

	writeJSON(t, conn, ClientMessage{Action: "unsubscribe", Channel: JobChannel("abc")})
	waitForSubscribers(t, manager, "job:abc", 0)
}

func TestConnectionManager_SubscribeRequiresChannel(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn)

	writeJSON(t, conn, ClientMessage{Action: "subscribe"})

	msg := readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
}

func TestConnectionManager_BroadcastReachesSubscribers(t *testing.T) {
	manager, server := setupTestManager(t)

	subscriber := connectWS(t, server)
	readJSON(t, subscriber)
	writeJSON(t, subscriber, ClientMessage{Action: "subscribe", Channel: GlobalJobsChannel})
	readJSON(t, subscriber) // subscription.confirmed
	waitForSubscribers(t, manager, GlobalJobsChannel, 1)

	bystander := connectWS(t, server)
	readJSON(t, bystander)

	manager.Broadcast(GlobalJobsChannel, []byte(`{"type":"job.status","job_id":"j1"}`))

	msg := readJSON(t, subscriber)
	assert.Equal(t, "job.status", msg["type"])
	assert.Equal(t, "j1", msg["job_id"])

	// Bystander never subscribed, so the only message it could have seen is
	// the ping response we solicit here.
	writeJSON(t, bystander, ClientMessage{Action: "ping"})
	msg = readJSON(t, bystander)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_BroadcastToEmptyChannelIsNoop(t *testing.T) {
	manager, _ := setupTestManager(t)
	manager.Broadcast("job:nobody", []byte(`{}`))
	assert.Equal(t, 0, manager.ActiveConnections())
}

func TestConnectionManager_DisconnectCleansUpSubscriptions(t *testing.T) {
	manager, server := setupTestManager(t)

	conn := connectWS(t, server)
	readJSON(t, conn)
	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: JobChannel("gone")})
	readJSON(t, conn)
	waitForSubscribers(t, manager, "job:gone", 1)

	require.NoError(t, conn.Close(websocket.StatusNormalClosure, ""))
	waitForSubscribers(t, manager, "job:gone", 0)
	require.Eventually(t, func() bool {
		return manager.ActiveConnections() == 0
	}, 2*time.Second, 10*time.Millisecond)
}
