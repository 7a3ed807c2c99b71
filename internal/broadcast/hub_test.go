package broadcast

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func dialHub(t *testing.T, hub *Hub, eventID string) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.Subscribe(eventID, w, r)
	}))
	t.Cleanup(srv.Close)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

// Tests Publish delivery to a live subscriber
func TestHub_PublishReachesSubscriber(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	conn := dialHub(t, hub, "ev1")

	require.Eventually(t, func() bool {
		return hub.SubscriberCount("ev1") == 1
	}, time.Second, 10*time.Millisecond)

	hub.Publish("ev1", "lot_opened", map[string]any{"lot_id": "lot1"})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var env Envelope
	require.NoError(t, json.Unmarshal(data, &env))
	require.Equal(t, "lot_opened", env.Type)
	require.Equal(t, "ev1", env.EventID)
	require.NotEmpty(t, env.SentAt)

	payload, ok := env.Payload.(map[string]any)
	require.True(t, ok)
	require.Equal(t, "lot1", payload["lot_id"])
}

// Notifications are scoped to their event room.
func TestHub_RoomsAreIsolated(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	conn := dialHub(t, hub, "ev1")

	require.Eventually(t, func() bool {
		return hub.SubscriberCount("ev1") == 1
	}, time.Second, 10*time.Millisecond)

	hub.Publish("ev2", "lot_opened", nil)
	hub.Publish("ev1", "bid_placed", nil)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var env Envelope
	require.NoError(t, json.Unmarshal(data, &env))
	require.Equal(t, "bid_placed", env.Type)
}

// A closed connection falls out of the room.
func TestHub_SubscriberDetachesOnClose(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	conn := dialHub(t, hub, "ev1")

	require.Eventually(t, func() bool {
		return hub.SubscriberCount("ev1") == 1
	}, time.Second, 10*time.Millisecond)

	conn.Close()

	require.Eventually(t, func() bool {
		return hub.SubscriberCount("ev1") == 0
	}, 2*time.Second, 10*time.Millisecond)

	// Publishing into an empty room is a no-op.
	hub.Publish("ev1", "lot_opened", nil)
}
