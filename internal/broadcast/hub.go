package broadcast

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"calcutta-auction/utils"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// Viewers join from arbitrary origins (shared links).
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Envelope is the wire format for one broadcast notification.
type Envelope struct {
	Type    string `json:"type"`
	EventID string `json:"event_id"`
	Payload any    `json:"payload,omitempty"`
	SentAt  string `json:"sent_at"`
}

// Hub fans out engine notifications to websocket subscribers grouped by
// event. Slow or broken subscribers are dropped rather than ever blocking a
// publish.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*subscriber]struct{} // key: eventID
}

type subscriber struct {
	send chan []byte
	done chan struct{}
	once sync.Once
}

func (s *subscriber) stop() {
	s.once.Do(func() { close(s.done) })
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[*subscriber]struct{})}
}

// Publish implements Publisher. Marshal or delivery problems are logged and
// absorbed; the engine never sees them.
func (h *Hub) Publish(eventID, kind string, payload any) {
	env := Envelope{
		Type:    kind,
		EventID: eventID,
		Payload: payload,
		SentAt:  time.Now().UTC().Format(time.RFC3339),
	}
	data, err := json.Marshal(env)
	if err != nil {
		utils.Warn("broadcast: marshal failed", map[string]any{"event_id": eventID, "kind": kind, "error": err.Error()})
		return
	}

	h.mu.RLock()
	room := h.rooms[eventID]
	subs := make([]*subscriber, 0, len(room))
	for s := range room {
		subs = append(subs, s)
	}
	h.mu.RUnlock()

	for _, s := range subs {
		select {
		case s.send <- data:
		case <-s.done:
		default:
			// Subscriber cannot keep up; detach it.
			h.detach(eventID, s)
		}
	}
}

// Subscribe upgrades the request to a websocket and streams notifications
// for one event until the client goes away. Blocks for the lifetime of the
// connection.
func (h *Hub) Subscribe(eventID string, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		utils.Warn("broadcast: upgrade failed", map[string]any{"event_id": eventID, "error": err.Error()})
		return
	}

	sub := &subscriber{send: make(chan []byte, 64), done: make(chan struct{})}
	h.attach(eventID, sub)

	go h.writeLoop(eventID, sub, conn)
	h.readLoop(eventID, sub, conn)
}

func (h *Hub) writeLoop(eventID string, sub *subscriber, conn *websocket.Conn) {
	ping := time.NewTicker(30 * time.Second)
	defer ping.Stop()
	defer conn.Close()

	for {
		select {
		case <-sub.done:
			return
		case data := <-sub.send:
			_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				h.detach(eventID, sub)
				return
			}
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.detach(eventID, sub)
				return
			}
		}
	}
}

func (h *Hub) readLoop(eventID string, sub *subscriber, conn *websocket.Conn) {
	_ = conn.SetReadDeadline(time.Now().Add(90 * time.Second))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(90 * time.Second))
		return nil
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.detach(eventID, sub)
			return
		}
	}
}

func (h *Hub) attach(eventID string, sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room, ok := h.rooms[eventID]
	if !ok {
		room = make(map[*subscriber]struct{})
		h.rooms[eventID] = room
	}
	room[sub] = struct{}{}
}

func (h *Hub) detach(eventID string, sub *subscriber) {
	h.mu.Lock()
	room, ok := h.rooms[eventID]
	if ok {
		delete(room, sub)
		if len(room) == 0 {
			delete(h.rooms, eventID)
		}
	}
	h.mu.Unlock()
	sub.stop()
}

// SubscriberCount reports how many connections are attached to an event.
func (h *Hub) SubscriberCount(eventID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[eventID])
}
