package hub

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"cachequest/internal/app/ports"
)

const writeWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

type subscriber struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

// Hub fans state-change events out to every connected websocket client.
type Hub struct {
	mu          sync.Mutex
	nextID      int
	subscribers map[int]*subscriber
}

func New() *Hub {
	return &Hub{subscribers: make(map[int]*subscriber)}
}

type stateMessage struct {
	Type           string   `json:"type"`
	Reason         string   `json:"reason"`
	Lat            float64  `json:"lat"`
	Lng            float64  `json:"lng"`
	ActiveCaches   []string `json:"active_caches"`
	InventoryCount int      `json:"inventory_count"`
	ServerTime     int64    `json:"server_time"`
}

// StateChanged implements ports.StateNotifier.
func (h *Hub) StateChanged(ev ports.StateEvent) {
	msg := stateMessage{
		Type:           "state",
		Reason:         ev.Reason,
		Lat:            ev.Position.Lat,
		Lng:            ev.Position.Lng,
		ActiveCaches:   ev.ActiveCacheKeys,
		InventoryCount: ev.InventoryCount,
		ServerTime:     time.Now().UnixMilli(),
	}
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("failed to marshal state message: %v", err)
		return
	}

	h.mu.Lock()
	subs := make(map[int]*subscriber, len(h.subscribers))
	for id, sub := range h.subscribers {
		subs[id] = sub
	}
	h.mu.Unlock()

	for id, sub := range subs {
		sub.mu.Lock()
		sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
		err := sub.conn.WriteMessage(websocket.TextMessage, data)
		sub.mu.Unlock()
		if err != nil {
			log.Printf("failed to send update to subscriber %d: %v", id, err)
			h.drop(id)
		}
	}
}

// ServeWS upgrades the request and registers the connection until it closes.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	id := h.add(conn)

	// Drain reads so close frames and pings are processed.
	go func() {
		defer h.drop(id)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *Hub) add(conn *websocket.Conn) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextID
	h.nextID++
	h.subscribers[id] = &subscriber{conn: conn}
	return id
}

func (h *Hub) drop(id int) {
	h.mu.Lock()
	sub, ok := h.subscribers[id]
	if ok {
		delete(h.subscribers, id)
	}
	h.mu.Unlock()
	if ok {
		_ = sub.conn.Close()
	}
}

// SubscriberCount reports the number of live connections.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}
