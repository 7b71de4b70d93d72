package realtime

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	EventInsert = "insert"
	EventUpdate = "update"
)

// Event is one change pushed to subscribers: a row inserted into or
// updated in one of the watched tables.
type Event struct {
	Table   string `json:"table"`
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

// Subscription is one websocket client listening on a single channel.
// A channel is a (table, event) pair; insert and update streams for the
// same table are distinct channels with no ordering between them.
type Subscription struct {
	Conn  *websocket.Conn
	Table string
	Event string
}

// Hub fans table change events out to websocket subscribers. Delivery per
// channel is FIFO in publish order.
type Hub struct {
	clients    map[string]map[*websocket.Conn]bool // channel key -> set of clients
	broadcast  chan Event
	register   chan Subscription
	unregister chan Subscription
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		broadcast:  make(chan Event, 64),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
	}
}

func channelKey(table, event string) string { return table + ":" + event }

func (h *Hub) Run() {
	for {
		select {
		case sub := <-h.register:
			key := channelKey(sub.Table, sub.Event)
			h.mu.Lock()
			if h.clients[key] == nil {
				h.clients[key] = make(map[*websocket.Conn]bool)
			}
			h.clients[key][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			key := channelKey(sub.Table, sub.Event)
			h.mu.Lock()
			if _, ok := h.clients[key][sub.Conn]; ok {
				delete(h.clients[key], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			key := channelKey(ev.Table, ev.Event)
			h.mu.Lock()
			for conn := range h.clients[key] {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[key], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish pushes one change event to every subscriber of its channel.
// Non-blocking: events are dropped once the buffer is full, subscribers
// treat the stream as advisory and reconcile by id anyway.
func (h *Hub) Publish(table, event string, payload any) {
	select {
	case h.broadcast <- Event{Table: table, Event: event, Payload: payload}:
	default:
		log.Printf("realtime: dropping %s %s event, broadcast buffer full", table, event)
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/:table?event=insert|update
func (h *Hub) HandleWebSocket(c *gin.Context) {
	table := c.Param("table")
	event := c.DefaultQuery("event", EventInsert)
	if event != EventInsert && event != EventUpdate {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "unknown event type"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := Subscription{Conn: conn, Table: table, Event: event}
	h.register <- sub

	go h.waitForClose(sub)
}

// waitForClose keeps reading until the client goes away, then unsubscribes
// so no callbacks leak to a closed connection.
func (h *Hub) waitForClose(sub Subscription) {
	defer func() { h.unregister <- sub }()
	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
