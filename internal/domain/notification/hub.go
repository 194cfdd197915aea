package notification

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"salonbooking/internal/domain"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 4 * 1024
)

type connection struct {
	key  string
	conn *websocket.Conn
	send chan []byte
}

// Hub fans stored notifications out to every live socket of the recipient.
// A user may hold several sockets (one per tab).
type Hub struct {
	mu          sync.RWMutex
	connections map[string]map[*connection]struct{}
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[string]map[*connection]struct{}),
	}
}

func subscriberKey(userType domain.UserType, userID string) string {
	return string(userType) + ":" + userID
}

func (h *Hub) register(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.connections[c.key]
	if !ok {
		set = make(map[*connection]struct{})
		h.connections[c.key] = set
	}
	set[c] = struct{}{}
}

func (h *Hub) unregister(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.connections[c.key]
	if !ok {
		return
	}
	if _, ok := set[c]; !ok {
		return
	}
	delete(set, c)
	close(c.send)
	if len(set) == 0 {
		delete(h.connections, c.key)
	}
}

// Subscribers reports how many sockets are open for a recipient.
func (h *Hub) Subscribers(userType domain.UserType, userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections[subscriberKey(userType, userID)])
}

func (h *Hub) Publish(n *domain.Notification) {
	data, err := json.Marshal(&StreamEvent{Type: EventNotification, Payload: n})
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.connections[subscriberKey(n.UserType, n.UserID)] {
		select {
		case c.send <- data:
		default:
			// slow client, drop
		}
	}
}

// ServeWS blocks until the client disconnects.
func (h *Hub) ServeWS(conn *websocket.Conn, userType domain.UserType, userID string) {
	c := &connection{
		key:  subscriberKey(userType, userID),
		conn: conn,
		send: make(chan []byte, 64),
	}
	h.register(c)

	go h.writePump(c)
	h.readPump(c)
}

func (h *Hub) readPump(c *connection) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMsgSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
