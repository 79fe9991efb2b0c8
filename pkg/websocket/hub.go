package websocket

import (
	"encoding/json"
	"log"
	"time"
)

// Hub fans out game events to spectator connections. Each client watches a
// single feed, keyed by game token.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	broadcast  chan Broadcast
	quit       chan struct{}

	feeds map[string]map[*Client]bool
}

type Broadcast struct {
	Feed    string
	Type    string
	Payload any
}

func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Broadcast, 256),
		quit:       make(chan struct{}),
		feeds:      map[string]map[*Client]bool{},
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			if h.feeds[c.Feed] == nil {
				h.feeds[c.Feed] = map[*Client]bool{}
			}
			h.feeds[c.Feed][c] = true
		case c := <-h.unregister:
			h.removeClient(c)
		case b := <-h.broadcast:
			h.broadcastToFeed(b.Feed, b.Type, b.Payload)
		case <-h.quit:
			return
		}
	}
}

// Stop makes Run return and all hub operations no-ops, so clients of a dead
// hub never block forever.
func (h *Hub) Stop() {
	select {
	case <-h.quit:
	default:
		close(h.quit)
	}
}

func (h *Hub) Register(c *Client) {
	select {
	case h.register <- c:
	case <-h.quit:
	}
}

func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.quit:
	}
}

func (h *Hub) Broadcast(feed, typ string, payload any) {
	select {
	case h.broadcast <- Broadcast{Feed: feed, Type: typ, Payload: payload}:
	case <-h.quit:
	default:
		// Queue full: drop rather than block the game worker's caller.
	}
}

func (h *Hub) removeClient(c *Client) {
	if c == nil {
		return
	}
	if h.feeds[c.Feed] != nil {
		delete(h.feeds[c.Feed], c)
		if len(h.feeds[c.Feed]) == 0 {
			delete(h.feeds, c.Feed)
		}
	}
	c.SendCloseOnce.Do(func() { close(c.Send) })
}

func (h *Hub) broadcastToFeed(feed, typ string, payload any) {
	clients := h.feeds[feed]
	if len(clients) == 0 {
		return
	}

	msg := map[string]any{
		"type":      typ,
		"payload":   payload,
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	}
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("ws broadcast marshal error: feed=%s type=%s err=%v", feed, typ, err)
		return
	}

	for c := range clients {
		select {
		case c.Send <- data:
		default:
			// Backpressure / dead client.
			h.removeClient(c)
		}
	}
}
