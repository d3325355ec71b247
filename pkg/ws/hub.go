// Package ws pushes change events to connected browser tabs. The hub is
// broadcast-only: clients never send application messages, they just
// hold a connection open and re-fetch when told to.
package ws

import (
	"encoding/json"
	"log"
	"sync"
	"sync/atomic"
)

// Hub tracks the open connections and fans change events out to them.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]bool

	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	// seq numbers every outbound event
	seq atomic.Int64
}

// NewHub creates a hub. Start its loop with go hub.Run().
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run is the hub's event loop, handling client arrivals and departures
// until Stop is called.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		case <-h.done:
			return
		}
	}
}

// Stop ends the Run loop and disconnects every client.
func (h *Hub) Stop() {
	close(h.done)

	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		close(client.send)
		delete(h.clients, client)
	}
}

// BroadcastChanged pushes a sequenced employees.changed event to every
// connected client. A client whose send buffer is full is dropped
// rather than blocking the mutation path.
func (h *Hub) BroadcastChanged() {
	event := Event{Type: EventEmployeesChanged, Seq: h.seq.Add(1)}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("ERROR: Failed to encode change event: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		select {
		case client.send <- payload:
		default:
			log.Printf("WARN: Dropping slow change-feed client")
			go client.conn.Close()
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true
	log.Printf("INFO: Change-feed client connected (total: %d)", len(h.clients))
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.clients[client]; exists {
		delete(h.clients, client)
		close(client.send)
	}
	log.Printf("INFO: Change-feed client disconnected (total: %d)", len(h.clients))
}
