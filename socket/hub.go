package socket

import (
	"encoding/json"
	"sync"

	"draftai/pkg/logger"
)

const (
	DraftCreatedType = "DRAFT_CREATED" // A draft was created via the API
	DraftUpdatedType = "DRAFT_UPDATED" // Title and/or content changed
	DraftDeletedType = "DRAFT_DELETED" // A draft was removed
)

// Event is the wire format pushed to every connected editor client.
type Event struct {
	Type    string          `json:"type"`
	DraftID string          `json:"draft_id"`
	Payload json.RawMessage `json:"payload"`
}

// Hub fans draft lifecycle events out to connected WebSocket clients.
// Clients are listen-only; all state is owned by the Run goroutine.
type Hub struct {
	clients    map[*Client]bool
	Broadcast  chan Event
	Register   chan *Client
	Unregister chan *Client
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		Broadcast:  make(chan Event),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Notify queues an event for broadcast. Safe to call from any goroutine.
func (h *Hub) Notify(eventType, draftID string, payload []byte) {
	h.Broadcast <- Event{Type: eventType, DraftID: draftID, Payload: payload}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			logger.Sugar.Infof("Client connected, %d listener(s)", h.ClientCount())

		case client := <-h.Unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mu.Unlock()

		case event := <-h.Broadcast:
			payload, err := json.Marshal(event)
			if err != nil {
				logger.Sugar.Errorf("Error marshalling broadcast event: %v", err)
				continue
			}

			// Snapshot the audience so the send loop runs without the lock.
			h.mu.Lock()
			clientsToSend := make([]*Client, 0, len(h.clients))
			for client := range h.clients {
				clientsToSend = append(clientsToSend, client)
			}
			h.mu.Unlock()

			for _, client := range clientsToSend {
				select {
				case client.Send <- payload:
				default:
					// Full buffer means a lagging client; drop it rather
					// than block the hub.
					logger.Sugar.Warnf("Client send buffer full, dropping listener")
					h.mu.Lock()
					if _, ok := h.clients[client]; ok {
						delete(h.clients, client)
						close(client.Send)
					}
					h.mu.Unlock()
				}
			}
		}
	}
}

func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
