package websocket

import (
	"CivicPulseAPI/internal/config"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Hub fans domain events out to every connected subscriber. Slow consumers
// are throttled by the event limiter and dropped when their send buffer
// fills; losing a client never blocks the publishing side.
type Hub struct {
	clients    map[*Client]bool
	Register   chan *Client
	Unregister chan *Client
	events     chan Event

	limiter *config.EventLimiter
	mu      sync.RWMutex
}

func NewHub(limiter *config.EventLimiter) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		events:     make(chan Event, 256),
		limiter:    limiter,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.Unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mu.Unlock()

		case event := <-h.events:
			h.deliver(event)
		}
	}
}

// Publish enqueues an event for broadcast. It never blocks the caller: if
// the event buffer is full the event is dropped and logged.
func (h *Hub) Publish(eventType EventType, reportID uuid.UUID, payload interface{}) {
	event := Event{
		Type:    eventType,
		Payload: payload,
		Meta: &EventMeta{
			Timestamp: time.Now().UnixMilli(),
			ReportID:  reportID.String(),
		},
	}

	select {
	case h.events <- event:
	default:
		slog.Warn("Event buffer full, dropping event", "type", eventType, "reportID", reportID)
	}
}

func (h *Hub) deliver(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		slog.Error("Failed to marshal event", "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		if h.limiter != nil && !h.limiter.Allow(client.UserID.String()) {
			continue
		}

		select {
		case client.Send <- data:
		default:
			close(client.Send)
			delete(h.clients, client)
		}
	}
}
