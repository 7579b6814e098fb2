package websocketPkg

import (
	"sync"

	"Robostaan/internal/entity"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
)

// IHub fans engagement events out to connected websocket clients.
// Sends never block: a subscriber that cannot keep up loses events.
type IHub interface {
	Subscribe() (string, <-chan entity.EngagementEvent)
	Unsubscribe(id string)
	Broadcast(event entity.EngagementEvent)
	Close()
}

type hub struct {
	mu          sync.RWMutex
	subscribers map[string]chan entity.EngagementEvent
	closed      bool
	log         *logrus.Logger
}

const subscriberBuffer = 16

func NewHub(log *logrus.Logger) IHub {
	return &hub{
		subscribers: make(map[string]chan entity.EngagementEvent),
		log:         log,
	}
}

func (h *hub) Subscribe() (string, <-chan entity.EngagementEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := ulid.Make().String()
	ch := make(chan entity.EngagementEvent, subscriberBuffer)

	if h.closed {
		close(ch)
		return id, ch
	}

	h.subscribers[id] = ch
	return id, ch
}

func (h *hub) Unsubscribe(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.subscribers[id]; ok {
		delete(h.subscribers, id)
		close(ch)
	}
}

func (h *hub) Broadcast(event entity.EngagementEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, ch := range h.subscribers {
		select {
		case ch <- event:
		default:
			h.log.WithFields(logrus.Fields{
				"subscriber_id": id,
				"kind":          event.Kind,
			}).Warn("Dropping engagement event for slow subscriber")
		}
	}
}

func (h *hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true

	for id, ch := range h.subscribers {
		delete(h.subscribers, id)
		close(ch)
	}
}
