package websocketPkg

import (
	"testing"
	"time"

	"Robostaan/internal/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub() IHub {
	logger := logrus.New()
	return NewHub(logger)
}

func TestHubBroadcastReachesSubscribers(t *testing.T) {
	h := newTestHub()
	defer h.Close()

	id1, events1 := h.Subscribe()
	id2, events2 := h.Subscribe()
	assert.NotEqual(t, id1, id2)

	event := entity.EngagementEvent{
		Kind:       "like",
		TargetType: entity.TargetBlog,
		TargetID:   "blog-1",
		ActorID:    "user-1",
		CreatedAt:  time.Now(),
	}
	h.Broadcast(event)

	got1 := <-events1
	got2 := <-events2
	assert.Equal(t, "like", got1.Kind)
	assert.Equal(t, "blog-1", got2.TargetID)
}

func TestHubUnsubscribeClosesChannel(t *testing.T) {
	h := newTestHub()
	defer h.Close()

	id, events := h.Subscribe()
	h.Unsubscribe(id)

	_, ok := <-events
	assert.False(t, ok)

	// Broadcasting after unsubscribe must not panic.
	h.Broadcast(entity.EngagementEvent{Kind: "comment"})
}

func TestHubSlowSubscriberDropsEvents(t *testing.T) {
	h := newTestHub()
	defer h.Close()

	_, events := h.Subscribe()

	for i := 0; i < subscriberBuffer+5; i++ {
		h.Broadcast(entity.EngagementEvent{Kind: "like"})
	}

	received := 0
	for {
		select {
		case _, ok := <-events:
			if !ok {
				t.Fatal("channel closed unexpectedly")
			}
			received++
		default:
			require.Equal(t, subscriberBuffer, received)
			return
		}
	}
}

func TestHubSubscribeAfterClose(t *testing.T) {
	h := newTestHub()
	h.Close()

	_, events := h.Subscribe()
	_, ok := <-events
	assert.False(t, ok)

	// Double close is a no-op.
	h.Close()
}
