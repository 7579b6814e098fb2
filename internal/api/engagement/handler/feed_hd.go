package engagementHandler

import (
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

// HandleEngagementFeed streams engagement events to a websocket client
// until it disconnects.
func (h *EngagementHandler) HandleEngagementFeed(conn *websocket.Conn) {
	subscriberID, events := h.hub.Subscribe()
	defer h.hub.Unsubscribe(subscriberID)

	h.log.WithFields(logrus.Fields{
		"subscriber_id": subscriberID,
	}).Info("Engagement feed subscriber connected")

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			if err := conn.WriteJSON(event); err != nil {
				h.log.WithFields(logrus.Fields{
					"subscriber_id": subscriberID,
					"error":         err.Error(),
				}).Warn("Failed to write engagement event, dropping subscriber")
				return
			}
		case <-closed:
			h.log.WithFields(logrus.Fields{
				"subscriber_id": subscriberID,
			}).Info("Engagement feed subscriber disconnected")
			return
		}
	}
}
