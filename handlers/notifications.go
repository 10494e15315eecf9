package handlers

import (
	"io"
	"net/http"

	"mentorloop/middleware"
	"mentorloop/models"
	"mentorloop/services/notification"
	"mentorloop/utils"

	"github.com/gin-gonic/gin"
)

// NotificationHandler bridges the reconciler hub to HTTP consumers over
// server-sent events.
type NotificationHandler struct {
	Hub *notification.Hub
}

func NewNotificationHandler(hub *notification.Hub) *NotificationHandler {
	return &NotificationHandler{Hub: hub}
}

// Stream subscribes the caller to their notification feed. The subscription
// lives as long as the connection: closing it removes the subscriber, and the
// last consumer stops the underlying poll loop.
func (h *NotificationHandler) Stream(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unknown actor", "")
		return
	}

	feedCh := make(chan models.NotificationFeed, 8)
	unsubscribe := h.Hub.Subscribe(actor, func(feed models.NotificationFeed) {
		// Drop rather than block: a stalled connection must not stall the
		// reconciler; the next publication carries the full state anyway.
		select {
		case feedCh <- feed:
		default:
		}
	})
	defer unsubscribe()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case feed := <-feedCh:
			c.SSEvent("feed", feed)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// MarkAsRead flips one event's read flag in the caller's live feed.
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unknown actor", "")
		return
	}
	h.Hub.MarkAsRead(actor, c.Param("id"))
	c.Status(http.StatusNoContent)
}

// MarkAllAsRead flips every event's read flag in the caller's live feed.
func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unknown actor", "")
		return
	}
	h.Hub.MarkAllAsRead(actor)
	c.Status(http.StatusNoContent)
}
