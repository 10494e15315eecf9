package models

import "time"

// Notification event kinds. Cancellations do not generate events.
const (
	EventNewRequest = "new_request"
	EventApproved   = "approved"
	EventDenied     = "denied"
)

// NotificationEvent is a single state-change event derived from a booking
// snapshot. The ID is computed deterministically from the booking id and the
// event kind, so re-deriving the same event yields the same record. Events
// live only inside the reconciler; they are never persisted server-side.
type NotificationEvent struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	BookingID string    `json:"bookingId"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}

// AlertPayload is the queued form of one alert, consumed by the background
// delivery worker.
type AlertPayload struct {
	ActorID   string    `json:"actorId"`
	EventID   string    `json:"eventId"`
	Kind      string    `json:"kind"`
	BookingID string    `json:"bookingId"`
	Timestamp time.Time `json:"timestamp"`
}

// NotificationFeed is what the reconciler publishes to its subscribers after
// every tick and after mark-read mutations. Notifications are ordered
// most-recent-first for display.
type NotificationFeed struct {
	Notifications []NotificationEvent `json:"notifications"`
	UnreadCount   int                 `json:"unreadCount"`
}
