package models

import "time"

// Booking statuses. A booking starts out pending and moves exactly once
// into one of the terminal statuses.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusDenied    = "denied"
	StatusCancelled = "cancelled"
)

// Transition actions accepted by the state machine.
const (
	ActionApprove = "approve"
	ActionDeny    = "deny"
	ActionCancel  = "cancel"
)

// Booking represents a single mentorship session request.
type Booking struct {
	ID          string    `bson:"id" json:"id"`                                        // Unique booking identifier (UUID)
	ProviderID  string    `bson:"provider_id" json:"provider_id"`                      // Mentor who receives the request
	RequesterID string    `bson:"requester_id" json:"requester_id"`                    // Mentee who made the request
	Date        string    `bson:"date" json:"date"`                                    // Session date in "YYYY-MM-DD" format
	Time        string    `bson:"time,omitempty" json:"time,omitempty"`                // Optional time of day, "HH:MM:SS"
	Title       string    `bson:"title,omitempty" json:"title,omitempty"`              // Optional session title
	Note        string    `bson:"note,omitempty" json:"note,omitempty"`                // Optional free-text note from the requester
	Status      string    `bson:"status" json:"status"`                                // One of pending/approved/denied/cancelled
	MeetingLink string    `bson:"meeting_link,omitempty" json:"meetingLink,omitempty"` // Set by the provider on approval
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// IsTerminal reports whether the booking can no longer transition.
func (b Booking) IsTerminal() bool {
	return b.Status != StatusPending
}

// BookingRequest is the payload a requester submits to create a booking.
type BookingRequest struct {
	ProviderID string `json:"providerId"`
	Date       string `json:"date"`
	Time       string `json:"time,omitempty"`
	Title      string `json:"title,omitempty"`
	Note       string `json:"note,omitempty"`
}

// BulkFailure records why one id in a bulk batch could not be transitioned.
type BulkFailure struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// BulkResult aggregates the outcome of a bulk transition. A partially failed
// batch is still a successful call; the caller decides how to present it.
type BulkResult struct {
	SuccessIDs []string      `json:"successIds"`
	Failures   []BulkFailure `json:"failures"`
}
