package bookingRepo

import (
	"context"
	"errors"

	"mentorloop/models"
)

// ErrNotFound is returned when no booking matches the requested id.
var ErrNotFound = errors.New("booking not found")

// BookingRepository is the store the core reads bookings from and writes
// transitions back to. Deletion is deliberately absent: removing bookings is
// an external concern.
type BookingRepository interface {
	// FetchForActor returns every booking the actor may see, provider and
	// requester bookings alike; the role-scoped view filter narrows further.
	FetchForActor(ctx context.Context, actorID string) ([]models.Booking, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	Create(ctx context.Context, booking *models.Booking) error
	Update(ctx context.Context, booking *models.Booking) error
}
