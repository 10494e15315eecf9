package booking

import (
	"context"
	"time"

	"mentorloop/database/repository"
	"mentorloop/models"
)

// BookingService defines the write side of the booking core: creation, single
// transitions and bulk transitions. Reads go through VisibleBookings over the
// repository's actor view.
type BookingService interface {
	CreateBooking(ctx context.Context, actor models.Actor, req models.BookingRequest) (*models.Booking, error)
	Transition(ctx context.Context, id, action string, actor models.Actor, meetingLink string) (*models.Booking, error)
	ApplyBulk(ctx context.Context, ids []string, action string, actor models.Actor) (*models.BulkResult, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo repository.BookingRepository
	// Now is the clock used for CreatedAt/UpdatedAt stamps; nil means time.Now.
	Now func() time.Time
}

func (svc *DefaultBookingService) now() time.Time {
	if svc.Now != nil {
		return svc.Now()
	}
	return time.Now()
}
