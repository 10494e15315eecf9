package booking

import (
	"context"
	"time"

	"mentorloop/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// validateBookingRequest checks the requester's input before anything is
// persisted. "Today" is valid; only strictly past dates are rejected.
func validateBookingRequest(req models.BookingRequest, now time.Time) error {
	if req.ProviderID == "" {
		return NewValidationError("providerId is required")
	}
	if req.Date == "" {
		return NewValidationError("date is required")
	}
	date, err := time.ParseInLocation(dateLayout, req.Date, now.Location())
	if err != nil {
		return NewValidationError("date must be in YYYY-MM-DD format")
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(today) {
		return NewValidationError("date must not be in the past")
	}
	if req.Time != "" {
		if _, err := time.Parse(timeLayout, req.Time); err != nil {
			return NewValidationError("time must be in HH:MM:SS format")
		}
	}
	return nil
}

// CreateBooking records a new pending booking for the requesting actor.
func (svc *DefaultBookingService) CreateBooking(ctx context.Context, actor models.Actor, req models.BookingRequest) (*models.Booking, error) {
	now := svc.now()
	if err := validateBookingRequest(req, now); err != nil {
		return nil, err
	}

	booking := models.Booking{
		ID:          uuid.New().String(),
		ProviderID:  req.ProviderID,
		RequesterID: actor.ID,
		Date:        req.Date,
		Time:        req.Time,
		Title:       req.Title,
		Note:        req.Note,
		Status:      models.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := svc.Repo.Create(ctx, &booking); err != nil {
		return nil, &NetworkError{Err: err}
	}

	zap.L().Info("booking created",
		zap.String("bookingId", booking.ID),
		zap.String("providerId", booking.ProviderID),
		zap.String("requesterId", booking.RequesterID),
	)
	return &booking, nil
}
