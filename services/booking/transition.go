package booking

import (
	"context"
	"errors"
	"time"

	bookingRepo "mentorloop/database/repository/booking"
	"mentorloop/models"

	"go.uber.org/zap"
)

// Transition validates and executes a single status change. Only pending
// bookings may transition; approved, denied and cancelled are terminal.
// Approve and deny are provider-only; cancel is allowed to either side.
// The updated booking is written back through the repository and returned,
// so the caller never observes an intermediate state.
func (svc *DefaultBookingService) Transition(ctx context.Context, id, action string, actor models.Actor, meetingLink string) (*models.Booking, error) {
	current, err := svc.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(id, err)
	}

	updated, err := applyTransition(*current, action, actor, meetingLink, svc.now())
	if err != nil {
		return nil, err
	}

	if err := svc.Repo.Update(ctx, &updated); err != nil {
		return nil, mapRepoError(id, err)
	}

	zap.L().Info("booking transitioned",
		zap.String("bookingId", updated.ID),
		zap.String("action", action),
		zap.String("status", updated.Status),
		zap.String("actorId", actor.ID),
	)
	return &updated, nil
}

// applyTransition is the pure core of the state machine: no I/O, no clock of
// its own. It returns the updated booking or the exact error the caller must
// surface.
func applyTransition(b models.Booking, action string, actor models.Actor, meetingLink string, now time.Time) (models.Booking, error) {
	if b.Status != models.StatusPending {
		return models.Booking{}, NewTransitionError("not pending")
	}

	switch action {
	case models.ActionApprove:
		if actor.ID != b.ProviderID {
			return models.Booking{}, NewAuthorizationError("only the provider may approve")
		}
		b.Status = models.StatusApproved
		if meetingLink != "" {
			b.MeetingLink = meetingLink
		}
	case models.ActionDeny:
		if actor.ID != b.ProviderID {
			return models.Booking{}, NewAuthorizationError("only the provider may deny")
		}
		b.Status = models.StatusDenied
	case models.ActionCancel:
		if actor.ID != b.ProviderID && actor.ID != b.RequesterID {
			return models.Booking{}, NewAuthorizationError("only a participant may cancel")
		}
		b.Status = models.StatusCancelled
	default:
		return models.Booking{}, NewValidationError("unknown action: " + action)
	}

	b.UpdatedAt = now
	return b, nil
}

// mapRepoError turns repository failures into the domain error taxonomy.
func mapRepoError(id string, err error) error {
	if errors.Is(err, bookingRepo.ErrNotFound) {
		return &NotFoundError{ID: id}
	}
	return &NetworkError{Err: err}
}
