package booking

import (
	"context"

	"mentorloop/models"

	"go.uber.org/zap"
)

// bulkReason flattens a transition failure into the short reason string
// reported per id.
func bulkReason(err error) string {
	switch e := err.(type) {
	case *NotFoundError:
		return "not found"
	case *TransitionError:
		return e.Message
	case *AuthorizationError:
		return "unauthorized"
	default:
		return err.Error()
	}
}

// ApplyBulk applies one transition to many bookings, each independently. The
// batch is validated up front (empty id lists and non-bulk actions perform
// zero transitions); after that, one id's failure never prevents processing
// of the rest, and nothing is rolled back. Re-running a bulk action over
// already-terminal bookings reports those ids as failures, never as silent
// successes.
func (svc *DefaultBookingService) ApplyBulk(ctx context.Context, ids []string, action string, actor models.Actor) (*models.BulkResult, error) {
	if len(ids) == 0 {
		return nil, NewValidationError("no booking ids given")
	}
	if action != models.ActionApprove && action != models.ActionDeny {
		return nil, NewValidationError("bulk action must be approve or deny")
	}

	result := &models.BulkResult{
		SuccessIDs: []string{},
		Failures:   []models.BulkFailure{},
	}

	for _, id := range ids {
		if _, err := svc.Transition(ctx, id, action, actor, ""); err != nil {
			result.Failures = append(result.Failures, models.BulkFailure{
				ID:     id,
				Reason: bulkReason(err),
			})
			continue
		}
		result.SuccessIDs = append(result.SuccessIDs, id)
	}

	zap.L().Info("bulk transition finished",
		zap.String("action", action),
		zap.String("actorId", actor.ID),
		zap.Int("succeeded", len(result.SuccessIDs)),
		zap.Int("failed", len(result.Failures)),
	)
	return result, nil
}
