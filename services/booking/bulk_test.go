package booking

import (
	"context"
	"testing"
	"time"

	"mentorloop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bulkService(repo *memRepo) *DefaultBookingService {
	now := time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC)
	return &DefaultBookingService{Repo: repo, Now: func() time.Time { return now }}
}

func TestApplyBulkValidation(t *testing.T) {
	svc := bulkService(newMemRepo())

	tests := []struct {
		name   string
		ids    []string
		action string
	}{
		{name: "empty id list", ids: nil, action: models.ActionApprove},
		{name: "cancel is not a bulk action", ids: []string{"bk-1"}, action: models.ActionCancel},
		{name: "unknown action", ids: []string{"bk-1"}, action: "archive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.ApplyBulk(context.Background(), tt.ids, tt.action, provider)
			require.Error(t, err)
			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.Nil(t, result, "a rejected batch must perform zero transitions")
		})
	}
}

func TestApplyBulkPartialFailure(t *testing.T) {
	denied := pendingBooking("bk-3")
	denied.Status = models.StatusDenied
	repo := newMemRepo(pendingBooking("bk-1"), pendingBooking("bk-2"), denied)
	svc := bulkService(repo)

	result, err := svc.ApplyBulk(context.Background(), []string{"bk-1", "bk-2", "bk-3"}, models.ActionApprove, provider)
	require.NoError(t, err)

	assert.Equal(t, []string{"bk-1", "bk-2"}, result.SuccessIDs)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "bk-3", result.Failures[0].ID)
	assert.Equal(t, "not pending", result.Failures[0].Reason)

	assert.Equal(t, models.StatusApproved, repo.get("bk-1").Status)
	assert.Equal(t, models.StatusApproved, repo.get("bk-2").Status)
	assert.Equal(t, models.StatusDenied, repo.get("bk-3").Status)
}

func TestApplyBulkFailureDoesNotStopProcessing(t *testing.T) {
	repo := newMemRepo(pendingBooking("bk-1"), pendingBooking("bk-3"))
	svc := bulkService(repo)

	// The missing id sits in the middle of the batch.
	result, err := svc.ApplyBulk(context.Background(), []string{"bk-1", "bk-2", "bk-3"}, models.ActionDeny, provider)
	require.NoError(t, err)

	assert.Equal(t, []string{"bk-1", "bk-3"}, result.SuccessIDs)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "bk-2", result.Failures[0].ID)
	assert.Equal(t, "not found", result.Failures[0].Reason)
}

func TestApplyBulkIsNeverSilentlyIdempotent(t *testing.T) {
	repo := newMemRepo(pendingBooking("bk-1"))
	svc := bulkService(repo)

	first, err := svc.ApplyBulk(context.Background(), []string{"bk-1"}, models.ActionApprove, provider)
	require.NoError(t, err)
	assert.Len(t, first.SuccessIDs, 1)

	// Re-running over an already-terminal booking reports a failure, not a
	// quiet success.
	second, err := svc.ApplyBulk(context.Background(), []string{"bk-1"}, models.ActionApprove, provider)
	require.NoError(t, err)
	assert.Empty(t, second.SuccessIDs)
	require.Len(t, second.Failures, 1)
	assert.Equal(t, "not pending", second.Failures[0].Reason)
}

func TestApplyBulkUnauthorizedActor(t *testing.T) {
	repo := newMemRepo(pendingBooking("bk-1"))
	svc := bulkService(repo)

	result, err := svc.ApplyBulk(context.Background(), []string{"bk-1"}, models.ActionApprove, requester)
	require.NoError(t, err)
	assert.Empty(t, result.SuccessIDs)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "unauthorized", result.Failures[0].Reason)
}
