package booking

import (
	"context"
	"testing"
	"time"

	"mentorloop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBookingRequest(t *testing.T) {
	now := time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		req     models.BookingRequest
		wantErr string
	}{
		{
			name: "valid with time",
			req:  models.BookingRequest{ProviderID: "mentor-1", Date: "2026-03-12", Time: "14:30:00"},
		},
		{
			name: "valid without time",
			req:  models.BookingRequest{ProviderID: "mentor-1", Date: "2026-03-12"},
		},
		{
			name: "today is allowed",
			req:  models.BookingRequest{ProviderID: "mentor-1", Date: "2026-03-11"},
		},
		{
			name:    "missing provider",
			req:     models.BookingRequest{Date: "2026-03-12"},
			wantErr: "providerId is required",
		},
		{
			name:    "missing date",
			req:     models.BookingRequest{ProviderID: "mentor-1"},
			wantErr: "date is required",
		},
		{
			name:    "malformed date",
			req:     models.BookingRequest{ProviderID: "mentor-1", Date: "12/03/2026"},
			wantErr: "date must be in YYYY-MM-DD format",
		},
		{
			name:    "past date",
			req:     models.BookingRequest{ProviderID: "mentor-1", Date: "2026-03-10"},
			wantErr: "date must not be in the past",
		},
		{
			name:    "malformed time",
			req:     models.BookingRequest{ProviderID: "mentor-1", Date: "2026-03-12", Time: "2pm"},
			wantErr: "time must be in HH:MM:SS format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateBookingRequest(tt.req, now)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateBookingRequestTodayInLocalZone(t *testing.T) {
	// Early morning in a zone west of UTC: local midnight is later than the
	// same date's UTC midnight, which must not make today look past.
	west := time.FixedZone("UTC-5", -5*60*60)
	now := time.Date(2026, 3, 11, 1, 0, 0, 0, west)

	err := validateBookingRequest(models.BookingRequest{ProviderID: "mentor-1", Date: "2026-03-11"}, now)
	assert.NoError(t, err)

	err = validateBookingRequest(models.BookingRequest{ProviderID: "mentor-1", Date: "2026-03-10"}, now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date must not be in the past")

	// East of UTC, late evening: today still books, yesterday still rejects.
	east := time.FixedZone("UTC+9", 9*60*60)
	now = time.Date(2026, 3, 11, 23, 0, 0, 0, east)
	assert.NoError(t, validateBookingRequest(models.BookingRequest{ProviderID: "mentor-1", Date: "2026-03-11"}, now))
	assert.Error(t, validateBookingRequest(models.BookingRequest{ProviderID: "mentor-1", Date: "2026-03-10"}, now))
}

func TestCreateBooking(t *testing.T) {
	repo := newMemRepo()
	now := time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC)
	svc := &DefaultBookingService{Repo: repo, Now: func() time.Time { return now }}

	created, err := svc.CreateBooking(context.Background(), requester, models.BookingRequest{
		ProviderID: provider.ID,
		Date:       "2026-03-12",
		Time:       "14:30:00",
		Title:      "Career chat",
		Note:       "Resume review",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.StatusPending, created.Status)
	assert.Equal(t, provider.ID, created.ProviderID)
	assert.Equal(t, requester.ID, created.RequesterID)
	assert.Equal(t, now, created.CreatedAt)
	assert.Equal(t, now, created.UpdatedAt)

	stored := repo.get(created.ID)
	require.NotNil(t, stored)
	assert.Equal(t, models.StatusPending, stored.Status)
}

func TestCreateBookingRejectsInvalidInput(t *testing.T) {
	repo := newMemRepo()
	svc := &DefaultBookingService{Repo: repo}

	created, err := svc.CreateBooking(context.Background(), requester, models.BookingRequest{Date: "2099-01-01"})
	require.Error(t, err)
	assert.Nil(t, created)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
