package notification

import (
	"testing"
	"time"

	"mentorloop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var diffNow = time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC)

func snapshotBooking(id, status string, created, updated time.Time) models.Booking {
	return models.Booking{
		ID:          id,
		ProviderID:  "mentor-1",
		RequesterID: "mentee-1",
		Date:        "2026-03-20",
		Status:      status,
		CreatedAt:   created,
		UpdatedAt:   updated,
	}
}

func TestEventIDIsDeterministic(t *testing.T) {
	a := EventID("bk-1", models.EventApproved)
	b := EventID("bk-1", models.EventApproved)
	assert.Equal(t, a, b)

	assert.NotEqual(t, a, EventID("bk-1", models.EventDenied))
	assert.NotEqual(t, a, EventID("bk-2", models.EventApproved))
}

func TestDeriveCandidates(t *testing.T) {
	recent := diffNow.Add(-10 * time.Minute)
	stale := diffNow.Add(-2 * time.Hour)

	tests := []struct {
		name      string
		booking   models.Booking
		wantKinds []string
	}{
		{
			name:      "pending created inside window",
			booking:   snapshotBooking("bk-1", models.StatusPending, recent, recent),
			wantKinds: []string{models.EventNewRequest},
		},
		{
			name:      "pending created before window",
			booking:   snapshotBooking("bk-2", models.StatusPending, stale, stale),
			wantKinds: nil,
		},
		{
			name:      "approved inside window",
			booking:   snapshotBooking("bk-3", models.StatusApproved, stale, recent),
			wantKinds: []string{models.EventApproved},
		},
		{
			name:      "denied inside window",
			booking:   snapshotBooking("bk-4", models.StatusDenied, stale, recent),
			wantKinds: []string{models.EventDenied},
		},
		{
			name:      "approved before window",
			booking:   snapshotBooking("bk-5", models.StatusApproved, stale, stale),
			wantKinds: nil,
		},
		{
			name:      "cancelled never yields an event",
			booking:   snapshotBooking("bk-6", models.StatusCancelled, stale, recent),
			wantKinds: nil,
		},
		{
			name: "approved with untouched update stamp",
			// UpdatedAt equal to CreatedAt means nothing was responded to.
			booking:   snapshotBooking("bk-7", models.StatusApproved, recent, recent),
			wantKinds: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := deriveCandidates([]models.Booking{tt.booking}, diffNow, time.Hour)
			var kinds []string
			for _, ev := range got {
				kinds = append(kinds, ev.Kind)
				assert.Equal(t, tt.booking.ID, ev.BookingID)
				assert.Equal(t, EventID(tt.booking.ID, ev.Kind), ev.ID)
			}
			assert.Equal(t, tt.wantKinds, kinds)
		})
	}
}

func TestDeriveCandidatesTimestamps(t *testing.T) {
	created := diffNow.Add(-30 * time.Minute)
	updated := diffNow.Add(-5 * time.Minute)

	pending := snapshotBooking("bk-1", models.StatusPending, created, created)
	approved := snapshotBooking("bk-2", models.StatusApproved, created, updated)

	got := deriveCandidates([]models.Booking{pending, approved}, diffNow, time.Hour)
	require.Len(t, got, 2)
	assert.Equal(t, created, got[0].Timestamp, "new_request carries the creation time")
	assert.Equal(t, updated, got[1].Timestamp, "a response carries the update time")
}

func TestSelectNewCutsAtLastChecked(t *testing.T) {
	lastChecked := diffNow.Add(-15 * time.Minute)

	older := models.NotificationEvent{ID: "e1", Timestamp: diffNow.Add(-20 * time.Minute)}
	exact := models.NotificationEvent{ID: "e2", Timestamp: lastChecked}
	newer := models.NotificationEvent{ID: "e3", Timestamp: diffNow.Add(-10 * time.Minute)}

	fresh := selectNew([]models.NotificationEvent{newer, older, exact}, lastChecked)
	require.Len(t, fresh, 1)
	assert.Equal(t, "e3", fresh[0].ID, "only strictly newer events survive the cut")
}

func TestSelectNewSortsAscending(t *testing.T) {
	events := []models.NotificationEvent{
		{ID: "e3", Timestamp: diffNow.Add(-5 * time.Minute)},
		{ID: "e1", Timestamp: diffNow.Add(-30 * time.Minute)},
		{ID: "e2", Timestamp: diffNow.Add(-10 * time.Minute)},
	}

	fresh := selectNew(events, time.Time{})
	require.Len(t, fresh, 3)
	assert.Equal(t, "e1", fresh[0].ID)
	assert.Equal(t, "e2", fresh[1].ID)
	assert.Equal(t, "e3", fresh[2].ID)
}
