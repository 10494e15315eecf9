package booking

import (
	"testing"

	"mentorloop/models"

	"github.com/stretchr/testify/assert"
)

func visibilityFixture() []models.Booking {
	return []models.Booking{
		{ID: "b1", ProviderID: "mentor-1", RequesterID: "mentee-1"},
		{ID: "b2", ProviderID: "mentor-2", RequesterID: "mentee-1"},
		{ID: "b3", ProviderID: "mentor-1", RequesterID: "mentee-2"},
		{ID: "b4", ProviderID: "mentor-2", RequesterID: "mentee-2"},
	}
}

func TestVisibleBookings(t *testing.T) {
	all := visibilityFixture()

	tests := []struct {
		name    string
		actor   models.Actor
		wantIDs []string
	}{
		{
			name:    "provider sees bookings addressed to them",
			actor:   models.Actor{ID: "mentor-1", Role: models.RoleProvider},
			wantIDs: []string{"b1", "b3"},
		},
		{
			name:    "requester sees their own bookings",
			actor:   models.Actor{ID: "mentee-1", Role: models.RoleRequester},
			wantIDs: []string{"b1", "b2"},
		},
		{
			name:    "requester with no bookings sees nothing",
			actor:   models.Actor{ID: "mentee-9", Role: models.RoleRequester},
			wantIDs: []string{},
		},
		{
			name:    "administrative role sees everything",
			actor:   models.Actor{ID: "ops-1", Role: "admin"},
			wantIDs: []string{"b1", "b2", "b3", "b4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visible := VisibleBookings(tt.actor, all)

			gotIDs := make([]string, 0, len(visible))
			for _, b := range visible {
				gotIDs = append(gotIDs, b.ID)
			}
			// Order must be preserved from the input collection.
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestVisibleBookingsIsSubsetForRequester(t *testing.T) {
	all := visibilityFixture()
	actor := models.Actor{ID: "mentee-2", Role: models.RoleRequester}

	visible := VisibleBookings(actor, all)
	assert.LessOrEqual(t, len(visible), len(all))
	for _, b := range visible {
		assert.Equal(t, actor.ID, b.RequesterID)
	}
}
