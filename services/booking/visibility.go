package booking

import "mentorloop/models"

// VisibleBookings narrows a booking collection to what one actor may see.
// Providers see bookings addressed to them, requesters see their own, and any
// other role gets the full collection (administrative view). The result is a
// subset of the input with ordering preserved; it is recomputed on every call
// and never cached.
func VisibleBookings(actor models.Actor, all []models.Booking) []models.Booking {
	switch actor.Role {
	case models.RoleProvider:
		visible := make([]models.Booking, 0, len(all))
		for _, b := range all {
			if b.ProviderID == actor.ID {
				visible = append(visible, b)
			}
		}
		return visible
	case models.RoleRequester:
		visible := make([]models.Booking, 0, len(all))
		for _, b := range all {
			if b.RequesterID == actor.ID {
				visible = append(visible, b)
			}
		}
		return visible
	default:
		return all
	}
}
