package notification

import (
	"sort"
	"time"

	"mentorloop/models"

	"github.com/google/uuid"
)

// eventNamespace seeds deterministic event ids. Recomputing an event for the
// same booking and kind always yields the same id, which is what makes the
// diff idempotent across polls.
var eventNamespace = uuid.MustParse("9f2c1a47-3b0e-4d5a-8c21-7e94d6b0f3aa")

// EventID derives the deterministic id for a (booking, kind) pair.
func EventID(bookingID, kind string) string {
	return uuid.NewSHA1(eventNamespace, []byte(bookingID+":"+kind)).String()
}

// deriveCandidates turns a booking snapshot into candidate events using a
// fixed lookback window. A pending booking created inside the window yields a
// new_request event at its creation time; a booking responded to inside the
// window yields an approved or denied event at its update time. Cancelled
// bookings produce no event: the event kinds are a closed set.
func deriveCandidates(bookings []models.Booking, now time.Time, lookback time.Duration) []models.NotificationEvent {
	cutoff := now.Add(-lookback)

	var candidates []models.NotificationEvent
	for _, b := range bookings {
		if b.Status == models.StatusPending && b.CreatedAt.After(cutoff) {
			candidates = append(candidates, models.NotificationEvent{
				ID:        EventID(b.ID, models.EventNewRequest),
				Kind:      models.EventNewRequest,
				BookingID: b.ID,
				Timestamp: b.CreatedAt,
			})
			continue
		}
		if b.UpdatedAt.After(cutoff) && b.UpdatedAt.After(b.CreatedAt) {
			var kind string
			switch b.Status {
			case models.StatusApproved:
				kind = models.EventApproved
			case models.StatusDenied:
				kind = models.EventDenied
			default:
				continue
			}
			candidates = append(candidates, models.NotificationEvent{
				ID:        EventID(b.ID, kind),
				Kind:      kind,
				BookingID: b.ID,
				Timestamp: b.UpdatedAt,
			})
		}
	}
	return candidates
}

// selectNew keeps only candidates strictly newer than lastChecked and returns
// them sorted by timestamp ascending. The timestamp cut is the sole
// deduplication mechanism: lastChecked only moves forward, so a (booking,
// kind) pair can never survive this cut twice.
func selectNew(candidates []models.NotificationEvent, lastChecked time.Time) []models.NotificationEvent {
	fresh := candidates[:0:0]
	for _, c := range candidates {
		if c.Timestamp.After(lastChecked) {
			fresh = append(fresh, c)
		}
	}
	sort.SliceStable(fresh, func(i, j int) bool {
		return fresh[i].Timestamp.Before(fresh[j].Timestamp)
	})
	return fresh
}
