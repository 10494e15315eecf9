package notification

import (
	"context"

	"mentorloop/models"
)

// Fetcher loads the role-scoped booking view for the subscribing actor. The
// reconciler treats any error as transient: it is swallowed and the fetch is
// retried on a later tick.
type Fetcher func(ctx context.Context) ([]models.Booking, error)

// Subscriber receives the published feed after every tick that changes state
// and after mark-read mutations. The feed is a copy; subscribers must not
// assume it aliases reconciler state.
type Subscriber func(feed models.NotificationFeed)

// AlertDispatcher receives exactly one call per newly observed event. Keeping
// dispatch behind an interface keeps side effects out of the diff loop and
// lets tests record alerts without triggering anything external.
type AlertDispatcher interface {
	Dispatch(ctx context.Context, actor models.Actor, event models.NotificationEvent)
}

// NopDispatcher discards alerts.
type NopDispatcher struct{}

func (NopDispatcher) Dispatch(context.Context, models.Actor, models.NotificationEvent) {}
