package notification

import (
	"context"
	"sync"
	"time"

	"mentorloop/models"

	"go.uber.org/zap"
)

const (
	defaultInterval = 60 * time.Second
	defaultLookback = time.Hour
	// maxBackoffShift caps the poll interval at interval << maxBackoffShift
	// after consecutive fetch failures.
	maxBackoffShift = 3
)

// Config wires a Reconciler instance. Everything with a timer or a side
// effect is injected so the diff algorithm stays testable.
type Config struct {
	Actor    models.Actor
	Fetch    Fetcher
	Alerts   AlertDispatcher
	Interval time.Duration
	Lookback time.Duration
	Now      func() time.Time
}

// Reconciler turns raw booking snapshots into a deduplicated notification
// feed for one actor. It is idle until the first subscriber arrives, polls on
// a timer while at least one subscriber remains, and stops synchronously when
// the last one leaves. The snapshot (lastChecked plus the event list) lives
// exactly as long as the polling run.
type Reconciler struct {
	actor    models.Actor
	fetch    Fetcher
	alerts   AlertDispatcher
	interval time.Duration
	lookback time.Duration
	now      func() time.Time

	mu          sync.Mutex
	subscribers map[int]Subscriber
	nextSubID   int
	stop        chan struct{}
	running     bool
	inFlight    bool
	lastChecked time.Time
	events      []models.NotificationEvent // most-recent-first
	failures    int
}

// NewReconciler builds a reconciler in the idle state.
func NewReconciler(cfg Config) *Reconciler {
	r := &Reconciler{
		actor:       cfg.Actor,
		fetch:       cfg.Fetch,
		alerts:      cfg.Alerts,
		interval:    cfg.Interval,
		lookback:    cfg.Lookback,
		now:         cfg.Now,
		subscribers: make(map[int]Subscriber),
	}
	if r.alerts == nil {
		r.alerts = NopDispatcher{}
	}
	if r.interval <= 0 {
		r.interval = defaultInterval
	}
	if r.lookback <= 0 {
		r.lookback = defaultLookback
	}
	if r.now == nil {
		r.now = time.Now
	}
	return r
}

// Subscribe registers a consumer and returns its unsubscribe handle. The
// first subscriber moves the reconciler from idle to polling with an
// immediate poll; later subscribers share the running timer.
func (r *Reconciler) Subscribe(sub Subscriber) (unsubscribe func()) {
	r.mu.Lock()
	id := r.nextSubID
	r.nextSubID++
	r.subscribers[id] = sub

	if !r.running {
		r.running = true
		r.stop = make(chan struct{})
		r.lastChecked = time.Time{}
		r.events = nil
		r.failures = 0
		go r.loop(r.stop)
	}
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { r.removeSubscriber(id) })
	}
}

// SubscriberCount reports how many consumers are currently attached.
func (r *Reconciler) SubscriberCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subscribers)
}

// removeSubscriber drops one consumer; the last removal cancels the timer
// synchronously, so no tick or publication fires afterwards. A later
// Subscribe starts a fresh polling run with a fresh snapshot.
func (r *Reconciler) removeSubscriber(id int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.subscribers, id)
	if len(r.subscribers) == 0 && r.running {
		r.running = false
		close(r.stop)
		r.lastChecked = time.Time{}
		r.events = nil
		zap.L().Debug("reconciler stopped", zap.String("actorId", r.actor.ID))
	}
}

// loop runs one immediate poll and then polls on a timer until stopped.
// Consecutive fetch failures stretch the interval with capped exponential
// backoff; any success snaps it back.
func (r *Reconciler) loop(stop chan struct{}) {
	r.pollOnce(context.Background())

	timer := time.NewTimer(r.nextInterval())
	defer timer.Stop()
	for {
		select {
		case <-stop:
			return
		case <-timer.C:
			r.pollOnce(context.Background())
			timer.Reset(r.nextInterval())
		}
	}
}

func (r *Reconciler) nextInterval() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	shift := r.failures
	if shift > maxBackoffShift {
		shift = maxBackoffShift
	}
	return r.interval << shift
}

// pollOnce performs a single tick. If a previous fetch is still outstanding
// the tick is skipped outright, which bounds the reconciler to one in-flight
// call. Fetch errors leave lastChecked and the event list untouched; the
// next tick retries.
func (r *Reconciler) pollOnce(ctx context.Context) {
	r.mu.Lock()
	if r.inFlight || !r.running {
		r.mu.Unlock()
		return
	}
	r.inFlight = true
	fetch := r.fetch
	r.mu.Unlock()

	bookings, err := fetch(ctx)

	r.mu.Lock()
	r.inFlight = false
	if !r.running {
		r.mu.Unlock()
		return
	}
	if err != nil {
		r.failures++
		r.mu.Unlock()
		zap.L().Warn("reconciler fetch failed",
			zap.String("actorId", r.actor.ID),
			zap.Error(err),
		)
		return
	}
	r.failures = 0

	now := r.now()
	fresh := selectNew(deriveCandidates(bookings, now, r.lookback), r.lastChecked)
	if len(fresh) > 0 {
		merged := make([]models.NotificationEvent, 0, len(fresh)+len(r.events))
		for i := len(fresh) - 1; i >= 0; i-- {
			merged = append(merged, fresh[i])
		}
		r.events = append(merged, r.events...)
	}
	r.lastChecked = now

	feed := r.feedLocked()
	subs := r.subscriberListLocked()
	r.mu.Unlock()

	// Events are dispatched oldest-first, exactly once each: later polls can
	// only surface candidates newer than the lastChecked we just advanced.
	for _, ev := range fresh {
		r.alerts.Dispatch(ctx, r.actor, ev)
	}
	for _, sub := range subs {
		sub(feed)
	}
}

// MarkAsRead flips the read flag on one local event and republishes. No
// server round trip is involved.
func (r *Reconciler) MarkAsRead(id string) {
	r.publishAfter(func() {
		for i := range r.events {
			if r.events[i].ID == id {
				r.events[i].Read = true
				return
			}
		}
	})
}

// MarkAllAsRead flips every local event to read and republishes.
func (r *Reconciler) MarkAllAsRead() {
	r.publishAfter(func() {
		for i := range r.events {
			r.events[i].Read = true
		}
	})
}

func (r *Reconciler) publishAfter(mutate func()) {
	r.mu.Lock()
	mutate()
	feed := r.feedLocked()
	subs := r.subscriberListLocked()
	r.mu.Unlock()

	for _, sub := range subs {
		sub(feed)
	}
}

// feedLocked builds an immutable copy of the published state. Callers hold mu.
func (r *Reconciler) feedLocked() models.NotificationFeed {
	notifications := make([]models.NotificationEvent, len(r.events))
	copy(notifications, r.events)

	unread := 0
	for _, ev := range notifications {
		if !ev.Read {
			unread++
		}
	}
	return models.NotificationFeed{Notifications: notifications, UnreadCount: unread}
}

func (r *Reconciler) subscriberListLocked() []Subscriber {
	subs := make([]Subscriber, 0, len(r.subscribers))
	for _, sub := range r.subscribers {
		subs = append(subs, sub)
	}
	return subs
}
