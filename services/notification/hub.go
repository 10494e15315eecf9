package notification

import (
	"sync"

	"mentorloop/models"
)

// Hub hands out one reconciler per actor so that multiple logical consumers
// (several open connections for the same actor) share a single timer instead
// of each running their own poll loop. Reconcilers are created lazily and
// dropped once their last subscriber leaves.
type Hub struct {
	factory func(actor models.Actor) *Reconciler

	mu          sync.Mutex
	reconcilers map[string]*Reconciler
}

// NewHub creates a hub using factory to build per-actor reconcilers.
func NewHub(factory func(actor models.Actor) *Reconciler) *Hub {
	return &Hub{
		factory:     factory,
		reconcilers: make(map[string]*Reconciler),
	}
}

// Subscribe attaches a consumer to the actor's reconciler, creating it on
// first use. The returned handle unsubscribes and tears the reconciler down
// when it was the last consumer.
//
// Attach and detach both run under the hub lock. A reconciler taken from the
// map therefore cannot lose its last subscriber and leave the map before the
// new consumer lands on it, so one actor never ends up with two live poll
// loops.
func (h *Hub) Subscribe(actor models.Actor, sub Subscriber) (unsubscribe func()) {
	h.mu.Lock()
	rec, ok := h.reconcilers[actor.ID]
	if !ok {
		rec = h.factory(actor)
		h.reconcilers[actor.ID] = rec
	}
	unsub := rec.Subscribe(sub)
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		unsub()
		if rec.SubscriberCount() == 0 && h.reconcilers[actor.ID] == rec {
			delete(h.reconcilers, actor.ID)
		}
	}
}

// MarkAsRead forwards to the actor's reconciler, if one is live.
func (h *Hub) MarkAsRead(actor models.Actor, id string) {
	if rec := h.get(actor); rec != nil {
		rec.MarkAsRead(id)
	}
}

// MarkAllAsRead forwards to the actor's reconciler, if one is live.
func (h *Hub) MarkAllAsRead(actor models.Actor) {
	if rec := h.get(actor); rec != nil {
		rec.MarkAllAsRead()
	}
}

func (h *Hub) get(actor models.Actor) *Reconciler {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.reconcilers[actor.ID]
}
