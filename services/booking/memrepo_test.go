package booking

import (
	"context"
	"sync"

	bookingRepo "mentorloop/database/repository/booking"
	"mentorloop/models"
)

// memRepo is an in-memory BookingRepository for tests.
type memRepo struct {
	mu       sync.Mutex
	bookings map[string]models.Booking
	fetchErr error
}

func newMemRepo(seed ...models.Booking) *memRepo {
	m := &memRepo{bookings: make(map[string]models.Booking)}
	for _, b := range seed {
		m.bookings[b.ID] = b
	}
	return m
}

func (m *memRepo) FetchForActor(ctx context.Context, actorID string) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	var out []models.Booking
	for _, b := range m.bookings {
		if b.ProviderID == actorID || b.RequesterID == actorID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	return &b, nil
}

func (m *memRepo) Create(ctx context.Context, b *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings[b.ID] = *b
	return nil
}

func (m *memRepo) Update(ctx context.Context, b *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.bookings[b.ID]; !ok {
		return bookingRepo.ErrNotFound
	}
	m.bookings[b.ID] = *b
	return nil
}

func (m *memRepo) get(id string) models.Booking {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bookings[id]
}
