package repository

import (
	"context"
	"strings"
	"sync"

	reserrors "innkeep/internal/reservations/errors"
	"innkeep/pkg/model"
)

// BookingRepository is the booking ledger. Bookings are appended, never
// deleted; the only mutation is the status update used by cancellation.
type BookingRepository interface {
	Insert(ctx context.Context, booking *model.Booking) error
	FindByID(ctx context.Context, id string) (*model.Booking, error)
	FindByRoom(ctx context.Context, roomID string) ([]*model.Booking, error)
	FindByGuestEmail(ctx context.Context, email string) ([]*model.Booking, error)
	UpdateStatus(ctx context.Context, id string, status string) (*model.Booking, error)
}

// memoryBookingRepository keeps the ledger in process memory: an ordered
// slice for insertion order plus id and room indexes for lookups and
// conflict scans. The RWMutex guarantees readers never observe a
// half-completed insert.
type memoryBookingRepository struct {
	mu     sync.RWMutex
	all    []*model.Booking
	byID   map[string]*model.Booking
	byRoom map[string][]*model.Booking
}

func NewMemoryBookingRepository() BookingRepository {
	return &memoryBookingRepository{
		byID:   make(map[string]*model.Booking),
		byRoom: make(map[string][]*model.Booking),
	}
}

func (r *memoryBookingRepository) Insert(ctx context.Context, booking *model.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[booking.ID]; exists {
		return reserrors.ErrDuplicateBookingID
	}

	stored := *booking
	r.all = append(r.all, &stored)
	r.byID[stored.ID] = &stored
	r.byRoom[stored.RoomID] = append(r.byRoom[stored.RoomID], &stored)
	return nil
}

func (r *memoryBookingRepository) FindByID(ctx context.Context, id string) (*model.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.byID[id]
	if !ok {
		return nil, reserrors.ErrBookingNotFound
	}
	copied := *booking
	return &copied, nil
}

func (r *memoryBookingRepository) FindByRoom(ctx context.Context, roomID string) ([]*model.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bookings := r.byRoom[roomID]
	out := make([]*model.Booking, 0, len(bookings))
	for _, b := range bookings {
		copied := *b
		out = append(out, &copied)
	}
	return out, nil
}

func (r *memoryBookingRepository) FindByGuestEmail(ctx context.Context, email string) ([]*model.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*model.Booking
	for _, b := range r.all {
		if strings.EqualFold(b.GuestEmail, email) {
			copied := *b
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *memoryBookingRepository) UpdateStatus(ctx context.Context, id string, status string) (*model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.byID[id]
	if !ok {
		return nil, reserrors.ErrBookingNotFound
	}

	booking.Status = status
	copied := *booking
	return &copied, nil
}
