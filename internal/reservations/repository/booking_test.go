package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	reserrors "innkeep/internal/reservations/errors"
	"innkeep/pkg/model"
)

func newBooking(id, roomID, email string, checkIn, checkOut time.Time) *model.Booking {
	return &model.Booking{
		ID:         id,
		RoomID:     roomID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     2,
		TotalPrice: 600,
		Status:     model.StatusConfirmed,
		GuestName:  "John Doe",
		GuestEmail: email,
		CreatedAt:  time.Now().UTC(),
	}
}

func day(d int) time.Time {
	return time.Date(2026, 11, d, 0, 0, 0, 0, time.UTC)
}

func TestMemoryInsertAndFindByID(t *testing.T) {
	repo := NewMemoryBookingRepository()
	ctx := context.Background()

	b := newBooking("b1", "1", "john@example.com", day(10), day(12))
	if err := repo.Insert(ctx, b); err != nil {
		t.Fatalf("unexpected insert error: %v", err)
	}

	found, err := repo.FindByID(ctx, "b1")
	if err != nil {
		t.Fatalf("unexpected find error: %v", err)
	}
	if found.RoomID != "1" || found.GuestEmail != "john@example.com" {
		t.Errorf("unexpected booking returned: %+v", found)
	}

	if _, err := repo.FindByID(ctx, "missing"); !errors.Is(err, reserrors.ErrBookingNotFound) {
		t.Errorf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestMemoryInsertRejectsDuplicateID(t *testing.T) {
	repo := NewMemoryBookingRepository()
	ctx := context.Background()

	if err := repo.Insert(ctx, newBooking("b1", "1", "a@example.com", day(10), day(12))); err != nil {
		t.Fatalf("unexpected insert error: %v", err)
	}
	err := repo.Insert(ctx, newBooking("b1", "2", "b@example.com", day(14), day(16)))
	if !errors.Is(err, reserrors.ErrDuplicateBookingID) {
		t.Errorf("expected ErrDuplicateBookingID, got %v", err)
	}
}

func TestMemoryFindByRoomPreservesInsertionOrder(t *testing.T) {
	repo := NewMemoryBookingRepository()
	ctx := context.Background()

	for i, id := range []string{"b1", "b2", "b3"} {
		b := newBooking(id, "1", "a@example.com", day(10+2*i), day(12+2*i))
		if err := repo.Insert(ctx, b); err != nil {
			t.Fatalf("unexpected insert error: %v", err)
		}
	}
	if err := repo.Insert(ctx, newBooking("other", "2", "a@example.com", day(10), day(12))); err != nil {
		t.Fatalf("unexpected insert error: %v", err)
	}

	bookings, err := repo.FindByRoom(ctx, "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bookings) != 3 {
		t.Fatalf("expected 3 bookings for room 1, got %d", len(bookings))
	}
	for i, id := range []string{"b1", "b2", "b3"} {
		if bookings[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, bookings[i].ID)
		}
	}
}

func TestMemoryFindByGuestEmailIsCaseInsensitive(t *testing.T) {
	repo := NewMemoryBookingRepository()
	ctx := context.Background()

	if err := repo.Insert(ctx, newBooking("b1", "1", "John@Example.com", day(10), day(12))); err != nil {
		t.Fatalf("unexpected insert error: %v", err)
	}
	if err := repo.Insert(ctx, newBooking("b2", "1", "jane@example.com", day(14), day(16))); err != nil {
		t.Fatalf("unexpected insert error: %v", err)
	}

	bookings, err := repo.FindByGuestEmail(ctx, "john@example.COM")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bookings) != 1 || bookings[0].ID != "b1" {
		t.Errorf("expected only b1, got %v", bookings)
	}
}

func TestMemoryUpdateStatus(t *testing.T) {
	repo := NewMemoryBookingRepository()
	ctx := context.Background()

	if err := repo.Insert(ctx, newBooking("b1", "1", "a@example.com", day(10), day(12))); err != nil {
		t.Fatalf("unexpected insert error: %v", err)
	}

	updated, err := repo.UpdateStatus(ctx, "b1", model.StatusCancelled)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != model.StatusCancelled {
		t.Errorf("expected cancelled status, got %s", updated.Status)
	}

	// The cancelled booking stays in the ledger.
	found, err := repo.FindByID(ctx, "b1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Status != model.StatusCancelled {
		t.Errorf("expected persisted cancelled status, got %s", found.Status)
	}

	if _, err := repo.UpdateStatus(ctx, "missing", model.StatusCancelled); !errors.Is(err, reserrors.ErrBookingNotFound) {
		t.Errorf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestMemoryReturnsCopies(t *testing.T) {
	repo := NewMemoryBookingRepository()
	ctx := context.Background()

	if err := repo.Insert(ctx, newBooking("b1", "1", "a@example.com", day(10), day(12))); err != nil {
		t.Fatalf("unexpected insert error: %v", err)
	}

	found, _ := repo.FindByID(ctx, "b1")
	found.Status = model.StatusPending

	again, _ := repo.FindByID(ctx, "b1")
	if again.Status != model.StatusConfirmed {
		t.Errorf("mutating a returned booking must not touch the ledger, got status %s", again.Status)
	}
}
