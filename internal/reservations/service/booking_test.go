package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	reserrors "innkeep/internal/reservations/errors"
	"innkeep/internal/reservations/repository"
	"innkeep/internal/reservations/validator"
	"innkeep/pkg/kafka"
	"innkeep/pkg/model"
)

func TestCreateBooking(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	booking, err := s.CreateBooking(ctx, createRequest("1", day(10), day(15)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if booking.ID == "" {
		t.Error("expected booking to get an id at insertion")
	}
	if booking.CreatedAt.IsZero() {
		t.Error("expected booking to get a created-at timestamp")
	}
	if booking.Status != model.StatusConfirmed {
		t.Errorf("expected confirmed status, got %s", booking.Status)
	}
	if booking.TotalPrice != 1500 {
		t.Errorf("expected total 1500 for 5 nights at 300, got %v", booking.TotalPrice)
	}
}

func TestCreateBookingStepOrder(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		req      *model.CreateBookingRequest
		sentinel error
	}{
		{
			name:     "unknown room",
			req:      createRequest("99", day(10), day(15)),
			sentinel: reserrors.ErrRoomNotFound,
		},
		{
			name:     "inverted dates",
			req:      createRequest("1", day(15), day(10)),
			sentinel: reserrors.ErrInvalidDateRange,
		},
		{
			name:     "empty range",
			req:      createRequest("1", day(10), day(10)),
			sentinel: reserrors.ErrInvalidDateRange,
		},
		{
			name: "too many guests",
			req: func() *model.CreateBookingRequest {
				r := createRequest("1", day(10), day(15))
				r.Guests = 3 // room 1 sleeps 2
				return r
			}(),
			sentinel: reserrors.ErrCapacityExceeded,
		},
		{
			name: "zero guests",
			req: func() *model.CreateBookingRequest {
				r := createRequest("1", day(10), day(15))
				r.Guests = 0
				return r
			}(),
			sentinel: reserrors.ErrCapacityExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.CreateBooking(ctx, tt.req)
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("expected %v, got %v", tt.sentinel, err)
			}
		})
	}

	// None of the failures touched the ledger.
	bookings, err := s.ListBookingsByRoom(ctx, "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bookings) != 0 {
		t.Errorf("expected failed workflows to leave the ledger unchanged, found %d bookings", len(bookings))
	}
}

func TestCapacityExceededRegardlessOfDates(t *testing.T) {
	s := newTestService(t)

	req := createRequest("3", day(10), day(15)) // budget single sleeps 1
	req.Guests = 2

	_, err := s.CreateBooking(context.Background(), req)
	if !errors.Is(err, reserrors.ErrCapacityExceeded) {
		t.Errorf("expected ErrCapacityExceeded, got %v", err)
	}
}

func TestDisjointRangesBookInEitherOrder(t *testing.T) {
	ranges := [][2]time.Time{
		{day(10), day(13)},
		{day(15), day(18)},
	}

	for _, order := range [][2]int{{0, 1}, {1, 0}} {
		s := newTestService(t)
		for _, i := range order {
			mustBook(t, s, createRequest("1", ranges[i][0], ranges[i][1]))
		}
	}
}

func TestOverlappingBookingConflicts(t *testing.T) {
	s := newTestService(t)

	mustBook(t, s, createRequest("1", day(10), day(15)))

	_, err := s.CreateBooking(context.Background(), createRequest("1", day(12), day(18)))
	if !errors.Is(err, reserrors.ErrAvailabilityConflict) {
		t.Errorf("expected ErrAvailabilityConflict, got %v", err)
	}
}

func TestAdjacentRangesNeverConflict(t *testing.T) {
	s := newTestService(t)

	mustBook(t, s, createRequest("1", day(10), day(15)))
	mustBook(t, s, createRequest("1", day(15), day(20)))
}

func TestCancelReleasesDateRange(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	booking := mustBook(t, s, createRequest("1", day(10), day(15)))

	cancelled, err := s.CancelBooking(ctx, booking.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cancelled.Status != model.StatusCancelled {
		t.Errorf("expected cancelled status, got %s", cancelled.Status)
	}
	if !cancelled.CheckIn.Equal(booking.CheckIn) || cancelled.TotalPrice != booking.TotalPrice {
		t.Error("cancellation must not touch dates or price")
	}

	// The exact range books again.
	mustBook(t, s, createRequest("1", day(10), day(15)))
}

func TestCancelUnknownBooking(t *testing.T) {
	s := newTestService(t)

	_, err := s.CancelBooking(context.Background(), "no-such-booking")
	if !errors.Is(err, reserrors.ErrBookingNotFound) {
		t.Errorf("expected ErrBookingNotFound, got %v", err)
	}
}

// End-to-end walk: book, reject overlap, allow adjacency, cancel, rebook
// the freed range.
func TestBookingScenario(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	first := mustBook(t, s, createRequest("1", day(10), day(15)))
	if first.TotalPrice != 1500 {
		t.Errorf("expected first stay to cost 1500, got %v", first.TotalPrice)
	}

	if _, err := s.CreateBooking(ctx, createRequest("1", day(12), day(18))); !errors.Is(err, reserrors.ErrAvailabilityConflict) {
		t.Fatalf("expected overlapping stay to be rejected, got %v", err)
	}

	adjacent := mustBook(t, s, createRequest("1", day(15), day(20)))
	if adjacent.TotalPrice != 1500 {
		t.Errorf("expected adjacent stay to cost 1500, got %v", adjacent.TotalPrice)
	}

	if _, err := s.CancelBooking(ctx, first.ID); err != nil {
		t.Fatalf("unexpected cancel error: %v", err)
	}

	mustBook(t, s, createRequest("1", day(10), day(12)))
}

func TestListBookingsByEmail(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	req := createRequest("1", day(10), day(12))
	req.GuestEmail = "John@Example.com"
	first := mustBook(t, s, req)

	req = createRequest("2", day(10), day(12))
	req.GuestEmail = "john@example.com"
	second := mustBook(t, s, req)

	req = createRequest("2", day(14), day(16))
	req.GuestEmail = "jane@example.com"
	mustBook(t, s, req)

	bookings, err := s.ListBookingsByEmail(ctx, "JOHN@EXAMPLE.COM")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bookings) != 2 {
		t.Fatalf("expected 2 bookings for john, got %d", len(bookings))
	}
	if bookings[0].ID != first.ID || bookings[1].ID != second.ID {
		t.Error("expected insertion order to be preserved")
	}

	if _, err := s.ListBookingsByEmail(ctx, ""); err == nil {
		t.Error("expected empty email to be rejected")
	}
}

func TestCreateBookingRejectsInvalidRequests(t *testing.T) {
	s := newTestService(t)

	req := createRequest("1", day(10), day(12))
	req.GuestEmail = "not-an-email"

	if _, err := s.CreateBooking(context.Background(), req); err == nil {
		t.Error("expected malformed email to fail validation")
	}
}

// Two racing requests for overlapping stays on one room: exactly one wins.
func TestConcurrentOverlappingCreates(t *testing.T) {
	s := newTestService(t)

	const attempts = 16
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.CreateBooking(context.Background(), createRequest("1", day(10), day(15)))
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, conflicted int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, reserrors.ErrAvailabilityConflict):
			conflicted++
		default:
			t.Errorf("unexpected error kind: %v", err)
		}
	}

	if succeeded != 1 {
		t.Errorf("expected exactly one booking to win, got %d", succeeded)
	}
	if conflicted != attempts-1 {
		t.Errorf("expected %d conflicts, got %d", attempts-1, conflicted)
	}
}

// slowLedger delays conflict scans so a second writer hits the lock timeout.
type slowLedger struct {
	repository.BookingRepository
	delay time.Duration
}

func (l *slowLedger) FindByRoom(ctx context.Context, roomID string) ([]*model.Booking, error) {
	time.Sleep(l.delay)
	return l.BookingRepository.FindByRoom(ctx, roomID)
}

func TestCreateBookingBusyOnLockTimeout(t *testing.T) {
	catalog, err := repository.NewRoomCatalog(testRooms())
	if err != nil {
		t.Fatalf("failed to build test catalog: %v", err)
	}

	cfg := testConfig()
	cfg.RoomLockTimeout = 50 * time.Millisecond

	ledger := &slowLedger{
		BookingRepository: repository.NewMemoryBookingRepository(),
		delay:             500 * time.Millisecond,
	}
	s := NewReservationService(catalog, ledger, validator.NewBookingValidator(cfg.Log), kafka.NopPublisher{}, cfg)

	started := make(chan struct{})
	go func() {
		close(started)
		// Holds the room lock for at least the scan delay.
		_, _ = s.CreateBooking(context.Background(), createRequest("1", day(10), day(12)))
	}()

	<-started
	time.Sleep(100 * time.Millisecond)

	_, err = s.CreateBooking(context.Background(), createRequest("1", day(20), day(22)))
	if !errors.Is(err, reserrors.ErrBusy) {
		t.Errorf("expected ErrBusy while the room lock is held, got %v", err)
	}
}

func TestCreateBookingBusyRespectsCallerContext(t *testing.T) {
	catalog, err := repository.NewRoomCatalog(testRooms())
	if err != nil {
		t.Fatalf("failed to build test catalog: %v", err)
	}

	cfg := testConfig()
	cfg.RoomLockTimeout = 5 * time.Second

	ledger := &slowLedger{
		BookingRepository: repository.NewMemoryBookingRepository(),
		delay:             500 * time.Millisecond,
	}
	s := NewReservationService(catalog, ledger, validator.NewBookingValidator(cfg.Log), kafka.NopPublisher{}, cfg)

	started := make(chan struct{})
	go func() {
		close(started)
		_, _ = s.CreateBooking(context.Background(), createRequest("1", day(10), day(12)))
	}()

	<-started
	time.Sleep(100 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err = s.CreateBooking(ctx, createRequest("1", day(20), day(22)))
	if !errors.Is(err, reserrors.ErrBusy) {
		t.Errorf("expected ErrBusy on cancelled context, got %v", err)
	}
	if time.Since(start) > 2*time.Second {
		t.Error("expected context cancellation to abort the lock wait early")
	}
}
