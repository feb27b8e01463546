package service

import (
	"context"
	"errors"
	"testing"
	"time"

	reserrors "innkeep/internal/reservations/errors"
)

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		expected int
	}{
		{"single night", day(10), day(11), 1},
		{"five nights", day(10), day(15), 5},
		{"one hour past a day boundary charges the extra night", day(10), day(11).Add(time.Hour), 2},
		{"partial day rounds up to one night", day(10), day(10).Add(6 * time.Hour), 1},
		{"month boundary", time.Date(2026, 11, 30, 0, 0, 0, 0, time.UTC), time.Date(2026, 12, 2, 0, 0, 0, 0, time.UTC), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Nights(tt.checkIn, tt.checkOut); got != tt.expected {
				t.Errorf("expected %d nights, got %d", tt.expected, got)
			}
		})
	}
}

func TestNightsExactSpansNeverDrift(t *testing.T) {
	// Whole-day spans must map to exactly their night count for any length.
	for n := 1; n <= 365; n++ {
		checkIn := day(1)
		checkOut := checkIn.AddDate(0, 0, n)
		if got := Nights(checkIn, checkOut); got != n {
			t.Fatalf("%d-day span: expected %d nights, got %d", n, n, got)
		}
	}
}

func TestQuotePrice(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	// Room 1 is 300/night: five nights cost 1500.
	total, err := s.QuotePrice(ctx, "1", day(10), day(15))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1500 {
		t.Errorf("expected 1500, got %v", total)
	}

	// Deterministic.
	again, err := s.QuotePrice(ctx, "1", day(10), day(15))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again != total {
		t.Errorf("expected repeated quotes to match: %v vs %v", total, again)
	}
}

func TestQuotePriceErrors(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	if _, err := s.QuotePrice(ctx, "99", day(10), day(15)); !errors.Is(err, reserrors.ErrRoomNotFound) {
		t.Errorf("expected ErrRoomNotFound, got %v", err)
	}

	if _, err := s.QuotePrice(ctx, "1", day(15), day(10)); !errors.Is(err, reserrors.ErrInvalidDateRange) {
		t.Errorf("expected ErrInvalidDateRange for inverted range, got %v", err)
	}

	if _, err := s.QuotePrice(ctx, "1", day(10), day(10)); !errors.Is(err, reserrors.ErrInvalidDateRange) {
		t.Errorf("expected ErrInvalidDateRange for empty range, got %v", err)
	}
}
