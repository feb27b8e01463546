package service

import (
	"context"
	"time"

	apperrors "innkeep/pkg/errors"
)

// CheckAvailability reports whether the room is free over the half-open
// interval [checkIn, checkOut). A candidate starting exactly when an
// existing stay ends (or vice versa) does not conflict: same-day turnover
// is permitted.
func (s *reservationService) CheckAvailability(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error) {
	if _, err := s.catalog.FindByID(roomID); err != nil {
		return false, errRoomNotFound(roomID)
	}
	if !checkOut.After(checkIn) {
		return false, errInvalidDateRange()
	}
	return s.isAvailable(ctx, roomID, checkIn, checkOut)
}

// isAvailable scans the room's non-cancelled bookings for an overlap. Pure
// query: it takes no locks, so callers that go on to mutate must hold the
// room's lock across both the check and the insert.
func (s *reservationService) isAvailable(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error) {
	bookings, err := s.ledger.FindByRoom(ctx, roomID)
	if err != nil {
		return false, apperrors.Internal("Failed to check existing bookings", err)
	}

	for _, b := range bookings {
		if b.Cancelled() {
			continue
		}
		if b.Overlaps(checkIn, checkOut) {
			return false, nil
		}
	}
	return true, nil
}
