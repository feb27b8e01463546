package service

import (
	"context"
	"math"
	"time"
)

// Nights returns the number of chargeable nights for a stay: the ceiling of
// the day difference. A stay that runs one hour past a day boundary charges
// the extra night; exact whole-day spans charge exactly their night count.
// Always at least 1 for a valid range.
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

// QuotePrice computes nightly rate times nights for the given room and range.
func (s *reservationService) QuotePrice(ctx context.Context, roomID string, checkIn, checkOut time.Time) (float64, error) {
	room, err := s.catalog.FindByID(roomID)
	if err != nil {
		return 0, errRoomNotFound(roomID)
	}
	if !checkOut.After(checkIn) {
		return 0, errInvalidDateRange()
	}
	return room.NightlyRate * float64(Nights(checkIn, checkOut)), nil
}
