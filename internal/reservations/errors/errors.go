package errors

import "errors"

var (
	ErrRoomNotFound = errors.New("room not found")

	ErrBookingNotFound = errors.New("booking not found")

	ErrInvalidDateRange = errors.New("check-out must be after check-in")

	ErrCapacityExceeded = errors.New("guest count exceeds room capacity")

	ErrAvailabilityConflict = errors.New("room is not available for the selected dates")

	// ErrBusy signals a lock-acquisition timeout on the room being mutated.
	// The only retryable error in the taxonomy.
	ErrBusy = errors.New("room is busy, retry later")

	ErrDuplicateBookingID = errors.New("booking id already exists")
)
