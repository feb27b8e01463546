package service

import (
	"fmt"

	reserrors "innkeep/internal/reservations/errors"
	apperrors "innkeep/pkg/errors"
)

// The helpers below attach the domain sentinel as the wrapped cause, so
// callers can branch with errors.Is while handlers get an AppError with the
// right code and status.

func errRoomNotFound(id string) *apperrors.AppError {
	err := apperrors.NotFoundWithID("Room", id)
	err.Err = reserrors.ErrRoomNotFound
	return err
}

func errBookingNotFound(id string) *apperrors.AppError {
	err := apperrors.NotFoundWithID("Booking", id)
	err.Err = reserrors.ErrBookingNotFound
	return err
}

func errInvalidDateRange() *apperrors.AppError {
	err := apperrors.InvalidInput(reserrors.ErrInvalidDateRange.Error())
	err.Err = reserrors.ErrInvalidDateRange
	return err
}

func errCapacityExceeded(guests, capacity int) *apperrors.AppError {
	err := apperrors.Validation(
		fmt.Sprintf("guest count must be between 1 and %d, got %d", capacity, guests),
		map[string]any{"guests": guests, "capacity": capacity},
	)
	err.Err = reserrors.ErrCapacityExceeded
	return err
}

func errAvailabilityConflict() *apperrors.AppError {
	err := apperrors.Conflict(reserrors.ErrAvailabilityConflict.Error())
	err.Err = reserrors.ErrAvailabilityConflict
	return err
}

func errBusy(roomID string) *apperrors.AppError {
	err := apperrors.Busy(fmt.Sprintf("room %s is being booked by another request, retry later", roomID))
	err.Err = reserrors.ErrBusy
	return err
}
