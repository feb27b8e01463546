package service

import (
	"context"
	"time"

	apperrors "innkeep/pkg/errors"
	"innkeep/pkg/kafka"
	"innkeep/pkg/model"
	"innkeep/pkg/sanitizer"

	"github.com/google/uuid"
)

// CreateBooking runs the booking workflow under the room's lock. The check
// and the insert form one critical section, so two concurrent requests for
// overlapping stays on the same room cannot both pass the availability
// check. On any failure the ledger is left untouched.
func (s *reservationService) CreateBooking(ctx context.Context, req *model.CreateBookingRequest) (*model.Booking, error) {
	req.GuestName = sanitizer.NormalizeName(req.GuestName)
	req.GuestEmail = sanitizer.NormalizeEmail(req.GuestEmail)

	if err := s.validator.ValidateCreate(req); err != nil {
		s.cfg.Log.Warn("Booking request validation failed", "error", err)
		return nil, apperrors.Validation("Invalid booking request", map[string]any{"error": err.Error()})
	}

	if !s.locks.Acquire(ctx, req.RoomID, s.cfg.RoomLockTimeout) {
		s.cfg.Log.Warn("Room lock acquisition timed out", "room_id", req.RoomID)
		return nil, errBusy(req.RoomID)
	}
	defer s.locks.Release(req.RoomID)

	room, err := s.catalog.FindByID(req.RoomID)
	if err != nil {
		return nil, errRoomNotFound(req.RoomID)
	}

	if !req.CheckOut.After(req.CheckIn) {
		return nil, errInvalidDateRange()
	}

	if req.Guests < 1 || req.Guests > room.Capacity {
		return nil, errCapacityExceeded(req.Guests, room.Capacity)
	}

	available, err := s.isAvailable(ctx, req.RoomID, req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, errAvailabilityConflict()
	}

	booking := &model.Booking{
		ID:         uuid.New().String(),
		RoomID:     room.ID,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Guests:     req.Guests,
		TotalPrice: room.NightlyRate * float64(Nights(req.CheckIn, req.CheckOut)),
		Status:     model.StatusConfirmed,
		GuestName:  req.GuestName,
		GuestEmail: req.GuestEmail,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.ledger.Insert(ctx, booking); err != nil {
		s.cfg.Log.Error("Failed to insert booking", "room_id", room.ID, "error", err)
		return nil, apperrors.Internal("Failed to create booking", err)
	}

	s.publishEvent(kafka.EventBookingCreated, booking)

	s.cfg.Log.Info("Booking created",
		"id", booking.ID,
		"room_id", booking.RoomID,
		"check_in", booking.CheckIn,
		"check_out", booking.CheckOut,
		"total_price", booking.TotalPrice,
	)
	return booking, nil
}

// CancelBooking transitions the booking to cancelled. Dates and price stay
// as they were; the booking remains in the ledger for audit, and its range
// becomes immediately bookable again.
func (s *reservationService) CancelBooking(ctx context.Context, id string) (*model.Booking, error) {
	existing, err := s.ledger.FindByID(ctx, id)
	if err != nil {
		return nil, errBookingNotFound(id)
	}

	if !s.locks.Acquire(ctx, existing.RoomID, s.cfg.RoomLockTimeout) {
		s.cfg.Log.Warn("Room lock acquisition timed out", "room_id", existing.RoomID)
		return nil, errBusy(existing.RoomID)
	}
	defer s.locks.Release(existing.RoomID)

	booking, err := s.ledger.UpdateStatus(ctx, id, model.StatusCancelled)
	if err != nil {
		return nil, errBookingNotFound(id)
	}

	s.publishEvent(kafka.EventBookingCancelled, booking)

	s.cfg.Log.Info("Booking cancelled", "id", booking.ID, "room_id", booking.RoomID)
	return booking, nil
}

func (s *reservationService) ListBookingsByEmail(ctx context.Context, email string) ([]*model.Booking, error) {
	if email == "" {
		return nil, apperrors.InvalidInput("email cannot be empty")
	}

	bookings, err := s.ledger.FindByGuestEmail(ctx, email)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings by email", "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}
	return bookings, nil
}

func (s *reservationService) ListBookingsByRoom(ctx context.Context, roomID string) ([]*model.Booking, error) {
	if _, err := s.catalog.FindByID(roomID); err != nil {
		return nil, errRoomNotFound(roomID)
	}

	bookings, err := s.ledger.FindByRoom(ctx, roomID)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings by room", "room_id", roomID, "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}
	return bookings, nil
}

// publishEvent emits a lifecycle event after the ledger write has committed.
// Publish failures are logged and never roll back the booking.
func (s *reservationService) publishEvent(eventType string, booking *model.Booking) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.events.Publish(ctx, kafka.NewBookingEvent(eventType, booking)); err != nil {
		s.cfg.Log.Error("Failed to publish booking event",
			"event_type", eventType,
			"booking_id", booking.ID,
			"error", err,
		)
	}
}
