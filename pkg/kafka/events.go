package kafka

import (
	"time"

	"innkeep/pkg/model"
)

// Booking lifecycle event types.
const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"
)

// Header keys attached to every published event.
const (
	HeaderEventID   = "event-id"
	HeaderEventType = "event-type"
	HeaderSource    = "source"
	HeaderTimestamp = "timestamp"
)

// BookingEvent is the payload published for booking lifecycle changes.
// Downstream consumers (notifications, reporting) key on BookingID.
type BookingEvent struct {
	Type       string    `json:"type"`
	BookingID  string    `json:"booking_id"`
	RoomID     string    `json:"room_id"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	Guests     int       `json:"guests"`
	TotalPrice float64   `json:"total_price"`
	Status     string    `json:"status"`
	GuestEmail string    `json:"guest_email"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewBookingEvent snapshots a booking into an event payload.
func NewBookingEvent(eventType string, b *model.Booking) BookingEvent {
	return BookingEvent{
		Type:       eventType,
		BookingID:  b.ID,
		RoomID:     b.RoomID,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		Guests:     b.Guests,
		TotalPrice: b.TotalPrice,
		Status:     b.Status,
		GuestEmail: b.GuestEmail,
		OccurredAt: time.Now().UTC(),
	}
}
