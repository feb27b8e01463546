package model

import (
	"time"
)

// BookingStatus values. A booking is created confirmed; the only permitted
// mutation afterwards is the transition to cancelled.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Booking is one ledger entry. The stay is the half-open interval
// [CheckIn, CheckOut): a booking ending on a given day never conflicts with
// one starting that same day. ID and CreatedAt are assigned at insertion and
// never change. Cancelled bookings are kept for audit.
type Booking struct {
	ID         string    `json:"id,omitempty" bson:"_id,omitempty"`
	RoomID     string    `json:"room_id" bson:"room_id"`
	CheckIn    time.Time `json:"check_in" bson:"check_in"`
	CheckOut   time.Time `json:"check_out" bson:"check_out"`
	Guests     int       `json:"guests" bson:"guests"`
	TotalPrice float64   `json:"total_price" bson:"total_price"`
	Status     string    `json:"status" bson:"status"`
	GuestName  string    `json:"guest_name" bson:"guest_name"`
	GuestEmail string    `json:"guest_email" bson:"guest_email"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

// Cancelled reports whether the booking no longer occupies its date range.
func (b *Booking) Cancelled() bool {
	return b.Status == StatusCancelled
}

// Overlaps reports whether the booking's stay shares at least one night with
// [checkIn, checkOut) under the half-open rule. Touching boundaries
// (same-day turnover) do not overlap.
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return checkIn.Before(b.CheckOut) && b.CheckIn.Before(checkOut)
}

// CreateBookingRequest is the input to the booking workflow. Guest count is
// deliberately untagged: the workflow checks it against the room's capacity
// so the caller gets a capacity error rather than a generic validation one.
type CreateBookingRequest struct {
	RoomID     string    `json:"room_id" validate:"required"`
	CheckIn    time.Time `json:"check_in" validate:"required"`
	CheckOut   time.Time `json:"check_out" validate:"required"`
	Guests     int       `json:"guests"`
	GuestName  string    `json:"guest_name" validate:"required,min=2,max=100"`
	GuestEmail string    `json:"guest_email" validate:"required,email"`
}
