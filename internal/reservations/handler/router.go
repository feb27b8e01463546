package handler

import (
	"github.com/julienschmidt/httprouter"
)

func (h *ReservationHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/rooms", h.ListRooms)
	router.GET("/api/v1/rooms/:id", h.GetRoom)
	router.GET("/api/v1/rooms/:id/availability", h.CheckAvailability)
	router.GET("/api/v1/rooms/:id/quote", h.QuotePrice)
	router.GET("/api/v1/rooms/:id/bookings", h.ListRoomBookings)

	router.POST("/api/v1/bookings", h.CreateBooking)
	router.GET("/api/v1/bookings", h.ListBookings)
	router.POST("/api/v1/bookings/:id/cancel", h.CancelBooking)
}
