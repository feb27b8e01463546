package handler

import (
	"net/http"

	"innkeep/internal/reservations/service"
	httputil "innkeep/pkg/http"
	"innkeep/pkg/logger"
	"innkeep/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type ReservationHandler struct {
	service service.ReservationService
	log     *logger.Logger
}

func NewReservationHandler(service service.ReservationService, log *logger.Logger) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		log:     log,
	}
}

func (h *ReservationHandler) GetRoom(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	room, err := h.service.GetRoom(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetRoom", err)
		return
	}
	h.writeSuccess(w, "GetRoom", room)
}

// ListRooms serves the catalog. With featured=true it returns the featured
// subset; any of check_in/check_out, guests, category, max_rate narrow the
// result the way the room search page does.
func (h *ReservationHandler) ListRooms(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()

	if query.Get("featured") == "true" {
		rooms, err := h.service.ListFeaturedRooms(r.Context())
		if err != nil {
			h.writeError(w, "ListRooms", err)
			return
		}
		h.writeSuccess(w, "ListRooms", rooms)
		return
	}

	roomQuery := service.RoomQuery{
		Category: model.RoomCategory(query.Get("category")),
	}

	guests, err := httputil.ParseOptionalIntParam(r, "guests", 0)
	if err != nil {
		h.writeError(w, "ListRooms", err)
		return
	}
	roomQuery.Guests = guests

	maxRate, err := httputil.ParseOptionalIntParam(r, "max_rate", 0)
	if err != nil {
		h.writeError(w, "ListRooms", err)
		return
	}
	roomQuery.MaxRate = float64(maxRate)

	if query.Get("check_in") != "" || query.Get("check_out") != "" {
		checkIn, err := httputil.ParseDateParam(r, "check_in")
		if err != nil {
			h.writeError(w, "ListRooms", err)
			return
		}
		checkOut, err := httputil.ParseDateParam(r, "check_out")
		if err != nil {
			h.writeError(w, "ListRooms", err)
			return
		}
		roomQuery.CheckIn = checkIn
		roomQuery.CheckOut = checkOut
	}

	rooms, err := h.service.SearchRooms(r.Context(), roomQuery)
	if err != nil {
		h.writeError(w, "ListRooms", err)
		return
	}
	h.writeSuccess(w, "ListRooms", rooms)
}

func (h *ReservationHandler) CheckAvailability(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	checkIn, err := httputil.ParseDateParam(r, "check_in")
	if err != nil {
		h.writeError(w, "CheckAvailability", err)
		return
	}
	checkOut, err := httputil.ParseDateParam(r, "check_out")
	if err != nil {
		h.writeError(w, "CheckAvailability", err)
		return
	}

	available, err := h.service.CheckAvailability(r.Context(), ps.ByName("id"), checkIn, checkOut)
	if err != nil {
		h.writeError(w, "CheckAvailability", err)
		return
	}
	h.writeSuccess(w, "CheckAvailability", map[string]any{"available": available})
}

func (h *ReservationHandler) QuotePrice(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	checkIn, err := httputil.ParseDateParam(r, "check_in")
	if err != nil {
		h.writeError(w, "QuotePrice", err)
		return
	}
	checkOut, err := httputil.ParseDateParam(r, "check_out")
	if err != nil {
		h.writeError(w, "QuotePrice", err)
		return
	}

	total, err := h.service.QuotePrice(r.Context(), ps.ByName("id"), checkIn, checkOut)
	if err != nil {
		h.writeError(w, "QuotePrice", err)
		return
	}
	h.writeSuccess(w, "QuotePrice", map[string]any{
		"total_price": total,
		"nights":      service.Nights(checkIn, checkOut),
	})
}

func (h *ReservationHandler) ListRoomBookings(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookings, err := h.service.ListBookingsByRoom(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "ListRoomBookings", err)
		return
	}
	h.writeSuccess(w, "ListRoomBookings", bookings)
}

func (h *ReservationHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "error", writeErr)
	}
}

func (h *ReservationHandler) writeSuccess(w http.ResponseWriter, handler string, data any) {
	if err := httputil.WriteSuccess(w, data); err != nil {
		h.log.Error("failed to write success response", "handler", handler, "error", err)
	}
}
