package handler

import (
	"encoding/json"
	"net/http"

	"innkeep/pkg/config"
	apperrors "innkeep/pkg/errors"
	httputil "innkeep/pkg/http"
	"innkeep/pkg/model"

	"github.com/julienschmidt/httprouter"
)

func (h *ReservationHandler) CreateBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "CreateBooking", apperrors.InvalidInput("Invalid request body"))
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		h.writeError(w, "CreateBooking", err)
		return
	}

	if err := httputil.WriteCreated(w, booking); err != nil {
		h.log.Error("failed to write created response", "handler", "CreateBooking", "error", err)
	}
}

func (h *ReservationHandler) CancelBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	booking, err := h.service.CancelBooking(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "CancelBooking", err)
		return
	}
	h.writeSuccess(w, "CancelBooking", booking)
}

// ListBookings serves the guest-facing "my bookings" query. Email matching
// is exact but case-insensitive; results are paginated in insertion order.
func (h *ReservationHandler) ListBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	email := r.URL.Query().Get("email")

	limit, err := httputil.ParseOptionalIntParam(r, "limit", config.DefaultPaginationLimit)
	if err != nil {
		h.writeError(w, "ListBookings", err)
		return
	}
	offset, err := httputil.ParseOptionalIntParam(r, "offset", 0)
	if err != nil {
		h.writeError(w, "ListBookings", err)
		return
	}
	limit = config.NormalizePaginationLimit(limit)
	offset = int(config.NormalizeOffset(int64(offset)))

	bookings, err := h.service.ListBookingsByEmail(r.Context(), email)
	if err != nil {
		h.writeError(w, "ListBookings", err)
		return
	}

	total := int64(len(bookings))
	if offset > len(bookings) {
		offset = len(bookings)
	}
	end := offset + limit
	if end > len(bookings) {
		end = len(bookings)
	}

	if err := httputil.WritePaginated(w, bookings[offset:end], total, limit, offset); err != nil {
		h.log.Error("failed to write paginated response", "handler", "ListBookings", "error", err)
	}
}
