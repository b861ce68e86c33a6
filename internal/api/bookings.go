package api

import (
	"net/http"

	"github.com/neexbeast/farescout/internal/booking"
	"github.com/neexbeast/farescout/internal/fare"
)

type bookingRequest struct {
	Passenger  booking.Passenger `json:"passenger"`
	Offer      fare.Offer        `json:"offer"`
	VisaStatus string            `json:"visa_status"`
}

type bookingResponse struct {
	Booking *booking.Booking `json:"booking"`
	Links   []booking.Link   `json:"links"`
}

// CreateBooking handles POST /api/v1/bookings.
// The flight variant follows the route classification of the offer.
func (h *Handlers) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := req.Offer.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	o := req.Offer
	o.Origin = h.resolver.ResolveCode(o.Origin)
	o.Destination = h.resolver.ResolveCode(o.Destination)
	kind := h.resolver.ClassifyRoute(req.Offer.Origin, req.Offer.Destination)

	b, err := booking.New(req.Passenger, booking.FlightFromOffer(o, kind, req.VisaStatus), o.Price)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.SaveBooking(r.Context(), b); err != nil {
		h.log.Error("saving booking failed", "id", b.ID, "err", err)
		writeError(w, http.StatusInternalServerError, "failed to store booking")
		return
	}

	h.log.Info("booking created", "id", b.ID, "flight", b.Flight.FlightNumber, "route_type", kind.String())
	writeJSON(w, http.StatusCreated, bookingResponse{
		Booking: b,
		Links:   booking.Links(o.Origin, o.Destination, o.Date, kind),
	})
}

// GetBooking handles GET /api/v1/bookings/{id}.
func (h *Handlers) GetBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	b, err := h.store.GetBooking(r.Context(), id)
	if err != nil {
		h.log.Error("db get booking failed", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if b == nil {
		writeError(w, http.StatusNotFound, "booking not found")
		return
	}

	writeJSON(w, http.StatusOK, b)
}
