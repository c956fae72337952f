package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/service"
)

type RentalHandler struct {
	svc service.RentalService
}

func NewRentalHandler(svc service.RentalService) *RentalHandler {
	return &RentalHandler{svc: svc}
}

type createRentalRequest struct {
	DriverID  string `json:"driver_id"`
	BikeID    string `json:"bike_id"`
	StartDate string `json:"start_date"`
	PlanType  string `json:"plan_type"`
}

type returnRentalRequest struct {
	ReturnDate string `json:"return_date"`
}

func parseDate(value, field string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, &domain.Error{Kind: domain.KindInvalidInput, Message: field + " must be an RFC 3339 timestamp or YYYY-MM-DD date"}
	}
	return t, nil
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRentalRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	start, err := parseDate(req.StartDate, "start_date")
	if err != nil {
		writeError(w, err)
		return
	}

	rental, err := h.svc.Create(r.Context(), service.CreateRentalInput{
		DriverID:  req.DriverID,
		BikeID:    req.BikeID,
		StartDate: start,
		PlanType:  domain.PlanType(req.PlanType),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rental)
}

func (h *RentalHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	rental, err := h.svc.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

// Return settles the rental and responds with the rental plus the total owed.
func (h *RentalHandler) Return(w http.ResponseWriter, r *http.Request) {
	var req returnRentalRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	returnDate, err := parseDate(req.ReturnDate, "return_date")
	if err != nil {
		writeError(w, err)
		return
	}

	settlement, err := h.svc.Return(r.Context(), mux.Vars(r)["id"], returnDate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settlement)
}
