package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"fleetrent-backend/internal/service"
)

type BikeHandler struct {
	svc service.BikeService
}

func NewBikeHandler(svc service.BikeService) *BikeHandler {
	return &BikeHandler{svc: svc}
}

func (h *BikeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.CreateBikeInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, err)
		return
	}

	bike, err := h.svc.Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, bike)
}

func (h *BikeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	bike, err := h.svc.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bike)
}

// List returns all bikes, optionally filtered to an exact plate match via the
// plate query parameter.
func (h *BikeHandler) List(w http.ResponseWriter, r *http.Request) {
	bikes, err := h.svc.List(r.Context(), r.URL.Query().Get("plate"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bikes)
}

func (h *BikeHandler) UpdatePlate(w http.ResponseWriter, r *http.Request) {
	var in service.UpdateBikePlateInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, err)
		return
	}

	bike, err := h.svc.UpdatePlate(r.Context(), mux.Vars(r)["id"], in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bike)
}

func (h *BikeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
