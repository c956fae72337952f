package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/service"
)

// maxLicenseImageBytes caps multipart uploads of license images.
const maxLicenseImageBytes = 10 << 20

type DriverHandler struct {
	svc service.DriverService
}

func NewDriverHandler(svc service.DriverService) *DriverHandler {
	return &DriverHandler{svc: svc}
}

func (h *DriverHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.CreateDriverInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, err)
		return
	}

	driver, err := h.svc.Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, driver)
}

func (h *DriverHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	driver, err := h.svc.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, driver)
}

func (h *DriverHandler) List(w http.ResponseWriter, r *http.Request) {
	drivers, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, drivers)
}

// UploadLicenseImage accepts a multipart form with the image under the "image"
// field and replaces the driver's stored license image.
func (h *DriverHandler) UploadLicenseImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxLicenseImageBytes); err != nil {
		writeError(w, &domain.Error{Kind: domain.KindInvalidInput, Message: "malformed multipart form"})
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, &domain.Error{Kind: domain.KindInvalidInput, Message: "image file is required"})
		return
	}
	defer file.Close()

	driver, err := h.svc.UpdateLicenseImage(r.Context(), mux.Vars(r)["id"],
		file, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, driver)
}
