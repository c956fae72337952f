package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"fleetrent-backend/internal/service"
)

// NewRouter wires the REST routes for bikes, drivers, and rentals.
func NewRouter(bikes service.BikeService, drivers service.DriverService, rentals service.RentalService) *mux.Router {
	bikeHandler := NewBikeHandler(bikes)
	driverHandler := NewDriverHandler(drivers)
	rentalHandler := NewRentalHandler(rentals)

	r := mux.NewRouter()
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/bikes", bikeHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/bikes", bikeHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/bikes/{id}", bikeHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/bikes/{id}/plate", bikeHandler.UpdatePlate).Methods(http.MethodPut)
	api.HandleFunc("/bikes/{id}", bikeHandler.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/drivers", driverHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/drivers", driverHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/drivers/{id}", driverHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/drivers/{id}/license-image", driverHandler.UploadLicenseImage).Methods(http.MethodPost)

	api.HandleFunc("/rentals", rentalHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id}", rentalHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id}/return", rentalHandler.Return).Methods(http.MethodPut)

	return r
}
