package http

import (
	"context"
	"database/sql"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"motorcycle-rental-backend/internal/service"
)

// BrokerPinger reports broker connectivity for the health endpoint.
type BrokerPinger interface {
	Ping() error
}

// NewRouter creates the mux router with all routes registered.
func NewRouter(
	motoSvc service.MotorcycleService,
	driverSvc service.DriverService,
	rentalSvc service.RentalService,
	noteSvc service.NotificationService,
	db *sql.DB,
	broker BrokerPinger,
) *mux.Router {
	r := mux.NewRouter()

	mh := &MotorcycleHandler{Svc: motoSvc}
	r.HandleFunc("/motorcycles", mh.Create).Methods(http.MethodPost)
	r.HandleFunc("/motorcycles", mh.List).Methods(http.MethodGet)
	r.HandleFunc("/motorcycles/{id}", mh.Get).Methods(http.MethodGet)
	r.HandleFunc("/motorcycles/{id}/license-plate", mh.UpdateLicensePlate).Methods(http.MethodPut)
	r.HandleFunc("/motorcycles/{id}", mh.Delete).Methods(http.MethodDelete)

	dh := &DriverHandler{Svc: driverSvc}
	r.HandleFunc("/delivery-drivers", dh.Create).Methods(http.MethodPost)
	r.HandleFunc("/delivery-drivers/{id}", dh.Get).Methods(http.MethodGet)
	r.HandleFunc("/delivery-drivers/{id}/license-image", dh.UpdateLicenseImage).Methods(http.MethodPut)

	rh := &RentalHandler{Svc: rentalSvc}
	r.HandleFunc("/rentals", rh.Create).Methods(http.MethodPost)
	r.HandleFunc("/rentals/{id}", rh.Get).Methods(http.MethodGet)
	r.HandleFunc("/rentals/{id}/return", rh.Return).Methods(http.MethodPut)

	nh := &NotificationHandler{Svc: noteSvc}
	r.HandleFunc("/notifications", nh.List).Methods(http.MethodGet)

	r.HandleFunc("/health", healthCheckHandler(db, broker)).Methods(http.MethodGet)

	return r
}

func healthCheckHandler(db *sql.DB, broker BrokerPinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			io.WriteString(w, `{"status": "unhealthy", "database": "down"}`)
			return
		}
		if broker != nil {
			if err := broker.Ping(); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				io.WriteString(w, `{"status": "unhealthy", "broker": "down"}`)
				return
			}
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"status": "healthy"}`)
	}
}
