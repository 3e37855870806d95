package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"motorcycle-rental-backend/internal/domain"
	"motorcycle-rental-backend/internal/service"
)

type MotorcycleHandler struct {
	Svc service.MotorcycleService
}

type createMotorcycleRequest struct {
	ID           string `json:"id"`
	Year         int    `json:"year"`
	Model        string `json:"model"`
	LicensePlate string `json:"license_plate"`
}

type updateLicensePlateRequest struct {
	LicensePlate string `json:"license_plate"`
}

func (h *MotorcycleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createMotorcycleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.InvalidInput("invalid request body"))
		return
	}
	if req.ID == "" || req.Model == "" || req.LicensePlate == "" || req.Year == 0 {
		writeError(w, domain.InvalidInput("id, year, model and license_plate are required"))
		return
	}

	m, err := h.Svc.Create(r.Context(), req.ID, req.Year, req.Model, req.LicensePlate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (h *MotorcycleHandler) List(w http.ResponseWriter, r *http.Request) {
	motorcycles, err := h.Svc.List(r.Context(), r.URL.Query().Get("license_plate"))
	if err != nil {
		writeError(w, err)
		return
	}
	if motorcycles == nil {
		motorcycles = []domain.Motorcycle{}
	}
	writeJSON(w, http.StatusOK, motorcycles)
}

func (h *MotorcycleHandler) Get(w http.ResponseWriter, r *http.Request) {
	m, err := h.Svc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *MotorcycleHandler) UpdateLicensePlate(w http.ResponseWriter, r *http.Request) {
	var req updateLicensePlateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.InvalidInput("invalid request body"))
		return
	}
	if req.LicensePlate == "" {
		writeError(w, domain.InvalidInput("license_plate is required"))
		return
	}

	m, err := h.Svc.UpdateLicensePlate(r.Context(), mux.Vars(r)["id"], req.LicensePlate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *MotorcycleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
