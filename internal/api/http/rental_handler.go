package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"motorcycle-rental-backend/internal/domain"
	"motorcycle-rental-backend/internal/service"
)

type RentalHandler struct {
	Svc service.RentalService
}

type createRentalRequest struct {
	MotorcycleID     string `json:"motorcycle_id"`
	DeliveryDriverID string `json:"delivery_driver_id"`
	PlanDays         int    `json:"plan_days"`
}

type returnRentalRequest struct {
	ReturnDate string `json:"return_date"`
}

type returnRentalResponse struct {
	Rental              *domain.Rental `json:"rental"`
	TotalCostCents      int64          `json:"total_cost_cents"`
	BaseCostCents       int64          `json:"base_cost_cents"`
	PenaltyCostCents    *int64         `json:"penalty_cost_cents,omitempty"`
	AdditionalCostCents *int64         `json:"additional_cost_cents,omitempty"`
	ActualDays          int            `json:"actual_days"`
	PlanDays            int            `json:"plan_days"`
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.InvalidInput("invalid request body"))
		return
	}
	if req.MotorcycleID == "" || req.DeliveryDriverID == "" || req.PlanDays == 0 {
		writeError(w, domain.InvalidInput("motorcycle_id, delivery_driver_id and plan_days are required"))
		return
	}

	rental, err := h.Svc.Create(r.Context(), req.MotorcycleID, req.DeliveryDriverID, req.PlanDays)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rental)
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	rental, err := h.Svc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) Return(w http.ResponseWriter, r *http.Request) {
	var req returnRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.InvalidInput("invalid request body"))
		return
	}

	returnDate, err := parseReturnDate(req.ReturnDate)
	if err != nil {
		writeError(w, domain.InvalidInput("return_date must be yyyy-mm-dd or RFC 3339"))
		return
	}

	rental, breakdown, err := h.Svc.Return(r.Context(), mux.Vars(r)["id"], returnDate)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, returnRentalResponse{
		Rental:              rental,
		TotalCostCents:      breakdown.TotalCents,
		BaseCostCents:       breakdown.BaseCents,
		PenaltyCostCents:    breakdown.PenaltyCents,
		AdditionalCostCents: breakdown.AdditionalCents,
		ActualDays:          breakdown.ActualDays,
		PlanDays:            breakdown.PlanDays,
	})
}

func parseReturnDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
