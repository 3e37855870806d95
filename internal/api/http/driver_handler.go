package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"motorcycle-rental-backend/internal/domain"
	"motorcycle-rental-backend/internal/service"
)

const maxLicenseImageBytes = 10 << 20 // 10 MiB

type DriverHandler struct {
	Svc service.DriverService
}

type createDriverRequest struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	CNPJ          string `json:"cnpj"`
	BirthDate     string `json:"birth_date"`
	LicenseNumber string `json:"license_number"`
	LicenseType   string `json:"license_type"`
}

func (h *DriverHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDriverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.InvalidInput("invalid request body"))
		return
	}
	if req.ID == "" || req.Name == "" || req.CNPJ == "" || req.LicenseNumber == "" {
		writeError(w, domain.InvalidInput("id, name, cnpj and license_number are required"))
		return
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		writeError(w, domain.InvalidInput("birth_date must be yyyy-mm-dd"))
		return
	}

	driver := &domain.DeliveryDriver{
		ID:            req.ID,
		Name:          req.Name,
		CNPJ:          req.CNPJ,
		BirthDate:     birthDate,
		LicenseNumber: req.LicenseNumber,
		LicenseType:   domain.LicenseType(req.LicenseType),
	}

	created, err := h.Svc.Create(r.Context(), driver)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *DriverHandler) Get(w http.ResponseWriter, r *http.Request) {
	driver, err := h.Svc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, driver)
}

func (h *DriverHandler) UpdateLicenseImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxLicenseImageBytes); err != nil {
		writeError(w, domain.InvalidInput("invalid multipart form"))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, domain.InvalidInput("image file is required"))
		return
	}
	defer file.Close()

	driver, err := h.Svc.UpdateLicenseImage(r.Context(), mux.Vars(r)["id"], header.Filename, file)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, driver)
}
