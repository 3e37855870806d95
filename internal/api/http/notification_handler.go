package http

import (
	"net/http"
	"strconv"

	"motorcycle-rental-backend/internal/domain"
	"motorcycle-rental-backend/internal/service"
)

type NotificationHandler struct {
	Svc service.NotificationService
}

type notificationListResponse struct {
	Notifications []domain.NotificationLog `json:"notifications"`
	Total         int32                    `json:"total"`
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	page := queryInt32(r, "page", 1)
	pageSize := queryInt32(r, "page_size", 20)

	logs, total, err := h.Svc.List(r.Context(), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	if logs == nil {
		logs = []domain.NotificationLog{}
	}
	writeJSON(w, http.StatusOK, notificationListResponse{Notifications: logs, Total: total})
}

func queryInt32(r *http.Request, name string, def int32) int32 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || v < 1 {
		return def
	}
	return int32(v)
}
