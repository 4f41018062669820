package http

import (
	"net/http"

	"github.com/MKhiriev/go-retail-api/internal/render"
	"github.com/MKhiriev/go-retail-api/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	h.writeObject(w, r, http.StatusOK, render.HealthKind, models.HealthResponse{
		Status:  "ok",
		Version: h.services.AppInfoService.GetAppVersion(r.Context()),
	})
}
