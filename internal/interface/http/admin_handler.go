package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/echomap/echomap/internal/application"
	"github.com/echomap/echomap/pkg/response"
)

type AdminHandler struct {
	Svc    *application.AdminService
	Logger *logrus.Logger
}

func NewAdminHandler(svc *application.AdminService, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{Svc: svc, Logger: logger}
}

// ListSounds GET /api/admin/sounds — every pin with its report count
func (h *AdminHandler) ListSounds(c *gin.Context) {
	sounds, err := h.Svc.ListSoundsWithReportCounts()
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"sounds": sounds}, "sounds")
}

// DeleteSound DELETE /api/admin/sounds/:soundId — idempotent hard delete
func (h *AdminHandler) DeleteSound(c *gin.Context) {
	if err := h.Svc.DeleteSound(c.Param("soundId")); err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "sound deleted successfully")
}

// ListReports GET /api/admin/reports — reports joined with sound and reporter
func (h *AdminHandler) ListReports(c *gin.Context) {
	reports, err := h.Svc.ListReportsWithDetails()
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reports": reports}, "reports")
}
