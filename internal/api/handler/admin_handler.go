package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kwon0144/HarborHub/internal/service"
	"github.com/kwon0144/HarborHub/pkg/response"
)

// AdminHandler serves coordinator-only operations: seeding reference
// data and exporting the enrollment ledger.
type AdminHandler struct {
	seedSvc   service.SeedService
	exportSvc service.ExportService
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(seedSvc service.SeedService, exportSvc service.ExportService) *AdminHandler {
	return &AdminHandler{seedSvc: seedSvc, exportSvc: exportSvc}
}

// Seed loads addresses and resource catalogues. Idempotent.
// POST /api/seed
func (h *AdminHandler) Seed(c *gin.Context) {
	result, err := h.seedSvc.Run(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKWithMessage(c, result, "Seed completed")
}

// ExportEnrollments streams the enrollment ledger as a spreadsheet,
// optionally narrowed to one activity.
// GET /api/export/enrollments?activityCode=...
func (h *AdminHandler) ExportEnrollments(c *gin.Context) {
	data, err := h.exportSvc.EnrollmentsXLSX(c.Request.Context(), c.Query("activityCode"))
	if err != nil {
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="enrollments.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
