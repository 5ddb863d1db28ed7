package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FilmsDust/agency-os/internal/jobs"
	"github.com/FilmsDust/agency-os/internal/services"
)

type DashboardHandler struct {
	analyticsService *services.AnalyticsService
	exportService    *services.ExportService
	worker           *jobs.Worker
}

func NewDashboardHandler(analyticsService *services.AnalyticsService, exportService *services.ExportService, worker *jobs.Worker) *DashboardHandler {
	return &DashboardHandler{
		analyticsService: analyticsService,
		exportService:    exportService,
		worker:           worker,
	}
}

func (h *DashboardHandler) Snapshot(c *gin.Context) {
	snapshot, err := h.analyticsService.DashboardSnapshot(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

func (h *DashboardHandler) ExportLedgerXLSX(c *gin.Context) {
	data, filename, err := h.exportService.ExportLedgerXLSX(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func (h *DashboardHandler) WorkerStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.worker.GetStats())
}
