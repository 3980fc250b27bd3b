package handler

import (
	"bytes"
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"observer-portal/backend/internal/service"
	"observer-portal/backend/pkg/response"
)

// ExportHandler serves schedule downloads.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ScheduleICS downloads the observer's schedule as an iCalendar file.
// GET /api/v1/export/schedule.ics
func (h *ExportHandler) ScheduleICS(c *gin.Context) {
	observer, ok := MustGetObserver(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ScheduleICS(c.Request.Context(), observer.ID)
	if err != nil {
		h.handleExportError(c, err)
		return
	}
	writeDownload(c, buf, filename, "text/calendar")
}

// ScheduleXLSX downloads the observer's schedule as a spreadsheet.
// GET /api/v1/export/schedule.xlsx
func (h *ExportHandler) ScheduleXLSX(c *gin.Context) {
	observer, ok := MustGetObserver(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ScheduleXLSX(c.Request.Context(), observer.ID)
	if err != nil {
		h.handleExportError(c, err)
		return
	}
	writeDownload(c, buf, filename, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
}

func writeDownload(c *gin.Context, buf *bytes.Buffer, filename, contentType string) {
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.QueryEscape(filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExportNoNights):
		response.NotFound(c, 18001, "no scheduled nights to export")
	case errors.Is(err, service.ErrScheduleUnavailable):
		response.BadGateway(c, 11001, "schedule service unavailable")
	case errors.Is(err, service.ErrStaffUnavailable):
		response.BadGateway(c, 11002, "staffing service unavailable")
	default:
		response.InternalError(c)
	}
}
