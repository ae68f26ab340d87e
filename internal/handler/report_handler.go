package handler

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"mrtrack/internal/csvexport"
	"mrtrack/internal/service"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler serves spreadsheet and CSV exports.
type ReportHandler struct {
	reportService service.ReportService
	cal           service.Calendar
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService, cal service.Calendar) *ReportHandler {
	return &ReportHandler{reportService: reportService, cal: cal}
}

// Workbook handles GET /api/v1/reports/workbook?month=
// @Summary Monthly analytics workbook
// @Description Returns a presigned download URL when object storage is configured, otherwise streams the xlsx.
// @Tags reports
// @Produce json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param month query string false "YYYY-MM, defaults to the current month"
// @Success 200 {object} Response{data=service.WorkbookReport}
// @Failure 400 {object} ErrorResponseBody
// @Failure 502 {object} ErrorResponseBody
// @Security BearerAuth
// @Router /reports/workbook [get]
func (h *ReportHandler) Workbook(c *gin.Context) {
	report, err := h.reportService.MonthlyWorkbook(c.Request.Context(), c.Query("month"))
	if err != nil {
		HandleError(c, err)
		return
	}

	if report.URL != "" {
		RespondOK(c, report)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+report.Filename+`"`)
	c.Data(http.StatusOK, xlsxMIME, report.Content)
}

// VisitsCSV handles GET /api/v1/reports/visits.csv?field_rep_id=
// @Summary Export visits as CSV
// @Description MR users always export their own visits.
// @Tags reports
// @Produce text/csv
// @Param field_rep_id query string false "Field rep ID (admin only)"
// @Success 200 {file} file
// @Failure 403 {object} ErrorResponseBody
// @Security BearerAuth
// @Router /reports/visits.csv [get]
func (h *ReportHandler) VisitsCSV(c *gin.Context) {
	actor, ok := extractActor(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	buf.Write(csvexport.BOM)
	if err := h.reportService.ExportVisitsCSV(c.Request.Context(), actor, c.Query("field_rep_id"), &buf); err != nil {
		HandleError(c, err)
		return
	}

	name := "visits"
	if rep := c.Query("field_rep_id"); rep != "" {
		name = "visits_" + rep
	} else if !actor.IsAdmin() {
		name = "visits_" + actor.FieldRepID
	}
	filename := csvexport.BuildFilename(name, h.cal.Today(), "csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
