package http

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/utp-asistencia/asistencia-backend-go/internal/domain/report"
	"github.com/utp-asistencia/asistencia-backend-go/internal/handler/http/response"
	"github.com/utp-asistencia/asistencia-backend-go/internal/pkg/export"
)

type ReportHandler interface {
	Attendance(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)
	ExportXLSX(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func requestFromQuery(r *http.Request) report.AttendanceReportRequest {
	q := r.URL.Query()
	return report.AttendanceReportRequest{
		Name: q.Get("name"),
		From: q.Get("from"),
		To:   q.Get("to"),
	}
}

// Attendance implements ReportHandler.
func (h *reportHandlerImpl) Attendance(w http.ResponseWriter, r *http.Request) {
	resp, err := h.reportService.GenerateAttendanceReport(r.Context(), requestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ExportCSV implements ReportHandler. The file is rendered fully before any
// header is written so a render failure can still produce an error response.
func (h *reportHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	resp, err := h.reportService.GenerateAttendanceReport(r.Context(), requestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, resp.Rows); err != nil {
		slog.Error("Failed to render CSV report", "error", err)
		response.InternalServerError(w, "Failed to render report")
		return
	}

	filename := fmt.Sprintf("reportes_personal_%s.csv", uuid.NewString())
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write CSV report", "error", err)
	}
}

// ExportXLSX implements ReportHandler.
func (h *reportHandlerImpl) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	resp, err := h.reportService.GenerateAttendanceReport(r.Context(), requestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, resp.Rows); err != nil {
		slog.Error("Failed to render XLSX report", "error", err)
		response.InternalServerError(w, "Failed to render report")
		return
	}

	filename := fmt.Sprintf("reportes_personal_%s.xlsx", uuid.NewString())
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write XLSX report", "error", err)
	}
}
