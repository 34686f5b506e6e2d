package report

import "context"

// ReportService generates attendance reports from raw marking events.
type ReportService interface {
	GenerateAttendanceReport(ctx context.Context, req AttendanceReportRequest) (AttendanceReport, error)
}
