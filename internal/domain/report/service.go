package report

import "context"

// ReportService defines the interface for report generation
type ReportService interface {
	Generate(ctx context.Context, req ReportRequest) (Report, error)
}
