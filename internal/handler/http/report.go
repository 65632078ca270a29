package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-console/internal/domain/report"
	"github.com/cmlabs-hris/hris-console/internal/handler/http/response"
)

type ReportHandler interface {
	// GetReport handles GET /reports?department=all|<name>
	GetReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func (h *reportHandlerImpl) GetReport(w http.ResponseWriter, r *http.Request) {
	req := report.ReportRequest{
		Department: r.URL.Query().Get("department"),
	}

	result, err := h.reportService.Generate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
