package services

import (
	"github.com/trendora/admin-api/internal/repository"
)

// Services holds all service instances
type Services struct {
	Dashboard *DashboardService
	Report    *ReportService
	Export    *ExportService
}

// NewServices creates all service instances
func NewServices(repos *repository.Repositories) *Services {
	reportSvc := NewReportService(repos.Order, repos.User)

	return &Services{
		Dashboard: NewDashboardService(repos.Order, repos.Product, repos.Category, repos.User),
		Report:    reportSvc,
		Export:    NewExportService(reportSvc),
	}
}
