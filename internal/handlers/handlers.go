package handlers

import (
	"github.com/trendora/admin-api/internal/services"
)

// Handlers holds all handler instances
type Handlers struct {
	Health    *HealthHandler
	Dashboard *DashboardHandler
	Report    *ReportHandler
}

// NewHandlers creates all handler instances
func NewHandlers(svcs *services.Services) *Handlers {
	return &Handlers{
		Health:    NewHealthHandler(),
		Dashboard: NewDashboardHandler(svcs.Dashboard),
		Report:    NewReportHandler(svcs.Report, svcs.Export),
	}
}
