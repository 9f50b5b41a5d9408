package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trendora/admin-api/internal/services"
)

type DashboardHandler struct {
	dashboardSvc *services.DashboardService
}

func NewDashboardHandler(dashboardSvc *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc}
}

// @Summary Get Dashboard
// @Description Returns store totals, the sales series and top rankings
// @Tags Dashboard
// @Produce json
// @Param timeFrame query string false "daily, weekly, monthly or yearly" default(monthly)
// @Security BearerAuth
// @Router /admin/dashboard [get]
func (h *DashboardHandler) Index(c *gin.Context) {
	timeFrame := c.DefaultQuery("timeFrame", "monthly")

	dashboard, err := h.dashboardSvc.GetDashboard(c.Request.Context(), timeFrame)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// @Summary Top Products
// @Description Returns the best selling products for a time frame
// @Tags Dashboard
// @Produce json
// @Param timeFrame query string false "daily, weekly, monthly or yearly" default(monthly)
// @Security BearerAuth
// @Router /admin/dashboard/top-products [get]
func (h *DashboardHandler) TopProducts(c *gin.Context) {
	timeFrame := c.DefaultQuery("timeFrame", "monthly")

	products, err := h.dashboardSvc.GetTopProducts(c.Request.Context(), timeFrame)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// @Summary Top Brands
// @Description Returns brands ranked by units sold for a time frame
// @Tags Dashboard
// @Produce json
// @Param timeFrame query string false "daily, weekly, monthly or yearly" default(monthly)
// @Security BearerAuth
// @Router /admin/dashboard/top-brands [get]
func (h *DashboardHandler) TopBrands(c *gin.Context) {
	timeFrame := c.DefaultQuery("timeFrame", "monthly")

	brands, err := h.dashboardSvc.GetTopBrands(c.Request.Context(), timeFrame)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"brands": brands})
}

// @Summary Top Categories
// @Description Returns categories ranked by lifetime units sold
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Router /admin/dashboard/top-categories [get]
func (h *DashboardHandler) TopCategories(c *gin.Context) {
	categories, err := h.dashboardSvc.GetTopCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// @Summary Category Distribution
// @Description Returns catalogue product counts per category
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Router /admin/dashboard/category-distribution [get]
func (h *DashboardHandler) CategoryDistribution(c *gin.Context) {
	shares, err := h.dashboardSvc.GetCategoryDistribution(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": shares})
}

// @Summary Ledger
// @Description Returns the ten most recent delivered orders as ledger rows
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Router /admin/dashboard/ledger [get]
func (h *DashboardHandler) Ledger(c *gin.Context) {
	entries, err := h.dashboardSvc.GetLedger(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
