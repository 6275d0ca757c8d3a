package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/planora/planora-app/internal/api/metrics"
	"github.com/planora/planora-app/internal/core/ports"
)

// VendorHandler serves vendor lookup and search from fixtures.
type VendorHandler struct {
	fixtures *Fixtures
}

func NewVendorHandler(fixtures *Fixtures) *VendorHandler {
	return &VendorHandler{fixtures: fixtures}
}

// ByID handles GET /vendor/:id.
func (h *VendorHandler) ByID(c echo.Context) error {
	vendor, err := h.fixtures.VendorByID(c.Param("id"))
	if err != nil {
		return err
	}
	metrics.FixtureRequestsTotal.WithLabelValues("vendor_by_id").Inc()
	return c.JSON(http.StatusOK, vendor)
}

// Search handles GET /auth/search?q=.
func (h *VendorHandler) Search(c echo.Context) error {
	metrics.FixtureRequestsTotal.WithLabelValues("vendor_search").Inc()
	return c.JSON(http.StatusOK, h.fixtures.SearchVendors(c.QueryParam("q")))
}

// SearchWithFilters handles GET /auth/vendor-search.
func (h *VendorHandler) SearchWithFilters(c echo.Context) error {
	minRating, _ := strconv.Atoi(c.QueryParam("minRating"))
	filters := ports.VendorFilters{
		Name:               c.QueryParam("name"),
		CategoryID:         c.QueryParam("categoryId"),
		City:               c.QueryParam("city"),
		MinRating:          minRating,
		Staff:              c.QueryParam("staff"),
		CancellationPolicy: c.QueryParam("cancellationPolicy"),
	}
	metrics.FixtureRequestsTotal.WithLabelValues("vendor_filter_search").Inc()
	return c.JSON(http.StatusOK, h.fixtures.SearchVendorsWithFilters(filters))
}
