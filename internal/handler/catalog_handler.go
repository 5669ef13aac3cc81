package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kenyareal/internal/errors"
	"kenyareal/internal/service"
)

// CatalogHandler serves properties, agents and market insights.
type CatalogHandler struct {
	catalog service.CatalogService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalog service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListProperties godoc
// @Summary Search properties
// @Tags properties
// @Produce json
// @Param q query string false "Title contains"
// @Param location query string false "Area contains"
// @Param type query string false "apartment, house, commercial or land"
// @Param status query string false "for-sale, for-rent or all"
// @Param bedrooms query int false "Minimum bedrooms"
// @Param priceMin query number false "Minimum price"
// @Param priceMax query number false "Maximum price"
// @Param sort query string false "newest, price-low, price-high or relevance"
// @Success 200 {array} model.Property
// @Failure 400 {object} errors.ErrorResponse
// @Router /properties [get]
func (h *CatalogHandler) ListProperties(c echo.Context) error {
	var f service.PropertyFilter
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid query parameters",
			Code:  "INVALID_QUERY",
		})
	}
	return c.JSON(http.StatusOK, h.catalog.ListProperties(c.Request().Context(), f))
}

// FeaturedProperties godoc
// @Summary Featured properties
// @Tags properties
// @Produce json
// @Success 200 {array} model.Property
// @Router /properties/featured [get]
func (h *CatalogHandler) FeaturedProperties(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.FeaturedProperties(c.Request().Context()))
}

// GetProperty godoc
// @Summary Get property
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} model.Property
// @Failure 404 {object} errors.ErrorResponse
// @Router /properties/{id} [get]
func (h *CatalogHandler) GetProperty(c echo.Context) error {
	p, err := h.catalog.GetProperty(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, p)
}

// ListAgents godoc
// @Summary Search agents
// @Tags agents
// @Produce json
// @Param q query string false "Name or company contains"
// @Param specialty query string false "Exact specialty"
// @Success 200 {array} model.Agent
// @Router /agents [get]
func (h *CatalogHandler) ListAgents(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.ListAgents(c.Request().Context(), c.QueryParam("q"), c.QueryParam("specialty")))
}

// Specialties godoc
// @Summary Distinct agent specialties
// @Tags agents
// @Produce json
// @Success 200 {array} string
// @Router /agents/specialties [get]
func (h *CatalogHandler) Specialties(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.Specialties(c.Request().Context()))
}

// GetAgent godoc
// @Summary Get agent
// @Tags agents
// @Produce json
// @Param id path string true "Agent ID"
// @Success 200 {object} model.Agent
// @Failure 404 {object} errors.ErrorResponse
// @Router /agents/{id} [get]
func (h *CatalogHandler) GetAgent(c echo.Context) error {
	a, err := h.catalog.GetAgent(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, a)
}

// MarketInsights godoc
// @Summary Market insights for every area
// @Tags insights
// @Produce json
// @Success 200 {array} model.MarketInsight
// @Router /insights [get]
func (h *CatalogHandler) MarketInsights(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.MarketInsights(c.Request().Context()))
}

// MarketInsight godoc
// @Summary Market insight for one area
// @Tags insights
// @Produce json
// @Param area path string true "Area name"
// @Success 200 {object} model.MarketInsight
// @Failure 404 {object} errors.ErrorResponse
// @Router /insights/{area} [get]
func (h *CatalogHandler) MarketInsight(c echo.Context) error {
	mi, err := h.catalog.MarketInsight(c.Request().Context(), c.Param("area"))
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, mi)
}
