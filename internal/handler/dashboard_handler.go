package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kenyareal/internal/errors"
	"kenyareal/internal/model"
	"kenyareal/internal/service"
)

// DashboardHandler serves the role-specific dashboard and saved listings.
type DashboardHandler struct {
	sessions service.SessionService
	catalog  service.CatalogService
	accounts service.AccountService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(sessions service.SessionService, catalog service.CatalogService, accounts service.AccountService) *DashboardHandler {
	return &DashboardHandler{
		sessions: sessions,
		catalog:  catalog,
		accounts: accounts,
	}
}

// BuyerDashboard lists what a buyer saved and is looking for.
type BuyerDashboard struct {
	Role            model.Role        `json:"role"`
	User            *model.Account    `json:"user"`
	SavedProperties []model.Property  `json:"savedProperties"`
	Preferences     model.Preferences `json:"preferences"`
}

// AgentDashboard lists an agent's own listings.
type AgentDashboard struct {
	Role     model.Role       `json:"role"`
	User     *model.Account   `json:"user"`
	Profile  *model.Agent     `json:"profile,omitempty"`
	Listings []model.Property `json:"listings"`
}

// AdminDashboard summarizes the catalog and the account list.
type AdminDashboard struct {
	Role     model.Role           `json:"role"`
	User     *model.Account       `json:"user"`
	Catalog  service.CatalogStats `json:"catalog"`
	Accounts map[model.Role]int   `json:"accounts"`
}

// Dashboard godoc
// @Summary Role-specific dashboard
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} BuyerDashboard
// @Failure 401 {object} errors.ErrorResponse
// @Router /dashboard [get]
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	account, ok := currentAccount(c)
	if !ok {
		return mapError(errors.ErrNotAuthenticated)
	}
	ctx := c.Request().Context()

	switch account.Role {
	case model.RoleAgent:
		listings := h.catalog.PropertiesByAgentEmail(ctx, account.Email)
		var profile *model.Agent
		if len(listings) > 0 {
			profile = listings[0].Agent
		}
		return c.JSON(http.StatusOK, AgentDashboard{
			Role:     account.Role,
			User:     account,
			Profile:  profile,
			Listings: listings,
		})
	case model.RoleAdmin:
		counts, err := h.accounts.CountByRole(ctx)
		if err != nil {
			return mapError(err)
		}
		return c.JSON(http.StatusOK, AdminDashboard{
			Role:     account.Role,
			User:     account,
			Catalog:  h.catalog.Stats(ctx),
			Accounts: counts,
		})
	default:
		return c.JSON(http.StatusOK, BuyerDashboard{
			Role:            account.Role,
			User:            account,
			SavedProperties: h.catalog.PropertiesByIDs(ctx, account.SavedProperties),
			Preferences:     account.Preferences,
		})
	}
}

// SavedProperties godoc
// @Summary Saved properties of the current account
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Property
// @Failure 401 {object} errors.ErrorResponse
// @Router /me/saved [get]
func (h *DashboardHandler) SavedProperties(c echo.Context) error {
	account, ok := currentAccount(c)
	if !ok {
		return mapError(errors.ErrNotAuthenticated)
	}
	return c.JSON(http.StatusOK, h.catalog.PropertiesByIDs(c.Request().Context(), account.SavedProperties))
}

// SaveProperty godoc
// @Summary Save a property
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Success 200 {object} model.Account
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /me/saved/{id} [put]
func (h *DashboardHandler) SaveProperty(c echo.Context) error {
	ctx := c.Request().Context()
	p, err := h.catalog.GetProperty(ctx, c.Param("id"))
	if err != nil {
		return mapError(err)
	}
	account, err := h.sessions.SaveProperty(ctx, p.ID)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, account)
}

// UnsaveProperty godoc
// @Summary Remove a saved property
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Success 200 {object} model.Account
// @Failure 401 {object} errors.ErrorResponse
// @Router /me/saved/{id} [delete]
func (h *DashboardHandler) UnsaveProperty(c echo.Context) error {
	account, err := h.sessions.UnsaveProperty(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, account)
}
