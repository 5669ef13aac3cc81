package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kenyareal/internal/service"
)

// SeedHandler handles seed data endpoints.
type SeedHandler struct {
	accountService service.AccountService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(accountService service.AccountService) *SeedHandler {
	return &SeedHandler{accountService: accountService}
}

// SeedAccountsResponse represents the seed response.
type SeedAccountsResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// SeedAccounts godoc
// @Summary Restore the demo accounts
// @Description Replaces the account list with the seed accounts and ends the active session.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SeedAccountsResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/seed [post]
func (h *SeedHandler) SeedAccounts(c echo.Context) error {
	count, err := h.accountService.ResetAccounts(c.Request().Context())
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, SeedAccountsResponse{
		Message: "accounts reset to seed data",
		Count:   count,
	})
}
