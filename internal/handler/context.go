package handler

import (
	"github.com/labstack/echo/v4"

	"kenyareal/internal/auth"
	"kenyareal/internal/errors"
	"kenyareal/internal/model"
)

// Keys under which the auth middleware stores request state.
const (
	ContextAccountKey = "account"
	ContextClaimsKey  = "claims"
)

func currentAccount(c echo.Context) (*model.Account, bool) {
	account, ok := c.Get(ContextAccountKey).(*model.Account)
	return account, ok && account != nil
}

func currentClaims(c echo.Context) *auth.Claims {
	claims, _ := c.Get(ContextClaimsKey).(*auth.Claims)
	return claims
}

func mapError(err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
