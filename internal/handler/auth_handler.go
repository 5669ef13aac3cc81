package handler

import (
	stderrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"kenyareal/internal/errors"
	"kenyareal/internal/model"
	"kenyareal/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignupRequest represents a user signup request.
type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone" validate:"required,ke_phone"`
	Role     string `json:"role"`
}

// RefreshRequest represents a token refresh request.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LogoutRequest represents a logout request. The refresh token is optional.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// AuthResponse is the structured result of login and signup.
type AuthResponse struct {
	Success      bool           `json:"success"`
	Error        string         `json:"error,omitempty"`
	Code         string         `json:"code,omitempty"`
	User         *model.Account `json:"user,omitempty"`
	AccessToken  string         `json:"access_token,omitempty"`
	RefreshToken string         `json:"refresh_token,omitempty"`
}

func authFailure(c echo.Context, err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return c.JSON(httpErr.StatusCode, AuthResponse{
		Success: false,
		Error:   httpErr.Message,
		Code:    httpErr.Code,
	})
}

func invalidRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, AuthResponse{
		Success: false,
		Error:   msg,
		Code:    "INVALID_REQUEST",
	})
}

// Login godoc
// @Summary Login user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} AuthResponse
// @Failure 401 {object} AuthResponse
// @Failure 404 {object} AuthResponse
// @Failure 429 {object} AuthResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return invalidRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return invalidRequest(c, err.Error())
	}

	res, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return authFailure(c, err)
	}

	return c.JSON(http.StatusOK, AuthResponse{
		Success:      true,
		User:         res.Account,
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
	})
}

// Signup godoc
// @Summary Create an account and sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup data"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} AuthResponse
// @Failure 409 {object} AuthResponse
// @Failure 429 {object} AuthResponse
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return invalidRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return invalidRequest(c, err.Error())
	}

	res, err := h.authService.Signup(c.Request().Context(), service.SignupRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Role:     model.Role(req.Role),
	})
	if err != nil {
		return authFailure(c, err)
	}

	return c.JSON(http.StatusCreated, AuthResponse{
		Success:      true,
		User:         res.Account,
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
	})
}

// Refresh godoc
// @Summary Refresh access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "Refresh token"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	accessToken, err := h.authService.RefreshToken(c.Request().Context(), req.RefreshToken)
	if err != nil {
		if stderrors.Is(err, service.ErrInvalidRefreshToken) {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: err.Error(),
				Code:  "INVALID_REFRESH_TOKEN",
			})
		}
		return mapError(err)
	}

	return c.JSON(http.StatusOK, AuthResponse{
		Success:     true,
		AccessToken: accessToken,
	})
}

// Logout godoc
// @Summary Logout user
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body LogoutRequest false "Refresh token to revoke"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	var req LogoutRequest
	// the body is optional; a malformed one only skips refresh revocation
	_ = c.Bind(&req)

	if err := h.authService.Logout(c.Request().Context(), currentClaims(c), req.RefreshToken); err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "logged out successfully",
	})
}

// Me godoc
// @Summary Current account
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Account
// @Failure 401 {object} errors.ErrorResponse
// @Router /me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	account, ok := currentAccount(c)
	if !ok {
		return mapError(errors.ErrNotAuthenticated)
	}
	return c.JSON(http.StatusOK, account)
}
