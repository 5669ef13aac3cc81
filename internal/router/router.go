package router

import (
	stderrors "errors"
	"net/http"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"kenyareal/docs"
	"kenyareal/internal/auth"
	"kenyareal/internal/config"
	"kenyareal/internal/errors"
	"kenyareal/internal/handler"
	"kenyareal/internal/model"
	"kenyareal/internal/service"
)

// Handlers groups the HTTP handlers wired by Register.
type Handlers struct {
	Auth       *handler.AuthHandler
	Catalog    *handler.CatalogHandler
	Calculator *handler.CalculatorHandler
	Dashboard  *handler.DashboardHandler
	Account    *handler.AccountHandler
	Seed       *handler.SeedHandler
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	log *zap.SugaredLogger,
	jwtService *auth.JWTService,
	authService service.AuthService,
	h Handlers,
) {
	e.Use(middleware.RequestID())
	e.Use(requestLogger(log))
	e.Use(middleware.Recover())
	if len(cfg.CORSOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: cfg.CORSOrigins,
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		}))
	}

	e.Validator = NewValidator()

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/signup", h.Auth.Signup)
	api.POST("/auth/refresh", h.Auth.Refresh)

	api.GET("/properties", h.Catalog.ListProperties)
	api.GET("/properties/featured", h.Catalog.FeaturedProperties)
	api.GET("/properties/:id", h.Catalog.GetProperty)
	api.GET("/agents", h.Catalog.ListAgents)
	api.GET("/agents/specialties", h.Catalog.Specialties)
	api.GET("/agents/:id", h.Catalog.GetAgent)
	api.GET("/insights", h.Catalog.MarketInsights)
	api.GET("/insights/:area", h.Catalog.MarketInsight)

	api.POST("/tools/mortgage", h.Calculator.Mortgage)
	api.POST("/tools/affordability", h.Calculator.Affordability)
	api.POST("/tools/rent", h.Calculator.Rent)
	api.POST("/tools/roi", h.Calculator.ROI)

	// Secured routes (require JWT authentication and the matching active session)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  jwtService.Secret(),
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		NewClaimsFunc: func(echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: "missing or invalid token",
				Code:  "INVALID_TOKEN",
			})
		},
	}), requireSession(authService))

	secured.POST("/auth/logout", h.Auth.Logout)
	secured.GET("/me", h.Auth.Me)
	secured.GET("/me/saved", h.Dashboard.SavedProperties)
	secured.PUT("/me/saved/:id", h.Dashboard.SaveProperty)
	secured.DELETE("/me/saved/:id", h.Dashboard.UnsaveProperty)
	secured.GET("/dashboard", h.Dashboard.Dashboard)

	admin := secured.Group("/admin", requireRole(model.RoleAdmin))
	admin.GET("/accounts", h.Account.ListAccounts)
	admin.POST("/seed", h.Seed.SeedAccounts)
}

// requireSession admits tokens that are not revoked and belong to the active session.
func requireSession(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			claims, ok := token.Claims.(*auth.Claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			account, err := authService.Authorize(c.Request().Context(), claims)
			if err != nil {
				if stderrors.Is(err, service.ErrInvalidAccessToken) {
					return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
						Error: err.Error(),
						Code:  "INVALID_TOKEN",
					})
				}
				httpErr := errors.MapErrorToHTTP(err)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}

			c.Set(handler.ContextAccountKey, account)
			c.Set(handler.ContextClaimsKey, claims)
			return next(c)
		}
	}
}

func requireRole(role model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			account, ok := c.Get(handler.ContextAccountKey).(*model.Account)
			if !ok || account.Role != role {
				httpErr := errors.MapErrorToHTTP(errors.ErrForbidden)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			return next(c)
		}
	}
}

func requestLogger(log *zap.SugaredLogger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				log.Warnw("request failed", append(fields, "error", v.Error)...)
				return nil
			}
			log.Infow("request", fields...)
			return nil
		},
	})
}

var kenyanPhone = regexp.MustCompile(`^\+254\d{9}$`)

// NewValidator returns the request validator with the ke_phone tag registered.
func NewValidator() *CustomValidator {
	v := validator.New()
	_ = v.RegisterValidation("ke_phone", func(fl validator.FieldLevel) bool {
		return kenyanPhone.MatchString(fl.Field().String())
	})
	return &CustomValidator{validator: v}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
