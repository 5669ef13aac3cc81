package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kenyareal/internal/auth"
	"kenyareal/internal/cache"
	"kenyareal/internal/config"
	"kenyareal/internal/handler"
	"kenyareal/internal/logging"
	"kenyareal/internal/repository"
	"kenyareal/internal/service"
)

type testServer struct {
	e *echo.Echo
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	log := logging.Test(t)

	mr := miniredis.RunT(t)
	cacheClient := cache.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = cacheClient.Close() })

	accountRepo := repository.NewAccountRepository(repository.NewMemoryDocumentStore())
	catalogRepo, err := repository.NewCatalogRepository()
	require.NoError(t, err)

	sessions := service.NewSessionService(accountRepo, service.SessionOptions{LoginLatency: -1, SignupLatency: -1, Logger: log})
	require.NoError(t, sessions.Init(context.Background()))

	jwtService := auth.NewJWTService("test-secret")
	authService := service.NewAuthService(sessions, jwtService, auth.NewTokenStore(cacheClient), log)
	catalog := service.NewCatalogService(catalogRepo, cacheClient)
	accounts := service.NewAccountService(accountRepo, sessions)

	e := echo.New()
	Register(e, &config.Config{CORSOrigins: []string{"http://localhost:5173"}}, log, jwtService, authService, Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Catalog:    handler.NewCatalogHandler(catalog),
		Calculator: handler.NewCalculatorHandler(),
		Dashboard:  handler.NewDashboardHandler(sessions, catalog, accounts),
		Account:    handler.NewAccountHandler(accounts),
		Seed:       handler.NewSeedHandler(accounts),
	})
	return &testServer{e: e}
}

func (s *testServer) do(t *testing.T, method, path, body, token string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	var out map[string]any
	if strings.HasPrefix(strings.TrimSpace(rec.Body.String()), "{") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec, out
}

func (s *testServer) login(t *testing.T, email, password string) map[string]any {
	t.Helper()
	rec, body := s.do(t, http.MethodPost, "/api/auth/login", `{"email":"`+email+`","password":"`+password+`"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return body
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)
	rec, _ := s.do(t, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestLoginFlow(t *testing.T) {
	s := newTestServer(t)

	body := s.login(t, "buyer@example.com", "password123")
	assert.Equal(t, true, body["success"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "John Buyer", user["name"])
	assert.NotContains(t, user, "password")
	token := body["access_token"].(string)

	rec, me := s.do(t, http.MethodGet, "/api/me", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "buyer@example.com", me["email"])

	rec, refreshed := s.do(t, http.MethodPost, "/api/auth/refresh", `{"refresh_token":"`+body["refresh_token"].(string)+`"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, refreshed["access_token"])

	rec, _ = s.do(t, http.MethodPost, "/api/auth/logout", `{"refresh_token":"`+body["refresh_token"].(string)+`"}`, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = s.do(t, http.MethodGet, "/api/me", "", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	rec, _ = s.do(t, http.MethodPost, "/api/auth/refresh", `{"refresh_token":"`+body["refresh_token"].(string)+`"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginFailures(t *testing.T) {
	s := newTestServer(t)

	rec, body := s.do(t, http.MethodPost, "/api/auth/login", `{"email":"nobody@example.com","password":"x"}`, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "No account found for that email.", body["error"])

	rec, body = s.do(t, http.MethodPost, "/api/auth/login", `{"email":"buyer@example.com","password":"x"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Incorrect password.", body["error"])

	rec, body = s.do(t, http.MethodPost, "/api/auth/login", `not json`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, body["success"])
}

func TestSignup(t *testing.T) {
	s := newTestServer(t)

	rec, body := s.do(t, http.MethodPost, "/api/auth/signup",
		`{"name":"Akinyi","email":"akinyi@example.com","password":"secret1","phone":"+254712345678","role":"agent"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "agent", body["user"].(map[string]any)["role"])

	rec, body = s.do(t, http.MethodPost, "/api/auth/signup",
		`{"name":"Akinyi","email":"AKINYI@example.com","password":"secret1","phone":"+254712345678","role":"buyer"}`, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "A user with that email already exists.", body["error"])

	rec, body = s.do(t, http.MethodPost, "/api/auth/signup",
		`{"name":"Root","email":"root@example.com","password":"secret1","phone":"+254712345678","role":"admin"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid role.", body["error"])

	rec, body = s.do(t, http.MethodPost, "/api/auth/signup",
		`{"name":"Bad","email":"bad@example.com","password":"secret1","phone":"0712345678","role":"buyer"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_REQUEST", body["code"])
}

func TestSecuredRequiresToken(t *testing.T) {
	s := newTestServer(t)

	rec, _ := s.do(t, http.MethodGet, "/api/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	rec, _ = s.do(t, http.MethodGet, "/api/dashboard", "", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDashboardByRole(t *testing.T) {
	s := newTestServer(t)

	token := s.login(t, "buyer@example.com", "password123")["access_token"].(string)
	rec, body := s.do(t, http.MethodGet, "/api/dashboard", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "buyer", body["role"])
	assert.Len(t, body["savedProperties"], 2)

	rec, _ = s.do(t, http.MethodGet, "/api/admin/accounts", "", token)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	token = s.login(t, service.AdminEmail, "admin123")["access_token"].(string)
	rec, body = s.do(t, http.MethodGet, "/api/dashboard", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", body["role"])
	assert.Equal(t, float64(4), body["catalog"].(map[string]any)["properties"])
	assert.Equal(t, float64(1), body["accounts"].(map[string]any)["buyer"])

	rec, _ = s.do(t, http.MethodGet, "/api/admin/accounts", "", token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestSavedProperties(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "buyer@example.com", "password123")["access_token"].(string)

	rec, body := s.do(t, http.MethodPut, "/api/me/saved/4", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{"1", "2", "4"}, body["savedProperties"])

	rec, _ = s.do(t, http.MethodPut, "/api/me/saved/404", "", token)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, body = s.do(t, http.MethodDelete, "/api/me/saved/1", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{"2", "4"}, body["savedProperties"])
}

func TestAdminSeedEndsSession(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, service.AdminEmail, "admin123")["access_token"].(string)

	rec, body := s.do(t, http.MethodPost, "/api/admin/seed", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(3), body["count"])

	rec, _ = s.do(t, http.MethodGet, "/api/me", "", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCatalogRoutes(t *testing.T) {
	s := newTestServer(t)

	rec, _ := s.do(t, http.MethodGet, "/api/properties?status=for-rent&sort=price-low", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var props []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &props))
	require.Len(t, props, 2)
	assert.Equal(t, "3", props[0]["id"])

	rec, _ = s.do(t, http.MethodGet, "/api/properties?bedrooms=many", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, body := s.do(t, http.MethodGet, "/api/properties/2", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Karen", body["location"].(map[string]any)["area"])

	rec, _ = s.do(t, http.MethodGet, "/api/properties/featured", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = s.do(t, http.MethodGet, "/api/agents/specialties", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Luxury Homes")

	rec, _ = s.do(t, http.MethodGet, "/api/agents/7", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, body = s.do(t, http.MethodGet, "/api/insights/westlands", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Westlands", body["area"])
}

func TestCalculatorRoutes(t *testing.T) {
	s := newTestServer(t)

	rec, body := s.do(t, http.MethodPost, "/api/tools/mortgage",
		`{"price":"3,000,000","downPayment":"600000","interestRate":"12.5","termYears":"20"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, 27267.37, body["monthlyPayment"].(float64), 0.01)
	assert.Equal(t, "KES 27,267", body["display"].(map[string]any)["monthlyPayment"])

	rec, body = s.do(t, http.MethodPost, "/api/tools/rent",
		`{"monthlyIncome":"80000","otherExpenses":"25000","rentPercent":"30"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(24000), body["maxRent"])
	assert.Equal(t, true, body["affordable"])

	rec, body = s.do(t, http.MethodPost, "/api/tools/roi",
		`{"purchasePrice":"3000000","downPayment":"600000","monthlyRent":"55000","monthlyExpenses":"8000","annualAppreciation":"5","holdingYears":"5"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "excellent", body["rating"])

	rec, body = s.do(t, http.MethodPost, "/api/tools/mortgage",
		`{"price":3000000,"downPayment":600000,"interestRate":12.5,"termYears":20}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, 27267.37, body["monthlyPayment"].(float64), 0.01)

	rec, body = s.do(t, http.MethodPost, "/api/tools/mortgage", `{"price":"1e99999999","downPayment":"0","interestRate":"10","termYears":"10"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), body["monthlyPayment"])

	rec, body = s.do(t, http.MethodPost, "/api/tools/affordability", `{"annualIncome":"abc"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), body["maxPrice"])
}

func TestValidator_KenyanPhone(t *testing.T) {
	v := NewValidator()
	type form struct {
		Phone string `validate:"ke_phone"`
	}
	assert.NoError(t, v.Validate(&form{Phone: "+254722123456"}))
	assert.Error(t, v.Validate(&form{Phone: "+25472212345"}))
	assert.Error(t, v.Validate(&form{Phone: "0722123456"}))
}
