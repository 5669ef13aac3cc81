package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"kenyareal/internal/auth"
	"kenyareal/internal/cache"
	"kenyareal/internal/config"
	"kenyareal/internal/db"
	"kenyareal/internal/handler"
	"kenyareal/internal/logging"
	"kenyareal/internal/repository"
	"kenyareal/internal/router"
	"kenyareal/internal/service"
)

// @title KenyaReal API
// @version 1.0
// @description Property listings, agent directory, market insights, financial calculators and session-based authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer func() { _ = cacheClient.Close() }()
	if err := cacheClient.Ping(ctx); err != nil {
		// the property cache and token store degrade to misses without redis
		log.Warnw("redis unavailable", "addr", cfg.RedisAddr, "error", err)
	}

	store, closeStore, err := db.OpenDocumentStore(ctx, cfg, cacheClient, log.Named("store"), os.Getenv("RESET_DB") == "true")
	if err != nil {
		return fmt.Errorf("document store: %w", err)
	}
	defer func() { _ = closeStore() }()

	credentials, err := auth.NewCredentials(cfg.PasswordHashing)
	if err != nil {
		return err
	}

	// Initialize repositories
	accountRepo := repository.NewAccountRepository(store)
	catalogRepo, err := repository.NewCatalogRepository()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	sessions := service.NewSessionService(accountRepo, service.SessionOptions{
		LoginLatency:  latency(cfg.LoginLatency),
		SignupLatency: latency(cfg.SignupLatency),
		Credentials:   credentials,
		Logger:        log.Named("session"),
	})
	if err := sessions.Init(ctx); err != nil {
		return fmt.Errorf("init sessions: %w", err)
	}
	authService := service.NewAuthService(sessions, jwtService, tokenStore, log.Named("auth"))
	catalogService := service.NewCatalogService(catalogRepo, cacheClient)
	accountService := service.NewAccountService(accountRepo, sessions)

	e := echo.New()
	e.HideBanner = true
	router.Register(e, cfg, log.Named("http"), jwtService, authService, router.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Catalog:    handler.NewCatalogHandler(catalogService),
		Calculator: handler.NewCalculatorHandler(),
		Dashboard:  handler.NewDashboardHandler(sessions, catalogService, accountService),
		Account:    handler.NewAccountHandler(accountService),
		Seed:       handler.NewSeedHandler(accountService),
	})

	swaggerHost := cfg.SwaggerHost
	if swaggerHost == "" {
		swaggerHost = "localhost:" + cfg.ServerPort
	}
	log.Infow("swagger documentation available", "url", "http://"+swaggerHost+"/swagger/index.html")

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.ServerPort
		log.Infow("server listening", "addr", addr, "store", cfg.StoreDriver)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server start: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	log.Infow("shutting down")
	return e.Shutdown(shutdownCtx)
}

// latency maps a configured zero to "no delay"; SessionOptions reads zero as the default.
func latency(d time.Duration) time.Duration {
	if d == 0 {
		return -1
	}
	return d
}
