package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/gorm"

	"recruitpro/internal/common/pagination"
	"recruitpro/internal/infra/adapter/persistence/gormdb"
	pgRepo "recruitpro/internal/infra/adapter/persistence/postgres"
	sqliteRepo "recruitpro/internal/infra/adapter/persistence/sqlite"
	"recruitpro/internal/infra/db"
	"recruitpro/internal/observability/logging"
	"recruitpro/internal/observability/slo"
	"recruitpro/internal/observability/tracing"
	"recruitpro/internal/render"
	"recruitpro/internal/repository"
	"recruitpro/internal/resilience/circuitbreaker"
	"recruitpro/internal/security/nonce"
	"recruitpro/internal/settings"
	"recruitpro/pkg/config"
	"recruitpro/pkg/security/csp"

	listingUC "recruitpro/internal/usecase/listing"

	hhttp "recruitpro/internal/handler/http"
	hadmin "recruitpro/internal/handler/http/admin"
	hauth "recruitpro/internal/handler/http/auth"
	hlisting "recruitpro/internal/handler/http/listing"
	"recruitpro/internal/handler/http/middleware"
	"recruitpro/internal/handler/http/requestid"
	"recruitpro/internal/handler/http/session"
)

func main() {
	logger := logging.NewFromEnv()
	slog.SetDefault(logger)

	shutdownTracing := tracing.Init(config.GetEnvFloat("TRACE_SAMPLE_RATIO", 1.0))
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("failed to shut down tracing", slog.Any("error", err))
		}
	}()

	admin := loadAdmin(logger)
	nonces := initNonces(logger)

	driver := config.GetEnvString("DB_DRIVER", db.DriverPostgres)
	database := initDatabase(logger, driver)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	version := config.GetEnvString("VERSION", "dev")
	components := setupServer(logger, database, driver, admin, nonces, version)

	runServer(logger, components, version)
}

// loadAdmin reads the admin credentials and JWT secret. The server refuses
// to start without them.
func loadAdmin(logger *slog.Logger) *hauth.Admin {
	admin, err := hauth.LoadAdmin()
	if err != nil {
		logger.Error("admin configuration invalid", slog.Any("error", err))
		os.Exit(1)
	}
	return admin
}

// initNonces builds the token manager guarding the AJAX endpoints.
func initNonces(logger *slog.Logger) *nonce.Manager {
	ttl := config.GetEnvDuration("NONCE_TTL", 12*time.Hour)
	if err := config.ValidateDurationRange(ttl, time.Minute, 7*24*time.Hour); err != nil {
		logger.Error("invalid NONCE_TTL", slog.Any("error", err))
		os.Exit(1)
	}
	m, err := nonce.NewManager([]byte(os.Getenv("NONCE_SECRET")), ttl)
	if err != nil {
		logger.Error("invalid NONCE_SECRET", slog.Any("error", err))
		os.Exit(1)
	}
	return m
}

// initDatabase opens the pool, applies the schema and, with SEED_DEMO=true,
// loads demo jobs and posts.
func initDatabase(logger *slog.Logger, driver string) *sql.DB {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	database, err := db.Open(ctx, driver, os.Getenv("DATABASE_URL"))
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := db.MigrateUp(ctx, database, driver); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}

	if config.GetEnvBool("SEED_DEMO", false) {
		store := contentStore(database, driver)
		n, err := db.SeedDemo(ctx, store, time.Now())
		if err != nil {
			logger.Error("failed to seed demo content", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("demo content seeded", slog.Int("items", n))
	}
	return database
}

// contentStore returns the content repository for driver on q. With
// CONTENT_REPO=gorm, Postgres content goes through GORM.
func contentStore(q pgRepo.DBTX, driver string) db.SeedStore {
	if driver == db.DriverSQLite {
		return sqliteRepo.NewContentRepo(q)
	}
	if config.GetEnvString("CONTENT_REPO", "sql") == "gorm" {
		if pool, ok := q.(gorm.ConnPool); ok {
			g, err := gormdb.Open(pool)
			if err == nil {
				return gormdb.NewContentRepo(g)
			}
			slog.Warn("gorm unavailable, using the SQL repository", slog.Any("error", err))
		}
	}
	return pgRepo.NewContentRepo(q)
}

func settingsStore(q pgRepo.DBTX, driver string) repository.SettingsRepository {
	if driver == db.DriverSQLite {
		return sqliteRepo.NewSettingsRepo(q)
	}
	return pgRepo.NewSettingsRepo(q)
}

// ServerComponents holds what runServer needs to serve and clean up.
type ServerComponents struct {
	Handler      http.Handler
	AJAXLimiter  *middleware.IPRateLimiter
	LoginLimiter *middleware.IPRateLimiter
	SLO          *slo.Tracker
}

// setupServer builds the services, routes and middleware chain.
func setupServer(
	logger *slog.Logger,
	database *sql.DB,
	driver string,
	admin *hauth.Admin,
	nonces *nonce.Manager,
	version string,
) *ServerComponents {
	breaker := circuitbreaker.NewDBCircuitBreaker(database)

	var fileDefaults map[string]string
	if path := os.Getenv("SETTINGS_FILE"); path != "" {
		var err error
		if fileDefaults, err = settings.LoadFile(path); err != nil {
			logger.Error("failed to load settings file", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("settings file loaded", slog.String("path", path), slog.Int("keys", len(fileDefaults)))
	}
	settingsSvc := &settings.Service{
		Repo:   settingsStore(breaker, driver),
		File:   fileDefaults,
		Logger: logger,
	}

	listingSvc := &listingUC.Service{
		Repo:     contentStore(breaker, driver),
		Strategy: pagination.OffsetStrategy{},
		Config:   pagination.LoadFromEnv(),
		Logger:   logger,
	}

	renderer, err := render.New()
	if err != nil {
		logger.Error("failed to parse templates", slog.Any("error", err))
		os.Exit(1)
	}

	proxyConfig, err := middleware.LoadTrustedProxyConfig()
	if err != nil {
		logger.Error("failed to load trusted proxy configuration", slog.Any("error", err))
		os.Exit(1)
	}
	var ipExtractor middleware.IPExtractor = middleware.RemoteAddrExtractor{}
	if proxyConfig.Enabled {
		ipExtractor = middleware.NewTrustedProxyExtractor(proxyConfig)
		logger.Info("rate limiting: trusted proxy mode enabled",
			slog.Int("trusted_proxies_count", len(proxyConfig.AllowedCIDRs)))
	}

	ajaxRate := config.LoadAJAXRateLimit()
	ajaxLimiter := middleware.NewIPRateLimiter("ajax", ajaxRate, ipExtractor)
	if ajaxRate.Enabled {
		logger.Info("AJAX rate limiting enabled",
			slog.Float64("requests_per_second", ajaxRate.RequestsPerSecond),
			slog.Int("burst", ajaxRate.Burst))
	} else {
		logger.Warn("AJAX rate limiting is DISABLED - not recommended for production")
	}
	// five login attempts a minute per IP
	loginLimiter := middleware.NewIPRateLimiter("auth", config.RateLimit{
		Enabled:           true,
		RequestsPerSecond: 5.0 / 60,
		Burst:             5,
	}, ipExtractor)

	mux := http.NewServeMux()
	hlisting.Register(mux, &hlisting.Handler{
		Listing:  listingSvc,
		Settings: settingsSvc,
		Renderer: renderer,
		Nonces:   nonces,
		SiteURL:  config.GetEnvString("SITE_URL", "http://localhost:8080"),
		Logger:   logger,
	}, ajaxLimiter.Middleware)
	mux.Handle("GET /{$}", http.RedirectHandler("/jobs", http.StatusFound))

	strict := middleware.SecurityHeaders(csp.StrictPolicy())
	hadmin.Register(mux, settingsSvc, func(next http.Handler) http.Handler {
		return strict(hauth.Authz(admin.Secret)(next))
	}, logger)
	mux.Handle("POST /auth/token", strict(loginLimiter.Middleware(hauth.TokenHandler(admin, logger))))

	hhttp.Register(mux, &hhttp.HealthHandler{
		DB:          database,
		Breaker:     breaker,
		RateLimiter: ajaxLimiter,
		Version:     version,
		Logger:      logger,
	})

	tracker := slo.NewTracker()
	return &ServerComponents{
		Handler:      applyMiddleware(logger, mux, tracker),
		AJAXLimiter:  ajaxLimiter,
		LoginLimiter: loginLimiter,
		SLO:          tracker,
	}
}

// applyMiddleware wraps the mux. The first middleware listed is the
// outermost.
func applyMiddleware(logger *slog.Logger, handler http.Handler, tracker *slo.Tracker) http.Handler {
	policy := csp.ListingPolicy().
		ReportOnly(config.GetEnvBool("CSP_REPORT_ONLY", false)).
		ReportURI(os.Getenv("CSP_REPORT_URI"))

	return hhttp.Chain(handler,
		requestid.Middleware,
		tracing.Middleware,
		hhttp.Recover(logger),
		hhttp.Logging(logger),
		hhttp.MetricsMiddleware,
		tracker.Middleware,
		hhttp.LimitRequest(hhttp.DefaultMaxBodyBytes),
		hhttp.Deadline(config.GetEnvDuration("REQUEST_TIMEOUT", 15*time.Second)),
		middleware.SecurityHeaders(policy),
		session.Middleware(session.Options{
			Secure: config.GetEnvBool("SESSION_COOKIE_SECURE", false),
		}),
	)
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, components *ServerComponents, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interval := config.GetEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute)
	go components.AJAXLimiter.RunCleanup(ctx, interval, 10*time.Minute)
	go components.LoginLimiter.RunCleanup(ctx, interval, 10*time.Minute)
	go components.SLO.Run(ctx, config.GetEnvDuration("SLO_WINDOW", time.Minute), logger)

	addr := config.GetEnvString("HTTP_ADDR", ":8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           components.Handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
