package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/pawkit/pawkit/internal/server/handlers"
	"github.com/pawkit/pawkit/internal/server/jwt"
	"github.com/pawkit/pawkit/internal/server/middleware"
	"github.com/pawkit/pawkit/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 30 * 24 * time.Hour

	// Период фоновой чистки истекших refresh token'ов
	tokenCleanupInterval = 1 * time.Hour

	shutdownTimeout = 10 * time.Second
)

func main() {
	// Parse flags
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", envOr("PAWKIT_ADDR", ":8080"), "Address to listen on")
	dbPath := flag.String("db", envOr("PAWKIT_SERVER_DB", "pawkit-server.db"), "Path to SQLite database")
	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := newLogger()

	// Секрет подписи JWT обязателен: без него сервер не стартует
	jwtSecret := os.Getenv("PAWKIT_JWT_SECRET")
	if jwtSecret == "" {
		logger.Error("PAWKIT_JWT_SECRET is not set")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Открываем SQLite storage, миграции применяются при старте
	store, err := sqlite.New(ctx, *dbPath)
	if err != nil {
		logger.Error("failed to open database", "error", err, "path", *dbPath)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	jwtService := jwt.NewService(jwtSecret, accessTokenTTL, refreshTokenTTL)

	// Фоновая чистка истекших refresh token'ов
	go cleanupExpiredTokens(ctx, store, logger)

	server := &http.Server{
		Addr:              *addr,
		Handler:           newRouter(logger, store, jwtService),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			"addr", *addr,
			"version", Version,
			"db", *dbPath)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}

	// Graceful shutdown: даем активным запросам завершиться
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}

	logger.Info("server stopped")
}

// newRouter собирает маршруты и цепочку middleware.
// Литеральные сегменты (auth, health) имеют приоритет над {type},
// поэтому auth-маршруты не перехватываются entity-обработчиками.
func newRouter(logger *slog.Logger, store *sqlite.Storage, jwtService *jwt.Service) http.Handler {
	authHandler := handlers.NewAuthHandler(logger, store, store, jwtService)
	entityHandler := handlers.NewEntityHandler(logger, store)
	healthHandler := handlers.NewHealthHandler(logger, store.DB(), Version)

	// Entity-маршруты доступны только с действующим access token
	protect := middleware.AuthMiddleware(logger, jwtService)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)

	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/v1/auth/refresh", authHandler.Refresh)
	mux.HandleFunc("POST /api/v1/auth/logout", authHandler.Logout)

	mux.Handle("GET /api/v1/{type}", protect(http.HandlerFunc(entityHandler.List)))
	mux.Handle("POST /api/v1/{type}", protect(http.HandlerFunc(entityHandler.Create)))
	mux.Handle("PATCH /api/v1/{type}/{id}", protect(http.HandlerFunc(entityHandler.Update)))
	mux.Handle("DELETE /api/v1/{type}/{id}", protect(http.HandlerFunc(entityHandler.Delete)))

	// Auth-эндпоинты ограничиваем жестче: по ним перебирают пароли.
	// Общий лимит щедрый, sync-движок клиентов опрашивает API постоянно
	rateLimit := middleware.RateLimitByPathMiddleware([]middleware.PathRateLimit{
		{Path: "/api/v1/auth/register", Rate: 5, Window: 1 * time.Minute},
		{Path: "/api/v1/auth/login", Rate: 10, Window: 1 * time.Minute},
		{Path: "/api/v1/auth/refresh", Rate: 30, Window: 1 * time.Minute},
	}, 600, 1*time.Minute, logger)

	logging := middleware.LoggingWithSkip(logger, []string{"/api/v1/health"})
	recovery := middleware.RecoveryMiddleware(logger)

	return recovery(logging(rateLimit(mux)))
}

// cleanupExpiredTokens периодически удаляет истекшие refresh token'ы
func cleanupExpiredTokens(ctx context.Context, store *sqlite.Storage, logger *slog.Logger) {
	ticker := time.NewTicker(tokenCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := store.DeleteExpiredTokens(ctx)
			if err != nil {
				logger.Error("failed to delete expired tokens", "error", err)
				continue
			}
			if deleted > 0 {
				logger.Info("expired refresh tokens deleted", "count", deleted)
			}
		}
	}
}

// newLogger настраивает структурированное логирование: JSON в stdout,
// при заданном PAWKIT_LOG_FILE пишем в файл с ротацией
func newLogger() *slog.Logger {
	var out io.Writer = os.Stdout
	if logFile := os.Getenv("PAWKIT_LOG_FILE"); logFile != "" {
		out = &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    100, // мегабайты
			MaxBackups: 3,
			MaxAge:     28, // дни
			Compress:   true,
		}
	}

	level := slog.LevelInfo
	if os.Getenv("PAWKIT_DEBUG") != "" {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
}

// envOr возвращает значение переменной окружения или fallback
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func printVersion() {
	fmt.Printf("Pawkit Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
