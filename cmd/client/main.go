package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/pawkit/pawkit/internal/client/api"
	"github.com/pawkit/pawkit/internal/client/auth"
	"github.com/pawkit/pawkit/internal/client/cli"
	"github.com/pawkit/pawkit/internal/client/data"
	"github.com/pawkit/pawkit/internal/client/iocli"
	"github.com/pawkit/pawkit/internal/client/queue"
	"github.com/pawkit/pawkit/internal/client/session"
	"github.com/pawkit/pawkit/internal/client/storage/boltdb"
	syncengine "github.com/pawkit/pawkit/internal/client/sync"
	"github.com/pawkit/pawkit/internal/client/transfer"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги. Значения по умолчанию можно переопределить
	// переменными окружения, флаг имеет приоритет
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", envOr("PAWKIT_SERVER", "http://localhost:8080"), "Server URL")
	dbPath := flag.String("db", envOr("PAWKIT_DB", "pawkit.db"), "Path to local database")
	workspaceID := flag.String("workspace", envOr("PAWKIT_WORKSPACE", "default"), "Workspace to operate on")
	password := flag.String("password", "", "Account password (not recommended, use PAWKIT_PASSWORD or --password-file)")
	passwordFile := flag.String("password-file", "", "Path to file containing account password")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := newLogger()

	// Получаем команду и ее аргументы
	args := flag.Args()
	command := ""
	commandArgs := []string{}
	if len(args) > 0 {
		command = args[0]
		commandArgs = args[1:]
	}

	// Контекст живет до Ctrl+C / SIGTERM: важен для sync --watch
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Logout в другой сессии устройства останавливает и эту сессию
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Создаем API клиент
	apiClient := api.NewClient(*serverURL)

	// Канал сессий устройства: каталог рядом с базой, общий для всех
	// процессов с этим же --db
	sessionID := uuid.New().String()
	transport := session.NewDeviceTransport(*dbPath+".channel", sessionID, logger)
	coordinator := session.NewCoordinator(transport, sessionID, logger)
	defer func() {
		if err := coordinator.Close(); err != nil {
			logger.Error("failed to close session channel", "error", err)
		}
	}()
	coordinator.OnLogout(func() {
		logger.Warn("another session logged out, stopping")
		cancel()
	})

	// Собираем граф сервисов
	authService := auth.NewService(apiClient, boltStorage, logger)
	resolver := syncengine.NewResolver(boltStorage, logger)
	queueService := queue.NewService(boltStorage, boltStorage, apiClient, resolver, logger)
	dataService := data.NewService(boltStorage, queueService, resolver, *workspaceID, logger)
	orchestrator := syncengine.NewOrchestrator(apiClient, boltStorage, boltStorage, queueService, logger)

	engine := syncengine.NewEngine(syncengine.Config{
		WorkspaceID: *workspaceID,
		Token:       authService.Token,
	}, apiClient, orchestrator, queueService, coordinator, logger)
	defer engine.Close()

	runner := cli.New(cli.Deps{
		IO:       iocli.NewStdio(),
		Auth:     authService,
		Data:     dataService,
		Queue:    queueService,
		Syncer:   engine,
		Peers:    coordinator,
		Purger:   boltStorage,
		Transfer: newTransferProvider(logger),
	}, cli.Passwords{
		FromFile: *passwordFile,
		FromArgs: *password,
	})

	// Выполняем команду
	if err := runner.Run(ctx, command, commandArgs); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newTransferProvider выбирает хранилище резервных копий: S3 при
// заданном PAWKIT_S3_ENDPOINT, иначе локальный каталог pawkit-backups
func newTransferProvider(logger *slog.Logger) transfer.Provider {
	endpoint := os.Getenv("PAWKIT_S3_ENDPOINT")
	if endpoint == "" {
		return transfer.NewLocalDir(envOr("PAWKIT_BACKUP_DIR", "pawkit-backups"))
	}

	s3, err := transfer.NewS3(transfer.S3Config{
		Endpoint:  endpoint,
		AccessKey: os.Getenv("PAWKIT_S3_ACCESS_KEY"),
		SecretKey: os.Getenv("PAWKIT_S3_SECRET_KEY"),
		Bucket:    envOr("PAWKIT_S3_BUCKET", "pawkit-backups"),
		UseSSL:    os.Getenv("PAWKIT_S3_USE_SSL") == "true",
	})
	if err != nil {
		logger.Warn("s3 backup storage unavailable, falling back to local directory", "error", err)
		return transfer.NewLocalDir(envOr("PAWKIT_BACKUP_DIR", "pawkit-backups"))
	}
	return s3
}

// newLogger настраивает логирование клиента: stderr, чтобы не мешать
// выводу команд. PAWKIT_DEBUG=1 включает debug-уровень
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if os.Getenv("PAWKIT_DEBUG") != "" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// envOr возвращает значение переменной окружения или fallback
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func printVersion() {
	fmt.Printf("Pawkit Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
