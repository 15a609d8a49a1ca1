package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"

	"github.com/gustavogago/Produto-de-software/internal/config"
	"github.com/gustavogago/Produto-de-software/internal/domain/catalog"
	"github.com/gustavogago/Produto-de-software/internal/domain/chat"
	"github.com/gustavogago/Produto-de-software/internal/domain/notification"
	"github.com/gustavogago/Produto-de-software/internal/domain/profile"
	"github.com/gustavogago/Produto-de-software/internal/infrastructure/auth"
	"github.com/gustavogago/Produto-de-software/internal/infrastructure/database"
	"github.com/gustavogago/Produto-de-software/internal/infrastructure/identity"
	"github.com/gustavogago/Produto-de-software/internal/infrastructure/logger"
	"github.com/gustavogago/Produto-de-software/internal/infrastructure/mediaclient"
	"github.com/gustavogago/Produto-de-software/internal/infrastructure/observability"
	"github.com/gustavogago/Produto-de-software/internal/infrastructure/queue"
	catalogrepo "github.com/gustavogago/Produto-de-software/internal/infrastructure/repository/catalog"
	chatrepo "github.com/gustavogago/Produto-de-software/internal/infrastructure/repository/chat"
	notificationrepo "github.com/gustavogago/Produto-de-software/internal/infrastructure/repository/notification"
	profilerepo "github.com/gustavogago/Produto-de-software/internal/infrastructure/repository/profile"
	"github.com/gustavogago/Produto-de-software/internal/infrastructure/webhook"
	"github.com/gustavogago/Produto-de-software/internal/interfaces/httpserver"
	"github.com/gustavogago/Produto-de-software/internal/worker"
)

// @title Marketplace API
// @version 1.0
// @description Classifieds backend with per-user listings, 1:1 conversations, and queued notifications.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
type Application struct {
	httpServer *httpserver.HttpServer
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HttpServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	db, err := database.Connect(database.Config{
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Warn,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	if err := database.AutoMigrate(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	authValidator, err := auth.NewValidator(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize auth validator")
	}

	conversationRepository := chatrepo.NewConversationRepository(db)
	messageRepository := chatrepo.NewMessageRepository(db)
	itemRepository := catalogrepo.NewItemRepository(db)
	categoryRepository := catalogrepo.NewCategoryRepository(db)
	cityRepository := catalogrepo.NewCityRepository(db)
	profileRepository := profilerepo.NewPostgresRepository(db)
	notificationRepository := notificationrepo.NewPostgresRepository(db)

	identityResolver := identity.NewResolver(db)
	mediaClient := mediaclient.NewClient(cfg.MediaAPIURL)

	notificationService := notification.NewService(notificationRepository, identityResolver, log)
	chatService := chat.NewService(
		conversationRepository,
		messageRepository,
		identityResolver,
		notificationService,
		cfg.MessagePageLimit,
		log,
	)
	catalogService := catalog.NewService(
		itemRepository,
		categoryRepository,
		cityRepository,
		mediaClient,
		cfg.MaxPhotosPerItem,
		log,
	)
	profileService := profile.NewService(profileRepository, log)

	// Background delivery of queued notifications
	taskQueue := queue.NewPostgresQueue(db, log)
	webhookService := webhook.NewHTTPService(cfg.NotifyWebhookURL, log)
	workerPool := worker.NewPool(
		taskQueue,
		webhookService,
		worker.Config{
			WorkerCount: cfg.NotifyWorkerCount,
			TaskTimeout: cfg.NotifyTaskTimeout,
		},
		log,
	)

	if err := workerPool.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("start worker pool")
	}
	defer func() {
		log.Info().Msg("stopping worker pool")
		workerPool.Stop()
	}()

	httpServer := httpserver.New(cfg, log, chatService, catalogService, profileService, notificationService, authValidator)
	app := NewApplication(httpServer, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
