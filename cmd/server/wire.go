//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
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
	catalogrepo "github.com/gustavogago/Produto-de-software/internal/infrastructure/repository/catalog"
	chatrepo "github.com/gustavogago/Produto-de-software/internal/infrastructure/repository/chat"
	notificationrepo "github.com/gustavogago/Produto-de-software/internal/infrastructure/repository/notification"
	profilerepo "github.com/gustavogago/Produto-de-software/internal/infrastructure/repository/profile"
	"github.com/gustavogago/Produto-de-software/internal/interfaces/httpserver"
)

var marketplaceSet = wire.NewSet(
	chatrepo.NewConversationRepository,
	wire.Bind(new(chat.ConversationRepository), new(*chatrepo.ConversationRepository)),
	chatrepo.NewMessageRepository,
	wire.Bind(new(chat.MessageRepository), new(*chatrepo.MessageRepository)),
	catalogrepo.NewItemRepository,
	wire.Bind(new(catalog.ItemRepository), new(*catalogrepo.ItemRepository)),
	catalogrepo.NewCategoryRepository,
	wire.Bind(new(catalog.CategoryRepository), new(*catalogrepo.CategoryRepository)),
	catalogrepo.NewCityRepository,
	wire.Bind(new(catalog.CityRepository), new(*catalogrepo.CityRepository)),
	profilerepo.NewPostgresRepository,
	wire.Bind(new(profile.Repository), new(*profilerepo.PostgresRepository)),
	notificationrepo.NewPostgresRepository,
	wire.Bind(new(notification.Repository), new(*notificationrepo.PostgresRepository)),
	identity.NewResolver,
	wire.Bind(new(chat.IdentityResolver), new(*identity.Resolver)),
	newMediaClient,
	wire.Bind(new(catalog.MediaClient), new(*mediaclient.Client)),
	notification.NewService,
	wire.Bind(new(chat.Notifier), new(notification.Service)),
	newChatService,
	newCatalogService,
	profile.NewService,
)

// BuildApplication demonstrates how to assemble the marketplace services with Wire.
func BuildApplication(ctx context.Context) (*Application, error) {
	wire.Build(
		config.Load,
		logger.New,
		newDatabaseConfig,
		newGormDB,
		newAuthValidator,
		marketplaceSet,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}

func newDatabaseConfig(cfg *config.Config) database.Config {
	return database.Config{
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Warn,
	}
}

func newGormDB(ctx context.Context, cfg database.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(ctx, db, log); err != nil {
		return nil, err
	}
	return db, nil
}

func newAuthValidator(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*auth.Validator, error) {
	return auth.NewValidator(ctx, cfg, log)
}

func newMediaClient(cfg *config.Config) *mediaclient.Client {
	return mediaclient.NewClient(cfg.MediaAPIURL)
}

func newChatService(
	cfg *config.Config,
	conversations chat.ConversationRepository,
	messages chat.MessageRepository,
	identityResolver chat.IdentityResolver,
	notifier chat.Notifier,
	log zerolog.Logger,
) chat.Service {
	return chat.NewService(conversations, messages, identityResolver, notifier, cfg.MessagePageLimit, log)
}

func newCatalogService(
	cfg *config.Config,
	items catalog.ItemRepository,
	categories catalog.CategoryRepository,
	cities catalog.CityRepository,
	media catalog.MediaClient,
	log zerolog.Logger,
) catalog.Service {
	return catalog.NewService(items, categories, cities, media, cfg.MaxPhotosPerItem, log)
}
