package database

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/gustavogago/Produto-de-software/internal/infrastructure/database/entities"
)

// AutoMigrate applies database schema changes for the marketplace domain.
func AutoMigrate(ctx context.Context, db *gorm.DB, log zerolog.Logger) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&entities.Category{},
		&entities.City{},
		&entities.UserProfile{},
		&entities.Item{},
		&entities.ItemPhoto{},
		&entities.Conversation{},
		&entities.Message{},
		&entities.Notification{},
	); err != nil {
		return err
	}

	log.Info().Msg("database schema up to date")
	return nil
}
