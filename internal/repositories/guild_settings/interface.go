package guild_settings

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/studyhall/internal/repositories/guild_settings Repository

import (
	"context"

	"github.com/KirkDiggler/studyhall/internal/models"
)

// Repository stores per-server settings
type Repository interface {
	// GetSettings retrieves a server's settings
	GetSettings(ctx context.Context, guildID string) (*models.GuildSettings, error)

	// SaveSettings creates or replaces a server's settings
	SaveSettings(ctx context.Context, settings *models.GuildSettings) error
}
