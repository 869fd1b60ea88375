package guild_settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/studyhall/internal/models"
	"github.com/redis/go-redis/v9"
)

const guildSettingsKeyPrefix = "guild_settings:"

// ErrSettingsNotFound is returned when a server has never saved settings
var ErrSettingsNotFound = errors.New("guild settings not found")

// Config holds configuration for the Redis guild settings repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed guild settings repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// GetSettings retrieves a server's settings
func (r *redisRepository) GetSettings(ctx context.Context, guildID string) (*models.GuildSettings, error) {
	if guildID == "" {
		return nil, errors.New("guild ID cannot be empty")
	}

	settingsJSON, err := r.client.Get(ctx, guildSettingsKeyPrefix+guildID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to get guild settings: %w", err)
	}

	var settings models.GuildSettings
	if err := json.Unmarshal([]byte(settingsJSON), &settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal guild settings: %w", err)
	}

	return &settings, nil
}

// SaveSettings creates or replaces a server's settings
func (r *redisRepository) SaveSettings(ctx context.Context, settings *models.GuildSettings) error {
	if settings == nil || settings.GuildID == "" {
		return errors.New("settings and guild ID cannot be empty")
	}

	settingsJSON, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal guild settings: %w", err)
	}

	if err := r.client.Set(ctx, guildSettingsKeyPrefix+settings.GuildID, settingsJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save guild settings: %w", err)
	}

	return nil
}
