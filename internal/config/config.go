package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds process configuration read from the environment
type Config struct {
	// Discord
	DiscordToken  string
	ApplicationID string

	// GuildID registers commands for one server during development
	GuildID string

	// Redis
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Study session tuning
	MinDurationMinutes      int
	PointsPerMinute         int
	VoteWindow              time.Duration
	PresencePointsPerMinute int
	SettlementConcurrency   int
	CompletedChannelName    string
}

// Load reads a .env file if one exists, then the process environment.
// Values already set in the environment win over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Config: failed to read .env: %v", err)
	}

	cfg := &Config{
		DiscordToken:         os.Getenv("DISCORD_TOKEN"),
		ApplicationID:        os.Getenv("APPLICATION_ID"),
		GuildID:              os.Getenv("GUILD_ID"),
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:        os.Getenv("REDIS_PASSWORD"),
		CompletedChannelName: getEnv("STUDY_COMPLETED_CHANNEL_NAME", "Study Completed"),
	}

	var err error
	if cfg.RedisDB, err = getInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.MinDurationMinutes, err = getInt("STUDY_MIN_DURATION_MINUTES", 4); err != nil {
		return nil, err
	}
	if cfg.PointsPerMinute, err = getInt("STUDY_POINTS_PER_MINUTE", 10); err != nil {
		return nil, err
	}
	if cfg.PresencePointsPerMinute, err = getInt("STUDY_PRESENCE_POINTS_PER_MINUTE", 1); err != nil {
		return nil, err
	}
	if cfg.SettlementConcurrency, err = getInt("STUDY_SETTLEMENT_CONCURRENCY", 4); err != nil {
		return nil, err
	}

	voteWindowSeconds, err := getInt("STUDY_VOTE_WINDOW_SECONDS", 60)
	if err != nil {
		return nil, err
	}
	cfg.VoteWindow = time.Duration(voteWindowSeconds) * time.Second

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return n, nil
}
