package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/studyhall/internal/common/clock"
	"github.com/KirkDiggler/studyhall/internal/common/code"
	"github.com/KirkDiggler/studyhall/internal/common/uuid"
	"github.com/KirkDiggler/studyhall/internal/config"
	"github.com/KirkDiggler/studyhall/internal/handlers/discord"
	"github.com/KirkDiggler/studyhall/internal/repositories/guild_settings"
	"github.com/KirkDiggler/studyhall/internal/repositories/presence"
	"github.com/KirkDiggler/studyhall/internal/repositories/session_record"
	"github.com/KirkDiggler/studyhall/internal/repositories/user_stats"
	"github.com/KirkDiggler/studyhall/internal/services/messaging"
	"github.com/KirkDiggler/studyhall/internal/services/study"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.DiscordToken == "" {
		log.Fatal("DISCORD_TOKEN environment variable is required")
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	userStatsRepo, err := user_stats.NewRedis(&user_stats.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create user stats repository: %v", err)
	}

	uuidGenerator := uuid.New()

	presenceRepo, err := presence.NewRedis(&presence.Config{
		RedisClient:   redisClient,
		UUIDGenerator: uuidGenerator,
	})
	if err != nil {
		log.Fatalf("Failed to create presence repository: %v", err)
	}

	sessionRecordRepo, err := session_record.NewRedis(&session_record.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create session record repository: %v", err)
	}

	guildSettingsRepo, err := guild_settings.NewRedis(&guild_settings.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create guild settings repository: %v", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	// The platform adapter and the bot share one gateway session
	session, err := discord.NewSession(cfg.DiscordToken)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	platform, err := discord.NewPlatform(&discord.PlatformConfig{
		Session: session,
	})
	if err != nil {
		log.Fatalf("Failed to create platform adapter: %v", err)
	}

	studySvc, err := study.New(&study.Config{
		MinDuration:             cfg.MinDurationMinutes,
		PointsPerMinute:         cfg.PointsPerMinute,
		PresencePointsPerMinute: cfg.PresencePointsPerMinute,
		VoteWindow:              cfg.VoteWindow,
		SettlementConcurrency:   cfg.SettlementConcurrency,
		CompletedChannelName:    cfg.CompletedChannelName,
		Registry:                study.NewRegistry(),
		Clock:                   &clock.DefaultClock{},
		CodeGenerator:           code.New(&code.Config{}),
		UUIDGenerator:           uuidGenerator,
		MemberEnumerator:        platform,
		ChannelController:       platform,
		Notifier:                platform,
		UserStatsRepo:           userStatsRepo,
		PresenceRepo:            presenceRepo,
		SessionRecordRepo:       sessionRecordRepo,
		GuildSettingsRepo:       guildSettingsRepo,
		MessagingService:        messagingSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create study service: %v", err)
	}

	bot, err := discord.New(&discord.Config{
		Session:          session,
		ApplicationID:    cfg.ApplicationID,
		GuildID:          cfg.GuildID,
		StudyService:     studySvc,
		MessagingService: messagingSvc,
		Platform:         platform,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// In-memory sessions do not survive a restart
	studySvc.Close()

	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
}
