package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/studyhall/internal/services/messaging"
	"github.com/KirkDiggler/studyhall/internal/services/study"
	"github.com/bwmarrin/discordgo"
)

// Bot represents the Discord bot instance
type Bot struct {
	session          *discordgo.Session
	commands         map[string]CommandHandler
	commandIDs       map[string]string // Maps command name to command ID
	studyService     study.Service
	messagingService messaging.Service
	platform         *Platform
	config           *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Session is shared with the platform adapter
	Session *discordgo.Session

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	StudyService     study.Service
	MessagingService messaging.Service

	// Platform receives reaction events for host-left votes
	Platform *Platform
}

// NewSession creates a discordgo session with the intents the bot relies on
func NewSession(token string) (*discordgo.Session, error) {
	if token == "" {
		return nil, errors.New("token cannot be empty")
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	// Voice states feed member counts; reactions carry host-left votes
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildVoiceStates |
		discordgo.IntentsGuildMessageReactions
	session.State.TrackVoice = true

	return session, nil
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	if cfg.StudyService == nil {
		return nil, errors.New("study service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	if cfg.Platform == nil {
		return nil, errors.New("platform cannot be nil")
	}

	bot := &Bot{
		session:          cfg.Session,
		commands:         make(map[string]CommandHandler),
		commandIDs:       make(map[string]string),
		studyService:     cfg.StudyService,
		messagingService: cfg.MessagingService,
		platform:         cfg.Platform,
		config:           cfg,
	}

	cfg.Session.AddHandler(bot.handleInteraction)
	cfg.Session.AddHandler(bot.handleVoiceStateUpdate)
	cfg.Session.AddHandler(bot.platform.handleReactionAdd)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	studyCmd := NewStudyCommand(b.studyService, b.messagingService)
	if err := b.RegisterCommand(studyCmd); err != nil {
		return fmt.Errorf("failed to register study command: %w", err)
	}

	log.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop removes registered commands and closes the Discord connection
func (b *Bot) Stop() error {
	appID := b.appID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.Printf("Failed to delete command %s (ID: %s): %v", cmdName, cmdID, err)
		} else {
			log.Printf("Successfully deleted command %s (ID: %s)", cmdName, cmdID)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.appID()

	// If guild ID is provided, register command for that specific guild
	// Otherwise, register it globally
	if b.config.GuildID != "" {
		log.Printf("Registering command %s for guild %s", cmd.GetName(), b.config.GuildID)
	} else {
		log.Printf("Registering command %s globally", cmd.GetName())
	}

	createdCmd, err := b.session.ApplicationCommandCreate(appID, b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	log.Printf("Registered command: %s with ID: %s", cmd.GetName(), createdCmd.ID)

	return nil
}

// appID falls back to the session user when no application ID is configured
func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	return b.session.State.User.ID
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name
	if h, ok := b.commands[name]; ok {
		if err := h.Handle(s, i); err != nil {
			log.Printf("Error handling command %s: %v", name, err)
		}
	}
}

// handleVoiceStateUpdate forwards joins, leaves and moves to the study service.
// A host-left vote keeps this handler busy until it resolves.
func (b *Bot) handleVoiceStateUpdate(s *discordgo.Session, v *discordgo.VoiceStateUpdate) {
	if v.VoiceState == nil {
		return
	}

	input := voicePresenceChange(v)
	out, err := b.studyService.HandleVoicePresenceChange(context.Background(), input)
	if err != nil {
		log.Printf("Error handling voice update for %s: %v", input.UserID, err)
		return
	}

	if out.HostDeparture != nil {
		log.Printf("Host %s left session %s: %s", input.UserID, out.HostDeparture.Code, out.HostDeparture.Outcome)
	}
}

// voicePresenceChange converts a gateway voice update into a presence change
func voicePresenceChange(v *discordgo.VoiceStateUpdate) *study.HandleVoicePresenceChangeInput {
	input := &study.HandleVoicePresenceChangeInput{
		UserID:       v.UserID,
		GuildID:      v.GuildID,
		NewChannelID: v.ChannelID,
	}

	if v.BeforeUpdate != nil {
		input.OldChannelID = v.BeforeUpdate.ChannelID
	}

	if v.Member != nil && v.Member.User != nil {
		input.Bot = v.Member.User.Bot
	}

	return input
}
