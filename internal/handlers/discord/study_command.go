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

// StudyCommand handles the /study command
type StudyCommand struct {
	BaseCommand
	studyService     study.Service
	messagingService messaging.Service
}

// studyRequest is a parsed /study invocation
type studyRequest struct {
	Subcommand string
	UserID     string
	GuildID    string
	ChannelID  string

	// VoiceChannelID is where the invoker is connected, if anywhere
	VoiceChannelID   string
	VoiceChannelName string

	CanManageChannels bool

	Code            string
	Minutes         int
	TargetUserID    string
	TargetChannelID string
}

// NewStudyCommand creates a new study command handler
func NewStudyCommand(studyService study.Service, messagingService messaging.Service) *StudyCommand {
	codeOption := func() *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "code",
			Description: "Session code",
			Required:    true,
		}
	}

	minimum := 1.0

	return &StudyCommand{
		BaseCommand: BaseCommand{
			Name:        "study",
			Description: "Group study sessions",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Start a study session in your voice channel",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "minutes",
							Description: "How long to study",
							Required:    true,
							MinValue:    &minimum,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "status",
					Description: "Show a session's progress",
					Options:     []*discordgo.ApplicationCommandOption{codeOption()},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "stop",
					Description: "End your session and hand out points",
					Options:     []*discordgo.ApplicationCommandOption{codeOption()},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "pause",
					Description: "Pause a session",
					Options:     []*discordgo.ApplicationCommandOption{codeOption()},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "resume",
					Description: "Resume a paused session",
					Options:     []*discordgo.ApplicationCommandOption{codeOption()},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "extend",
					Description: "Add time to a session",
					Options: []*discordgo.ApplicationCommandOption{
						codeOption(),
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "minutes",
							Description: "Minutes to add",
							Required:    true,
							MinValue:    &minimum,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "leaderboard",
					Description: "Show the server's top studiers",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "stats",
					Description: "Show study stats",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "user",
							Description: "Whose stats to show",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "history",
					Description: "Show recent sessions",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "settextchannel",
					Description: "Choose where session announcements go",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:         discordgo.ApplicationCommandOptionChannel,
							Name:         "channel",
							Description:  "Text channel for announcements",
							Required:     true,
							ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
						},
					},
				},
			},
		},
		studyService:     studyService,
		messagingService: messagingService,
	}
}

// Handle processes a Discord interaction for the study command
func (c *StudyCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	if i.Member == nil || i.Member.User == nil {
		return respond(s, i, errorReply("Server Only", "Study sessions only work inside a server."))
	}

	req := &studyRequest{
		Subcommand:        data.Options[0].Name,
		UserID:            i.Member.User.ID,
		GuildID:           i.GuildID,
		ChannelID:         i.ChannelID,
		CanManageChannels: i.Member.Permissions&discordgo.PermissionManageChannels != 0,
	}

	for _, opt := range data.Options[0].Options {
		switch opt.Name {
		case "code":
			req.Code = opt.StringValue()
		case "minutes":
			req.Minutes = int(opt.IntValue())
		case "user":
			if user := opt.UserValue(nil); user != nil {
				req.TargetUserID = user.ID
			}
		case "channel":
			if ch := opt.ChannelValue(nil); ch != nil {
				req.TargetChannelID = ch.ID
			}
		}
	}

	if vs, err := s.State.VoiceState(i.GuildID, req.UserID); err == nil && vs.ChannelID != "" {
		req.VoiceChannelID = vs.ChannelID
		if ch, err := s.State.Channel(vs.ChannelID); err == nil {
			req.VoiceChannelName = ch.Name
		}
	}

	return respond(s, i, c.execute(context.Background(), req))
}

// execute runs a parsed request against the study service
func (c *StudyCommand) execute(ctx context.Context, req *studyRequest) *reply {
	switch req.Subcommand {
	case "start":
		return c.handleStart(ctx, req)
	case "status":
		return c.handleStatus(ctx, req)
	case "stop":
		return c.handleStop(ctx, req)
	case "pause":
		return c.handlePause(ctx, req)
	case "resume":
		return c.handleResume(ctx, req)
	case "extend":
		return c.handleExtend(ctx, req)
	case "leaderboard":
		return c.handleLeaderboard(ctx, req)
	case "stats":
		return c.handleStats(ctx, req)
	case "history":
		return c.handleHistory(ctx, req)
	case "settextchannel":
		return c.handleSetTextChannel(ctx, req)
	default:
		return errorReply("Unknown Command", fmt.Sprintf("Unknown subcommand: %s", req.Subcommand))
	}
}

func (c *StudyCommand) handleStart(ctx context.Context, req *studyRequest) *reply {
	if req.VoiceChannelID == "" {
		return c.errorMessage(ctx, messaging.ErrorTypeNotInVoice)
	}

	out, err := c.studyService.StartSession(ctx, &study.StartSessionInput{
		HostID:           req.UserID,
		GuildID:          req.GuildID,
		VoiceChannelID:   req.VoiceChannelID,
		VoiceChannelName: req.VoiceChannelName,
		TextChannelID:    req.ChannelID,
		Duration:         req.Minutes,
	})
	if err != nil {
		return c.studyError(ctx, "start", err)
	}

	msg, err := c.messagingService.GetSessionStartedMessage(ctx, &messaging.GetSessionStartedMessageInput{
		HostID:   out.Session.HostID,
		Code:     out.Session.Code,
		Duration: out.Session.Duration,
	})
	if err != nil {
		log.Printf("Error building start message: %v", err)
		return &reply{Content: fmt.Sprintf("Session **%s** started.", out.Session.Code)}
	}

	return &reply{
		Embed: &discordgo.MessageEmbed{
			Title:       "Study Session Started",
			Description: msg.Message,
			Color:       toneColor(msg.Tone),
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Code", Value: out.Session.Code, Inline: true},
				{Name: "Duration", Value: formatMinutes(out.Session.Duration), Inline: true},
				{Name: "Members", Value: fmt.Sprintf("%d", out.MembersInVC), Inline: true},
			},
		},
	}
}

func (c *StudyCommand) handleStatus(ctx context.Context, req *studyRequest) *reply {
	out, err := c.studyService.GetStatus(ctx, &study.GetStatusInput{Code: req.Code})
	if err != nil {
		return c.studyError(ctx, "status", err)
	}

	return &reply{Embed: renderStatus(out)}
}

func (c *StudyCommand) handleStop(ctx context.Context, req *studyRequest) *reply {
	out, err := c.studyService.StopSession(ctx, &study.StopSessionInput{
		Code:        req.Code,
		RequesterID: req.UserID,
	})
	if err != nil {
		return c.studyError(ctx, "stop", err)
	}

	return &reply{Embed: renderSettlement(out.Session.Code, out.Report)}
}

func (c *StudyCommand) handlePause(ctx context.Context, req *studyRequest) *reply {
	out, err := c.studyService.PauseSession(ctx, &study.PauseSessionInput{Code: req.Code})
	if err != nil {
		return c.studyError(ctx, "pause", err)
	}

	return &reply{
		Content: fmt.Sprintf("⏸️ Session **%s** paused with %s left.", out.Session.Code, formatMinutes(out.Session.RemainingTime)),
	}
}

func (c *StudyCommand) handleResume(ctx context.Context, req *studyRequest) *reply {
	out, err := c.studyService.ResumeSession(ctx, &study.ResumeSessionInput{Code: req.Code})
	if err != nil {
		return c.studyError(ctx, "resume", err)
	}

	return &reply{
		Content: fmt.Sprintf("▶️ Session **%s** resumed, %s to go.", out.Session.Code, formatMinutes(out.RemainingMinutes)),
	}
}

func (c *StudyCommand) handleExtend(ctx context.Context, req *studyRequest) *reply {
	out, err := c.studyService.ExtendSession(ctx, &study.ExtendSessionInput{
		Code:    req.Code,
		Minutes: req.Minutes,
	})
	if err != nil {
		return c.studyError(ctx, "extend", err)
	}

	return &reply{
		Content: fmt.Sprintf("⏱️ Session **%s** extended by %s, %s remaining.",
			out.Session.Code, formatMinutes(req.Minutes), formatMinutes(out.RemainingMinutes)),
	}
}

func (c *StudyCommand) handleLeaderboard(ctx context.Context, req *studyRequest) *reply {
	out, err := c.studyService.GetLeaderboard(ctx, &study.GetLeaderboardInput{GuildID: req.GuildID})
	if err != nil {
		return c.studyError(ctx, "leaderboard", err)
	}

	return &reply{Embed: renderLeaderboard(out.Leaderboard)}
}

func (c *StudyCommand) handleStats(ctx context.Context, req *studyRequest) *reply {
	userID := req.TargetUserID
	if userID == "" {
		userID = req.UserID
	}

	out, err := c.studyService.GetUserStats(ctx, &study.GetUserStatsInput{
		UserID:  userID,
		GuildID: req.GuildID,
	})
	if err != nil {
		return c.studyError(ctx, "stats", err)
	}

	return &reply{Embed: renderUserStats(userID, out), Ephemeral: true}
}

func (c *StudyCommand) handleHistory(ctx context.Context, req *studyRequest) *reply {
	out, err := c.studyService.ListSessionHistory(ctx, &study.ListSessionHistoryInput{GuildID: req.GuildID})
	if err != nil {
		return c.studyError(ctx, "history", err)
	}

	return &reply{Embed: renderHistory(out.Records), Ephemeral: true}
}

func (c *StudyCommand) handleSetTextChannel(ctx context.Context, req *studyRequest) *reply {
	if !req.CanManageChannels {
		return c.errorMessage(ctx, messaging.ErrorTypePermissionDenied)
	}

	out, err := c.studyService.SetTextChannel(ctx, &study.SetTextChannelInput{
		GuildID:   req.GuildID,
		ChannelID: req.TargetChannelID,
	})
	if err != nil {
		return c.studyError(ctx, "settextchannel", err)
	}

	return &reply{
		Content:   fmt.Sprintf("Session announcements will go to <#%s>.", out.Settings.TextChannelID),
		Ephemeral: true,
	}
}

// studyError turns a service error into a friendly reply
func (c *StudyCommand) studyError(ctx context.Context, action string, err error) *reply {
	errorType := errorTypeFor(err)
	if errorType == "" {
		log.Printf("Error handling study %s: %v", action, err)
	}
	return c.errorMessage(ctx, errorType)
}

func (c *StudyCommand) errorMessage(ctx context.Context, errorType string) *reply {
	msg, err := c.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		ErrorType: errorType,
	})
	if err != nil {
		return errorReply("Error", "Something went wrong.")
	}
	return errorReply(msg.Title, msg.Message)
}

// errorTypeFor maps service errors to message types; unexpected errors map to ""
func errorTypeFor(err error) string {
	switch {
	case errors.Is(err, study.ErrInvalidDuration):
		return messaging.ErrorTypeInvalidDuration
	case errors.Is(err, study.ErrChannelBusy):
		return messaging.ErrorTypeChannelBusy
	case errors.Is(err, study.ErrSessionNotFound):
		return messaging.ErrorTypeSessionNotFound
	case errors.Is(err, study.ErrPermissionDenied):
		return messaging.ErrorTypePermissionDenied
	case errors.Is(err, study.ErrAlreadyPaused):
		return messaging.ErrorTypeAlreadyPaused
	case errors.Is(err, study.ErrNotPaused):
		return messaging.ErrorTypeNotPaused
	case errors.Is(err, study.ErrSessionExpired):
		return messaging.ErrorTypeSessionExpired
	default:
		return ""
	}
}
