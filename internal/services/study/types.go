package study

import (
	"time"

	"github.com/KirkDiggler/studyhall/internal/common/clock"
	"github.com/KirkDiggler/studyhall/internal/common/code"
	"github.com/KirkDiggler/studyhall/internal/common/uuid"
	"github.com/KirkDiggler/studyhall/internal/models"
	"github.com/KirkDiggler/studyhall/internal/platform"
	guildSettingsRepo "github.com/KirkDiggler/studyhall/internal/repositories/guild_settings"
	presenceRepo "github.com/KirkDiggler/studyhall/internal/repositories/presence"
	sessionRecordRepo "github.com/KirkDiggler/studyhall/internal/repositories/session_record"
	userStatsRepo "github.com/KirkDiggler/studyhall/internal/repositories/user_stats"
	"github.com/KirkDiggler/studyhall/internal/services/messaging"
)

// Reactions offered on the host-left prompt
const (
	ContinueOption = "✅"
	EndOption      = "❌"
)

// Defaults applied when the config leaves a value at zero
const (
	DefaultMinDuration             = 4
	DefaultPointsPerMinute         = 10
	DefaultPresencePointsPerMinute = 1
	DefaultVoteWindow              = 60 * time.Second
	DefaultSettlementConcurrency   = 4
	DefaultCompletedChannelName    = "Study Completed"
	DefaultLeaderboardSize         = 10
)

// Config holds configuration for the study service
type Config struct {
	// MinDuration is the shortest session a host may start, in minutes
	MinDuration int

	// PointsPerMinute is the settlement rate for new sessions
	PointsPerMinute int

	// PresencePointsPerMinute is awarded for time in any voice channel
	PresencePointsPerMinute int

	// VoteWindow bounds the host-left vote
	VoteWindow time.Duration

	// SettlementConcurrency caps parallel ledger writes while settling
	SettlementConcurrency int

	// CompletedChannelName replaces the channel name when a session runs its course
	CompletedChannelName string

	// LeaderboardSize is used when a leaderboard request has no limit
	LeaderboardSize int

	Registry      Registry
	Clock         clock.Clock
	CodeGenerator code.Generator
	UUIDGenerator uuid.UUID

	// Platform collaborators
	MemberEnumerator  platform.MemberEnumerator
	ChannelController platform.ChannelController
	Notifier          platform.Notifier

	// Repository dependencies
	UserStatsRepo     userStatsRepo.Repository
	PresenceRepo      presenceRepo.Repository
	SessionRecordRepo sessionRecordRepo.Repository
	GuildSettingsRepo guildSettingsRepo.Repository

	MessagingService messaging.Service
}

// StartSessionInput contains parameters for starting a session
type StartSessionInput struct {
	HostID           string
	GuildID          string
	VoiceChannelID   string
	VoiceChannelName string

	// TextChannelID is where the start command was issued
	TextChannelID string

	// Duration is the planned length in minutes
	Duration int
}

// StartSessionOutput contains the started session
type StartSessionOutput struct {
	Session     *models.StudySession
	MembersInVC int
}

// GetStatusInput contains parameters for a status query
type GetStatusInput struct {
	Code string
}

// GetStatusOutput describes where a session stands
type GetStatusOutput struct {
	Session          *models.StudySession
	ElapsedMinutes   int
	RemainingMinutes int
	MembersInVC      int
}

// StopSessionInput contains parameters for stopping a session
type StopSessionInput struct {
	Code        string
	RequesterID string
}

// StopSessionOutput contains the stopped session and its settlement
type StopSessionOutput struct {
	Session *models.StudySession
	Report  *models.SettlementReport
}

// PauseSessionInput contains parameters for pausing a session
type PauseSessionInput struct {
	Code string
}

// PauseSessionOutput contains the paused session
type PauseSessionOutput struct {
	Session *models.StudySession
}

// ResumeSessionInput contains parameters for resuming a session
type ResumeSessionInput struct {
	Code string
}

// ResumeSessionOutput contains the resumed session
type ResumeSessionOutput struct {
	Session          *models.StudySession
	RemainingMinutes int
}

// ExtendSessionInput contains parameters for extending a session
type ExtendSessionInput struct {
	Code    string
	Minutes int
}

// ExtendSessionOutput contains the extended session
type ExtendSessionOutput struct {
	Session          *models.StudySession
	RemainingMinutes int
}

// HandleVoicePresenceChangeInput describes a member moving between voice channels.
// An empty channel ID means "not in voice".
type HandleVoicePresenceChangeInput struct {
	UserID       string
	GuildID      string
	OldChannelID string
	NewChannelID string
	Bot          bool
}

// DepartureOutcome is how a host departure was resolved
type DepartureOutcome string

const (
	// DepartureAutoTerminated means the channel was empty and the session ended
	DepartureAutoTerminated DepartureOutcome = "auto_terminated"

	// DepartureContinued means a member voted to keep going
	DepartureContinued DepartureOutcome = "continued"

	// DepartureEnded means a member voted to end the session
	DepartureEnded DepartureOutcome = "ended"

	// DepartureTimedOut means nobody voted and the session ended
	DepartureTimedOut DepartureOutcome = "timed_out"

	// DepartureVotePending means another vote for the session is still open
	DepartureVotePending DepartureOutcome = "vote_pending"

	// DepartureAlreadyEnded means the session ended while the vote was open
	DepartureAlreadyEnded DepartureOutcome = "already_ended"
)

// HostDeparture describes what happened after a host left their session
type HostDeparture struct {
	Code    string
	Outcome DepartureOutcome

	// Report is set when the departure ended the session
	Report *models.SettlementReport
}

// HandleVoicePresenceChangeOutput contains the effects of a voice change
type HandleVoicePresenceChangeOutput struct {
	// PresencePoints were awarded for the stay that just closed
	PresencePoints int

	// HostDeparture is set when the member was hosting a session in the channel they left
	HostDeparture *HostDeparture
}

// GetLeaderboardInput contains parameters for a leaderboard query
type GetLeaderboardInput struct {
	GuildID string
	Limit   int
}

// GetLeaderboardOutput contains the leaderboard
type GetLeaderboardOutput struct {
	Leaderboard *models.Leaderboard
}

// GetUserStatsInput contains parameters for a stats query
type GetUserStatsInput struct {
	UserID  string
	GuildID string
}

// GetUserStatsOutput contains a member's totals; Rank is zero for members with no points
type GetUserStatsOutput struct {
	Stats *models.UserStats
	Rank  int
}

// SetTextChannelInput contains parameters for choosing the notification channel
type SetTextChannelInput struct {
	GuildID   string
	ChannelID string
}

// SetTextChannelOutput contains the saved settings
type SetTextChannelOutput struct {
	Settings *models.GuildSettings
}

// ListSessionHistoryInput contains parameters for listing past sessions
type ListSessionHistoryInput struct {
	GuildID string
	Limit   int
}

// ListSessionHistoryOutput contains past sessions, newest first
type ListSessionHistoryOutput struct {
	Records []*models.SessionRecord
}
