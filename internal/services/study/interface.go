package study

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/studyhall/internal/services/study Service

import "context"

// Service defines the study session lifecycle and the points built on it
type Service interface {
	// StartSession begins a timed session in the host's voice channel
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// GetStatus reports elapsed and remaining time for a session
	GetStatus(ctx context.Context, input *GetStatusInput) (*GetStatusOutput, error)

	// StopSession ends a session early and credits the time studied so far
	StopSession(ctx context.Context, input *StopSessionInput) (*StopSessionOutput, error)

	// PauseSession freezes a session's countdown
	PauseSession(ctx context.Context, input *PauseSessionInput) (*PauseSessionOutput, error)

	// ResumeSession restarts a paused countdown
	ResumeSession(ctx context.Context, input *ResumeSessionInput) (*ResumeSessionOutput, error)

	// ExtendSession adds minutes to a session
	ExtendSession(ctx context.Context, input *ExtendSessionInput) (*ExtendSessionOutput, error)

	// HandleVoicePresenceChange tracks presence and reacts to a host leaving
	HandleVoicePresenceChange(ctx context.Context, input *HandleVoicePresenceChangeInput) (*HandleVoicePresenceChangeOutput, error)

	// GetLeaderboard returns a server's top members
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	// GetUserStats returns a member's totals and rank
	GetUserStats(ctx context.Context, input *GetUserStatsInput) (*GetUserStatsOutput, error)

	// SetTextChannel chooses where session notifications go in a server
	SetTextChannel(ctx context.Context, input *SetTextChannelInput) (*SetTextChannelOutput, error)

	// ListSessionHistory returns a server's most recent session records
	ListSessionHistory(ctx context.Context, input *ListSessionHistoryInput) (*ListSessionHistoryOutput, error)

	// Close stops every expiry timer
	Close()
}
