package messaging

import (
	"time"

	"github.com/KirkDiggler/studyhall/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// Error types understood by GetErrorMessage
const (
	ErrorTypeInvalidDuration  = "invalid_duration"
	ErrorTypeChannelBusy      = "channel_busy"
	ErrorTypeSessionNotFound  = "session_not_found"
	ErrorTypePermissionDenied = "permission_denied"
	ErrorTypeAlreadyPaused    = "already_paused"
	ErrorTypeNotPaused        = "not_paused"
	ErrorTypeSessionExpired   = "session_expired"
	ErrorTypeNotInVoice       = "not_in_voice"
)

// GetSessionStartedMessageInput contains parameters for the start announcement
type GetSessionStartedMessageInput struct {
	HostID   string
	Code     string
	Duration int
}

// GetSessionStartedMessageOutput contains the start announcement
type GetSessionStartedMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetHostLeftPromptInput contains parameters for the host-left vote prompt
type GetHostLeftPromptInput struct {
	HostID         string
	Code           string
	ContinueOption string
	EndOption      string
	VoteWindow     time.Duration
}

// GetHostLeftPromptOutput contains the vote prompt
type GetHostLeftPromptOutput struct {
	Message string
}

// GetVoteResultMessageInput contains parameters for the vote result
type GetVoteResultMessageInput struct {
	Code      string
	Continued bool
	TimedOut  bool
	VoterID   string
}

// GetVoteResultMessageOutput contains the vote result message
type GetVoteResultMessageOutput struct {
	Message string
}

// GetSessionEndedMessageInput contains parameters for the end-of-session summary
type GetSessionEndedMessageInput struct {
	Code    string
	Outcome models.SessionOutcome
	Report  *models.SettlementReport
}

// GetSessionEndedMessageOutput contains the end-of-session summary
type GetSessionEndedMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// ErrorType is the type of error
	ErrorType string
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	Title   string
	Message string
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Seed fixes message selection; zero seeds from the current time
	Seed int64
}
