package presence

import (
	"time"

	"github.com/KirkDiggler/studyhall/internal/models"
)

// OpenPresenceInput contains parameters for opening a presence
type OpenPresenceInput struct {
	UserID    string
	GuildID   string
	ChannelID string
	JoinTime  time.Time
}

// OpenPresenceOutput contains the opened presence
type OpenPresenceOutput struct {
	Presence *models.Presence

	// Replaced indicates an earlier open presence in the server was overwritten
	Replaced bool
}

// ClosePresenceInput contains parameters for closing a presence
type ClosePresenceInput struct {
	UserID    string
	GuildID   string
	LeaveTime time.Time
}

// ClosePresenceOutput contains the closed presence and its length
type ClosePresenceOutput struct {
	Presence *models.Presence
	Duration time.Duration
}

// GetChannelPresencesInput contains parameters for listing a channel's presences
type GetChannelPresencesInput struct {
	GuildID   string
	ChannelID string
}

// GetChannelPresencesOutput contains the open presences in the channel
type GetChannelPresencesOutput struct {
	Presences []*models.Presence
}
