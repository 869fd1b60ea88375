package models

import (
	"time"
)

// GuildSettings holds per-server bot settings
type GuildSettings struct {
	// GuildID is the Discord server
	GuildID string

	// TextChannelID is where session notifications are posted
	TextChannelID string

	// UpdatedAt is when the settings last changed
	UpdatedAt time.Time
}
