package models

import (
	"time"
)

// Presence is one member's continuous stay in a voice channel
type Presence struct {
	ID        string
	UserID    string
	GuildID   string
	ChannelID string
	JoinTime  time.Time
	LeaveTime time.Time
	Active    bool
}
