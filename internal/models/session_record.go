package models

import (
	"time"
)

// SessionOutcome records how a study session ended
type SessionOutcome string

const (
	// SessionOutcomeExpired indicates the planned duration ran out
	SessionOutcomeExpired SessionOutcome = "expired"

	// SessionOutcomeStopped indicates the host stopped the session
	SessionOutcomeStopped SessionOutcome = "stopped"

	// SessionOutcomeAbandoned indicates the host left an empty channel
	SessionOutcomeAbandoned SessionOutcome = "abandoned"

	// SessionOutcomeVotedEnd indicates remaining members voted to end after the host left
	SessionOutcomeVotedEnd SessionOutcome = "voted_end"

	// SessionOutcomeVoteTimeout indicates nobody answered the host-left vote
	SessionOutcomeVoteTimeout SessionOutcome = "vote_timeout"
)

// SessionRecord is the durable trace of a study session
type SessionRecord struct {
	ID               string
	Code             string
	GuildID          string
	HostID           string
	VoiceChannelID   string
	VoiceChannelName string
	Duration         int
	PointsPerMinute  int
	StartedAt        time.Time
	EndedAt          time.Time
	Active           bool
	Outcome          SessionOutcome
	MinutesStudied   int
	PointsAwarded    int
	MembersCredited  int
}
