package session_record

import (
	"time"

	"github.com/KirkDiggler/studyhall/internal/models"
)

// CreateSessionRecordInput contains parameters for creating a record
type CreateSessionRecordInput struct {
	ID               string
	Code             string
	GuildID          string
	HostID           string
	VoiceChannelID   string
	VoiceChannelName string
	Duration         int
	PointsPerMinute  int
	StartedAt        time.Time
}

// CreateSessionRecordOutput contains the created record
type CreateSessionRecordOutput struct {
	Record *models.SessionRecord
}

// CompleteSessionRecordInput contains the final figures for a session
type CompleteSessionRecordInput struct {
	RecordID        string
	Outcome         models.SessionOutcome
	Duration        int
	MinutesStudied  int
	PointsAwarded   int
	MembersCredited int
	EndedAt         time.Time
}

// CompleteSessionRecordOutput contains the completed record
type CompleteSessionRecordOutput struct {
	Record *models.SessionRecord
}

// ListSessionRecordsInput contains parameters for listing records
type ListSessionRecordsInput struct {
	GuildID string
	Limit   int
}

// ListSessionRecordsOutput contains the listed records
type ListSessionRecordsOutput struct {
	Records []*models.SessionRecord
}
