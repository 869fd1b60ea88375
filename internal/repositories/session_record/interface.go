package session_record

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/studyhall/internal/repositories/session_record Repository

import (
	"context"

	"github.com/KirkDiggler/studyhall/internal/models"
)

// Repository stores the durable history of study sessions
type Repository interface {
	// CreateSessionRecord stores a record for a session that just started
	CreateSessionRecord(ctx context.Context, input *CreateSessionRecordInput) (*CreateSessionRecordOutput, error)

	// CompleteSessionRecord marks a record inactive and stores how the session ended
	CompleteSessionRecord(ctx context.Context, input *CompleteSessionRecordInput) (*CompleteSessionRecordOutput, error)

	// GetSessionRecord retrieves a record by ID
	GetSessionRecord(ctx context.Context, recordID string) (*models.SessionRecord, error)

	// ListSessionRecords lists a server's records, newest first
	ListSessionRecords(ctx context.Context, input *ListSessionRecordsInput) (*ListSessionRecordsOutput, error)
}
