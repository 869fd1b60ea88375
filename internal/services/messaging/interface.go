package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/studyhall/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetSessionStartedMessage announces a new study session
	GetSessionStartedMessage(ctx context.Context, input *GetSessionStartedMessageInput) (*GetSessionStartedMessageOutput, error)

	// GetHostLeftPrompt asks the remaining members whether to keep studying
	GetHostLeftPrompt(ctx context.Context, input *GetHostLeftPromptInput) (*GetHostLeftPromptOutput, error)

	// GetVoteResultMessage reports how the host-left vote ended
	GetVoteResultMessage(ctx context.Context, input *GetVoteResultMessageInput) (*GetVoteResultMessageOutput, error)

	// GetSessionEndedMessage summarizes a finished session and who earned what
	GetSessionEndedMessage(ctx context.Context, input *GetSessionEndedMessageInput) (*GetSessionEndedMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
