package presence

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/studyhall/internal/repositories/presence Repository

import (
	"context"
)

// Repository tracks each member's current stay in a voice channel
type Repository interface {
	// OpenPresence records a member joining a voice channel, replacing any open presence in the same server
	OpenPresence(ctx context.Context, input *OpenPresenceInput) (*OpenPresenceOutput, error)

	// ClosePresence ends a member's open presence and reports how long it lasted
	ClosePresence(ctx context.Context, input *ClosePresenceInput) (*ClosePresenceOutput, error)

	// GetChannelPresences lists the open presences in a voice channel
	GetChannelPresences(ctx context.Context, input *GetChannelPresencesInput) (*GetChannelPresencesOutput, error)
}
