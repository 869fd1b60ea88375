package platform

//go:generate mockgen -package=mocks -destination=mocks/mock_platform.go github.com/KirkDiggler/studyhall/internal/platform MemberEnumerator,ChannelController,Notifier

import (
	"context"
	"time"
)

// MemberEnumerator lists who is currently in a voice channel
type MemberEnumerator interface {
	// ListPresentMembers returns every member in the channel, bots included
	ListPresentMembers(ctx context.Context, channelID string) ([]*Member, error)
}

// ChannelController changes channel metadata
type ChannelController interface {
	// RenameChannel sets a channel's display name
	RenameChannel(ctx context.Context, channelID, name string) error
}

// Notifier posts messages and collects reactions
type Notifier interface {
	// PostMessage sends a plain message to a text channel
	PostMessage(ctx context.Context, channelID, content string) error

	// PostPrompt sends a message and attaches one reaction per option
	PostPrompt(ctx context.Context, channelID, content string, options []string) (*MessageHandle, error)

	// AwaitReaction blocks until a non-bot member picks one of the options.
	// It returns nil without an error when the timeout passes first.
	AwaitReaction(ctx context.Context, handle *MessageHandle, options []string, timeout time.Duration) (*Reaction, error)
}
