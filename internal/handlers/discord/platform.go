package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/KirkDiggler/studyhall/internal/platform"
	"github.com/bwmarrin/discordgo"
)

// Platform adapts a discordgo session to the collaborators the study service needs
type Platform struct {
	session *discordgo.Session

	mu sync.Mutex
	// waiters are keyed by prompt message ID
	waiters map[string]*reactionWaiter
}

// PlatformConfig holds configuration for the platform adapter
type PlatformConfig struct {
	Session *discordgo.Session
}

type reactionWaiter struct {
	options map[string]bool
	answers chan *platform.Reaction
}

// NewPlatform creates a platform adapter over an existing session
func NewPlatform(cfg *PlatformConfig) (*Platform, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	return &Platform{
		session: cfg.Session,
		waiters: make(map[string]*reactionWaiter),
	}, nil
}

// ListPresentMembers reads the voice channel's members from the gateway state cache
func (p *Platform) ListPresentMembers(ctx context.Context, channelID string) ([]*platform.Member, error) {
	channel, err := p.session.State.Channel(channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to find channel %s: %w", channelID, err)
	}

	guild, err := p.session.State.Guild(channel.GuildID)
	if err != nil {
		return nil, fmt.Errorf("failed to find guild %s: %w", channel.GuildID, err)
	}

	// Gateway handlers rewrite VoiceStates in place, so copy this channel's entries under the state lock
	p.session.State.RLock()
	present := make([]discordgo.VoiceState, 0, len(guild.VoiceStates))
	for _, vs := range guild.VoiceStates {
		if vs != nil && vs.ChannelID == channelID {
			present = append(present, *vs)
		}
	}
	p.session.State.RUnlock()

	members := make([]*platform.Member, 0, len(present))
	for _, vs := range present {
		member := vs.Member
		if member == nil {
			member, _ = p.session.State.Member(guild.ID, vs.UserID)
		}

		members = append(members, toPlatformMember(vs.UserID, member))
	}

	return members, nil
}

// RenameChannel sets a channel's display name
func (p *Platform) RenameChannel(ctx context.Context, channelID, name string) error {
	// Discord allows two renames per channel every ten minutes; waiting out a 429 would stall the caller
	_, err := p.session.ChannelEdit(channelID, &discordgo.ChannelEdit{
		Name: name,
	}, discordgo.WithContext(ctx), discordgo.WithRetryOnRatelimit(false))
	if err != nil {
		return fmt.Errorf("failed to rename channel %s: %w", channelID, err)
	}
	return nil
}

// PostMessage sends a plain message to a text channel
func (p *Platform) PostMessage(ctx context.Context, channelID, content string) error {
	_, err := p.session.ChannelMessageSend(channelID, content, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to send message to %s: %w", channelID, err)
	}
	return nil
}

// PostPrompt sends a message and seeds it with one reaction per option.
// Answers are collected from the moment the message exists.
func (p *Platform) PostPrompt(ctx context.Context, channelID, content string, options []string) (*platform.MessageHandle, error) {
	msg, err := p.session.ChannelMessageSend(channelID, content, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to send prompt to %s: %w", channelID, err)
	}

	p.watch(msg.ID, options)

	for _, option := range options {
		if err := p.session.MessageReactionAdd(channelID, msg.ID, option, discordgo.WithContext(ctx)); err != nil {
			log.Printf("Platform: failed to add %s to prompt %s: %v", option, msg.ID, err)
		}
	}

	return &platform.MessageHandle{
		ChannelID: channelID,
		MessageID: msg.ID,
	}, nil
}

// AwaitReaction waits for the first member to pick an option
func (p *Platform) AwaitReaction(ctx context.Context, handle *platform.MessageHandle, options []string, timeout time.Duration) (*platform.Reaction, error) {
	if handle == nil {
		return nil, errors.New("handle cannot be nil")
	}

	waiter := p.watch(handle.MessageID, options)
	defer p.unwatch(handle.MessageID)

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case reaction := <-waiter.answers:
		return reaction, nil
	case <-timer.C:
		return nil, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// handleReactionAdd routes a gateway reaction to the prompt waiting on it
func (p *Platform) handleReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	if r.MessageReaction == nil {
		return
	}

	bot := r.Member != nil && r.Member.User != nil && r.Member.User.Bot
	if s.State != nil && s.State.User != nil && s.State.User.ID == r.UserID {
		bot = true
	}

	p.deliver(r.MessageID, r.UserID, r.Emoji.Name, bot)
}

// deliver hands an answer to a waiting prompt. Bots, unknown emoji and answers
// after the first are dropped.
func (p *Platform) deliver(messageID, userID, option string, bot bool) {
	if bot {
		return
	}

	p.mu.Lock()
	waiter, ok := p.waiters[messageID]
	p.mu.Unlock()
	if !ok || !waiter.options[option] {
		return
	}

	select {
	case waiter.answers <- &platform.Reaction{Option: option, UserID: userID}:
	default:
	}
}

func (p *Platform) watch(messageID string, options []string) *reactionWaiter {
	p.mu.Lock()
	defer p.mu.Unlock()

	if waiter, ok := p.waiters[messageID]; ok {
		return waiter
	}

	waiter := &reactionWaiter{
		options: make(map[string]bool, len(options)),
		answers: make(chan *platform.Reaction, 1),
	}
	for _, option := range options {
		waiter.options[option] = true
	}
	p.waiters[messageID] = waiter
	return waiter
}

func (p *Platform) unwatch(messageID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.waiters, messageID)
}

func toPlatformMember(userID string, member *discordgo.Member) *platform.Member {
	m := &platform.Member{ID: userID, Name: userID}
	if member == nil {
		return m
	}

	if member.Nick != "" {
		m.Name = member.Nick
	}
	if member.User != nil {
		if member.Nick == "" {
			m.Name = member.User.Username
		}
		m.Bot = member.User.Bot
	}
	return m
}
