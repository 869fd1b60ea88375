package study

import (
	"context"
	"errors"
	"log"

	"github.com/KirkDiggler/studyhall/internal/models"
	"github.com/KirkDiggler/studyhall/internal/platform"
	presenceRepo "github.com/KirkDiggler/studyhall/internal/repositories/presence"
	userStatsRepo "github.com/KirkDiggler/studyhall/internal/repositories/user_stats"
	"github.com/KirkDiggler/studyhall/internal/services/messaging"
)

// HandleVoicePresenceChange tracks presence and reacts to a host leaving.
// A host-left vote is collected before this returns.
func (s *service) HandleVoicePresenceChange(ctx context.Context, input *HandleVoicePresenceChangeInput) (*HandleVoicePresenceChangeOutput, error) {
	if input == nil || input.UserID == "" || input.GuildID == "" {
		return nil, ErrInvalidInput
	}

	output := &HandleVoicePresenceChangeOutput{}

	// Mute, deafen and stream toggles arrive with the same channel on both sides
	if input.Bot || input.OldChannelID == input.NewChannelID {
		return output, nil
	}

	now := s.clock.Now()

	if input.OldChannelID != "" {
		output.PresencePoints = s.closePresence(ctx, input)
	}

	if input.NewChannelID != "" {
		_, err := s.presenceRepo.OpenPresence(ctx, &presenceRepo.OpenPresenceInput{
			UserID:    input.UserID,
			GuildID:   input.GuildID,
			ChannelID: input.NewChannelID,
			JoinTime:  now,
		})
		if err != nil {
			log.Printf("Study: failed to open presence for %s in %s: %v", input.UserID, input.NewChannelID, err)
		}
	}

	if input.OldChannelID == "" {
		return output, nil
	}

	session, err := s.registry.FindByVoiceChannel(input.OldChannelID)
	if err != nil || session.HostID != input.UserID {
		return output, nil
	}

	output.HostDeparture = s.handleHostDeparture(ctx, session)
	return output, nil
}

// closePresence ends the member's stay and awards presence points for it
func (s *service) closePresence(ctx context.Context, input *HandleVoicePresenceChangeInput) int {
	closed, err := s.presenceRepo.ClosePresence(ctx, &presenceRepo.ClosePresenceInput{
		UserID:    input.UserID,
		GuildID:   input.GuildID,
		LeaveTime: s.clock.Now(),
	})
	if err != nil {
		if !errors.Is(err, presenceRepo.ErrPresenceNotFound) {
			log.Printf("Study: failed to close presence for %s: %v", input.UserID, err)
		}
		return 0
	}

	points := int(closed.Duration.Minutes()) * s.presencePointsPerMinute
	if points <= 0 {
		return 0
	}

	_, err = s.userStatsRepo.AwardPoints(ctx, &userStatsRepo.AwardPointsInput{
		UserID:  input.UserID,
		GuildID: input.GuildID,
		Points:  points,
	})
	if err != nil {
		log.Printf("Study: failed to award %d presence points to %s: %v", points, input.UserID, err)
		return 0
	}

	return points
}

// handleHostDeparture ends the session if the channel is empty, otherwise lets the
// remaining members vote. Silence ends the session.
func (s *service) handleHostDeparture(ctx context.Context, session *models.StudySession) *HostDeparture {
	departure := &HostDeparture{Code: session.Code}

	if s.countMembers(ctx, session.VoiceChannelID) == 0 {
		taken, err := s.registry.TakeIf(session.Code, sameInstance(session))
		if err != nil {
			departure.Outcome = DepartureAlreadyEnded
			return departure
		}

		departure.Outcome = DepartureAutoTerminated
		departure.Report = s.terminate(ctx, taken, models.SessionOutcomeAbandoned, taken.Duration)
		return departure
	}

	if !s.openVote(session.Code) {
		departure.Outcome = DepartureVotePending
		return departure
	}
	defer s.closeVote(session.Code)

	channelID := s.notificationChannel(ctx, session)
	reaction := s.collectVote(ctx, session, channelID)

	if reaction != nil && reaction.Option == ContinueOption {
		if _, err := s.registry.Get(session.Code); err != nil {
			departure.Outcome = DepartureAlreadyEnded
			return departure
		}

		departure.Outcome = DepartureContinued
		s.postVoteResult(ctx, channelID, &messaging.GetVoteResultMessageInput{
			Code:      session.Code,
			Continued: true,
			VoterID:   reaction.UserID,
		})
		return departure
	}

	taken, err := s.registry.TakeIf(session.Code, sameInstance(session))
	if err != nil {
		departure.Outcome = DepartureAlreadyEnded
		return departure
	}

	outcome := models.SessionOutcomeVotedEnd
	departure.Outcome = DepartureEnded
	voteResult := &messaging.GetVoteResultMessageInput{Code: taken.Code}
	if reaction == nil {
		outcome = models.SessionOutcomeVoteTimeout
		departure.Outcome = DepartureTimedOut
		voteResult.TimedOut = true
	} else {
		voteResult.VoterID = reaction.UserID
	}

	s.postVoteResult(ctx, channelID, voteResult)
	departure.Report = s.terminate(ctx, taken, outcome, taken.MinutesStudied(s.clock.Now()))
	return departure
}

// collectVote posts the prompt and waits for the first answer.
// It returns nil when nobody answers or the prompt could not be posted.
func (s *service) collectVote(ctx context.Context, session *models.StudySession, channelID string) *platform.Reaction {
	if channelID == "" {
		log.Printf("Study: no text channel for session %s, ending without a vote", session.Code)
		return nil
	}

	options := []string{ContinueOption, EndOption}

	prompt, err := s.messagingService.GetHostLeftPrompt(ctx, &messaging.GetHostLeftPromptInput{
		HostID:         session.HostID,
		Code:           session.Code,
		ContinueOption: ContinueOption,
		EndOption:      EndOption,
		VoteWindow:     s.voteWindow,
	})
	if err != nil {
		log.Printf("Study: failed to build host-left prompt for session %s: %v", session.Code, err)
		return nil
	}

	handle, err := s.notifier.PostPrompt(ctx, channelID, prompt.Message, options)
	if err != nil {
		log.Printf("Study: failed to post host-left prompt for session %s: %v", session.Code, err)
		return nil
	}

	reaction, err := s.notifier.AwaitReaction(ctx, handle, options, s.voteWindow)
	if err != nil {
		log.Printf("Study: failed waiting for votes on session %s: %v", session.Code, err)
		return nil
	}

	if reaction == nil {
		log.Printf("Study: host-left vote for session %s timed out", session.Code)
	}
	return reaction
}

func (s *service) postVoteResult(ctx context.Context, channelID string, input *messaging.GetVoteResultMessageInput) {
	if channelID == "" {
		return
	}

	msg, err := s.messagingService.GetVoteResultMessage(ctx, input)
	if err != nil {
		log.Printf("Study: failed to build vote result for session %s: %v", input.Code, err)
		return
	}

	s.postMessage(ctx, channelID, msg.Message)
}

// openVote claims the single vote slot for a session
func (s *service) openVote(sessionCode string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.votes[sessionCode] {
		return false
	}
	s.votes[sessionCode] = true
	return true
}

func (s *service) closeVote(sessionCode string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.votes, sessionCode)
}
