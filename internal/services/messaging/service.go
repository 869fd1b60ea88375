package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/studyhall/internal/models"
)

// service implements the Service interface
type service struct {
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (*service, error) {
	seed := time.Now().UnixNano()
	if config != nil && config.Seed != 0 {
		seed = config.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return messages[s.rand.Intn(len(messages))]
}

// GetSessionStartedMessage announces a new study session
func (s *service) GetSessionStartedMessage(ctx context.Context, input *GetSessionStartedMessageInput) (*GetSessionStartedMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	openers := []string{
		"Books out, phones down!",
		"Study time!",
		"Let's get some focus in.",
		"Timer's running.",
	}

	message := fmt.Sprintf("%s <@%s> started a %d minute session. Code: **%s**",
		s.pick(openers), input.HostID, input.Duration, input.Code)

	return &GetSessionStartedMessageOutput{
		Message: message,
		Tone:    ToneEncouraging,
	}, nil
}

// GetHostLeftPrompt asks the remaining members whether to keep studying
func (s *service) GetHostLeftPrompt(ctx context.Context, input *GetHostLeftPromptInput) (*GetHostLeftPromptOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	message := fmt.Sprintf(
		"The host <@%s> left session **%s**. React with %s to keep going or %s to end it. No answer within %d seconds ends the session.",
		input.HostID, input.Code, input.ContinueOption, input.EndOption, int(input.VoteWindow.Seconds()))

	return &GetHostLeftPromptOutput{
		Message: message,
	}, nil
}

// GetVoteResultMessage reports how the host-left vote ended
func (s *service) GetVoteResultMessage(ctx context.Context, input *GetVoteResultMessageInput) (*GetVoteResultMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var message string
	switch {
	case input.TimedOut:
		message = fmt.Sprintf("Nobody answered, so session **%s** has ended.", input.Code)
	case input.Continued:
		message = fmt.Sprintf("<@%s> voted to continue. Session **%s** keeps running.", input.VoterID, input.Code)
	default:
		message = fmt.Sprintf("<@%s> voted to end session **%s**.", input.VoterID, input.Code)
	}

	return &GetVoteResultMessageOutput{
		Message: message,
	}, nil
}

// GetSessionEndedMessage summarizes a finished session and who earned what
func (s *service) GetSessionEndedMessage(ctx context.Context, input *GetSessionEndedMessageInput) (*GetSessionEndedMessageOutput, error) {
	if input == nil || input.Report == nil {
		return nil, errors.New("input and report cannot be nil")
	}

	var b strings.Builder
	tone := ToneCelebration

	switch input.Outcome {
	case models.SessionOutcomeExpired:
		fmt.Fprintf(&b, "Session **%s** is complete! %d minutes studied.\n", input.Code, input.Report.MinutesStudied)
	case models.SessionOutcomeAbandoned:
		fmt.Fprintf(&b, "Session **%s** ended after the host left an empty channel.\n", input.Code)
		tone = ToneNeutral
	default:
		fmt.Fprintf(&b, "Session **%s** ended after %d minutes.\n", input.Code, input.Report.MinutesStudied)
		tone = ToneNeutral
	}

	if len(input.Report.Credited) == 0 {
		b.WriteString("Nobody was around to collect points.")
	} else {
		for _, member := range input.Report.Credited {
			fmt.Fprintf(&b, "<@%s> earned %d points\n", member.UserID, member.Points)
		}
		b.WriteString(s.pick([]string{
			"Great work, everyone!",
			"Every minute counts. Nice job!",
			"Consistency beats cramming. See you next session!",
			"That's how progress happens.",
			"Take a break, you earned it.",
		}))
	}

	return &GetSessionEndedMessageOutput{
		Message: b.String(),
		Tone:    tone,
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var title, message string

	switch input.ErrorType {
	case ErrorTypeInvalidDuration:
		title, message = "Too Short", "Sessions need a longer duration than that."
	case ErrorTypeChannelBusy:
		title, message = "Channel Busy", "There's already a session running in this voice channel."
	case ErrorTypeSessionNotFound:
		title, message = "Session Not Found", "No active session matches that code."
	case ErrorTypePermissionDenied:
		title, message = "Host Only", "Only the session host can do that."
	case ErrorTypeAlreadyPaused:
		title, message = "Already Paused", "That session is already paused."
	case ErrorTypeNotPaused:
		title, message = "Not Paused", "That session isn't paused."
	case ErrorTypeSessionExpired:
		title, message = "Time's Up", "That session has no time left to pause."
	case ErrorTypeNotInVoice:
		title, message = "Join a Voice Channel", "You need to be in a voice channel to start a session."
	default:
		title = "Something Went Wrong"
		message = s.pick([]string{
			"Something went wrong. Try again in a moment.",
			"That didn't work. Give it another try.",
		})
	}

	return &GetErrorMessageOutput{
		Title:   title,
		Message: message,
	}, nil
}
