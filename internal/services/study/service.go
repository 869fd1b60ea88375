package study

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/KirkDiggler/studyhall/internal/common/clock"
	"github.com/KirkDiggler/studyhall/internal/common/code"
	"github.com/KirkDiggler/studyhall/internal/common/uuid"
	"github.com/KirkDiggler/studyhall/internal/models"
	"github.com/KirkDiggler/studyhall/internal/platform"
	guildSettingsRepo "github.com/KirkDiggler/studyhall/internal/repositories/guild_settings"
	presenceRepo "github.com/KirkDiggler/studyhall/internal/repositories/presence"
	sessionRecordRepo "github.com/KirkDiggler/studyhall/internal/repositories/session_record"
	userStatsRepo "github.com/KirkDiggler/studyhall/internal/repositories/user_stats"
	"github.com/KirkDiggler/studyhall/internal/services/messaging"
)

// armedTimer is the expiry timer for one session instance
type armedTimer struct {
	timer      clock.Timer
	generation int
}

// service implements the Service interface
type service struct {
	minDuration             int
	pointsPerMinute         int
	presencePointsPerMinute int
	voteWindow              time.Duration
	settlementConcurrency   int
	completedChannelName    string
	leaderboardSize         int

	registry      Registry
	clock         clock.Clock
	codeGenerator code.Generator
	uuidGenerator uuid.UUID

	members  platform.MemberEnumerator
	channels platform.ChannelController
	notifier platform.Notifier

	userStatsRepo     userStatsRepo.Repository
	presenceRepo      presenceRepo.Repository
	sessionRecordRepo sessionRecordRepo.Repository
	guildSettingsRepo guildSettingsRepo.Repository

	messagingService messaging.Service

	mu sync.Mutex
	// timers are keyed by session record ID so a reused code never touches an old timer
	timers map[string]*armedTimer
	// votes holds the codes with an open host-left vote
	votes map[string]bool
}

// New creates a new study service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	switch {
	case cfg.Registry == nil:
		return nil, ErrNilRegistry
	case cfg.Clock == nil:
		return nil, ErrNilClock
	case cfg.CodeGenerator == nil:
		return nil, ErrNilCodeGenerator
	case cfg.UUIDGenerator == nil:
		return nil, ErrNilUUIDGenerator
	case cfg.MemberEnumerator == nil:
		return nil, ErrNilMemberEnumerator
	case cfg.ChannelController == nil:
		return nil, ErrNilChannelController
	case cfg.Notifier == nil:
		return nil, ErrNilNotifier
	case cfg.UserStatsRepo == nil:
		return nil, ErrNilUserStatsRepo
	case cfg.PresenceRepo == nil:
		return nil, ErrNilPresenceRepo
	case cfg.SessionRecordRepo == nil:
		return nil, ErrNilSessionRecordRepo
	case cfg.GuildSettingsRepo == nil:
		return nil, ErrNilGuildSettingsRepo
	case cfg.MessagingService == nil:
		return nil, ErrNilMessagingService
	}

	s := &service{
		minDuration:             cfg.MinDuration,
		pointsPerMinute:         cfg.PointsPerMinute,
		presencePointsPerMinute: cfg.PresencePointsPerMinute,
		voteWindow:              cfg.VoteWindow,
		settlementConcurrency:   cfg.SettlementConcurrency,
		completedChannelName:    cfg.CompletedChannelName,
		leaderboardSize:         cfg.LeaderboardSize,
		registry:                cfg.Registry,
		clock:                   cfg.Clock,
		codeGenerator:           cfg.CodeGenerator,
		uuidGenerator:           cfg.UUIDGenerator,
		members:                 cfg.MemberEnumerator,
		channels:                cfg.ChannelController,
		notifier:                cfg.Notifier,
		userStatsRepo:           cfg.UserStatsRepo,
		presenceRepo:            cfg.PresenceRepo,
		sessionRecordRepo:       cfg.SessionRecordRepo,
		guildSettingsRepo:       cfg.GuildSettingsRepo,
		messagingService:        cfg.MessagingService,
		timers:                  make(map[string]*armedTimer),
		votes:                   make(map[string]bool),
	}

	// Set default values if not provided
	if s.minDuration <= 0 {
		s.minDuration = DefaultMinDuration
	}
	if s.pointsPerMinute <= 0 {
		s.pointsPerMinute = DefaultPointsPerMinute
	}
	if s.presencePointsPerMinute < 0 {
		s.presencePointsPerMinute = 0
	} else if s.presencePointsPerMinute == 0 {
		s.presencePointsPerMinute = DefaultPresencePointsPerMinute
	}
	if s.voteWindow <= 0 {
		s.voteWindow = DefaultVoteWindow
	}
	if s.settlementConcurrency <= 0 {
		s.settlementConcurrency = DefaultSettlementConcurrency
	}
	if s.completedChannelName == "" {
		s.completedChannelName = DefaultCompletedChannelName
	}
	if s.leaderboardSize <= 0 {
		s.leaderboardSize = DefaultLeaderboardSize
	}

	return s, nil
}

// StartSession begins a timed session in the host's voice channel
func (s *service) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil || input.HostID == "" || input.GuildID == "" || input.VoiceChannelID == "" {
		return nil, ErrInvalidInput
	}

	if input.Duration < s.minDuration {
		return nil, ErrInvalidDuration
	}

	// Fast path; Create repeats the check atomically
	if _, err := s.registry.FindByVoiceChannel(input.VoiceChannelID); err == nil {
		return nil, ErrChannelBusy
	}

	now := s.clock.Now()
	session := &models.StudySession{
		HostID:           input.HostID,
		VoiceChannelID:   input.VoiceChannelID,
		VoiceChannelName: input.VoiceChannelName,
		GuildID:          input.GuildID,
		TextChannelID:    input.TextChannelID,
		RecordID:         s.uuidGenerator.NewUUID(),
		StartTime:        now,
		Duration:         input.Duration,
		PointsPerMinute:  s.pointsPerMinute,
		Active:           true,
		TimerGeneration:  1,
	}

	// One retry with a fresh code on collision
	var err error
	for attempt := 0; attempt < 2; attempt++ {
		session.Code = code.Normalize(s.codeGenerator.NewSessionCode())
		err = s.registry.Create(session)
		if !errors.Is(err, ErrDuplicateCode) {
			break
		}
		log.Printf("Study: session code %s already in use, attempt %d", session.Code, attempt+1)
	}
	if err != nil {
		return nil, err
	}

	s.armTimer(session.Code, session.RecordID, session.TimerGeneration, session.TimeLeft(now))

	// A stop that landed before the timer was armed had nothing to cancel
	current, err := s.registry.Get(session.Code)
	stillRunning := err == nil && current.RecordID == session.RecordID
	if !stillRunning {
		s.dropTimer(session.RecordID)
	}

	_, err = s.sessionRecordRepo.CreateSessionRecord(ctx, &sessionRecordRepo.CreateSessionRecordInput{
		ID:               session.RecordID,
		Code:             session.Code,
		GuildID:          session.GuildID,
		HostID:           session.HostID,
		VoiceChannelID:   session.VoiceChannelID,
		VoiceChannelName: session.VoiceChannelName,
		Duration:         session.Duration,
		PointsPerMinute:  session.PointsPerMinute,
		StartedAt:        session.StartTime,
	})
	if err != nil {
		log.Printf("Study: failed to record start of session %s: %v", session.Code, err)
	}

	if stillRunning {
		s.renameChannel(ctx, session.VoiceChannelID, sessionChannelName(session))
	}

	log.Printf("Study: session %s started by %s in %s for %d minutes",
		session.Code, session.HostID, session.VoiceChannelID, session.Duration)

	return &StartSessionOutput{
		Session:     session.Copy(),
		MembersInVC: s.countMembers(ctx, session.VoiceChannelID),
	}, nil
}

// GetStatus reports elapsed and remaining time for a session
func (s *service) GetStatus(ctx context.Context, input *GetStatusInput) (*GetStatusOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	session, err := s.registry.Get(input.Code)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	return &GetStatusOutput{
		Session:          session,
		ElapsedMinutes:   session.ElapsedMinutes(now),
		RemainingMinutes: session.RemainingMinutes(now),
		MembersInVC:      s.countMembers(ctx, session.VoiceChannelID),
	}, nil
}

// StopSession ends a session early and credits the time studied so far
func (s *service) StopSession(ctx context.Context, input *StopSessionInput) (*StopSessionOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	session, err := s.registry.Get(input.Code)
	if err != nil {
		return nil, err
	}

	if session.HostID != input.RequesterID {
		return nil, ErrPermissionDenied
	}

	// Only the caller that removes the entry settles it
	session, err = s.registry.TakeIf(input.Code, sameInstance(session))
	if err != nil {
		return nil, ErrSessionNotFound
	}

	minutes := session.MinutesStudied(s.clock.Now())
	report := s.terminate(ctx, session, models.SessionOutcomeStopped, minutes)

	return &StopSessionOutput{
		Session: session,
		Report:  report,
	}, nil
}

// PauseSession freezes a session's countdown
func (s *service) PauseSession(ctx context.Context, input *PauseSessionInput) (*PauseSessionOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	now := s.clock.Now()
	session, err := s.registry.Update(input.Code, func(session *models.StudySession) error {
		if session.Paused {
			return ErrAlreadyPaused
		}

		remaining := session.RemainingMinutes(now)
		if remaining <= 0 {
			return ErrSessionExpired
		}

		session.RemainingTime = remaining
		session.Paused = true
		session.PausedAt = now
		session.TimerGeneration++
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.disarmTimer(session.RecordID, session.TimerGeneration)

	log.Printf("Study: session %s paused with %d minutes remaining", session.Code, session.RemainingTime)

	return &PauseSessionOutput{
		Session: session,
	}, nil
}

// ResumeSession restarts a paused countdown
func (s *service) ResumeSession(ctx context.Context, input *ResumeSessionInput) (*ResumeSessionOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	now := s.clock.Now()
	session, err := s.registry.Update(input.Code, func(session *models.StudySession) error {
		if !session.Paused {
			return ErrNotPaused
		}

		// Push the start forward so the pause does not count as study time
		session.StartTime = session.StartTime.Add(now.Sub(session.PausedAt))
		session.Paused = false
		session.PausedAt = time.Time{}
		session.RemainingTime = 0
		session.TimerGeneration++
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.armTimer(session.Code, session.RecordID, session.TimerGeneration, session.TimeLeft(now))

	log.Printf("Study: session %s resumed", session.Code)

	return &ResumeSessionOutput{
		Session:          session,
		RemainingMinutes: session.RemainingMinutes(now),
	}, nil
}

// ExtendSession adds minutes to a session
func (s *service) ExtendSession(ctx context.Context, input *ExtendSessionInput) (*ExtendSessionOutput, error) {
	if input == nil || input.Minutes <= 0 {
		return nil, ErrInvalidInput
	}

	now := s.clock.Now()
	session, err := s.registry.Update(input.Code, func(session *models.StudySession) error {
		session.Duration += input.Minutes
		if session.Paused {
			// Resume arms the timer with the new total
			session.RemainingTime += input.Minutes
			return nil
		}
		session.TimerGeneration++
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !session.Paused {
		s.armTimer(session.Code, session.RecordID, session.TimerGeneration, session.TimeLeft(now))
	}

	s.renameChannel(ctx, session.VoiceChannelID, sessionChannelName(session))

	log.Printf("Study: session %s extended by %d to %d minutes", session.Code, input.Minutes, session.Duration)

	return &ExtendSessionOutput{
		Session:          session,
		RemainingMinutes: session.RemainingMinutes(now),
	}, nil
}

// Close stops every expiry timer
func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for recordID, armed := range s.timers {
		armed.timer.Stop()
		delete(s.timers, recordID)
	}

	if sessions := s.registry.List(); len(sessions) > 0 {
		log.Printf("Study: shutting down with %d active sessions", len(sessions))
	}
}

// handleExpiry is the timer callback for a session reaching its planned duration
func (s *service) handleExpiry(sessionCode, recordID string, generation int) {
	s.releaseTimer(recordID, generation)

	session, err := s.registry.TakeIf(sessionCode, func(session *models.StudySession) bool {
		return session.RecordID == recordID && !session.Paused && session.TimerGeneration == generation
	})
	if err != nil {
		log.Printf("Study: expiry for session %s ignored, it was stopped, paused or rescheduled", sessionCode)
		return
	}

	s.terminate(context.Background(), session, models.SessionOutcomeExpired, session.Duration)
}

// terminate runs everything that follows a session leaving the registry.
// Callers must have removed the session themselves so this runs once per session.
func (s *service) terminate(ctx context.Context, session *models.StudySession, outcome models.SessionOutcome, minutes int) *models.SettlementReport {
	s.dropTimer(session.RecordID)

	report := s.settle(ctx, session, minutes)

	switch outcome {
	case models.SessionOutcomeExpired, models.SessionOutcomeAbandoned:
		s.renameChannel(ctx, session.VoiceChannelID, s.completedChannelName)
	default:
		s.renameChannel(ctx, session.VoiceChannelID, session.VoiceChannelName)
	}

	_, err := s.sessionRecordRepo.CompleteSessionRecord(ctx, &sessionRecordRepo.CompleteSessionRecordInput{
		RecordID:        session.RecordID,
		Outcome:         outcome,
		Duration:        session.Duration,
		MinutesStudied:  minutes,
		PointsAwarded:   report.PointsPerMember * len(report.Credited),
		MembersCredited: len(report.Credited),
		EndedAt:         s.clock.Now(),
	})
	if err != nil {
		log.Printf("Study: failed to record end of session %s: %v", session.Code, err)
	}

	// The stop command replies to the host directly
	if outcome != models.SessionOutcomeStopped {
		s.notifySessionEnded(ctx, session, outcome, report)
	}

	log.Printf("Study: session %s ended (%s), %d minutes, %d credited, %d failed",
		session.Code, outcome, minutes, len(report.Credited), len(report.Failed))

	return report
}

func (s *service) notifySessionEnded(ctx context.Context, session *models.StudySession, outcome models.SessionOutcome, report *models.SettlementReport) {
	channelID := s.notificationChannel(ctx, session)
	if channelID == "" {
		return
	}

	msg, err := s.messagingService.GetSessionEndedMessage(ctx, &messaging.GetSessionEndedMessageInput{
		Code:    session.Code,
		Outcome: outcome,
		Report:  report,
	})
	if err != nil {
		log.Printf("Study: failed to build end message for session %s: %v", session.Code, err)
		return
	}

	s.postMessage(ctx, channelID, msg.Message)
}

// armTimer schedules expiry for a session. A timer from a newer generation is never replaced.
func (s *service) armTimer(sessionCode, recordID string, generation int, delay time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.timers[recordID]; ok {
		if existing.generation > generation {
			return
		}
		existing.timer.Stop()
	}

	timer := s.clock.AfterFunc(delay, func() {
		s.handleExpiry(sessionCode, recordID, generation)
	})
	s.timers[recordID] = &armedTimer{
		timer:      timer,
		generation: generation,
	}
}

// disarmTimer stops a session's timer if it predates generation
func (s *service) disarmTimer(recordID string, generation int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.timers[recordID]; ok && existing.generation < generation {
		existing.timer.Stop()
		delete(s.timers, recordID)
	}
}

// releaseTimer forgets a timer that has fired
func (s *service) releaseTimer(recordID string, generation int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.timers[recordID]; ok && existing.generation == generation {
		delete(s.timers, recordID)
	}
}

// dropTimer stops a session's timer whatever its generation
func (s *service) dropTimer(recordID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.timers[recordID]; ok {
		existing.timer.Stop()
		delete(s.timers, recordID)
	}
}

func (s *service) renameChannel(ctx context.Context, channelID, name string) {
	if name == "" {
		return
	}
	if err := s.channels.RenameChannel(ctx, channelID, name); err != nil {
		log.Printf("Study: failed to rename channel %s to %q: %v", channelID, name, err)
	}
}

func (s *service) postMessage(ctx context.Context, channelID, content string) {
	if err := s.notifier.PostMessage(ctx, channelID, content); err != nil {
		log.Printf("Study: failed to post to channel %s: %v", channelID, err)
	}
}

// countMembers returns the number of non-bot members in a voice channel, or zero if it cannot tell
func (s *service) countMembers(ctx context.Context, channelID string) int {
	members, err := s.members.ListPresentMembers(ctx, channelID)
	if err != nil {
		log.Printf("Study: failed to list members of %s: %v", channelID, err)
		return 0
	}
	return len(platform.HumanMembers(members))
}

// notificationChannel picks the server's configured text channel, falling back to where the session started
func (s *service) notificationChannel(ctx context.Context, session *models.StudySession) string {
	settings, err := s.guildSettingsRepo.GetSettings(ctx, session.GuildID)
	if err == nil && settings.TextChannelID != "" {
		return settings.TextChannelID
	}
	if err != nil && !errors.Is(err, guildSettingsRepo.ErrSettingsNotFound) {
		log.Printf("Study: failed to load settings for guild %s: %v", session.GuildID, err)
	}
	return session.TextChannelID
}

func sessionChannelName(session *models.StudySession) string {
	return fmt.Sprintf("%d [%s]", session.Duration, session.Code)
}

// sameInstance matches the exact session that was read, not a later one reusing its code
func sameInstance(session *models.StudySession) func(*models.StudySession) bool {
	return func(candidate *models.StudySession) bool {
		return candidate.RecordID == session.RecordID
	}
}
