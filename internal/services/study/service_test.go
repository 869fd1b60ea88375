package study

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/studyhall/internal/common/clock"
	clockMocks "github.com/KirkDiggler/studyhall/internal/common/clock/mocks"
	codeMocks "github.com/KirkDiggler/studyhall/internal/common/code/mocks"
	uuidMocks "github.com/KirkDiggler/studyhall/internal/common/uuid/mocks"
	"github.com/KirkDiggler/studyhall/internal/models"
	"github.com/KirkDiggler/studyhall/internal/platform"
	platformMocks "github.com/KirkDiggler/studyhall/internal/platform/mocks"
	guildSettingsRepo "github.com/KirkDiggler/studyhall/internal/repositories/guild_settings"
	guildSettingsMocks "github.com/KirkDiggler/studyhall/internal/repositories/guild_settings/mocks"
	presenceRepo "github.com/KirkDiggler/studyhall/internal/repositories/presence"
	presenceMocks "github.com/KirkDiggler/studyhall/internal/repositories/presence/mocks"
	sessionRecordRepo "github.com/KirkDiggler/studyhall/internal/repositories/session_record"
	sessionRecordMocks "github.com/KirkDiggler/studyhall/internal/repositories/session_record/mocks"
	userStatsRepo "github.com/KirkDiggler/studyhall/internal/repositories/user_stats"
	userStatsMocks "github.com/KirkDiggler/studyhall/internal/repositories/user_stats/mocks"
	"github.com/KirkDiggler/studyhall/internal/services/messaging"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// capturedTimer is an expiry timer the test fires by hand
type capturedTimer struct {
	delay    time.Duration
	callback func()
	mu       sync.Mutex
	stopped  bool
}

func (t *capturedTimer) fire() {
	t.callback()
}

func (t *capturedTimer) isStopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}

// interleavingRegistry runs afterCreate as soon as a session becomes visible
type interleavingRegistry struct {
	Registry
	afterCreate func(session *models.StudySession)
}

func (r *interleavingRegistry) Create(session *models.StudySession) error {
	if err := r.Registry.Create(session); err != nil {
		return err
	}
	if r.afterCreate != nil {
		r.afterCreate(session.Copy())
	}
	return nil
}

type postedMessage struct {
	channelID string
	content   string
}

type StudyServiceTestSuite struct {
	suite.Suite
	mockCtrl              *gomock.Controller
	mockClock             *clockMocks.MockClock
	mockCodeGenerator     *codeMocks.MockGenerator
	mockUUID              *uuidMocks.MockUUID
	mockMembers           *platformMocks.MockMemberEnumerator
	mockChannels          *platformMocks.MockChannelController
	mockNotifier          *platformMocks.MockNotifier
	mockUserStatsRepo     *userStatsMocks.MockRepository
	mockPresenceRepo      *presenceMocks.MockRepository
	mockSessionRecordRepo *sessionRecordMocks.MockRepository
	mockGuildSettingsRepo *guildSettingsMocks.MockRepository
	registry              *memoryRegistry
	studyService          *service
	ctx                   context.Context

	// Test data
	testStart         time.Time
	testCode          string
	testRecordID      string
	testGuildID       string
	testHostID        string
	testMemberID      string
	testVoiceChannel  string
	testVoiceName     string
	testTextChannelID string
	testHost          *platform.Member
	testMember        *platform.Member
	testBot           *platform.Member

	// Controlled by each test
	mu             sync.Mutex
	now            time.Time
	presentMembers []*platform.Member
	membersErr     error
	settings       *models.GuildSettings
	timers         []*capturedTimer
	renames        []string
	posts          []postedMessage
	completed      []*sessionRecordRepo.CompleteSessionRecordInput
}

func (s *StudyServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockCodeGenerator = codeMocks.NewMockGenerator(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.mockMembers = platformMocks.NewMockMemberEnumerator(s.mockCtrl)
	s.mockChannels = platformMocks.NewMockChannelController(s.mockCtrl)
	s.mockNotifier = platformMocks.NewMockNotifier(s.mockCtrl)
	s.mockUserStatsRepo = userStatsMocks.NewMockRepository(s.mockCtrl)
	s.mockPresenceRepo = presenceMocks.NewMockRepository(s.mockCtrl)
	s.mockSessionRecordRepo = sessionRecordMocks.NewMockRepository(s.mockCtrl)
	s.mockGuildSettingsRepo = guildSettingsMocks.NewMockRepository(s.mockCtrl)
	s.registry = NewRegistry()
	s.ctx = context.Background()

	s.testStart = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testCode = "AB12C"
	s.testRecordID = "record-1"
	s.testGuildID = "guild-1"
	s.testHostID = "host-1"
	s.testMemberID = "user-2"
	s.testVoiceChannel = "voice-1"
	s.testVoiceName = "Library"
	s.testTextChannelID = "text-1"
	s.testHost = &platform.Member{ID: s.testHostID, Name: "Host"}
	s.testMember = &platform.Member{ID: s.testMemberID, Name: "Member"}
	s.testBot = &platform.Member{ID: "bot-1", Name: "Bot", Bot: true}

	s.now = s.testStart
	s.presentMembers = []*platform.Member{s.testHost, s.testMember, s.testBot}
	s.membersErr = nil
	s.settings = nil
	s.timers = nil
	s.renames = nil
	s.posts = nil
	s.completed = nil

	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.now
	}).AnyTimes()

	s.mockClock.EXPECT().AfterFunc(gomock.Any(), gomock.Any()).DoAndReturn(func(d time.Duration, f func()) clock.Timer {
		captured := &capturedTimer{delay: d, callback: f}
		timer := clockMocks.NewMockTimer(s.mockCtrl)
		timer.EXPECT().Stop().DoAndReturn(func() bool {
			captured.mu.Lock()
			defer captured.mu.Unlock()
			captured.stopped = true
			return true
		}).AnyTimes()

		s.mu.Lock()
		s.timers = append(s.timers, captured)
		s.mu.Unlock()
		return timer
	}).AnyTimes()

	s.mockMembers.EXPECT().ListPresentMembers(gomock.Any(), s.testVoiceChannel).DoAndReturn(
		func(ctx context.Context, channelID string) ([]*platform.Member, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			return s.presentMembers, s.membersErr
		}).AnyTimes()

	s.mockChannels.EXPECT().RenameChannel(gomock.Any(), s.testVoiceChannel, gomock.Any()).DoAndReturn(
		func(ctx context.Context, channelID, name string) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.renames = append(s.renames, name)
			return nil
		}).AnyTimes()

	s.mockNotifier.EXPECT().PostMessage(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, channelID, content string) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.posts = append(s.posts, postedMessage{channelID: channelID, content: content})
			return nil
		}).AnyTimes()

	s.mockGuildSettingsRepo.EXPECT().GetSettings(gomock.Any(), s.testGuildID).DoAndReturn(
		func(ctx context.Context, guildID string) (*models.GuildSettings, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.settings == nil {
				return nil, guildSettingsRepo.ErrSettingsNotFound
			}
			return s.settings, nil
		}).AnyTimes()

	s.mockSessionRecordRepo.EXPECT().CreateSessionRecord(gomock.Any(), gomock.Any()).Return(
		&sessionRecordRepo.CreateSessionRecordOutput{Record: &models.SessionRecord{}}, nil).AnyTimes()

	s.mockSessionRecordRepo.EXPECT().CompleteSessionRecord(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, input *sessionRecordRepo.CompleteSessionRecordInput) (*sessionRecordRepo.CompleteSessionRecordOutput, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.completed = append(s.completed, input)
			return &sessionRecordRepo.CompleteSessionRecordOutput{Record: &models.SessionRecord{}}, nil
		}).AnyTimes()

	messagingService, err := messaging.NewService(&messaging.ServiceConfig{Seed: 7})
	s.Require().NoError(err)

	studyService, err := New(&Config{
		MinDuration:             4,
		PointsPerMinute:         10,
		PresencePointsPerMinute: 1,
		VoteWindow:              60 * time.Second,
		SettlementConcurrency:   2,
		CompletedChannelName:    "Study Completed",
		Registry:                s.registry,
		Clock:                   s.mockClock,
		CodeGenerator:           s.mockCodeGenerator,
		UUIDGenerator:           s.mockUUID,
		MemberEnumerator:        s.mockMembers,
		ChannelController:       s.mockChannels,
		Notifier:                s.mockNotifier,
		UserStatsRepo:           s.mockUserStatsRepo,
		PresenceRepo:            s.mockPresenceRepo,
		SessionRecordRepo:       s.mockSessionRecordRepo,
		GuildSettingsRepo:       s.mockGuildSettingsRepo,
		MessagingService:        messagingService,
	})
	s.Require().NoError(err)
	s.studyService = studyService
}

func (s *StudyServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestStudyServiceSuite(t *testing.T) {
	suite.Run(t, new(StudyServiceTestSuite))
}

// Helpers

func (s *StudyServiceTestSuite) advance(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = s.now.Add(d)
}

func (s *StudyServiceTestSuite) setMembers(members ...*platform.Member) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.presentMembers = members
}

func (s *StudyServiceTestSuite) timer(i int) *capturedTimer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Require().Greater(len(s.timers), i, "timer %d was never armed", i)
	return s.timers[i]
}

func (s *StudyServiceTestSuite) timerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

func (s *StudyServiceTestSuite) lastRename() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Require().NotEmpty(s.renames)
	return s.renames[len(s.renames)-1]
}

func (s *StudyServiceTestSuite) completedRecords() []*sessionRecordRepo.CompleteSessionRecordInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*sessionRecordRepo.CompleteSessionRecordInput(nil), s.completed...)
}

func (s *StudyServiceTestSuite) postsTo(channelID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var contents []string
	for _, p := range s.posts {
		if p.channelID == channelID {
			contents = append(contents, p.content)
		}
	}
	return contents
}

func (s *StudyServiceTestSuite) startSession(duration int) *models.StudySession {
	s.mockCodeGenerator.EXPECT().NewSessionCode().Return(s.testCode)
	s.mockUUID.EXPECT().NewUUID().Return(s.testRecordID)

	out, err := s.studyService.StartSession(s.ctx, &StartSessionInput{
		HostID:           s.testHostID,
		GuildID:          s.testGuildID,
		VoiceChannelID:   s.testVoiceChannel,
		VoiceChannelName: s.testVoiceName,
		TextChannelID:    s.testTextChannelID,
		Duration:         duration,
	})
	s.Require().NoError(err)
	return out.Session
}

func (s *StudyServiceTestSuite) creditInput(userID string, points, minutes int) *userStatsRepo.CreditUserInput {
	return &userStatsRepo.CreditUserInput{
		UserID:    userID,
		GuildID:   s.testGuildID,
		Points:    points,
		StudyTime: minutes,
	}
}

func (s *StudyServiceTestSuite) expectCredit(userID string, points, minutes int) {
	s.mockUserStatsRepo.EXPECT().CreditUser(gomock.Any(), s.creditInput(userID, points, minutes)).
		Return(&userStatsRepo.CreditUserOutput{Stats: &models.UserStats{UserID: userID}}, nil)
}

func (s *StudyServiceTestSuite) expectNoPresence() {
	s.mockPresenceRepo.EXPECT().ClosePresence(gomock.Any(), gomock.Any()).Return(nil, presenceRepo.ErrPresenceNotFound)
}

func (s *StudyServiceTestSuite) hostLeaves() *HandleVoicePresenceChangeOutput {
	out, err := s.studyService.HandleVoicePresenceChange(s.ctx, &HandleVoicePresenceChangeInput{
		UserID:       s.testHostID,
		GuildID:      s.testGuildID,
		OldChannelID: s.testVoiceChannel,
	})
	s.Require().NoError(err)
	return out
}

// Construction

func (s *StudyServiceTestSuite) TestNew_RequiresDependencies() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilRegistry)

	_, err = New(&Config{Registry: s.registry, Clock: s.mockClock})
	s.ErrorIs(err, ErrNilCodeGenerator)
}

func (s *StudyServiceTestSuite) TestNew_AppliesDefaults() {
	svc, err := New(&Config{
		Registry:          s.registry,
		Clock:             s.mockClock,
		CodeGenerator:     s.mockCodeGenerator,
		UUIDGenerator:     s.mockUUID,
		MemberEnumerator:  s.mockMembers,
		ChannelController: s.mockChannels,
		Notifier:          s.mockNotifier,
		UserStatsRepo:     s.mockUserStatsRepo,
		PresenceRepo:      s.mockPresenceRepo,
		SessionRecordRepo: s.mockSessionRecordRepo,
		GuildSettingsRepo: s.mockGuildSettingsRepo,
		MessagingService:  s.studyService.messagingService,
	})
	s.Require().NoError(err)
	s.Equal(DefaultMinDuration, svc.minDuration)
	s.Equal(DefaultPointsPerMinute, svc.pointsPerMinute)
	s.Equal(DefaultVoteWindow, svc.voteWindow)
	s.Equal(DefaultCompletedChannelName, svc.completedChannelName)
	s.Equal(DefaultLeaderboardSize, svc.leaderboardSize)
}

// Start and status

func (s *StudyServiceTestSuite) TestStartSession_ThenStatus() {
	session := s.startSession(10)

	s.Equal(s.testCode, session.Code)
	s.Equal(s.testRecordID, session.RecordID)
	s.Equal(10, session.PointsPerMinute)
	s.True(session.Active)
	s.Equal("10 [AB12C]", s.lastRename())

	s.Equal(1, s.timerCount())
	s.Equal(10*time.Minute, s.timer(0).delay)

	status, err := s.studyService.GetStatus(s.ctx, &GetStatusInput{Code: "ab12c"})
	s.Require().NoError(err)
	s.Equal(0, status.ElapsedMinutes)
	s.Equal(10, status.RemainingMinutes)
	s.Equal(2, status.MembersInVC)
}

func (s *StudyServiceTestSuite) TestStartSession_ReportsMembersInVC() {
	s.mockCodeGenerator.EXPECT().NewSessionCode().Return(s.testCode)
	s.mockUUID.EXPECT().NewUUID().Return(s.testRecordID)

	out, err := s.studyService.StartSession(s.ctx, &StartSessionInput{
		HostID:         s.testHostID,
		GuildID:        s.testGuildID,
		VoiceChannelID: s.testVoiceChannel,
		Duration:       25,
	})
	s.Require().NoError(err)
	s.Equal(2, out.MembersInVC)
}

func (s *StudyServiceTestSuite) TestStartSession_InvalidDuration() {
	_, err := s.studyService.StartSession(s.ctx, &StartSessionInput{
		HostID:         s.testHostID,
		GuildID:        s.testGuildID,
		VoiceChannelID: s.testVoiceChannel,
		Duration:       3,
	})
	s.ErrorIs(err, ErrInvalidDuration)
	s.Empty(s.registry.List())
}

func (s *StudyServiceTestSuite) TestStartSession_InvalidInput() {
	_, err := s.studyService.StartSession(s.ctx, nil)
	s.ErrorIs(err, ErrInvalidInput)

	_, err = s.studyService.StartSession(s.ctx, &StartSessionInput{HostID: s.testHostID, Duration: 10})
	s.ErrorIs(err, ErrInvalidInput)
}

func (s *StudyServiceTestSuite) TestStartSession_ChannelBusy() {
	s.startSession(10)

	_, err := s.studyService.StartSession(s.ctx, &StartSessionInput{
		HostID:         s.testMemberID,
		GuildID:        s.testGuildID,
		VoiceChannelID: s.testVoiceChannel,
		Duration:       30,
	})
	s.ErrorIs(err, ErrChannelBusy)
	s.Len(s.registry.List(), 1)
}

func (s *StudyServiceTestSuite) TestStartSession_ConcurrentStartsInOneChannel() {
	var counter int
	var counterMu sync.Mutex
	s.mockCodeGenerator.EXPECT().NewSessionCode().DoAndReturn(func() string {
		counterMu.Lock()
		defer counterMu.Unlock()
		counter++
		return fmt.Sprintf("C%04d", counter)
	}).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().DoAndReturn(func() string {
		counterMu.Lock()
		defer counterMu.Unlock()
		counter++
		return fmt.Sprintf("record-%d", counter)
	}).AnyTimes()

	var wg sync.WaitGroup
	var resultsMu sync.Mutex
	started, busy := 0, 0
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.studyService.StartSession(s.ctx, &StartSessionInput{
				HostID:         fmt.Sprintf("host-%d", i),
				GuildID:        s.testGuildID,
				VoiceChannelID: s.testVoiceChannel,
				Duration:       10,
			})
			resultsMu.Lock()
			defer resultsMu.Unlock()
			if err == nil {
				started++
			} else if errors.Is(err, ErrChannelBusy) {
				busy++
			}
		}(i)
	}
	wg.Wait()

	s.Equal(1, started)
	s.Equal(9, busy)
	s.Len(s.registry.List(), 1)
}

func (s *StudyServiceTestSuite) TestStartSession_RetriesDuplicateCodeOnce() {
	s.Require().NoError(s.registry.Create(&models.StudySession{
		Code:           "TAKEN",
		VoiceChannelID: "voice-other",
		Active:         true,
	}))

	gomock.InOrder(
		s.mockCodeGenerator.EXPECT().NewSessionCode().Return("TAKEN"),
		s.mockCodeGenerator.EXPECT().NewSessionCode().Return(s.testCode),
	)
	s.mockUUID.EXPECT().NewUUID().Return(s.testRecordID)

	out, err := s.studyService.StartSession(s.ctx, &StartSessionInput{
		HostID:         s.testHostID,
		GuildID:        s.testGuildID,
		VoiceChannelID: s.testVoiceChannel,
		Duration:       10,
	})
	s.Require().NoError(err)
	s.Equal(s.testCode, out.Session.Code)
}

func (s *StudyServiceTestSuite) TestStartSession_SurfacesRepeatedDuplicateCode() {
	s.Require().NoError(s.registry.Create(&models.StudySession{
		Code:           "TAKEN",
		VoiceChannelID: "voice-other",
		Active:         true,
	}))

	s.mockCodeGenerator.EXPECT().NewSessionCode().Return("TAKEN").Times(2)
	s.mockUUID.EXPECT().NewUUID().Return(s.testRecordID)

	_, err := s.studyService.StartSession(s.ctx, &StartSessionInput{
		HostID:         s.testHostID,
		GuildID:        s.testGuildID,
		VoiceChannelID: s.testVoiceChannel,
		Duration:       10,
	})
	s.ErrorIs(err, ErrDuplicateCode)
	s.Equal(0, s.timerCount())
}

func (s *StudyServiceTestSuite) TestStartSession_StoppedBeforeTimerArmed() {
	s.studyService.registry = &interleavingRegistry{
		Registry: s.registry,
		afterCreate: func(session *models.StudySession) {
			_, err := s.studyService.StopSession(s.ctx, &StopSessionInput{
				Code:        session.Code,
				RequesterID: s.testHostID,
			})
			s.Require().NoError(err)
		},
	}

	s.startSession(25)

	s.Require().Equal(1, s.timerCount())
	s.True(s.timer(0).isStopped())

	s.studyService.mu.Lock()
	s.Empty(s.studyService.timers)
	s.studyService.mu.Unlock()

	// The stop restored the name; the start must not rename it back
	s.Equal(s.testVoiceName, s.lastRename())
	s.Require().Len(s.completedRecords(), 1)
	s.Equal(models.SessionOutcomeStopped, s.completedRecords()[0].Outcome)
}

func (s *StudyServiceTestSuite) TestStartSession_RenameFailureIsNotFatal() {
	s.mockCodeGenerator.EXPECT().NewSessionCode().Return(s.testCode)
	s.mockUUID.EXPECT().NewUUID().Return(s.testRecordID)
	s.mockChannels.EXPECT().RenameChannel(gomock.Any(), "voice-2", gomock.Any()).Return(errors.New("missing permissions"))
	s.mockMembers.EXPECT().ListPresentMembers(gomock.Any(), "voice-2").Return(nil, nil)

	out, err := s.studyService.StartSession(s.ctx, &StartSessionInput{
		HostID:         s.testHostID,
		GuildID:        s.testGuildID,
		VoiceChannelID: "voice-2",
		Duration:       10,
	})
	s.Require().NoError(err)
	s.Equal(0, out.MembersInVC)
}

func (s *StudyServiceTestSuite) TestGetStatus_NotFound() {
	_, err := s.studyService.GetStatus(s.ctx, &GetStatusInput{Code: "NOPE1"})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *StudyServiceTestSuite) TestGetStatus_ClampsRemainingAtZero() {
	s.startSession(10)
	s.advance(14 * time.Minute)

	status, err := s.studyService.GetStatus(s.ctx, &GetStatusInput{Code: s.testCode})
	s.Require().NoError(err)
	s.Equal(14, status.ElapsedMinutes)
	s.Equal(0, status.RemainingMinutes)
}

// Stop

func (s *StudyServiceTestSuite) TestStopSession_NotHost() {
	s.startSession(10)

	_, err := s.studyService.StopSession(s.ctx, &StopSessionInput{
		Code:        s.testCode,
		RequesterID: s.testMemberID,
	})
	s.ErrorIs(err, ErrPermissionDenied)

	_, err = s.studyService.GetStatus(s.ctx, &GetStatusInput{Code: s.testCode})
	s.NoError(err)
	s.Empty(s.completedRecords())
}

func (s *StudyServiceTestSuite) TestStopSession_CreditsElapsedMinutes() {
	s.startSession(10)
	s.advance(6*time.Minute + 40*time.Second)

	s.expectCredit(s.testHostID, 60, 6)
	s.expectCredit(s.testMemberID, 60, 6)

	out, err := s.studyService.StopSession(s.ctx, &StopSessionInput{
		Code:        s.testCode,
		RequesterID: s.testHostID,
	})
	s.Require().NoError(err)
	s.Equal(6, out.Report.MinutesStudied)
	s.Equal(60, out.Report.PointsPerMember)
	s.Equal([]string{s.testHostID, s.testMemberID}, out.Report.CreditedIDs())
	s.Empty(out.Report.Failed)

	s.True(s.timer(0).isStopped())
	s.Equal(s.testVoiceName, s.lastRename())

	records := s.completedRecords()
	s.Require().Len(records, 1)
	s.Equal(models.SessionOutcomeStopped, records[0].Outcome)
	s.Equal(6, records[0].MinutesStudied)
	s.Equal(120, records[0].PointsAwarded)
	s.Equal(2, records[0].MembersCredited)

	// The host gets the summary in the command reply, not the channel
	s.Empty(s.postsTo(s.testTextChannelID))

	_, err = s.studyService.GetStatus(s.ctx, &GetStatusInput{Code: s.testCode})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *StudyServiceTestSuite) TestStopSession_CapsAtDuration() {
	s.startSession(10)
	s.advance(25 * time.Minute)

	s.expectCredit(s.testHostID, 100, 10)
	s.expectCredit(s.testMemberID, 100, 10)

	out, err := s.studyService.StopSession(s.ctx, &StopSessionInput{Code: s.testCode, RequesterID: s.testHostID})
	s.Require().NoError(err)
	s.Equal(10, out.Report.MinutesStudied)
}

func (s *StudyServiceTestSuite) TestStopSession_ZeroMinutesCreditsNobody() {
	s.startSession(10)
	s.advance(30 * time.Second)

	out, err := s.studyService.StopSession(s.ctx, &StopSessionInput{Code: s.testCode, RequesterID: s.testHostID})
	s.Require().NoError(err)
	s.Empty(out.Report.Credited)
	s.Equal(0, out.Report.PointsPerMember)
}

func (s *StudyServiceTestSuite) TestStopSession_NotFound() {
	_, err := s.studyService.StopSession(s.ctx, &StopSessionInput{Code: "NOPE1", RequesterID: s.testHostID})
	s.ErrorIs(err, ErrSessionNotFound)
}

// Natural expiry

func (s *StudyServiceTestSuite) TestExpiry_CreditsFullDuration() {
	s.startSession(10)
	s.advance(10 * time.Minute)

	s.expectCredit(s.testHostID, 100, 10)
	s.expectCredit(s.testMemberID, 100, 10)

	s.timer(0).fire()

	_, err := s.studyService.GetStatus(s.ctx, &GetStatusInput{Code: s.testCode})
	s.ErrorIs(err, ErrSessionNotFound)
	s.Equal("Study Completed", s.lastRename())

	records := s.completedRecords()
	s.Require().Len(records, 1)
	s.Equal(models.SessionOutcomeExpired, records[0].Outcome)
	s.Equal(10, records[0].MinutesStudied)

	posts := s.postsTo(s.testTextChannelID)
	s.Require().Len(posts, 1)
	s.Contains(posts[0], "<@host-1> earned 100 points")
	s.Contains(posts[0], "<@user-2> earned 100 points")
}

func (s *StudyServiceTestSuite) TestExpiry_UsesConfiguredTextChannel() {
	s.settings = &models.GuildSettings{GuildID: s.testGuildID, TextChannelID: "announcements"}
	s.startSession(10)
	s.advance(10 * time.Minute)

	s.expectCredit(s.testHostID, 100, 10)
	s.expectCredit(s.testMemberID, 100, 10)

	s.timer(0).fire()

	s.Len(s.postsTo("announcements"), 1)
	s.Empty(s.postsTo(s.testTextChannelID))
}

func (s *StudyServiceTestSuite) TestExpiry_AfterStopIsIgnored() {
	s.startSession(10)
	s.advance(5 * time.Minute)

	s.expectCredit(s.testHostID, 50, 5)
	s.expectCredit(s.testMemberID, 50, 5)

	_, err := s.studyService.StopSession(s.ctx, &StopSessionInput{Code: s.testCode, RequesterID: s.testHostID})
	s.Require().NoError(err)

	// A timer that already fired cannot be stopped, so its callback still runs
	s.timer(0).fire()

	s.Len(s.completedRecords(), 1)
}

func (s *StudyServiceTestSuite) TestExpiry_RacesStopAndSettlesOnce() {
	s.startSession(10)
	s.advance(5 * time.Minute)

	// Whichever path wins credits each member exactly once
	s.mockUserStatsRepo.EXPECT().CreditUser(gomock.Any(), gomock.Any()).Return(&userStatsRepo.CreditUserOutput{}, nil).Times(2)

	var wg sync.WaitGroup
	var stopErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		s.timer(0).fire()
	}()
	go func() {
		defer wg.Done()
		_, stopErr = s.studyService.StopSession(s.ctx, &StopSessionInput{Code: s.testCode, RequesterID: s.testHostID})
	}()
	wg.Wait()

	if stopErr != nil {
		s.ErrorIs(stopErr, ErrSessionNotFound)
	}
	s.Len(s.completedRecords(), 1)
	s.Empty(s.registry.List())
}

// Pause, resume and extend

func (s *StudyServiceTestSuite) TestPauseResume_ExcludesPausedTime() {
	s.startSession(10)
	s.advance(3 * time.Minute)

	before, err := s.studyService.GetStatus(s.ctx, &GetStatusInput{Code: s.testCode})
	s.Require().NoError(err)
	s.Equal(7, before.RemainingMinutes)

	paused, err := s.studyService.PauseSession(s.ctx, &PauseSessionInput{Code: s.testCode})
	s.Require().NoError(err)
	s.True(paused.Session.Paused)
	s.Equal(7, paused.Session.RemainingTime)
	s.True(s.timer(0).isStopped())

	s.advance(30 * time.Minute)

	during, err := s.studyService.GetStatus(s.ctx, &GetStatusInput{Code: s.testCode})
	s.Require().NoError(err)
	s.Equal(7, during.RemainingMinutes)
	s.Equal(3, during.ElapsedMinutes)

	resumed, err := s.studyService.ResumeSession(s.ctx, &ResumeSessionInput{Code: s.testCode})
	s.Require().NoError(err)
	s.Equal(7, resumed.RemainingMinutes)
	s.Equal(2, s.timerCount())
	s.Equal(7*time.Minute, s.timer(1).delay)

	after, err := s.studyService.GetStatus(s.ctx, &GetStatusInput{Code: s.testCode})
	s.Require().NoError(err)
	s.Equal(before.RemainingMinutes, after.RemainingMinutes)
	s.Equal(3, after.ElapsedMinutes)

	// The timer from before the pause is stale
	s.timer(0).fire()
	_, err = s.studyService.GetStatus(s.ctx, &GetStatusInput{Code: s.testCode})
	s.Require().NoError(err)

	s.advance(7 * time.Minute)
	s.expectCredit(s.testHostID, 100, 10)
	s.expectCredit(s.testMemberID, 100, 10)
	s.timer(1).fire()

	_, err = s.studyService.GetStatus(s.ctx, &GetStatusInput{Code: s.testCode})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *StudyServiceTestSuite) TestPause_Errors() {
	_, err := s.studyService.PauseSession(s.ctx, &PauseSessionInput{Code: "NOPE1"})
	s.ErrorIs(err, ErrSessionNotFound)

	s.startSession(10)
	_, err = s.studyService.PauseSession(s.ctx, &PauseSessionInput{Code: s.testCode})
	s.Require().NoError(err)

	_, err = s.studyService.PauseSession(s.ctx, &PauseSessionInput{Code: s.testCode})
	s.ErrorIs(err, ErrAlreadyPaused)
}

func (s *StudyServiceTestSuite) TestPause_ExpiredSession() {
	s.startSession(10)
	s.advance(10 * time.Minute)

	_, err := s.studyService.PauseSession(s.ctx, &PauseSessionInput{Code: s.testCode})
	s.ErrorIs(err, ErrSessionExpired)
	s.False(s.timer(0).isStopped())
}

func (s *StudyServiceTestSuite) TestResume_Errors() {
	_, err := s.studyService.ResumeSession(s.ctx, &ResumeSessionInput{Code: "NOPE1"})
	s.ErrorIs(err, ErrSessionNotFound)

	s.startSession(10)
	_, err = s.studyService.ResumeSession(s.ctx, &ResumeSessionInput{Code: s.testCode})
	s.ErrorIs(err, ErrNotPaused)
}

func (s *StudyServiceTestSuite) TestExtend_ActiveSessionRearmsTimer() {
	s.startSession(10)
	s.advance(4 * time.Minute)

	out, err := s.studyService.ExtendSession(s.ctx, &ExtendSessionInput{Code: s.testCode, Minutes: 5})
	s.Require().NoError(err)
	s.Equal(15, out.Session.Duration)
	s.Equal(11, out.RemainingMinutes)
	s.Equal("15 [AB12C]", s.lastRename())

	s.True(s.timer(0).isStopped())
	s.Equal(11*time.Minute, s.timer(1).delay)

	// The original timer no longer ends the session
	s.advance(6 * time.Minute)
	s.timer(0).fire()
	_, err = s.studyService.GetStatus(s.ctx, &GetStatusInput{Code: s.testCode})
	s.Require().NoError(err)

	s.advance(5 * time.Minute)
	s.expectCredit(s.testHostID, 150, 15)
	s.expectCredit(s.testMemberID, 150, 15)
	s.timer(1).fire()
	s.Empty(s.registry.List())
}

func (s *StudyServiceTestSuite) TestExtend_PausedSessionWaitsForResume() {
	s.startSession(10)
	s.advance(2 * time.Minute)

	_, err := s.studyService.PauseSession(s.ctx, &PauseSessionInput{Code: s.testCode})
	s.Require().NoError(err)

	out, err := s.studyService.ExtendSession(s.ctx, &ExtendSessionInput{Code: s.testCode, Minutes: 5})
	s.Require().NoError(err)
	s.Equal(15, out.Session.Duration)
	s.Equal(13, out.Session.RemainingTime)
	s.Equal(13, out.RemainingMinutes)
	s.Equal(1, s.timerCount())

	_, err = s.studyService.ResumeSession(s.ctx, &ResumeSessionInput{Code: s.testCode})
	s.Require().NoError(err)
	s.Equal(13*time.Minute, s.timer(1).delay)
}

func (s *StudyServiceTestSuite) TestExtend_Errors() {
	_, err := s.studyService.ExtendSession(s.ctx, &ExtendSessionInput{Code: "NOPE1", Minutes: 5})
	s.ErrorIs(err, ErrSessionNotFound)

	_, err = s.studyService.ExtendSession(s.ctx, &ExtendSessionInput{Code: s.testCode, Minutes: 0})
	s.ErrorIs(err, ErrInvalidInput)
}

// Settlement

func (s *StudyServiceTestSuite) TestSettlement_IsolatesMemberFailures() {
	members := make([]*platform.Member, 5)
	for i := range members {
		members[i] = &platform.Member{ID: fmt.Sprintf("user-%d", i+1)}
	}
	s.setMembers(members...)
	s.startSession(10)
	s.advance(10 * time.Minute)

	for i, m := range members {
		if i == 2 {
			s.mockUserStatsRepo.EXPECT().CreditUser(gomock.Any(), s.creditInput(m.ID, 100, 10)).
				Return(nil, errors.New("write conflict"))
			continue
		}
		s.expectCredit(m.ID, 100, 10)
	}

	s.timer(0).fire()

	records := s.completedRecords()
	s.Require().Len(records, 1)
	s.Equal(4, records[0].MembersCredited)
	s.Equal(400, records[0].PointsAwarded)
}

func (s *StudyServiceTestSuite) TestSettlement_ReportListsFailedMember() {
	members := make([]*platform.Member, 5)
	for i := range members {
		members[i] = &platform.Member{ID: fmt.Sprintf("user-%d", i+1)}
	}
	members = append(members, members[0], s.testBot)
	s.startSession(10)
	s.setMembers(members...)
	s.advance(4 * time.Minute)

	for i := 1; i <= 5; i++ {
		userID := fmt.Sprintf("user-%d", i)
		if i == 3 {
			s.mockUserStatsRepo.EXPECT().CreditUser(gomock.Any(), s.creditInput(userID, 40, 4)).
				Return(nil, errors.New("ledger unavailable"))
			continue
		}
		s.expectCredit(userID, 40, 4)
	}

	out, err := s.studyService.StopSession(s.ctx, &StopSessionInput{Code: s.testCode, RequesterID: s.testHostID})
	s.Require().NoError(err)
	s.Equal([]string{"user-1", "user-2", "user-4", "user-5"}, out.Report.CreditedIDs())
	s.Equal([]string{"user-3"}, out.Report.FailedIDs())
	s.False(out.Report.UsedFallback)
}

func (s *StudyServiceTestSuite) TestSettlement_FallsBackToPresenceLedger() {
	s.startSession(10)
	s.advance(5 * time.Minute)

	s.membersErr = errors.New("gateway unavailable")
	s.mockPresenceRepo.EXPECT().GetChannelPresences(gomock.Any(), &presenceRepo.GetChannelPresencesInput{
		GuildID:   s.testGuildID,
		ChannelID: s.testVoiceChannel,
	}).Return(&presenceRepo.GetChannelPresencesOutput{
		Presences: []*models.Presence{
			{UserID: s.testHostID, ChannelID: s.testVoiceChannel},
			{UserID: s.testMemberID, ChannelID: s.testVoiceChannel},
		},
	}, nil)
	s.mockUserStatsRepo.EXPECT().AwardPoints(gomock.Any(), &userStatsRepo.AwardPointsInput{
		UserID: s.testHostID, GuildID: s.testGuildID, Points: 50,
	}).Return(&userStatsRepo.AwardPointsOutput{Points: 50}, nil)
	s.mockUserStatsRepo.EXPECT().AwardPoints(gomock.Any(), &userStatsRepo.AwardPointsInput{
		UserID: s.testMemberID, GuildID: s.testGuildID, Points: 50,
	}).Return(nil, errors.New("still down"))

	out, err := s.studyService.StopSession(s.ctx, &StopSessionInput{Code: s.testCode, RequesterID: s.testHostID})
	s.Require().NoError(err)
	s.True(out.Report.UsedFallback)
	s.False(out.Report.FallbackFailed)
	s.Equal([]string{s.testHostID}, out.Report.CreditedIDs())
	s.Equal([]string{s.testMemberID}, out.Report.FailedIDs())
}

func (s *StudyServiceTestSuite) TestSettlement_FallbackFailureStillRemovesSession() {
	s.startSession(10)
	s.advance(10 * time.Minute)

	s.membersErr = errors.New("gateway unavailable")
	s.mockPresenceRepo.EXPECT().GetChannelPresences(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))

	s.timer(0).fire()

	s.Empty(s.registry.List())
	records := s.completedRecords()
	s.Require().Len(records, 1)
	s.Equal(0, records[0].MembersCredited)
}

// Host departure

func (s *StudyServiceTestSuite) TestHostLeaves_EmptyChannelAutoTerminates() {
	s.startSession(20)
	s.advance(5 * time.Minute)
	s.setMembers(s.testBot)

	s.expectNoPresence()

	out := s.hostLeaves()
	s.Require().NotNil(out.HostDeparture)
	s.Equal(DepartureAutoTerminated, out.HostDeparture.Outcome)
	s.Equal(20, out.HostDeparture.Report.MinutesStudied)
	s.Empty(out.HostDeparture.Report.Credited)

	s.Empty(s.registry.List())
	s.Equal("Study Completed", s.lastRename())
	s.Len(s.postsTo(s.testTextChannelID), 1)

	records := s.completedRecords()
	s.Require().Len(records, 1)
	s.Equal(models.SessionOutcomeAbandoned, records[0].Outcome)
}

func (s *StudyServiceTestSuite) TestHostLeaves_MemberVotesEnd() {
	s.startSession(20)
	s.advance(7 * time.Minute)
	s.setMembers(s.testMember)

	s.expectNoPresence()
	handle := &platform.MessageHandle{ChannelID: s.testTextChannelID, MessageID: "prompt-1"}
	s.mockNotifier.EXPECT().PostPrompt(gomock.Any(), s.testTextChannelID, gomock.Any(), []string{ContinueOption, EndOption}).Return(handle, nil)
	s.mockNotifier.EXPECT().AwaitReaction(gomock.Any(), handle, []string{ContinueOption, EndOption}, 60*time.Second).
		Return(&platform.Reaction{Option: EndOption, UserID: s.testMemberID}, nil)
	s.expectCredit(s.testMemberID, 70, 7)

	out := s.hostLeaves()
	s.Require().NotNil(out.HostDeparture)
	s.Equal(DepartureEnded, out.HostDeparture.Outcome)
	s.Equal(7, out.HostDeparture.Report.MinutesStudied)
	s.Equal([]string{s.testMemberID}, out.HostDeparture.Report.CreditedIDs())

	s.Empty(s.registry.List())
	s.Equal(s.testVoiceName, s.lastRename())
	s.True(s.timer(0).isStopped())

	records := s.completedRecords()
	s.Require().Len(records, 1)
	s.Equal(models.SessionOutcomeVotedEnd, records[0].Outcome)
}

func (s *StudyServiceTestSuite) TestHostLeaves_VoteTimeoutEndsSession() {
	s.startSession(20)
	s.advance(12 * time.Minute)
	s.setMembers(s.testMember, s.testBot)

	s.expectNoPresence()
	handle := &platform.MessageHandle{ChannelID: s.testTextChannelID, MessageID: "prompt-1"}
	s.mockNotifier.EXPECT().PostPrompt(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(handle, nil)
	s.mockNotifier.EXPECT().AwaitReaction(gomock.Any(), handle, gomock.Any(), gomock.Any()).Return(nil, nil)
	s.expectCredit(s.testMemberID, 120, 12)

	out := s.hostLeaves()
	s.Require().NotNil(out.HostDeparture)
	s.Equal(DepartureTimedOut, out.HostDeparture.Outcome)
	s.Equal(12, out.HostDeparture.Report.MinutesStudied)
	s.Empty(s.registry.List())

	records := s.completedRecords()
	s.Require().Len(records, 1)
	s.Equal(models.SessionOutcomeVoteTimeout, records[0].Outcome)

	posts := s.postsTo(s.testTextChannelID)
	s.Require().Len(posts, 2)
	s.Contains(posts[0], "Nobody answered")
}

func (s *StudyServiceTestSuite) TestHostLeaves_PromptFailureEndsSession() {
	s.startSession(20)
	s.advance(8 * time.Minute)
	s.setMembers(s.testMember)

	s.expectNoPresence()
	s.mockNotifier.EXPECT().PostPrompt(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("missing access"))
	s.expectCredit(s.testMemberID, 80, 8)

	out := s.hostLeaves()
	s.Require().NotNil(out.HostDeparture)
	s.Equal(DepartureTimedOut, out.HostDeparture.Outcome)
	s.Empty(s.registry.List())
}

func (s *StudyServiceTestSuite) TestHostLeaves_MemberVotesContinue() {
	s.startSession(20)
	s.advance(7 * time.Minute)
	s.setMembers(s.testMember)

	s.expectNoPresence()
	handle := &platform.MessageHandle{ChannelID: s.testTextChannelID, MessageID: "prompt-1"}
	s.mockNotifier.EXPECT().PostPrompt(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(handle, nil)
	s.mockNotifier.EXPECT().AwaitReaction(gomock.Any(), handle, gomock.Any(), gomock.Any()).
		Return(&platform.Reaction{Option: ContinueOption, UserID: s.testMemberID}, nil)

	out := s.hostLeaves()
	s.Require().NotNil(out.HostDeparture)
	s.Equal(DepartureContinued, out.HostDeparture.Outcome)
	s.Nil(out.HostDeparture.Report)

	// Still registered and still armed
	s.Len(s.registry.List(), 1)
	s.False(s.timer(0).isStopped())
	s.Empty(s.completedRecords())

	posts := s.postsTo(s.testTextChannelID)
	s.Require().Len(posts, 1)
	s.Contains(posts[0], "continue")

	s.advance(13 * time.Minute)
	s.expectCredit(s.testMemberID, 200, 20)
	s.timer(0).fire()
	s.Empty(s.registry.List())
}

func (s *StudyServiceTestSuite) TestHostLeaves_SessionStoppedDuringVote() {
	s.startSession(20)
	s.advance(5 * time.Minute)
	s.setMembers(s.testMember)

	s.expectNoPresence()
	handle := &platform.MessageHandle{ChannelID: s.testTextChannelID, MessageID: "prompt-1"}
	s.mockNotifier.EXPECT().PostPrompt(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(handle, nil)
	s.expectCredit(s.testMemberID, 200, 20)
	s.mockNotifier.EXPECT().AwaitReaction(gomock.Any(), handle, gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, handle *platform.MessageHandle, options []string, timeout time.Duration) (*platform.Reaction, error) {
			// The session expires while members are still deciding
			s.timer(0).fire()
			return &platform.Reaction{Option: EndOption, UserID: s.testMemberID}, nil
		})

	out := s.hostLeaves()
	s.Require().NotNil(out.HostDeparture)
	s.Equal(DepartureAlreadyEnded, out.HostDeparture.Outcome)
	s.Len(s.completedRecords(), 1)
}

func (s *StudyServiceTestSuite) TestHostLeaves_SecondVoteIsSkipped() {
	s.startSession(20)
	s.setMembers(s.testMember)
	s.Require().True(s.studyService.openVote(s.testCode))

	s.expectNoPresence()

	out := s.hostLeaves()
	s.Require().NotNil(out.HostDeparture)
	s.Equal(DepartureVotePending, out.HostDeparture.Outcome)
	s.Len(s.registry.List(), 1)
}

func (s *StudyServiceTestSuite) TestNonHostLeaving_DoesNotTouchSession() {
	s.startSession(20)
	s.setMembers(s.testHost)

	s.expectNoPresence()

	out, err := s.studyService.HandleVoicePresenceChange(s.ctx, &HandleVoicePresenceChangeInput{
		UserID:       s.testMemberID,
		GuildID:      s.testGuildID,
		OldChannelID: s.testVoiceChannel,
	})
	s.Require().NoError(err)
	s.Nil(out.HostDeparture)
	s.Len(s.registry.List(), 1)
}

// Presence

func (s *StudyServiceTestSuite) TestPresence_JoinOpensPresence() {
	s.mockPresenceRepo.EXPECT().OpenPresence(gomock.Any(), &presenceRepo.OpenPresenceInput{
		UserID:    s.testMemberID,
		GuildID:   s.testGuildID,
		ChannelID: s.testVoiceChannel,
		JoinTime:  s.testStart,
	}).Return(&presenceRepo.OpenPresenceOutput{Presence: &models.Presence{}}, nil)

	out, err := s.studyService.HandleVoicePresenceChange(s.ctx, &HandleVoicePresenceChangeInput{
		UserID:       s.testMemberID,
		GuildID:      s.testGuildID,
		NewChannelID: s.testVoiceChannel,
	})
	s.Require().NoError(err)
	s.Equal(0, out.PresencePoints)
}

func (s *StudyServiceTestSuite) TestPresence_LeaveAwardsMinutes() {
	s.mockPresenceRepo.EXPECT().ClosePresence(gomock.Any(), &presenceRepo.ClosePresenceInput{
		UserID:    s.testMemberID,
		GuildID:   s.testGuildID,
		LeaveTime: s.testStart,
	}).Return(&presenceRepo.ClosePresenceOutput{
		Presence: &models.Presence{UserID: s.testMemberID},
		Duration: 42*time.Minute + 50*time.Second,
	}, nil)
	s.mockUserStatsRepo.EXPECT().AwardPoints(gomock.Any(), &userStatsRepo.AwardPointsInput{
		UserID:  s.testMemberID,
		GuildID: s.testGuildID,
		Points:  42,
	}).Return(&userStatsRepo.AwardPointsOutput{Points: 42}, nil)

	out, err := s.studyService.HandleVoicePresenceChange(s.ctx, &HandleVoicePresenceChangeInput{
		UserID:       s.testMemberID,
		GuildID:      s.testGuildID,
		OldChannelID: "voice-9",
	})
	s.Require().NoError(err)
	s.Equal(42, out.PresencePoints)
}

func (s *StudyServiceTestSuite) TestPresence_MoveClosesAndOpens() {
	s.mockPresenceRepo.EXPECT().ClosePresence(gomock.Any(), gomock.Any()).Return(&presenceRepo.ClosePresenceOutput{
		Duration: 30 * time.Second,
	}, nil)
	s.mockPresenceRepo.EXPECT().OpenPresence(gomock.Any(), gomock.Any()).Return(&presenceRepo.OpenPresenceOutput{}, nil)

	out, err := s.studyService.HandleVoicePresenceChange(s.ctx, &HandleVoicePresenceChangeInput{
		UserID:       s.testMemberID,
		GuildID:      s.testGuildID,
		OldChannelID: "voice-8",
		NewChannelID: "voice-9",
	})
	s.Require().NoError(err)
	s.Equal(0, out.PresencePoints)
}

func (s *StudyServiceTestSuite) TestPresence_IgnoresBotsAndSameChannel() {
	out, err := s.studyService.HandleVoicePresenceChange(s.ctx, &HandleVoicePresenceChangeInput{
		UserID:       "bot-1",
		GuildID:      s.testGuildID,
		NewChannelID: s.testVoiceChannel,
		Bot:          true,
	})
	s.Require().NoError(err)
	s.Equal(0, out.PresencePoints)

	out, err = s.studyService.HandleVoicePresenceChange(s.ctx, &HandleVoicePresenceChangeInput{
		UserID:       s.testMemberID,
		GuildID:      s.testGuildID,
		OldChannelID: s.testVoiceChannel,
		NewChannelID: s.testVoiceChannel,
	})
	s.Require().NoError(err)
	s.Nil(out.HostDeparture)

	_, err = s.studyService.HandleVoicePresenceChange(s.ctx, &HandleVoicePresenceChangeInput{GuildID: s.testGuildID})
	s.ErrorIs(err, ErrInvalidInput)
}

// Leaderboard, stats and settings

func (s *StudyServiceTestSuite) TestGetLeaderboard_SharesRankOnTies() {
	s.mockUserStatsRepo.EXPECT().GetTopUsers(gomock.Any(), &userStatsRepo.GetTopUsersInput{
		GuildID: s.testGuildID,
		Limit:   10,
	}).Return(&userStatsRepo.GetTopUsersOutput{
		Stats: []*models.UserStats{
			{UserID: "user-b", Points: 80},
			{UserID: "user-a", Points: 50},
			{UserID: "user-c", Points: 50},
			{UserID: "user-d", Points: 20},
		},
	}, nil)

	out, err := s.studyService.GetLeaderboard(s.ctx, &GetLeaderboardInput{GuildID: s.testGuildID})
	s.Require().NoError(err)

	var ranks []int
	for _, entry := range out.Leaderboard.Entries {
		ranks = append(ranks, entry.Rank)
	}
	s.Equal([]int{1, 2, 2, 4}, ranks)
}

func (s *StudyServiceTestSuite) TestGetUserStats() {
	s.mockUserStatsRepo.EXPECT().GetUserStats(gomock.Any(), &userStatsRepo.GetUserStatsInput{
		UserID: s.testMemberID, GuildID: s.testGuildID,
	}).Return(&models.UserStats{UserID: s.testMemberID, Points: 120, TotalStudyTime: 12, StudyStreak: 2}, nil)
	s.mockUserStatsRepo.EXPECT().GetUserRank(gomock.Any(), gomock.Any()).Return(&userStatsRepo.GetUserRankOutput{Rank: 3}, nil)

	out, err := s.studyService.GetUserStats(s.ctx, &GetUserStatsInput{UserID: s.testMemberID, GuildID: s.testGuildID})
	s.Require().NoError(err)
	s.Equal(120, out.Stats.Points)
	s.Equal(3, out.Rank)
}

func (s *StudyServiceTestSuite) TestGetUserStats_NeverCredited() {
	s.mockUserStatsRepo.EXPECT().GetUserStats(gomock.Any(), gomock.Any()).Return(nil, userStatsRepo.ErrUserStatsNotFound)

	out, err := s.studyService.GetUserStats(s.ctx, &GetUserStatsInput{UserID: s.testMemberID, GuildID: s.testGuildID})
	s.Require().NoError(err)
	s.Equal(0, out.Stats.Points)
	s.Equal(0, out.Rank)
}

func (s *StudyServiceTestSuite) TestSetTextChannel() {
	s.mockGuildSettingsRepo.EXPECT().SaveSettings(gomock.Any(), &models.GuildSettings{
		GuildID:       s.testGuildID,
		TextChannelID: "announcements",
		UpdatedAt:     s.testStart,
	}).Return(nil)

	out, err := s.studyService.SetTextChannel(s.ctx, &SetTextChannelInput{GuildID: s.testGuildID, ChannelID: "announcements"})
	s.Require().NoError(err)
	s.Equal("announcements", out.Settings.TextChannelID)

	_, err = s.studyService.SetTextChannel(s.ctx, &SetTextChannelInput{GuildID: s.testGuildID})
	s.ErrorIs(err, ErrInvalidInput)
}

func (s *StudyServiceTestSuite) TestListSessionHistory() {
	s.mockSessionRecordRepo.EXPECT().ListSessionRecords(gomock.Any(), &sessionRecordRepo.ListSessionRecordsInput{
		GuildID: s.testGuildID,
		Limit:   5,
	}).Return(&sessionRecordRepo.ListSessionRecordsOutput{
		Records: []*models.SessionRecord{{ID: "record-2"}, {ID: "record-1"}},
	}, nil)

	out, err := s.studyService.ListSessionHistory(s.ctx, &ListSessionHistoryInput{GuildID: s.testGuildID, Limit: 5})
	s.Require().NoError(err)
	s.Len(out.Records, 2)
}

func (s *StudyServiceTestSuite) TestClose_StopsTimers() {
	s.startSession(10)

	s.studyService.Close()

	s.True(s.timer(0).isStopped())
}
