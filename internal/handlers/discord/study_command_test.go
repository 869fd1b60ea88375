package discord

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/studyhall/internal/models"
	"github.com/KirkDiggler/studyhall/internal/services/messaging"
	"github.com/KirkDiggler/studyhall/internal/services/study"
	studyMocks "github.com/KirkDiggler/studyhall/internal/services/study/mocks"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type StudyCommandTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockStudyService *studyMocks.MockService
	command          *StudyCommand
	ctx              context.Context
}

func (s *StudyCommandTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStudyService = studyMocks.NewMockService(s.mockCtrl)
	s.ctx = context.Background()

	messagingService, err := messaging.NewService(&messaging.ServiceConfig{Seed: 42})
	s.Require().NoError(err)

	s.command = NewStudyCommand(s.mockStudyService, messagingService)
}

func (s *StudyCommandTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestStudyCommandSuite(t *testing.T) {
	suite.Run(t, new(StudyCommandTestSuite))
}

func (s *StudyCommandTestSuite) request(subcommand string) *studyRequest {
	return &studyRequest{
		Subcommand: subcommand,
		UserID:     "host-1",
		GuildID:    "guild-1",
		ChannelID:  "text-1",
	}
}

func (s *StudyCommandTestSuite) TestCommandDefinition() {
	cmd := s.command.GetCommand()
	s.Equal("study", cmd.Name)

	var names []string
	for _, opt := range cmd.Options {
		names = append(names, opt.Name)
	}
	s.Equal([]string{"start", "status", "stop", "pause", "resume", "extend", "leaderboard", "stats", "history", "settextchannel"}, names)
}

func (s *StudyCommandTestSuite) TestStart_RequiresVoiceChannel() {
	req := s.request("start")
	req.Minutes = 25

	r := s.command.execute(s.ctx, req)
	s.True(r.Ephemeral)
	s.Equal("Join a Voice Channel", r.Embed.Title)
}

func (s *StudyCommandTestSuite) TestStart() {
	req := s.request("start")
	req.Minutes = 25
	req.VoiceChannelID = "voice-1"
	req.VoiceChannelName = "Library"

	s.mockStudyService.EXPECT().StartSession(gomock.Any(), &study.StartSessionInput{
		HostID:           "host-1",
		GuildID:          "guild-1",
		VoiceChannelID:   "voice-1",
		VoiceChannelName: "Library",
		TextChannelID:    "text-1",
		Duration:         25,
	}).Return(&study.StartSessionOutput{
		Session:     &models.StudySession{Code: "AB12C", HostID: "host-1", Duration: 25},
		MembersInVC: 3,
	}, nil)

	r := s.command.execute(s.ctx, req)
	s.False(r.Ephemeral)
	s.Require().NotNil(r.Embed)
	s.Contains(r.Embed.Description, "**AB12C**")
	s.Equal("AB12C", r.Embed.Fields[0].Value)
	s.Equal("25m", r.Embed.Fields[1].Value)
	s.Equal("3", r.Embed.Fields[2].Value)
}

func (s *StudyCommandTestSuite) TestStart_ServiceErrors() {
	cases := []struct {
		err   error
		title string
	}{
		{study.ErrChannelBusy, "Channel Busy"},
		{study.ErrInvalidDuration, "Too Short"},
		{errors.New("boom"), "Something Went Wrong"},
	}

	for _, tc := range cases {
		req := s.request("start")
		req.VoiceChannelID = "voice-1"
		s.mockStudyService.EXPECT().StartSession(gomock.Any(), gomock.Any()).Return(nil, tc.err)

		r := s.command.execute(s.ctx, req)
		s.True(r.Ephemeral)
		s.Equal(tc.title, r.Embed.Title)
		s.Equal(colorError, r.Embed.Color)
	}
}

func (s *StudyCommandTestSuite) TestStatus() {
	req := s.request("status")
	req.Code = "AB12C"

	s.mockStudyService.EXPECT().GetStatus(gomock.Any(), &study.GetStatusInput{Code: "AB12C"}).Return(&study.GetStatusOutput{
		Session:          &models.StudySession{Code: "AB12C", HostID: "host-1", Duration: 90, Paused: true},
		ElapsedMinutes:   20,
		RemainingMinutes: 70,
		MembersInVC:      4,
	}, nil)

	r := s.command.execute(s.ctx, req)
	s.Require().NotNil(r.Embed)
	s.Equal("Session AB12C", r.Embed.Title)
	s.Equal(colorWarning, r.Embed.Color)
	s.Equal("Paused", r.Embed.Fields[1].Value)
	s.Equal("20m", r.Embed.Fields[3].Value)
	s.Equal("1h 10m", r.Embed.Fields[4].Value)
	s.Equal("1h 30m", r.Embed.Fields[5].Value)
}

func (s *StudyCommandTestSuite) TestStop_ByNonHost() {
	req := s.request("stop")
	req.Code = "AB12C"
	req.UserID = "user-2"

	s.mockStudyService.EXPECT().StopSession(gomock.Any(), &study.StopSessionInput{
		Code:        "AB12C",
		RequesterID: "user-2",
	}).Return(nil, study.ErrPermissionDenied)

	r := s.command.execute(s.ctx, req)
	s.Equal("Host Only", r.Embed.Title)
}

func (s *StudyCommandTestSuite) TestStop_RendersSettlement() {
	req := s.request("stop")
	req.Code = "AB12C"

	s.mockStudyService.EXPECT().StopSession(gomock.Any(), gomock.Any()).Return(&study.StopSessionOutput{
		Session: &models.StudySession{Code: "AB12C"},
		Report: &models.SettlementReport{
			MinutesStudied:  12,
			PointsPerMember: 120,
			Credited:        []*models.SettledMember{{UserID: "host-1"}, {UserID: "user-2"}},
			Failed:          []*models.SettledMember{{UserID: "user-3"}},
		},
	}, nil)

	r := s.command.execute(s.ctx, req)
	s.Require().NotNil(r.Embed)
	s.Equal("Session AB12C stopped", r.Embed.Title)
	s.Equal("12m studied, 120 points each.", r.Embed.Description)
	s.Equal(colorWarning, r.Embed.Color)
	s.Require().Len(r.Embed.Fields, 2)
	s.Equal("<@host-1> <@user-2>", r.Embed.Fields[0].Value)
	s.Equal("<@user-3>", r.Embed.Fields[1].Value)
}

func (s *StudyCommandTestSuite) TestPauseResumeExtend() {
	req := s.request("pause")
	req.Code = "AB12C"
	s.mockStudyService.EXPECT().PauseSession(gomock.Any(), &study.PauseSessionInput{Code: "AB12C"}).Return(&study.PauseSessionOutput{
		Session: &models.StudySession{Code: "AB12C", RemainingTime: 18},
	}, nil)
	s.Contains(s.command.execute(s.ctx, req).Content, "paused with 18m left")

	req = s.request("resume")
	req.Code = "AB12C"
	s.mockStudyService.EXPECT().ResumeSession(gomock.Any(), &study.ResumeSessionInput{Code: "AB12C"}).Return(nil, study.ErrNotPaused)
	s.Equal("Not Paused", s.command.execute(s.ctx, req).Embed.Title)

	req = s.request("extend")
	req.Code = "AB12C"
	req.Minutes = 15
	s.mockStudyService.EXPECT().ExtendSession(gomock.Any(), &study.ExtendSessionInput{Code: "AB12C", Minutes: 15}).Return(&study.ExtendSessionOutput{
		Session:          &models.StudySession{Code: "AB12C"},
		RemainingMinutes: 33,
	}, nil)
	s.Contains(s.command.execute(s.ctx, req).Content, "extended by 15m, 33m remaining")
}

func (s *StudyCommandTestSuite) TestLeaderboard() {
	s.mockStudyService.EXPECT().GetLeaderboard(gomock.Any(), &study.GetLeaderboardInput{GuildID: "guild-1"}).Return(&study.GetLeaderboardOutput{
		Leaderboard: &models.Leaderboard{
			GuildID: "guild-1",
			Entries: []*models.LeaderboardEntry{
				{Rank: 1, UserID: "user-1", Points: 300, TotalStudyTime: 30},
				{Rank: 2, UserID: "user-2", Points: 200, TotalStudyTime: 20},
				{Rank: 2, UserID: "user-3", Points: 200, TotalStudyTime: 20},
				{Rank: 4, UserID: "user-4", Points: 100, TotalStudyTime: 70},
			},
		},
	}, nil)

	r := s.command.execute(s.ctx, s.request("leaderboard"))
	s.Require().NotNil(r.Embed)
	s.Equal("🥇 <@user-1>: **300** points (30m)\n"+
		"🥈 <@user-2>: **200** points (20m)\n"+
		"🥈 <@user-3>: **200** points (20m)\n"+
		"**4.** <@user-4>: **100** points (1h 10m)\n", r.Embed.Description)
}

func (s *StudyCommandTestSuite) TestLeaderboard_Empty() {
	s.mockStudyService.EXPECT().GetLeaderboard(gomock.Any(), gomock.Any()).Return(&study.GetLeaderboardOutput{
		Leaderboard: &models.Leaderboard{GuildID: "guild-1"},
	}, nil)

	r := s.command.execute(s.ctx, s.request("leaderboard"))
	s.Contains(r.Embed.Description, "No points yet")
}

func (s *StudyCommandTestSuite) TestStats_DefaultsToInvoker() {
	s.mockStudyService.EXPECT().GetUserStats(gomock.Any(), &study.GetUserStatsInput{UserID: "host-1", GuildID: "guild-1"}).Return(&study.GetUserStatsOutput{
		Stats: &models.UserStats{UserID: "host-1"},
	}, nil)

	r := s.command.execute(s.ctx, s.request("stats"))
	s.True(r.Ephemeral)
	s.Equal("Unranked", r.Embed.Fields[3].Value)
}

func (s *StudyCommandTestSuite) TestStats_OtherMember() {
	req := s.request("stats")
	req.TargetUserID = "user-2"

	s.mockStudyService.EXPECT().GetUserStats(gomock.Any(), &study.GetUserStatsInput{UserID: "user-2", GuildID: "guild-1"}).Return(&study.GetUserStatsOutput{
		Stats: &models.UserStats{UserID: "user-2", Points: 450, TotalStudyTime: 45, StudyStreak: 3},
		Rank:  2,
	}, nil)

	r := s.command.execute(s.ctx, req)
	s.Equal("<@user-2>", r.Embed.Description)
	s.Equal("450", r.Embed.Fields[0].Value)
	s.Equal("45m", r.Embed.Fields[1].Value)
	s.Equal("3", r.Embed.Fields[2].Value)
	s.Equal("#2", r.Embed.Fields[3].Value)
}

func (s *StudyCommandTestSuite) TestHistory() {
	started := time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.mockStudyService.EXPECT().ListSessionHistory(gomock.Any(), &study.ListSessionHistoryInput{GuildID: "guild-1"}).Return(&study.ListSessionHistoryOutput{
		Records: []*models.SessionRecord{
			{Code: "CCCCC", HostID: "host-1", StartedAt: started, Active: true},
			{Code: "BBBBB", HostID: "host-2", StartedAt: started, Outcome: models.SessionOutcomeVoteTimeout, MinutesStudied: 12, MembersCredited: 2},
		},
	}, nil)

	r := s.command.execute(s.ctx, s.request("history"))
	s.Equal("`CCCCC` <@host-1> Apr 19 12:00, 0m, 0 credited (running)\n"+
		"`BBBBB` <@host-2> Apr 19 12:00, 12m, 2 credited (vote timeout)\n", r.Embed.Description)
}

func (s *StudyCommandTestSuite) TestSetTextChannel_RequiresManageChannels() {
	req := s.request("settextchannel")
	req.TargetChannelID = "announcements"

	r := s.command.execute(s.ctx, req)
	s.Equal("Host Only", r.Embed.Title)
}

func (s *StudyCommandTestSuite) TestSetTextChannel() {
	req := s.request("settextchannel")
	req.TargetChannelID = "announcements"
	req.CanManageChannels = true

	s.mockStudyService.EXPECT().SetTextChannel(gomock.Any(), &study.SetTextChannelInput{
		GuildID:   "guild-1",
		ChannelID: "announcements",
	}).Return(&study.SetTextChannelOutput{
		Settings: &models.GuildSettings{GuildID: "guild-1", TextChannelID: "announcements"},
	}, nil)

	r := s.command.execute(s.ctx, req)
	s.True(r.Ephemeral)
	s.Equal("Session announcements will go to <#announcements>.", r.Content)
}

func (s *StudyCommandTestSuite) TestUnknownSubcommand() {
	r := s.command.execute(s.ctx, s.request("dance"))
	s.Equal("Unknown Command", r.Embed.Title)
}

func (s *StudyCommandTestSuite) TestVoicePresenceChange() {
	input := voicePresenceChange(&discordgo.VoiceStateUpdate{
		VoiceState: &discordgo.VoiceState{
			UserID:    "user-2",
			GuildID:   "guild-1",
			ChannelID: "voice-2",
			Member:    &discordgo.Member{User: &discordgo.User{ID: "user-2"}},
		},
		BeforeUpdate: &discordgo.VoiceState{ChannelID: "voice-1"},
	})

	s.Equal(&study.HandleVoicePresenceChangeInput{
		UserID:       "user-2",
		GuildID:      "guild-1",
		OldChannelID: "voice-1",
		NewChannelID: "voice-2",
	}, input)
}
