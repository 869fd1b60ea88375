package study

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/KirkDiggler/studyhall/internal/models"
	"github.com/KirkDiggler/studyhall/internal/platform"
	presenceRepo "github.com/KirkDiggler/studyhall/internal/repositories/presence"
	userStatsRepo "github.com/KirkDiggler/studyhall/internal/repositories/user_stats"
	"golang.org/x/sync/semaphore"
)

// settle credits every member in the session's voice channel with the points for minutes studied.
// A member whose credit fails is reported, never retried, and never stops the others.
func (s *service) settle(ctx context.Context, session *models.StudySession, minutes int) *models.SettlementReport {
	report := &models.SettlementReport{
		VoiceChannelID:  session.VoiceChannelID,
		GuildID:         session.GuildID,
		MinutesStudied:  minutes,
		PointsPerMember: minutes * session.PointsPerMinute,
		Credited:        []*models.SettledMember{},
		Failed:          []*models.SettledMember{},
	}

	if minutes <= 0 {
		return report
	}

	members, err := s.members.ListPresentMembers(ctx, session.VoiceChannelID)
	if err != nil {
		log.Printf("Study: failed to list members of %s for session %s, falling back to presence ledger: %v",
			session.VoiceChannelID, session.Code, err)
		s.settleFromPresence(ctx, report)
		return report
	}

	settled := uniqueMembers(platform.HumanMembers(members))
	s.creditConcurrently(ctx, report, settled, func(member *models.SettledMember) error {
		_, err := s.userStatsRepo.CreditUser(ctx, &userStatsRepo.CreditUserInput{
			UserID:    member.UserID,
			GuildID:   report.GuildID,
			Points:    report.PointsPerMember,
			StudyTime: report.MinutesStudied,
		})
		return err
	})

	return report
}

// settleFromPresence awards raw points to whoever the presence ledger says is in the channel.
// It skips study time and streak bookkeeping.
func (s *service) settleFromPresence(ctx context.Context, report *models.SettlementReport) {
	report.UsedFallback = true

	out, err := s.presenceRepo.GetChannelPresences(ctx, &presenceRepo.GetChannelPresencesInput{
		GuildID:   report.GuildID,
		ChannelID: report.VoiceChannelID,
	})
	if err != nil {
		log.Printf("Study: fallback settlement for %s failed: %v", report.VoiceChannelID, err)
		report.FallbackFailed = true
		return
	}

	settled := make([]*models.SettledMember, 0, len(out.Presences))
	seen := make(map[string]bool, len(out.Presences))
	for _, p := range out.Presences {
		if p == nil || seen[p.UserID] {
			continue
		}
		seen[p.UserID] = true
		settled = append(settled, &models.SettledMember{UserID: p.UserID})
	}

	s.creditConcurrently(ctx, report, settled, func(member *models.SettledMember) error {
		_, err := s.userStatsRepo.AwardPoints(ctx, &userStatsRepo.AwardPointsInput{
			UserID:  member.UserID,
			GuildID: report.GuildID,
			Points:  report.PointsPerMember,
		})
		return err
	})
}

// creditConcurrently runs credit for each member with bounded parallelism and sorts
// the members into Credited or Failed, keeping their original order
func (s *service) creditConcurrently(ctx context.Context, report *models.SettlementReport, members []*models.SettledMember, credit func(*models.SettledMember) error) {
	results := make([]error, len(members))

	sem := semaphore.NewWeighted(int64(s.settlementConcurrency))
	var wg sync.WaitGroup
	for i, member := range members {
		if err := sem.Acquire(ctx, 1); err != nil {
			results[i] = fmt.Errorf("failed to acquire credit slot: %w", err)
			continue
		}

		i, member := i, member
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)
			results[i] = credit(member)
		}()
	}
	wg.Wait()

	for i, member := range members {
		member.Points = report.PointsPerMember
		if results[i] != nil {
			log.Printf("Study: failed to credit %s in guild %s: %v", member.UserID, report.GuildID, results[i])
			member.Points = 0
			report.Failed = append(report.Failed, member)
			continue
		}
		report.Credited = append(report.Credited, member)
	}
}

func uniqueMembers(members []*platform.Member) []*models.SettledMember {
	settled := make([]*models.SettledMember, 0, len(members))
	seen := make(map[string]bool, len(members))
	for _, m := range members {
		if seen[m.ID] {
			continue
		}
		seen[m.ID] = true
		settled = append(settled, &models.SettledMember{
			UserID: m.ID,
			Name:   m.Name,
		})
	}
	return settled
}
