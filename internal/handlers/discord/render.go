package discord

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/studyhall/internal/models"
	"github.com/KirkDiggler/studyhall/internal/services/messaging"
	"github.com/KirkDiggler/studyhall/internal/services/study"
	"github.com/bwmarrin/discordgo"
)

// renderStatus shows where a running session stands
func renderStatus(output *study.GetStatusOutput) *discordgo.MessageEmbed {
	session := output.Session

	state := "Running"
	color := colorSuccess
	if session.Paused {
		state = "Paused"
		color = colorWarning
	}

	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Session %s", session.Code),
		Color: color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Host", Value: fmt.Sprintf("<@%s>", session.HostID), Inline: true},
			{Name: "Status", Value: state, Inline: true},
			{Name: "Members", Value: fmt.Sprintf("%d", output.MembersInVC), Inline: true},
			{Name: "Elapsed", Value: formatMinutes(output.ElapsedMinutes), Inline: true},
			{Name: "Remaining", Value: formatMinutes(output.RemainingMinutes), Inline: true},
			{Name: "Planned", Value: formatMinutes(session.Duration), Inline: true},
		},
	}
}

// renderSettlement lists who was credited for a finished session
func renderSettlement(code string, report *models.SettlementReport) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Session %s stopped", code),
		Description: fmt.Sprintf("%s studied, %d points each.", formatMinutes(report.MinutesStudied), report.PointsPerMember),
		Color:       colorSuccess,
	}

	if len(report.Credited) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Credited",
			Value: mentionList(report.CreditedIDs()),
		})
	}

	if len(report.Failed) > 0 {
		embed.Color = colorWarning
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Could not credit",
			Value: mentionList(report.FailedIDs()),
		})
	}

	if report.UsedFallback {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: "Members were taken from the attendance log.",
		}
	}

	return embed
}

// renderLeaderboard shows the ranked members of a server
func renderLeaderboard(leaderboard *models.Leaderboard) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Study Leaderboard",
		Color: colorInfo,
	}

	if len(leaderboard.Entries) == 0 {
		embed.Description = "No points yet. Start a session with `/study start`!"
		return embed
	}

	var b strings.Builder
	for _, entry := range leaderboard.Entries {
		fmt.Fprintf(&b, "%s <@%s>: **%d** points (%s)\n",
			rankLabel(entry.Rank), entry.UserID, entry.Points, formatMinutes(entry.TotalStudyTime))
	}
	embed.Description = b.String()

	return embed
}

// renderUserStats shows one member's totals
func renderUserStats(userID string, output *study.GetUserStatsOutput) *discordgo.MessageEmbed {
	rank := "Unranked"
	if output.Rank > 0 {
		rank = fmt.Sprintf("#%d", output.Rank)
	}

	return &discordgo.MessageEmbed{
		Title:       "Study Stats",
		Description: fmt.Sprintf("<@%s>", userID),
		Color:       colorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Points", Value: fmt.Sprintf("%d", output.Stats.Points), Inline: true},
			{Name: "Study Time", Value: formatMinutes(output.Stats.TotalStudyTime), Inline: true},
			{Name: "Sessions", Value: fmt.Sprintf("%d", output.Stats.StudyStreak), Inline: true},
			{Name: "Rank", Value: rank, Inline: true},
		},
	}
}

// renderHistory lists recent sessions, newest first
func renderHistory(records []*models.SessionRecord) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Recent Sessions",
		Color: colorInfo,
	}

	if len(records) == 0 {
		embed.Description = "No sessions yet."
		return embed
	}

	var b strings.Builder
	for _, record := range records {
		outcome := "running"
		if !record.Active {
			outcome = strings.ReplaceAll(string(record.Outcome), "_", " ")
		}
		fmt.Fprintf(&b, "`%s` <@%s> %s, %s, %d credited (%s)\n",
			record.Code, record.HostID, record.StartedAt.Format("Jan 2 15:04"),
			formatMinutes(record.MinutesStudied), record.MembersCredited, outcome)
	}
	embed.Description = b.String()

	return embed
}

// toneColor maps a message tone to an embed color
func toneColor(tone messaging.MessageTone) int {
	switch tone {
	case messaging.ToneCelebration:
		return colorSuccess
	case messaging.ToneEncouraging:
		return colorInfo
	default:
		return colorWarning
	}
}

func rankLabel(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return fmt.Sprintf("**%d.**", rank)
	}
}

func mentionList(userIDs []string) string {
	mentions := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		mentions = append(mentions, fmt.Sprintf("<@%s>", id))
	}
	return strings.Join(mentions, " ")
}

// formatMinutes renders 75 as "1h 15m"
func formatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}
