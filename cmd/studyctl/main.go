package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/KirkDiggler/studyhall/internal/config"
	"github.com/KirkDiggler/studyhall/internal/models"
	"github.com/KirkDiggler/studyhall/internal/repositories/guild_settings"
	"github.com/KirkDiggler/studyhall/internal/repositories/session_record"
	"github.com/KirkDiggler/studyhall/internal/repositories/user_stats"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// stores are the ledgers an operator can read or adjust
type stores struct {
	client        *redis.Client
	userStats     user_stats.Repository
	sessions      session_record.Repository
	guildSettings guild_settings.Repository
}

func main() {
	var guildID string

	rootCmd := &cobra.Command{
		Use:   "studyctl",
		Short: "Inspect study points and session history stored in Redis",
	}
	rootCmd.PersistentFlags().StringVar(&guildID, "guild", "", "Discord server ID (defaults to GUILD_ID)")

	rootCmd.AddCommand(
		newLeaderboardCmd(&guildID),
		newStatsCmd(&guildID),
		newSessionsCmd(&guildID),
		newSetTextChannelCmd(&guildID),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLeaderboardCmd(guildID *string) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the top members of a server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStores(cmd.Context(), guildID, func(ctx context.Context, st *stores, guild string) error {
				top, err := st.userStats.GetTopUsers(ctx, &user_stats.GetTopUsersInput{
					GuildID: guild,
					Limit:   limit,
				})
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "RANK\tUSER\tPOINTS\tMINUTES\tSESSIONS")
				rank := 0
				for i, stats := range top.Stats {
					if i == 0 || stats.Points != top.Stats[i-1].Points {
						rank = i + 1
					}
					fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\n", rank, stats.UserID, stats.Points, stats.TotalStudyTime, stats.StudyStreak)
				}
				return w.Flush()
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Number of members to show")
	return cmd
}

func newStatsCmd(guildID *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [user-id]",
		Short: "Show one member's totals and rank",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStores(cmd.Context(), guildID, func(ctx context.Context, st *stores, guild string) error {
				stats, err := st.userStats.GetUserStats(ctx, &user_stats.GetUserStatsInput{
					UserID:  args[0],
					GuildID: guild,
				})
				if errors.Is(err, user_stats.ErrUserStatsNotFound) {
					fmt.Printf("%s has no points in %s\n", args[0], guild)
					return nil
				}
				if err != nil {
					return err
				}

				rank, err := st.userStats.GetUserRank(ctx, &user_stats.GetUserRankInput{
					UserID:  args[0],
					GuildID: guild,
				})
				if err != nil {
					return err
				}

				fmt.Printf("User:     %s\n", stats.UserID)
				fmt.Printf("Rank:     %d\n", rank.Rank)
				fmt.Printf("Points:   %d\n", stats.Points)
				fmt.Printf("Minutes:  %d\n", stats.TotalStudyTime)
				fmt.Printf("Sessions: %d\n", stats.StudyStreak)
				return nil
			})
		},
	}
}

func newSessionsCmd(guildID *string) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List recent study sessions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStores(cmd.Context(), guildID, func(ctx context.Context, st *stores, guild string) error {
				out, err := st.sessions.ListSessionRecords(ctx, &session_record.ListSessionRecordsInput{
					GuildID: guild,
					Limit:   limit,
				})
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "CODE\tHOST\tSTARTED\tPLANNED\tSTUDIED\tCREDITED\tOUTCOME")
				for _, r := range out.Records {
					fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
						r.Code, r.HostID, r.StartedAt.Format(time.RFC3339), r.Duration,
						r.MinutesStudied, r.MembersCredited, outcomeLabel(r))
				}
				return w.Flush()
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Number of sessions to show")
	return cmd
}

func newSetTextChannelCmd(guildID *string) *cobra.Command {
	return &cobra.Command{
		Use:   "set-text-channel [channel-id]",
		Short: "Choose where session announcements are posted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStores(cmd.Context(), guildID, func(ctx context.Context, st *stores, guild string) error {
				err := st.guildSettings.SaveSettings(ctx, &models.GuildSettings{
					GuildID:       guild,
					TextChannelID: args[0],
					UpdatedAt:     time.Now(),
				})
				if err != nil {
					return err
				}

				fmt.Printf("Announcements for %s will go to %s\n", guild, args[0])
				return nil
			})
		},
	}
}

// withStores connects to Redis, resolves the guild and runs fn
func withStores(ctx context.Context, guildID *string, fn func(ctx context.Context, st *stores, guild string) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	guild := *guildID
	if guild == "" {
		guild = cfg.GuildID
	}
	if guild == "" {
		return errors.New("--guild or GUILD_ID is required")
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	st, err := openStores(cfg)
	if err != nil {
		return err
	}
	defer st.client.Close()

	return fn(ctx, st, guild)
}

func openStores(cfg *config.Config) (*stores, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	userStatsRepo, err := user_stats.NewRedis(&user_stats.Config{RedisClient: client})
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to open user stats: %w", err)
	}

	sessionRecordRepo, err := session_record.NewRedis(&session_record.Config{RedisClient: client})
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to open session records: %w", err)
	}

	guildSettingsRepo, err := guild_settings.NewRedis(&guild_settings.Config{RedisClient: client})
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to open guild settings: %w", err)
	}

	return &stores{
		client:        client,
		userStats:     userStatsRepo,
		sessions:      sessionRecordRepo,
		guildSettings: guildSettingsRepo,
	}, nil
}

func outcomeLabel(r *models.SessionRecord) string {
	if r.Active {
		return "running"
	}
	return string(r.Outcome)
}
