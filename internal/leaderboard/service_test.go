package leaderboard_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/victornm/pord/internal/domain"
	"github.com/victornm/pord/internal/event"
	"github.com/victornm/pord/internal/leaderboard"
)

func TestService_Record(t *testing.T) {
	t.Parallel()

	type (
		inputs struct {
			results []domain.GameResult
		}

		outputs struct {
			board *domain.Leaderboard
			err   error
		}
	)

	tests := map[string]struct {
		arrange func() (inputs, leaderboard.GetLeaderboardRequest)
		assert  func(t *testing.T, out outputs)
	}{
		"should rank players by score, best first": {
			arrange: func() (inputs, leaderboard.GetLeaderboardRequest) {
				return inputs{
						results: []domain.GameResult{
							{Name: "Ash", Score: 450, League: "pokeball"},
							{Name: "Misty", Score: 900, League: "pokeball"},
							{Name: "Brock", Score: 600, League: "pokeball"},
						},
					}, leaderboard.GetLeaderboardRequest{
						League: "pokeball",
						Period: domain.PeriodAllTime,
					}
			},

			assert: func(t *testing.T, out outputs) {
				require.NoError(t, out.err)
				require.Equal(t, []domain.LeaderboardEntry{
					{Rank: 1, Name: "Misty", Score: 900, League: "pokeball"},
					{Rank: 2, Name: "Brock", Score: 600, League: "pokeball"},
					{Rank: 3, Name: "Ash", Score: 450, League: "pokeball"},
				}, out.board.Entries)
			},
		},

		"should keep only a player's best score": {
			arrange: func() (inputs, leaderboard.GetLeaderboardRequest) {
				return inputs{
						results: []domain.GameResult{
							{Name: "Ash", Score: 700, League: "pokeball"},
							{Name: "Ash", Score: 300, League: "pokeball"},
						},
					}, leaderboard.GetLeaderboardRequest{
						League: "pokeball",
						Period: domain.PeriodAllTime,
					}
			},

			assert: func(t *testing.T, out outputs) {
				require.NoError(t, out.err)
				require.Equal(t, []domain.LeaderboardEntry{
					{Rank: 1, Name: "Ash", Score: 700, League: "pokeball"},
				}, out.board.Entries)
			},
		},

		"should segment boards per league": {
			arrange: func() (inputs, leaderboard.GetLeaderboardRequest) {
				return inputs{
						results: []domain.GameResult{
							{Name: "Ash", Score: 500, League: "pokeball"},
							{Name: "Misty", Score: 800, League: "masterball"},
						},
					}, leaderboard.GetLeaderboardRequest{
						League: "masterball",
						Period: domain.PeriodAllTime,
					}
			},

			assert: func(t *testing.T, out outputs) {
				require.NoError(t, out.err)
				require.Equal(t, []domain.LeaderboardEntry{
					{Rank: 1, Name: "Misty", Score: 800, League: "masterball"},
				}, out.board.Entries)
			},
		},

		"should serve the daily board from today's key": {
			arrange: func() (inputs, leaderboard.GetLeaderboardRequest) {
				return inputs{
						results: []domain.GameResult{
							{Name: "Ash", Score: 500, League: "pokeball"},
						},
					}, leaderboard.GetLeaderboardRequest{
						League: "pokeball",
						Period: domain.PeriodDaily,
					}
			},

			assert: func(t *testing.T, out outputs) {
				require.NoError(t, out.err)
				require.Equal(t, []domain.LeaderboardEntry{
					{Rank: 1, Name: "Ash", Score: 500, League: "pokeball"},
				}, out.board.Entries)
			},
		},

		"should return not found for an empty board": {
			arrange: func() (inputs, leaderboard.GetLeaderboardRequest) {
				return inputs{}, leaderboard.GetLeaderboardRequest{
					League: "ultraball",
					Period: domain.PeriodAllTime,
				}
			},

			assert: func(t *testing.T, out outputs) {
				require.Error(t, out.err)
				require.Nil(t, out.board)
			},
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			in, req := tt.arrange()

			s := makeService(t)
			for _, r := range in.results {
				err := s.Record(context.Background(), domain.EventScoreSubmitted{Result: r})
				require.NoError(t, err)
			}

			out := outputs{}
			out.board, out.err = s.GetLeaderboard(context.Background(), req)

			tt.assert(t, out)
		})
	}
}

func TestService_DailyBoardRollsOver(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	now := day
	s := makeService(t, withNow(func() time.Time { return now }))

	err := s.Record(context.Background(), domain.EventScoreSubmitted{
		Result: domain.GameResult{Name: "Ash", Score: 500, League: "pokeball"},
	})
	require.NoError(t, err)

	now = day.Add(24 * time.Hour)

	_, err = s.GetLeaderboard(context.Background(), leaderboard.GetLeaderboardRequest{
		League: "pokeball",
		Period: domain.PeriodDaily,
	})
	require.Error(t, err, "yesterday's scores should not appear on today's board")

	board, err := s.GetLeaderboard(context.Background(), leaderboard.GetLeaderboardRequest{
		League: "pokeball",
		Period: domain.PeriodAllTime,
	})
	require.NoError(t, err)
	require.Len(t, board.Entries, 1, "all-time board should survive the rollover")
}

func TestService_Placement(t *testing.T) {
	t.Parallel()

	s := makeService(t)

	names := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}
	for i, name := range names {
		err := s.Record(context.Background(), domain.EventScoreSubmitted{
			Result: domain.GameResult{Name: name, Score: 1200 - i*100, League: "pokeball"},
		})
		require.NoError(t, err)
	}

	rank, err := s.Placement(context.Background(), "pokeball", domain.PeriodAllTime, "a")
	require.NoError(t, err)
	require.Equal(t, 1, rank)

	rank, err = s.Placement(context.Background(), "pokeball", domain.PeriodAllTime, "j")
	require.NoError(t, err)
	require.Equal(t, 10, rank)

	rank, err = s.Placement(context.Background(), "pokeball", domain.PeriodAllTime, "k")
	require.NoError(t, err)
	require.Equal(t, 0, rank, "outside the top 10 counts as unplaced")

	rank, err = s.Placement(context.Background(), "pokeball", domain.PeriodAllTime, "nobody")
	require.NoError(t, err)
	require.Equal(t, 0, rank)
}

func TestService_PublishLeaderboardUpdated(t *testing.T) {
	t.Parallel()

	type outputs struct {
		publishedEvents []domain.EventLeaderboardUpdated
	}

	out := outputs{}

	eb := event.NewBus()

	var mu sync.Mutex
	eb.Subscribe(domain.EventNameLeaderboardUpdated, func(ctx context.Context, e event.Event) error {
		mu.Lock()
		out.publishedEvents = append(out.publishedEvents, e.(domain.EventLeaderboardUpdated))
		mu.Unlock()
		return nil
	})

	makeService(t, withEventBus(eb))

	eb.Publish(context.Background(), domain.EventScoreSubmitted{
		Result: domain.GameResult{Name: "Ash", Score: 500, League: "pokeball"},
	})

	eb.Stop()

	require.Len(t, out.publishedEvents, 1, "should receive 1 leaderboard updated event")
	require.Equal(t, domain.Leaderboard{
		League: "pokeball",
		Period: domain.PeriodAllTime,
		Entries: []domain.LeaderboardEntry{
			{Rank: 1, Name: "Ash", Score: 500, League: "pokeball"},
		},
	}, out.publishedEvents[0].Leaderboard)
}

func makeService(t *testing.T, opts ...options) *leaderboard.Service {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	rs := miniredis.RunT(t)
	rc := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs: []string{rs.Addr()},
	})
	require.NoError(t, rc.Ping(ctx).Err(), "should be able to ping redis")

	c := leaderboard.Config{
		Redis:  rc,
		Prefix: "test:leaderboard",
	}

	for _, opt := range opts {
		opt(&c)
	}

	return leaderboard.NewService(c)
}

type options func(c *leaderboard.Config)

func withEventBus(eb *event.Bus) options {
	return func(c *leaderboard.Config) {
		c.EventBus = eb
	}
}

func withNow(now func() time.Time) options {
	return func(c *leaderboard.Config) {
		c.Now = now
	}
}
