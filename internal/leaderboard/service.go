// Package leaderboard ranks submitted game results per league, with a
// daily and an all-time view. The redis-backed Service powers a hosted
// deployment; Client talks to a remote instance (or the legacy
// spreadsheet endpoint) with best-effort semantics.
package leaderboard

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/victornm/pord/internal/domain"
	"github.com/victornm/pord/internal/errors"
	"github.com/victornm/pord/internal/event"
)

const (
	topSize  = 10
	dailyTTL = 48 * time.Hour
)

// openLeague keys scores submitted without a league.
const openLeague = "open"

type Config struct {
	EventBus *event.Bus
	Redis    redis.UniversalClient
	Prefix   string
	Now      func() time.Time
}

// Service keeps one sorted set per (league, period). Only a player's
// best score is retained (ZADD GT).
type Service struct {
	eb     *event.Bus
	redis  redis.UniversalClient
	prefix string
	now    func() time.Time
}

func NewService(c Config) *Service {
	s := &Service{
		eb:     c.EventBus,
		redis:  c.Redis,
		prefix: c.Prefix,
		now:    c.Now,
	}
	if s.now == nil {
		s.now = time.Now
	}

	if s.eb != nil {
		s.eb.Subscribe(domain.EventNameScoreSubmitted, func(ctx context.Context, e event.Event) error {
			return s.Record(ctx, e.(domain.EventScoreSubmitted))
		})
	}

	return s
}

// Record stores a result in both the daily and all-time boards, keeping
// the player's best score, then publishes the updated all-time board.
func (s *Service) Record(ctx context.Context, e domain.EventScoreSubmitted) error {
	r := e.Result
	member := redis.Z{Score: float64(r.Score), Member: r.Name}

	if err := s.redis.ZAddGT(ctx, s.key(r.League, domain.PeriodAllTime), member).Err(); err != nil {
		return fmt.Errorf("record all-time: %w", err)
	}

	dailyKey := s.key(r.League, domain.PeriodDaily)
	if err := s.redis.ZAddGT(ctx, dailyKey, member).Err(); err != nil {
		return fmt.Errorf("record daily: %w", err)
	}
	// Daily boards expire on their own; the date is baked into the key.
	if err := s.redis.Expire(ctx, dailyKey, dailyTTL).Err(); err != nil {
		return fmt.Errorf("expire daily: %w", err)
	}

	return s.publish(ctx, r.League)
}

type GetLeaderboardRequest struct {
	League string
	Period domain.Period
}

// GetLeaderboard returns the top entries, best first.
func (s *Service) GetLeaderboard(ctx context.Context, req GetLeaderboardRequest) (*domain.Leaderboard, error) {
	res, err := s.redis.ZRevRangeWithScores(ctx, s.key(req.League, req.Period), 0, topSize-1).Result()
	if err != nil {
		return nil, fmt.Errorf("get leaderboard: %w", err)
	}

	if len(res) == 0 {
		return nil, errors.New(errors.CodeNotFound,
			errors.WithMessagef("leaderboard is empty: league=%s period=%s", req.League, req.Period))
	}

	entries := make([]domain.LeaderboardEntry, 0, len(res))
	for i, z := range res {
		entries = append(entries, domain.LeaderboardEntry{
			Rank:   i + 1,
			Name:   z.Member.(string),
			Score:  z.Score,
			League: req.League,
		})
	}

	return &domain.Leaderboard{
		League:  req.League,
		Period:  req.Period,
		Entries: entries,
	}, nil
}

// Placement returns the player's 1-based rank if they are inside the
// top 10, and 0 otherwise.
func (s *Service) Placement(ctx context.Context, league string, period domain.Period, name string) (int, error) {
	rank, err := s.redis.ZRevRank(ctx, s.key(league, period), name).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("placement: %w", err)
	}

	if rank >= topSize {
		return 0, nil
	}
	return int(rank) + 1, nil
}

func (s *Service) publish(ctx context.Context, league string) error {
	if s.eb == nil {
		return nil
	}

	l, err := s.GetLeaderboard(ctx, GetLeaderboardRequest{League: league, Period: domain.PeriodAllTime})
	if err != nil {
		return fmt.Errorf("publish leaderboard: %w", err)
	}

	s.eb.Publish(ctx, domain.EventLeaderboardUpdated{Leaderboard: *l})
	return nil
}

func (s *Service) key(league string, period domain.Period) string {
	if league == "" {
		league = openLeague
	}
	if period == domain.PeriodDaily {
		return fmt.Sprintf("%s:%s:daily:%s", s.prefix, league, s.now().UTC().Format("2006-01-02"))
	}
	return fmt.Sprintf("%s:%s:alltime", s.prefix, league)
}
