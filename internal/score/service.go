// Package score persists finished game results and is the source of
// the score.submitted events the leaderboard consumes.
package score

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/victornm/pord/internal/domain"
	"github.com/victornm/pord/internal/errors"
	"github.com/victornm/pord/internal/event"
)

type Config struct {
	EventBus *event.Bus
	DB       *pgxpool.Pool
}

type Service struct {
	eb *event.Bus
	db *pgxpool.Pool
}

func NewService(c Config) *Service {
	return &Service{
		eb: c.EventBus,
		db: c.DB,
	}
}

type SubmitResultRequest struct {
	Result domain.GameResult
}

// SubmitResult inserts one finished game into the history. A game id
// can only be submitted once per player.
func (s *Service) SubmitResult(ctx context.Context, req SubmitResultRequest) error {
	r := req.Result
	if r.SubmitTime.IsZero() {
		r.SubmitTime = time.Now()
	}

	const stmt = `
INSERT INTO game_results (game_id, name, score, mode, league, accuracy, avg_response_ms, rounds, lives_lost, submit_time)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`

	_, err := s.db.Exec(ctx, stmt,
		r.GameID, r.Name, r.Score, r.Mode, r.League,
		r.Accuracy, r.AvgResponseMs, r.Rounds, r.LivesLost, r.SubmitTime)

	var pgErr *pgconn.PgError
	const codeUniqueViolation = "23505"
	if stderrors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation {
		return errors.New(errors.CodeAlreadyExists,
			errors.WithCause(err))
	}

	if err != nil {
		return err
	}

	if s.eb != nil {
		s.eb.Publish(ctx, domain.EventScoreSubmitted{Result: r})
	}

	return nil
}

type ListResultsRequest struct {
	Name   string
	League string
	Limit  int
}

// ListResults returns a player's history, newest first.
func (s *Service) ListResults(ctx context.Context, req ListResultsRequest) ([]domain.GameResult, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = 50
	}

	const stmt = `
SELECT game_id, name, score, mode, league, accuracy, avg_response_ms, rounds, lives_lost, submit_time
FROM game_results
WHERE name = $1 AND ($2 = '' OR league = $2)
ORDER BY submit_time DESC
LIMIT $3;`

	rows, err := s.db.Query(ctx, stmt, req.Name, req.League, limit)
	if err != nil {
		return nil, err
	}

	results, err := pgx.CollectRows(rows, func(r pgx.CollectableRow) (domain.GameResult, error) {
		var gr domain.GameResult
		err := r.Scan(&gr.GameID, &gr.Name, &gr.Score, &gr.Mode, &gr.League,
			&gr.Accuracy, &gr.AvgResponseMs, &gr.Rounds, &gr.LivesLost, &gr.SubmitTime)
		if err != nil {
			return domain.GameResult{}, err
		}
		return gr, nil
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}

type PersonalBestRequest struct {
	Name   string
	League string
}

// PersonalBest returns the player's highest score, or not found when
// they have no history yet.
func (s *Service) PersonalBest(ctx context.Context, req PersonalBestRequest) (*domain.GameResult, error) {
	const stmt = `
SELECT game_id, name, score, mode, league, accuracy, avg_response_ms, rounds, lives_lost, submit_time
FROM game_results
WHERE name = $1 AND ($2 = '' OR league = $2)
ORDER BY score DESC, submit_time ASC
LIMIT 1;`

	var gr domain.GameResult
	err := s.db.QueryRow(ctx, stmt, req.Name, req.League).Scan(
		&gr.GameID, &gr.Name, &gr.Score, &gr.Mode, &gr.League,
		&gr.Accuracy, &gr.AvgResponseMs, &gr.Rounds, &gr.LivesLost, &gr.SubmitTime)
	if stderrors.Is(err, pgx.ErrNoRows) {
		return nil, errors.New(errors.CodeNotFound,
			errors.WithMessagef("no results for player %q", req.Name))
	}
	if err != nil {
		return nil, err
	}

	return &gr, nil
}
