// Package session hosts running games. A Session serialises action
// dispatches into the pure game engine, owns the per-question countdown
// timer, and fires the end-of-game side effects (high scores, result
// submission, medals). The Manager tracks sessions by id.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/victornm/pord/internal/domain"
	"github.com/victornm/pord/internal/errors"
	"github.com/victornm/pord/internal/event"
	"github.com/victornm/pord/internal/game"
	"github.com/victornm/pord/internal/highscore"
	"github.com/victornm/pord/internal/score"
	"github.com/victornm/pord/internal/telemetry"
)

// ResultSink receives finished game results, typically the score service.
type ResultSink interface {
	SubmitResult(ctx context.Context, req score.SubmitResultRequest) error
}

// Ranker reports a player's leaderboard placement, used to award medals.
type Ranker interface {
	Placement(ctx context.Context, league string, period domain.Period, name string) (int, error)
}

// RemoteBoard is the opt-in global leaderboard. Submissions are
// best-effort and only happen when the session shares scores.
type RemoteBoard interface {
	Submit(ctx context.Context, r domain.GameResult)
}

type Config struct {
	EventBus   *event.Bus
	Engine     *game.Engine
	HighScores *highscore.Store
	Results    ResultSink
	Ranker     Ranker
	Remote     RemoteBoard
	Now        func() time.Time
	NewID      func() string
}

// Manager creates and looks up sessions.
type Manager struct {
	cfg Config

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager(c Config) *Manager {
	if c.Engine == nil {
		c.Engine = game.New(game.Config{})
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	if c.NewID == nil {
		c.NewID = func() string {
			id, err := uuid.NewV7()
			if err != nil {
				return uuid.NewString()
			}
			return id.String()
		}
	}

	return &Manager{
		cfg:      c,
		sessions: make(map[string]*Session),
	}
}

// Create starts an empty session in the idle phase.
func (m *Manager) Create(_ context.Context) *Session {
	s := &Session{
		id:    m.cfg.NewID(),
		cfg:   m.cfg,
		state: game.NewState(),
	}

	m.mu.Lock()
	m.sessions[s.id] = s
	m.mu.Unlock()

	return s
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	m.mu.Unlock()

	if !ok {
		return nil, errors.New(errors.CodeNotFound,
			errors.WithMessagef("session %q not found", id))
	}
	return s, nil
}

// Remove stops the session's timer and forgets it.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if ok {
		s.stop()
	}
}

// Close stops every session. Used on shutdown.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, s := range m.sessions {
		s.stop()
		delete(m.sessions, id)
	}
}

// Session is one hosted game. All dispatches run under the mutex, so
// the engine sees a strictly serialised action stream.
type Session struct {
	id  string
	cfg Config

	mu      sync.Mutex
	state   game.State
	timer   *time.Timer
	timerID string
	ended   string // last game id whose end effects already ran
}

func (s *Session) ID() string { return s.id }

// State returns the current snapshot.
func (s *Session) State() game.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies one action and returns the resulting snapshot.
func (s *Session) Dispatch(ctx context.Context, a game.Action) game.State {
	s.mu.Lock()
	prev := s.state
	s.state = s.cfg.Engine.Apply(s.state, a)
	next := s.state
	s.rearmTimerLocked()
	s.mu.Unlock()

	observe(prev, next, a)

	if next.Status != prev.Status && s.cfg.EventBus != nil {
		s.cfg.EventBus.Publish(ctx, domain.EventStateChanged{
			SessionID: s.id,
			Status:    next.Status,
		})
	}

	if next.Status == domain.StatusGameOver && prev.Status != domain.StatusGameOver {
		s.finishGame(ctx, next)
	}

	return next
}

func (s *Session) stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelTimerLocked()
}

// readyGrace bounds the pass-the-device screen so a distracted party
// cannot stall the game forever.
const readyGrace = 30 * time.Second

// rearmTimerLocked keeps exactly one countdown alive: armed while a
// question, a bonus round, or the hand-off screen is up, cancelled
// everywhere else. The timer is keyed so a late fire against a phase
// that already resolved is a no-op.
func (s *Session) rearmTimerLocked() {
	key := s.timerKeyLocked()
	if key == s.timerID {
		return
	}

	s.cancelTimerLocked()
	if key == "" {
		return
	}

	d := time.Duration(s.state.Settings.TimerSeconds) * time.Second
	if key[0] == 'r' {
		d = readyGrace
	}

	s.timerID = key
	s.timer = time.AfterFunc(d, func() {
		s.expire(key, d)
	})
}

func (s *Session) timerKeyLocked() string {
	switch s.state.Status {
	case domain.StatusPlaying:
		if s.state.CurrentQuestion != nil {
			return "q:" + s.state.CurrentQuestion.ID
		}
	case domain.StatusBonus:
		return "b:" + s.state.GameID + ":" + string(s.state.Bonus.Type)
	case domain.StatusReady:
		return fmt.Sprintf("r:%d:%d", s.state.Round, s.state.CurrentPlayer)
	}
	return ""
}

func (s *Session) cancelTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.timerID = ""
}

// expire fires when the countdown runs out and resolves the question
// (or bonus round) as a timeout.
func (s *Session) expire(key string, d time.Duration) {
	s.mu.Lock()
	if s.timerID != key {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	elapsed := int(d / time.Millisecond)

	var a game.Action
	switch key[0] {
	case 'q':
		a = game.SubmitAnswer{Answer: domain.AnswerTimeout, ElapsedMs: elapsed}
	case 'b':
		a = game.SubmitBonusAnswer{ElapsedMs: elapsed}
	case 'r':
		a = game.StartPlaying{}
	default:
		return
	}

	s.Dispatch(context.Background(), a)
}

// finishGame runs the end-of-game side effects once per game id.
func (s *Session) finishGame(ctx context.Context, st game.State) {
	s.mu.Lock()
	if s.ended == st.GameID {
		s.mu.Unlock()
		return
	}
	s.ended = st.GameID
	s.mu.Unlock()

	results := buildResults(st, s.cfg.Now())

	for _, r := range results {
		if s.cfg.HighScores != nil {
			s.cfg.HighScores.Save(domain.HighScore{
				Name:   r.Name,
				Score:  r.Score,
				Mode:   r.Mode,
				League: r.League,
				Date:   r.SubmitTime,
			})
		}

		if s.cfg.Results != nil {
			err := s.cfg.Results.SubmitResult(ctx, score.SubmitResultRequest{Result: r})
			if err != nil && errors.Convert(err).Code != errors.CodeAlreadyExists {
				slog.WarnContext(ctx, "session: submit result", "game_id", r.GameID, "error", err)
			}
		}

		if s.cfg.Remote != nil && st.Settings.ShareScores {
			s.cfg.Remote.Submit(ctx, r)
		}
	}

	s.awardMedals(ctx, results)

	if s.cfg.EventBus != nil {
		s.cfg.EventBus.Publish(ctx, domain.EventGameEnded{
			GameID:  st.GameID,
			Results: results,
		})
	}
}

func (s *Session) awardMedals(ctx context.Context, results []domain.GameResult) {
	if s.cfg.Ranker == nil || s.cfg.HighScores == nil {
		return
	}

	day := s.cfg.Now().UTC().Format("2006-01-02")
	for _, r := range results {
		for _, period := range []domain.Period{domain.PeriodDaily, domain.PeriodAllTime} {
			rank, err := s.cfg.Ranker.Placement(ctx, r.League, period, r.Name)
			if err != nil {
				slog.WarnContext(ctx, "session: placement lookup", "name", r.Name, "error", err)
				continue
			}

			mt, ok := medalFor(rank)
			if !ok {
				continue
			}

			s.cfg.HighScores.Award(domain.Medal{
				Type:   mt,
				League: r.League,
				Period: period,
				Date:   day,
				Name:   r.Name,
			})
		}
	}
}

func medalFor(rank int) (domain.MedalType, bool) {
	switch {
	case rank == 1:
		return domain.MedalGold, true
	case rank == 2:
		return domain.MedalSilver, true
	case rank == 3:
		return domain.MedalBronze, true
	case rank >= 4 && rank <= 10:
		return domain.MedalTop10, true
	}
	return "", false
}

// observe feeds the game counters off status transitions.
func observe(prev, next game.State, a game.Action) {
	switch a.(type) {
	case game.StartGame, game.PlayAgain:
		if next.Status == domain.StatusPlaying && prev.Status != domain.StatusPlaying {
			telemetry.GamesStarted.WithLabelValues(string(next.Mode), league(next)).Inc()
		}
	case game.SubmitAnswer:
		if prev.Status == domain.StatusPlaying && next.Status == domain.StatusReveal && next.LastCorrect != nil {
			outcome := "wrong"
			if *next.LastCorrect {
				outcome = "correct"
			}
			if next.LastAnswer == domain.AnswerTimeout {
				outcome = "timeout"
			}
			telemetry.AnswersSubmitted.WithLabelValues(outcome).Inc()
		}
	}

	if next.Status == domain.StatusBonus && prev.Status != domain.StatusBonus {
		telemetry.BonusRounds.WithLabelValues(string(next.Bonus.Type)).Inc()
	}
}

func league(st game.State) string {
	if st.LeagueID == "" {
		return "open"
	}
	return st.LeagueID
}

func buildResults(st game.State, now time.Time) []domain.GameResult {
	results := make([]domain.GameResult, 0, len(st.Players))
	for _, p := range st.Players {
		results = append(results, domain.GameResult{
			GameID:        st.GameID,
			Name:          p.Name,
			Score:         p.Score,
			Mode:          st.Mode,
			League:        st.LeagueID,
			Accuracy:      accuracy(p),
			AvgResponseMs: decimal.NewFromInt(int64(p.AverageMs)),
			Rounds:        st.Round,
			LivesLost:     st.LivesLost,
			SubmitTime:    now,
		})
	}
	return results
}

func accuracy(p domain.Player) decimal.Decimal {
	total := p.CorrectAnswers + p.WrongAnswers
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(p.CorrectAnswers) * 100).
		Div(decimal.NewFromInt(int64(total))).
		Round(1)
}
