// Package game implements the authoritative state machine for the
// Pokémon-or-Drug party game: mode and league selection, round
// progression, hot-seat turn rotation, scoring with streak multipliers
// and speed bonuses, lives and elimination, power-ups, and the three
// bonus-round mini-games.
//
// The engine is a pure reducer: Apply(state, action) returns a new state
// and performs no I/O. Randomness, the clock, and id generation are
// injected at construction so every transition is reproducible.
package game

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/victornm/pord/internal/domain"
	"github.com/victornm/pord/internal/pool"
)

// DefaultSettings mirror the Poké Ball league preset.
var DefaultSettings = domain.Settings{
	TotalRounds:      10,
	LivesPerPlayer:   3,
	TimerSeconds:     15,
	BonusProbability: 25,
}

// DefaultPowerUps is the loadout every game starts with.
var DefaultPowerUps = domain.PowerUps{Skip: 1, ExtraLife: 0}

// BonusState tracks the current mini-game. LastType survives across
// games so consecutive bonus rounds never repeat a type.
type BonusState struct {
	Active   bool              `json:"active"`
	Type     domain.BonusType  `json:"type,omitempty"`
	Data     *domain.BonusData `json:"data,omitempty"`
	LastType domain.BonusType  `json:"-"`
}

// State is the full session snapshot. It is treated as immutable:
// Apply copies it (and clones any slice it touches) before changing
// anything, so callers may keep references to old snapshots.
type State struct {
	Mode     domain.GameMode   `json:"gameMode"`
	Status   domain.GameStatus `json:"gameStatus"`
	LeagueID string            `json:"league,omitempty"`
	Settings domain.Settings   `json:"settings"`

	Players       []domain.Player `json:"players"`
	CurrentPlayer int             `json:"currentPlayerIndex"`
	Round         int             `json:"currentRound"`

	Deck              Deck             `json:"-"`
	CurrentQuestion   *domain.Question `json:"currentQuestion,omitempty"`
	QuestionStartedAt time.Time        `json:"questionStartedAt"`

	LastAnswer      domain.QuestionType `json:"lastAnswer,omitempty"`
	LastTimeTakenMs int                 `json:"lastTimeTaken"`
	LastSpeedBonus  int                 `json:"lastSpeedBonus"`
	LastCorrect     *bool               `json:"isCorrect,omitempty"`

	PowerUps    domain.PowerUps     `json:"powerUps"`
	Bonus       BonusState          `json:"bonusRound"`
	BonusResult *domain.BonusResult `json:"bonusResult,omitempty"`

	GameID    string    `json:"gameId,omitempty"`
	StartedAt time.Time `json:"startedAt"`
	EndedAt   time.Time `json:"endedAt"`
	LivesLost int       `json:"livesLost"`
}

// NewState returns the initial idle state.
func NewState() State {
	return State{
		Status:   domain.StatusIdle,
		Settings: DefaultSettings,
		PowerUps: DefaultPowerUps,
	}
}

// Config wires the engine's entropy sources and name pools. Zero fields
// get production defaults; tests inject a seeded Rand and a fixed clock.
type Config struct {
	Rand    *rand.Rand
	Now     func() time.Time
	NewID   func() string
	Pokemon []string
	Drugs   []pool.Drug
}

// Engine applies actions to states. Safe for reuse across sessions; not
// safe for concurrent use because of the shared rand source (the session
// runtime serialises dispatches anyway).
type Engine struct {
	rng     *rand.Rand
	now     func() time.Time
	newID   func() string
	pokemon []string
	drugs   []pool.Drug
}

func New(c Config) *Engine {
	e := &Engine{
		rng:     c.Rand,
		now:     c.Now,
		newID:   c.NewID,
		pokemon: c.Pokemon,
		drugs:   c.Drugs,
	}

	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if e.now == nil {
		e.now = time.Now
	}
	if e.newID == nil {
		e.newID = func() string {
			id, err := uuid.NewV7()
			if err != nil {
				return uuid.NewString()
			}
			return id.String()
		}
	}
	if e.pokemon == nil {
		e.pokemon = pool.Pokemon()
	}
	if e.drugs == nil {
		e.drugs = pool.Drugs()
	}

	return e
}

// Apply is the reducer. Unknown actions and actions that make no sense
// in the current phase return the state unchanged.
func (e *Engine) Apply(s State, a Action) State {
	switch a := a.(type) {
	case SetGameMode:
		return e.setGameMode(s, a)
	case SetLeague:
		return e.setLeague(s, a)
	case SetPlayers:
		return e.setPlayers(s, a)
	case UpdateSettings:
		return e.updateSettings(s, a)
	case StartGame:
		return e.startGame(s, false)
	case PlayAgain:
		return e.startGame(s, true)
	case ResetGame:
		return NewState()
	case SubmitAnswer:
		return e.submitAnswer(s, a)
	case NextRound:
		return e.nextRound(s)
	case SkipQuestion:
		return e.skipQuestion(s)
	case UsePowerUp:
		return e.usePowerUp(s, a)
	case TriggerBonusRound:
		return e.triggerBonus(s)
	case SubmitBonusAnswer:
		return e.submitBonusAnswer(s, a)
	case EndBonusRound:
		return e.endBonusRound(s)
	case StartPlaying:
		return e.startPlaying(s)
	default:
		return s
	}
}

func (e *Engine) setGameMode(s State, a SetGameMode) State {
	s.Mode = a.Mode
	if s.Status == domain.StatusIdle && a.Mode != domain.ModeNone {
		s.Status = domain.StatusLeagueSelect
	}
	return s
}

func (e *Engine) setLeague(s State, a SetLeague) State {
	if a.ID == "" {
		s.LeagueID = ""
		return s
	}

	l, ok := pool.LeagueByID(a.ID)
	if !ok {
		return s
	}

	s.LeagueID = l.ID
	s.Settings.TotalRounds = l.TotalRounds
	s.Settings.LivesPerPlayer = l.LivesPerPlayer
	s.Settings.TimerSeconds = l.TimerSeconds
	s.Settings.BonusProbability = l.BonusProbability
	return s
}

func (e *Engine) setPlayers(s State, a SetPlayers) State {
	players := make([]domain.Player, 0, len(a.Players))
	for i, p := range a.Players {
		players = append(players, domain.Player{
			ID:    i,
			Name:  p.Name,
			Icon:  p.Icon,
			Lives: s.Settings.LivesPerPlayer,
		})
	}
	s.Players = players
	return s
}

func (e *Engine) updateSettings(s State, a UpdateSettings) State {
	p := a.Patch
	if p.TotalRounds != nil {
		s.Settings.TotalRounds = max(1, *p.TotalRounds)
	}
	if p.LivesPerPlayer != nil {
		s.Settings.LivesPerPlayer = max(0, *p.LivesPerPlayer)
	}
	if p.TimerSeconds != nil {
		s.Settings.TimerSeconds = max(1, *p.TimerSeconds)
	}
	if p.BonusProbability != nil {
		s.Settings.BonusProbability = min(100, max(0, *p.BonusProbability))
	}
	if p.ShareScores != nil {
		s.Settings.ShareScores = *p.ShareScores
	}
	return s
}

// startGame covers both StartGame and PlayAgain; again preserves the
// bonus-variety tracking across games.
func (e *Engine) startGame(s State, again bool) State {
	if len(s.Players) == 0 {
		return s
	}

	players := make([]domain.Player, 0, len(s.Players))
	for i, p := range s.Players {
		players = append(players, domain.Player{
			ID:    i,
			Name:  p.Name,
			Icon:  p.Icon,
			Lives: s.Settings.LivesPerPlayer,
		})
	}
	s.Players = players

	s.Deck = e.generateDeck()
	q := s.drawQuestion()

	s.Status = domain.StatusPlaying
	s.Round = 1
	s.CurrentPlayer = 0
	s.CurrentQuestion = &q
	s.QuestionStartedAt = e.now()
	s.clearAnswer()

	s.PowerUps = DefaultPowerUps
	lastType := s.Bonus.LastType
	s.Bonus = BonusState{}
	if again {
		s.Bonus.LastType = lastType
	}
	s.BonusResult = nil

	s.GameID = e.newID()
	s.StartedAt = e.now()
	s.EndedAt = time.Time{}
	s.LivesLost = 0
	return s
}

func (e *Engine) submitAnswer(s State, a SubmitAnswer) State {
	if s.Status != domain.StatusPlaying || s.CurrentQuestion == nil || len(s.Players) == 0 {
		return s
	}

	correct := a.Answer == s.CurrentQuestion.Type
	p := s.Players[s.CurrentPlayer]

	var points, bonus int
	if correct {
		bonus = speedBonus(a.ElapsedMs)
		p.Streak++
		points = applyStreak(basePoints+bonus, p.Streak)
		p.CorrectAnswers++
		p.ResponseTimesMs = appendInt(p.ResponseTimesMs, a.ElapsedMs)
		if p.FastestMs == 0 || a.ElapsedMs < p.FastestMs {
			p.FastestMs = a.ElapsedMs
		}
		p.AverageMs = averageInt(p.ResponseTimesMs)
	} else {
		if s.Mode == domain.ModeMultiplayer {
			points = -wrongPenalty
		}
		p.Streak = 0
		p.WrongAnswers++
		if !s.Settings.NoLives() {
			p.Lives--
			s.LivesLost++
		}
	}

	p.Score = clampScore(p.Score + points)
	s.Players = replacePlayer(s.Players, s.CurrentPlayer, p)

	s.LastAnswer = a.Answer
	s.LastTimeTakenMs = a.ElapsedMs
	s.LastSpeedBonus = bonus
	s.LastCorrect = &correct
	s.Status = domain.StatusReveal
	return s
}

// nextRound performs, in order: the single-player elimination check, turn
// rotation with round bookkeeping, the end-of-game checks, dead-seat
// skipping, the bonus-round coin toss, and finally the next draw.
func (e *Engine) nextRound(s State) State {
	if len(s.Players) == 0 || len(s.Deck.Questions) == 0 {
		return s
	}

	current := s.Players[s.CurrentPlayer]
	if current.Lives <= 0 && s.Mode == domain.ModeSingle && !s.Settings.NoLives() {
		return e.gameOver(s)
	}

	next := (s.CurrentPlayer + 1) % len(s.Players)
	nextRound := s.Round
	if next == 0 {
		nextRound++
	}

	if nextRound > s.Settings.TotalRounds {
		return e.gameOver(s)
	}
	if !s.Settings.NoLives() {
		alive := 0
		for _, p := range s.Players {
			if p.Lives > 0 {
				alive++
			}
		}
		if alive == 0 {
			return e.gameOver(s)
		}
	}

	if !s.Settings.NoLives() {
		for i := 0; i < len(s.Players) && s.Players[next].Lives <= 0; i++ {
			next = (next + 1) % len(s.Players)
		}
	}

	playerChanged := next != s.CurrentPlayer
	prevRound := s.Round
	s.Round = nextRound
	s.CurrentPlayer = next

	// Bonus rounds only start appearing from round 2.
	if prevRound >= 2 && e.rng.Float64() < float64(s.Settings.BonusProbability)/100 {
		return e.enterBonus(s)
	}

	q := s.drawQuestion()
	s.CurrentQuestion = &q
	s.QuestionStartedAt = e.now()
	s.clearAnswer()

	if s.Mode == domain.ModeMultiplayer && playerChanged {
		s.Status = domain.StatusReady
	} else {
		s.Status = domain.StatusPlaying
	}
	return s
}

func (e *Engine) gameOver(s State) State {
	s.Status = domain.StatusGameOver
	s.EndedAt = e.now()
	return s
}

func (e *Engine) skipQuestion(s State) State {
	if s.PowerUps.Skip <= 0 || len(s.Deck.Questions) == 0 {
		return s
	}

	s.PowerUps.Skip--
	q := s.drawQuestion()
	s.CurrentQuestion = &q
	s.QuestionStartedAt = e.now()
	s.clearAnswer()
	s.Status = domain.StatusPlaying
	return s
}

func (e *Engine) usePowerUp(s State, a UsePowerUp) State {
	switch a.Kind {
	case domain.PowerUpSkip:
		return e.skipQuestion(s)

	case domain.PowerUpExtraLife:
		if s.PowerUps.ExtraLife <= 0 || len(s.Players) == 0 {
			return s
		}
		s.PowerUps.ExtraLife--
		p := s.Players[s.CurrentPlayer]
		p.Lives++
		s.Players = replacePlayer(s.Players, s.CurrentPlayer, p)
		return s

	default:
		return s
	}
}

func (e *Engine) triggerBonus(s State) State {
	if len(s.Players) == 0 {
		return s
	}
	return e.enterBonus(s)
}

func (e *Engine) enterBonus(s State) State {
	typ := e.pickBonusType(s.Bonus.LastType)
	data := e.generateBonus(typ)

	s.Status = domain.StatusBonus
	s.Bonus = BonusState{
		Active:   true,
		Type:     typ,
		Data:     data,
		LastType: typ,
	}
	s.BonusResult = nil
	s.QuestionStartedAt = e.now()
	s.clearAnswer()
	return s
}

func (e *Engine) submitBonusAnswer(s State, a SubmitBonusAnswer) State {
	if !s.Bonus.Active || s.Bonus.Data == nil || len(s.Players) == 0 {
		return s
	}

	res := scoreBonus(*s.Bonus.Data, a)

	p := s.Players[s.CurrentPlayer]
	// Bonus rounds never touch lives or streak.
	p.Score = clampScore(p.Score + res.Points)
	s.Players = replacePlayer(s.Players, s.CurrentPlayer, p)

	s.BonusResult = &res
	s.Status = domain.StatusBonusReveal
	return s
}

func (e *Engine) endBonusRound(s State) State {
	if len(s.Deck.Questions) == 0 {
		return s
	}

	s.Bonus.Active = false
	s.Bonus.Type = ""
	s.Bonus.Data = nil
	s.BonusResult = nil

	q := s.drawQuestion()
	s.CurrentQuestion = &q
	s.QuestionStartedAt = e.now()
	s.clearAnswer()
	s.Status = domain.StatusPlaying
	return s
}

func (e *Engine) startPlaying(s State) State {
	if s.Status != domain.StatusReady {
		return s
	}
	s.Status = domain.StatusPlaying
	s.QuestionStartedAt = e.now()
	return s
}

func (s *State) drawQuestion() domain.Question {
	q, d := s.Deck.Draw()
	s.Deck = d
	return q
}

func (s *State) clearAnswer() {
	s.LastAnswer = ""
	s.LastTimeTakenMs = 0
	s.LastSpeedBonus = 0
	s.LastCorrect = nil
}

func replacePlayer(players []domain.Player, i int, p domain.Player) []domain.Player {
	out := make([]domain.Player, len(players))
	copy(out, players)
	out[i] = p
	return out
}

func appendInt(xs []int, x int) []int {
	out := make([]int, len(xs), len(xs)+1)
	copy(out, xs)
	return append(out, x)
}

func averageInt(xs []int) int {
	if len(xs) == 0 {
		return 0
	}
	sum := 0
	for _, x := range xs {
		sum += x
	}
	return (sum + len(xs)/2) / len(xs)
}
