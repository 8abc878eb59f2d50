package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GameMode selects between a solo run and local hot-seat multiplayer.
type GameMode string

const (
	ModeNone        GameMode = ""
	ModeSingle      GameMode = "single"
	ModeMultiplayer GameMode = "multiplayer"
)

// GameStatus is the phase of a running session.
type GameStatus string

const (
	StatusIdle         GameStatus = "idle"
	StatusLeagueSelect GameStatus = "leagueSelect"
	StatusPlaying      GameStatus = "playing"
	StatusReady        GameStatus = "ready"
	StatusReveal       GameStatus = "reveal"
	StatusBonus        GameStatus = "bonus"
	StatusBonusReveal  GameStatus = "bonusReveal"
	StatusGameOver     GameStatus = "gameover"
)

// QuestionType tags a question as a Pokémon or a drug. Answers use the
// same values, plus AnswerTimeout when the countdown fires.
type QuestionType string

const (
	TypePokemon QuestionType = "pokemon"
	TypeDrug    QuestionType = "drug"

	AnswerTimeout QuestionType = "timeout"
)

// Question is one main-deck entry. Drug fields are only set for drug
// questions. ImageURL stays empty until the client resolves the
// artwork through the sprite endpoint.
type Question struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Type        QuestionType `json:"type"`
	ImageURL    string       `json:"imageUrl,omitempty"`
	Category    string       `json:"category,omitempty"`
	Color       string       `json:"color,omitempty"`
	Description string       `json:"description,omitempty"`
	PillShape   string       `json:"pillShape,omitempty"`
	PillColor   string       `json:"pillColor,omitempty"`
}

// Player is one hot-seat participant. Response times are recorded for
// correct answers only, so the derived stats measure skill, not stalling.
type Player struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Icon            string `json:"icon"`
	Score           int    `json:"score"`
	Lives           int    `json:"lives"`
	Streak          int    `json:"streak"`
	CorrectAnswers  int    `json:"correctAnswers"`
	WrongAnswers    int    `json:"wrongAnswers"`
	ResponseTimesMs []int  `json:"responseTimes"`
	FastestMs       int    `json:"fastestResponse"` // 0 until the first correct answer
	AverageMs       int    `json:"avgResponseTime"`
}

// Accuracy returns the correct-answer percentage, 0 when nothing was answered.
func (p Player) Accuracy() int {
	total := p.CorrectAnswers + p.WrongAnswers
	if total == 0 {
		return 0
	}
	return int(float64(p.CorrectAnswers)/float64(total)*100 + 0.5)
}

// Settings are the per-session knobs. Leagues are presets over these.
type Settings struct {
	TotalRounds      int  `json:"totalRounds"`
	LivesPerPlayer   int  `json:"livesPerPlayer"`
	TimerSeconds     int  `json:"timerSeconds"`
	BonusProbability int  `json:"bonusProbability"` // percent
	ShareScores      bool `json:"shareScores"`
}

// NoLives reports whether the session runs the no-elimination variant.
func (s Settings) NoLives() bool {
	return s.LivesPerPlayer == 0
}

// PowerUps are session-wide consumables.
type PowerUps struct {
	Skip      int `json:"skip"`
	ExtraLife int `json:"extraLife"`
}

// PowerUp names the consumable a UsePowerUp action spends.
type PowerUp string

const (
	PowerUpSkip      PowerUp = "skip"
	PowerUpExtraLife PowerUp = "extraLife"
)

// BonusType selects one of the three mini-games.
type BonusType string

const (
	BonusOddOneOut   BonusType = "oddOneOut"
	BonusSelectAll   BonusType = "selectAll"
	BonusNamePokemon BonusType = "namePokemon"
)

// BonusTypes lists every mini-game, in no particular order.
var BonusTypes = []BonusType{BonusOddOneOut, BonusSelectAll, BonusNamePokemon}

// BonusItem is one labelled choice inside a bonus payload.
type BonusItem struct {
	Name string       `json:"name"`
	Type QuestionType `json:"type"`
}

// BonusData is a generated mini-game payload. Which fields are populated
// depends on Type: oddOneOut and selectAll use Items, namePokemon uses
// PokemonName plus Options. Never mutated after generation except the
// lazy PokemonImageURL backfill.
type BonusData struct {
	Type            BonusType    `json:"type"`
	Prompt          string       `json:"prompt"`
	Items           []BonusItem  `json:"items,omitempty"`
	CorrectAnswer   string       `json:"correctAnswer,omitempty"`
	CorrectAnswers  []string     `json:"correctAnswers,omitempty"`
	TargetType      QuestionType `json:"targetType,omitempty"`
	PokemonName     string       `json:"pokemonName,omitempty"`
	PokemonImageURL string       `json:"pokemonImageUrl,omitempty"`
	Options         []BonusItem  `json:"options,omitempty"`
}

// BonusResult is the outcome of a submitted bonus answer. A selectAll
// submission with any wrong pick is neither correct nor partial.
type BonusResult struct {
	Correct    bool     `json:"isCorrect"`
	Partial    bool     `json:"isPartial"`
	Points     int      `json:"points"`
	Answer     string   `json:"answer,omitempty"`
	Selections []string `json:"selections,omitempty"`
}

// HighScore is one locally persisted best-score entry, keyed by
// lowercased player name.
type HighScore struct {
	Name   string    `json:"name"`
	Score  int       `json:"score"`
	Mode   GameMode  `json:"mode"`
	League string    `json:"league,omitempty"`
	Date   time.Time `json:"date"`
}

// Period segments leaderboards into daily and all-time views.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodAllTime Period = "alltime"
)

// MedalType ranks how a submitted score placed.
type MedalType string

const (
	MedalGold   MedalType = "gold"
	MedalSilver MedalType = "silver"
	MedalBronze MedalType = "bronze"
	MedalTop10  MedalType = "top10"
)

// Medal is a persisted award. The (Type, League, Period, Date) tuple is
// the dedupe key: a player earns each combination at most once.
type Medal struct {
	Type   MedalType `json:"type"`
	League string    `json:"league"`
	Period Period    `json:"period"`
	Date   string    `json:"date"` // YYYY-MM-DD
	Name   string    `json:"name"`
}

// Key returns the dedupe key for a medal.
func (m Medal) Key() string {
	return string(m.Type) + ":" + m.League + ":" + string(m.Period) + ":" + m.Date
}

// GameResult is the rich per-game record submitted to the score history
// and, from there, to the leaderboards.
type GameResult struct {
	GameID        string          `json:"gameId"`
	Name          string          `json:"name"`
	Score         int             `json:"score"`
	Mode          GameMode        `json:"mode"`
	League        string          `json:"league,omitempty"`
	Accuracy      decimal.Decimal `json:"accuracy"`
	AvgResponseMs decimal.Decimal `json:"avgResponseMs"`
	Rounds        int             `json:"rounds"`
	LivesLost     int             `json:"livesLost"`
	SubmitTime    time.Time       `json:"submitTime"`
}

// LeaderboardEntry is one ranked row.
type LeaderboardEntry struct {
	Rank   int     `json:"rank"`
	Name   string  `json:"name"`
	Score  float64 `json:"score"`
	League string  `json:"league,omitempty"`
}

// Leaderboard is a ranked listing for one league and period, best first.
type Leaderboard struct {
	League  string             `json:"league"`
	Period  Period             `json:"period"`
	Entries []LeaderboardEntry `json:"entries"`
}
