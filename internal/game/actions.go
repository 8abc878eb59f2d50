package game

import "github.com/victornm/pord/internal/domain"

// Action is one input to the engine. Unknown or ill-timed actions leave
// the state unchanged; the engine is total over its input domain.
type Action interface {
	isAction()
}

// PlayerSpec is the identity the caller supplies for each seat.
type PlayerSpec struct {
	Name string
	Icon string
}

// SettingsPatch is a partial settings update. Nil fields are untouched.
// Out-of-range values are clamped: rounds >= 1, timer >= 1 second,
// lives >= 0, probability within [0, 100].
type SettingsPatch struct {
	TotalRounds      *int
	LivesPerPlayer   *int
	TimerSeconds     *int
	BonusProbability *int
	ShareScores      *bool
}

type (
	// SetGameMode chooses single or multiplayer and moves an idle
	// session on to league selection.
	SetGameMode struct {
		Mode domain.GameMode
	}

	// SetLeague applies a league preset to the settings. An empty ID
	// clears the league without touching the settings.
	SetLeague struct {
		ID string
	}

	// SetPlayers replaces the seat list.
	SetPlayers struct {
		Players []PlayerSpec
	}

	// UpdateSettings applies a partial settings change.
	UpdateSettings struct {
		Patch SettingsPatch
	}

	// StartGame deals a fresh deck and begins round 1.
	StartGame struct{}

	// PlayAgain restarts with the same seats and settings. Bonus-type
	// variety tracking survives so the first bonus of the new game
	// still differs from the last one played.
	PlayAgain struct{}

	// ResetGame returns to the initial state.
	ResetGame struct{}

	// SubmitAnswer resolves the current question. Answer is pokemon,
	// drug, or timeout when the countdown fired.
	SubmitAnswer struct {
		Answer    domain.QuestionType
		ElapsedMs int
	}

	// NextRound advances out of the reveal: elimination checks, turn
	// rotation, round bookkeeping, and the bonus-round coin toss.
	NextRound struct{}

	// SkipQuestion spends a skip power-up to redraw without advancing
	// the round or the turn.
	SkipQuestion struct{}

	// UsePowerUp spends the named consumable.
	UsePowerUp struct {
		Kind domain.PowerUp
	}

	// TriggerBonusRound starts a bonus round immediately.
	TriggerBonusRound struct{}

	// SubmitBonusAnswer resolves the bonus mini-game. Selections is
	// used by selectAll; Answer by the other two types.
	SubmitBonusAnswer struct {
		Answer     string
		Selections []string
		ElapsedMs  int
	}

	// EndBonusRound returns to the main deck.
	EndBonusRound struct{}

	// StartPlaying advances out of the multiplayer hand-off screen and
	// restarts the question clock.
	StartPlaying struct{}
)

func (SetGameMode) isAction()       {}
func (SetLeague) isAction()         {}
func (SetPlayers) isAction()        {}
func (UpdateSettings) isAction()    {}
func (StartGame) isAction()         {}
func (PlayAgain) isAction()         {}
func (ResetGame) isAction()         {}
func (SubmitAnswer) isAction()      {}
func (NextRound) isAction()         {}
func (SkipQuestion) isAction()      {}
func (UsePowerUp) isAction()        {}
func (TriggerBonusRound) isAction() {}
func (SubmitBonusAnswer) isAction() {}
func (EndBonusRound) isAction()     {}
func (StartPlaying) isAction()      {}
