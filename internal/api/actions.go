package api

import (
	"encoding/json"

	"github.com/victornm/pord/internal/domain"
	"github.com/victornm/pord/internal/errors"
	"github.com/victornm/pord/internal/game"
)

// actionEnvelope is the wire form of a dispatched action: a type tag
// plus a payload whose shape depends on the type.
type actionEnvelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type (
	setGameModePayload struct {
		Mode domain.GameMode `json:"mode"`
	}

	setLeaguePayload struct {
		League string `json:"league"`
	}

	setPlayersPayload struct {
		Players []playerSpec `json:"players"`
	}

	playerSpec struct {
		Name string `json:"name"`
		Icon string `json:"icon"`
	}

	updateSettingsPayload struct {
		TotalRounds      *int  `json:"totalRounds"`
		LivesPerPlayer   *int  `json:"livesPerPlayer"`
		TimerSeconds     *int  `json:"timerSeconds"`
		BonusProbability *int  `json:"bonusProbability"`
		ShareScores      *bool `json:"shareScores"`
	}

	submitAnswerPayload struct {
		Answer    domain.QuestionType `json:"answer"`
		ElapsedMs int                 `json:"elapsedMs"`
	}

	usePowerUpPayload struct {
		PowerUp domain.PowerUp `json:"powerUp"`
	}

	submitBonusAnswerPayload struct {
		Answer     string   `json:"answer"`
		Selections []string `json:"selections"`
		ElapsedMs  int      `json:"elapsedMs"`
	}
)

// action decodes the envelope into an engine action.
func (e actionEnvelope) action() (game.Action, error) {
	switch e.Type {
	case "SET_GAME_MODE":
		var p setGameModePayload
		if err := e.decode(&p); err != nil {
			return nil, err
		}
		return game.SetGameMode{Mode: p.Mode}, nil

	case "SET_LEAGUE":
		var p setLeaguePayload
		if err := e.decode(&p); err != nil {
			return nil, err
		}
		return game.SetLeague{ID: p.League}, nil

	case "SET_PLAYERS":
		var p setPlayersPayload
		if err := e.decode(&p); err != nil {
			return nil, err
		}
		specs := make([]game.PlayerSpec, 0, len(p.Players))
		for _, pl := range p.Players {
			specs = append(specs, game.PlayerSpec{Name: pl.Name, Icon: pl.Icon})
		}
		return game.SetPlayers{Players: specs}, nil

	case "UPDATE_SETTINGS":
		var p updateSettingsPayload
		if err := e.decode(&p); err != nil {
			return nil, err
		}
		return game.UpdateSettings{Patch: game.SettingsPatch{
			TotalRounds:      p.TotalRounds,
			LivesPerPlayer:   p.LivesPerPlayer,
			TimerSeconds:     p.TimerSeconds,
			BonusProbability: p.BonusProbability,
			ShareScores:      p.ShareScores,
		}}, nil

	case "START_GAME":
		return game.StartGame{}, nil

	case "PLAY_AGAIN":
		return game.PlayAgain{}, nil

	case "RESET_GAME":
		return game.ResetGame{}, nil

	case "SUBMIT_ANSWER":
		var p submitAnswerPayload
		if err := e.decode(&p); err != nil {
			return nil, err
		}
		return game.SubmitAnswer{Answer: p.Answer, ElapsedMs: p.ElapsedMs}, nil

	case "NEXT_ROUND":
		return game.NextRound{}, nil

	case "SKIP_QUESTION":
		return game.SkipQuestion{}, nil

	case "USE_POWER_UP":
		var p usePowerUpPayload
		if err := e.decode(&p); err != nil {
			return nil, err
		}
		return game.UsePowerUp{Kind: p.PowerUp}, nil

	case "TRIGGER_BONUS_ROUND":
		return game.TriggerBonusRound{}, nil

	case "SUBMIT_BONUS_ANSWER":
		var p submitBonusAnswerPayload
		if err := e.decode(&p); err != nil {
			return nil, err
		}
		return game.SubmitBonusAnswer{
			Answer:     p.Answer,
			Selections: p.Selections,
			ElapsedMs:  p.ElapsedMs,
		}, nil

	case "END_BONUS_ROUND":
		return game.EndBonusRound{}, nil

	case "START_PLAYING":
		return game.StartPlaying{}, nil
	}

	return nil, errors.New(errors.CodeInvalidArgument,
		errors.WithMessagef("unknown action type %q", e.Type))
}

func (e actionEnvelope) decode(v any) error {
	if len(e.Payload) == 0 {
		return errors.New(errors.CodeInvalidArgument,
			errors.WithMessagef("action %s requires a payload", e.Type))
	}
	if err := json.Unmarshal(e.Payload, v); err != nil {
		return errors.New(errors.CodeInvalidArgument,
			errors.WithMessagef("decode %s payload: %v", e.Type, err))
	}
	return nil
}
