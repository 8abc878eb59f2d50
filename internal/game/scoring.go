package game

import "github.com/victornm/pord/internal/domain"

const (
	basePoints   = 100
	wrongPenalty = 50

	bonusBasePoints   = 200 // oddOneOut and namePokemon
	bonusWrongPenalty = 100
	selectAllPerHit   = 80
	selectAllPerMiss  = 100 // per wrong selection; uncovered targets cost nothing extra
)

// speedBonus rewards fast answers: the full 50 under one second,
// linearly decaying to zero at five seconds.
func speedBonus(elapsedMs int) int {
	b := 50 - elapsedMs/100
	if b < 0 {
		return 0
	}
	return b
}

// applyStreak multiplies the combined base+bonus total. The 1.5x tier
// floors after multiplication.
func applyStreak(points, streak int) int {
	switch {
	case streak >= 10:
		return points * 3
	case streak >= 5:
		return points * 2
	case streak >= 3:
		return points * 3 / 2
	default:
		return points
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	return score
}

// scoreBonus resolves a bonus submission against its payload.
func scoreBonus(data domain.BonusData, a SubmitBonusAnswer) domain.BonusResult {
	switch data.Type {
	case domain.BonusSelectAll:
		return scoreSelectAll(data, a)

	case domain.BonusOddOneOut, domain.BonusNamePokemon:
		res := domain.BonusResult{Answer: a.Answer}
		if a.Answer == data.CorrectAnswer {
			res.Correct = true
			res.Points = bonusBasePoints + speedBonus(a.ElapsedMs)
		} else {
			res.Points = -bonusWrongPenalty
		}
		return res

	default:
		return domain.BonusResult{}
	}
}

// scoreSelectAll awards per-hit points minus per-wrong penalties. Missed
// targets only forgo points. A perfect selection earns the speed bonus;
// an incomplete but mistake-free one counts as partial.
func scoreSelectAll(data domain.BonusData, a SubmitBonusAnswer) domain.BonusResult {
	correctSet := make(map[string]bool, len(data.CorrectAnswers))
	for _, name := range data.CorrectAnswers {
		correctSet[name] = true
	}

	var hits, wrong int
	seen := make(map[string]bool, len(a.Selections))
	for _, name := range a.Selections {
		if seen[name] {
			continue
		}
		seen[name] = true
		if correctSet[name] {
			hits++
		} else {
			wrong++
		}
	}

	res := domain.BonusResult{
		Selections: a.Selections,
		Points:     hits*selectAllPerHit - wrong*selectAllPerMiss,
	}
	res.Correct = hits == len(data.CorrectAnswers) && wrong == 0
	res.Partial = !res.Correct && hits > 0 && wrong == 0
	if res.Correct {
		res.Points += speedBonus(a.ElapsedMs)
	}
	return res
}
