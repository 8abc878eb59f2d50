package game

import "github.com/victornm/pord/internal/domain"

// pickBonusType chooses uniformly among the mini-games, excluding the
// one played last so two consecutive bonus rounds never repeat.
func (e *Engine) pickBonusType(last domain.BonusType) domain.BonusType {
	candidates := make([]domain.BonusType, 0, len(domain.BonusTypes))
	for _, t := range domain.BonusTypes {
		if t != last {
			candidates = append(candidates, t)
		}
	}
	return candidates[e.rng.Intn(len(candidates))]
}

// generateBonus builds a self-consistent payload for the requested
// mini-game. Sampling is independent of the main deck and its cursor.
func (e *Engine) generateBonus(typ domain.BonusType) *domain.BonusData {
	switch typ {
	case domain.BonusOddOneOut:
		return e.generateOddOneOut()
	case domain.BonusSelectAll:
		return e.generateSelectAll()
	case domain.BonusNamePokemon:
		return e.generateNamePokemon()
	default:
		return nil
	}
}

// generateOddOneOut builds 3 items of one type and 1 of the other; the
// minority item is the answer.
func (e *Engine) generateOddOneOut() *domain.BonusData {
	majorityPokemon := e.rng.Intn(2) == 0

	var majority, minority []domain.BonusItem
	if majorityPokemon {
		majority = e.samplePokemon(3)
		minority = e.sampleDrugs(1)
	} else {
		majority = e.sampleDrugs(3)
		minority = e.samplePokemon(1)
	}

	target := minority[0].Type
	items := append(append([]domain.BonusItem{}, majority...), minority...)
	e.rng.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })

	return &domain.BonusData{
		Type:          domain.BonusOddOneOut,
		Prompt:        "Find the " + displayType(target) + "!",
		Items:         items,
		CorrectAnswer: minority[0].Name,
		TargetType:    target,
	}
}

// generateSelectAll builds 5 items with 2 or 3 targets, uniform.
func (e *Engine) generateSelectAll() *domain.BonusData {
	targetPokemon := e.rng.Intn(2) == 0
	targetCount := 2 + e.rng.Intn(2)

	var targets, rest []domain.BonusItem
	if targetPokemon {
		targets = e.samplePokemon(targetCount)
		rest = e.sampleDrugs(5 - targetCount)
	} else {
		targets = e.sampleDrugs(targetCount)
		rest = e.samplePokemon(5 - targetCount)
	}

	correct := make([]string, 0, len(targets))
	for _, t := range targets {
		correct = append(correct, t.Name)
	}

	items := append(append([]domain.BonusItem{}, targets...), rest...)
	e.rng.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })

	prompt := "Select all the Drugs!"
	if targetPokemon {
		prompt = "Select all the Pokémon!"
	}

	return &domain.BonusData{
		Type:           domain.BonusSelectAll,
		Prompt:         prompt,
		Items:          items,
		CorrectAnswers: correct,
		TargetType:     targets[0].Type,
	}
}

// generateNamePokemon builds one Pokémon target hidden among 3 drug
// decoys. The sprite is backfilled later by the caller.
func (e *Engine) generateNamePokemon() *domain.BonusData {
	target := e.samplePokemon(1)[0]
	options := append(e.sampleDrugs(3), target)
	e.rng.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })

	return &domain.BonusData{
		Type:          domain.BonusNamePokemon,
		Prompt:        "Name that Pokémon!",
		PokemonName:   target.Name,
		Options:       options,
		CorrectAnswer: target.Name,
	}
}

func (e *Engine) samplePokemon(n int) []domain.BonusItem {
	idx := e.rng.Perm(len(e.pokemon))
	out := make([]domain.BonusItem, 0, n)
	for _, i := range idx[:n] {
		out = append(out, domain.BonusItem{Name: e.pokemon[i], Type: domain.TypePokemon})
	}
	return out
}

func (e *Engine) sampleDrugs(n int) []domain.BonusItem {
	idx := e.rng.Perm(len(e.drugs))
	out := make([]domain.BonusItem, 0, n)
	for _, i := range idx[:n] {
		out = append(out, domain.BonusItem{Name: e.drugs[i].Name, Type: domain.TypeDrug})
	}
	return out
}

func displayType(t domain.QuestionType) string {
	if t == domain.TypePokemon {
		return "Pokémon"
	}
	return "Drug"
}
