package game

import (
	"github.com/victornm/pord/internal/domain"
	"github.com/victornm/pord/internal/pool"
)

// Deck is a cyclic question sequence. The cursor only ever increases;
// Draw indexes modulo the deck length, so a game can outlast the pools
// and names simply come around again. Contents are never reshuffled
// mid-game, which keeps the cursor and the deck independent.
type Deck struct {
	Questions []domain.Question `json:"questions"`
	Cursor    int               `json:"cursor"`
}

// Draw returns the question at the cursor and the advanced deck.
func (d Deck) Draw() (domain.Question, Deck) {
	q := d.Questions[d.Cursor%len(d.Questions)]
	d.Cursor++
	return q, d
}

// generateDeck shuffles both pools independently, then interleaves them
// by fair coin flip until one side drains and the other is appended.
// Every name appears exactly once; alternation is approximately even.
func (e *Engine) generateDeck() Deck {
	poke := make([]domain.Question, 0, len(e.pokemon))
	for _, name := range e.pokemon {
		poke = append(poke, pokemonQuestion(name))
	}
	drugs := make([]domain.Question, 0, len(e.drugs))
	for _, d := range e.drugs {
		drugs = append(drugs, drugQuestion(d))
	}

	e.rng.Shuffle(len(poke), func(i, j int) { poke[i], poke[j] = poke[j], poke[i] })
	e.rng.Shuffle(len(drugs), func(i, j int) { drugs[i], drugs[j] = drugs[j], drugs[i] })

	questions := make([]domain.Question, 0, len(poke)+len(drugs))
	for len(poke) > 0 && len(drugs) > 0 {
		if e.rng.Intn(2) == 0 {
			questions = append(questions, poke[0])
			poke = poke[1:]
		} else {
			questions = append(questions, drugs[0])
			drugs = drugs[1:]
		}
	}
	questions = append(questions, poke...)
	questions = append(questions, drugs...)

	return Deck{Questions: questions}
}

func pokemonQuestion(name string) domain.Question {
	return domain.Question{
		ID:   "pokemon-" + name,
		Name: name,
		Type: domain.TypePokemon,
	}
}

func drugQuestion(d pool.Drug) domain.Question {
	return domain.Question{
		ID:          "drug-" + d.Name,
		Name:        d.Name,
		Type:        domain.TypeDrug,
		Category:    d.Category,
		Color:       d.Color,
		Description: d.Description,
		PillShape:   d.PillShape,
		PillColor:   d.PillColor,
	}
}
