package pool

// League is a named difficulty preset. Leaderboards are segmented by
// league id, so the presets are part of the data contract, not just UI.
type League struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	TotalRounds      int    `json:"totalRounds"`
	LivesPerPlayer   int    `json:"livesPerPlayer"`
	TimerSeconds     int    `json:"timerSeconds"`
	BonusProbability int    `json:"bonusProbability"`
}

// NoLives reports whether this league runs the no-elimination variant.
func (l League) NoLives() bool {
	return l.LivesPerPlayer == 0
}

// Leagues returns the presets in display order.
func Leagues() []League {
	out := make([]League, len(leagues))
	copy(out, leagues)
	return out
}

// LeagueByID returns the preset with the given id.
func LeagueByID(id string) (League, bool) {
	for _, l := range leagues {
		if l.ID == id {
			return l, true
		}
	}
	return League{}, false
}

var leagues = []League{
	{ID: "pokeball", Name: "Poké Ball League", TotalRounds: 10, LivesPerPlayer: 3, TimerSeconds: 15, BonusProbability: 25},
	{ID: "greatball", Name: "Great Ball League", TotalRounds: 15, LivesPerPlayer: 2, TimerSeconds: 10, BonusProbability: 25},
	{ID: "ultraball", Name: "Ultra Ball League", TotalRounds: 20, LivesPerPlayer: 1, TimerSeconds: 8, BonusProbability: 30},
	// Lives are never deducted here; the game ends on the round cap alone.
	{ID: "masterball", Name: "Master Ball Marathon", TotalRounds: 30, LivesPerPlayer: 0, TimerSeconds: 10, BonusProbability: 20},
}
