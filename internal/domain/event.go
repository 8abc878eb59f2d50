package domain

const (
	EventNameGameEnded          = "game.ended"
	EventNameScoreSubmitted     = "score.submitted"
	EventNameLeaderboardUpdated = "leaderboard.updated"
	EventNameStateChanged       = "session.state_changed"
)

// EventGameEnded fires when a session reaches gameover.
type EventGameEnded struct {
	GameID  string
	Results []GameResult
}

func (EventGameEnded) Name() string { return EventNameGameEnded }

// EventScoreSubmitted fires after a game result lands in the score history.
type EventScoreSubmitted struct {
	Result GameResult
}

func (EventScoreSubmitted) Name() string { return EventNameScoreSubmitted }

// EventLeaderboardUpdated fires when a leaderboard changes.
type EventLeaderboardUpdated struct {
	Leaderboard Leaderboard
}

func (EventLeaderboardUpdated) Name() string { return EventNameLeaderboardUpdated }

// EventStateChanged fires after every applied action so transports can
// stream fresh session snapshots.
type EventStateChanged struct {
	SessionID string
	Status    GameStatus
}

func (EventStateChanged) Name() string { return EventNameStateChanged }
