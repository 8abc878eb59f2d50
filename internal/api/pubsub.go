package api

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/victornm/pord/internal/domain"
)

const maxConcurrent = 100

type (
	leaderboardMessage struct {
		League  string             `json:"league"`
		Period  string             `json:"period"`
		Entries []leaderboardEntry `json:"entries"`
	}

	leaderboardEntry struct {
		Rank  int    `json:"rank"`
		Name  string `json:"name"`
		Score string `json:"score"`
	}
)

// publishLeaderboardUpdated notifies each ranked player over redis
// pubsub so other hosted instances can surface "you were passed" toasts.
func (a *API) publishLeaderboardUpdated(ctx context.Context, e domain.EventLeaderboardUpdated) error {
	if a.redis == nil {
		return nil
	}

	l := e.Leaderboard

	data := leaderboardMessage{
		League:  l.League,
		Period:  string(l.Period),
		Entries: make([]leaderboardEntry, 0, len(l.Entries)),
	}

	for _, entry := range l.Entries {
		data.Entries = append(data.Entries, leaderboardEntry{
			Rank:  entry.Rank,
			Name:  entry.Name,
			Score: strconv.FormatFloat(entry.Score, 'f', -1, 64),
		})
	}

	var eg errgroup.Group
	eg.SetLimit(maxConcurrent)

	for _, entry := range data.Entries {
		eg.Go(func() error {
			return a.publishNotification(ctx, entry.Name, e.Name(), data)
		})
	}

	return eg.Wait()
}

func (a *API) publishNotification(ctx context.Context, player, event string, data any) error {
	n := notification{
		Event: event,
		Data:  data,
	}

	b, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("pubsub: marshal %s: %v", event, err)
	}

	return a.redis.Publish(ctx, fmt.Sprintf("%s:player:%s", a.prefix, player), b).Err()
}
