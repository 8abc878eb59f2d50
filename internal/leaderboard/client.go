package leaderboard

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/victornm/pord/internal/domain"
)

// Client submits scores to a remote leaderboard endpoint and fetches
// the global list. Every failure is swallowed after a warning: the
// remote board is cosmetic and must never interfere with gameplay.
type Client struct {
	url  string
	http *http.Client
	now  func() time.Time
}

type ClientOption func(*Client)

func WithClientHTTP(h *http.Client) ClientOption {
	return func(c *Client) { c.http = h }
}

func WithClientNow(now func() time.Time) ClientOption {
	return func(c *Client) { c.now = now }
}

func NewClient(endpoint string, opts ...ClientOption) *Client {
	c := &Client{
		url:  endpoint,
		http: &http.Client{Timeout: 10 * time.Second},
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type submitPayload struct {
	Name          string          `json:"name"`
	Score         int             `json:"score"`
	Accuracy      decimal.Decimal `json:"accuracy"`
	AvgResponseMs decimal.Decimal `json:"avgResponseMs"`
	Mode          domain.GameMode `json:"mode"`
	League        string          `json:"league,omitempty"`
	GameID        string          `json:"gameId,omitempty"`
}

type fetchResponse struct {
	Success bool        `json:"success"`
	Scores  []wireScore `json:"scores"`
}

type wireScore struct {
	Name      string    `json:"name"`
	Score     float64   `json:"score"`
	League    string    `json:"league"`
	Timestamp time.Time `json:"timestamp"`
}

// Submit posts a result. Fire-and-forget: an error is logged and dropped.
func (c *Client) Submit(ctx context.Context, r domain.GameResult) {
	body, err := json.Marshal(submitPayload{
		Name:          r.Name,
		Score:         r.Score,
		Accuracy:      r.Accuracy,
		AvgResponseMs: r.AvgResponseMs,
		Mode:          r.Mode,
		League:        r.League,
		GameID:        r.GameID,
	})
	if err != nil {
		slog.WarnContext(ctx, "leaderboard: marshal submit", "error", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		slog.WarnContext(ctx, "leaderboard: build submit request", "error", err)
		return
	}
	// The legacy Apps-Script endpoint only accepts text/plain posts.
	req.Header.Set("Content-Type", "text/plain")

	resp, err := c.http.Do(req)
	if err != nil {
		slog.WarnContext(ctx, "leaderboard: submit failed", "error", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.WarnContext(ctx, "leaderboard: submit rejected", "status", resp.StatusCode)
	}
}

// Fetch returns the remote entries for a league and period, best first.
// Any failure yields an empty list. The daily view is filtered
// client-side because the legacy endpoint has no period parameter.
func (c *Client) Fetch(ctx context.Context, league string, period domain.Period) []domain.LeaderboardEntry {
	u := c.url
	if league != "" {
		u += "?" + url.Values{"league": {league}}.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		slog.WarnContext(ctx, "leaderboard: build fetch request", "error", err)
		return nil
	}

	resp, err := c.http.Do(req)
	if err != nil {
		slog.WarnContext(ctx, "leaderboard: fetch failed", "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.WarnContext(ctx, "leaderboard: fetch rejected", "status", resp.StatusCode)
		return nil
	}

	var fr fetchResponse
	if err := json.NewDecoder(resp.Body).Decode(&fr); err != nil {
		slog.WarnContext(ctx, "leaderboard: decode fetch response", "error", err)
		return nil
	}
	if !fr.Success {
		return nil
	}

	today := c.now().UTC().Format("2006-01-02")
	entries := make([]domain.LeaderboardEntry, 0, len(fr.Scores))
	for _, s := range fr.Scores {
		if period == domain.PeriodDaily && s.Timestamp.UTC().Format("2006-01-02") != today {
			continue
		}
		entries = append(entries, domain.LeaderboardEntry{
			Rank:   len(entries) + 1,
			Name:   s.Name,
			Score:  s.Score,
			League: s.League,
		})
	}
	return entries
}
