package leaderboard_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/victornm/pord/internal/domain"
	"github.com/victornm/pord/internal/leaderboard"
)

func TestClient_Submit(t *testing.T) {
	t.Parallel()

	type received struct {
		contentType string
		body        map[string]any
	}

	var got received
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.contentType = r.Header.Get("Content-Type")
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &got.body))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := leaderboard.NewClient(srv.URL, leaderboard.WithClientHTTP(srv.Client()))

	c.Submit(context.Background(), domain.GameResult{
		Name:   "Ash",
		Score:  750,
		Mode:   domain.ModeSingle,
		League: "pokeball",
		GameID: "g1",
	})

	require.Equal(t, "text/plain", got.contentType, "legacy endpoint only accepts text/plain")
	require.Equal(t, "Ash", got.body["name"])
	require.Equal(t, float64(750), got.body["score"])
	require.Equal(t, "pokeball", got.body["league"])
}

func TestClient_Fetch(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	type inputs struct {
		handler http.HandlerFunc
		league  string
		period  domain.Period
	}

	ok := func(scores string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			io.WriteString(w, `{"success":true,"scores":`+scores+`}`)
		}
	}

	tests := map[string]struct {
		arrange func() inputs
		assert  func(t *testing.T, entries []domain.LeaderboardEntry)
	}{
		"should return remote entries ranked in order": {
			arrange: func() inputs {
				return inputs{
					handler: ok(`[
						{"name":"Misty","score":900,"league":"pokeball","timestamp":"2026-03-02T09:00:00Z"},
						{"name":"Ash","score":450,"league":"pokeball","timestamp":"2026-03-02T08:00:00Z"}
					]`),
					league: "pokeball",
					period: domain.PeriodAllTime,
				}
			},

			assert: func(t *testing.T, entries []domain.LeaderboardEntry) {
				require.Equal(t, []domain.LeaderboardEntry{
					{Rank: 1, Name: "Misty", Score: 900, League: "pokeball"},
					{Rank: 2, Name: "Ash", Score: 450, League: "pokeball"},
				}, entries)
			},
		},

		"should filter the daily view to today's scores": {
			arrange: func() inputs {
				return inputs{
					handler: ok(`[
						{"name":"Misty","score":900,"league":"pokeball","timestamp":"2026-03-01T09:00:00Z"},
						{"name":"Ash","score":450,"league":"pokeball","timestamp":"2026-03-02T08:00:00Z"}
					]`),
					league: "pokeball",
					period: domain.PeriodDaily,
				}
			},

			assert: func(t *testing.T, entries []domain.LeaderboardEntry) {
				require.Equal(t, []domain.LeaderboardEntry{
					{Rank: 1, Name: "Ash", Score: 450, League: "pokeball"},
				}, entries)
			},
		},

		"should return nothing when the endpoint reports failure": {
			arrange: func() inputs {
				return inputs{
					handler: func(w http.ResponseWriter, r *http.Request) {
						io.WriteString(w, `{"success":false}`)
					},
					period: domain.PeriodAllTime,
				}
			},

			assert: func(t *testing.T, entries []domain.LeaderboardEntry) {
				require.Empty(t, entries)
			},
		},

		"should return nothing on a server error": {
			arrange: func() inputs {
				return inputs{
					handler: func(w http.ResponseWriter, r *http.Request) {
						w.WriteHeader(http.StatusInternalServerError)
					},
					period: domain.PeriodAllTime,
				}
			},

			assert: func(t *testing.T, entries []domain.LeaderboardEntry) {
				require.Empty(t, entries)
			},
		},

		"should return nothing on malformed json": {
			arrange: func() inputs {
				return inputs{
					handler: func(w http.ResponseWriter, r *http.Request) {
						io.WriteString(w, `{"success":`)
					},
					period: domain.PeriodAllTime,
				}
			},

			assert: func(t *testing.T, entries []domain.LeaderboardEntry) {
				require.Empty(t, entries)
			},
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			in := tt.arrange()

			srv := httptest.NewServer(in.handler)
			defer srv.Close()

			c := leaderboard.NewClient(srv.URL,
				leaderboard.WithClientHTTP(srv.Client()),
				leaderboard.WithClientNow(func() time.Time { return now }),
			)

			tt.assert(t, c.Fetch(context.Background(), in.league, in.period))
		})
	}
}

func TestClient_FetchSendsLeagueQuery(t *testing.T) {
	t.Parallel()

	var gotLeague string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLeague = r.URL.Query().Get("league")
		io.WriteString(w, `{"success":true,"scores":[]}`)
	}))
	defer srv.Close()

	c := leaderboard.NewClient(srv.URL, leaderboard.WithClientHTTP(srv.Client()))
	c.Fetch(context.Background(), "masterball", domain.PeriodAllTime)

	require.Equal(t, "masterball", gotLeague)
}
