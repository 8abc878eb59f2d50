package api_test

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/victornm/pord/internal/api"
	"github.com/victornm/pord/internal/event"
	"github.com/victornm/pord/internal/game"
	"github.com/victornm/pord/internal/highscore"
	"github.com/victornm/pord/internal/leaderboard"
	"github.com/victornm/pord/internal/pool"
	"github.com/victornm/pord/internal/session"
	"github.com/victornm/pord/internal/sprite"
)

type fixture struct {
	router *gin.Engine
	bus    *event.Bus
	lb     *leaderboard.Service
}

func makeAPI(t *testing.T) *fixture {
	t.Helper()

	gin.SetMode(gin.TestMode)

	rs := miniredis.RunT(t)
	rc := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs: []string{rs.Addr()},
	})

	eb := event.NewBus()
	t.Cleanup(eb.Stop)

	lb := leaderboard.NewService(leaderboard.Config{
		EventBus: eb,
		Redis:    rc,
		Prefix:   "test:leaderboard",
	})

	sm := session.NewManager(session.Config{
		EventBus: eb,
		Engine: game.New(game.Config{
			Rand:    rand.New(rand.NewSource(11)),
			Pokemon: pool.Pokemon(),
			Drugs:   pool.Drugs(),
		}),
	})
	t.Cleanup(sm.Close)

	router := gin.New()
	api.New(api.Config{
		Router:      router,
		EventBus:    eb,
		Sessions:    sm,
		Leaderboard: lb,
		HighScores:  highscore.NewStore(t.TempDir()),
		Sprites:     sprite.NewClient(),
		Redis:       rc,
	})

	return &fixture{router: router, bus: eb, lb: lb}
}

func (f *fixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *fixture) createSession(t *testing.T) string {
	t.Helper()

	w := f.do(t, http.MethodPost, "/v1/sessions", "")
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		SessionID string `json:"sessionId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.SessionID)
	return resp.SessionID
}

func TestAPI_SessionLifecycle(t *testing.T) {
	f := makeAPI(t)

	id := f.createSession(t)

	w := f.do(t, http.MethodGet, "/v1/sessions/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = f.do(t, http.MethodGet, "/v1/sessions/nope", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(t, http.MethodDelete, "/v1/sessions/"+id, "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = f.do(t, http.MethodGet, "/v1/sessions/"+id, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPI_DispatchActions(t *testing.T) {
	f := makeAPI(t)
	id := f.createSession(t)

	tests := map[string]struct {
		body   string
		code   int
		status string
	}{
		"should move to league select on set game mode": {
			body:   `{"type":"SET_GAME_MODE","payload":{"mode":"single"}}`,
			code:   http.StatusOK,
			status: "leagueSelect",
		},
		"should reject an unknown action type": {
			body: `{"type":"DO_A_FLIP"}`,
			code: http.StatusBadRequest,
		},
		"should reject a typed action without its payload": {
			body: `{"type":"SUBMIT_ANSWER"}`,
			code: http.StatusBadRequest,
		},
		"should reject malformed json": {
			body: `{"type":`,
			code: http.StatusBadRequest,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := f.do(t, http.MethodPost, "/v1/sessions/"+id+"/actions", tt.body)
			require.Equal(t, tt.code, w.Code)

			if tt.status != "" {
				var resp struct {
					State struct {
						Status string `json:"gameStatus"`
					} `json:"state"`
				}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				require.Equal(t, tt.status, resp.State.Status)
			}
		})
	}
}

func TestAPI_FullGameOverHTTP(t *testing.T) {
	f := makeAPI(t)
	id := f.createSession(t)

	dispatch := func(body string) map[string]any {
		w := f.do(t, http.MethodPost, "/v1/sessions/"+id+"/actions", body)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			State map[string]any `json:"state"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return resp.State
	}

	dispatch(`{"type":"SET_GAME_MODE","payload":{"mode":"single"}}`)
	dispatch(`{"type":"SET_PLAYERS","payload":{"players":[{"name":"Ash","icon":"🔴"}]}}`)
	dispatch(`{"type":"UPDATE_SETTINGS","payload":{"totalRounds":1,"bonusProbability":0}}`)

	st := dispatch(`{"type":"START_GAME"}`)
	require.Equal(t, "playing", st["gameStatus"])

	q := st["currentQuestion"].(map[string]any)
	answer := q["type"].(string)

	st = dispatch(`{"type":"SUBMIT_ANSWER","payload":{"answer":"` + answer + `","elapsedMs":1200}}`)
	require.Equal(t, "reveal", st["gameStatus"])

	st = dispatch(`{"type":"NEXT_ROUND"}`)
	require.Equal(t, "gameover", st["gameStatus"])
}

func TestAPI_Leagues(t *testing.T) {
	f := makeAPI(t)

	w := f.do(t, http.MethodGet, "/v1/leagues", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Leagues []struct {
			ID string `json:"id"`
		} `json:"leagues"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Leagues, 4)
}

func TestAPI_Leaderboard(t *testing.T) {
	f := makeAPI(t)

	w := f.do(t, http.MethodGet, "/v1/leaderboard?league=pokeball", "")
	require.Equal(t, http.StatusNotFound, w.Code, "empty board reads as not found")

	w = f.do(t, http.MethodGet, "/v1/leaderboard?period=hourly", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAPI_SoundPreference(t *testing.T) {
	f := makeAPI(t)

	w := f.do(t, http.MethodPut, "/v1/prefs/sound", `{"muted":true}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = f.do(t, http.MethodGet, "/v1/prefs/sound", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"muted":true}`, w.Body.String())
}

func TestAPI_StreamPushesStateChanges(t *testing.T) {
	f := makeAPI(t)
	id := f.createSession(t)

	srv := httptest.NewServer(f.router)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/sessions/" + id + "/stream"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	readFrame := func() map[string]any {
		conn.SetReadDeadline(time.Now().Add(3 * time.Second))
		var frame struct {
			Event string `json:"event"`
			Data  struct {
				SessionID string         `json:"sessionId"`
				State     map[string]any `json:"state"`
			} `json:"data"`
		}
		require.NoError(t, conn.ReadJSON(&frame))
		require.Equal(t, "session.state_changed", frame.Event)
		require.Equal(t, id, frame.Data.SessionID)
		return frame.Data.State
	}

	st := readFrame()
	require.Equal(t, "idle", st["gameStatus"], "first frame is the current snapshot")

	w := f.do(t, http.MethodPost, "/v1/sessions/"+id+"/actions",
		`{"type":"SET_GAME_MODE","payload":{"mode":"single"}}`)
	require.Equal(t, http.StatusOK, w.Code)

	st = readFrame()
	require.Equal(t, "leagueSelect", st["gameStatus"])
}
