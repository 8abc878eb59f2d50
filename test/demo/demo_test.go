//go:build integration_test

package demo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

const addr = "localhost:8080"

// TestParty plays one full single-player game against a running server,
// watching the state stream over websocket while driving the game over
// REST.
func TestParty(t *testing.T) {
	client := &http.Client{Timeout: 10 * time.Second}

	var sessionID string
	{
		resp, err := client.Post(fmt.Sprintf("http://%s/v1/sessions", addr), "application/json", nil)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var body struct {
			SessionID string `json:"sessionId"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		sessionID = body.SessionID
	}

	// Watch the stream
	conn, _, err := websocket.DefaultDialer.Dial(
		fmt.Sprintf("ws://%s/v1/sessions/%s/stream", addr, sessionID), nil)
	require.NoError(t, err)
	defer conn.Close()

	frames := make(chan map[string]any, 16)
	go func() {
		defer close(frames)
		for {
			var frame struct {
				Data struct {
					State map[string]any `json:"state"`
				} `json:"data"`
			}
			if err := conn.ReadJSON(&frame); err != nil {
				return
			}
			frames <- frame.Data.State
		}
	}()

	dispatch := func(action string) map[string]any {
		resp, err := client.Post(
			fmt.Sprintf("http://%s/v1/sessions/%s/actions", addr, sessionID),
			"application/json",
			bytes.NewReader([]byte(action)))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			State map[string]any `json:"state"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		return body.State
	}

	dispatch(`{"type":"SET_GAME_MODE","payload":{"mode":"single"}}`)
	dispatch(`{"type":"SET_LEAGUE","payload":{"league":"pokeball"}}`)
	dispatch(`{"type":"SET_PLAYERS","payload":{"players":[{"name":"demo","icon":"🔴"}]}}`)
	dispatch(`{"type":"UPDATE_SETTINGS","payload":{"totalRounds":3,"bonusProbability":0}}`)

	st := dispatch(`{"type":"START_GAME"}`)
	require.Equal(t, "playing", st["gameStatus"])

	for round := 1; round <= 3; round++ {
		q := st["currentQuestion"].(map[string]any)
		answer := q["type"].(string)

		st = dispatch(fmt.Sprintf(
			`{"type":"SUBMIT_ANSWER","payload":{"answer":%q,"elapsedMs":1500}}`, answer))
		require.Equal(t, "reveal", st["gameStatus"])

		st = dispatch(`{"type":"NEXT_ROUND"}`)
	}

	require.Equal(t, "gameover", st["gameStatus"])

	// The stream should have seen the playing and gameover phases.
	seen := map[string]bool{}
	deadline := time.After(5 * time.Second)
	for !seen["playing"] || !seen["gameover"] {
		select {
		case st, ok := <-frames:
			require.True(t, ok, "stream closed early")
			seen[st["gameStatus"].(string)] = true
		case <-deadline:
			t.Fatalf("stream never delivered all phases, saw %v", seen)
		}
	}
}
