// Package highscore is the local persistence port: best scores, medals
// and the mute preference, stored as JSON files. It is the best-effort
// analog of the browser build's localStorage; corruption or I/O failure
// degrades to empty state, never to a crash.
package highscore

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/victornm/pord/internal/domain"
)

const maxEntries = 10

const (
	scoresFile = "highscores.json"
	medalsFile = "medals.json"
	prefsFile  = "prefs.json"
)

// Store persists high scores and medals under one directory.
type Store struct {
	mu  sync.Mutex
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// HighScores returns the retained entries, best first.
func (s *Store) HighScores() []domain.HighScore {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.HighScore
	s.load(scoresFile, &out)
	return out
}

// Save records a score, keeping at most one entry per player (keyed by
// lowercased name, best score wins) and at most 10 entries overall.
// It reports whether the stored list changed.
func (s *Store) Save(hs domain.HighScore) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var scores []domain.HighScore
	s.load(scoresFile, &scores)

	key := strings.ToLower(hs.Name)
	replaced := false
	for i, existing := range scores {
		if strings.ToLower(existing.Name) != key {
			continue
		}
		if hs.Score <= existing.Score {
			return false
		}
		scores[i] = hs
		replaced = true
		break
	}
	if !replaced {
		scores = append(scores, hs)
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	if len(scores) > maxEntries {
		scores = scores[:maxEntries]
	}

	s.save(scoresFile, scores)
	return true
}

// Clear drops every stored high score.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(filepath.Join(s.dir, scoresFile)); err != nil && !os.IsNotExist(err) {
		slog.Warn("highscore: clear failed", "error", err)
	}
}

// Medals returns every persisted award.
func (s *Store) Medals() []domain.Medal {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Medal
	s.load(medalsFile, &out)
	return out
}

// Award persists a medal unless the same (type, league, period, date)
// combination was already awarded. It reports whether the medal is new.
func (s *Store) Award(m domain.Medal) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var medals []domain.Medal
	s.load(medalsFile, &medals)

	for _, existing := range medals {
		if existing.Key() == m.Key() {
			return false
		}
	}

	medals = append(medals, m)
	s.save(medalsFile, medals)
	return true
}

type prefs struct {
	Muted bool `json:"muted"`
}

// Muted returns the persisted sound preference.
func (s *Store) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var p prefs
	s.load(prefsFile, &p)
	return p.Muted
}

// SetMuted persists the sound preference.
func (s *Store) SetMuted(muted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.save(prefsFile, prefs{Muted: muted})
}

// load fills v from the named file. Missing or corrupted files are
// treated as empty state.
func (s *Store) load(name string, v any) {
	b, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("highscore: read failed", "file", name, "error", err)
		}
		return
	}

	if err := json.Unmarshal(b, v); err != nil {
		slog.Warn("highscore: corrupted file treated as empty", "file", name, "error", err)
	}
}

func (s *Store) save(name string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		slog.Warn("highscore: marshal failed", "file", name, "error", err)
		return
	}

	if err := os.WriteFile(filepath.Join(s.dir, name), b, 0o644); err != nil {
		slog.Warn("highscore: write failed", "file", name, "error", err)
	}
}
