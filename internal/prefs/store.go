// Package prefs persists user overrides (seen resources, hidden courses
// and assignments, display flags, language) in a local SQLite database.
// It is the terminal stand-in for the browser's per-origin local storage:
// every mutation is written through immediately, nothing expires.
package prefs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/omripeer/studydeck/internal/db"
	"github.com/omripeer/studydeck/internal/domain"
)

// Collection names for the marked-ids table.
const (
	collCompletedResources = "completedResources"
	collHiddenCourses      = "hiddenCourses"
	collHiddenAssignments  = "hiddenAssignments"
)

// Settings keys.
const (
	keyLanguage   = "language"
	keyShowGrades = "showGrades"
	keyLastSync   = "lastSync"
)

// Store holds the in-memory preference snapshot and writes every change
// through to SQLite. All methods are safe for use from multiple
// goroutines; each mutation is read-modify-persist under one lock so
// rapid toggles never lose updates.
type Store struct {
	mu   sync.Mutex
	conn db.DBTX

	completed         *IDSet
	hiddenCourses     *IDSet
	hiddenAssignments *IDSet
	settings          map[string]string
}

// NewStore loads the persisted snapshot into memory. Missing rows and
// unreadable values degrade to empty defaults rather than failing.
func NewStore(ctx context.Context, conn db.DBTX) (*Store, error) {
	s := &Store{
		conn:     conn,
		settings: make(map[string]string),
	}

	sets := make(map[string]map[int64]bool)
	for _, coll := range []string{collCompletedResources, collHiddenCourses, collHiddenAssignments} {
		sets[coll] = make(map[int64]bool)
	}

	rows, err := conn.QueryContext(ctx, `SELECT collection, id FROM marked_ids`)
	if err != nil {
		return nil, fmt.Errorf("loading marked ids: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var coll string
		var id int64
		if err := rows.Scan(&coll, &id); err != nil {
			continue // skip unreadable rows, keep the rest
		}
		if set, ok := sets[coll]; ok {
			set[id] = true
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("loading marked ids: %w", err)
	}

	srows, err := conn.QueryContext(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	defer srows.Close()
	for srows.Next() {
		var key, value string
		if err := srows.Scan(&key, &value); err != nil {
			continue
		}
		s.settings[key] = value
	}
	if err := srows.Err(); err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	s.completed = &IDSet{store: s, collection: collCompletedResources, ids: sets[collCompletedResources]}
	s.hiddenCourses = &IDSet{store: s, collection: collHiddenCourses, ids: sets[collHiddenCourses]}
	s.hiddenAssignments = &IDSet{store: s, collection: collHiddenAssignments, ids: sets[collHiddenAssignments]}

	return s, nil
}

// Completed is the set of resource ids the user marked as seen.
func (s *Store) Completed() *IDSet { return s.completed }

// HiddenCourses is the set of course ids hidden from the dashboard.
func (s *Store) HiddenCourses() *IDSet { return s.hiddenCourses }

// HiddenAssignments is the set of assignment ids hidden from pending views.
func (s *Store) HiddenAssignments() *IDSet { return s.hiddenAssignments }

// ── settings ─────────────────────────────────────────────────────────────────

func (s *Store) setSetting(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings[key] = value
	_, err := s.conn.ExecContext(context.Background(),
		`INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)`, key, value)
	if err != nil {
		return fmt.Errorf("persisting setting %s: %w", key, err)
	}
	return nil
}

func (s *Store) setting(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings[key]
}

// Language returns the persisted language preference, Hebrew by default.
func (s *Store) Language() domain.Language {
	return domain.ParseLanguage(s.setting(keyLanguage))
}

// SetLanguage persists the language preference.
func (s *Store) SetLanguage(lang domain.Language) error {
	return s.setSetting(keyLanguage, string(lang))
}

// ShowGrades returns the grades panel visibility flag, false by default.
func (s *Store) ShowGrades() bool {
	return s.setting(keyShowGrades) == "true"
}

// SetShowGrades persists the grades panel visibility flag.
func (s *Store) SetShowGrades(show bool) error {
	v := "false"
	if show {
		v = "true"
	}
	return s.setSetting(keyShowGrades, v)
}

// LastSync returns the timestamp of the last successful sync, if any.
// A malformed stored value reads as absent.
func (s *Store) LastSync() (time.Time, bool) {
	raw := s.setting(keyLastSync)
	if raw == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// SetLastSync persists the last successful sync timestamp.
func (s *Store) SetLastSync(t time.Time) error {
	return s.setSetting(keyLastSync, t.Format(time.RFC3339))
}
