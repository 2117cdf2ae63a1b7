package prefs

import (
	"context"
	"fmt"
	"sort"
)

// IDSet is one persisted set of opaque ids with toggle semantics.
// Membership is the only operation the ids support; no ordering is
// implied. Mutations write through to the database under the owning
// store's lock.
type IDSet struct {
	store      *Store
	collection string
	ids        map[int64]bool
}

// Contains reports membership.
func (s *IDSet) Contains(id int64) bool {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	return s.ids[id]
}

// Add inserts id into the set. Adding an existing member is a no-op.
func (s *IDSet) Add(id int64) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	return s.addLocked(id)
}

// Remove deletes id from the set. Removing a non-member is a no-op.
func (s *IDSet) Remove(id int64) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	return s.removeLocked(id)
}

// Toggle flips membership of id and returns the new membership state.
func (s *IDSet) Toggle(id int64) (bool, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if s.ids[id] {
		return false, s.removeLocked(id)
	}
	return true, s.addLocked(id)
}

// Len returns the number of members.
func (s *IDSet) Len() int {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	return len(s.ids)
}

// IDs returns the members in ascending order, for stable display.
func (s *IDSet) IDs() []int64 {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	out := make([]int64, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Snapshot returns a copy of the membership map for use by pure
// derivation functions that must not hold the store lock.
func (s *IDSet) Snapshot() map[int64]bool {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	out := make(map[int64]bool, len(s.ids))
	for id := range s.ids {
		out[id] = true
	}
	return out
}

func (s *IDSet) addLocked(id int64) error {
	if s.ids[id] {
		return nil
	}
	s.ids[id] = true
	_, err := s.store.conn.ExecContext(context.Background(),
		`INSERT OR IGNORE INTO marked_ids (collection, id) VALUES (?, ?)`, s.collection, id)
	if err != nil {
		return fmt.Errorf("persisting %s add: %w", s.collection, err)
	}
	return nil
}

func (s *IDSet) removeLocked(id int64) error {
	if !s.ids[id] {
		return nil
	}
	delete(s.ids, id)
	_, err := s.store.conn.ExecContext(context.Background(),
		`DELETE FROM marked_ids WHERE collection = ? AND id = ?`, s.collection, id)
	if err != nil {
		return fmt.Errorf("persisting %s remove: %w", s.collection, err)
	}
	return nil
}
