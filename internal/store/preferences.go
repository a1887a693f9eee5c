package store

import (
	"encoding/json"
	"fmt"

	"github.com/praxos/chairside/pkg/types"
)

// PreferencesStore holds the singleton settings record. Reads decode the
// stored blob over the defaults, so fields missing from an older blob keep
// their default value instead of going to zero.
type PreferencesStore struct {
	store *Store
}

func newPreferencesStore(s *Store) *PreferencesStore {
	return &PreferencesStore{store: s}
}

// Get returns the preferences merged over defaults. An absent or
// unparseable blob yields plain defaults.
func (ps *PreferencesStore) Get() types.UserPreferences {
	ps.store.mu.RLock()
	defer ps.store.mu.RUnlock()
	return ps.getLocked()
}

func (ps *PreferencesStore) getLocked() types.UserPreferences {
	prefs := types.DefaultPreferences()

	blob, ok, err := ps.store.kvGet(types.KeyPreferences)
	if err != nil {
		ps.store.logger.Warn("preferences read failed, using defaults", "error", err)
		return prefs
	}
	if !ok {
		return prefs
	}
	if err := json.Unmarshal([]byte(blob), &prefs); err != nil {
		ps.store.logger.Warn("preferences blob unparseable, using defaults", "error", err)
		return types.DefaultPreferences()
	}
	return prefs
}

// Set merges the given fields over the current preferences and persists the
// result. Unlisted fields keep their current value.
func (ps *PreferencesStore) Set(fields map[string]any) error {
	ps.store.mu.Lock()
	defer ps.store.mu.Unlock()

	current := ps.getLocked()
	merged, err := mergeFields(&current, fields, nil)
	if err != nil {
		return fmt.Errorf("merging preferences: %w", err)
	}

	blob, err := json.Marshal(merged)
	if err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}
	return ps.store.kvPut(types.KeyPreferences, string(blob))
}

// Put replaces the whole preferences record.
func (ps *PreferencesStore) Put(prefs types.UserPreferences) error {
	ps.store.mu.Lock()
	defer ps.store.mu.Unlock()

	blob, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}
	return ps.store.kvPut(types.KeyPreferences, string(blob))
}
