package store

import (
	"database/sql"
	"fmt"

	"github.com/praxos/chairside/pkg/types"
)

// Key/value access. The callers hold s.mu; these helpers only talk to the
// database.

// kvGet returns the raw blob for key, with ok=false when the key has never
// been written.
func (s *Store) kvGet(key string) (string, bool, error) {
	if !s.attached {
		return "", false, types.ErrStoreDetached
	}
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading %s: %w", key, err)
	}
	return value, true, nil
}

// kvPut replaces the blob for key. The projected total store size is
// checked against the hard quota before the row is touched, so a rejected
// write leaves the previous value intact. Returns ErrQuotaExceeded when the
// write would push the store over capacity.
func (s *Store) kvPut(key, value string) error {
	if !s.attached {
		return types.ErrStoreDetached
	}

	total, err := s.kvTotalSize()
	if err != nil {
		return err
	}
	var oldLen int64
	if old, ok, err := s.kvGet(key); err != nil {
		return err
	} else if ok {
		oldLen = int64(len(old) + len(key))
	}
	projected := total - oldLen + int64(len(value)+len(key))
	if projected > s.quota {
		return types.ErrQuotaExceeded
	}

	_, err = s.db.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

// kvDelete removes the blob for key. Deleting an absent key is a no-op.
func (s *Store) kvDelete(key string) error {
	if !s.attached {
		return types.ErrStoreDetached
	}
	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	return nil
}

// kvTotalSize returns the byte size of everything persisted, keys included.
func (s *Store) kvTotalSize() (int64, error) {
	if !s.attached {
		return 0, types.ErrStoreDetached
	}
	var total int64
	err := s.db.QueryRow(
		"SELECT COALESCE(SUM(LENGTH(key) + LENGTH(value)), 0) FROM kv").Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sizing store: %w", err)
	}
	return total, nil
}
