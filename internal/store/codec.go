package store

import (
	"encoding/json"
	"fmt"

	"github.com/praxos/chairside/pkg/types"
)

// Record codec: each collection is serialized as one JSON array blob under
// its key. The read path never fails the caller; the write path never
// swallows an error.

// loadRecords reads the collection stored under key. An absent key yields
// an empty collection. A blob that does not parse as []T is logged and
// treated as empty rather than surfaced.
func loadRecords[T any](s *Store, key string) []T {
	blob, ok, err := s.kvGet(key)
	if err != nil {
		s.logger.Warn("collection read failed, treating as empty",
			"key", key, "error", err)
		return []T{}
	}
	if !ok {
		return []T{}
	}

	var items []T
	if err := json.Unmarshal([]byte(blob), &items); err != nil {
		s.logger.Warn("collection blob unparseable, treating as empty",
			"key", key, "error", err)
		return []T{}
	}
	if items == nil {
		items = []T{}
	}
	return items
}

// saveRecords serializes the whole collection and replaces the blob under
// key. Blobs over the soft threshold log a warning but are still written;
// a write over the hard quota fails with ErrQuotaExceeded and leaves the
// previous blob in place.
func saveRecords[T any](s *Store, key string, items []T) error {
	blob, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}

	if int64(len(blob)) > types.SoftWarnBytes {
		s.logger.Warn("collection is getting large, consider archiving old records",
			"key", key, "bytes", len(blob))
	}

	return s.kvPut(key, string(blob))
}
