package store

import (
	"encoding/json"
	"fmt"

	"github.com/praxos/chairside/pkg/types"
)

// collection is the generic CRUD engine behind every typed store. It owns
// one collection key and knows how to reach a record's ID field. Insertion
// order is storage order: Add appends, Update rewrites in place.
type collection[T any] struct {
	store *Store
	key   string
	id    func(*T) *string

	// JSON field names that Patch never overwrites ("id" plus any
	// creation-time fields such as the patient's createdAt).
	protected []string
}

func newCollection[T any](s *Store, key string, id func(*T) *string, protected ...string) collection[T] {
	return collection[T]{
		store:     s,
		key:       key,
		id:        id,
		protected: append([]string{"id"}, protected...),
	}
}

// GetAll returns the full collection, empty if never written.
func (c *collection[T]) GetAll() []T {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()
	return loadRecords[T](c.store, c.key)
}

// GetByID returns the record with the given ID, or ErrNotFound.
func (c *collection[T]) GetByID(id string) (T, error) {
	var zero T
	if id == "" {
		return zero, types.ErrInvalidID
	}
	for _, item := range c.GetAll() {
		if *c.id(&item) == id {
			return item, nil
		}
	}
	return zero, types.ErrNotFound
}

// Filter returns the records matching pred, in storage order.
func (c *collection[T]) Filter(pred func(*T) bool) []T {
	items := c.GetAll()
	matched := make([]T, 0)
	for i := range items {
		if pred(&items[i]) {
			matched = append(matched, items[i])
		}
	}
	return matched
}

// Add assigns a fresh ID, appends the record, and persists. Returns the
// fully populated record.
func (c *collection[T]) Add(record T) (T, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	*c.id(&record) = newID()
	items := loadRecords[T](c.store, c.key)
	items = append(items, record)
	if err := saveRecords(c.store, c.key, items); err != nil {
		var zero T
		return zero, err
	}
	return record, nil
}

// Update applies a typed mutation to the record with the given ID and
// persists. An unknown ID is a silent no-op; the record's ID itself cannot
// be changed.
func (c *collection[T]) Update(id string, apply func(*T)) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	items := loadRecords[T](c.store, c.key)
	for i := range items {
		if *c.id(&items[i]) != id {
			continue
		}
		apply(&items[i])
		*c.id(&items[i]) = id
		return saveRecords(c.store, c.key, items)
	}
	return nil
}

// Patch shallow-merges the given JSON fields over the stored record and
// persists. Unlisted fields keep their prior value; protected fields are
// dropped from the patch. An unknown ID is a silent no-op.
func (c *collection[T]) Patch(id string, fields map[string]any) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	items := loadRecords[T](c.store, c.key)
	for i := range items {
		if *c.id(&items[i]) != id {
			continue
		}
		merged, err := mergeFields(&items[i], fields, c.protected)
		if err != nil {
			return fmt.Errorf("patching %s: %w", c.key, err)
		}
		items[i] = *merged
		*c.id(&items[i]) = id
		return saveRecords(c.store, c.key, items)
	}
	return nil
}

// Delete removes the record with the given ID and persists the filtered
// collection. Deleting an absent ID is a no-op (but still rewrites).
func (c *collection[T]) Delete(id string) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	items := loadRecords[T](c.store, c.key)
	kept := items[:0]
	for i := range items {
		if *c.id(&items[i]) != id {
			kept = append(kept, items[i])
		}
	}
	return saveRecords(c.store, c.key, kept)
}

// ReplaceAll swaps the whole collection for the given records. Used by the
// backup subsystem's import.
func (c *collection[T]) ReplaceAll(items []T) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	if items == nil {
		items = []T{}
	}
	return saveRecords(c.store, c.key, items)
}

// mergeFields round-trips the stored record through a JSON object, overlays
// the patch fields, and decodes back into the record type.
func mergeFields[T any](current *T, fields map[string]any, protected []string) (*T, error) {
	raw, err := json.Marshal(current)
	if err != nil {
		return nil, err
	}
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, err
	}

	skip := make(map[string]bool, len(protected))
	for _, k := range protected {
		skip[k] = true
	}
	for k, v := range fields {
		if skip[k] {
			continue
		}
		obj[k] = v
	}

	mergedRaw, err := json.Marshal(obj)
	if err != nil {
		return nil, err
	}
	var merged T
	if err := json.Unmarshal(mergedRaw, &merged); err != nil {
		return nil, err
	}
	return &merged, nil
}
