// Package store implements the local persistent data store for chairside:
// a SQLite-backed key/value space, the per-entity collection stores, the
// preferences singleton, the access gate, and the backup subsystem.
//
// The store is owned by a single process on a single device. Every write
// re-serializes and replaces one whole collection blob; there is no queuing
// and no cross-collection transaction.
package store

import (
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/praxos/chairside/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// Store owns the backing key/value space and hands out the per-entity
// stores. It is not attached until Attach is called with a Config.
type Store struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	quota    int64
	logger   *slog.Logger

	Patients     *PatientStore
	Treatments   *TreatmentStore
	Appointments *AppointmentStore
	Payments     *PaymentStore
	Procedures   *ProcedureStore
	Plans        *PlanStore
	Preferences  *PreferencesStore
	Gate         *Gate
	Backup       *Backup
}

// New creates an unattached Store. Call Attach with a Config to open the
// backing store.
func New() *Store {
	return &Store{logger: slog.Default()}
}

// Attach opens (or creates) the backing store under config.DataDir, seeds
// the access gate's default password if unset, and creates the entity
// stores. Returns ErrAlreadyAttached when called twice.
func (s *Store) Attach(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, "chairside.db"))
	if err != nil {
		return err
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return err
	}

	s.db = db
	s.config = config
	s.quota = config.EffectiveQuota()
	s.attached = true

	s.Patients = newPatientStore(s)
	s.Treatments = newTreatmentStore(s)
	s.Appointments = newAppointmentStore(s)
	s.Payments = newPaymentStore(s)
	s.Procedures = newProcedureStore(s)
	s.Plans = newPlanStore(s)
	s.Preferences = newPreferencesStore(s)
	s.Gate = newGate(s)
	s.Backup = newBackup(s)

	if err := s.Gate.initializeLocked(); err != nil {
		s.attached = false
		s.db = nil
		db.Close()
		return fmt.Errorf("seed access gate: %w", err)
	}

	return nil
}

// Detach closes the backing store. After Detach, write operations return
// ErrStoreDetached and reads return empty results. Detach is idempotent.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil // idempotent
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return err
		}
		s.db = nil
	}
	s.attached = false
	return nil
}

// newID generates a UUID v7 for record IDs, falling back to v4 if v7
// generation fails.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
