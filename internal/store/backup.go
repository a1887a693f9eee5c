package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/praxos/chairside/pkg/types"
)

// Backup serializes the practice data (patients, treatments, appointments,
// payments) to a single JSON document and restores it. Procedure templates,
// treatment plans, and preferences are configuration rather than practice
// data and stay out of the full export.
type Backup struct {
	store *Store
}

func newBackup(s *Store) *Backup {
	return &Backup{store: s}
}

// BackupDocument is the full backup wire format.
type BackupDocument struct {
	Patients     []types.Patient     `json:"patients"`
	Treatments   []types.Treatment   `json:"treatments"`
	Appointments []types.Appointment `json:"appointments"`
	Payments     []types.Payment     `json:"payments"`
	ExportDate   string              `json:"exportDate"`
}

// PatientsDocument is the patients-only backup wire format.
type PatientsDocument struct {
	Patients   []types.Patient `json:"patients"`
	ExportDate string          `json:"exportDate"`
}

// importDocument distinguishes absent collections (left untouched) from
// empty ones (cleared). Unknown top-level fields are ignored.
type importDocument struct {
	Patients     *[]types.Patient     `json:"patients"`
	Treatments   *[]types.Treatment   `json:"treatments"`
	Appointments *[]types.Appointment `json:"appointments"`
	Payments     *[]types.Payment     `json:"payments"`
}

// ExportAll returns the full backup document as indented JSON.
func (b *Backup) ExportAll() ([]byte, error) {
	doc := BackupDocument{
		Patients:     b.store.Patients.GetAll(),
		Treatments:   b.store.Treatments.GetAll(),
		Appointments: b.store.Appointments.GetAll(),
		Payments:     b.store.Payments.GetAll(),
		ExportDate:   time.Now().Format(time.RFC3339),
	}
	return json.MarshalIndent(doc, "", "  ")
}

// ImportAll parses a full backup document and replaces each collection it
// contains. Collections absent from the document are left untouched. The
// document is parsed completely before anything is written, so a format
// error never applies a partial import.
func (b *Backup) ImportAll(data []byte) error {
	var doc importDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", types.ErrInvalidBackupFormat, err)
	}

	if doc.Patients != nil {
		if err := b.store.Patients.replaceAll(*doc.Patients); err != nil {
			return err
		}
	}
	if doc.Treatments != nil {
		if err := b.store.Treatments.replaceAll(*doc.Treatments); err != nil {
			return err
		}
	}
	if doc.Appointments != nil {
		if err := b.store.Appointments.replaceAll(*doc.Appointments); err != nil {
			return err
		}
	}
	if doc.Payments != nil {
		if err := b.store.Payments.replaceAll(*doc.Payments); err != nil {
			return err
		}
	}
	return nil
}

// ExportPatients returns the patients-only document as indented JSON.
func (b *Backup) ExportPatients() ([]byte, error) {
	doc := PatientsDocument{
		Patients:   b.store.Patients.GetAll(),
		ExportDate: time.Now().Format(time.RFC3339),
	}
	return json.MarshalIndent(doc, "", "  ")
}

// ImportPatients parses a patients-only document and replaces the patients
// collection when present.
func (b *Backup) ImportPatients(data []byte) error {
	var doc importDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", types.ErrInvalidPatientsFormat, err)
	}
	if doc.Patients == nil {
		return nil
	}
	return b.store.Patients.replaceAll(*doc.Patients)
}

// ClearAll deletes every collection key. Irreversible. The password key
// survives so the gate still guards the empty store; gating this call is
// the caller's responsibility.
func (b *Backup) ClearAll() error {
	b.store.mu.Lock()
	defer b.store.mu.Unlock()

	for _, key := range types.CollectionKeys {
		if err := b.store.kvDelete(key); err != nil {
			return err
		}
	}
	return nil
}
