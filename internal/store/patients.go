package store

import (
	"time"

	"github.com/praxos/chairside/pkg/types"
)

// PatientStore is the CRUD surface for the patients collection.
type PatientStore struct {
	col collection[types.Patient]
}

func newPatientStore(s *Store) *PatientStore {
	return &PatientStore{
		col: newCollection(s, types.KeyPatients,
			func(p *types.Patient) *string { return &p.ID },
			"createdAt"),
	}
}

// GetAll returns every patient, empty if none have been added.
func (ps *PatientStore) GetAll() []types.Patient {
	return ps.col.GetAll()
}

// GetByID returns the patient with the given ID, or ErrNotFound.
func (ps *PatientStore) GetByID(id string) (types.Patient, error) {
	return ps.col.GetByID(id)
}

// Add assigns a fresh ID and an immutable createdAt timestamp, appends the
// patient, and persists. Returns the fully populated record.
func (ps *PatientStore) Add(p types.Patient) (types.Patient, error) {
	p.CreatedAt = time.Now().Format(time.RFC3339)
	return ps.col.Add(p)
}

// Update applies a typed mutation to the stored patient. CreatedAt is
// restored afterwards so it stays immutable. Unknown IDs are a silent no-op.
func (ps *PatientStore) Update(id string, apply func(*types.Patient)) error {
	return ps.col.Update(id, func(p *types.Patient) {
		createdAt := p.CreatedAt
		apply(p)
		p.CreatedAt = createdAt
	})
}

// Patch shallow-merges the given fields over the stored patient. The id and
// createdAt fields are never patched.
func (ps *PatientStore) Patch(id string, fields map[string]any) error {
	return ps.col.Patch(id, fields)
}

// Delete removes the patient. Treatments, appointments, and payments that
// reference it are left in place; their PatientID becomes an orphaned weak
// reference.
func (ps *PatientStore) Delete(id string) error {
	return ps.col.Delete(id)
}

// MarkVisit records date as the patient's most recent visit.
func (ps *PatientStore) MarkVisit(id, date string) error {
	return ps.Update(id, func(p *types.Patient) {
		p.LastVisit = date
	})
}

// replaceAll is the backup subsystem's bulk import hook.
func (ps *PatientStore) replaceAll(items []types.Patient) error {
	return ps.col.ReplaceAll(items)
}
