package store

import "github.com/praxos/chairside/pkg/types"

// TreatmentStore is the CRUD surface for the treatments collection.
type TreatmentStore struct {
	col collection[types.Treatment]
}

func newTreatmentStore(s *Store) *TreatmentStore {
	return &TreatmentStore{
		col: newCollection(s, types.KeyTreatments,
			func(t *types.Treatment) *string { return &t.ID }),
	}
}

// GetAll returns every treatment.
func (ts *TreatmentStore) GetAll() []types.Treatment {
	return ts.col.GetAll()
}

// GetByID returns the treatment with the given ID, or ErrNotFound.
func (ts *TreatmentStore) GetByID(id string) (types.Treatment, error) {
	return ts.col.GetByID(id)
}

// ByPatient returns the treatments recorded for one patient, in storage
// order. The reference is weak: a deleted patient's treatments still match.
func (ts *TreatmentStore) ByPatient(patientID string) []types.Treatment {
	return ts.col.Filter(func(t *types.Treatment) bool {
		return t.PatientID == patientID
	})
}

// Add validates the status, assigns a fresh ID, and persists. An empty
// status defaults to completed.
func (ts *TreatmentStore) Add(t types.Treatment) (types.Treatment, error) {
	if t.Status == "" {
		t.Status = types.TreatmentCompleted
	}
	if err := (&t).SetStatus(t.Status); err != nil {
		var zero types.Treatment
		return zero, err
	}
	return ts.col.Add(t)
}

// Update applies a typed mutation. Unknown IDs are a silent no-op.
func (ts *TreatmentStore) Update(id string, apply func(*types.Treatment)) error {
	return ts.col.Update(id, apply)
}

// Patch shallow-merges the given fields over the stored treatment.
func (ts *TreatmentStore) Patch(id string, fields map[string]any) error {
	return ts.col.Patch(id, fields)
}

// Delete removes the treatment. Idempotent.
func (ts *TreatmentStore) Delete(id string) error {
	return ts.col.Delete(id)
}

func (ts *TreatmentStore) replaceAll(items []types.Treatment) error {
	return ts.col.ReplaceAll(items)
}
