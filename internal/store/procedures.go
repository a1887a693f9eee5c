package store

import "github.com/praxos/chairside/pkg/types"

// ProcedureStore is the CRUD surface for procedure templates.
type ProcedureStore struct {
	col collection[types.ProcedureTemplate]
}

func newProcedureStore(s *Store) *ProcedureStore {
	return &ProcedureStore{
		col: newCollection(s, types.KeyProcedures,
			func(p *types.ProcedureTemplate) *string { return &p.ID }),
	}
}

// GetAll returns every procedure template.
func (ps *ProcedureStore) GetAll() []types.ProcedureTemplate {
	return ps.col.GetAll()
}

// GetByID returns the template with the given ID, or ErrNotFound.
func (ps *ProcedureStore) GetByID(id string) (types.ProcedureTemplate, error) {
	return ps.col.GetByID(id)
}

// Add assigns a fresh ID and persists.
func (ps *ProcedureStore) Add(p types.ProcedureTemplate) (types.ProcedureTemplate, error) {
	return ps.col.Add(p)
}

// Update applies a typed mutation. Unknown IDs are a silent no-op.
func (ps *ProcedureStore) Update(id string, apply func(*types.ProcedureTemplate)) error {
	return ps.col.Update(id, apply)
}

// Patch shallow-merges the given fields over the stored template.
func (ps *ProcedureStore) Patch(id string, fields map[string]any) error {
	return ps.col.Patch(id, fields)
}

// Delete removes the template. Plans that snapshotted it keep their copied
// name and cost.
func (ps *ProcedureStore) Delete(id string) error {
	return ps.col.Delete(id)
}
