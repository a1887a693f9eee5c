package store

import "github.com/praxos/chairside/pkg/types"

// PlanStore is the CRUD surface for treatment plans. TotalCost is snapshot
// from the procedure lines on every save; a loaded plan's stored total is
// authoritative even if the underlying templates have drifted since.
type PlanStore struct {
	col collection[types.TreatmentPlan]
}

func newPlanStore(s *Store) *PlanStore {
	return &PlanStore{
		col: newCollection(s, types.KeyPlans,
			func(p *types.TreatmentPlan) *string { return &p.ID }),
	}
}

// GetAll returns every treatment plan.
func (ps *PlanStore) GetAll() []types.TreatmentPlan {
	return ps.col.GetAll()
}

// GetByID returns the plan with the given ID, or ErrNotFound.
func (ps *PlanStore) GetByID(id string) (types.TreatmentPlan, error) {
	return ps.col.GetByID(id)
}

// Add snapshots the total, assigns a fresh ID, and persists.
func (ps *PlanStore) Add(p types.TreatmentPlan) (types.TreatmentPlan, error) {
	p.SnapshotTotal()
	return ps.col.Add(p)
}

// Update applies a typed mutation, then re-snapshots the total before
// persisting. Unknown IDs are a silent no-op.
func (ps *PlanStore) Update(id string, apply func(*types.TreatmentPlan)) error {
	return ps.col.Update(id, func(p *types.TreatmentPlan) {
		apply(p)
		p.SnapshotTotal()
	})
}

// Delete removes the plan. Idempotent.
func (ps *PlanStore) Delete(id string) error {
	return ps.col.Delete(id)
}
