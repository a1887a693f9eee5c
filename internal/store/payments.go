package store

import "github.com/praxos/chairside/pkg/types"

// PaymentStore is the surface for the payments collection. Payments are
// recorded and deleted, never edited.
type PaymentStore struct {
	col collection[types.Payment]
}

func newPaymentStore(s *Store) *PaymentStore {
	return &PaymentStore{
		col: newCollection(s, types.KeyPayments,
			func(p *types.Payment) *string { return &p.ID }),
	}
}

// GetAll returns every payment.
func (ps *PaymentStore) GetAll() []types.Payment {
	return ps.col.GetAll()
}

// GetByID returns the payment with the given ID, or ErrNotFound.
func (ps *PaymentStore) GetByID(id string) (types.Payment, error) {
	return ps.col.GetByID(id)
}

// ByPatient returns the payments received from one patient.
func (ps *PaymentStore) ByPatient(patientID string) []types.Payment {
	return ps.col.Filter(func(p *types.Payment) bool {
		return p.PatientID == patientID
	})
}

// Add validates the method, assigns a fresh ID, and persists.
func (ps *PaymentStore) Add(p types.Payment) (types.Payment, error) {
	if !types.IsValidPaymentMethod(p.Method) {
		var zero types.Payment
		return zero, types.ErrInvalidStatus
	}
	return ps.col.Add(p)
}

// Delete removes the payment. Idempotent.
func (ps *PaymentStore) Delete(id string) error {
	return ps.col.Delete(id)
}

func (ps *PaymentStore) replaceAll(items []types.Payment) error {
	return ps.col.ReplaceAll(items)
}
