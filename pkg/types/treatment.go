package types

// Treatment states.
const (
	TreatmentCompleted = "completed"
	TreatmentPlanned   = "planned"
	TreatmentOngoing   = "ongoing"
)

// validTreatmentStatuses is the set of recognized treatment status values.
var validTreatmentStatuses = map[string]bool{
	TreatmentCompleted: true,
	TreatmentPlanned:   true,
	TreatmentOngoing:   true,
}

// Treatment is a procedure performed or planned for a patient. PatientID is
// a weak reference: it is not validated against the patients collection and
// survives the referenced patient's deletion. Cost and Paid are tracked on
// the treatment itself, separately from the payments collection.
type Treatment struct {
	ID        string  `json:"id"`
	PatientID string  `json:"patientId"`
	Date      string  `json:"date"`
	Procedure string  `json:"procedure"`
	Tooth     string  `json:"tooth,omitempty"`
	Notes     string  `json:"notes"`
	Cost      float64 `json:"cost"`
	Paid      float64 `json:"paid"`
	Status    string  `json:"status"`
}

// SetStatus sets the treatment status. Returns ErrInvalidStatus if the
// value is not recognized.
func (t *Treatment) SetStatus(status string) error {
	if !validTreatmentStatuses[status] {
		return ErrInvalidStatus
	}
	t.Status = status
	return nil
}

// Outstanding returns the unpaid remainder of this treatment's cost.
func (t *Treatment) Outstanding() float64 {
	return t.Cost - t.Paid
}
