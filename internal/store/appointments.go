package store

import "github.com/praxos/chairside/pkg/types"

// AppointmentStore is the CRUD surface for the appointments collection.
type AppointmentStore struct {
	store *Store
	col   collection[types.Appointment]
}

func newAppointmentStore(s *Store) *AppointmentStore {
	return &AppointmentStore{
		store: s,
		col: newCollection(s, types.KeyAppointments,
			func(a *types.Appointment) *string { return &a.ID }),
	}
}

// GetAll returns every appointment.
func (as *AppointmentStore) GetAll() []types.Appointment {
	return as.col.GetAll()
}

// GetByID returns the appointment with the given ID, or ErrNotFound.
func (as *AppointmentStore) GetByID(id string) (types.Appointment, error) {
	return as.col.GetByID(id)
}

// ByDate returns the appointments on one calendar day ("2006-01-02").
func (as *AppointmentStore) ByDate(date string) []types.Appointment {
	return as.col.Filter(func(a *types.Appointment) bool {
		return a.Date == date
	})
}

// ByPatient returns the appointments booked for one patient.
func (as *AppointmentStore) ByPatient(patientID string) []types.Appointment {
	return as.col.Filter(func(a *types.Appointment) bool {
		return a.PatientID == patientID
	})
}

// Add validates the status, snapshots the patient name when the caller left
// it empty, assigns a fresh ID, and persists. An empty status defaults to
// scheduled. The name snapshot is taken once here and never refreshed if the
// patient is later renamed.
func (as *AppointmentStore) Add(a types.Appointment) (types.Appointment, error) {
	if a.Status == "" {
		a.Status = types.AppointmentScheduled
	}
	if err := (&a).SetStatus(a.Status); err != nil {
		var zero types.Appointment
		return zero, err
	}
	if a.PatientName == "" && a.PatientID != "" {
		if p, err := as.store.Patients.GetByID(a.PatientID); err == nil {
			a.PatientName = p.Name
		}
	}
	return as.col.Add(a)
}

// Update applies a typed mutation. Unknown IDs are a silent no-op.
func (as *AppointmentStore) Update(id string, apply func(*types.Appointment)) error {
	return as.col.Update(id, apply)
}

// Patch shallow-merges the given fields over the stored appointment.
func (as *AppointmentStore) Patch(id string, fields map[string]any) error {
	return as.col.Patch(id, fields)
}

// Delete removes the appointment. Idempotent.
func (as *AppointmentStore) Delete(id string) error {
	return as.col.Delete(id)
}

func (as *AppointmentStore) replaceAll(items []types.Appointment) error {
	return as.col.ReplaceAll(items)
}
