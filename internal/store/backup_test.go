package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxos/chairside/pkg/types"
)

// seedPractice fills a store with one record per practice collection and
// returns the created patient.
func seedPractice(t *testing.T, st *Store) types.Patient {
	t.Helper()

	patient, err := st.Patients.Add(types.Patient{Name: "Ana Petrov", Phone: "555-0100"})
	require.NoError(t, err)
	_, err = st.Treatments.Add(types.Treatment{PatientID: patient.ID, Date: "2026-03-01", Procedure: "Cleaning", Cost: 80})
	require.NoError(t, err)
	_, err = st.Appointments.Add(types.Appointment{PatientID: patient.ID, Date: "2026-03-10", Time: "14:30"})
	require.NoError(t, err)
	_, err = st.Payments.Add(types.Payment{PatientID: patient.ID, Date: "2026-03-01", Amount: 80, Method: types.PayCash})
	require.NoError(t, err)
	return patient
}

func TestBackupRoundTrip(t *testing.T) {
	st := newAttachedStore(t)
	seedPractice(t, st)

	data, err := st.Backup.ExportAll()
	require.NoError(t, err)

	var doc BackupDocument
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.NotEmpty(t, doc.ExportDate)

	require.NoError(t, st.Backup.ClearAll())
	require.Empty(t, st.Patients.GetAll())

	require.NoError(t, st.Backup.ImportAll(data))

	assert.Equal(t, doc.Patients, st.Patients.GetAll())
	assert.Equal(t, doc.Treatments, st.Treatments.GetAll())
	assert.Equal(t, doc.Appointments, st.Appointments.GetAll())
	assert.Equal(t, doc.Payments, st.Payments.GetAll())
}

func TestImportLeavesAbsentCollectionsUntouched(t *testing.T) {
	st := newAttachedStore(t)
	seedPractice(t, st)

	doc := `{"patients": []}`
	require.NoError(t, st.Backup.ImportAll([]byte(doc)))

	// Patients were present (and empty) in the document, so they are
	// replaced; the other collections were absent and survive.
	assert.Empty(t, st.Patients.GetAll())
	assert.Len(t, st.Treatments.GetAll(), 1)
	assert.Len(t, st.Appointments.GetAll(), 1)
	assert.Len(t, st.Payments.GetAll(), 1)
}

func TestImportInvalidFormatChangesNothing(t *testing.T) {
	st := newAttachedStore(t)
	seedPractice(t, st)

	err := st.Backup.ImportAll([]byte(`{"patients": "not-an-array"`))
	assert.ErrorIs(t, err, types.ErrInvalidBackupFormat)
	assert.Len(t, st.Patients.GetAll(), 1)
	assert.Len(t, st.Treatments.GetAll(), 1)
}

func TestExportAllExcludesConfiguration(t *testing.T) {
	st := newAttachedStore(t)
	seedPractice(t, st)
	_, err := st.Procedures.Add(types.ProcedureTemplate{Name: "Cleaning", Category: "preventive"})
	require.NoError(t, err)

	data, err := st.Backup.ExportAll()
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.NotContains(t, raw, "procedures")
	assert.NotContains(t, raw, "treatmentPlans")
	assert.NotContains(t, raw, "preferences")
}

func TestPatientsOnlyRoundTrip(t *testing.T) {
	st := newAttachedStore(t)
	patient := seedPractice(t, st)

	data, err := st.Backup.ExportPatients()
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "patients")
	assert.NotContains(t, raw, "treatments")

	require.NoError(t, st.Patients.Delete(patient.ID))
	require.NoError(t, st.Backup.ImportPatients(data))

	got, err := st.Patients.GetByID(patient.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Petrov", got.Name)

	// Patients-only import never touches the other collections.
	assert.Len(t, st.Treatments.GetAll(), 1)
}

func TestImportPatientsInvalidFormat(t *testing.T) {
	st := newAttachedStore(t)

	err := st.Backup.ImportPatients([]byte(`[]`))
	assert.ErrorIs(t, err, types.ErrInvalidPatientsFormat)
}

func TestClearAllKeepsPassword(t *testing.T) {
	st := newAttachedStore(t)
	seedPractice(t, st)

	changed, err := st.Gate.Change(DefaultPassword, "s3cret")
	require.NoError(t, err)
	require.True(t, changed)

	require.NoError(t, st.Backup.ClearAll())

	assert.Empty(t, st.Patients.GetAll())
	assert.Empty(t, st.Treatments.GetAll())
	assert.Empty(t, st.Appointments.GetAll())
	assert.Empty(t, st.Payments.GetAll())
	assert.Empty(t, st.Procedures.GetAll())
	assert.Empty(t, st.Plans.GetAll())
	assert.True(t, st.Gate.Verify("s3cret"))
}
