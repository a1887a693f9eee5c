package store

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxos/chairside/pkg/types"
)

// testConfig returns a store config rooted at dir with the default quota.
func testConfig(dir string) types.Config {
	return types.Config{DataDir: dir}
}

// newAttachedStore attaches a store to an isolated temp directory. Each test
// gets its own store instance for isolation.
func newAttachedStore(t *testing.T) *Store {
	t.Helper()
	st := New()
	require.NoError(t, st.Attach(testConfig(t.TempDir())))
	t.Cleanup(func() { st.Detach() })
	return st
}

func TestAttachTwiceFails(t *testing.T) {
	st := newAttachedStore(t)
	err := st.Attach(types.Config{DataDir: t.TempDir()})
	assert.ErrorIs(t, err, types.ErrAlreadyAttached)
}

func TestAttachRejectsInvalidConfig(t *testing.T) {
	st := New()
	err := st.Attach(types.Config{DataDir: t.TempDir(), QuotaBytes: -1})
	assert.ErrorIs(t, err, types.ErrQuotaInvalid)
}

func TestDetachIsIdempotent(t *testing.T) {
	st := New()
	require.NoError(t, st.Attach(types.Config{DataDir: t.TempDir()}))
	require.NoError(t, st.Detach())
	require.NoError(t, st.Detach())
}

func TestPatientAddPopulatesRecord(t *testing.T) {
	st := newAttachedStore(t)

	patient, err := st.Patients.Add(types.Patient{Name: "Ana Petrov", Phone: "555-0100"})
	require.NoError(t, err)
	assert.NotEmpty(t, patient.ID)
	assert.NotEmpty(t, patient.CreatedAt)

	parsed, err := uuid.Parse(patient.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())

	got, err := st.Patients.GetByID(patient.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Petrov", got.Name)
	assert.Equal(t, "555-0100", got.Phone)
	assert.Equal(t, patient.CreatedAt, got.CreatedAt)
}

func TestPatientGetByIDErrors(t *testing.T) {
	st := newAttachedStore(t)

	_, err := st.Patients.GetByID("")
	assert.ErrorIs(t, err, types.ErrInvalidID)

	_, err = st.Patients.GetByID("missing")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestPatientPatchUpdatesOnlyListedFields(t *testing.T) {
	st := newAttachedStore(t)

	patient, err := st.Patients.Add(types.Patient{
		Name:  "Ana Petrov",
		Phone: "555-0100",
		Email: "ana@example.com",
	})
	require.NoError(t, err)

	err = st.Patients.Patch(patient.ID, map[string]any{"phone": "555-0199"})
	require.NoError(t, err)

	got, err := st.Patients.GetByID(patient.ID)
	require.NoError(t, err)
	assert.Equal(t, "555-0199", got.Phone)
	assert.Equal(t, "Ana Petrov", got.Name)
	assert.Equal(t, "ana@example.com", got.Email)
}

func TestPatientPatchProtectsIDAndCreatedAt(t *testing.T) {
	st := newAttachedStore(t)

	patient, err := st.Patients.Add(types.Patient{Name: "Ana Petrov", Phone: "555-0100"})
	require.NoError(t, err)

	err = st.Patients.Patch(patient.ID, map[string]any{
		"id":        "forged",
		"createdAt": "1999-01-01T00:00:00Z",
		"name":      "Ana Kovac",
	})
	require.NoError(t, err)

	got, err := st.Patients.GetByID(patient.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Kovac", got.Name)
	assert.Equal(t, patient.ID, got.ID)
	assert.Equal(t, patient.CreatedAt, got.CreatedAt)
}

func TestPatientUpdateUnknownIDIsNoOp(t *testing.T) {
	st := newAttachedStore(t)

	_, err := st.Patients.Add(types.Patient{Name: "Ana Petrov", Phone: "555-0100"})
	require.NoError(t, err)

	called := false
	err = st.Patients.Update("missing", func(p *types.Patient) { called = true })
	require.NoError(t, err)
	assert.False(t, called)
	assert.Len(t, st.Patients.GetAll(), 1)
}

func TestPatientDeleteIsIdempotent(t *testing.T) {
	st := newAttachedStore(t)

	patient, err := st.Patients.Add(types.Patient{Name: "Ana Petrov", Phone: "555-0100"})
	require.NoError(t, err)

	require.NoError(t, st.Patients.Delete(patient.ID))
	require.NoError(t, st.Patients.Delete(patient.ID))
	assert.Empty(t, st.Patients.GetAll())
}

func TestPatientDeleteKeepsReferences(t *testing.T) {
	st := newAttachedStore(t)

	patient, err := st.Patients.Add(types.Patient{Name: "Ana Petrov", Phone: "555-0100"})
	require.NoError(t, err)
	treatment, err := st.Treatments.Add(types.Treatment{
		PatientID: patient.ID,
		Date:      "2026-03-01",
		Procedure: "Cleaning",
	})
	require.NoError(t, err)

	require.NoError(t, st.Patients.Delete(patient.ID))

	// The treatment survives with an orphaned PatientID.
	got, err := st.Treatments.GetByID(treatment.ID)
	require.NoError(t, err)
	assert.Equal(t, patient.ID, got.PatientID)
}

func TestMarkVisit(t *testing.T) {
	st := newAttachedStore(t)

	patient, err := st.Patients.Add(types.Patient{Name: "Ana Petrov", Phone: "555-0100"})
	require.NoError(t, err)

	require.NoError(t, st.Patients.MarkVisit(patient.ID, "2026-03-01"))

	got, err := st.Patients.GetByID(patient.ID)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01", got.LastVisit)
}

func TestQuotaExceededPreservesOldValue(t *testing.T) {
	st := New()
	require.NoError(t, st.Attach(types.Config{DataDir: t.TempDir(), QuotaBytes: 1024}))
	t.Cleanup(func() { st.Detach() })

	patient, err := st.Patients.Add(types.Patient{Name: "Ana Petrov", Phone: "555-0100"})
	require.NoError(t, err)

	_, err = st.Patients.Add(types.Patient{
		Name:  strings.Repeat("x", 2048),
		Phone: "555-0101",
	})
	assert.ErrorIs(t, err, types.ErrQuotaExceeded)

	// The rejected write did not touch the stored collection.
	patients := st.Patients.GetAll()
	require.Len(t, patients, 1)
	assert.Equal(t, patient.ID, patients[0].ID)
	assert.Equal(t, "Ana Petrov", patients[0].Name)
}

func TestDataPersistsAcrossReattach(t *testing.T) {
	dir := t.TempDir()

	st := New()
	require.NoError(t, st.Attach(testConfig(dir)))
	patient, err := st.Patients.Add(types.Patient{Name: "Ana Petrov", Phone: "555-0100"})
	require.NoError(t, err)
	require.NoError(t, st.Detach())

	st2 := New()
	require.NoError(t, st2.Attach(testConfig(dir)))
	t.Cleanup(func() { st2.Detach() })

	got, err := st2.Patients.GetByID(patient.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Petrov", got.Name)
}
