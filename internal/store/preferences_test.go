package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxos/chairside/pkg/types"
)

func TestPreferencesDefaultsWhenUnset(t *testing.T) {
	st := newAttachedStore(t)

	prefs := st.Preferences.Get()
	assert.Equal(t, types.DefaultPreferences(), prefs)
}

func TestPreferencesSetMergesOverDefaults(t *testing.T) {
	st := newAttachedStore(t)

	require.NoError(t, st.Preferences.Set(map[string]any{
		"taxRate":    10.0,
		"clinicName": "Smile Dental",
	}))

	prefs := st.Preferences.Get()
	assert.Equal(t, 10.0, prefs.TaxRate)
	assert.Equal(t, "Smile Dental", prefs.ClinicName)
	// Unlisted fields keep their defaults.
	assert.Equal(t, "200 98% 39%", prefs.PrimaryColor)
	assert.True(t, prefs.ShowRevenue)
}

func TestPreferencesSetKeepsEarlierChanges(t *testing.T) {
	st := newAttachedStore(t)

	require.NoError(t, st.Preferences.Set(map[string]any{"taxRate": 10.0}))
	require.NoError(t, st.Preferences.Set(map[string]any{"showRevenue": false}))

	prefs := st.Preferences.Get()
	assert.Equal(t, 10.0, prefs.TaxRate)
	assert.False(t, prefs.ShowRevenue)
}

func TestPreferencesPersistAcrossReattach(t *testing.T) {
	dir := t.TempDir()

	st := New()
	require.NoError(t, st.Attach(testConfig(dir)))
	require.NoError(t, st.Preferences.Set(map[string]any{"clinicName": "Smile Dental"}))
	require.NoError(t, st.Detach())

	st2 := New()
	require.NoError(t, st2.Attach(testConfig(dir)))
	t.Cleanup(func() { st2.Detach() })

	assert.Equal(t, "Smile Dental", st2.Preferences.Get().ClinicName)
}

func TestPreferencesPut(t *testing.T) {
	st := newAttachedStore(t)

	want := types.UserPreferences{
		PrimaryColor: "10 80% 50%",
		ShowRevenue:  false,
		TaxRate:      21,
		ClinicName:   "Smile Dental",
	}
	require.NoError(t, st.Preferences.Put(want))
	assert.Equal(t, want, st.Preferences.Get())
}
