package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateDefaultPassword(t *testing.T) {
	st := newAttachedStore(t)

	assert.True(t, st.Gate.Verify(DefaultPassword))
	assert.False(t, st.Gate.Verify("wrong"))
	assert.False(t, st.Gate.Verify(""))
}

func TestGateChange(t *testing.T) {
	st := newAttachedStore(t)

	changed, err := st.Gate.Change(DefaultPassword, "s3cret")
	require.NoError(t, err)
	assert.True(t, changed)

	assert.True(t, st.Gate.Verify("s3cret"))
	assert.False(t, st.Gate.Verify(DefaultPassword))
}

func TestGateChangeRejectsWrongOldPassword(t *testing.T) {
	st := newAttachedStore(t)

	changed, err := st.Gate.Change("wrong", "s3cret")
	require.NoError(t, err)
	assert.False(t, changed)

	// The stored password is unchanged.
	assert.True(t, st.Gate.Verify(DefaultPassword))
	assert.False(t, st.Gate.Verify("s3cret"))
}

func TestGatePasswordPersistsAcrossReattach(t *testing.T) {
	dir := t.TempDir()

	st := New()
	require.NoError(t, st.Attach(testConfig(dir)))
	changed, err := st.Gate.Change(DefaultPassword, "s3cret")
	require.NoError(t, err)
	require.True(t, changed)
	require.NoError(t, st.Detach())

	// Reattaching must not re-seed the default over the changed password.
	st2 := New()
	require.NoError(t, st2.Attach(testConfig(dir)))
	t.Cleanup(func() { st2.Detach() })

	assert.True(t, st2.Gate.Verify("s3cret"))
	assert.False(t, st2.Gate.Verify(DefaultPassword))
}
