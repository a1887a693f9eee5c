package store

import (
	"encoding/base64"

	"github.com/praxos/chairside/pkg/types"
)

// DefaultPassword is the access gate's password before anyone changes it.
const DefaultPassword = "admin123"

// Gate is the single-password access gate in front of sensitive views and
// destructive actions. The stored value is base64-obfuscated, not hashed:
// this is a soft deterrent against casual snooping on a shared chair-side
// machine and provides no confidentiality.
type Gate struct {
	store *Store
}

func newGate(s *Store) *Gate {
	return &Gate{store: s}
}

// initializeLocked seeds the default password on first run. Called from
// Attach with the store lock held.
func (g *Gate) initializeLocked() error {
	_, ok, err := g.store.kvGet(types.KeyPassword)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	return g.store.kvPut(types.KeyPassword, obfuscate(DefaultPassword))
}

// Verify reports whether candidate matches the stored password. Read
// failures degrade to false.
func (g *Gate) Verify(candidate string) bool {
	g.store.mu.RLock()
	defer g.store.mu.RUnlock()

	stored, ok, err := g.store.kvGet(types.KeyPassword)
	if err != nil || !ok {
		return false
	}
	return stored == obfuscate(candidate)
}

// Change replaces the password if old verifies. Returns false with no
// change applied when old does not verify; the error reports a storage
// failure while writing the new value.
func (g *Gate) Change(old, newPassword string) (bool, error) {
	if !g.Verify(old) {
		return false, nil
	}

	g.store.mu.Lock()
	defer g.store.mu.Unlock()

	if err := g.store.kvPut(types.KeyPassword, obfuscate(newPassword)); err != nil {
		return false, err
	}
	return true, nil
}

// obfuscate is the reversible encoding of the stored password.
func obfuscate(password string) string {
	return base64.StdEncoding.EncodeToString([]byte(password))
}
