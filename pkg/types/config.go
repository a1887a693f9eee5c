package types

import "errors"

// DefaultQuotaBytes is the hard capacity applied when Config.QuotaBytes is
// zero. It matches the localStorage-class budget the data set is expected
// to fit in on a single device.
const DefaultQuotaBytes = 8 << 20

// SoftWarnBytes is the per-collection blob size above which a save logs a
// non-fatal warning. Writes above it still succeed; only the hard quota
// blocks them.
const SoftWarnBytes = 4 << 20

// Config holds backing-store parameters for Store.Attach.
type Config struct {
	DataDir    string `json:"data_dir" yaml:"data_dir"`
	QuotaBytes int64  `json:"quota_bytes" yaml:"quota_bytes"`
}

// Config validation errors.
var (
	ErrQuotaInvalid = errors.New("quota must not be negative")
)

// Validate checks that the Config is well-formed. A zero QuotaBytes is
// valid and means DefaultQuotaBytes.
func (c Config) Validate() error {
	if c.QuotaBytes < 0 {
		return ErrQuotaInvalid
	}
	return nil
}

// EffectiveQuota returns the hard capacity in bytes after applying the
// default.
func (c Config) EffectiveQuota() int64 {
	if c.QuotaBytes == 0 {
		return DefaultQuotaBytes
	}
	return c.QuotaBytes
}
