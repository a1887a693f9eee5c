package types

import "errors"

// Store operation errors.
var (
	ErrNotFound      = errors.New("record not found")
	ErrInvalidID     = errors.New("invalid record ID")
	ErrInvalidStatus = errors.New("invalid status value")
	ErrQuotaExceeded = errors.New("storage quota exceeded: export and clear old data")
)

// Import errors. Import parses the whole document before touching any
// collection, so a format error never leaves a partial import behind.
var (
	ErrInvalidBackupFormat   = errors.New("invalid backup file format")
	ErrInvalidPatientsFormat = errors.New("invalid patients file format")
)

// ErrAccessDenied reports a failed password verification. The gate itself
// returns plain booleans; callers use this to surface the failure inline.
var ErrAccessDenied = errors.New("access denied")

// Backend lifecycle errors.
var (
	ErrAlreadyAttached = errors.New("store already attached")
	ErrStoreDetached   = errors.New("store not attached")
)
