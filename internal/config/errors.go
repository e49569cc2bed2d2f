package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid API client settings
	// (for example, missing base URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidBackupConfigs indicates invalid backup settings (unknown
	// policy names, non-positive download limit, bad iterations directory).
	ErrInvalidBackupConfigs = errors.New("invalid backup configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a negative backup interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrMissingBackupPath is returned by [ClientConfig.ValidateBackup] when
	// no output directory was given.
	ErrMissingBackupPath = errors.New("backup path is required")
)
