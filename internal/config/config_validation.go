// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks the merged [StructuredConfig]. Policy names are checked
// when the client view is built.
func (cfg *StructuredConfig) validate() error {
	if cfg.Backup.MaxDownloads < 0 {
		return fmt.Errorf("%w: max downloads must not be negative", ErrInvalidBackupConfigs)
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	u, err := url.Parse(cfg.Adapter.BaseURL)
	if cfg.Adapter.BaseURL == "" || err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base url %q", ErrInvalidAdapterConfigs, cfg.Adapter.BaseURL)
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	if cfg.Backup.MaxDownloads <= 0 {
		return fmt.Errorf("%w: max downloads must be positive", ErrInvalidBackupConfigs)
	}
	dir := cfg.Backup.IterationsDir
	if dir == "" || dir == "." || dir == ".." || strings.ContainsAny(dir, `/\`) {
		return fmt.Errorf("%w: iterations dir %q", ErrInvalidBackupConfigs, dir)
	}

	if cfg.Workers.BackupInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// ValidateBackup checks the settings only the backup command needs.
func (cfg *ClientConfig) ValidateBackup() error {
	if strings.TrimSpace(cfg.Backup.Path) == "" {
		return ErrMissingBackupPath
	}
	return nil
}
