package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-exercism-backup/models"
)

// ClientBackupService mirrors the remote solutions onto the output
// directory.
type ClientBackupService interface {
	// Backup performs one complete backup run. Every solution is processed
	// even when others fail; the returned error aggregates every failure.
	// A panic inside a unit of work is re-raised in the caller.
	Backup(ctx context.Context) error
}

// ClientCatalogService reads the catalog of completed backups.
type ClientCatalogService interface {
	// List returns the catalog entries matching filter, ordered by track then
	// exercise.
	List(ctx context.Context, filter models.CatalogFilter) ([]models.CatalogEntry, error)
}

// ClientBackupJob repeats backups in the background.
type ClientBackupJob interface {
	// Run performs a backup right away, then one every configured interval
	// until ctx is cancelled.
	Run(ctx context.Context) error

	// Start launches the background goroutine that backs up every interval,
	// defaulting to one hour if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
