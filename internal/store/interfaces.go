package store

import (
	"context"

	"github.com/MKhiriev/go-exercism-backup/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CatalogRepository records the last successful backup of every solution.
type CatalogRepository interface {
	// Upsert inserts or replaces the row of entry.UUID.
	Upsert(ctx context.Context, entry models.CatalogEntry) error
	// List returns the entries matching filter, ordered by track then
	// exercise.
	List(ctx context.Context, filter models.CatalogFilter) ([]models.CatalogEntry, error)
	// Close releases the underlying database.
	Close() error
}
