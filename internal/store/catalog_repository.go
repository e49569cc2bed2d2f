package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-exercism-backup/internal/logger"
	"github.com/MKhiriev/go-exercism-backup/models"
)

type catalogRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCatalogRepository returns a [CatalogRepository] backed by db.
func NewCatalogRepository(db *DB, log *logger.Logger) CatalogRepository {
	return &catalogRepository{db: db, logger: log}
}

func (r *catalogRepository) Upsert(ctx context.Context, entry models.CatalogEntry) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertCatalogEntryQuery(entry)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "catalogRepository.Upsert").
			Str("uuid", entry.UUID).
			Msg("failed to upsert catalog entry")
		return fmt.Errorf("%w: upsert %s/%s: %w", ErrExecutingStatement, entry.Track, entry.Exercise, err)
	}

	return nil
}

func (r *catalogRepository) List(ctx context.Context, filter models.CatalogFilter) ([]models.CatalogEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCatalogQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "catalogRepository.List").Msg("failed to query catalog")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.CatalogEntry
	for rows.Next() {
		var (
			entry models.CatalogEntry
			kind  string
		)
		if err = rows.Scan(
			&entry.UUID,
			&entry.Track,
			&entry.Exercise,
			&kind,
			&entry.MarkerValue,
			&entry.NumIterations,
			&entry.Path,
			&entry.BackedUpAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		if entry.MarkerKind, err = models.ParseMarkerKind(kind); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func (r *catalogRepository) Close() error {
	return r.db.Close()
}

// noopCatalog is used when no catalog database is configured.
type noopCatalog struct{}

// NewNoopCatalog returns a [CatalogRepository] that records nothing.
func NewNoopCatalog() CatalogRepository {
	return noopCatalog{}
}

func (noopCatalog) Upsert(context.Context, models.CatalogEntry) error { return nil }

func (noopCatalog) List(context.Context, models.CatalogFilter) ([]models.CatalogEntry, error) {
	return nil, nil
}

func (noopCatalog) Close() error { return nil }
