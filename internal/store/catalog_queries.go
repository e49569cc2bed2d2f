// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-exercism-backup/models"
)

const catalogTable = "backups"

var catalogColumns = []string{
	"uuid",
	"track",
	"exercise",
	"marker_kind",
	"marker_value",
	"num_iterations",
	"path",
	"backed_up_at",
}

// sqlite uses "?" placeholders
var sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildUpsertCatalogEntryQuery(entry models.CatalogEntry) (string, []any, error) {
	return sqliteBuilder.Insert(catalogTable).
		Columns(catalogColumns...).
		Values(
			entry.UUID,
			entry.Track,
			entry.Exercise,
			entry.MarkerKind.String(),
			entry.MarkerValue,
			entry.NumIterations,
			entry.Path,
			entry.BackedUpAt.UTC(),
		).
		Suffix(`ON CONFLICT(uuid) DO UPDATE SET
			track = excluded.track,
			exercise = excluded.exercise,
			marker_kind = excluded.marker_kind,
			marker_value = excluded.marker_value,
			num_iterations = excluded.num_iterations,
			path = excluded.path,
			backed_up_at = excluded.backed_up_at`).
		ToSql()
}

func buildListCatalogQuery(filter models.CatalogFilter) (string, []any, error) {
	query := sqliteBuilder.Select(catalogColumns...).From(catalogTable)

	if len(filter.Tracks) > 0 {
		query = query.Where(sq.Eq{"track": filter.Tracks})
	}
	if len(filter.Exercises) > 0 {
		query = query.Where(sq.Eq{"exercise": filter.Exercises})
	}

	return query.OrderBy("track", "exercise").ToSql()
}
