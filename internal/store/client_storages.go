package store

import (
	"context"
	"fmt"

	"github.com/go-git/go-billy/v5"

	"github.com/MKhiriev/go-exercism-backup/internal/logger"
)

// ClientStorages groups the local persistence used by a backup run into a
// single value that can be passed around the service layer.
type ClientStorages struct {
	// States reads and writes the per-solution backup state files.
	States *BackupStateStore

	// Directories manipulates solution directories on the output filesystem.
	Directories *SolutionDirectories

	// Catalog records successful backups. It is a no-op when no catalog
	// database is configured.
	Catalog CatalogRepository
}

// NewClientStorages wires the storages of a backup run over fs, the
// filesystem rooted at the output directory. When catalogDSN is non-empty
// the catalog database is opened and migrated.
func NewClientStorages(ctx context.Context, fs billy.Filesystem, iterationsDir, catalogDSN string, log *logger.Logger) (*ClientStorages, error) {
	log.Debug().Str("iterations_dir", iterationsDir).Msg("creating new storages...")

	catalog, err := OpenCatalog(ctx, catalogDSN, log)
	if err != nil {
		return nil, err
	}

	return &ClientStorages{
		States:      NewBackupStateStore(fs, log),
		Directories: NewSolutionDirectories(fs, iterationsDir),
		Catalog:     catalog,
	}, nil
}

// OpenCatalog opens and migrates the catalog database at dsn, or returns a
// no-op catalog when dsn is empty.
func OpenCatalog(ctx context.Context, dsn string, log *logger.Logger) (CatalogRepository, error) {
	if dsn == "" {
		return NewNoopCatalog(), nil
	}

	db, err := NewConnectSQLite(ctx, dsn, log)
	if err != nil {
		return nil, fmt.Errorf("catalog connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewCatalogRepository(db, log), nil
}
