package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"go.uber.org/multierr"

	"github.com/MKhiriev/go-exercism-backup/internal/adapter"
	"github.com/MKhiriev/go-exercism-backup/internal/config"
	"github.com/MKhiriev/go-exercism-backup/internal/logger"
	"github.com/MKhiriev/go-exercism-backup/internal/service"
	"github.com/MKhiriev/go-exercism-backup/internal/store"
	"github.com/MKhiriev/go-exercism-backup/internal/utils"
	"github.com/MKhiriev/go-exercism-backup/models"
)

// App is the command line runtime. It builds the dependencies of each
// command from the configuration.
type App struct {
	cfg    *config.ClientConfig
	logger *logger.Logger

	loadCredentials func() (adapter.Credentials, error)
	openFilesystem  func(path string, dryRun bool) (billy.Filesystem, error)
}

// NewApp creates an App for cfg.
func NewApp(cfg *config.ClientConfig, log *logger.Logger) *App {
	return &App{
		cfg:             cfg,
		logger:          log,
		loadCredentials: adapter.LoadCLICredentials,
		openFilesystem:  openOutputFilesystem,
	}
}

// Backup implements Client.
func (a *App) Backup(ctx context.Context) (err error) {
	if err = a.cfg.ValidateBackup(); err != nil {
		return err
	}
	if err = a.resolveToken(); err != nil {
		return err
	}

	runID := utils.NewRunID()
	log := a.logger.WithRunID(runID)
	ctx = log.WithContext(utils.WithRunID(ctx, runID))

	fs, err := a.openFilesystem(a.cfg.Backup.Path, a.cfg.Backup.DryRun)
	if err != nil {
		return fmt.Errorf("open output directory: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, fs, a.cfg.Backup.IterationsDir, a.cfg.Storage.CatalogDSN, log)
	if err != nil {
		return fmt.Errorf("create storages: %w", err)
	}
	defer func() {
		err = multierr.Append(err, storages.Catalog.Close())
	}()

	solutionsAdapter, err := adapter.NewHTTPSolutionsAdapter(a.cfg.Adapter, a.cfg.App, a.cfg.Backup, log)
	if err != nil {
		return fmt.Errorf("create exercism adapter: %w", err)
	}

	services := service.NewClientServices(storages, solutionsAdapter, a.cfg, log)

	if a.cfg.Workers.BackupInterval > 0 {
		log.Info().Dur("interval", a.cfg.Workers.BackupInterval).Msg("starting periodic backups")
		return services.BackupJob.Run(ctx)
	}
	return services.BackupService.Backup(ctx)
}

// List implements Client.
func (a *App) List(ctx context.Context, w io.Writer, filter models.CatalogFilter) (err error) {
	if a.cfg.Storage.CatalogDSN == "" {
		return ErrCatalogDisabled
	}

	ctx = a.logger.WithContext(ctx)

	catalog, err := store.OpenCatalog(ctx, a.cfg.Storage.CatalogDSN, a.logger)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, catalog.Close())
	}()

	entries, err := service.NewClientCatalogService(catalog).List(ctx, filter)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, renderCatalog(entries))
	return err
}

// resolveToken falls back to the token of the Exercism CLI when none is
// configured.
func (a *App) resolveToken() error {
	if a.cfg.App.Token != "" {
		return nil
	}

	creds, err := a.loadCredentials()
	if errors.Is(err, adapter.ErrNoCredentials) {
		return fmt.Errorf("%w: pass --token or run `exercism configure --token=...` first", err)
	}
	if err != nil {
		return fmt.Errorf("load exercism cli credentials: %w", err)
	}

	a.cfg.App.Token = creds.Token
	a.logger.Debug().Msg("using the token of the exercism cli")
	return nil
}

// openOutputFilesystem roots a filesystem at path. The directory is only
// created when the run may write.
func openOutputFilesystem(path string, dryRun bool) (billy.Filesystem, error) {
	if !dryRun {
		if err := os.MkdirAll(path, 0o755); err != nil {
			return nil, err
		}
	}
	return osfs.New(path), nil
}
