package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-exercism-backup/internal/logger"
	"github.com/MKhiriev/go-exercism-backup/models"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// Token is the Exercism API token; may be empty until the CLI
	// credentials are consulted.
	Token string
	// Version is the application version string.
	Version string
}

// ClientAdapter holds network settings used by the Exercism API client.
type ClientAdapter struct {
	// BaseURL is the Exercism API base URL.
	BaseURL string
	// RequestTimeout is the timeout of a single outbound request.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// CatalogDSN is the backup catalog database file; empty disables it.
	CatalogDSN string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// BackupInterval repeats the backup when positive.
	BackupInterval time.Duration
}

// ClientConfig is the validated runtime configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Backup  BackupSettings
	Storage ClientStorage
	Logger  logger.Settings
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client configuration from flags
// and the other configuration sources.
func GetClientConfig(flags *Flags) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewClientConfig(cfg)
}

// NewClientConfig parses the policies of cfg and validates the result.
func NewClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	status, err := models.ParseSolutionStatus(cfg.Backup.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBackupConfigs, err)
	}
	overwrite, err := models.ParseOverwritePolicy(cfg.Backup.Overwrite)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBackupConfigs, err)
	}
	iterations, err := models.ParseIterationsSyncPolicy(cfg.Backup.Iterations)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBackupConfigs, err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Token:   cfg.App.Token,
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.Address,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Backup: BackupSettings{
			Path:          cfg.Backup.Path,
			Tracks:        cfg.Backup.Tracks,
			Exercises:     cfg.Backup.Exercises,
			Status:        status,
			Overwrite:     overwrite,
			Iterations:    iterations,
			DryRun:        cfg.Backup.DryRun,
			MaxDownloads:  cfg.Backup.MaxDownloads,
			IterationsDir: cfg.Backup.IterationsDir,
		},
		Storage: ClientStorage{
			CatalogDSN: cfg.Storage.CatalogDSN,
		},
		Logger: logger.Settings{
			Level:  cfg.Logger.Level,
			Format: cfg.Logger.Format,
			File:   cfg.Logger.File,
		},
		Workers: ClientWorkers{BackupInterval: cfg.Workers.BackupInterval},
	}

	return clientCfg, clientCfg.validate()
}
