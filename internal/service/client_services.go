package service

import (
	"github.com/MKhiriev/go-exercism-backup/internal/adapter"
	"github.com/MKhiriev/go-exercism-backup/internal/config"
	"github.com/MKhiriev/go-exercism-backup/internal/logger"
	"github.com/MKhiriev/go-exercism-backup/internal/store"
)

// ClientServices groups the services of a backup run.
type ClientServices struct {
	BackupService  ClientBackupService
	CatalogService ClientCatalogService
	BackupJob      ClientBackupJob
}

func NewClientServices(
	storages *store.ClientStorages,
	solutionsAdapter adapter.SolutionsAdapter,
	cfg *config.ClientConfig,
	log *logger.Logger,
) *ClientServices {
	backupSvc := NewClientBackupService(storages, solutionsAdapter, cfg.Backup, log)

	return &ClientServices{
		BackupService:  backupSvc,
		CatalogService: NewClientCatalogService(storages.Catalog),
		BackupJob:      NewClientBackupJob(backupSvc, cfg.Workers.BackupInterval, log),
	}
}
