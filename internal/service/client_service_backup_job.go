package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-exercism-backup/internal/logger"
)

// DefaultBackupInterval is used by Start when no positive interval is given.
const DefaultBackupInterval = time.Hour

type clientBackupJob struct {
	backupService ClientBackupService
	interval      time.Duration
	logger        *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientBackupJob creates a clientBackupJob that calls backupService.Backup
// every interval. The job is idle until Run or Start is called.
func NewClientBackupJob(backupService ClientBackupService, interval time.Duration, log *logger.Logger) ClientBackupJob {
	return &clientBackupJob{backupService: backupService, interval: interval, logger: log}
}

// Run implements ClientBackupJob. Failed runs are logged and the next tick
// tries again.
func (j *clientBackupJob) Run(ctx context.Context) error {
	j.backup(ctx)

	j.Start(ctx, j.interval)
	<-ctx.Done()
	j.Stop()

	return nil
}

// Start implements ClientBackupJob. The goroutine exits when ctx is
// cancelled or Stop is called. Ticks that fire while a backup is running are
// dropped.
func (j *clientBackupJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultBackupInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.backup(jobCtx)
			}
		}
	}()
}

// Stop implements ClientBackupJob. Safe to call when the job is not running.
func (j *clientBackupJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *clientBackupJob) backup(ctx context.Context) {
	if err := j.backupService.Backup(ctx); err != nil && ctx.Err() == nil {
		j.logger.Err(err).Msg("periodic backup failed")
	}
}
