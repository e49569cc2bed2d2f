// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/multierr"

	"github.com/MKhiriev/go-exercism-backup/internal/adapter"
	"github.com/MKhiriev/go-exercism-backup/internal/config"
	"github.com/MKhiriev/go-exercism-backup/internal/limiter"
	"github.com/MKhiriev/go-exercism-backup/internal/logger"
	"github.com/MKhiriev/go-exercism-backup/internal/store"
	"github.com/MKhiriev/go-exercism-backup/internal/workers"
	"github.com/MKhiriev/go-exercism-backup/models"
)

// clientBackupService is the concrete implementation of ClientBackupService.
//
// The listing is read page by page. The solutions of a page are processed
// concurrently in an outer pool; each solution spawns its file downloads and
// iteration operations into an inner pool. Every remote call and every
// filesystem mutation holds a permit of the single limiter, so the number of
// operations in flight stays bounded whatever the fan-out.
type clientBackupService struct {
	adapter  adapter.SolutionsAdapter
	states   *store.BackupStateStore
	dirs     *store.SolutionDirectories
	catalog  store.CatalogRepository
	limiter  *limiter.Limiter
	settings config.BackupSettings
	logger   *logger.Logger

	now func() time.Time
}

// NewClientBackupService constructs a ClientBackupService running with
// settings over storages and solutionsAdapter.
func NewClientBackupService(
	storages *store.ClientStorages,
	solutionsAdapter adapter.SolutionsAdapter,
	settings config.BackupSettings,
	log *logger.Logger,
) ClientBackupService {
	return &clientBackupService{
		adapter:  solutionsAdapter,
		states:   storages.States,
		dirs:     storages.Directories,
		catalog:  storages.Catalog,
		limiter:  limiter.New(settings.MaxDownloads),
		settings: settings,
		logger:   log,
		now:      time.Now,
	}
}

// backupStats counts what a run did. Units update it concurrently.
type backupStats struct {
	solutions          atomic.Int64
	contentDownloaded  atomic.Int64
	contentSkipped     atomic.Int64
	files              atomic.Int64
	iterationsBackedUp atomic.Int64
	iterationsRemoved  atomic.Int64
}

// Backup implements ClientBackupService.
func (s *clientBackupService) Backup(ctx context.Context) error {
	s.logger.Info().
		Str("path", s.settings.Path).
		Bool("dry_run", s.settings.DryRun).
		Str("overwrite", s.settings.Overwrite.String()).
		Str("iterations", s.settings.Iterations.String()).
		Int("max_downloads", s.limiter.Limit()).
		Msg("starting exercism solutions backup")

	stats := &backupStats{}
	pool := workers.NewPool(ctx, s.logger)

	var err error
	for page := 1; ; page++ {
		var solutions []models.Solution
		var last bool

		solutions, last, err = s.fetchPage(ctx, page)
		if err != nil {
			break
		}

		if len(solutions) == 0 {
			s.logger.Info().Int("page", page).Msg("no solutions to back up in page")
		} else {
			s.logPage(page, solutions)

			// Track directories are created before the solutions are spawned so
			// that concurrent units never race to create them.
			if err = s.createTrackDirectories(ctx, solutions); err != nil {
				break
			}

			for _, solution := range solutions {
				pool.Spawn(func(ctx context.Context) error {
					return s.backupSolution(ctx, solution, stats)
				})
			}
		}

		if last {
			break
		}
	}

	if err != nil {
		pool.Abort()
	}
	err = multierr.Append(err, pool.Join("errors detected while backing up solutions"))

	var event *zerolog.Event
	if err != nil {
		event = s.logger.Error().Err(err)
	} else {
		event = s.logger.Info()
	}
	event.
		Int64("solutions", stats.solutions.Load()).
		Int64("content_downloaded", stats.contentDownloaded.Load()).
		Int64("content_skipped", stats.contentSkipped.Load()).
		Int64("files", stats.files.Load()).
		Int64("iterations_backed_up", stats.iterationsBackedUp.Load()).
		Int64("iterations_removed", stats.iterationsRemoved.Load()).
		Msg("exercism solutions backup finished")

	return err
}

// fetchPage returns the solutions of page that pass the filters and whether
// page is the last one.
func (s *clientBackupService) fetchPage(ctx context.Context, page int) ([]models.Solution, bool, error) {
	var result models.SolutionsPage
	err := s.limiter.Do(ctx, func(ctx context.Context) (err error) {
		result, err = s.adapter.ListSolutions(ctx, page)
		return err
	})
	if err != nil {
		return nil, false, fmt.Errorf("%w for page %d: %w", ErrListSolutions, page, err)
	}

	solutions := make([]models.Solution, 0, len(result.Results))
	for _, solution := range result.Results {
		if s.settings.MatchesSolution(solution) {
			solutions = append(solutions, solution)
		}
	}

	return solutions, result.Meta.IsLast(), nil
}

func (s *clientBackupService) logPage(page int, solutions []models.Solution) {
	if s.settings.DryRun {
		names := make([]string, 0, len(solutions))
		for _, solution := range solutions {
			names = append(names, solution.FullName())
		}
		s.logger.Info().Int("page", page).Msgf("solutions to back up in page: %s", strings.Join(names, ", "))
		return
	}
	s.logger.Info().Int("page", page).Int("solutions", len(solutions)).Msg("backing up solutions of page")
}

func (s *clientBackupService) createTrackDirectories(ctx context.Context, solutions []models.Solution) error {
	if s.settings.DryRun {
		return nil
	}

	seen := make(map[string]struct{}, len(solutions))
	for _, solution := range solutions {
		track := solution.Track.Name
		if _, ok := seen[track]; ok {
			continue
		}
		seen[track] = struct{}{}

		err := s.limiter.Do(ctx, func(context.Context) error {
			exists, err := s.dirs.Exists(track)
			if err != nil || exists {
				return err
			}
			return s.dirs.Create(track)
		})
		if err != nil {
			return fmt.Errorf("%w %s: %w", ErrTrackDirectory, track, err)
		}
	}
	return nil
}

// solutionLogger returns a child logger tagged with the solution.
func (s *clientBackupService) solutionLogger(solution models.Solution) *logger.Logger {
	return &logger.Logger{Logger: s.logger.With().
		Str("track", solution.Track.Name).
		Str("exercise", solution.Exercise.Name).
		Logger()}
}
