package service

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/multierr"

	"github.com/MKhiriev/go-exercism-backup/internal/logger"
	"github.com/MKhiriev/go-exercism-backup/internal/store"
	"github.com/MKhiriev/go-exercism-backup/internal/workers"
	"github.com/MKhiriev/go-exercism-backup/models"
)

// backupSolution is the unit of work of one solution.
func (s *clientBackupService) backupSolution(ctx context.Context, solution models.Solution, stats *backupStats) error {
	log := s.solutionLogger(solution)
	log.Debug().Str("uuid", solution.UUID).Msg("starting solution backup")
	stats.solutions.Add(1)

	dir := s.dirs.SolutionDir(solution)

	action, err := s.decideAction(ctx, solution, dir)
	if err != nil {
		return err
	}
	log.Debug().Str("action", action.String()).Msg("overwrite decision")

	if s.settings.DryRun {
		return s.dryRunSolution(ctx, log, solution, dir, action)
	}

	switch action {
	case models.ActionCreateFresh:
		err = s.limiter.Do(ctx, func(context.Context) error { return s.dirs.Create(dir) })
	case models.ActionPurgeAndRecreate:
		log.Trace().Msg("solution already exists on disk; cleaning up")
		err = s.limiter.Do(ctx, func(context.Context) error { return s.dirs.Purge(dir) })
	case models.ActionSkip:
		stats.contentSkipped.Add(1)
		log.Info().Msgf("solution to %s already exists; skipped", solution.FullName())
	}
	if err != nil {
		return fmt.Errorf("failed to prepare directory of solution to %s: %w", solution.FullName(), err)
	}

	pool := workers.NewPool(ctx, log)

	var errs error
	if action.FetchesContent() {
		errs = multierr.Append(errs, s.spawnFiles(ctx, pool, solution, dir, stats))
	}

	syncIterations := s.settings.Iterations.Sync()
	if syncIterations {
		errs = multierr.Append(errs, s.spawnIterations(ctx, pool, log, solution, dir, stats))
	}

	errs = multierr.Append(errs, pool.Join(fmt.Sprintf("errors detected while backing up solution to %s", solution.FullName())))

	if syncIterations {
		err = s.limiter.Do(ctx, func(context.Context) error { return s.dirs.CleanUpIterations(dir) })
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("failed to clean up iterations of solution to %s: %w", solution.FullName(), err))
		}
	}

	if errs != nil {
		return errs
	}

	if action.FetchesContent() {
		if err = s.recordBackup(ctx, solution, dir); err != nil {
			return err
		}
		stats.contentDownloaded.Add(1)
		log.Info().Msgf("solution to %s downloaded", solution.FullName())
	}

	return nil
}

// decideAction compares the local copy of solution with the remote one.
func (s *clientBackupService) decideAction(ctx context.Context, solution models.Solution, dir string) (models.OverwriteAction, error) {
	var exists bool
	var state models.BackupState

	err := s.limiter.Do(ctx, func(context.Context) (err error) {
		exists, err = s.dirs.Exists(dir)
		if err == nil && exists {
			state = s.states.Load(dir, solution.UUID)
		}
		return err
	})
	if err != nil {
		return models.ActionSkip, fmt.Errorf("failed to inspect directory of solution to %s: %w", solution.FullName(), err)
	}

	stale := true
	if exists {
		if stale, err = store.NeedsUpdate(state, solution); err != nil {
			return models.ActionSkip, err
		}
	}

	return DecideOverwrite(exists, stale, s.settings.Overwrite), nil
}

// spawnFiles lists the files of solution and spawns one download unit per
// file into pool.
func (s *clientBackupService) spawnFiles(
	ctx context.Context,
	pool *workers.Pool,
	solution models.Solution,
	dir string,
	stats *backupStats,
) error {
	files, err := s.listFiles(ctx, solution)
	if err != nil {
		return err
	}

	for _, file := range files {
		pool.Spawn(func(ctx context.Context) error {
			if err := s.backupFile(ctx, solution, dir, file); err != nil {
				return err
			}
			stats.files.Add(1)
			return nil
		})
	}
	return nil
}

func (s *clientBackupService) listFiles(ctx context.Context, solution models.Solution) ([]string, error) {
	var files []string
	err := s.limiter.Do(ctx, func(ctx context.Context) (err error) {
		files, err = s.adapter.ListFiles(ctx, solution.UUID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list files of solution to %s: %w", solution.FullName(), err)
	}
	return files, nil
}

// backupFile streams one remote file into the solution directory. The permit
// is held for the whole transfer.
func (s *clientBackupService) backupFile(ctx context.Context, solution models.Solution, dir, file string) error {
	if _, err := store.SafePathSegments(file); err != nil {
		return fmt.Errorf("refusing file of solution to %s: %w", solution.FullName(), err)
	}

	permit, err := s.limiter.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("failed to download file %s in solution to %s: %w", file, solution.FullName(), err)
	}
	defer permit.Release()

	body, err := s.adapter.StreamFile(ctx, solution.UUID, file)
	if err != nil {
		return fmt.Errorf("failed to download file %s in solution to %s: %w", file, solution.FullName(), err)
	}
	defer func(body io.Closer) {
		_ = body.Close()
	}(body)

	if err = s.dirs.WriteFile(dir, file, body); err != nil {
		return fmt.Errorf("failed to back up file %s in solution to %s: %w", file, solution.FullName(), err)
	}
	return nil
}

// recordBackup persists the state of a successful content download, then
// records it in the catalog.
func (s *clientBackupService) recordBackup(ctx context.Context, solution models.Solution, dir string) error {
	state := models.BackupStateForSolution(solution)

	err := s.limiter.Do(ctx, func(context.Context) error { return s.states.Save(dir, state) })
	if err != nil {
		return fmt.Errorf("failed to save backup state of solution to %s: %w", solution.FullName(), err)
	}

	entry := models.CatalogEntry{
		UUID:          solution.UUID,
		Track:         solution.Track.Name,
		Exercise:      solution.Exercise.Name,
		MarkerKind:    state.LastIterationMarker.Kind,
		MarkerValue:   state.LastIterationMarker.Value(),
		NumIterations: solution.NumIterations,
		Path:          dir,
		BackedUpAt:    s.now().UTC(),
	}
	err = s.limiter.Do(ctx, func(ctx context.Context) error { return s.catalog.Upsert(ctx, entry) })
	if err != nil {
		return fmt.Errorf("failed to record backup of solution to %s in catalog: %w", solution.FullName(), err)
	}
	return nil
}

// dryRunSolution logs what backupSolution would do. It reads from the
// remote side and the disk but never writes.
func (s *clientBackupService) dryRunSolution(
	ctx context.Context,
	log *logger.Logger,
	solution models.Solution,
	dir string,
	action models.OverwriteAction,
) error {
	log.Info().Str("action", action.String()).Msgf("solution to %s would be processed", solution.FullName())

	var errs error
	if action.FetchesContent() {
		files, err := s.listFiles(ctx, solution)
		if err != nil {
			errs = multierr.Append(errs, err)
		} else {
			log.Debug().Strs("files", files).Msg("files to back up")
		}
	}

	if s.settings.Iterations.Sync() {
		ops, err := s.planIterations(ctx, solution, dir)
		if err != nil {
			errs = multierr.Append(errs, err)
		} else {
			log.Debug().
				Ints("to_backup", iterationIndices(ops.ToBackup)).
				Ints("clean_up", ops.CleanUp).
				Msg("iterations plan")
		}
	}

	return errs
}
