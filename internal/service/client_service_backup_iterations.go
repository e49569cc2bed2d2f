package service

import (
	"context"
	"fmt"

	"go.uber.org/multierr"

	"github.com/MKhiriev/go-exercism-backup/internal/logger"
	"github.com/MKhiriev/go-exercism-backup/internal/workers"
	"github.com/MKhiriev/go-exercism-backup/models"
)

// planIterations lists the remote iterations of solution that pass the
// filters and compares them with the iterations backed up in dir.
func (s *clientBackupService) planIterations(ctx context.Context, solution models.Solution, dir string) (models.SyncOps, error) {
	var remote []models.Iteration
	err := s.limiter.Do(ctx, func(ctx context.Context) (err error) {
		remote, err = s.adapter.ListIterations(ctx, solution.UUID)
		return err
	})
	if err != nil {
		return models.SyncOps{}, fmt.Errorf("failed to list iterations of solution to %s: %w", solution.FullName(), err)
	}

	eligible := remote[:0:0]
	for _, iteration := range remote {
		if s.settings.MatchesIteration(iteration) {
			eligible = append(eligible, iteration)
		}
	}

	var local []int
	err = s.limiter.Do(ctx, func(context.Context) (err error) {
		local, err = s.dirs.LocalIterations(dir)
		return err
	})
	if err != nil {
		return models.SyncOps{}, fmt.Errorf("failed to read iterations of solution to %s: %w", solution.FullName(), err)
	}

	return PlanIterationSync(eligible, local, s.settings.Iterations), nil
}

// spawnIterations plans the iteration synchronization of solution and
// spawns one unit per removal and per download into pool.
func (s *clientBackupService) spawnIterations(
	ctx context.Context,
	pool *workers.Pool,
	log *logger.Logger,
	solution models.Solution,
	dir string,
	stats *backupStats,
) error {
	ops, err := s.planIterations(ctx, solution, dir)
	if err != nil {
		return err
	}
	if ops.Empty() {
		log.Trace().Msg("iterations up to date")
		return nil
	}
	log.Debug().
		Ints("to_backup", iterationIndices(ops.ToBackup)).
		Ints("clean_up", ops.CleanUp).
		Msg("synchronizing iterations")

	for _, idx := range ops.CleanUp {
		pool.Spawn(func(ctx context.Context) error {
			err := s.limiter.Do(ctx, func(context.Context) error {
				return s.dirs.RemoveIteration(dir, idx)
			})
			if err != nil {
				return fmt.Errorf("failed to clean up iteration %d of solution to %s: %w", idx, solution.FullName(), err)
			}
			stats.iterationsRemoved.Add(1)
			return nil
		})
	}

	for _, iteration := range ops.ToBackup {
		if iteration.SubmissionUUID == "" {
			log.Warn().Int("iteration", iteration.Index).Msg("iteration has no submission; skipped")
			continue
		}

		pool.Spawn(func(ctx context.Context) error {
			if err := s.backupIteration(ctx, solution, dir, iteration); err != nil {
				return err
			}
			stats.iterationsBackedUp.Add(1)
			return nil
		})
	}

	return nil
}

// backupIteration downloads the files of one iteration into its own
// directory. A partially written iteration is removed so that the next run
// downloads it again.
func (s *clientBackupService) backupIteration(ctx context.Context, solution models.Solution, dir string, iteration models.Iteration) error {
	var files []models.SubmissionFile
	err := s.limiter.Do(ctx, func(ctx context.Context) (err error) {
		files, err = s.adapter.FetchIterationFiles(ctx, solution.UUID, iteration.SubmissionUUID)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to fetch iteration %d of solution to %s: %w", iteration.Index, solution.FullName(), err)
	}

	err = s.limiter.Do(ctx, func(context.Context) error {
		err := s.dirs.WriteIterationFiles(dir, iteration.Index, files)
		if err == nil {
			return nil
		}
		// a partial iteration left on disk would never be downloaded again
		if rmErr := s.dirs.RemoveIteration(dir, iteration.Index); rmErr != nil {
			err = multierr.Append(err, fmt.Errorf("failed to remove partial iteration: %w", rmErr))
		}
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to back up iteration %d of solution to %s: %w", iteration.Index, solution.FullName(), err)
	}
	return nil
}

func iterationIndices(iterations []models.Iteration) []int {
	indices := make([]int, 0, len(iterations))
	for _, iteration := range iterations {
		indices = append(indices, iteration.Index)
	}
	return indices
}
