// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"slices"

	"github.com/MKhiriev/go-exercism-backup/models"
)

// BackupSettings is the immutable description of one backup run. It is
// shared by value between the driver and every unit of work.
type BackupSettings struct {
	Path          string
	Tracks        []string
	Exercises     []string
	Status        models.SolutionStatus
	Overwrite     models.OverwritePolicy
	Iterations    models.IterationsSyncPolicy
	DryRun        bool
	MaxDownloads  int
	IterationsDir string
}

// MatchesTrack reports whether track passes the track filter.
func (s BackupSettings) MatchesTrack(track string) bool {
	return len(s.Tracks) == 0 || slices.Contains(s.Tracks, track)
}

// MatchesExercise reports whether exercise passes the exercise filter.
func (s BackupSettings) MatchesExercise(exercise string) bool {
	return len(s.Exercises) == 0 || slices.Contains(s.Exercises, exercise)
}

// MatchesSolution reports whether solution passes the track, exercise and
// status filters. Solutions with a status unknown to this client never
// pass.
func (s BackupSettings) MatchesSolution(solution models.Solution) bool {
	if !s.MatchesTrack(solution.Track.Name) || !s.MatchesExercise(solution.Exercise.Name) {
		return false
	}

	level, ok := solution.Status.FilterLevel()
	if !ok {
		return false
	}
	return level >= s.Status
}

// MatchesIteration reports whether iteration is eligible for backup: it is
// not deleted, and it is published when only published solutions are
// wanted.
func (s BackupSettings) MatchesIteration(iteration models.Iteration) bool {
	if iteration.Status == models.IterationStatusDeleted {
		return false
	}
	return s.Status < models.SolutionStatusPublished || iteration.IsPublished
}

// SingleTrack returns the only track of the track filter, if there is
// exactly one.
func (s BackupSettings) SingleTrack() (string, bool) {
	if len(s.Tracks) != 1 {
		return "", false
	}
	return s.Tracks[0], true
}
