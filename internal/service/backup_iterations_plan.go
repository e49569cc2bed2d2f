// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/go-exercism-backup/models"

// PlanIterationSync compares the remote iterations of a solution with the
// indices of the iterations already backed up and returns what to delete and
// what to download.
//
// Both inputs must be sorted by ascending index. They are merged in a single
// pass: local indices below the current remote one are stale, an equal local
// index means the iteration is already present, and a remote iteration with
// no local match is new. Local indices left after the remote list is
// exhausted are stale too.
//
// Stale indices are only reported when policy cleans up old iterations, and
// new ones only when it backs up new iterations. Duplicate indices are not
// expected and are not removed.
func PlanIterationSync(remote []models.Iteration, local []int, policy models.IterationsSyncPolicy) models.SyncOps {
	var ops models.SyncOps

	j := 0
	for _, iteration := range remote {
		for j < len(local) && local[j] < iteration.Index {
			ops.CleanUp = append(ops.CleanUp, local[j])
			j++
		}

		if j < len(local) && local[j] == iteration.Index {
			j++
			continue
		}
		ops.ToBackup = append(ops.ToBackup, iteration)
	}
	ops.CleanUp = append(ops.CleanUp, local[j:]...)

	if !policy.CleanUpOld() {
		ops.CleanUp = nil
	}
	if !policy.BackupNew() {
		ops.ToBackup = nil
	}

	return ops
}
