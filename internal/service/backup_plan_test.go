// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-exercism-backup/models"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

// its builds remote iterations with the given indices.
func its(indices ...int) []models.Iteration {
	out := make([]models.Iteration, 0, len(indices))
	for _, idx := range indices {
		out = append(out, models.Iteration{Index: idx, SubmissionUUID: fmt.Sprintf("sub-%d", idx)})
	}
	return out
}

// randomAscending returns a random ascending subset of 1..n.
func randomAscending(r *rand.Rand, n int) []int {
	var out []int
	for i := 1; i <= n; i++ {
		if r.IntN(2) == 0 {
			out = append(out, i)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// PlanIterationSync
// ─────────────────────────────────────────────────────────────────────────────

func TestPlanIterationSync_Concrete(t *testing.T) {
	ops := PlanIterationSync(its(1, 2, 3, 5), []int{1, 3, 4}, models.IterationsFullSync)

	assert.Equal(t, []int{2, 5}, iterationIndices(ops.ToBackup))
	assert.Equal(t, []int{4}, ops.CleanUp)
}

func TestPlanIterationSync_Policies(t *testing.T) {
	remote := its(1, 2, 3, 5)
	local := []int{1, 3, 4}

	tests := []struct {
		policy       models.IterationsSyncPolicy
		wantToBackup []int
		wantCleanUp  []int
	}{
		{policy: models.IterationsNew, wantToBackup: []int{2, 5}},
		{policy: models.IterationsFullSync, wantToBackup: []int{2, 5}, wantCleanUp: []int{4}},
		{policy: models.IterationsCleanUp, wantCleanUp: []int{4}},
		{policy: models.IterationsDoNotSync},
	}

	for _, tt := range tests {
		t.Run(tt.policy.String(), func(t *testing.T) {
			ops := PlanIterationSync(remote, local, tt.policy)

			if tt.wantToBackup == nil {
				assert.Empty(t, ops.ToBackup)
			} else {
				assert.Equal(t, tt.wantToBackup, iterationIndices(ops.ToBackup))
			}
			if tt.wantCleanUp == nil {
				assert.Empty(t, ops.CleanUp)
			} else {
				assert.Equal(t, tt.wantCleanUp, ops.CleanUp)
			}
		})
	}
}

func TestPlanIterationSync_EdgeCases(t *testing.T) {
	tests := []struct {
		name         string
		remote       []models.Iteration
		local        []int
		wantToBackup []int
		wantCleanUp  []int
	}{
		{
			name:        "empty remote cleans up everything",
			remote:      nil,
			local:       []int{1, 2, 7},
			wantCleanUp: []int{1, 2, 7},
		},
		{
			name:         "empty local backs up everything",
			remote:       its(1, 2, 3),
			local:        nil,
			wantToBackup: []int{1, 2, 3},
		},
		{
			name:   "both empty",
			remote: nil,
			local:  nil,
		},
		{
			name:   "identical",
			remote: its(1, 2, 3),
			local:  []int{1, 2, 3},
		},
		{
			name:         "local entirely above remote",
			remote:       its(1, 2),
			local:        []int{3, 4},
			wantToBackup: []int{1, 2},
			wantCleanUp:  []int{3, 4},
		},
		{
			name:         "deleted middle iteration",
			remote:       its(1, 3, 4),
			local:        []int{1, 2, 3},
			wantToBackup: []int{4},
			wantCleanUp:  []int{2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops := PlanIterationSync(tt.remote, tt.local, models.IterationsFullSync)

			assert.Equal(t, len(tt.wantToBackup), len(ops.ToBackup))
			if len(tt.wantToBackup) > 0 {
				assert.Equal(t, tt.wantToBackup, iterationIndices(ops.ToBackup))
			}
			assert.Equal(t, len(tt.wantCleanUp), len(ops.CleanUp))
			if len(tt.wantCleanUp) > 0 {
				assert.Equal(t, tt.wantCleanUp, ops.CleanUp)
			}
			assert.Equal(t, len(tt.wantToBackup) == 0 && len(tt.wantCleanUp) == 0, ops.Empty())
		})
	}
}

// TestPlanIterationSync_MergeProperty checks on random inputs that clean-up,
// matched and new indices partition remote ∪ local.
func TestPlanIterationSync_MergeProperty(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 2026))

	for round := 0; round < 500; round++ {
		remoteIdx := randomAscending(r, 25)
		local := randomAscending(r, 25)

		ops := PlanIterationSync(its(remoteIdx...), local, models.IterationsFullSync)
		toBackup := iterationIndices(ops.ToBackup)

		var matched []int
		for _, idx := range remoteIdx {
			if slices.Contains(local, idx) {
				matched = append(matched, idx)
			}
		}

		seen := make(map[int]int)
		for _, group := range [][]int{ops.CleanUp, matched, toBackup} {
			for _, idx := range group {
				seen[idx]++
			}
		}

		union := make(map[int]struct{})
		for _, idx := range remoteIdx {
			union[idx] = struct{}{}
		}
		for _, idx := range local {
			union[idx] = struct{}{}
		}

		require.Len(t, seen, len(union), "round %d: remote=%v local=%v", round, remoteIdx, local)
		for idx, count := range seen {
			require.Equal(t, 1, count, "round %d: index %d counted twice", round, idx)
			require.Contains(t, union, idx)
		}
		for _, idx := range toBackup {
			require.Contains(t, remoteIdx, idx)
			require.NotContains(t, local, idx)
		}
		for _, idx := range ops.CleanUp {
			require.Contains(t, local, idx)
			require.NotContains(t, remoteIdx, idx)
		}
		require.True(t, slices.IsSorted(toBackup))
		require.True(t, slices.IsSorted(ops.CleanUp))
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// DecideOverwrite
// ─────────────────────────────────────────────────────────────────────────────

func TestDecideOverwrite_AllCombinations(t *testing.T) {
	policies := []models.OverwritePolicy{models.OverwriteAlways, models.OverwriteIfNewer, models.OverwriteNever}

	want := func(exists, stale bool, policy models.OverwritePolicy) models.OverwriteAction {
		switch {
		case !exists:
			return models.ActionCreateFresh
		case !stale && policy == models.OverwriteAlways:
			return models.ActionPurgeAndRecreate
		case !stale:
			return models.ActionSkip
		case policy == models.OverwriteNever:
			return models.ActionSkip
		default:
			return models.ActionPurgeAndRecreate
		}
	}

	count := 0
	for _, exists := range []bool{false, true} {
		for _, stale := range []bool{false, true} {
			for _, policy := range policies {
				name := fmt.Sprintf("exists=%t/stale=%t/%s", exists, stale, policy)
				t.Run(name, func(t *testing.T) {
					assert.Equal(t, want(exists, stale, policy), DecideOverwrite(exists, stale, policy))
				})
				count++
			}
		}
	}
	assert.Equal(t, 12, count)
}

func TestDecideOverwrite_Table(t *testing.T) {
	assert.Equal(t, models.ActionCreateFresh, DecideOverwrite(false, false, models.OverwriteNever))
	assert.Equal(t, models.ActionPurgeAndRecreate, DecideOverwrite(true, false, models.OverwriteAlways))
	assert.Equal(t, models.ActionSkip, DecideOverwrite(true, false, models.OverwriteIfNewer))
	assert.Equal(t, models.ActionSkip, DecideOverwrite(true, true, models.OverwriteNever))
	assert.Equal(t, models.ActionPurgeAndRecreate, DecideOverwrite(true, true, models.OverwriteIfNewer))
}
