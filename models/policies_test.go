package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOverwritePolicy(t *testing.T) {
	tests := []struct {
		in   string
		want OverwritePolicy
	}{
		{"", OverwriteIfNewer},
		{"always", OverwriteAlways},
		{"if-newer", OverwriteIfNewer},
		{"if-new", OverwriteIfNewer},
		{"IF_NEWER", OverwriteIfNewer},
		{" never ", OverwriteNever},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOverwritePolicy(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseOverwritePolicy("sometimes")
	assert.ErrorIs(t, err, ErrUnknownPolicy)
}

func TestParseIterationsSyncPolicy(t *testing.T) {
	tests := []struct {
		in   string
		want IterationsSyncPolicy
	}{
		{"", IterationsDoNotSync},
		{"no", IterationsDoNotSync},
		{"new", IterationsNew},
		{"f", IterationsFullSync},
		{"full", IterationsFullSync},
		{"full_sync", IterationsFullSync},
		{"clean-up", IterationsCleanUp},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseIterationsSyncPolicy(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParseIterations(t, got.String()), "String round-trips")
		})
	}

	_, err := ParseIterationsSyncPolicy("everything")
	assert.ErrorIs(t, err, ErrUnknownPolicy)
}

func mustParseIterations(t *testing.T, s string) IterationsSyncPolicy {
	t.Helper()
	p, err := ParseIterationsSyncPolicy(s)
	require.NoError(t, err)
	return p
}

func TestIterationsSyncPolicy_Flags(t *testing.T) {
	tests := []struct {
		policy                      IterationsSyncPolicy
		sync, backupNew, cleanUpOld bool
	}{
		{IterationsDoNotSync, false, false, false},
		{IterationsNew, true, true, false},
		{IterationsFullSync, true, true, true},
		{IterationsCleanUp, true, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.policy.String(), func(t *testing.T) {
			assert.Equal(t, tt.sync, tt.policy.Sync())
			assert.Equal(t, tt.backupNew, tt.policy.BackupNew())
			assert.Equal(t, tt.cleanUpOld, tt.policy.CleanUpOld())
		})
	}
}

func TestSolutionStatus_Ordering(t *testing.T) {
	assert.Less(t, SolutionStatusAny, SolutionStatusSubmitted)
	assert.Less(t, SolutionStatusSubmitted, SolutionStatusCompleted)
	assert.Less(t, SolutionStatusCompleted, SolutionStatusPublished)

	got, err := ParseSolutionStatus("started")
	require.NoError(t, err)
	assert.Equal(t, SolutionStatusAny, got)

	level, ok := RemoteStatusIterated.FilterLevel()
	assert.True(t, ok)
	assert.Equal(t, SolutionStatusSubmitted, level)

	_, ok = RemoteSolutionStatus("archived").FilterLevel()
	assert.False(t, ok)
}

func TestSolutionStatus_RemoteFilter(t *testing.T) {
	assert.Empty(t, SolutionStatusAny.RemoteFilter())
	assert.Empty(t, SolutionStatusSubmitted.RemoteFilter())
	assert.Empty(t, SolutionStatusCompleted.RemoteFilter())
	assert.Equal(t, "published", SolutionStatusPublished.RemoteFilter())
}
