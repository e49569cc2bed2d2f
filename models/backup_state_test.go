package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarker_JSONWireFormat(t *testing.T) {
	tests := []struct {
		name   string
		marker Marker
		wire   string
	}{
		{name: "none", marker: NoMarker(), wire: `"none"`},
		{name: "timestamp", marker: LastIteratedAtMarker("2023-05-07T05:35:43Z"), wire: `{"last_iterated_at":"2023-05-07T05:35:43Z"}`},
		{name: "count", marker: NumIterationsMarker(13), wire: `{"num_iterations":13}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.marker)
			require.NoError(t, err)
			assert.JSONEq(t, tt.wire, string(data))

			var decoded Marker
			require.NoError(t, json.Unmarshal([]byte(tt.wire), &decoded))
			assert.Equal(t, tt.marker, decoded)
		})
	}
}

func TestMarker_UnmarshalJSON_Invalid(t *testing.T) {
	for _, wire := range []string{
		`"some"`,
		`{}`,
		`{"num_iterations":1,"last_iterated_at":"x"}`,
		`{"num_iterations":"one"}`,
		`{"iterations":[1]}`,
		`42`,
	} {
		t.Run(wire, func(t *testing.T) {
			var m Marker
			assert.ErrorIs(t, json.Unmarshal([]byte(wire), &m), ErrInvalidMarker)
		})
	}
}

func TestBackupState_JSON(t *testing.T) {
	state := BackupState{UUID: "abc", LastIterationMarker: NumIterationsMarker(2)}

	data, err := json.Marshal(state)
	require.NoError(t, err)
	assert.JSONEq(t, `{"uuid":"abc","last_iteration_marker":{"num_iterations":2}}`, string(data))
}

func TestBackupStateForSolution(t *testing.T) {
	ts := "2024-01-02T03:04:05Z"

	withTimestamp := BackupStateForSolution(Solution{UUID: "a", NumIterations: 3, LastIteratedAt: &ts})
	assert.Equal(t, LastIteratedAtMarker(ts), withTimestamp.LastIterationMarker)
	assert.Equal(t, "a", withTimestamp.UUID)

	withoutTimestamp := BackupStateForSolution(Solution{UUID: "b", NumIterations: 3})
	assert.Equal(t, NumIterationsMarker(3), withoutTimestamp.LastIterationMarker)

	assert.Equal(t, BackupState{UUID: "c", LastIterationMarker: NoMarker()}, BackupStateForUUID("c"))
}
