// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/MKhiriev/go-exercism-backup/internal/logger"
	"github.com/MKhiriev/go-exercism-backup/models"
)

// Locations of the backup state inside a solution directory.
const (
	StateDirName      = ".auxiliaire"
	StateFileName     = StateDirName + "/backup_state.json"
	StateTempFileName = StateDirName + "/backup_state.json.tmp"
)

var errMissingField = errors.New("missing required field")

// stateDecoder decodes one historical shape of the state file and migrates
// it to the current shape.
type stateDecoder struct {
	version string
	decode  func(data []byte) (models.BackupState, error)
}

// stateDecoders are tried in order; the first one that succeeds wins. New
// schema versions go first.
var stateDecoders = []stateDecoder{
	{version: "current", decode: decodeCurrentState},
	{version: "v1", decode: decodeV1State},
}

func decodeCurrentState(data []byte) (models.BackupState, error) {
	var raw struct {
		UUID   *string        `json:"uuid"`
		Marker *models.Marker `json:"last_iteration_marker"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return models.BackupState{}, err
	}
	if raw.UUID == nil {
		return models.BackupState{}, fmt.Errorf("%w: uuid", errMissingField)
	}
	if raw.Marker == nil {
		return models.BackupState{}, fmt.Errorf("%w: last_iteration_marker", errMissingField)
	}

	return models.BackupState{UUID: *raw.UUID, LastIterationMarker: *raw.Marker}, nil
}

// decodeV1State reads the first state format, which stored every backed up
// iteration index. The last index becomes the iteration count marker.
func decodeV1State(data []byte) (models.BackupState, error) {
	var raw struct {
		UUID       *string `json:"uuid"`
		Iterations *[]int  `json:"iterations"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return models.BackupState{}, err
	}
	if raw.UUID == nil {
		return models.BackupState{}, fmt.Errorf("%w: uuid", errMissingField)
	}
	if raw.Iterations == nil {
		return models.BackupState{}, fmt.Errorf("%w: iterations", errMissingField)
	}

	last := 0
	if n := len(*raw.Iterations); n > 0 {
		last = (*raw.Iterations)[n-1]
	}
	return models.BackupState{UUID: *raw.UUID, LastIterationMarker: models.NumIterationsMarker(last)}, nil
}

// DecodeBackupState decodes a state file of any known version.
func DecodeBackupState(data []byte) (models.BackupState, error) {
	var errs []error
	for _, d := range stateDecoders {
		state, err := d.decode(data)
		if err == nil {
			return state, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", d.version, err))
	}
	return models.BackupState{}, fmt.Errorf("undecodable backup state: %w", errors.Join(errs...))
}

// BackupStateStore reads and writes the backup state file of solution
// directories.
type BackupStateStore struct {
	fs     billy.Filesystem
	logger *logger.Logger
}

// NewBackupStateStore returns a store over fs. Solution directories are
// paths relative to the root of fs.
func NewBackupStateStore(fs billy.Filesystem, log *logger.Logger) *BackupStateStore {
	return &BackupStateStore{fs: fs, logger: log}
}

// Load returns the state persisted in dir. A missing, unreadable or
// undecodable file yields the default state for uuid, which makes the
// solution look never backed up.
func (s *BackupStateStore) Load(dir, uuid string) models.BackupState {
	path := s.fs.Join(dir, StateFileName)

	data, err := util.ReadFile(s.fs, path)
	if err != nil {
		return models.BackupStateForUUID(uuid)
	}

	state, err := DecodeBackupState(data)
	if err != nil {
		s.logger.Warn().Err(err).Str("path", path).Msg("ignoring unreadable backup state")
		return models.BackupStateForUUID(uuid)
	}

	return state
}

// Save persists state in dir. The file is written next to its final
// location and renamed over it, so readers never see a partial file.
func (s *BackupStateStore) Save(dir string, state models.BackupState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode backup state: %w", err)
	}

	if err = s.fs.MkdirAll(s.fs.Join(dir, StateDirName), 0o755); err != nil {
		return fmt.Errorf("create backup state directory: %w", err)
	}

	tmp := s.fs.Join(dir, StateTempFileName)
	if err = util.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("write backup state: %w", err)
	}

	if err = s.fs.Rename(tmp, s.fs.Join(dir, StateFileName)); err != nil {
		return fmt.Errorf("replace backup state: %w", err)
	}

	return nil
}

// NeedsUpdate reports whether the content of solution must be downloaded
// again given the state of its last backup. Disagreements that indicate
// the wrong output directory or corrupted state are returned as errors.
func NeedsUpdate(state models.BackupState, solution models.Solution) (bool, error) {
	if state.UUID != solution.UUID {
		return false, fmt.Errorf(
			"%w: solution to %s has uuid %s but %s was backed up: did you choose the wrong output directory?",
			ErrSolutionUUIDMismatch, solution.FullName(), solution.UUID, state.UUID,
		)
	}

	marker := state.LastIterationMarker
	switch marker.Kind {
	case models.MarkerNone:
		return true, nil

	case models.MarkerLastIteratedAt:
		if solution.LastIteratedAt == nil {
			return false, fmt.Errorf(
				"%w: solution to %s used to have one (%s): did you choose the wrong output directory?",
				ErrLastIteratedAtMissing, solution.FullName(), marker.LastIteratedAt,
			)
		}
		return marker.LastIteratedAt != *solution.LastIteratedAt, nil

	case models.MarkerNumIterations:
		if marker.NumIterations > solution.NumIterations {
			return false, fmt.Errorf(
				"%w: solution to %s has %d iterations, %d were backed up: did you choose the wrong output directory?",
				ErrIterationCountRegressed, solution.FullName(), solution.NumIterations, marker.NumIterations,
			)
		}
		return marker.NumIterations != solution.NumIterations, nil

	default:
		return false, fmt.Errorf("%w: %s", models.ErrInvalidMarker, marker)
	}
}
