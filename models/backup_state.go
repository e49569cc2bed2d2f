// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidMarker is returned when a persisted iteration marker cannot be
// decoded.
var ErrInvalidMarker = errors.New("invalid last iteration marker")

// MarkerKind tags the variant held by a [Marker].
type MarkerKind int

const (
	// MarkerNone means the solution was never backed up.
	MarkerNone MarkerKind = iota
	// MarkerLastIteratedAt holds the remote "last iterated at" timestamp.
	MarkerLastIteratedAt
	// MarkerNumIterations holds the remote iteration count, used for
	// solutions without a timestamp.
	MarkerNumIterations
)

func (k MarkerKind) String() string {
	switch k {
	case MarkerNone:
		return "none"
	case MarkerLastIteratedAt:
		return "last_iterated_at"
	case MarkerNumIterations:
		return "num_iterations"
	default:
		return "MarkerKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ParseMarkerKind is the inverse of MarkerKind.String.
func ParseMarkerKind(s string) (MarkerKind, error) {
	switch s {
	case "none":
		return MarkerNone, nil
	case "last_iterated_at":
		return MarkerLastIteratedAt, nil
	case "num_iterations":
		return MarkerNumIterations, nil
	default:
		return MarkerNone, fmt.Errorf("%w: kind %q", ErrInvalidMarker, s)
	}
}

// Marker records what the solution looked like at its last successful
// backup. It is a tagged union: only the field matching Kind is meaningful.
//
// JSON form:
//
//	"none"
//	{"last_iterated_at": "2023-05-07T05:35:43Z"}
//	{"num_iterations": 13}
type Marker struct {
	Kind           MarkerKind
	LastIteratedAt string
	NumIterations  int
}

// NoMarker returns the marker of a solution never backed up.
func NoMarker() Marker {
	return Marker{Kind: MarkerNone}
}

// LastIteratedAtMarker returns a timestamp marker.
func LastIteratedAtMarker(ts string) Marker {
	return Marker{Kind: MarkerLastIteratedAt, LastIteratedAt: ts}
}

// NumIterationsMarker returns an iteration count marker.
func NumIterationsMarker(n int) Marker {
	return Marker{Kind: MarkerNumIterations, NumIterations: n}
}

// Value returns the marker payload rendered as a string ("" for none).
func (m Marker) Value() string {
	switch m.Kind {
	case MarkerLastIteratedAt:
		return m.LastIteratedAt
	case MarkerNumIterations:
		return strconv.Itoa(m.NumIterations)
	default:
		return ""
	}
}

func (m Marker) String() string {
	if m.Kind == MarkerNone {
		return m.Kind.String()
	}
	return m.Kind.String() + "(" + m.Value() + ")"
}

// MarshalJSON implements json.Marshaler.
func (m Marker) MarshalJSON() ([]byte, error) {
	switch m.Kind {
	case MarkerNone:
		return json.Marshal("none")
	case MarkerLastIteratedAt:
		return json.Marshal(map[string]string{"last_iterated_at": m.LastIteratedAt})
	case MarkerNumIterations:
		return json.Marshal(map[string]int{"num_iterations": m.NumIterations})
	default:
		return nil, fmt.Errorf("%w: kind %d", ErrInvalidMarker, m.Kind)
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Marker) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidMarker, err)
		}
		if s != "none" {
			return fmt.Errorf("%w: unknown variant %q", ErrInvalidMarker, s)
		}
		*m = NoMarker()
		return nil
	}

	var variant map[string]json.RawMessage
	if err := json.Unmarshal(b, &variant); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMarker, err)
	}
	if len(variant) != 1 {
		return fmt.Errorf("%w: expected exactly one variant, got %d", ErrInvalidMarker, len(variant))
	}

	if raw, ok := variant["last_iterated_at"]; ok {
		var ts string
		if err := json.Unmarshal(raw, &ts); err != nil {
			return fmt.Errorf("%w: last_iterated_at: %w", ErrInvalidMarker, err)
		}
		*m = LastIteratedAtMarker(ts)
		return nil
	}
	if raw, ok := variant["num_iterations"]; ok {
		var n int
		if err := json.Unmarshal(raw, &n); err != nil {
			return fmt.Errorf("%w: num_iterations: %w", ErrInvalidMarker, err)
		}
		*m = NumIterationsMarker(n)
		return nil
	}

	return fmt.Errorf("%w: unknown variant", ErrInvalidMarker)
}

// BackupState is the small marker persisted in every solution directory. It
// decides whether a solution's content must be downloaded again.
type BackupState struct {
	UUID                string `json:"uuid"`
	LastIterationMarker Marker `json:"last_iteration_marker"`
}

// BackupStateForUUID returns the default state of a solution that has no
// persisted state yet.
func BackupStateForUUID(uuid string) BackupState {
	return BackupState{UUID: uuid, LastIterationMarker: NoMarker()}
}

// BackupStateForSolution returns the state describing solution as it is
// now, i.e. what to persist after a successful backup.
func BackupStateForSolution(solution Solution) BackupState {
	marker := NumIterationsMarker(solution.NumIterations)
	if solution.LastIteratedAt != nil {
		marker = LastIteratedAtMarker(*solution.LastIteratedAt)
	}
	return BackupState{UUID: solution.UUID, LastIterationMarker: marker}
}
