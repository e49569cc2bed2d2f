// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RemoteSolutionStatus is the status of a solution as reported by the
// Exercism API.
type RemoteSolutionStatus string

const (
	RemoteStatusStarted   RemoteSolutionStatus = "started"
	RemoteStatusIterated  RemoteSolutionStatus = "iterated"
	RemoteStatusCompleted RemoteSolutionStatus = "completed"
	RemoteStatusPublished RemoteSolutionStatus = "published"
)

// Track identifies a language track. Name is the track slug (e.g. "rust")
// and is used as the first level of the backup directory layout.
type Track struct {
	Name    string `json:"slug"`
	Title   string `json:"title"`
	IconURL string `json:"icon_url,omitempty"`
}

// Exercise identifies an exercise inside a track. Name is the exercise slug
// (e.g. "poker") and is used as the second level of the backup directory
// layout.
type Exercise struct {
	Name    string `json:"slug"`
	Title   string `json:"title"`
	IconURL string `json:"icon_url,omitempty"`
}

// Solution is one user's submission history for one exercise in one track.
//
// The (Track.Name, Exercise.Name, UUID) triple is owned by the remote side;
// local state references it but never mutates it.
type Solution struct {
	UUID       string               `json:"uuid"`
	PrivateURL string               `json:"private_url,omitempty"`
	PublicURL  string               `json:"public_url,omitempty"`
	Status     RemoteSolutionStatus `json:"status"`

	// NumIterations is the number of iterations the remote side currently
	// reports for this solution.
	NumIterations int `json:"num_iterations"`

	// LastIteratedAt is the timestamp of the last submitted iteration.
	// Older solutions do not have one.
	LastIteratedAt *string `json:"last_iterated_at,omitempty"`

	PublishedAt *string `json:"published_at,omitempty"`
	CompletedAt *string `json:"completed_at,omitempty"`
	UpdatedAt   *string `json:"updated_at,omitempty"`

	Exercise Exercise `json:"exercise"`
	Track    Track    `json:"track"`
}

// FullName returns "track/exercise", the form used in logs and error
// messages.
func (s Solution) FullName() string {
	return s.Track.Name + "/" + s.Exercise.Name
}

// FilterLevel maps the remote status onto the ordered [SolutionStatus]
// scale used by filters. ok is false for statuses unknown to this client.
func (s RemoteSolutionStatus) FilterLevel() (status SolutionStatus, ok bool) {
	switch s {
	case RemoteStatusStarted:
		return SolutionStatusAny, true
	case RemoteStatusIterated:
		return SolutionStatusSubmitted, true
	case RemoteStatusCompleted:
		return SolutionStatusCompleted, true
	case RemoteStatusPublished:
		return SolutionStatusPublished, true
	default:
		return SolutionStatusAny, false
	}
}
