// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPolicy is returned by the Parse* helpers for values that do not
// name a known policy or status.
var ErrUnknownPolicy = errors.New("unknown policy value")

// SolutionStatus is the minimum status a solution must have to be backed
// up. Values are ordered: a solution matches when its own status is greater
// than or equal to the filter.
type SolutionStatus int

const (
	// SolutionStatusAny does not filter solutions on their status.
	SolutionStatusAny SolutionStatus = iota
	// SolutionStatusSubmitted requires at least one submitted iteration.
	SolutionStatusSubmitted
	// SolutionStatusCompleted requires the exercise to be marked complete.
	SolutionStatusCompleted
	// SolutionStatusPublished requires the solution to be published.
	SolutionStatusPublished
)

var solutionStatusNames = map[string]SolutionStatus{
	"any":       SolutionStatusAny,
	"started":   SolutionStatusAny,
	"submitted": SolutionStatusSubmitted,
	"completed": SolutionStatusCompleted,
	"published": SolutionStatusPublished,
}

// ParseSolutionStatus parses a status filter name. The empty string maps to
// [SolutionStatusAny].
func ParseSolutionStatus(s string) (SolutionStatus, error) {
	if strings.TrimSpace(s) == "" {
		return SolutionStatusAny, nil
	}
	status, ok := solutionStatusNames[normalizePolicyName(s)]
	if !ok {
		return SolutionStatusAny, fmt.Errorf("%w: solution status %q", ErrUnknownPolicy, s)
	}
	return status, nil
}

func (s SolutionStatus) String() string {
	switch s {
	case SolutionStatusAny:
		return "any"
	case SolutionStatusSubmitted:
		return "submitted"
	case SolutionStatusCompleted:
		return "completed"
	case SolutionStatusPublished:
		return "published"
	default:
		return fmt.Sprintf("SolutionStatus(%d)", int(s))
	}
}

// RemoteFilter returns the API status filter value matching s, or "" when
// no remote filtering applies. The API matches statuses exactly, so only the
// top of the scale can be narrowed on the server without losing solutions.
func (s SolutionStatus) RemoteFilter() string {
	if s == SolutionStatusPublished {
		return string(RemoteStatusPublished)
	}
	return ""
}

// OverwritePolicy decides what to do with solutions that already exist on
// disk.
type OverwritePolicy int

const (
	// OverwriteAlways purges and re-downloads existing solutions.
	OverwriteAlways OverwritePolicy = iota
	// OverwriteIfNewer re-downloads existing solutions when the remote side
	// has a newer version.
	OverwriteIfNewer
	// OverwriteNever leaves existing solutions untouched.
	OverwriteNever
)

var overwritePolicyNames = map[string]OverwritePolicy{
	"always":   OverwriteAlways,
	"if-newer": OverwriteIfNewer,
	"if-new":   OverwriteIfNewer,
	"never":    OverwriteNever,
}

// ParseOverwritePolicy parses an overwrite policy name. The empty string
// maps to [OverwriteIfNewer].
func ParseOverwritePolicy(s string) (OverwritePolicy, error) {
	if strings.TrimSpace(s) == "" {
		return OverwriteIfNewer, nil
	}
	policy, ok := overwritePolicyNames[normalizePolicyName(s)]
	if !ok {
		return OverwriteIfNewer, fmt.Errorf("%w: overwrite policy %q", ErrUnknownPolicy, s)
	}
	return policy, nil
}

func (p OverwritePolicy) String() string {
	switch p {
	case OverwriteAlways:
		return "always"
	case OverwriteIfNewer:
		return "if-newer"
	case OverwriteNever:
		return "never"
	default:
		return fmt.Sprintf("OverwritePolicy(%d)", int(p))
	}
}

// IterationsSyncPolicy decides whether and how iterations are mirrored.
type IterationsSyncPolicy int

const (
	// IterationsDoNotSync leaves iterations alone.
	IterationsDoNotSync IterationsSyncPolicy = iota
	// IterationsNew backs up new iterations and keeps existing ones on disk.
	IterationsNew
	// IterationsFullSync backs up new iterations and removes local ones that
	// no longer exist remotely (or no longer match the filter).
	IterationsFullSync
	// IterationsCleanUp only removes local iterations that no longer exist
	// remotely.
	IterationsCleanUp
)

var iterationsSyncPolicyNames = map[string]IterationsSyncPolicy{
	"do-not-sync": IterationsDoNotSync,
	"no":          IterationsDoNotSync,
	"new":         IterationsNew,
	"full-sync":   IterationsFullSync,
	"full":        IterationsFullSync,
	"f":           IterationsFullSync,
	"clean-up":    IterationsCleanUp,
}

// ParseIterationsSyncPolicy parses an iterations sync policy name. The
// empty string maps to [IterationsDoNotSync].
func ParseIterationsSyncPolicy(s string) (IterationsSyncPolicy, error) {
	if strings.TrimSpace(s) == "" {
		return IterationsDoNotSync, nil
	}
	policy, ok := iterationsSyncPolicyNames[normalizePolicyName(s)]
	if !ok {
		return IterationsDoNotSync, fmt.Errorf("%w: iterations sync policy %q", ErrUnknownPolicy, s)
	}
	return policy, nil
}

func (p IterationsSyncPolicy) String() string {
	switch p {
	case IterationsDoNotSync:
		return "do-not-sync"
	case IterationsNew:
		return "new"
	case IterationsFullSync:
		return "full-sync"
	case IterationsCleanUp:
		return "clean-up"
	default:
		return fmt.Sprintf("IterationsSyncPolicy(%d)", int(p))
	}
}

// Sync reports whether iterations are synchronized at all.
func (p IterationsSyncPolicy) Sync() bool {
	return p != IterationsDoNotSync
}

// BackupNew reports whether new remote iterations are downloaded.
func (p IterationsSyncPolicy) BackupNew() bool {
	return p == IterationsNew || p == IterationsFullSync
}

// CleanUpOld reports whether local iterations missing remotely are removed.
func (p IterationsSyncPolicy) CleanUpOld() bool {
	return p == IterationsFullSync || p == IterationsCleanUp
}

// OverwriteAction is the outcome of the overwrite decision for a solution's
// content.
type OverwriteAction int

const (
	// ActionCreateFresh creates the solution directory and downloads content.
	ActionCreateFresh OverwriteAction = iota
	// ActionPurgeAndRecreate removes existing content (keeping iteration
	// history and internal state) and downloads content again.
	ActionPurgeAndRecreate
	// ActionSkip leaves content as is. Iterations may still be synced.
	ActionSkip
)

func (a OverwriteAction) String() string {
	switch a {
	case ActionCreateFresh:
		return "create"
	case ActionPurgeAndRecreate:
		return "purge-and-recreate"
	case ActionSkip:
		return "skip"
	default:
		return fmt.Sprintf("OverwriteAction(%d)", int(a))
	}
}

// FetchesContent reports whether the action downloads solution files.
func (a OverwriteAction) FetchesContent() bool {
	return a != ActionSkip
}

func normalizePolicyName(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
}
