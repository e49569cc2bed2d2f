// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client of the Exercism REST API.
//
// The primary abstraction is [SolutionsAdapter], which decouples the backup
// service from the HTTP protocol. [NewHTTPSolutionsAdapter] is the resty
// implementation; [LoadCLICredentials] reads the token stored by the
// official Exercism CLI.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] on them (e.g.
// [ErrUnauthorized] for 401, [ErrRateLimited] for 429).
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-exercism-backup/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/solutions_adapter_mock.go -package=mock

// SolutionsAdapter reads the solutions of the authenticated user.
// Implementations must be safe for concurrent use.
type SolutionsAdapter interface {
	// ListSolutions returns page (1-based) of the solutions listing, newest
	// first. Track and status filters may be forwarded to the server as an
	// optimisation; callers still filter the results themselves.
	ListSolutions(ctx context.Context, page int) (models.SolutionsPage, error)

	// ListFiles returns the relative paths of the files of the current
	// version of the solution.
	ListFiles(ctx context.Context, uuid string) ([]string, error)

	// StreamFile opens the content of one solution file. The caller must
	// close the returned reader. Transport errors that occur mid-stream are
	// returned by Read.
	StreamFile(ctx context.Context, uuid, path string) (io.ReadCloser, error)

	// ListIterations returns the iterations of the solution in ascending
	// index order.
	ListIterations(ctx context.Context, uuid string) ([]models.Iteration, error)

	// FetchIterationFiles returns the files submitted with one iteration.
	FetchIterationFiles(ctx context.Context, uuid, submissionUUID string) ([]models.SubmissionFile, error)
}
