// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"io"

	"github.com/MKhiriev/go-exercism-backup/models"
)

// Client defines the commands exposed by the command line tool.
type Client interface {
	// Backup runs one backup, or repeats it on the configured interval
	// until ctx is cancelled.
	Backup(ctx context.Context) error

	// List writes the entries of the backup catalog that match filter to w.
	List(ctx context.Context, w io.Writer, filter models.CatalogFilter) error
}
