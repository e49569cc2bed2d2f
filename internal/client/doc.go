// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the runtime of the exbackup command line tool.
//
// It resolves credentials, wires the output filesystem, storages, the
// Exercism API adapter and the services of a backup run, and renders the
// backup catalog for the terminal.
package client
