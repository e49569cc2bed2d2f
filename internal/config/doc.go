// Package config provides configuration loading, merging, and validation
// facilities for the backup tool.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the raw merged values
// and [GetClientConfig] for the parsed, validated runtime view.
package config
