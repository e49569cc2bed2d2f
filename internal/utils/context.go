// Package utils provides general-purpose helpers used across the
// application: typed context keys, run identifiers and the shared HTTP
// client constructor.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// RunIDCtxKey is the key used to store the identifier of the current backup
// run in the context.
//
//	ctx := utils.WithRunID(ctx, utils.NewRunID())
var RunIDCtxKey = contextKey("runID")

// WithRunID returns a copy of ctx carrying runID.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, RunIDCtxKey, runID)
}

// GetRunIDFromContext retrieves the run identifier from the context.
//
// Returns the run ID and an ok flag:
//   - ok == true: value is found and is a non-empty string
//   - ok == false: value is missing, empty or has an unexpected type
func GetRunIDFromContext(ctx context.Context) (string, bool) {
	runID, ok := ctx.Value(RunIDCtxKey).(string)
	return runID, ok && runID != ""
}
