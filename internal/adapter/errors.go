package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized: check your API token")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrRateLimited         = errors.New("rate limited by the server")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

// Credential errors.
var (
	// ErrNoCredentials is returned when no API token is configured and the
	// Exercism CLI configuration holds none either.
	ErrNoCredentials = errors.New("no API token: pass --token or run `exercism configure`")
)
