// Package common contains shared sentinel errors used across the client
// layers. Callers should match these values with errors.Is.
package common

import "errors"

var (
	// ErrNotFound indicates the requested resource does not exist on the
	// server (HTTP 404).
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized indicates the request was rejected because the
	// credential is missing, invalid, or expired (HTTP 401).
	ErrUnauthorized = errors.New("unauthorized")
)
