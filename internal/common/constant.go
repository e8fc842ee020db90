// Package common contains header names and small helpers shared by the
// client packages.
package common

const (
	// AuthHeaderName carries the bearer credential on outbound requests.
	AuthHeaderName = "Authorization"
	// BearerPrefix precedes the token in AuthHeaderName.
	BearerPrefix = "Bearer "
	// RequestIDHeaderName carries a per-call UUID for backend log correlation.
	RequestIDHeaderName = "X-Request-ID"
)
