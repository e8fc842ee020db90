// Package client is the authenticated HTTP client for the hotel backend.
//
// # Overview
//
// Every outbound call goes through HTTPClient.Do, which
//  1. attaches the session token as "Authorization: Bearer <token>" together
//     with Content-Type and a fresh X-Request-ID,
//  2. turns transport failures into a NetworkError (matching ErrUnavailable)
//     and notifies the user that the backend cannot be reached,
//  3. on HTTP 401 clears the session and sends the view layer to the login
//     screen, unless it is already there,
//  4. normalises the two response shapes the backend uses ({"data": ...} or
//     the bare payload) before decoding into the caller's value.
//
// # Error Handling
//
// Callers match with errors.Is / errors.As: ErrUnavailable, ErrUnauthorized,
// *NetworkError and *APIError. A 401 is reported as an *APIError that also
// matches ErrUnauthorized, so the server's message stays available.
//
// # Base URL
//
// The base URL is resolved once at start-up: an "api_url" override from
// durable storage wins over the configured default. See ResolveBaseURL.
package client
