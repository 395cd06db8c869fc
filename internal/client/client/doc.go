// Package client is the single HTTP gateway between the salesdesk client and
// the sales backend REST API.
//
// # Overview
//
// HTTPClient joins request paths onto one configured base URL, attaches the
// bearer credential held by the session store, and maps responses onto a
// small set of sentinel errors. It exposes JSON verbs (Get, Post, Put, Delete)
// and a binary Download for backup files.
//
// # Session loss
//
// A 401 response from any endpoint clears the stored credential first and
// only then invokes the registered SessionLostHandler. The caller still
// receives an error matching ErrUnauthorized. Both steps are idempotent, so
// concurrent rejections are harmless.
//
// # Error Handling
//
// Non-2xx responses are returned as *APIError, which matches ErrUnauthorized,
// ErrValidation or ErrUnavailable via errors.Is. Transport failures match
// ErrUnavailable. Nothing is retried.
package client
