// Package common contains constants shared by the salesdesk client layers.
package common

const (
	// AuthorizationHeaderName carries the bearer credential on outbound requests.
	AuthorizationHeaderName = "Authorization"

	// BearerPrefix precedes the token inside the Authorization header.
	BearerPrefix = "Bearer "

	// RequestIDHeaderName tags every request so server logs can be correlated.
	RequestIDHeaderName = "X-Request-ID"

	// TokenSlotKey is the fixed metadata key under which the credential is persisted.
	TokenSlotKey = "token"

	// TokenSavedAtKey records when the credential was last written.
	TokenSavedAtKey = "token_saved_at"
)
