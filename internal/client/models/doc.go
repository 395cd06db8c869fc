// Package models defines the client-side view of the sales backend resources.
//
// JSON tags follow the backend wire names (Portuguese), Go names follow the
// domain. Monetary values use shopspring/decimal. Payloads sent to the backend
// encode prices as plain JSON numbers; decoding accepts numbers or strings.
package models
