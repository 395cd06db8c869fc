package session

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/salesdesk/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo is what can be read from a credential without the server's key.
// It is informational only and never used to accept or reject a token.
type TokenInfo struct {
	UserID    string
	Role      string
	ExpiresAt *time.Time
}

// Expired reports whether the token claims to be expired at now.
func (ti TokenInfo) Expired(now time.Time) bool {
	return ti.ExpiresAt != nil && !now.Before(*ti.ExpiresAt)
}

// Inspect decodes the claims of a JWT credential without verifying it.
// Opaque (non-JWT) credentials yield common.ErrInvalidToken.
func Inspect(token string) (TokenInfo, error) {
	c := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, c); err != nil {
		return TokenInfo{}, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	var info TokenInfo
	if v, ok := c["user_id"]; ok && v != nil {
		info.UserID = claimString(v)
	} else if sub, err := c.GetSubject(); err == nil {
		info.UserID = sub
	}
	if role, ok := c["role"].(string); ok {
		info.Role = role
	}
	if exp, err := c.GetExpirationTime(); err == nil && exp != nil {
		t := exp.Time
		info.ExpiresAt = &t
	}
	return info, nil
}

// claimString renders an id claim. JSON numbers decode as float64, which
// fmt would print in exponent form for large ids.
func claimString(v any) string {
	if f, ok := v.(float64); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}
