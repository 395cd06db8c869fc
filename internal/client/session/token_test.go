package session

import (
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/salesdesk/internal/common"
)

func sign(t *testing.T, c jwt.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte("server-secret"))
	require.NoError(t, err)
	return s
}

func TestInspect_ReadsClaimsWithoutKey(t *testing.T) {
	exp := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	tok := sign(t, jwt.MapClaims{"user_id": "1", "role": "admin", "exp": exp.Unix()})

	info, err := Inspect(tok)
	require.NoError(t, err)

	assert.Equal(t, "1", info.UserID)
	assert.Equal(t, "admin", info.Role)
	require.NotNil(t, info.ExpiresAt)
	assert.True(t, exp.Equal(*info.ExpiresAt))
	assert.False(t, info.Expired(exp.Add(-time.Minute)))
	assert.True(t, info.Expired(exp))
}

func TestInspect_FallsBackToSubject(t *testing.T) {
	tok := sign(t, jwt.RegisteredClaims{Subject: "42"})

	info, err := Inspect(tok)
	require.NoError(t, err)
	assert.Equal(t, "42", info.UserID)
	assert.Nil(t, info.ExpiresAt)
	assert.False(t, info.Expired(time.Now()))
}

func TestInspect_OpaqueToken(t *testing.T) {
	_, err := Inspect("T")
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestInspect_NumericUserID(t *testing.T) {
	tok := sign(t, jwt.MapClaims{"user_id": 7})

	info, err := Inspect(tok)
	require.NoError(t, err)
	assert.Equal(t, "7", info.UserID)
}

func TestInspect_LargeNumericUserID(t *testing.T) {
	for _, id := range []any{1000000, 123456789012, "1000000"} {
		tok := sign(t, jwt.MapClaims{"user_id": id})

		info, err := Inspect(tok)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprint(id), info.UserID)
	}
}
