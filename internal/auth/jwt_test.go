// internal/auth/jwt_test.go
package auth

import (
	"testing"
	"time"

	"finance-tracker/internal/config"
	"finance-tracker/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(secret string, ttl time.Duration) *TokenService {
	return NewTokenService(config.Config{JWTSecret: secret, JWTExpiresIn: ttl})
}

func sign(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return tok
}

func TestGenerateAndParse(t *testing.T) {
	s := newService("secret", time.Hour)

	tok, err := s.GenerateToken(7)
	require.NoError(t, err)

	id, err := s.ParseToken(tok)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
}

func TestParseTokenRejects(t *testing.T) {
	s := newService("secret", time.Hour)
	future := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"wrong secret", sign(t, "other", jwt.MapClaims{"user_id": 7, "exp": future})},
		{"expired", sign(t, "secret", jwt.MapClaims{"user_id": 7, "exp": time.Now().Add(-time.Minute).Unix()})},
		{"no exp", sign(t, "secret", jwt.MapClaims{"user_id": 7})},
		{"legacy id claim", sign(t, "secret", jwt.MapClaims{"id": 7, "exp": future})},
		{"zero user", sign(t, "secret", jwt.MapClaims{"user_id": 0, "exp": future})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.ParseToken(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	s := newService("secret", time.Hour)
	tok, err := s.GenerateToken(42)
	require.NoError(t, err)

	id, err := s.Authenticate("Bearer " + tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = s.Authenticate("")
	assert.Equal(t, domain.KindAuthMissing, domain.KindOf(err))

	_, err = s.Authenticate("Token " + tok)
	assert.Equal(t, domain.KindAuthMissing, domain.KindOf(err))

	_, err = s.Authenticate("Bearer ")
	assert.Equal(t, domain.KindAuthMissing, domain.KindOf(err))

	_, err = s.Authenticate("Bearer abc.def.ghi")
	assert.Equal(t, domain.KindAuthInvalid, domain.KindOf(err))
}
