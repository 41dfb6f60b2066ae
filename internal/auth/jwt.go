// internal/auth/jwt.go
package auth

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"finance-tracker/internal/config"
	"finance-tracker/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// ClaimUserID is the single claim carrying the subject id.
const ClaimUserID = "user_id"

var (
	ErrInvalidClaims = errors.New("invalid token claims")
	ErrInvalidUserID = errors.New("invalid user_id")
)

type TokenService struct {
	secretKey []byte
	expiresIn time.Duration
}

func NewTokenService(cfg config.Config) *TokenService {
	return &TokenService{
		secretKey: []byte(cfg.JWTSecret),
		expiresIn: cfg.JWTExpiresIn,
	}
}

// GenerateToken signs an HS256 token for userID. Issuance belongs to the
// login service; this is used by tooling and tests.
func (s *TokenService) GenerateToken(userID int64) (string, error) {
	expTime := time.Now().Add(s.expiresIn)
	claims := jwt.MapClaims{
		ClaimUserID: userID,
		"exp":       expTime.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString(s.secretKey)
	if err == nil {
		slog.Debug("JWT generated", "user_id", userID, "expires_at", expTime.Format(time.DateTime))
	}
	return tokenStr, err
}

// ParseToken verifies signature and expiry and returns the user id claim.
func (s *TokenService) ParseToken(tokenStr string) (int64, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secretKey, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, ErrInvalidClaims
	}
	userIDFloat, ok := claims[ClaimUserID].(float64)
	if !ok {
		return 0, ErrInvalidClaims
	}
	userID := int64(userIDFloat)
	if userID <= 0 {
		return 0, ErrInvalidUserID
	}
	return userID, nil
}

// Authenticate is the bearer gate: it takes the raw Authorization header
// value and returns the subject id or a tagged auth error.
func (s *TokenService) Authenticate(header string) (int64, error) {
	if header == "" {
		return 0, domain.AuthMissing("Authorization header required")
	}
	tokenStr, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(tokenStr) == "" {
		return 0, domain.AuthMissing("Invalid Authorization header format")
	}

	userID, err := s.ParseToken(strings.TrimSpace(tokenStr))
	if err != nil {
		return 0, domain.AuthInvalid(err)
	}
	return userID, nil
}
