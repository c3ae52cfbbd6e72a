// Package auth provides token minting and verification, salted secret
// hashing for runner credentials and enrollment tokens, and AES-GCM sealing
// for stored third-party credentials.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Subject kinds embedded in token claims.
const (
	SubjectUser   = "user"
	SubjectRunner = "runner"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims are the JWT claims minted for users and runners.
type Claims struct {
	Subject  string `json:"sub_kind"`
	UserID   int    `json:"user_id,omitempty"`
	Email    string `json:"email,omitempty"`
	IsAdmin  bool   `json:"is_admin,omitempty"`
	RunnerID int    `json:"runner_id,omitempty"`
	jwt.RegisteredClaims
}

// TokenManager mints and verifies HS256 tokens.
type TokenManager struct {
	secret []byte
}

// NewTokenManager creates a TokenManager with the given signing secret.
func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret)}
}

// MintUserToken issues a token for an interactive user.
func (m *TokenManager) MintUserToken(userID int, email string, isAdmin bool, ttl time.Duration) (string, error) {
	claims := Claims{
		Subject: SubjectUser,
		UserID:  userID,
		Email:   email,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	return m.mint(claims)
}

// MintRunnerToken issues a token for an enrolled runner.
func (m *TokenManager) MintRunnerToken(runnerID int, ttl time.Duration) (string, error) {
	claims := Claims{
		Subject:  SubjectRunner,
		RunnerID: runnerID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	return m.mint(claims)
}

func (m *TokenManager) mint(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token, returning its claims.
func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
