// Package auth issues and checks member tokens. A member token is a signed
// JWT binding one user id to one group session; it is returned on join and
// presented on member-scoped calls.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/hkdf"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("member token required")
	ErrWrongMember  = errors.New("token belongs to another member")
)

const (
	issuer = "meetnmeal"

	// keyInfo binds derived keys to member tokens.
	keyInfo = "meetnmeal member token v1"
	keySize = 32
)

// TokenManager handles member token generation and validation.
type TokenManager struct {
	secretKey     []byte
	tokenDuration time.Duration
	now           func() time.Time
}

// Claims represents the JWT claims of a member token.
type Claims struct {
	GroupID string `json:"group_id"`
	UserID  string `json:"user_id"`
	jwt.RegisteredClaims
}

// NewTokenManager creates a token manager with the given secret and token duration.
// The signing key is derived from the secret with HKDF-SHA256. An empty secret
// is replaced by a random one, so tokens only survive as long as the process,
// which is also how long sessions live.
func NewTokenManager(secretKey string, tokenDuration time.Duration) (*TokenManager, error) {
	secret := []byte(secretKey)
	if len(secret) == 0 {
		secret = make([]byte, keySize)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("failed to generate token secret: %w", err)
		}
	}
	key, err := deriveKey(secret)
	if err != nil {
		return nil, err
	}
	return &TokenManager{
		secretKey:     key,
		tokenDuration: tokenDuration,
		now:           time.Now,
	}, nil
}

// deriveKey expands secret into the HS256 signing key.
func deriveKey(secret []byte) ([]byte, error) {
	key := make([]byte, keySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, nil, []byte(keyInfo)), key); err != nil {
		return nil, fmt.Errorf("failed to derive token key: %w", err)
	}
	return key, nil
}

// Generate creates a token for the member userID of session groupID.
func (m *TokenManager) Generate(groupID, userID string) (string, error) {
	now := m.now()
	claims := &Claims{
		GroupID: groupID,
		UserID:  userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Validate parses and validates a token, returning the claims if valid.
func (m *TokenManager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			// Verify the signing method
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secretKey, nil
		},
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(m.now),
	)

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Authorize validates tokenString and checks it was issued to userID in
// session groupID.
func (m *TokenManager) Authorize(tokenString, groupID, userID string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}
	claims, err := m.Validate(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.GroupID != groupID || claims.UserID != userID {
		return nil, ErrWrongMember
	}
	return claims, nil
}
