package auth

import (
	"challenge-clips/internal/core/domain"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the session token claims. The subject is kept in UserID.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// GenerateToken signs a HS256 session token for userID
func GenerateToken(userID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID: userID,
	})

	return token.SignedString(secretKey)
}

// VerifyToken validates the signature and expiry of tokenString and returns its identity
func VerifyToken(tokenString string, secretKey []byte) (*domain.Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnauthenticated, err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("%w: invalid token", domain.ErrUnauthenticated)
	}

	return claims.identity()
}

// DecodeSession reads the identity from a session token without checking its signature.
// The server verifies the token again on every request.
func DecodeSession(tokenString string) (*domain.Identity, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnauthenticated, err)
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return nil, fmt.Errorf("%w: session expired", domain.ErrUnauthenticated)
	}
	return claims.identity()
}

// LoadSession returns the identity of token, or of the token stored in path when token is empty.
// A missing session yields a nil identity.
func LoadSession(token, path string) (*domain.Identity, string, error) {
	token = strings.TrimSpace(token)
	if token == "" && path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, "", nil
			}
			return nil, "", fmt.Errorf("could not read session file: %w", err)
		}
		token = strings.TrimSpace(string(data))
	}
	if token == "" {
		return nil, "", nil
	}

	identity, err := DecodeSession(token)
	if err != nil {
		return nil, "", err
	}
	return identity, token, nil
}

func (c *Claims) identity() (*domain.Identity, error) {
	userID := c.UserID
	if userID == "" {
		userID = c.Subject
	}
	if userID == "" {
		return nil, fmt.Errorf("%w: token has no user", domain.ErrUnauthenticated)
	}
	return &domain.Identity{UserID: userID}, nil
}
