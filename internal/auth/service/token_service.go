package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/DarshanCHMSR/search-engine/internal/auth/service TokenGenerator

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/DarshanCHMSR/search-engine/internal/errors"
)

// TokenGenerator issues and verifies stateless session tokens.
type TokenGenerator interface {
	Issue(userID, email string) (string, error)
	Verify(tokenString string) (*Claims, error)
	TTL() time.Duration
}

// TokenService signs HS256 tokens. Validity is fully determined by signature
// and expiry; no server-side session state exists, so logout is client-side
// discard only.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

func (ts *TokenService) TTL() time.Duration {
	return ts.ttl
}

func (ts *TokenService) Issue(userID, email string) (string, error) {
	now := time.Now()

	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ts.secret)
}

// Verify parses and validates a token string. It fails with exactly one of
// ErrTokenMissing, ErrTokenExpired or ErrTokenInvalid.
func (ts *TokenService) Verify(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, apperrors.ErrTokenMissing
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return ts.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrTokenInvalid
	}

	if !token.Valid {
		return nil, apperrors.ErrTokenInvalid
	}

	return claims, nil
}
