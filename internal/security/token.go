package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrNotStaff     = errors.New("token does not grant staff access")
)

// StaffClaims is the claim set the identity provider puts on staff tokens.
// The lending core only consumes the authenticated-staff result; it never
// verifies credentials itself.
type StaffClaims struct {
	Email string `json:"email,omitempty"`
	Staff bool   `json:"staff"`
	jwt.RegisteredClaims
}

type TokenManager interface {
	GenerateStaffToken(email string, ttl time.Duration) (string, error)
	ValidateStaffToken(tokenString string) (*StaffClaims, error)
}

type tokenManager struct {
	secret []byte
}

func NewTokenManager(secret string) TokenManager {
	return &tokenManager{secret: []byte(secret)}
}

func (m *tokenManager) GenerateStaffToken(email string, ttl time.Duration) (string, error) {
	claims := StaffClaims{
		Email: email,
		Staff: true,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "identity-provider",
			Audience:  jwt.ClaimStrings{"admin-console"},
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *tokenManager) ValidateStaffToken(tokenString string) (*StaffClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &StaffClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*StaffClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if !claims.Staff {
		return nil, ErrNotStaff
	}
	return claims, nil
}
