package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-0123456789abcdef0123456789"

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret)

	token, err := tm.GenerateStaffToken("admin@library.example", time.Hour)
	require.NoError(t, err)

	claims, err := tm.ValidateStaffToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@library.example", claims.Email)
	assert.True(t, claims.Staff)
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	tm := NewTokenManager(testSecret)

	token, err := tm.GenerateStaffToken("admin@library.example", -time.Minute)
	require.NoError(t, err)

	_, err = tm.ValidateStaffToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	token, err := NewTokenManager(testSecret).GenerateStaffToken("admin@library.example", time.Hour)
	require.NoError(t, err)

	_, err = NewTokenManager("other-secret-0123456789abcdef01234567").ValidateStaffToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_NonStaffClaims(t *testing.T) {
	claims := StaffClaims{
		Email: "student@library.example",
		Staff: false,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = NewTokenManager(testSecret).ValidateStaffToken(token)
	assert.ErrorIs(t, err, ErrNotStaff)
}

func TestTokenManager_Garbage(t *testing.T) {
	_, err := NewTokenManager(testSecret).ValidateStaffToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
