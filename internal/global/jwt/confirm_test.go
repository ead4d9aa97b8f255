package jwt

import (
	"testing"
	"time"

	"student-wellness-system/config"

	jwtlib "github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/require"
)

func setupConfig() {
	config.Set(&config.Config{
		JWT: config.JWT{
			AccessSecret:  "test-access-secret",
			AccessExpire:  3600,
			ConfirmSecret: "test-confirm-secret",
			ConfirmExpire: 3600,
		},
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	setupConfig()

	token := CreateToken(Payload{UserID: 7, Username: "ana", RoleID: 1})
	claims, valid := ParseToken(token)
	require.True(t, valid)
	require.EqualValues(t, 7, claims.UserID)
	require.Equal(t, "ana", claims.Username)
	require.Equal(t, 1, claims.RoleID)

	_, valid = ParseToken(token + "x")
	require.False(t, valid)
}

func TestConfirmTokenRoundTrip(t *testing.T) {
	setupConfig()

	token, err := CreateConfirmToken(12, 7)
	require.NoError(t, err)

	claims, valid := ParseConfirmToken(token)
	require.True(t, valid)
	require.EqualValues(t, 12, claims.EnrollmentID)
	require.EqualValues(t, 7, claims.UserID)
	require.NotEmpty(t, claims.Id)
}

func TestConfirmTokenNonceIsUnique(t *testing.T) {
	setupConfig()

	first, err := CreateConfirmToken(1, 1)
	require.NoError(t, err)
	second, err := CreateConfirmToken(1, 1)
	require.NoError(t, err)

	a, _ := ParseConfirmToken(first)
	b, _ := ParseConfirmToken(second)
	require.NotEqual(t, a.Id, b.Id)
}

func TestConfirmTokenExpired(t *testing.T) {
	setupConfig()

	claims := ConfirmClaims{
		EnrollmentID: 12,
		UserID:       7,
		StandardClaims: jwtlib.StandardClaims{
			Id:        "nonce",
			IssuedAt:  time.Now().Add(-2 * time.Hour).Unix(),
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
			Issuer:    "student-wellness-system",
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(confirmSecret(config.Get())))
	require.NoError(t, err)

	_, valid := ParseConfirmToken(signed)
	require.False(t, valid)
}

func TestConfirmTokenWrongSecret(t *testing.T) {
	setupConfig()

	claims := ConfirmClaims{
		EnrollmentID: 12,
		UserID:       7,
		StandardClaims: jwtlib.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("otro-secreto"))
	require.NoError(t, err)

	_, valid := ParseConfirmToken(signed)
	require.False(t, valid)
}
