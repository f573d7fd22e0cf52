package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager("secret")

	token, err := m.Generate("ops", time.Hour)
	require.NoError(t, err)

	claims, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTManager_Validate(t *testing.T) {
	m := NewJWTManager("secret")

	expired, err := m.Generate("ops", -time.Minute)
	require.NoError(t, err)

	foreign, err := NewJWTManager("other").Generate("ops", time.Hour)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "ops"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"empty", "", ErrMissingToken},
		{"garbage", "not-a-token", ErrInvalidToken},
		{"expired", expired, ErrInvalidToken},
		{"other secret", foreign, ErrInvalidToken},
		{"alg none", none, ErrInvalidToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Validate(tt.token)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestJWTManager_NoSecret(t *testing.T) {
	m := NewJWTManager("")

	_, err := m.Generate("ops", time.Hour)
	assert.ErrorIs(t, err, ErrNoSecret)

	_, err = m.Validate("x.y.z")
	assert.ErrorIs(t, err, ErrNoSecret)
}
