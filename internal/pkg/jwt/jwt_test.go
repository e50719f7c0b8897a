//go:build unit

package jwt

import (
	"testing"
	"time"

	"guesthouse-booking/internal/domain/user"
	"guesthouse-booking/internal/pkg/errs"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	issuedAt := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	newService := func(now time.Time) *Service {
		s := NewService("test-secret", time.Hour)
		s.now = func() time.Time { return now }
		return s
	}

	t.Run("round trip", func(t *testing.T) {
		id := uuid.New()
		token, expiresAt, err := newService(issuedAt).GenerateToken(id, user.RoleManager)
		require.NoError(t, err)
		assert.Equal(t, issuedAt.Add(time.Hour), expiresAt)

		claims, err := newService(issuedAt.Add(30 * time.Minute)).ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, id, claims.UserID)
		assert.Equal(t, "manager", claims.Role)
		assert.Equal(t, issuer, claims.Issuer)
	})

	t.Run("expired", func(t *testing.T) {
		token, _, err := newService(issuedAt).GenerateToken(uuid.New(), user.RoleAdmin)
		require.NoError(t, err)

		_, err = newService(issuedAt.Add(2 * time.Hour)).ValidateToken(token)
		assert.True(t, errs.Is(err, ErrExpiredToken))
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, _, err := NewService("other-secret", time.Hour).GenerateToken(uuid.New(), user.RoleAdmin)
		require.NoError(t, err)

		_, err = NewService("test-secret", time.Hour).ValidateToken(token)
		assert.True(t, errs.Is(err, ErrInvalidToken))
	})

	t.Run("foreign issuer", func(t *testing.T) {
		claims := Claims{
			UserID: uuid.New(),
			Role:   "admin",
			RegisteredClaims: gojwt.RegisteredClaims{
				Issuer:    "someone-else",
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = NewService("test-secret", time.Hour).ValidateToken(token)
		assert.True(t, errs.Is(err, ErrInvalidToken))
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := NewService("test-secret", time.Hour).ValidateToken("not.a.token")
		assert.True(t, errs.Is(err, ErrInvalidToken))
	})
}
