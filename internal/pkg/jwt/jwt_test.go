//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"vending-machine/internal/pkg/clock"
	"vending-machine/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	clk := clock.NewMockClock(time.Now())
	svc := jwt.NewService("secret", time.Hour, clk)

	token, err := svc.GenerateToken("admin", jwt.RoleMaintenance)
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Subject)
		assert.Equal(t, jwt.RoleMaintenance, claims.Role)
		assert.NotEmpty(t, claims.ID)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := jwt.NewService("other", time.Hour, clk)
		_, err := other.ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		later := jwt.NewService("secret", time.Hour, clock.NewMockClock(clk.Now().Add(2*time.Hour)))
		_, err := later.ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrExpiredToken)
	})
}
