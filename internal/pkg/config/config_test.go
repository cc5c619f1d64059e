//go:build unit

package config_test

import (
	"os"
	"testing"
	"time"

	"vending-machine/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$hash")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "8h", cfg.JWT.Duration)
		assert.Equal(t, []int64{1, 2, 5, 10, 20, 50, 100, 200, 500, 1000, 2000, 5000}, cfg.Machine.Denominations)
		assert.Equal(t, "EUR", cfg.Machine.Currency)
		assert.True(t, cfg.Machine.SeedDemo)
		assert.Equal(t, map[string]string{"USD": "1.08", "GBP": "0.86"}, cfg.Display.Rates)
		assert.Equal(t, 12*time.Hour, cfg.CORS.MaxAge)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$hash")
		t.Setenv("MACHINE_DENOMINATIONS", "5,10,25")
		t.Setenv("MACHINE_CURRENCY", "USD")
		t.Setenv("MACHINE_SEED_DEMO", "false")
		t.Setenv("DISPLAY_RATES", "EUR:0.92")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, []int64{5, 10, 25}, cfg.Machine.Denominations)
		assert.Equal(t, "USD", cfg.Machine.Currency)
		assert.False(t, cfg.Machine.SeedDemo)
		assert.Equal(t, map[string]string{"EUR": "0.92"}, cfg.Display.Rates)
	})

	t.Run("missing secrets", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		for _, key := range []string{"JWT_SECRET", "ADMIN_PASSWORD_HASH"} {
			t.Setenv(key, "")
			require.NoError(t, os.Unsetenv(key))
		}

		_, err := config.LoadConfig()
		require.Error(t, err)
	})
}
