//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"vending-machine/cmd/bootstrap"
	"vending-machine/cmd/bootstrap/components"
	"vending-machine/internal/pkg/config"
	"vending-machine/internal/pkg/password"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// AdminPassword is the maintenance password configured for every e2e application.
const AdminPassword = "e2e-maintenance"

// ------------------------------------------------------------
// Build one application (one machine) per call
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*gin.Engine, config.Config) {
	gin.SetMode(gin.TestMode)

	cfg := createTestConfig(t)
	router, app := buildE2EApp(cfg)
	require.NotNil(t, router, "router setup failed")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx application", "error", err.Error())
		}
	})

	return router, cfg
}

func createTestConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.NewTestConfig()
	hash, err := password.HashPassword(AdminPassword)
	require.NoError(t, err)
	cfg.Admin.PasswordHash = hash
	cfg.Machine.SeedDemo = true
	return cfg
}

// ------------------------------------------------------------
// Application wiring for e2e tests
// Returns router and fx.App for proper lifecycle management
// ------------------------------------------------------------
func buildE2EApp(cfg config.Config) (*gin.Engine, *fx.App) {
	var router *gin.Engine

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config { return cfg }),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		components.MachineModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router),

		// start without fx logs
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	if router == nil {
		panic("fx application did not provide a router")
	}

	return router, app
}

// ------------------------------------------------------------
// Shared setup for e2e suites
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	Config config.Config
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	router, cfg := setupE2EEnvironment(t)
	s.Router = router
	s.Config = cfg
	require.NotEmpty(t, s.Config, "config not loaded")
	require.NotNil(t, s.Router, "router setup failed")
}

// SetupTest gives each test a freshly seeded machine.
func (s *SharedSuite) SetupTest() {
	s.SetupSharedSuite(s.T())
}
