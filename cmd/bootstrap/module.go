package bootstrap

import (
	"vending-machine/cmd/bootstrap/components"
	"vending-machine/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule reads the environment once; tests swap it for a module supplying config.NewTestConfig.
var ConfigModule = fx.Module("config", fx.Provide(config.LoadConfig))

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	JWTModule,
	components.MachineModule,
	components.UseCaseModule,
	components.HandlerModule,
)
