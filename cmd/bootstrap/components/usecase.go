package components

import (
	"vending-machine/internal/pkg/config"
	"vending-machine/internal/pkg/errs"
	"vending-machine/internal/pkg/jwt"
	"vending-machine/internal/pkg/password"
	"vending-machine/internal/usecase"
	"vending-machine/internal/usecase/commands"
	"vending-machine/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		newAuthCommands,
		commands.NewMachineCommands,
		commands.NewAdminCommands,
	),
)

// newAuthCommands refuses to start with an admin hash that could never match.
func newAuthCommands(cfg config.Config, svc *jwt.Service) (commands.AuthCommands, error) {
	if err := password.ValidateHash(cfg.Admin.PasswordHash); err != nil {
		return nil, errs.Wrap(err, "invalid ADMIN_PASSWORD_HASH")
	}
	return commands.NewAuthCommands(cfg.Admin.PasswordHash, svc), nil
}

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		func(cfg config.Config) queries.Thresholds {
			return queries.Thresholds{
				LowStock: cfg.Machine.LowStockThreshold,
				LowCoins: cfg.Machine.LowCoinThreshold,
			}
		},
		queries.NewMachineQueries,
		queries.NewAdminQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
