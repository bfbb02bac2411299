package components

import (
	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/config"
	"courtbook/internal/usecase"
	"courtbook/internal/usecase/commands"
	"courtbook/internal/usecase/queries"
	"courtbook/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
		commands.NewPaymentCommands,
		commands.NewSlotCommands,
		NewSweeperCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewSlotQueries,
		queries.NewPaymentQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewSweeperCommands(
	uow shared.UnitOfWork,
	reservations commands.ReservationCommands,
	notifier commands.Notifier,
	cfg config.Config,
) commands.SweeperCommands {
	return commands.NewSweeperCommands(uow, reservations, notifier, cfg.Sweeper.BatchSize)
}
