package components

import (
	"hotel-core/internal/pkg/clock"
	"hotel-core/internal/pkg/config"
	"hotel-core/internal/usecase/commands"
	"hotel-core/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) (commands.BillingPolicy, error) {
		return commands.NewBillingPolicy(cfg.Billing)
	},
	commands.NewAccountLedger,
	commands.NewAvailabilityChecker,
	commands.NewIdempotencyGuard,
	commands.NewInvoiceGenerator,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationUseCase,
		commands.NewInvoiceUseCase,
		commands.NewPaymentUseCase,
		commands.NewLedgerUseCase,
		commands.NewRoomUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewReservationQueries,
		queries.NewInvoiceQueries,
		queries.NewAccountQueries,
	),
)
