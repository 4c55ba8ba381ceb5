package components

import (
	"field-reservation/internal/domain/reservation"
	"field-reservation/internal/usecase"
	"field-reservation/internal/usecase/commands"
	"field-reservation/internal/usecase/queries"
	"field-reservation/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseSharedModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	fx.Annotate(
		reservation.NewHourlyPriceCalculator,
		fx.As(new(reservation.PriceCalculator)),
	),
	reservation.NewFactory,
)

var usecaseSharedModule = fx.Module("usecase/shared",
	fx.Provide(
		shared.NewAvailabilityCalculator,
		shared.NewConflictDetector,
		shared.NewPricingService,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationUseCase,
		commands.NewPaymentUseCase,
		commands.NewFieldUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewFieldQueries,
		queries.NewAvailabilityQueries,
		queries.NewReservationQueries,
		queries.NewPaymentQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
