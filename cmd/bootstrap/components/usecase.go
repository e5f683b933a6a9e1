package components

import (
	"dh-booking/internal/usecase/commands"
	"dh-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		// Commands
		commands.NewReservationUseCase,
		commands.NewRatingUseCase,
		// Queries
		queries.NewReservationQueries,
		queries.NewAvailabilityQueries,
		queries.NewRatingQueries,
	),
)
