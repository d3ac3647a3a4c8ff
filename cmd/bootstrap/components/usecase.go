package components

import (
	"math/rand/v2"

	"plugin-storefront/internal/pkg/clock"
	"plugin-storefront/internal/usecase/commands"
	"plugin-storefront/internal/usecase/queries"
	"plugin-storefront/internal/usecase/release"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseReleaseModule,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewScheduleRand,
)

var usecaseReleaseModule = fx.Module("usecase/release",
	fx.Provide(
		release.NewScheduler,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewPromoCommands,
		commands.NewCheckoutCommands,
		commands.NewPaymentCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPromoQueries,
	),
)

// NewScheduleRand seeds release-time draws; they need no cryptographic strength.
func NewScheduleRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
