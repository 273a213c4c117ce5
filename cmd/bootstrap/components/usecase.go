package components

import (
	"log/slog"

	"booking-ops-portal/internal/pkg/clock"
	"booking-ops-portal/internal/pkg/config"
	"booking-ops-portal/internal/usecase"
	"booking-ops-portal/internal/usecase/commands"
	"booking-ops-portal/internal/usecase/queries"
	"booking-ops-portal/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) config.DecisionConfig {
		return cfg.Decision
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewSideEffectDispatcher,
		commands.NewDecisionUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewDecisionQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewSideEffectDispatcher(notifications shared.NotificationSink, sender shared.EmailSender, cfg config.DecisionConfig, logger *slog.Logger) *commands.SideEffectDispatcher {
	return commands.NewSideEffectDispatcher(notifications, sender, cfg.CallTimeout, logger)
}
