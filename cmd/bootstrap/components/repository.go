package components

import (
	"booking-ops-portal/internal/infra/db"
	"booking-ops-portal/internal/infra/email"
	"booking-ops-portal/internal/infra/readstore"
	"booking-ops-portal/internal/infra/repository"
	"booking-ops-portal/internal/pkg/config"
	"booking-ops-portal/internal/usecase/queries"
	"booking-ops-portal/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewSQLQueries,
		NewDBTX,
		fx.Annotate(
			repository.NewDecisionRepository,
			fx.As(new(shared.DecisionRecordReader)),
			fx.As(new(shared.PrivilegedTransitioner)),
			fx.As(new(shared.DirectTransitioner)),
		),
		fx.Annotate(
			repository.NewOpportunityRepository,
			fx.As(new(shared.OwnerReader)),
		),
		fx.Annotate(
			repository.NewProfileRepository,
			fx.As(new(shared.ProfileReader)),
		),
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(shared.NotificationSink)),
		),
		fx.Annotate(
			NewEmailSender,
			fx.As(new(shared.EmailSender)),
		),
		// Read-side store for queries
		fx.Annotate(
			readstore.NewDecisionReadStore,
			fx.As(new(queries.DecisionReadStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *db.Queries {
	return db.New()
}

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewEmailSender(cfg config.Config) *email.HTTPSender {
	return email.NewHTTPSender(cfg.Email)
}
