package repository

import (
	"context"

	"booking-ops-portal/internal/domain/decision"
	"booking-ops-portal/internal/infra"
	"booking-ops-portal/internal/infra/db"
	"booking-ops-portal/internal/infra/repository/converter"
)

type NotificationWriteQueries interface {
	CreateNotification(ctx context.Context, db db.DBTX, arg db.CreateNotificationParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      db.DBTX
}

func NewNotificationRepository(queries *db.Queries, dbtx db.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      dbtx,
	}
}

func (r *NotificationRepository) Create(ctx context.Context, ev decision.NotificationEvent) error {
	if err := r.queries.CreateNotification(ctx, r.db, converter.NotificationToParams(ev)); err != nil {
		return infra.WrapRepoErr("failed to create notification", err)
	}
	return nil
}
