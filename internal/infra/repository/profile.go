package repository

import (
	"context"

	"booking-ops-portal/internal/domain/user"
	"booking-ops-portal/internal/infra"
	"booking-ops-portal/internal/infra/db"
	"booking-ops-portal/internal/infra/repository/converter"
	"booking-ops-portal/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ProfileQueries interface {
	GetUserProfile(ctx context.Context, db db.DBTX, id uuid.UUID) (db.UserProfileRow, error)
}

type ProfileRepository struct {
	queries ProfileQueries
	db      db.DBTX
}

func NewProfileRepository(queries *db.Queries, dbtx db.DBTX) *ProfileRepository {
	return &ProfileRepository{queries: queries, db: dbtx}
}

func (r *ProfileRepository) ProfileByID(ctx context.Context, userID uuid.UUID) (*user.Profile, error) {
	row, err := r.queries.GetUserProfile(ctx, r.db, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NewRepoErr(infra.KindNotFound, "user profile not found")
		}
		return nil, infra.WrapRepoErr("failed to find user profile", err)
	}
	return converter.ProfileFromRow(row), nil
}
