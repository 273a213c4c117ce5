package repository

import (
	"context"

	"booking-ops-portal/internal/domain/decision"
	"booking-ops-portal/internal/infra"
	"booking-ops-portal/internal/infra/db"
	"booking-ops-portal/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OpportunityQueries interface {
	GetOpportunityOwner(ctx context.Context, db db.DBTX, id uuid.UUID) (db.OpportunityOwnerRow, error)
}

type OpportunityRepository struct {
	queries OpportunityQueries
	db      db.DBTX
}

func NewOpportunityRepository(queries *db.Queries, dbtx db.DBTX) *OpportunityRepository {
	return &OpportunityRepository{queries: queries, db: dbtx}
}

func (r *OpportunityRepository) OpportunityOwner(ctx context.Context, opportunityID uuid.UUID) (*decision.Owner, error) {
	row, err := r.queries.GetOpportunityOwner(ctx, r.db, opportunityID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NewRepoErr(infra.KindNotFound, "opportunity not found")
		}
		return nil, infra.WrapRepoErr("failed to find opportunity owner", err)
	}
	return &decision.Owner{
		ResourceID:  row.ID,
		OrganizerID: row.OrganizerID,
		Title:       row.Title,
	}, nil
}
