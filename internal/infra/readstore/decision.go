package readstore

import (
	"context"

	"booking-ops-portal/internal/domain/decision"
	"booking-ops-portal/internal/infra"
	"booking-ops-portal/internal/infra/db"
	"booking-ops-portal/internal/pkg/pgconv"
	"booking-ops-portal/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type DecisionViewQueries interface {
	GetDecisionView(ctx context.Context, db db.DBTX, kind decision.Kind, id uuid.UUID) (db.DecisionViewRow, error)
	ListDecisionViews(ctx context.Context, db db.DBTX, kind decision.Kind, arg db.ListDecisionViewsParams) ([]db.DecisionViewRow, error)
	CountDecisions(ctx context.Context, db db.DBTX, kind decision.Kind, arg db.DecisionFilterParams) (int64, error)
}

type DecisionReadStore struct {
	queries DecisionViewQueries
	db      db.DBTX
}

func NewDecisionReadStore(queries *db.Queries, dbtx db.DBTX) *DecisionReadStore {
	return &DecisionReadStore{
		queries: queries,
		db:      dbtx,
	}
}

func (s *DecisionReadStore) FindByID(ctx context.Context, v decision.Variant, id uuid.UUID) (*queries.DecisionView, error) {
	row, err := s.queries.GetDecisionView(ctx, s.db, v.Kind, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NewRepoErr(infra.KindNotFound, v.ResourceNoun+" not found")
		}
		return nil, infra.WrapRepoErr("failed to get "+v.ResourceNoun+" view", err)
	}
	return toDecisionView(v.Kind, row), nil
}

func (s *DecisionReadStore) List(ctx context.Context, v decision.Variant, filter queries.ListFilter, after *queries.Keyset, limit int32) ([]*queries.DecisionView, error) {
	params := db.ListDecisionViewsParams{
		DecisionFilterParams: toFilterParams(filter),
		Limit:                limit,
	}
	if after != nil {
		params.AfterCreatedAt = pgconv.TimeToPgtype(after.CreatedAt)
		params.AfterID = pgconv.UUIDToPgtype(after.ID)
	}

	rows, err := s.queries.ListDecisionViews(ctx, s.db, v.Kind, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list "+v.ResourceNoun+" views", err)
	}

	result := make([]*queries.DecisionView, len(rows))
	for i, row := range rows {
		result[i] = toDecisionView(v.Kind, row)
	}
	return result, nil
}

func (s *DecisionReadStore) Count(ctx context.Context, v decision.Variant, filter queries.ListFilter) (int64, error) {
	n, err := s.queries.CountDecisions(ctx, s.db, v.Kind, toFilterParams(filter))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count "+v.ResourceNoun+" records", err)
	}
	return n, nil
}

func toFilterParams(f queries.ListFilter) db.DecisionFilterParams {
	status := pgtype.Text{}
	if f.Status != nil {
		status = pgtype.Text{String: f.Status.String(), Valid: true}
	}
	return db.DecisionFilterParams{
		Status:        status,
		OpportunityID: pgconv.UUIDPtrToPgtype(f.OpportunityID),
		OrganizerID:   pgconv.UUIDPtrToPgtype(f.OrganizerID),
		SubjectUserID: pgconv.UUIDPtrToPgtype(f.SubjectUserID),
	}
}

func toDecisionView(kind decision.Kind, row db.DecisionViewRow) *queries.DecisionView {
	view := &queries.DecisionView{
		ID:            row.ID,
		Kind:          kind.String(),
		OpportunityID: pgconv.UUIDPtrFromPgtype(row.OpportunityID),
		OrganizerID:   pgconv.UUIDPtrFromPgtype(row.OrganizerID),
		SubjectUserID: row.SubjectUserID,
		SubjectName:   row.SubjectName,
		RequesterID:   pgconv.UUIDPtrFromPgtype(row.RequesterID),
		Title:         row.Title,
		Status:        row.Status,
		DecidedAt:     pgconv.TimePtrFromPgtype(row.DecidedAt),
		ResponseNotes: pgconv.StringPtrFromPgtype(row.ResponseNotes),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	if row.OpportunityTitle.Valid {
		view.OpportunityTitle = row.OpportunityTitle.String
	}
	return view
}
