package repository

import (
	"context"
	"encoding/json"

	"booking-ops-portal/internal/domain/decision"
	"booking-ops-portal/internal/infra"
	"booking-ops-portal/internal/infra/db"
	"booking-ops-portal/internal/infra/repository/converter"
	"booking-ops-portal/internal/pkg/pgconv"
	"booking-ops-portal/internal/usecase/shared"

	"github.com/google/uuid"
)

type DecisionQueries interface {
	GetDecisionRecord(ctx context.Context, db db.DBTX, kind decision.Kind, id uuid.UUID) (db.DecisionRecordRow, error)
	CallStatusProcedure(ctx context.Context, db db.DBTX, kind decision.Kind, arg db.CallStatusProcedureParams) ([]byte, error)
	UpdateDecisionStatus(ctx context.Context, db db.DBTX, kind decision.Kind, arg db.UpdateDecisionStatusParams) (int64, error)
}

// DecisionRepository reads decision records and writes their terminal status,
// either through the privileged procedure or by a guarded direct update.
type DecisionRepository struct {
	queries DecisionQueries
	db      db.DBTX
}

func NewDecisionRepository(queries *db.Queries, dbtx db.DBTX) *DecisionRepository {
	return &DecisionRepository{
		queries: queries,
		db:      dbtx,
	}
}

func (r *DecisionRepository) FindByID(ctx context.Context, v decision.Variant, id uuid.UUID) (*decision.Record, error) {
	row, err := r.queries.GetDecisionRecord(ctx, r.db, v.Kind, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NewRepoErr(infra.KindNotFound, v.ResourceNoun+" not found")
		}
		return nil, infra.WrapRepoErr("failed to find "+v.ResourceNoun, err)
	}

	rec, err := converter.RecordFromRow(v.Kind, row)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid "+v.ResourceNoun+" row", err)
	}
	return rec, nil
}

func (r *DecisionRepository) CallTransition(ctx context.Context, t *decision.Transition, id uuid.UUID) (*shared.ProcedureResult, error) {
	raw, err := r.queries.CallStatusProcedure(ctx, r.db, t.Variant.Kind, converter.TransitionToProcedureParams(t, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to call "+t.Variant.PrivilegedProcedure, err)
	}

	var res shared.ProcedureResult
	if len(raw) == 0 {
		return nil, infra.NewRepoErr(infra.KindRemoteFailure, t.Variant.PrivilegedProcedure+" returned no result")
	}
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, infra.WrapRepoErr("failed to decode "+t.Variant.PrivilegedProcedure+" result", err)
	}
	return &res, nil
}

func (r *DecisionRepository) UpdateStatus(ctx context.Context, t *decision.Transition, id uuid.UUID) (int64, error) {
	rows, err := r.queries.UpdateDecisionStatus(ctx, r.db, t.Variant.Kind, converter.TransitionToUpdateParams(t, id))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update "+t.Variant.ResourceNoun+" status", err)
	}
	return rows, nil
}
