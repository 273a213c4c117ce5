package converter

import (
	"booking-ops-portal/internal/domain/decision"
	"booking-ops-portal/internal/domain/user"
	"booking-ops-portal/internal/infra/db"
	"booking-ops-portal/internal/pkg/pgconv"

	"github.com/google/uuid"
)

func RecordFromRow(kind decision.Kind, row db.DecisionRecordRow) (*decision.Record, error) {
	rec := &decision.Record{
		ID:            row.ID,
		Kind:          kind,
		OpportunityID: pgconv.UUIDPtrFromPgtype(row.OpportunityID),
		SubjectUserID: row.SubjectUserID,
		RequesterID:   pgconv.UUIDPtrFromPgtype(row.RequesterID),
		Title:         row.Title,
		Status:        decision.Status(row.Status),
		DecidedAt:     pgconv.TimePtrFromPgtype(row.DecidedAt),
		ResponseNotes: pgconv.StringPtrFromPgtype(row.ResponseNotes),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return rec, nil
}

func TransitionToUpdateParams(t *decision.Transition, id uuid.UUID) db.UpdateDecisionStatusParams {
	return db.UpdateDecisionStatusParams{
		ID:            id,
		Status:        t.To.String(),
		DecidedAt:     pgconv.TimeToPgtype(t.At),
		ResponseNotes: pgconv.StringPtrToPgtype(t.Notes),
	}
}

func TransitionToProcedureParams(t *decision.Transition, id uuid.UUID) db.CallStatusProcedureParams {
	return db.CallStatusProcedureParams{
		ID:     id,
		Status: t.To.String(),
		Notes:  pgconv.StringPtrToPgtype(t.Notes),
	}
}

func ProfileFromRow(row db.UserProfileRow) *user.Profile {
	return user.NewProfile(row.ID, row.FirstName.String, row.LastName.String, row.DjName.String, row.Email.String)
}

func NotificationToParams(ev decision.NotificationEvent) db.CreateNotificationParams {
	return db.CreateNotificationParams{
		UserID:    ev.UserID,
		Title:     ev.Title,
		Message:   ev.Message,
		Type:      ev.Type,
		RelatedID: pgconv.UUIDToPgtype(ev.RelatedID),
	}
}
