package request

import (
	"booking-ops-portal/internal/domain/decision"
	"booking-ops-portal/internal/usecase/queries"

	"github.com/google/uuid"
)

type DecisionRequest struct {
	Notes *string `json:"notes" binding:"omitempty,max=2000"`
}

type ListDecisionsQuery struct {
	Status        string `form:"status" binding:"omitempty,oneof=pending approved rejected accepted declined cancelled"`
	OpportunityID string `form:"opportunity_id" binding:"omitempty,uuid"`
	OrganizerID   string `form:"organizer_id" binding:"omitempty,uuid"`
	SubjectUserID string `form:"dj_id" binding:"omitempty,uuid"`
	Limit         int    `form:"limit" binding:"omitempty,min=1"`
	After         string `form:"after"`
}

func (q *ListDecisionsQuery) ToFilter() queries.ListFilter {
	var f queries.ListFilter
	if q.Status != "" {
		s := decision.Status(q.Status)
		f.Status = &s
	}
	f.OpportunityID = parseOptionalUUID(q.OpportunityID)
	f.OrganizerID = parseOptionalUUID(q.OrganizerID)
	f.SubjectUserID = parseOptionalUUID(q.SubjectUserID)
	return f
}

func (q *ListDecisionsQuery) Cursor() *queries.Cursor {
	if q.After == "" {
		return nil
	}
	return &queries.Cursor{After: q.After}
}

// binding has already validated the format
func parseOptionalUUID(s string) *uuid.UUID {
	if s == "" {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}
