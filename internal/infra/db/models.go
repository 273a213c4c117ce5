package db

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type DecisionRecordRow struct {
	ID            uuid.UUID
	OpportunityID pgtype.UUID
	SubjectUserID uuid.UUID
	RequesterID   pgtype.UUID
	Title         string
	Status        string
	DecidedAt     pgtype.Timestamptz
	ResponseNotes pgtype.Text
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

type DecisionViewRow struct {
	DecisionRecordRow
	OpportunityTitle pgtype.Text
	OrganizerID      pgtype.UUID
	SubjectName      string
}

type OpportunityOwnerRow struct {
	ID          uuid.UUID
	OrganizerID uuid.UUID
	Title       string
}

type UserProfileRow struct {
	ID        uuid.UUID
	FirstName pgtype.Text
	LastName  pgtype.Text
	DjName    pgtype.Text
	Email     pgtype.Text
}

type UpdateDecisionStatusParams struct {
	ID            uuid.UUID
	Status        string
	DecidedAt     pgtype.Timestamptz
	ResponseNotes pgtype.Text
}

type CallStatusProcedureParams struct {
	ID     uuid.UUID
	Status string
	Notes  pgtype.Text
}

type CreateNotificationParams struct {
	UserID    uuid.UUID
	Title     string
	Message   string
	Type      string
	RelatedID pgtype.UUID
}

type DecisionFilterParams struct {
	Status        pgtype.Text
	OpportunityID pgtype.UUID
	OrganizerID   pgtype.UUID
	SubjectUserID pgtype.UUID
}

type ListDecisionViewsParams struct {
	DecisionFilterParams
	AfterCreatedAt pgtype.Timestamptz
	AfterID        pgtype.UUID
	Limit          int32
}
