//go:build unit || e2e

package builder

import (
	"time"

	"booking-ops-portal/internal/domain/decision"
	"booking-ops-portal/internal/usecase/commands"
	"booking-ops-portal/internal/usecase/queries"

	"github.com/google/uuid"
)

type DecisionBuilder struct {
	ID               uuid.UUID
	Kind             decision.Kind
	OpportunityID    *uuid.UUID
	OpportunityTitle string
	OrganizerID      *uuid.UUID
	SubjectUserID    uuid.UUID
	SubjectName      string
	RequesterID      *uuid.UUID
	Title            string
	Status           decision.Status
	DecidedAt        *time.Time
	ResponseNotes    *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewApplicationBuilder starts from a pending application to an opportunity
// organized by a fresh brand.
func NewApplicationBuilder() *DecisionBuilder {
	now := time.Now().UTC().Truncate(time.Second)
	opp := uuid.New()
	organizer := uuid.New()
	return &DecisionBuilder{
		ID:               uuid.New(),
		Kind:             decision.KindApplication,
		OpportunityID:    &opp,
		OpportunityTitle: "Friday Night Residency",
		OrganizerID:      &organizer,
		SubjectUserID:    uuid.New(),
		SubjectName:      "DJ Nova",
		Status:           decision.StatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// NewBookingRequestBuilder starts from a pending booking request sent by a
// fresh brand to a DJ.
func NewBookingRequestBuilder() *DecisionBuilder {
	now := time.Now().UTC().Truncate(time.Second)
	brand := uuid.New()
	return &DecisionBuilder{
		ID:            uuid.New(),
		Kind:          decision.KindBookingRequest,
		OrganizerID:   &brand,
		SubjectUserID: uuid.New(),
		SubjectName:   "DJ Nova",
		RequesterID:   &brand,
		Title:         "Rooftop Launch Party",
		Status:        decision.StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *DecisionBuilder) With(mutate func(*DecisionBuilder)) *DecisionBuilder {
	mutate(b)
	return b
}

func (b *DecisionBuilder) WithStatus(s decision.Status) *DecisionBuilder {
	b.Status = s
	return b
}

func (b *DecisionBuilder) Decided(s decision.Status, at time.Time, notes *string) *DecisionBuilder {
	b.Status = s
	b.DecidedAt = &at
	b.ResponseNotes = notes
	b.UpdatedAt = at
	return b
}

// Build methods
func (b *DecisionBuilder) BuildDomain() *decision.Record {
	return &decision.Record{
		ID:            b.ID,
		Kind:          b.Kind,
		OpportunityID: b.OpportunityID,
		SubjectUserID: b.SubjectUserID,
		RequesterID:   b.RequesterID,
		Title:         b.Title,
		Status:        b.Status,
		DecidedAt:     b.DecidedAt,
		ResponseNotes: b.ResponseNotes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *DecisionBuilder) BuildView() *queries.DecisionView {
	return &queries.DecisionView{
		ID:               b.ID,
		Kind:             b.Kind.String(),
		OpportunityID:    b.OpportunityID,
		OpportunityTitle: b.OpportunityTitle,
		OrganizerID:      b.OrganizerID,
		SubjectUserID:    b.SubjectUserID,
		SubjectName:      b.SubjectName,
		RequesterID:      b.RequesterID,
		Title:            b.Title,
		Status:           b.Status.String(),
		DecidedAt:        b.DecidedAt,
		ResponseNotes:    b.ResponseNotes,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

func (b *DecisionBuilder) BuildResult(strategy commands.WriteStrategy, warnings ...commands.Warning) *commands.DecisionResult {
	return &commands.DecisionResult{
		Record:   b.BuildDomain(),
		Strategy: strategy,
		Warnings: warnings,
	}
}
