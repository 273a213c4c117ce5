package shared

import (
	"context"

	"booking-ops-portal/internal/domain/decision"
	"booking-ops-portal/internal/domain/user"

	"github.com/google/uuid"
)

// Status store collaborator contracts used by the decision workflow.
// Implementations report missing rows, missing procedures, schema hazards and
// timeouts as infra.RepositoryError kinds.

type DecisionRecordReader interface {
	FindByID(ctx context.Context, v decision.Variant, id uuid.UUID) (*decision.Record, error)
}

type OwnerReader interface {
	// Returns an infra NOT_FOUND error when the opportunity does not exist.
	OpportunityOwner(ctx context.Context, opportunityID uuid.UUID) (*decision.Owner, error)
}

type ProfileReader interface {
	ProfileByID(ctx context.Context, userID uuid.UUID) (*user.Profile, error)
}

// ProcedureResult is what a privileged transition procedure reports.
type ProcedureResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type PrivilegedTransitioner interface {
	// A procedure that is not deployed yields an infra UNDEFINED_FUNCTION error,
	// distinct from a deployed procedure answering Success=false.
	CallTransition(ctx context.Context, t *decision.Transition, id uuid.UUID) (*ProcedureResult, error)
}

type DirectTransitioner interface {
	// Conditional on the record still being in its initial status; returns rows affected.
	UpdateStatus(ctx context.Context, t *decision.Transition, id uuid.UUID) (int64, error)
}

type NotificationSink interface {
	Create(ctx context.Context, ev decision.NotificationEvent) error
}

type EmailResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type EmailSender interface {
	SendDecisionEmail(ctx context.Context, msg decision.EmailMessage) (*EmailResult, error)
}
