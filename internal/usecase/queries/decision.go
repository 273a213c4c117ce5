package queries

import (
	"context"
	"time"

	"booking-ops-portal/internal/domain/decision"
	"booking-ops-portal/internal/domain/user"
	"booking-ops-portal/internal/infra"
	"booking-ops-portal/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrDecisionNotFound = errs.New("decision view not found")
	ErrDecisionAccess   = errs.New("decision view not accessible")
	ErrInvalidCursor    = errs.New("invalid cursor")
	ErrInvalidKind      = errs.New("invalid decision kind")
	ErrInvalidStatus    = errs.New("invalid status filter")
)

// DecisionView is the read model listed on the operations portal.
type DecisionView struct {
	ID               uuid.UUID  `json:"id"`
	Kind             string     `json:"kind"`
	OpportunityID    *uuid.UUID `json:"opportunity_id,omitempty"`
	OpportunityTitle string     `json:"opportunity_title,omitempty"`
	OrganizerID      *uuid.UUID `json:"organizer_id,omitempty"`
	SubjectUserID    uuid.UUID  `json:"subject_user_id"`
	SubjectName      string     `json:"subject_name"`
	RequesterID      *uuid.UUID `json:"requester_id,omitempty"`
	Title            string     `json:"title,omitempty"`
	Status           string     `json:"status"`
	DecidedAt        *time.Time `json:"decided_at,omitempty"`
	ResponseNotes    *string    `json:"response_notes,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type ListFilter struct {
	Status        *decision.Status
	OpportunityID *uuid.UUID
	// Applications: organizer of the opportunity. Booking requests: requesting brand.
	OrganizerID   *uuid.UUID
	SubjectUserID *uuid.UUID
}

type PendingSummary struct {
	Applications    int64 `json:"applications"`
	FormResponses   int64 `json:"form_responses"`
	BookingRequests int64 `json:"booking_requests"`
}

type DecisionReadStore interface {
	FindByID(ctx context.Context, v decision.Variant, id uuid.UUID) (*DecisionView, error)
	List(ctx context.Context, v decision.Variant, filter ListFilter, after *Keyset, limit int32) ([]*DecisionView, error)
	Count(ctx context.Context, v decision.Variant, filter ListFilter) (int64, error)
}

type DecisionQueries interface {
	GetByID(ctx context.Context, actor user.Actor, kind decision.Kind, id uuid.UUID) (*DecisionView, error)
	List(ctx context.Context, actor user.Actor, kind decision.Kind, filter ListFilter, cursor *Cursor, limit int) ([]*DecisionView, *Cursor, error)
	PendingSummary(ctx context.Context, actor user.Actor) (*PendingSummary, error)
}

type decisionQueriesImpl struct {
	store DecisionReadStore
}

func NewDecisionQueries(store DecisionReadStore) DecisionQueries {
	return &decisionQueriesImpl{store: store}
}

func (q *decisionQueriesImpl) GetByID(ctx context.Context, actor user.Actor, kind decision.Kind, id uuid.UUID) (*DecisionView, error) {
	v, err := decision.VariantFor(kind)
	if err != nil {
		return nil, ErrInvalidKind
	}

	view, err := q.store.FindByID(ctx, v, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDecisionNotFound
		}
		return nil, err
	}
	if !canView(actor, view) {
		return nil, ErrDecisionAccess
	}
	return view, nil
}

func (q *decisionQueriesImpl) List(ctx context.Context, actor user.Actor, kind decision.Kind, filter ListFilter, cursor *Cursor, limit int) ([]*DecisionView, *Cursor, error) {
	v, err := decision.VariantFor(kind)
	if err != nil {
		return nil, nil, ErrInvalidKind
	}
	if filter.Status != nil && !v.IsValidStatus(*filter.Status) {
		return nil, nil, ErrInvalidStatus
	}
	filter = scopeFilter(actor, filter)

	var after *Keyset
	if cursor != nil && cursor.After != "" {
		createdAt, id, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		after = &Keyset{CreatedAt: createdAt, ID: id}
	}

	limit = ValidateLimit(limit)
	rows, err := q.store.List(ctx, v, filter, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

// PendingSummary counts pending records per kind, visible to actor.
func (q *decisionQueriesImpl) PendingSummary(ctx context.Context, actor user.Actor) (*PendingSummary, error) {
	pending := decision.StatusPending
	filter := scopeFilter(actor, ListFilter{Status: &pending})

	var summary PendingSummary
	g, gctx := errgroup.WithContext(ctx)

	count := func(v decision.Variant, dst *int64) {
		g.Go(func() error {
			n, err := q.store.Count(gctx, v, filter)
			if err != nil {
				return errs.Wrapf(err, "count pending %s", v.Kind)
			}
			*dst = n
			return nil
		})
	}
	count(decision.ApplicationVariant, &summary.Applications)
	count(decision.FormResponseVariant, &summary.FormResponses)
	count(decision.BookingRequestVariant, &summary.BookingRequests)

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &summary, nil
}

// Brands see what they organize or requested, DJs what they applied to or
// were asked for; staff and admins see everything.
func scopeFilter(actor user.Actor, filter ListFilter) ListFilter {
	switch actor.Role {
	case user.RoleBrand:
		id := actor.ID
		filter.OrganizerID = &id
	case user.RoleDJ:
		id := actor.ID
		filter.SubjectUserID = &id
	}
	return filter
}

func canView(actor user.Actor, view *DecisionView) bool {
	switch actor.Role {
	case user.RoleAdmin, user.RoleStaff:
		return true
	case user.RoleBrand:
		return (view.OrganizerID != nil && *view.OrganizerID == actor.ID) ||
			(view.RequesterID != nil && *view.RequesterID == actor.ID)
	case user.RoleDJ:
		return view.SubjectUserID == actor.ID
	default:
		return false
	}
}
