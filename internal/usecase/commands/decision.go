package commands

import (
	"context"
	"errors"
	"log/slog"

	"booking-ops-portal/internal/domain/decision"
	"booking-ops-portal/internal/domain/user"
	"booking-ops-portal/internal/infra"
	"booking-ops-portal/internal/pkg/clock"
	"booking-ops-portal/internal/pkg/config"
	"booking-ops-portal/internal/pkg/errs"
	"booking-ops-portal/internal/usecase/shared"

	"github.com/google/uuid"
)

type DecideRequest struct {
	Kind   decision.Kind
	ID     uuid.UUID
	Action decision.Action
	Notes  *string
}

type DecisionResult struct {
	// The record as re-read after the decision.
	Record   *decision.Record
	Strategy WriteStrategy
	// The record already held the requested status; nothing was written or sent.
	NoOp     bool
	Warnings []Warning
}

type DecisionCommands interface {
	Decide(ctx context.Context, actor user.Actor, req DecideRequest) (*DecisionResult, error)
	Approve(ctx context.Context, actor user.Actor, kind decision.Kind, id uuid.UUID) (*DecisionResult, error)
	Reject(ctx context.Context, actor user.Actor, kind decision.Kind, id uuid.UUID) (*DecisionResult, error)
	Accept(ctx context.Context, actor user.Actor, id uuid.UUID, notes *string) (*DecisionResult, error)
	Decline(ctx context.Context, actor user.Actor, id uuid.UUID, notes *string) (*DecisionResult, error)
}

type decisionUseCaseImpl struct {
	records    shared.DecisionRecordReader
	owners     shared.OwnerReader
	profiles   shared.ProfileReader
	writer     *transitionWriter
	dispatcher *SideEffectDispatcher
	clock      clock.Clock
	cfg        config.DecisionConfig
	logger     *slog.Logger
}

func NewDecisionUseCase(
	records shared.DecisionRecordReader,
	owners shared.OwnerReader,
	profiles shared.ProfileReader,
	privileged shared.PrivilegedTransitioner,
	direct shared.DirectTransitioner,
	dispatcher *SideEffectDispatcher,
	clk clock.Clock,
	cfg config.DecisionConfig,
	logger *slog.Logger,
) DecisionCommands {
	if logger == nil {
		logger = slog.Default()
	}
	return &decisionUseCaseImpl{
		records:  records,
		owners:   owners,
		profiles: profiles,
		writer: &transitionWriter{
			privileged:    privileged,
			direct:        direct,
			records:       records,
			usePrivileged: cfg.PrivilegedRPC,
			timeout:       cfg.CallTimeout,
			logger:        logger,
		},
		dispatcher: dispatcher,
		clock:      clk,
		cfg:        cfg,
		logger:     logger,
	}
}

func (uc *decisionUseCaseImpl) Approve(ctx context.Context, actor user.Actor, kind decision.Kind, id uuid.UUID) (*DecisionResult, error) {
	return uc.Decide(ctx, actor, DecideRequest{Kind: kind, ID: id, Action: decision.ActionApprove})
}

func (uc *decisionUseCaseImpl) Reject(ctx context.Context, actor user.Actor, kind decision.Kind, id uuid.UUID) (*DecisionResult, error) {
	return uc.Decide(ctx, actor, DecideRequest{Kind: kind, ID: id, Action: decision.ActionReject})
}

func (uc *decisionUseCaseImpl) Accept(ctx context.Context, actor user.Actor, id uuid.UUID, notes *string) (*DecisionResult, error) {
	return uc.Decide(ctx, actor, DecideRequest{Kind: decision.KindBookingRequest, ID: id, Action: decision.ActionAccept, Notes: notes})
}

func (uc *decisionUseCaseImpl) Decline(ctx context.Context, actor user.Actor, id uuid.UUID, notes *string) (*DecisionResult, error) {
	return uc.Decide(ctx, actor, DecideRequest{Kind: decision.KindBookingRequest, ID: id, Action: decision.ActionDecline, Notes: notes})
}

// Decide runs fetch -> authorize -> plan -> resolve context -> write ->
// notify -> email -> refresh, each step awaited before the next.
func (uc *decisionUseCaseImpl) Decide(ctx context.Context, actor user.Actor, req DecideRequest) (*DecisionResult, error) {
	variant, err := decision.VariantFor(req.Kind)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRequest)
	}
	if req.ID == uuid.Nil {
		return nil, errs.Mark(errs.New("record id is required"), ErrInvalidRequest)
	}

	rec, err := uc.fetch(ctx, variant, req.ID)
	if err != nil {
		return nil, err
	}

	owner, err := uc.resolveOwner(ctx, actor, variant, rec)
	if err != nil {
		return nil, err
	}

	if err := decision.CanDecide(actor, rec, owner); err != nil {
		uc.logger.WarnContext(ctx, "decision denied",
			"actor_id", actor.ID.String(),
			"role", actor.Role.String(),
			"kind", variant.Kind.String(),
			"record_id", rec.ID.String())
		return nil, errs.Mark(err, ErrAccessDenied)
	}

	t, err := decision.PlanTransition(rec, req.Action, req.Notes, uc.clock.Now())
	if err != nil {
		return nil, mapPlanError(err)
	}
	if t.NoOp {
		return &DecisionResult{Record: rec, Strategy: StrategyNone, NoOp: true}, nil
	}

	recipientID := decision.RecipientFor(rec, actor.ID)
	profile := uc.resolveProfile(ctx, recipientID)
	title := rec.Title
	if owner != nil && owner.Title != "" {
		title = owner.Title
	}

	outcome, err := uc.writer.commit(ctx, t, rec.ID)
	if err != nil {
		return nil, err
	}
	if outcome.alreadyApplied {
		return &DecisionResult{Record: uc.refresh(ctx, t, rec), Strategy: outcome.strategy, NoOp: true}, nil
	}

	// The transition is committed; a caller going away must not drop its side effects.
	ctx = context.WithoutCancel(ctx)

	warnings := uc.dispatcher.Dispatch(ctx, DispatchInput{
		Transition:    t,
		Record:        rec,
		RecipientID:   recipientID,
		Recipient:     profile,
		ResourceTitle: title,
	})

	return &DecisionResult{
		Record:   uc.refresh(ctx, t, rec),
		Strategy: outcome.strategy,
		Warnings: warnings,
	}, nil
}

func (uc *decisionUseCaseImpl) fetch(ctx context.Context, v decision.Variant, id uuid.UUID) (*decision.Record, error) {
	callCtx, cancel := withCallTimeout(ctx, uc.cfg.CallTimeout)
	defer cancel()

	rec, err := uc.records.FindByID(callCtx, v, id)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return rec, nil
}

// resolveOwner reads the owning resource from its own row rather than from a
// joined query, so a renamed or removed column on the join cannot block it.
func (uc *decisionUseCaseImpl) resolveOwner(ctx context.Context, actor user.Actor, v decision.Variant, rec *decision.Record) (*decision.Owner, error) {
	if !v.OwnerViaOpportunity {
		return decision.OwnerFromRecord(rec), nil
	}
	if rec.OpportunityID == nil {
		return nil, nil
	}

	callCtx, cancel := withCallTimeout(ctx, uc.cfg.CallTimeout)
	defer cancel()

	owner, err := uc.owners.OpportunityOwner(callCtx, *rec.OpportunityID)
	switch {
	case err == nil:
		return owner, nil
	case infra.IsKind(err, infra.KindNotFound):
		uc.logger.WarnContext(ctx, "owning opportunity not found", "record_id", rec.ID.String(), "opportunity_id", rec.OpportunityID.String())
		return nil, nil
	case actor.Role.Can(user.CapDecideAny):
		// Unrestricted actors do not need the owner; only the title is lost.
		uc.logger.WarnContext(ctx, "failed to resolve owning opportunity", "record_id", rec.ID.String(), "error", err.Error())
		return nil, nil
	default:
		return nil, mapStoreError(err)
	}
}

func (uc *decisionUseCaseImpl) resolveProfile(ctx context.Context, userID uuid.UUID) *user.Profile {
	callCtx, cancel := withCallTimeout(ctx, uc.cfg.CallTimeout)
	defer cancel()

	p, err := uc.profiles.ProfileByID(callCtx, userID)
	if err != nil {
		uc.logger.WarnContext(ctx, "failed to resolve recipient profile", "user_id", userID.String(), "error", err.Error())
		return nil
	}
	return p
}

// refresh re-reads the decided record; if that fails the committed state is
// derived from the transition instead.
func (uc *decisionUseCaseImpl) refresh(ctx context.Context, t *decision.Transition, rec *decision.Record) *decision.Record {
	callCtx, cancel := withCallTimeout(ctx, uc.cfg.CallTimeout)
	defer cancel()

	fresh, err := uc.records.FindByID(callCtx, t.Variant, rec.ID)
	if err != nil {
		uc.logger.WarnContext(ctx, "failed to re-read decided record", "record_id", rec.ID.String(), "error", err.Error())
		return t.Apply(rec)
	}
	return fresh
}

func mapStoreError(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrNotFound)
	case infra.IsKind(err, infra.KindSchemaHazard):
		return errs.Mark(err, ErrSchemaHazard)
	case isTimeout(err):
		return errs.Mark(err, ErrTimeout)
	default:
		return errs.Mark(err, ErrTransitionFailed)
	}
}

func mapPlanError(err error) error {
	switch {
	case errors.Is(err, decision.ErrAlreadyDecided):
		return errs.Mark(err, ErrAlreadyDecided)
	case errors.Is(err, decision.ErrInvalidAction), errors.Is(err, decision.ErrInvalidStatus):
		return errs.Mark(err, ErrInvalidAction)
	default:
		return errs.Mark(err, ErrInvalidRequest)
	}
}
