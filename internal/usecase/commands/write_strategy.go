package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"booking-ops-portal/internal/domain/decision"
	"booking-ops-portal/internal/infra"
	"booking-ops-portal/internal/pkg/errs"
	"booking-ops-portal/internal/usecase/shared"

	"github.com/google/uuid"
)

type WriteStrategy string

const (
	StrategyNone       WriteStrategy = "none"
	StrategyPrivileged WriteStrategy = "privileged"
	StrategyDirect     WriteStrategy = "direct"
)

// writeResult is what one strategy reports. committed=false with a nil err
// means "not applicable, try the next strategy".
type writeResult struct {
	committed bool
	// The record was already in the target status before this write.
	alreadyApplied bool
	err            error
}

type writeStrategy struct {
	name WriteStrategy
	run  func(ctx context.Context, t *decision.Transition, id uuid.UUID) writeResult
}

// transitionWriter commits a transition through the privileged procedure and
// degrades to a conditional direct update when the procedure is unavailable or
// refuses. The direct update is a single attempt, not a retry loop.
type transitionWriter struct {
	privileged    shared.PrivilegedTransitioner
	direct        shared.DirectTransitioner
	records       shared.DecisionRecordReader
	usePrivileged bool
	timeout       time.Duration
	logger        *slog.Logger
}

type commitOutcome struct {
	strategy       WriteStrategy
	alreadyApplied bool
}

func (w *transitionWriter) strategies() []writeStrategy {
	out := make([]writeStrategy, 0, 2)
	if w.usePrivileged && w.privileged != nil {
		out = append(out, writeStrategy{name: StrategyPrivileged, run: w.runPrivileged})
	}
	return append(out, writeStrategy{name: StrategyDirect, run: w.runDirect})
}

func (w *transitionWriter) commit(ctx context.Context, t *decision.Transition, id uuid.UUID) (commitOutcome, error) {
	var (
		lastErr      error
		sawHazard    bool
		inconclusive bool
	)

	for _, s := range w.strategies() {
		res := s.run(ctx, t, id)
		if res.committed {
			w.logger.InfoContext(ctx, "decision transition committed",
				"strategy", string(s.name),
				"kind", t.Variant.Kind.String(),
				"record_id", id.String(),
				"status", t.To.String())
			// When the earlier attempt timed out it may have been the one that
			// applied the change, so the caller still owns the side effects.
			return commitOutcome{strategy: s.name, alreadyApplied: res.alreadyApplied && !inconclusive}, nil
		}
		if res.err == nil {
			continue
		}
		if errs.Is(res.err, ErrNotFound) || errs.Is(res.err, ErrAlreadyDecided) {
			return commitOutcome{strategy: StrategyNone}, res.err
		}
		if infra.IsKind(res.err, infra.KindSchemaHazard) {
			sawHazard = true
		}
		if isTimeout(res.err) {
			inconclusive = true
		}
		lastErr = res.err
		w.logger.WarnContext(ctx, "decision write strategy failed",
			"strategy", string(s.name),
			"kind", t.Variant.Kind.String(),
			"record_id", id.String(),
			"error", res.err.Error())
	}

	switch {
	case sawHazard:
		return commitOutcome{strategy: StrategyNone}, errs.Mark(lastErr, ErrSchemaHazard)
	case isTimeout(lastErr):
		return commitOutcome{strategy: StrategyNone}, errs.Mark(lastErr, ErrTimeout)
	case lastErr == nil:
		return commitOutcome{strategy: StrategyNone}, ErrTransitionFailed
	default:
		return commitOutcome{strategy: StrategyNone}, errs.Mark(lastErr, ErrTransitionFailed)
	}
}

func (w *transitionWriter) runPrivileged(ctx context.Context, t *decision.Transition, id uuid.UUID) writeResult {
	callCtx, cancel := withCallTimeout(ctx, w.timeout)
	defer cancel()

	res, err := w.privileged.CallTransition(callCtx, t, id)
	switch {
	case err != nil && infra.IsKind(err, infra.KindUndefinedFunction):
		w.logger.InfoContext(ctx, "privileged procedure unavailable, falling back to direct update",
			"procedure", t.Variant.PrivilegedProcedure)
		return writeResult{}
	case err != nil:
		return writeResult{err: err}
	case res == nil:
		return writeResult{err: errs.New("privileged procedure returned no result")}
	case !res.Success:
		reason := "procedure refused the update"
		if infra.IsProcedureMissingMessage(res.Error) {
			reason = "procedure reported itself unavailable"
		}
		w.logger.InfoContext(ctx, "privileged procedure did not apply the transition, falling back to direct update",
			"procedure", t.Variant.PrivilegedProcedure,
			"reason", reason,
			"error", res.Error)
		return writeResult{}
	default:
		return writeResult{committed: true}
	}
}

func (w *transitionWriter) runDirect(ctx context.Context, t *decision.Transition, id uuid.UUID) writeResult {
	callCtx, cancel := withCallTimeout(ctx, w.timeout)
	defer cancel()

	rows, err := w.direct.UpdateStatus(callCtx, t, id)
	if err != nil {
		return writeResult{err: err}
	}
	if rows > 0 {
		return writeResult{committed: true}
	}

	// Nothing matched the pending guard: find out what the record holds now.
	readCtx, readCancel := withCallTimeout(ctx, w.timeout)
	defer readCancel()

	current, err := w.records.FindByID(readCtx, t.Variant, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return writeResult{err: errs.Mark(err, ErrNotFound)}
		}
		return writeResult{err: err}
	}
	if current.Status == t.To {
		return writeResult{committed: true, alreadyApplied: true}
	}
	return writeResult{err: errs.Wrapf(ErrAlreadyDecided, "record is %s", current.Status)}
}

func isTimeout(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, context.DeadlineExceeded) || infra.IsKind(err, infra.KindTimeout)
}
