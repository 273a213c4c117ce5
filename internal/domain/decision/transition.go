package decision

import (
	"errors"
	"strings"
	"time"
)

const maxResponseNotesLength = 2000

var ErrNotesTooLong = errors.New("response notes too long")

// Transition is a validated request to move a record into a terminal state.
type Transition struct {
	Variant Variant
	Action  Action
	From    Status
	To      Status
	Notes   *string
	At      time.Time
	// Set when the record already holds To; nothing is written.
	NoOp bool
}

// PlanTransition validates action against the record's current status.
// Deciding a record that already holds the requested terminal status is a
// no-op; any other terminal status yields ErrAlreadyDecided.
func PlanTransition(rec *Record, action Action, notes *string, now time.Time) (*Transition, error) {
	v, err := VariantFor(rec.Kind)
	if err != nil {
		return nil, err
	}
	if !v.IsValidStatus(rec.Status) {
		return nil, ErrInvalidStatus
	}
	target, ok := v.TargetFor(action)
	if !ok {
		return nil, ErrInvalidAction
	}

	normalized, err := normalizeNotes(v, notes)
	if err != nil {
		return nil, err
	}

	t := &Transition{
		Variant: v,
		Action:  action,
		From:    rec.Status,
		To:      target,
		Notes:   normalized,
		At:      now,
	}

	switch {
	case rec.Status == v.Initial:
		return t, nil
	case rec.Status == target:
		t.NoOp = true
		return t, nil
	default:
		return nil, ErrAlreadyDecided
	}
}

func normalizeNotes(v Variant, notes *string) (*string, error) {
	if notes == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*notes)
	if trimmed == "" {
		return nil, nil
	}
	if !v.SupportsNotes {
		return nil, ErrNotesNotSupported
	}
	if len([]rune(trimmed)) > maxResponseNotesLength {
		return nil, ErrNotesTooLong
	}
	return &trimmed, nil
}

// Apply returns a copy of rec as it looks once the transition committed.
func (t *Transition) Apply(rec *Record) *Record {
	out := rec.Clone()
	if t.NoOp {
		return out
	}
	at := t.At
	out.Status = t.To
	out.DecidedAt = &at
	out.UpdatedAt = at
	if t.Variant.SupportsNotes && t.Notes != nil {
		n := *t.Notes
		out.ResponseNotes = &n
	}
	return out
}
