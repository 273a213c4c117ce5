//go:build unit

package decision_test

import (
	"testing"
	"time"

	"booking-ops-portal/internal/domain/decision"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newRecord(kind decision.Kind, status decision.Status) *decision.Record {
	opp := uuid.New()
	rec := &decision.Record{
		ID:            uuid.New(),
		Kind:          kind,
		SubjectUserID: uuid.New(),
		Status:        status,
		CreatedAt:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		UpdatedAt:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	if kind == decision.KindBookingRequest {
		brand := uuid.New()
		rec.RequesterID = &brand
		rec.Title = "Rooftop Sunset Session"
	} else {
		rec.OpportunityID = &opp
	}
	return rec
}

func TestPlanTransition(t *testing.T) {
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		kind     decision.Kind
		status   decision.Status
		action   decision.Action
		notes    *string
		wantTo   decision.Status
		wantNoOp bool
		errIs    error
	}{
		{name: "approve pending application", kind: decision.KindApplication, status: decision.StatusPending, action: decision.ActionApprove, wantTo: decision.StatusApproved},
		{name: "reject pending application", kind: decision.KindApplication, status: decision.StatusPending, action: decision.ActionReject, wantTo: decision.StatusRejected},
		{name: "approve pending form response", kind: decision.KindFormResponse, status: decision.StatusPending, action: decision.ActionApprove, wantTo: decision.StatusApproved},
		{name: "accept pending booking", kind: decision.KindBookingRequest, status: decision.StatusPending, action: decision.ActionAccept, wantTo: decision.StatusAccepted},
		{name: "decline pending booking with notes", kind: decision.KindBookingRequest, status: decision.StatusPending, action: decision.ActionDecline, notes: strPtr("  schedule conflict "), wantTo: decision.StatusDeclined},
		{name: "approve already approved is a no-op", kind: decision.KindApplication, status: decision.StatusApproved, action: decision.ActionApprove, wantTo: decision.StatusApproved, wantNoOp: true},
		{name: "reject already approved", kind: decision.KindApplication, status: decision.StatusApproved, action: decision.ActionReject, errIs: decision.ErrAlreadyDecided},
		{name: "accept declined booking", kind: decision.KindBookingRequest, status: decision.StatusDeclined, action: decision.ActionAccept, errIs: decision.ErrAlreadyDecided},
		{name: "accept cancelled booking", kind: decision.KindBookingRequest, status: decision.StatusCancelled, action: decision.ActionAccept, errIs: decision.ErrAlreadyDecided},
		{name: "accept on application kind", kind: decision.KindApplication, status: decision.StatusPending, action: decision.ActionAccept, errIs: decision.ErrInvalidAction},
		{name: "approve on booking kind", kind: decision.KindBookingRequest, status: decision.StatusPending, action: decision.ActionApprove, errIs: decision.ErrInvalidAction},
		{name: "notes on application kind", kind: decision.KindApplication, status: decision.StatusPending, action: decision.ActionApprove, notes: strPtr("nice set"), errIs: decision.ErrNotesNotSupported},
		{name: "blank notes on application kind are ignored", kind: decision.KindApplication, status: decision.StatusPending, action: decision.ActionApprove, notes: strPtr("   "), wantTo: decision.StatusApproved},
		{name: "unknown status", kind: decision.KindApplication, status: decision.Status("archived"), action: decision.ActionApprove, errIs: decision.ErrInvalidStatus},
		{name: "cancelled is not an application status", kind: decision.KindApplication, status: decision.StatusCancelled, action: decision.ActionApprove, errIs: decision.ErrInvalidStatus},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := newRecord(tc.kind, tc.status)

			tr, err := decision.PlanTransition(rec, tc.action, tc.notes, now)

			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, tr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantTo, tr.To)
			assert.Equal(t, tc.status, tr.From)
			assert.Equal(t, tc.wantNoOp, tr.NoOp)
		})
	}
}

func TestPlanTransition_NotesAreTrimmed(t *testing.T) {
	rec := newRecord(decision.KindBookingRequest, decision.StatusPending)

	tr, err := decision.PlanTransition(rec, decision.ActionDecline, strPtr("  schedule conflict \n"), time.Now())

	require.NoError(t, err)
	require.NotNil(t, tr.Notes)
	assert.Equal(t, "schedule conflict", *tr.Notes)
}

func TestPlanTransition_NotesTooLong(t *testing.T) {
	rec := newRecord(decision.KindBookingRequest, decision.StatusPending)
	long := make([]rune, 2001)
	for i := range long {
		long[i] = 'a'
	}
	notes := string(long)

	_, err := decision.PlanTransition(rec, decision.ActionDecline, &notes, time.Now())

	require.ErrorIs(t, err, decision.ErrNotesTooLong)
}

func TestTransition_Apply(t *testing.T) {
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

	t.Run("sets status, decision time and notes", func(t *testing.T) {
		rec := newRecord(decision.KindBookingRequest, decision.StatusPending)
		before := rec.Clone()

		tr, err := decision.PlanTransition(rec, decision.ActionDecline, strPtr("schedule conflict"), now)
		require.NoError(t, err)
		got := tr.Apply(rec)

		want := before.Clone()
		want.Status = decision.StatusDeclined
		want.DecidedAt = &now
		want.UpdatedAt = now
		want.ResponseNotes = strPtr("schedule conflict")

		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("applied record mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(before, rec); diff != "" {
			t.Errorf("input record was mutated (-want +got):\n%s", diff)
		}
	})

	t.Run("no-op leaves the record as it was", func(t *testing.T) {
		rec := newRecord(decision.KindApplication, decision.StatusApproved)

		tr, err := decision.PlanTransition(rec, decision.ActionApprove, nil, now)
		require.NoError(t, err)

		if diff := cmp.Diff(rec, tr.Apply(rec)); diff != "" {
			t.Errorf("no-op changed the record (-want +got):\n%s", diff)
		}
	})
}

func TestVariantFor(t *testing.T) {
	v, err := decision.VariantFor(decision.KindFormResponse)
	require.NoError(t, err)
	assert.Equal(t, "application_form_responses", v.Table)
	assert.Equal(t, "admin_update_form_response_status", v.PrivilegedProcedure)
	assert.Equal(t, []decision.Action{decision.ActionApprove, decision.ActionReject}, v.Actions())

	b, err := decision.VariantFor(decision.KindBookingRequest)
	require.NoError(t, err)
	assert.True(t, b.IsTerminal(decision.StatusCancelled))
	assert.False(t, b.IsTerminal(decision.StatusPending))
	assert.Equal(t, "booking_declined", b.NotificationType(decision.StatusDeclined))

	_, err = decision.VariantFor(decision.Kind("invoice"))
	require.ErrorIs(t, err, decision.ErrUnknownKind)
}
