//go:build unit

package queries

import (
	"context"
	"sync"
	"testing"
	"time"

	"booking-ops-portal/internal/domain/decision"
	"booking-ops-portal/internal/domain/user"
	"booking-ops-portal/internal/infra"
	"booking-ops-portal/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReadStore struct {
	mu      sync.Mutex
	views   map[uuid.UUID]*DecisionView
	list    []*DecisionView
	counts  map[decision.Kind]int64
	filters []ListFilter
	after   *Keyset
	limit   int32
	failOn  decision.Kind
}

func (f *fakeReadStore) FindByID(_ context.Context, _ decision.Variant, id uuid.UUID) (*DecisionView, error) {
	v, ok := f.views[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "not found")
	}
	return v, nil
}

func (f *fakeReadStore) List(_ context.Context, _ decision.Variant, filter ListFilter, after *Keyset, limit int32) ([]*DecisionView, error) {
	f.filters = append(f.filters, filter)
	f.after = after
	f.limit = limit
	if int(limit) < len(f.list) {
		return f.list[:limit], nil
	}
	return f.list, nil
}

func (f *fakeReadStore) Count(_ context.Context, v decision.Variant, filter ListFilter) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filters = append(f.filters, filter)
	if v.Kind == f.failOn {
		return 0, infra.NewRepoErr(infra.KindDBFailure, "count failed")
	}
	return f.counts[v.Kind], nil
}

func views(n int) []*DecisionView {
	base := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	out := make([]*DecisionView, n)
	for i := range out {
		out[i] = &DecisionView{ID: uuid.New(), Status: "pending", CreatedAt: base.Add(-time.Duration(i) * time.Hour)}
	}
	return out
}

func TestGetByID_Visibility(t *testing.T) {
	organizer := uuid.New()
	subject := uuid.New()
	view := &DecisionView{ID: uuid.New(), OrganizerID: &organizer, SubjectUserID: subject}
	store := &fakeReadStore{views: map[uuid.UUID]*DecisionView{view.ID: view}}
	q := NewDecisionQueries(store)

	tests := []struct {
		name    string
		actor   user.Actor
		wantErr error
	}{
		{name: "staff sees everything", actor: user.Actor{ID: uuid.New(), Role: user.RoleStaff}},
		{name: "admin sees everything", actor: user.Actor{ID: uuid.New(), Role: user.RoleAdmin}},
		{name: "organizing brand", actor: user.Actor{ID: organizer, Role: user.RoleBrand}},
		{name: "other brand", actor: user.Actor{ID: uuid.New(), Role: user.RoleBrand}, wantErr: ErrDecisionAccess},
		{name: "subject dj", actor: user.Actor{ID: subject, Role: user.RoleDJ}},
		{name: "other dj", actor: user.Actor{ID: uuid.New(), Role: user.RoleDJ}, wantErr: ErrDecisionAccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := q.GetByID(context.Background(), tt.actor, decision.KindApplication, view.ID)
			if tt.wantErr != nil {
				assert.True(t, errs.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view.ID, got.ID)
		})
	}

	t.Run("missing", func(t *testing.T) {
		_, err := q.GetByID(context.Background(), user.Actor{Role: user.RoleStaff}, decision.KindApplication, uuid.New())
		assert.True(t, errs.Is(err, ErrDecisionNotFound))
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := q.GetByID(context.Background(), user.Actor{Role: user.RoleStaff}, decision.Kind("invoice"), view.ID)
		assert.True(t, errs.Is(err, ErrInvalidKind))
	})
}

func TestList_PaginatesWithCursor(t *testing.T) {
	store := &fakeReadStore{list: views(5)}
	q := NewDecisionQueries(store)
	staff := user.Actor{ID: uuid.New(), Role: user.RoleStaff}

	page, next, err := q.List(context.Background(), staff, decision.KindApplication, ListFilter{}, nil, 3)
	require.NoError(t, err)
	require.Len(t, page, 3)
	require.NotNil(t, next)
	assert.Equal(t, int32(4), store.limit)
	assert.Nil(t, store.after)

	createdAt, id, err := DecodeAfterCursor(next.After)
	require.NoError(t, err)
	assert.Equal(t, page[2].ID, id)
	assert.True(t, page[2].CreatedAt.Equal(createdAt))

	_, _, err = q.List(context.Background(), staff, decision.KindApplication, ListFilter{}, next, 3)
	require.NoError(t, err)
	require.NotNil(t, store.after)
	assert.Equal(t, page[2].ID, store.after.ID)

	t.Run("last page has no cursor", func(t *testing.T) {
		store := &fakeReadStore{list: views(2)}
		_, next, err := NewDecisionQueries(store).List(context.Background(), staff, decision.KindApplication, ListFilter{}, nil, 3)
		require.NoError(t, err)
		assert.Nil(t, next)
	})

	t.Run("bad cursor", func(t *testing.T) {
		_, _, err := q.List(context.Background(), staff, decision.KindApplication, ListFilter{}, &Cursor{After: "%%%"}, 3)
		assert.True(t, errs.Is(err, ErrInvalidCursor))
	})

	t.Run("status outside the kind", func(t *testing.T) {
		accepted := decision.StatusAccepted
		_, _, err := q.List(context.Background(), staff, decision.KindApplication, ListFilter{Status: &accepted}, nil, 3)
		assert.True(t, errs.Is(err, ErrInvalidStatus))
	})
}

func TestList_ScopesFilterByRole(t *testing.T) {
	brand := user.Actor{ID: uuid.New(), Role: user.RoleBrand}
	dj := user.Actor{ID: uuid.New(), Role: user.RoleDJ}
	other := uuid.New()

	store := &fakeReadStore{}
	q := NewDecisionQueries(store)

	// A brand cannot widen its scope by asking for another organizer.
	_, _, err := q.List(context.Background(), brand, decision.KindBookingRequest, ListFilter{OrganizerID: &other}, nil, 0)
	require.NoError(t, err)
	_, _, err = q.List(context.Background(), dj, decision.KindBookingRequest, ListFilter{}, nil, 0)
	require.NoError(t, err)

	want := []ListFilter{
		{OrganizerID: &brand.ID},
		{SubjectUserID: &dj.ID},
	}
	if diff := cmp.Diff(want, store.filters); diff != "" {
		t.Errorf("filters mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, int32(DefaultListLimit+1), store.limit)
}

func TestPendingSummary(t *testing.T) {
	store := &fakeReadStore{counts: map[decision.Kind]int64{
		decision.KindApplication:    4,
		decision.KindFormResponse:   1,
		decision.KindBookingRequest: 7,
	}}
	q := NewDecisionQueries(store)

	got, err := q.PendingSummary(context.Background(), user.Actor{ID: uuid.New(), Role: user.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, PendingSummary{Applications: 4, FormResponses: 1, BookingRequests: 7}, *got)
	require.Len(t, store.filters, 3)
	for _, f := range store.filters {
		require.NotNil(t, f.Status)
		assert.Equal(t, decision.StatusPending, *f.Status)
	}

	t.Run("one failing count fails the summary", func(t *testing.T) {
		store.failOn = decision.KindFormResponse
		_, err := q.PendingSummary(context.Background(), user.Actor{Role: user.RoleStaff})
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
