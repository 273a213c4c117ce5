//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"booking-ops-portal/internal/domain/decision"
	"booking-ops-portal/internal/infra"
	"booking-ops-portal/internal/infra/db"
	"booking-ops-portal/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDecisionQueries struct {
	mock.Mock
}

func (m *MockDecisionQueries) GetDecisionRecord(ctx context.Context, dbtx db.DBTX, kind decision.Kind, id uuid.UUID) (db.DecisionRecordRow, error) {
	args := m.Called(ctx, dbtx, kind, id)
	return args.Get(0).(db.DecisionRecordRow), args.Error(1)
}

func (m *MockDecisionQueries) CallStatusProcedure(ctx context.Context, dbtx db.DBTX, kind decision.Kind, arg db.CallStatusProcedureParams) ([]byte, error) {
	args := m.Called(ctx, dbtx, kind, arg)
	raw, _ := args.Get(0).([]byte)
	return raw, args.Error(1)
}

func (m *MockDecisionQueries) UpdateDecisionStatus(ctx context.Context, dbtx db.DBTX, kind decision.Kind, arg db.UpdateDecisionStatusParams) (int64, error) {
	args := m.Called(ctx, dbtx, kind, arg)
	return args.Get(0).(int64), args.Error(1)
}

func bookingTransition(notes *string) *decision.Transition {
	return &decision.Transition{
		Variant: decision.BookingRequestVariant,
		Action:  decision.ActionDecline,
		From:    decision.StatusPending,
		To:      decision.StatusDeclined,
		Notes:   notes,
		At:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestDecisionRepository_FindByID(t *testing.T) {
	id := uuid.New()
	subject := uuid.New()
	brand := uuid.New()

	t.Run("maps booking row", func(t *testing.T) {
		q := new(MockDecisionQueries)
		q.On("GetDecisionRecord", mock.Anything, mock.Anything, decision.KindBookingRequest, id).Return(db.DecisionRecordRow{
			ID:            id,
			SubjectUserID: subject,
			RequesterID:   pgconv.UUIDToPgtype(brand),
			Title:         "Warehouse Night",
			Status:        "pending",
		}, nil)

		repo := &DecisionRepository{queries: q}
		rec, err := repo.FindByID(context.Background(), decision.BookingRequestVariant, id)

		require.NoError(t, err)
		assert.Equal(t, decision.KindBookingRequest, rec.Kind)
		assert.Equal(t, decision.StatusPending, rec.Status)
		require.NotNil(t, rec.RequesterID)
		assert.Equal(t, brand, *rec.RequesterID)
		assert.Nil(t, rec.OpportunityID)
		assert.Nil(t, rec.DecidedAt)
		q.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		q := new(MockDecisionQueries)
		q.On("GetDecisionRecord", mock.Anything, mock.Anything, decision.KindApplication, id).Return(db.DecisionRecordRow{}, pgx.ErrNoRows)

		repo := &DecisionRepository{queries: q}
		_, err := repo.FindByID(context.Background(), decision.ApplicationVariant, id)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("unknown status in row", func(t *testing.T) {
		q := new(MockDecisionQueries)
		q.On("GetDecisionRecord", mock.Anything, mock.Anything, decision.KindApplication, id).Return(db.DecisionRecordRow{ID: id, Status: "archived"}, nil)

		repo := &DecisionRepository{queries: q}
		_, err := repo.FindByID(context.Background(), decision.ApplicationVariant, id)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestDecisionRepository_CallTransition(t *testing.T) {
	id := uuid.New()
	notes := "schedule conflict"

	tests := []struct {
		name     string
		raw      []byte
		queryErr error
		want     bool
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success", raw: []byte(`{"success":true}`), want: true},
		{name: "refused", raw: []byte(`{"success":false,"error":"function not found"}`), want: false},
		{name: "procedure missing", queryErr: &pgconn.PgError{Code: "42883"}, wantKind: infra.KindUndefinedFunction},
		{name: "schema hazard", queryErr: &pgconn.PgError{Code: "42703", Message: `column "venue" does not exist`}, wantKind: infra.KindSchemaHazard},
		{name: "empty answer", raw: nil, wantKind: infra.KindRemoteFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockDecisionQueries)
			q.On("CallStatusProcedure", mock.Anything, mock.Anything, decision.KindBookingRequest, db.CallStatusProcedureParams{
				ID:     id,
				Status: "declined",
				Notes:  pgconv.StringPtrToPgtype(&notes),
			}).Return(tt.raw, tt.queryErr)

			repo := &DecisionRepository{queries: q}
			res, err := repo.CallTransition(context.Background(), bookingTransition(&notes), id)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Success)
			q.AssertExpectations(t)
		})
	}
}

func TestDecisionRepository_UpdateStatus(t *testing.T) {
	id := uuid.New()
	tr := bookingTransition(nil)

	q := new(MockDecisionQueries)
	q.On("UpdateDecisionStatus", mock.Anything, mock.Anything, decision.KindBookingRequest, db.UpdateDecisionStatusParams{
		ID:        id,
		Status:    "declined",
		DecidedAt: pgconv.TimeToPgtype(tr.At),
	}).Return(int64(1), nil).Once()
	q.On("UpdateDecisionStatus", mock.Anything, mock.Anything, decision.KindBookingRequest, mock.Anything).Return(int64(0), assert.AnError).Once()

	repo := &DecisionRepository{queries: q}

	rows, err := repo.UpdateStatus(context.Background(), tr, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	_, err = repo.UpdateStatus(context.Background(), tr, id)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	q.AssertExpectations(t)
}
