package db

import (
	"context"
	"fmt"

	"booking-ops-portal/internal/domain/decision"

	"github.com/google/uuid"
)

// Queries holds the SQL run against the status store. Like generated query
// code it is stateless and takes the DBTX per call.
type Queries struct{}

func New() *Queries {
	return &Queries{}
}

func scanRecord(row interface{ Scan(dest ...any) error }, r *DecisionRecordRow, extra ...any) error {
	dest := []any{
		&r.ID, &r.OpportunityID, &r.SubjectUserID, &r.RequesterID, &r.Title,
		&r.Status, &r.DecidedAt, &r.ResponseNotes, &r.CreatedAt, &r.UpdatedAt,
	}
	return row.Scan(append(dest, extra...)...)
}

func (q *Queries) GetDecisionRecord(ctx context.Context, db DBTX, kind decision.Kind, id uuid.UUID) (DecisionRecordRow, error) {
	var r DecisionRecordRow
	s, err := layoutFor(kind)
	if err != nil {
		return r, err
	}
	sql := fmt.Sprintf("SELECT %s FROM %s r WHERE r.id = $1", s.recordColumns(), s.Table)
	err = scanRecord(db.QueryRow(ctx, sql, id), &r)
	return r, err
}

func (q *Queries) GetDecisionView(ctx context.Context, db DBTX, kind decision.Kind, id uuid.UUID) (DecisionViewRow, error) {
	var r DecisionViewRow
	s, err := layoutFor(kind)
	if err != nil {
		return r, err
	}
	sql := fmt.Sprintf("SELECT %s FROM %s WHERE r.id = $1", s.viewColumns(), s.viewFrom())
	err = scanRecord(db.QueryRow(ctx, sql, id), &r.DecisionRecordRow, &r.OpportunityTitle, &r.OrganizerID, &r.SubjectName)
	return r, err
}

func (q *Queries) ListDecisionViews(ctx context.Context, db DBTX, kind decision.Kind, arg ListDecisionViewsParams) ([]DecisionViewRow, error) {
	s, err := layoutFor(kind)
	if err != nil {
		return nil, err
	}
	sql := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s AND ($5::timestamptz IS NULL OR (r.created_at, r.id) < ($5, $6::uuid)) ORDER BY r.created_at DESC, r.id DESC LIMIT $7",
		s.viewColumns(), s.viewFrom(), s.filterClause(),
	)
	rows, err := db.Query(ctx, sql,
		arg.Status, arg.OpportunityID, arg.OrganizerID, arg.SubjectUserID,
		arg.AfterCreatedAt, arg.AfterID, arg.Limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []DecisionViewRow
	for rows.Next() {
		var r DecisionViewRow
		if err := scanRecord(rows, &r.DecisionRecordRow, &r.OpportunityTitle, &r.OrganizerID, &r.SubjectName); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

func (q *Queries) CountDecisions(ctx context.Context, db DBTX, kind decision.Kind, arg DecisionFilterParams) (int64, error) {
	s, err := layoutFor(kind)
	if err != nil {
		return 0, err
	}
	sql := fmt.Sprintf("SELECT count(*) FROM %s WHERE %s", s.viewFrom(), s.filterClause())
	var n int64
	err = db.QueryRow(ctx, sql, arg.Status, arg.OpportunityID, arg.OrganizerID, arg.SubjectUserID).Scan(&n)
	return n, err
}

// CallStatusProcedure invokes the privileged procedure and returns its raw
// jsonb answer.
func (q *Queries) CallStatusProcedure(ctx context.Context, db DBTX, kind decision.Kind, arg CallStatusProcedureParams) ([]byte, error) {
	s, err := layoutFor(kind)
	if err != nil {
		return nil, err
	}
	var (
		sql  string
		args []any
	)
	if s.SupportsNotes {
		sql = fmt.Sprintf("SELECT %s($1, $2, $3)", s.PrivilegedProcedure)
		args = []any{arg.ID, arg.Status, arg.Notes}
	} else {
		sql = fmt.Sprintf("SELECT %s($1, $2)", s.PrivilegedProcedure)
		args = []any{arg.ID, arg.Status}
	}
	var raw []byte
	err = db.QueryRow(ctx, sql, args...).Scan(&raw)
	return raw, err
}

// UpdateDecisionStatus only touches a record still pending.
func (q *Queries) UpdateDecisionStatus(ctx context.Context, db DBTX, kind decision.Kind, arg UpdateDecisionStatusParams) (int64, error) {
	s, err := layoutFor(kind)
	if err != nil {
		return 0, err
	}
	const guard = "WHERE id = $1 AND status = 'pending'"
	var (
		sql  string
		args []any
	)
	if s.SupportsNotes {
		sql = fmt.Sprintf("UPDATE %s SET status = $2, %s = $3, updated_at = $3, %s = $4 %s", s.Table, s.TimestampField, s.notesCol, guard)
		args = []any{arg.ID, arg.Status, arg.DecidedAt, arg.ResponseNotes}
	} else {
		sql = fmt.Sprintf("UPDATE %s SET status = $2, %s = $3, updated_at = $3 %s", s.Table, s.TimestampField, guard)
		args = []any{arg.ID, arg.Status, arg.DecidedAt}
	}
	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getOpportunityOwner = `SELECT id, organizer_id, title FROM opportunities WHERE id = $1`

func (q *Queries) GetOpportunityOwner(ctx context.Context, db DBTX, id uuid.UUID) (OpportunityOwnerRow, error) {
	var r OpportunityOwnerRow
	err := db.QueryRow(ctx, getOpportunityOwner, id).Scan(&r.ID, &r.OrganizerID, &r.Title)
	return r, err
}

const getUserProfile = `SELECT id, first_name, last_name, dj_name, email FROM user_profiles WHERE id = $1`

func (q *Queries) GetUserProfile(ctx context.Context, db DBTX, id uuid.UUID) (UserProfileRow, error) {
	var r UserProfileRow
	err := db.QueryRow(ctx, getUserProfile, id).Scan(&r.ID, &r.FirstName, &r.LastName, &r.DjName, &r.Email)
	return r, err
}

const createNotification = `INSERT INTO notifications (user_id, title, message, type, related_id) VALUES ($1, $2, $3, $4, $5)`

func (q *Queries) CreateNotification(ctx context.Context, db DBTX, arg CreateNotificationParams) error {
	_, err := db.Exec(ctx, createNotification, arg.UserID, arg.Title, arg.Message, arg.Type, arg.RelatedID)
	return err
}
