package response

import (
	"time"

	"booking-ops-portal/internal/domain/decision"
	"booking-ops-portal/internal/usecase/commands"
	"booking-ops-portal/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// ids are rendered as strings and timestamps as unix seconds
var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: "",
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
		{
			SrcType: (*uuid.UUID)(nil),
			DstType: (*string)(nil),
			Fn: func(src any) (any, error) {
				id, _ := src.(*uuid.UUID)
				if id == nil {
					return (*string)(nil), nil
				}
				s := id.String()
				return &s, nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: int64(0),
			Fn: func(src any) (any, error) {
				return src.(time.Time).Unix(), nil
			},
		},
		{
			SrcType: (*time.Time)(nil),
			DstType: (*int64)(nil),
			Fn: func(src any) (any, error) {
				t, _ := src.(*time.Time)
				if t == nil {
					return (*int64)(nil), nil
				}
				u := t.Unix()
				return &u, nil
			},
		},
	},
}

type DecisionRecordResponse struct {
	ID            string  `json:"id"`
	Kind          string  `json:"kind"`
	OpportunityID *string `json:"opportunity_id,omitempty"`
	SubjectUserID string  `json:"subject_user_id"`
	RequesterID   *string `json:"requester_id,omitempty"`
	Title         string  `json:"title,omitempty"`
	Status        string  `json:"status"`
	DecidedAt     *int64  `json:"decided_at,omitempty"`
	ResponseNotes *string `json:"response_notes,omitempty"`
	CreatedAt     int64   `json:"created_at"`
	UpdatedAt     int64   `json:"updated_at"`
}

type WarningResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type DecisionResultResponse struct {
	Record   *DecisionRecordResponse `json:"record"`
	Strategy string                  `json:"strategy"`
	NoOp     bool                    `json:"no_op"`
	Warnings []WarningResponse       `json:"warnings"`
}

func FromDecisionRecord(r *decision.Record) (*DecisionRecordResponse, error) {
	var res DecisionRecordResponse
	if err := copier.CopyWithOption(&res, r, copyOption); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromDecisionResult(r *commands.DecisionResult) (*DecisionResultResponse, error) {
	rec, err := FromDecisionRecord(r.Record)
	if err != nil {
		return nil, err
	}
	res := &DecisionResultResponse{
		Record:   rec,
		Strategy: string(r.Strategy),
		NoOp:     r.NoOp,
		Warnings: make([]WarningResponse, 0, len(r.Warnings)),
	}
	for _, w := range r.Warnings {
		res.Warnings = append(res.Warnings, WarningResponse{Kind: string(w.Kind), Message: w.Message})
	}
	return res, nil
}

type DecisionViewResponse struct {
	ID               string  `json:"id"`
	Kind             string  `json:"kind"`
	OpportunityID    *string `json:"opportunity_id,omitempty"`
	OpportunityTitle string  `json:"opportunity_title,omitempty"`
	OrganizerID      *string `json:"organizer_id,omitempty"`
	SubjectUserID    string  `json:"subject_user_id"`
	SubjectName      string  `json:"subject_name"`
	RequesterID      *string `json:"requester_id,omitempty"`
	Title            string  `json:"title,omitempty"`
	Status           string  `json:"status"`
	DecidedAt        *int64  `json:"decided_at,omitempty"`
	ResponseNotes    *string `json:"response_notes,omitempty"`
	CreatedAt        int64   `json:"created_at"`
	UpdatedAt        int64   `json:"updated_at"`
}

type DecisionListResponse struct {
	Items      []*DecisionViewResponse `json:"items"`
	NextCursor string                  `json:"next_cursor,omitempty"`
}

type PendingSummaryResponse struct {
	Applications    int64 `json:"applications"`
	FormResponses   int64 `json:"form_responses"`
	BookingRequests int64 `json:"booking_requests"`
	Total           int64 `json:"total"`
}

func FromDecisionView(v *queries.DecisionView) (*DecisionViewResponse, error) {
	var res DecisionViewResponse
	if err := copier.CopyWithOption(&res, v, copyOption); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromDecisionList(items []*queries.DecisionView, next *queries.Cursor) (*DecisionListResponse, error) {
	res := &DecisionListResponse{Items: make([]*DecisionViewResponse, 0, len(items))}
	for _, it := range items {
		v, err := FromDecisionView(it)
		if err != nil {
			return nil, err
		}
		res.Items = append(res.Items, v)
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res, nil
}

func FromPendingSummary(s *queries.PendingSummary) *PendingSummaryResponse {
	return &PendingSummaryResponse{
		Applications:    s.Applications,
		FormResponses:   s.FormResponses,
		BookingRequests: s.BookingRequests,
		Total:           s.Applications + s.FormResponses + s.BookingRequests,
	}
}
