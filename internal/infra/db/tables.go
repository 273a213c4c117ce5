package db

import (
	"fmt"

	"booking-ops-portal/internal/domain/decision"
)

// columnLayout names the physical columns of a decision table that its
// Variant does not describe. Empty column names are projected as NULL.
type columnLayout struct {
	opportunityCol string
	subjectCol     string
	requesterCol   string
	titleCol       string
	notesCol       string
}

var columnLayouts = map[decision.Kind]columnLayout{
	decision.KindApplication: {
		opportunityCol: "opportunity_id",
		subjectCol:     "dj_id",
	},
	decision.KindFormResponse: {
		opportunityCol: "opportunity_id",
		subjectCol:     "dj_id",
	},
	decision.KindBookingRequest: {
		subjectCol:   "dj_id",
		requesterCol: "brand_id",
		titleCol:     "event_name",
		notesCol:     "response_notes",
	},
}

// tableLayout takes the table, timestamp column and procedure from the Variant.
type tableLayout struct {
	decision.Variant
	columnLayout
}

func layoutFor(kind decision.Kind) (tableLayout, error) {
	v, err := decision.VariantFor(kind)
	if err != nil {
		return tableLayout{}, fmt.Errorf("no table registered for kind %q: %w", kind, err)
	}
	cols, ok := columnLayouts[kind]
	if !ok {
		return tableLayout{}, fmt.Errorf("no column layout registered for kind %q", kind)
	}
	if v.SupportsNotes != (cols.notesCol != "") || v.OwnerViaOpportunity != (cols.opportunityCol != "") {
		return tableLayout{}, fmt.Errorf("column layout for kind %q does not match its variant", kind)
	}
	return tableLayout{Variant: v, columnLayout: cols}, nil
}

func col(alias, name, fallback string) string {
	if name == "" {
		return fallback
	}
	return alias + "." + name
}

func (s tableLayout) recordColumns() string {
	return fmt.Sprintf(
		"r.id, %s, r.%s, %s, %s, r.status, r.%s, %s, r.created_at, r.updated_at",
		col("r", s.opportunityCol, "NULL::uuid"),
		s.subjectCol,
		col("r", s.requesterCol, "NULL::uuid"),
		col("r", s.titleCol, "''::text"),
		s.TimestampField,
		col("r", s.notesCol, "NULL::text"),
	)
}

// organizerExpr is who may decide a record under ownership rules: the
// opportunity organizer or the requesting brand.
func (s tableLayout) organizerExpr() string {
	if s.opportunityCol != "" {
		return "o.organizer_id"
	}
	return col("r", s.requesterCol, "NULL::uuid")
}

func (s tableLayout) viewFrom() string {
	from := s.Table + " r"
	if s.opportunityCol != "" {
		from += " LEFT JOIN opportunities o ON o.id = r." + s.opportunityCol
	}
	return from + " LEFT JOIN user_profiles p ON p.id = r." + s.subjectCol
}

func (s tableLayout) viewColumns() string {
	title := "NULL::text"
	if s.opportunityCol != "" {
		title = "o.title"
	}
	return fmt.Sprintf(
		"%s, %s, %s, COALESCE(NULLIF(p.dj_name, ''), btrim(concat_ws(' ', p.first_name, p.last_name)), '')",
		s.recordColumns(), title, s.organizerExpr(),
	)
}

// filterClause uses positional parameters $1..$4 for the optional filters.
func (s tableLayout) filterClause() string {
	opportunity := "$2::uuid IS NULL"
	if s.opportunityCol != "" {
		opportunity = "($2::uuid IS NULL OR r." + s.opportunityCol + " = $2)"
	}
	return fmt.Sprintf(
		"($1::text IS NULL OR r.status = $1) AND %s AND ($3::uuid IS NULL OR %s = $3) AND ($4::uuid IS NULL OR r.%s = $4)",
		opportunity, s.organizerExpr(), s.subjectCol,
	)
}
