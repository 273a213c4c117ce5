package decision

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUnknownKind       = errors.New("unknown decision kind")
	ErrInvalidStatus     = errors.New("invalid decision status")
	ErrInvalidAction     = errors.New("action not supported for this record kind")
	ErrAlreadyDecided    = errors.New("record already decided")
	ErrAccessDenied      = errors.New("access denied")
	ErrNotesNotSupported = errors.New("response notes not supported for this record kind")
)

// Record is a decision-bearing row: an application, a form response or a
// booking request.
type Record struct {
	ID   uuid.UUID
	Kind Kind
	// Owning opportunity; nil for booking requests.
	OpportunityID *uuid.UUID
	// Applicant or addressed DJ.
	SubjectUserID uuid.UUID
	// Brand that issued a booking request; nil for applications.
	RequesterID *uuid.UUID
	// Display title carried on the record itself (booking event name).
	Title         string
	Status        Status
	DecidedAt     *time.Time
	ResponseNotes *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (r *Record) Validate() error {
	v, err := VariantFor(r.Kind)
	if err != nil {
		return err
	}
	if !v.IsValidStatus(r.Status) {
		return ErrInvalidStatus
	}
	return nil
}

func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	c := *r
	if r.OpportunityID != nil {
		id := *r.OpportunityID
		c.OpportunityID = &id
	}
	if r.RequesterID != nil {
		id := *r.RequesterID
		c.RequesterID = &id
	}
	if r.DecidedAt != nil {
		t := *r.DecidedAt
		c.DecidedAt = &t
	}
	if r.ResponseNotes != nil {
		n := *r.ResponseNotes
		c.ResponseNotes = &n
	}
	return &c
}

// Owner is the resolved owning resource of a record: the opportunity and its
// organizer, or the issuing brand of a booking request.
type Owner struct {
	ResourceID  uuid.UUID
	OrganizerID uuid.UUID
	Title       string
}

// RecipientFor returns who is told about a decision, which is the subject user
// in every case but one. When the DJ who is the subject of a booking request
// accepts or declines it themselves, the notification and email go to the
// requesting brand, not to the subject.
func RecipientFor(rec *Record, actorID uuid.UUID) uuid.UUID {
	if rec.SubjectUserID == actorID && rec.RequesterID != nil {
		return *rec.RequesterID
	}
	return rec.SubjectUserID
}
