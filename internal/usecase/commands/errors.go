package commands

import (
	"booking-ops-portal/internal/pkg/errs"
)

var (
	ErrInvalidRequest   = errs.New("invalid decision request")
	ErrNotFound         = errs.New("decision record not found")
	ErrAccessDenied     = errs.New("access denied")
	ErrInvalidAction    = errs.New("invalid decision action")
	ErrAlreadyDecided   = errs.New("record already decided")
	ErrSchemaHazard     = errs.New("status store schema hazard")
	ErrTransitionFailed = errs.New("status transition failed")
	ErrTimeout          = errs.New("status store call timed out")
)

// FailureMessage is the short user-facing description of a fatal decision error.
type FailureMessage struct {
	Message   string
	Retryable bool
}

const schemaHazardRemediation = "The status store rejected the update because a view or policy references a column that no longer exists (venue field). " +
	"Apply migration 001_initial_schema.sql to install the decision procedures, then confirm the acting account has the expected role."

func Describe(err error) FailureMessage {
	switch {
	case errs.Is(err, ErrInvalidRequest):
		return FailureMessage{Message: "The decision request is invalid."}
	case errs.Is(err, ErrNotFound):
		return FailureMessage{Message: "This record no longer exists. Refresh the list and try again."}
	case errs.Is(err, ErrAccessDenied):
		return FailureMessage{Message: "You can only decide on requests for opportunities you organize."}
	case errs.Is(err, ErrInvalidAction):
		return FailureMessage{Message: "This action is not available for this record."}
	case errs.Is(err, ErrAlreadyDecided):
		return FailureMessage{Message: "This record has already been decided. Refresh to see its current status."}
	case errs.Is(err, ErrSchemaHazard):
		return FailureMessage{Message: schemaHazardRemediation}
	case errs.Is(err, ErrTimeout):
		return FailureMessage{Message: "The status store did not respond in time. Please try again.", Retryable: true}
	case errs.Is(err, ErrTransitionFailed):
		return FailureMessage{Message: "The status could not be updated. Please try again.", Retryable: true}
	default:
		return FailureMessage{Message: "Internal server error"}
	}
}

// WarningKind classifies a non-fatal side-effect failure.
type WarningKind string

const (
	WarningNotificationFailed WarningKind = "notification_failed"
	WarningEmailNotSent       WarningKind = "email_not_sent"
)

// Warning is a secondary, non-blocking message for the acting user.
type Warning struct {
	Kind    WarningKind
	Message string
}
