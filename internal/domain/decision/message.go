package decision

import (
	"fmt"

	"github.com/google/uuid"
)

// NotificationEvent is the in-app message created once per committed transition.
type NotificationEvent struct {
	UserID    uuid.UUID
	Title     string
	Message   string
	Type      string
	RelatedID uuid.UUID
}

// EmailMessage is the payload handed to the outbound decision email trigger.
type EmailMessage struct {
	Email         string
	RecipientName string
	Status        Status
	ResourceTitle string
	Kind          Kind
	Notes         *string
}

func resourceLabel(title string) string {
	if title == "" {
		return "the opportunity"
	}
	return fmt.Sprintf("%q", title)
}

// BuildNotification renders the in-app notification for a committed transition.
func BuildNotification(t *Transition, rec *Record, recipient uuid.UUID, resourceTitle string) NotificationEvent {
	label := resourceLabel(resourceTitle)
	var title, message string

	switch t.To {
	case StatusApproved:
		title = "Application approved"
		message = fmt.Sprintf("Your application for %s has been approved.", label)
	case StatusRejected:
		title = "Application not selected"
		message = fmt.Sprintf("Your application for %s was not selected this time.", label)
	case StatusAccepted:
		title = "Booking request accepted"
		message = fmt.Sprintf("The booking request for %s has been accepted.", label)
	case StatusDeclined:
		title = "Booking request declined"
		message = fmt.Sprintf("The booking request for %s has been declined.", label)
	default:
		title = "Status updated"
		message = fmt.Sprintf("The status of %s changed to %s.", label, t.To)
	}

	if t.Notes != nil {
		message += " Note: " + *t.Notes
	}

	return NotificationEvent{
		UserID:    recipient,
		Title:     title,
		Message:   message,
		Type:      t.Variant.NotificationType(t.To),
		RelatedID: rec.ID,
	}
}
