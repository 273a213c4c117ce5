package commands

import (
	"context"
	"log/slog"
	"time"

	"booking-ops-portal/internal/domain/decision"
	"booking-ops-portal/internal/domain/user"
	"booking-ops-portal/internal/usecase/shared"

	"github.com/google/uuid"
)

const emailNotSentMessage = "The decision was saved, but the email was not sent."

// DispatchInput describes a committed transition and the context resolved for it.
type DispatchInput struct {
	Transition    *decision.Transition
	Record        *decision.Record
	RecipientID   uuid.UUID
	Recipient     *user.Profile // nil when the profile lookup failed
	ResourceTitle string
}

// SideEffectDispatcher fires the in-app notification, then the decision email.
// Neither step can fail the decision; failures come back as warnings.
type SideEffectDispatcher struct {
	notifications shared.NotificationSink
	email         shared.EmailSender
	timeout       time.Duration
	logger        *slog.Logger
}

func NewSideEffectDispatcher(notifications shared.NotificationSink, email shared.EmailSender, timeout time.Duration, logger *slog.Logger) *SideEffectDispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &SideEffectDispatcher{
		notifications: notifications,
		email:         email,
		timeout:       timeout,
		logger:        logger,
	}
}

// Dispatch expects a context detached from the caller's cancellation; each
// call still gets its own timeout.
func (d *SideEffectDispatcher) Dispatch(ctx context.Context, in DispatchInput) []Warning {
	var warnings []Warning

	if w := d.notify(ctx, in); w != nil {
		warnings = append(warnings, *w)
	}
	if w := d.sendEmail(ctx, in); w != nil {
		warnings = append(warnings, *w)
	}
	return warnings
}

func (d *SideEffectDispatcher) notify(ctx context.Context, in DispatchInput) (warning *Warning) {
	ev := decision.BuildNotification(in.Transition, in.Record, in.RecipientID, in.ResourceTitle)

	defer func() {
		// A panicking sink is contained like any other sink failure.
		if r := recover(); r != nil {
			d.logger.ErrorContext(ctx, "notification sink panicked", "record_id", in.Record.ID.String(), "panic", r)
			warning = &Warning{Kind: WarningNotificationFailed, Message: "The in-app notification could not be created."}
		}
	}()

	callCtx, cancel := withCallTimeout(ctx, d.timeout)
	defer cancel()

	if err := d.notifications.Create(callCtx, ev); err != nil {
		d.logger.WarnContext(ctx, "failed to create decision notification",
			"record_id", in.Record.ID.String(),
			"recipient_id", in.RecipientID.String(),
			"type", ev.Type,
			"error", err.Error())
		return &Warning{Kind: WarningNotificationFailed, Message: "The in-app notification could not be created."}
	}
	return nil
}

func (d *SideEffectDispatcher) sendEmail(ctx context.Context, in DispatchInput) (warning *Warning) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.ErrorContext(ctx, "email sender panicked", "record_id", in.Record.ID.String(), "panic", r)
			warning = &Warning{Kind: WarningEmailNotSent, Message: emailNotSentMessage}
		}
	}()

	if in.Recipient == nil {
		d.logger.WarnContext(ctx, "decision email skipped: recipient profile unavailable", "record_id", in.Record.ID.String())
		return &Warning{Kind: WarningEmailNotSent, Message: "The decision email was not sent."}
	}
	if !in.Recipient.HasEmail() {
		return nil
	}

	msg := decision.EmailMessage{
		Email:         in.Recipient.Email().Value(),
		RecipientName: in.Recipient.DisplayName(),
		Status:        in.Transition.To,
		ResourceTitle: in.ResourceTitle,
		Kind:          in.Record.Kind,
		Notes:         in.Transition.Notes,
	}

	callCtx, cancel := withCallTimeout(ctx, d.timeout)
	defer cancel()

	res, err := d.email.SendDecisionEmail(callCtx, msg)
	switch {
	case err != nil:
		d.logger.WarnContext(ctx, "failed to send decision email", "record_id", in.Record.ID.String(), "error", err.Error())
	case res == nil || !res.Success:
		reason := ""
		if res != nil {
			reason = res.Error
		}
		d.logger.WarnContext(ctx, "decision email reported failure", "record_id", in.Record.ID.String(), "reason", reason)
	default:
		return nil
	}
	return &Warning{Kind: WarningEmailNotSent, Message: emailNotSentMessage}
}

func withCallTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
