package decision

import "slices"

// Variant configures one instance of the decision workflow: the table it
// addresses, its status set and how a terminal transition is written.
type Variant struct {
	Kind  Kind
	Table string
	// Statuses accepted when reading a record.
	ValidStatuses []Status
	Initial       Status
	// Maps each exposed action to its terminal status.
	Terminals map[Action]Status
	// Column stamped with the decision time.
	TimestampField string
	// Whether response notes are stored with the decision.
	SupportsNotes bool
	// Server-side procedure running the update with elevated permissions.
	PrivilegedProcedure string
	// Owner resolution: through an opportunity, or directly from the record.
	OwnerViaOpportunity bool
	// Prefix of the notification type tag, e.g. "application" -> "application_approved".
	NotificationPrefix string
	ResourceNoun       string
}

var (
	ApplicationVariant = Variant{
		Kind:          KindApplication,
		Table:         "applications",
		ValidStatuses: []Status{StatusPending, StatusApproved, StatusRejected},
		Initial:       StatusPending,
		Terminals: map[Action]Status{
			ActionApprove: StatusApproved,
			ActionReject:  StatusRejected,
		},
		TimestampField:      "reviewed_at",
		PrivilegedProcedure: "admin_update_application_status",
		OwnerViaOpportunity: true,
		NotificationPrefix:  "application",
		ResourceNoun:        "application",
	}

	FormResponseVariant = Variant{
		Kind:          KindFormResponse,
		Table:         "application_form_responses",
		ValidStatuses: []Status{StatusPending, StatusApproved, StatusRejected},
		Initial:       StatusPending,
		Terminals: map[Action]Status{
			ActionApprove: StatusApproved,
			ActionReject:  StatusRejected,
		},
		TimestampField:      "reviewed_at",
		PrivilegedProcedure: "admin_update_form_response_status",
		OwnerViaOpportunity: true,
		NotificationPrefix:  "application",
		ResourceNoun:        "application",
	}

	// cancelled is reachable from pending through another path and is
	// read-only here; no action maps to it.
	BookingRequestVariant = Variant{
		Kind:          KindBookingRequest,
		Table:         "booking_requests",
		ValidStatuses: []Status{StatusPending, StatusAccepted, StatusDeclined, StatusCancelled},
		Initial:       StatusPending,
		Terminals: map[Action]Status{
			ActionAccept:  StatusAccepted,
			ActionDecline: StatusDeclined,
		},
		TimestampField:      "responded_at",
		SupportsNotes:       true,
		PrivilegedProcedure: "admin_update_booking_request_status",
		OwnerViaOpportunity: false,
		NotificationPrefix:  "booking",
		ResourceNoun:        "booking request",
	}
)

var variants = map[Kind]Variant{
	KindApplication:    ApplicationVariant,
	KindFormResponse:   FormResponseVariant,
	KindBookingRequest: BookingRequestVariant,
}

func VariantFor(kind Kind) (Variant, error) {
	v, ok := variants[kind]
	if !ok {
		return Variant{}, ErrUnknownKind
	}
	return v, nil
}

func (v Variant) IsValidStatus(s Status) bool {
	return slices.Contains(v.ValidStatuses, s)
}

// IsTerminal reports whether s is a state this workflow defines no transition out of.
func (v Variant) IsTerminal(s Status) bool {
	return v.IsValidStatus(s) && s != v.Initial
}

func (v Variant) TargetFor(action Action) (Status, bool) {
	s, ok := v.Terminals[action]
	return s, ok
}

func (v Variant) Actions() []Action {
	out := make([]Action, 0, len(v.Terminals))
	for a := range v.Terminals {
		out = append(out, a)
	}
	slices.Sort(out)
	return out
}

func (v Variant) NotificationType(s Status) string {
	return v.NotificationPrefix + "_" + s.String()
}
