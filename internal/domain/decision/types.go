package decision

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusAccepted  Status = "accepted"
	StatusDeclined  Status = "declined"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// Kind identifies which decision-bearing table a record lives in.
type Kind string

const (
	KindApplication    Kind = "application"
	KindFormResponse   Kind = "form_response"
	KindBookingRequest Kind = "booking_request"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	_, ok := variants[k]
	return ok
}

type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionAccept  Action = "accept"
	ActionDecline Action = "decline"
)

func (a Action) String() string {
	return string(a)
}
