package entity

// PaymentStatus enumerates the payment lifecycle states.
type PaymentStatus string

// Payment lifecycle states. Successful and Failed are terminal.
const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusSuccessful PaymentStatus = "successful"
	PaymentStatusFailed     PaymentStatus = "failed"
)

var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentStatusPending:    {PaymentStatusSuccessful, PaymentStatusFailed},
	PaymentStatusSuccessful: {},
	PaymentStatusFailed:     {},
}

// IsValid reports whether the status is a known lifecycle state.
func (s PaymentStatus) IsValid() bool {
	_, ok := paymentTransitions[s]

	return ok
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s PaymentStatus) IsTerminal() bool {
	targets, ok := paymentTransitions[s]

	return ok && len(targets) == 0
}

// CanTransitionTo reports whether the move to target is in the table.
func (s PaymentStatus) CanTransitionTo(target PaymentStatus) bool {
	for _, t := range paymentTransitions[s] {
		if t == target {
			return true
		}
	}

	return false
}
