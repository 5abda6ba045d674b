package order

// Status is the closed set of order states.
type Status string

const (
	StatusPaymentPending Status = "PaymentPending"
	StatusCompleted      Status = "Completed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPaymentPending, StatusCompleted:
		return true
	}
	return false
}
