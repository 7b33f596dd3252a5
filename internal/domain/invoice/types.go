package invoice

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusPartial   Status = "PARTIAL"
	StatusPaid      Status = "PAID"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPartial, StatusPaid, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsOpen reports whether the invoice still accepts payments.
func (s Status) IsOpen() bool {
	return s == StatusPending || s == StatusPartial
}
