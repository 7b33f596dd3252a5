package room

type Status string

const (
	StatusAvailable    Status = "AVAILABLE"
	StatusOccupied     Status = "OCCUPIED"
	StatusMaintenance  Status = "MAINTENANCE"
	StatusOutOfService Status = "OUT_OF_SERVICE"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusOccupied, StatusMaintenance, StatusOutOfService:
		return true
	default:
		return false
	}
}

// IsServiceStatus reports whether maintenance staff may set s directly.
func (s Status) IsServiceStatus() bool {
	return s == StatusAvailable || s == StatusMaintenance || s == StatusOutOfService
}
