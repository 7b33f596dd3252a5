package reservation

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var (
	ErrInvalidDateRange = errors.New("check-out must be after check-in")
	ErrInvalidDate      = errors.New("date must use the YYYY-MM-DD format")
)

// DateRange is the half-open stay interval [checkIn, checkOut) in whole days.
type DateRange struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewDateRange(checkIn, checkOut time.Time) (DateRange, error) {
	in, out := truncateDay(checkIn), truncateDay(checkOut)
	if !out.After(in) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{checkIn: in, checkOut: out}, nil
}

func ParseDateRange(checkIn, checkOut string) (DateRange, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return DateRange{}, err
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return DateRange{}, err
	}
	return NewDateRange(in, out)
}

func ParseDate(v string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(v), time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func (r DateRange) CheckIn() time.Time { return r.checkIn }
func (r DateRange) CheckOut() time.Time { return r.checkOut }

func (r DateRange) IsZero() bool {
	return r.checkIn.IsZero() && r.checkOut.IsZero()
}

func (r DateRange) Nights() int {
	return int(r.checkOut.Sub(r.checkIn).Hours() / 24)
}

// Overlaps implements a < d AND c < b; adjacent stays do not overlap.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.checkIn.Before(other.checkOut) && other.checkIn.Before(r.checkOut)
}

func (r DateRange) Contains(day time.Time) bool {
	d := truncateDay(day)
	return !d.Before(r.checkIn) && d.Before(r.checkOut)
}

// StartsBefore reports whether the stay begins before day.
func (r DateRange) StartsBefore(day time.Time) bool {
	return r.checkIn.Before(truncateDay(day))
}

func (r DateRange) Equal(other DateRange) bool {
	return r.checkIn.Equal(other.checkIn) && r.checkOut.Equal(other.checkOut)
}

func (r DateRange) String() string {
	return fmt.Sprintf("[%s,%s)", r.checkIn.Format(DateLayout), r.checkOut.Format(DateLayout))
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Metadata is free-form structured data captured at check-in or check-out
// (document numbers, key cards, minibar notes).
type Metadata map[string]any

const maxMetadataKeys = 50

func NewMetadata(m map[string]any) (Metadata, error) {
	if len(m) > maxMetadataKeys {
		return nil, fmt.Errorf("metadata supports at most %d keys", maxMetadataKeys)
	}
	for k := range m {
		if strings.TrimSpace(k) == "" {
			return nil, errors.New("metadata keys cannot be blank")
		}
	}
	if m == nil {
		return nil, nil
	}
	out := make(Metadata, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out, nil
}
