package reservation

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"hotel-core/internal/pkg/clock"
	"hotel-core/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus        = errors.New("invalid reservation status")
	ErrInvalidTransition    = errors.New("reservation status does not allow this operation")
	ErrStayInPast           = errors.New("stay cannot start in the past")
	ErrNoDateChange         = errors.New("new dates must differ from the current stay")
	ErrCancelReasonRequired = errors.New("cancellation reason is required")
	ErrCancelReasonTooLong  = errors.New("cancellation reason is too long (max 500 characters)")
	ErrMissingParty         = errors.New("client and room are required")
)

const MaxCancelReasonLength = 500

type Reservation struct {
	id                 uuid.UUID
	code               string
	clientID           uuid.UUID
	roomID             uuid.UUID
	stay               DateRange
	status             Status
	cancellationReason *string
	version            int64
	idempotencyKey     *string
	fingerprint        string
	checkInMetadata    Metadata
	checkOutMetadata   Metadata
	createdAt          time.Time
	updatedAt          time.Time
}

type NewParams struct {
	ClientID       uuid.UUID
	RoomID         uuid.UUID
	Stay           DateRange
	IdempotencyKey *string
}

func NewReservation(clk clock.Clock, p NewParams) (*Reservation, error) {
	if p.ClientID == uuid.Nil || p.RoomID == uuid.Nil {
		return nil, ErrMissingParty
	}
	if p.Stay.IsZero() {
		return nil, ErrInvalidDateRange
	}
	if p.Stay.StartsBefore(clock.Today(clk)) {
		return nil, ErrStayInPast
	}

	var key *string
	if p.IdempotencyKey != nil && strings.TrimSpace(*p.IdempotencyKey) != "" {
		key = patch.Of(strings.TrimSpace(*p.IdempotencyKey))
	}

	now := clk.Now()
	id := uuid.New()
	return &Reservation{
		id:             id,
		code:           GenerateCode(id, p.Stay.CheckIn()),
		clientID:       p.ClientID,
		roomID:         p.RoomID,
		stay:           p.Stay,
		status:         StatusConfirmed,
		version:        1,
		idempotencyKey: key,
		fingerprint:    Fingerprint(p.ClientID, p.RoomID, p.Stay),
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// Record carries persisted state back into the aggregate.
type Record struct {
	ID                 uuid.UUID
	Code               string
	ClientID           uuid.UUID
	RoomID             uuid.UUID
	CheckIn            time.Time
	CheckOut           time.Time
	Status             Status
	CancellationReason *string
	Version            int64
	IdempotencyKey     *string
	Fingerprint        string
	CheckInMetadata    Metadata
	CheckOutMetadata   Metadata
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func ReconstructReservation(rec Record) *Reservation {
	return &Reservation{
		id:                 rec.ID,
		code:               rec.Code,
		clientID:           rec.ClientID,
		roomID:             rec.RoomID,
		stay:               DateRange{checkIn: truncateDay(rec.CheckIn), checkOut: truncateDay(rec.CheckOut)},
		status:             rec.Status,
		cancellationReason: rec.CancellationReason,
		version:            rec.Version,
		idempotencyKey:     rec.IdempotencyKey,
		fingerprint:        rec.Fingerprint,
		checkInMetadata:    rec.CheckInMetadata,
		checkOutMetadata:   rec.CheckOutMetadata,
		createdAt:          rec.CreatedAt,
		updatedAt:          rec.UpdatedAt,
	}
}

// ModifyDates replaces either bound of the stay. Only CONFIRMED reservations
// may move; the caller must re-run availability excluding this reservation.
func (r *Reservation) ModifyDates(clk clock.Clock, newCheckIn, newCheckOut *time.Time) error {
	if r.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	stay, err := NewDateRange(
		patch.Coalesce(newCheckIn, r.stay.CheckIn()),
		patch.Coalesce(newCheckOut, r.stay.CheckOut()),
	)
	if err != nil {
		return err
	}
	if stay.Equal(r.stay) {
		return ErrNoDateChange
	}
	if !stay.CheckIn().Equal(r.stay.CheckIn()) && stay.StartsBefore(clock.Today(clk)) {
		return ErrStayInPast
	}
	r.stay = stay
	r.touch(clk.Now())
	return nil
}

func (r *Reservation) CheckIn(clk clock.Clock, meta Metadata) error {
	if r.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	r.status = StatusInProgress
	r.checkInMetadata = meta
	r.touch(clk.Now())
	return nil
}

func (r *Reservation) CheckOut(clk clock.Clock, meta Metadata) error {
	if r.status != StatusInProgress {
		return ErrInvalidTransition
	}
	r.status = StatusCompleted
	r.checkOutMetadata = meta
	r.touch(clk.Now())
	return nil
}

func (r *Reservation) Cancel(clk clock.Clock, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrCancelReasonRequired
	}
	if len(reason) > MaxCancelReasonLength {
		return ErrCancelReasonTooLong
	}
	if !r.status.IsActive() {
		return ErrInvalidTransition
	}
	r.status = StatusCancelled
	r.cancellationReason = &reason
	r.touch(clk.Now())
	return nil
}

// MatchesRequest reports whether a replayed create carries the same payload.
func (r *Reservation) MatchesRequest(fingerprint string) bool {
	return r.fingerprint == fingerprint
}

func (r *Reservation) touch(now time.Time) {
	r.version++
	r.updatedAt = now
}

func (r *Reservation) ID() uuid.UUID { return r.id }
func (r *Reservation) Code() string { return r.code }
func (r *Reservation) ClientID() uuid.UUID { return r.clientID }
func (r *Reservation) RoomID() uuid.UUID { return r.roomID }
func (r *Reservation) Stay() DateRange { return r.stay }
func (r *Reservation) Status() Status { return r.status }
func (r *Reservation) CancellationReason() *string { return r.cancellationReason }
func (r *Reservation) Version() int64 { return r.version }
func (r *Reservation) IdempotencyKey() *string { return r.idempotencyKey }
func (r *Reservation) RequestFingerprint() string { return r.fingerprint }
func (r *Reservation) CheckInMetadata() Metadata { return r.checkInMetadata }
func (r *Reservation) CheckOutMetadata() Metadata { return r.checkOutMetadata }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }
func (r *Reservation) IsActive() bool { return r.status.IsActive() }
func (r *Reservation) IsCancelled() bool { return r.status == StatusCancelled }

// GenerateCode derives the human-readable code RSV-YYYYMMDD-XXXXXXXX.
func GenerateCode(id uuid.UUID, checkIn time.Time) string {
	return fmt.Sprintf("RSV-%s-%s", checkIn.Format("20060102"), strings.ToUpper(hex.EncodeToString(id[:4])))
}

// Fingerprint identifies the booking payload for idempotent replays.
func Fingerprint(clientID, roomID uuid.UUID, stay DateRange) string {
	payload := strings.Join([]string{
		clientID.String(),
		roomID.String(),
		stay.CheckIn().Format(DateLayout),
		stay.CheckOut().Format(DateLayout),
	}, "|")
	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}
