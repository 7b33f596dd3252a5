package ledger

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MaxReferenceLength   = 100
	MaxDescriptionLength = 500
)

var (
	ErrInvalidType          = errors.New("invalid movement type")
	ErrNonPositiveAmount    = errors.New("charge and payment amounts must be greater than zero")
	ErrZeroAdjustment       = errors.New("adjustment amount cannot be zero")
	ErrAmountPrecision      = errors.New("movement amount cannot have more than 2 decimal places")
	ErrReferenceRequired    = errors.New("movement reference is required")
	ErrReferenceTooLong     = errors.New("movement reference is too long")
	ErrDescriptionTooLong   = errors.New("movement description is too long")
	ErrAlreadyReversed      = errors.New("movement is already reversed")
	ErrCompensatingMovement = errors.New("a compensating movement cannot be reversed")
	ErrMovementNotCompleted = errors.New("only completed movements can be reversed")
)

// Movement is an immutable ledger entry. Only its status may move to REVERSED.
type Movement struct {
	id           uuid.UUID
	clientID     uuid.UUID
	movementType MovementType
	amount       decimal.Decimal
	balance      decimal.Decimal
	status       Status
	reference    string
	description  string
	metadata     map[string]any
	reversalOf   *uuid.UUID
	createdAt    time.Time
}

type PostParams struct {
	ClientID    uuid.UUID
	Type        MovementType
	Amount      decimal.Decimal
	Reference   string
	Description string
	Metadata    map[string]any
	ReversalOf  *uuid.UUID
}

func (p PostParams) Validate() error {
	if !p.Type.IsValid() {
		return ErrInvalidType
	}
	if p.Type == TypeAdjustment {
		if p.Amount.IsZero() {
			return ErrZeroAdjustment
		}
	} else if !p.Amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	if !p.Amount.Equal(p.Amount.Round(2)) {
		return ErrAmountPrecision
	}
	ref := strings.TrimSpace(p.Reference)
	if ref == "" {
		return ErrReferenceRequired
	}
	if len(ref) > MaxReferenceLength {
		return ErrReferenceTooLong
	}
	if len(p.Description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	return nil
}

// Head is the latest state of a client's ledger.
type Head struct {
	Balance      decimal.Decimal
	LastPostedAt time.Time
}

// NewMovement appends to head. createdAt is strictly after the previous
// posting at the microsecond precision Postgres stores, so createdAt alone
// orders a client's movements the way they were posted.
func NewMovement(head Head, now time.Time, p PostParams) (*Movement, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	createdAt := now.Truncate(time.Microsecond)
	if last := head.LastPostedAt.Truncate(time.Microsecond); !createdAt.After(last) {
		createdAt = last.Add(time.Microsecond)
	}

	amount := p.Amount.Round(2)
	return &Movement{
		id:           id,
		clientID:     p.ClientID,
		movementType: p.Type,
		amount:       amount,
		balance:      head.Balance.Add(p.Type.Signed(amount)),
		status:       StatusCompleted,
		reference:    strings.TrimSpace(p.Reference),
		description:  p.Description,
		metadata:     p.Metadata,
		reversalOf:   p.ReversalOf,
		createdAt:    createdAt,
	}, nil
}

type Record struct {
	ID          uuid.UUID
	ClientID    uuid.UUID
	Type        MovementType
	Amount      decimal.Decimal
	Balance     decimal.Decimal
	Status      Status
	Reference   string
	Description string
	Metadata    map[string]any
	ReversalOf  *uuid.UUID
	CreatedAt   time.Time
}

func ReconstructMovement(rec Record) *Movement {
	return &Movement{
		id:           rec.ID,
		clientID:     rec.ClientID,
		movementType: rec.Type,
		amount:       rec.Amount,
		balance:      rec.Balance,
		status:       rec.Status,
		reference:    rec.Reference,
		description:  rec.Description,
		metadata:     rec.Metadata,
		reversalOf:   rec.ReversalOf,
		createdAt:    rec.CreatedAt,
	}
}

func (m *Movement) SignedAmount() decimal.Decimal {
	return m.movementType.Signed(m.amount)
}

// Compensation returns the ADJUSTMENT that cancels this movement's effect.
func (m *Movement) Compensation(reason string) (PostParams, error) {
	switch {
	case m.status == StatusReversed:
		return PostParams{}, ErrAlreadyReversed
	case m.reversalOf != nil:
		return PostParams{}, ErrCompensatingMovement
	case m.status != StatusCompleted:
		return PostParams{}, ErrMovementNotCompleted
	}
	id := m.id
	return PostParams{
		ClientID:    m.clientID,
		Type:        TypeAdjustment,
		Amount:      m.SignedAmount().Neg(),
		Reference:   m.reference,
		Description: reason,
		ReversalOf:  &id,
	}, nil
}

func (m *Movement) MarkReversed() error {
	if m.status == StatusReversed {
		return ErrAlreadyReversed
	}
	m.status = StatusReversed
	return nil
}

func (m *Movement) ID() uuid.UUID { return m.id }
func (m *Movement) ClientID() uuid.UUID { return m.clientID }
func (m *Movement) Type() MovementType { return m.movementType }
func (m *Movement) Amount() decimal.Decimal { return m.amount }
func (m *Movement) Balance() decimal.Decimal { return m.balance }
func (m *Movement) Status() Status { return m.status }
func (m *Movement) Reference() string { return m.reference }
func (m *Movement) Description() string { return m.description }
func (m *Movement) Metadata() map[string]any { return m.metadata }
func (m *Movement) ReversalOf() *uuid.UUID { return m.reversalOf }
func (m *Movement) CreatedAt() time.Time { return m.createdAt }

// Head returns the ledger head after this movement.
func (m *Movement) Head() Head {
	return Head{Balance: m.balance, LastPostedAt: m.createdAt}
}

// Sum folds the signed amounts of movements.
func Sum(movements []*Movement) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movements {
		total = total.Add(m.SignedAmount())
	}
	return total
}
