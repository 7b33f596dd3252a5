package commands

import (
	"context"
	"strings"

	"hotel-core/internal/domain/ledger"
	"hotel-core/internal/infra"
	"hotel-core/internal/pkg/clock"
	"hotel-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountLedger appends movements under the client's ledger head lock, so
// every balance snapshot extends the one before it.
type AccountLedger struct {
	clock clock.Clock
}

func NewAccountLedger(clk clock.Clock) *AccountLedger {
	return &AccountLedger{clock: clk}
}

func (l *AccountLedger) Post(ctx context.Context, tx shared.Tx, p ledger.PostParams) (*ledger.Movement, error) {
	if err := p.Validate(); err != nil {
		return nil, domainErr(err)
	}
	head, err := tx.Ledger().LockHead(ctx, p.ClientID)
	if err != nil {
		return nil, notFoundOr(err, ErrClientNotFound)
	}
	mv, err := ledger.NewMovement(head, l.clock.Now(), p)
	if err != nil {
		return nil, domainErr(err)
	}
	if err := tx.Ledger().Append(ctx, mv); err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return mv, nil
}

type AdjustmentInput struct {
	ClientID    uuid.UUID
	Amount      decimal.Decimal
	Reference   string
	Description string
}

type LedgerCommands interface {
	PostAdjustment(ctx context.Context, in AdjustmentInput) (*ledger.Movement, error)
	ReverseMovement(ctx context.Context, movementID uuid.UUID, reason string) (*ledger.Movement, error)
}

type ledgerUseCaseImpl struct {
	uow    shared.UnitOfWork
	ledger *AccountLedger
	clock  clock.Clock
}

func NewLedgerUseCase(uow shared.UnitOfWork, accountLedger *AccountLedger, clk clock.Clock) LedgerCommands {
	return &ledgerUseCaseImpl{uow: uow, ledger: accountLedger, clock: clk}
}

func (uc *ledgerUseCaseImpl) PostAdjustment(ctx context.Context, in AdjustmentInput) (*ledger.Movement, error) {
	params := ledger.PostParams{
		ClientID:    in.ClientID,
		Type:        ledger.TypeAdjustment,
		Amount:      in.Amount,
		Reference:   in.Reference,
		Description: strings.TrimSpace(in.Description),
	}
	if err := params.Validate(); err != nil {
		return nil, domainErr(err)
	}

	var posted *ledger.Movement
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().ClientByID(ctx, in.ClientID); err != nil {
			return notFoundOr(err, ErrClientNotFound)
		}
		mv, err := uc.ledger.Post(ctx, tx, params)
		if err != nil {
			return err
		}
		posted = mv
		return enqueue(ctx, tx, uc.clock, TopicLedgerAdjusted, mv.ClientID(), ledgerEvent(mv))
	})
	if err != nil {
		return nil, err
	}
	return posted, nil
}

// ReverseMovement appends the compensating ADJUSTMENT and flips the original
// to REVERSED. Amount and balance of the original never change.
func (uc *ledgerUseCaseImpl) ReverseMovement(ctx context.Context, movementID uuid.UUID, reason string) (*ledger.Movement, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrReasonRequired
	}

	var compensation *ledger.Movement
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		original, err := tx.Ledger().FindByID(ctx, movementID)
		if err != nil {
			return notFoundOr(err, ErrMovementNotFound)
		}
		if _, err := tx.Ledger().LockHead(ctx, original.ClientID()); err != nil {
			return err
		}
		// re-read under the head lock; a concurrent reversal may have committed
		original, err = tx.Ledger().FindByID(ctx, movementID)
		if err != nil {
			return notFoundOr(err, ErrMovementNotFound)
		}

		params, err := original.Compensation(reason)
		if err != nil {
			return domainErr(err)
		}
		mv, err := uc.ledger.Post(ctx, tx, params)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrMovementReversed
			}
			return err
		}
		if err := tx.Ledger().MarkReversed(ctx, movementID); err != nil {
			if infra.IsKind(err, infra.KindStaleVersion) {
				return ErrMovementReversed
			}
			return err
		}
		compensation = mv
		return enqueue(ctx, tx, uc.clock, TopicLedgerAdjusted, mv.ClientID(), ledgerEvent(mv))
	})
	if err != nil {
		return nil, err
	}
	return compensation, nil
}
