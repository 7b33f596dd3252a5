package repository

import (
	"context"

	"hotel-core/internal/domain/ledger"
	"hotel-core/internal/infra"
	"hotel-core/internal/infra/repository/converter"
	sqlc "hotel-core/internal/infra/sqlc/generated"
	"hotel-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type LedgerWriteQueries interface {
	EnsureLedgerHead(ctx context.Context, db sqlc.DBTX, clientID uuid.UUID) error
	LockLedgerHead(ctx context.Context, db sqlc.DBTX, clientID uuid.UUID) (sqlc.ClientLedgerHeads, error)
	AdvanceLedgerHead(ctx context.Context, db sqlc.DBTX, arg sqlc.AdvanceLedgerHeadParams) error
	InsertAccountMovement(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertAccountMovementParams) error
	GetAccountMovementByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.AccountMovements, error)
	MarkAccountMovementReversed(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type LedgerRepository struct {
	queries LedgerWriteQueries
	db      sqlc.DBTX
}

func NewLedgerRepository(queries LedgerWriteQueries, db sqlc.DBTX) *LedgerRepository {
	return &LedgerRepository{
		queries: queries,
		db:      db,
	}
}

// LockHead creates the head row on first use, then holds it FOR UPDATE.
// The wait is bounded by the transaction's lock_timeout.
func (r *LedgerRepository) LockHead(ctx context.Context, clientID uuid.UUID) (ledger.Head, error) {
	if err := r.queries.EnsureLedgerHead(ctx, r.db, clientID); err != nil {
		return ledger.Head{}, infra.WrapRepoErr("failed to create ledger head", err)
	}
	row, err := r.queries.LockLedgerHead(ctx, r.db, clientID)
	if err != nil {
		return ledger.Head{}, infra.WrapRepoErr("failed to lock ledger head", err)
	}
	head, err := converter.HeadFromRow(row)
	if err != nil {
		return ledger.Head{}, infra.WrapRepoErr("failed to decode ledger head", err, infra.KindDBFailure)
	}
	return head, nil
}

// Append inserts mv and advances the head to it. The caller must hold the head lock.
func (r *LedgerRepository) Append(ctx context.Context, mv *ledger.Movement) error {
	params, err := converter.MovementToInsertParams(mv)
	if err != nil {
		return infra.WrapRepoErr("failed to encode movement metadata", err, infra.KindDBFailure)
	}
	if err := r.queries.InsertAccountMovement(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to insert account movement", err)
	}

	head := mv.Head()
	err = r.queries.AdvanceLedgerHead(ctx, r.db, sqlc.AdvanceLedgerHeadParams{
		ClientID:       mv.ClientID(),
		Balance:        pgconv.NumericFromDecimal(head.Balance),
		LastMovementAt: pgconv.TimeToPgtype(head.LastPostedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to advance ledger head", err)
	}
	return nil
}

func (r *LedgerRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Movement, error) {
	row, err := r.queries.GetAccountMovementByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find account movement", err)
	}
	mv, err := converter.MovementFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode account movement", err, infra.KindDBFailure)
	}
	return mv, nil
}

// MarkReversed is a status-only transition guarded by status = 'COMPLETED'.
func (r *LedgerRepository) MarkReversed(ctx context.Context, id uuid.UUID) error {
	affected, err := r.queries.MarkAccountMovementReversed(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to mark movement reversed", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("movement already reversed", nil, infra.KindStaleVersion)
	}
	return nil
}
