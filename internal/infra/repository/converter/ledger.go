package converter

import (
	"hotel-core/internal/domain/ledger"
	sqlc "hotel-core/internal/infra/sqlc/generated"
	"hotel-core/internal/pkg/pgconv"
)

func MovementToInsertParams(mv *ledger.Movement) (sqlc.InsertAccountMovementParams, error) {
	meta, err := pgconv.JSONBFromMap(mv.Metadata())
	if err != nil {
		return sqlc.InsertAccountMovementParams{}, err
	}
	return sqlc.InsertAccountMovementParams{
		ID:          mv.ID(),
		ClientID:    mv.ClientID(),
		Type:        string(mv.Type()),
		Amount:      pgconv.NumericFromDecimal(mv.Amount()),
		Balance:     pgconv.NumericFromDecimal(mv.Balance()),
		Status:      string(mv.Status()),
		Reference:   mv.Reference(),
		Description: mv.Description(),
		Metadata:    meta,
		ReversalOf:  pgconv.UUIDPtrToPgtype(mv.ReversalOf()),
		CreatedAt:   pgconv.TimeToPgtype(mv.CreatedAt()),
	}, nil
}

func MovementFromRow(row sqlc.AccountMovements) (*ledger.Movement, error) {
	amount, err := pgconv.DecimalFromNumeric(row.Amount)
	if err != nil {
		return nil, err
	}
	balance, err := pgconv.DecimalFromNumeric(row.Balance)
	if err != nil {
		return nil, err
	}
	meta, err := pgconv.MapFromJSONB(row.Metadata)
	if err != nil {
		return nil, err
	}
	return ledger.ReconstructMovement(ledger.Record{
		ID:          row.ID,
		ClientID:    row.ClientID,
		Type:        ledger.MovementType(row.Type),
		Amount:      amount,
		Balance:     balance,
		Status:      ledger.Status(row.Status),
		Reference:   row.Reference,
		Description: row.Description,
		Metadata:    meta,
		ReversalOf:  pgconv.UUIDPtrFromPgtype(row.ReversalOf),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}), nil
}

func HeadFromRow(row sqlc.ClientLedgerHeads) (ledger.Head, error) {
	balance, err := pgconv.DecimalFromNumeric(row.Balance)
	if err != nil {
		return ledger.Head{}, err
	}
	head := ledger.Head{Balance: balance}
	if row.LastMovementAt.Valid {
		head.LastPostedAt = row.LastMovementAt.Time
	}
	return head, nil
}
