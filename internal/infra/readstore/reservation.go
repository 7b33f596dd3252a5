package readstore

import (
	"context"
	"time"

	"hotel-core/internal/infra"
	sqlc "hotel-core/internal/infra/sqlc/generated"
	"hotel-core/internal/pkg/pgconv"
	"hotel-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationReadQueries interface {
	GetReservationView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationViewRow, error)
	ListReservationsByClientFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByClientFirstPageParams) ([]sqlc.ListReservationsByClientFirstPageRow, error)
	ListReservationsByClientKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByClientKeysetParams) ([]sqlc.ListReservationsByClientKeysetRow, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationReadQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationView(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reservation view", err)
	}

	checkInMeta, err := pgconv.MapFromJSONB(row.CheckInMetadata)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid check-in metadata", err, infra.KindDBFailure)
	}
	checkOutMeta, err := pgconv.MapFromJSONB(row.CheckOutMetadata)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid check-out metadata", err, infra.KindDBFailure)
	}

	return &queries.ReservationView{
		ID:                 row.ID,
		Code:               row.Code,
		ClientID:           row.ClientID,
		RoomID:             row.RoomID,
		RoomNumber:         row.RoomNumber,
		RoomType:           row.RoomType,
		CheckIn:            pgconv.DateFromPgtype(row.CheckIn),
		CheckOut:           pgconv.DateFromPgtype(row.CheckOut),
		Status:             row.Status,
		CancellationReason: pgconv.StringPtrFromPgtype(row.CancellationReason),
		Version:            row.Version,
		CheckInMetadata:    checkInMeta,
		CheckOutMetadata:   checkOutMeta,
		InvoiceID:          pgconv.UUIDPtrFromPgtype(row.InvoiceID),
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *ReservationReadStore) FindByClientFirstPage(ctx context.Context, clientID uuid.UUID, limit int) ([]*queries.ReservationListItem, error) {
	rows, err := r.queries.ListReservationsByClientFirstPage(ctx, r.db, sqlc.ListReservationsByClientFirstPageParams{
		ClientID: clientID,
		Limit:    pgconv.IntToInt32(limit),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by client", err)
	}

	items := make([]*queries.ReservationListItem, len(rows))
	for i, row := range rows {
		items[i] = &queries.ReservationListItem{
			ID:         row.ID,
			Code:       row.Code,
			RoomID:     row.RoomID,
			RoomNumber: row.RoomNumber,
			CheckIn:    pgconv.DateFromPgtype(row.CheckIn),
			CheckOut:   pgconv.DateFromPgtype(row.CheckOut),
			Status:     row.Status,
			Version:    row.Version,
			CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return items, nil
}

func (r *ReservationReadStore) FindByClientKeyset(ctx context.Context, clientID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int) ([]*queries.ReservationListItem, error) {
	rows, err := r.queries.ListReservationsByClientKeyset(ctx, r.db, sqlc.ListReservationsByClientKeysetParams{
		ClientID:  clientID,
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Limit:     pgconv.IntToInt32(limit),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by client after cursor", err)
	}

	items := make([]*queries.ReservationListItem, len(rows))
	for i, row := range rows {
		items[i] = &queries.ReservationListItem{
			ID:         row.ID,
			Code:       row.Code,
			RoomID:     row.RoomID,
			RoomNumber: row.RoomNumber,
			CheckIn:    pgconv.DateFromPgtype(row.CheckIn),
			CheckOut:   pgconv.DateFromPgtype(row.CheckOut),
			Status:     row.Status,
			Version:    row.Version,
			CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return items, nil
}
