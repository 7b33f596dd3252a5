package repository

import (
	"context"

	"hotel-core/internal/domain/reservation"
	"hotel-core/internal/infra"
	"hotel-core/internal/infra/repository/converter"
	sqlc "hotel-core/internal/infra/sqlc/generated"
	"hotel-core/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationWriteQueries interface {
	InsertReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertReservationParams) (int64, error)
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	GetReservationByIdempotencyKey(ctx context.Context, db sqlc.DBTX, idempotencyKey pgtype.Text) (sqlc.Reservations, error)
	ExistsOverlappingReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.ExistsOverlappingReservationParams) (bool, error)
	UpdateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationParams) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

// Insert relies on the idempotency_key unique index: a concurrent request
// with the same key inserts nothing and reports false.
func (r *ReservationRepository) Insert(ctx context.Context, res *reservation.Reservation) (bool, error) {
	params := converter.ReservationToInsertParams(res)

	affected, err := r.queries.InsertReservation(ctx, r.db, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert reservation", err)
	}
	return affected == 1, nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return toReservation(row)
}

func (r *ReservationRepository) FindByIdempotencyKey(ctx context.Context, key string) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByIdempotencyKey(ctx, r.db, pgconv.StringToPgtype(key))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation by idempotency key", err)
	}
	return toReservation(row)
}

func (r *ReservationRepository) HasOverlap(ctx context.Context, roomID uuid.UUID, stay reservation.DateRange, exclude *uuid.UUID) (bool, error) {
	params := sqlc.ExistsOverlappingReservationParams{
		RoomID:    roomID,
		CheckIn:   pgconv.DateToPgtype(stay.CheckIn()),
		CheckOut:  pgconv.DateToPgtype(stay.CheckOut()),
		ExcludeID: pgconv.UUIDPtrToPgtype(exclude),
	}
	overlapping, err := r.queries.ExistsOverlappingReservation(ctx, r.db, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check reservation overlap", err)
	}
	return overlapping, nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation, expectedVersion int64) error {
	params, err := converter.ReservationToUpdateParams(res, expectedVersion)
	if err != nil {
		return infra.WrapRepoErr("failed to encode reservation metadata", err, infra.KindDBFailure)
	}

	affected, err := r.queries.UpdateReservation(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("reservation version changed concurrently", nil, infra.KindStaleVersion)
	}
	return nil
}

func toReservation(row sqlc.Reservations) (*reservation.Reservation, error) {
	res, err := converter.ReservationFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode reservation row", err, infra.KindDBFailure)
	}
	return res, nil
}
