package converter

import (
	"hotel-core/internal/domain/reservation"
	sqlc "hotel-core/internal/infra/sqlc/generated"
	"hotel-core/internal/pkg/pgconv"
)

func ReservationToInsertParams(res *reservation.Reservation) sqlc.InsertReservationParams {
	stay := res.Stay()
	return sqlc.InsertReservationParams{
		ID:                 res.ID(),
		Code:               res.Code(),
		ClientID:           res.ClientID(),
		RoomID:             res.RoomID(),
		CheckIn:            pgconv.DateToPgtype(stay.CheckIn()),
		CheckOut:           pgconv.DateToPgtype(stay.CheckOut()),
		Status:             res.Status().String(),
		Version:            res.Version(),
		IdempotencyKey:     pgconv.StringPtrToPgtype(res.IdempotencyKey()),
		RequestFingerprint: res.RequestFingerprint(),
		CreatedAt:          pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt:          pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationToUpdateParams(res *reservation.Reservation, expectedVersion int64) (sqlc.UpdateReservationParams, error) {
	checkInMeta, err := pgconv.JSONBFromMap(res.CheckInMetadata())
	if err != nil {
		return sqlc.UpdateReservationParams{}, err
	}
	checkOutMeta, err := pgconv.JSONBFromMap(res.CheckOutMetadata())
	if err != nil {
		return sqlc.UpdateReservationParams{}, err
	}

	stay := res.Stay()
	return sqlc.UpdateReservationParams{
		CheckIn:            pgconv.DateToPgtype(stay.CheckIn()),
		CheckOut:           pgconv.DateToPgtype(stay.CheckOut()),
		Status:             res.Status().String(),
		CancellationReason: pgconv.StringPtrToPgtype(res.CancellationReason()),
		Version:            res.Version(),
		CheckInMetadata:    checkInMeta,
		CheckOutMetadata:   checkOutMeta,
		UpdatedAt:          pgconv.TimeToPgtype(res.UpdatedAt()),
		ID:                 res.ID(),
		ExpectedVersion:    expectedVersion,
	}, nil
}

func ReservationFromRow(row sqlc.Reservations) (*reservation.Reservation, error) {
	checkInMeta, err := pgconv.MapFromJSONB(row.CheckInMetadata)
	if err != nil {
		return nil, err
	}
	checkOutMeta, err := pgconv.MapFromJSONB(row.CheckOutMetadata)
	if err != nil {
		return nil, err
	}

	return reservation.ReconstructReservation(reservation.Record{
		ID:                 row.ID,
		Code:               row.Code,
		ClientID:           row.ClientID,
		RoomID:             row.RoomID,
		CheckIn:            pgconv.DateFromPgtype(row.CheckIn),
		CheckOut:           pgconv.DateFromPgtype(row.CheckOut),
		Status:             reservation.Status(row.Status),
		CancellationReason: pgconv.StringPtrFromPgtype(row.CancellationReason),
		Version:            row.Version,
		IdempotencyKey:     pgconv.StringPtrFromPgtype(row.IdempotencyKey),
		Fingerprint:        row.RequestFingerprint,
		CheckInMetadata:    checkInMeta,
		CheckOutMetadata:   checkOutMeta,
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}
