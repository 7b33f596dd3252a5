package commands

import (
	"errors"

	"hotel-core/internal/domain/invoice"
	"hotel-core/internal/domain/ledger"
	"hotel-core/internal/domain/reservation"
	"hotel-core/internal/domain/room"
	"hotel-core/internal/infra"
	"hotel-core/internal/pkg/errs"
)

var (
	ErrClientNotFound      = errs.Mark(errs.New("client not found"), errs.ErrNotFound)
	ErrRoomNotFound        = errs.Mark(errs.New("room not found"), errs.ErrNotFound)
	ErrReservationNotFound = errs.Mark(errs.New("reservation not found"), errs.ErrNotFound)
	ErrInvoiceNotFound     = errs.Mark(errs.New("invoice not found"), errs.ErrNotFound)
	ErrMovementNotFound    = errs.Mark(errs.New("account movement not found"), errs.ErrNotFound)

	ErrStaleVersion         = errs.Mark(errs.New("reservation was modified concurrently, re-read and retry"), errs.ErrConcurrencyConflict)
	ErrRoomUnavailable      = errs.Mark(errs.New("room is already booked for the requested dates"), errs.ErrConflict)
	ErrInvoiceAlreadyIssued = errs.Mark(errs.New("reservation already has an invoice"), errs.ErrConflict)
	ErrMovementReversed     = errs.Mark(errs.New("movement is already reversed"), errs.ErrConflict)
	ErrIdempotencyKeyReused = errs.Mark(errs.New("idempotency key was already used with a different request"), errs.ErrIdempotencyConflict)

	ErrInvalidVersion       = errs.Mark(errs.New("version must be a positive integer"), errs.ErrValidation)
	ErrNoDatesGiven         = errs.Mark(errs.New("checkIn or checkOut is required"), errs.ErrValidation)
	ErrIdempotencyKeyLength = errs.Mark(errs.New("idempotency key is too long (max 255 characters)"), errs.ErrValidation)
	ErrClientMismatch       = errs.Mark(errs.New("invoice belongs to a different client"), errs.ErrValidation)
	ErrReasonRequired       = errs.Mark(errs.New("reason is required"), errs.ErrValidation)
)

// conflictingStates are domain errors raised by a well-formed request that
// the current resource state rejects.
var conflictingStates = []error{
	reservation.ErrInvalidTransition,
	room.ErrRoomNotBookable,
	room.ErrRoomNotReady,
	room.ErrRoomOccupied,
	room.ErrRoomNotOccupied,
	invoice.ErrInvoiceCancelled,
	invoice.ErrInvoiceAlreadyPaid,
	invoice.ErrCannotCancel,
	ledger.ErrAlreadyReversed,
	ledger.ErrCompensatingMovement,
	ledger.ErrMovementNotCompleted,
}

// domainErr classifies an error returned by a domain entity.
func domainErr(err error) error {
	if err == nil {
		return nil
	}
	for _, target := range conflictingStates {
		if errors.Is(err, target) {
			return errs.AsConflict(err)
		}
	}
	return errs.AsValidation(err)
}

// notFoundOr replaces a storage miss with the use case's not-found error.
func notFoundOr(err, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return notFound
	}
	return err
}

// writeErr classifies failures of conditional reservation writes.
func writeErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindStaleVersion):
		return ErrStaleVersion
	case infra.IsKind(err, infra.KindConflict):
		return ErrRoomUnavailable
	default:
		return err
	}
}
