package queries

import (
	"hotel-core/internal/pkg/errs"
)

var (
	ErrReservationNotFound = errs.Mark(errs.New("reservation not found"), errs.ErrNotFound)
	ErrRoomNotFound        = errs.Mark(errs.New("room not found"), errs.ErrNotFound)
	ErrClientNotFound      = errs.Mark(errs.New("client not found"), errs.ErrNotFound)
	ErrInvoiceNotFound     = errs.Mark(errs.New("invoice not found"), errs.ErrNotFound)
	ErrInvalidCursor       = errs.Mark(errs.New("invalid cursor"), errs.ErrValidation)
	ErrInvalidPage         = errs.Mark(errs.New("page must be a positive integer"), errs.ErrValidation)
	ErrInvalidGuests       = errs.Mark(errs.New("guests must be a positive integer"), errs.ErrValidation)
)
