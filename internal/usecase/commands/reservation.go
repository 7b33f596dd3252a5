package commands

import (
	"context"
	"log/slog"
	"time"

	"hotel-core/internal/domain/invoice"
	"hotel-core/internal/domain/reservation"
	"hotel-core/internal/domain/room"
	"hotel-core/internal/pkg/clock"
	"hotel-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReservationInput struct {
	ClientID       uuid.UUID
	RoomID         uuid.UUID
	Stay           reservation.DateRange
	IdempotencyKey *string
}

type CreateReservationResult struct {
	Reservation *reservation.Reservation
	Replayed    bool
}

type ModifyDatesInput struct {
	ReservationID uuid.UUID
	Version       int64
	CheckIn       *time.Time
	CheckOut      *time.Time
}

type TransitionInput struct {
	ReservationID uuid.UUID
	Version       int64
	Metadata      map[string]any
}

type CancelInput struct {
	ReservationID uuid.UUID
	Version       int64
	Reason        string
}

type CheckOutResult struct {
	Reservation *reservation.Reservation
	Invoice     *invoice.Invoice
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, in CreateReservationInput) (*CreateReservationResult, error)
	ModifyDates(ctx context.Context, in ModifyDatesInput) (*reservation.Reservation, error)
	CheckIn(ctx context.Context, in TransitionInput) (*reservation.Reservation, error)
	CheckOut(ctx context.Context, in TransitionInput) (*CheckOutResult, error)
	CancelReservation(ctx context.Context, in CancelInput) (*reservation.Reservation, error)
}

// reservationLedger owns the reservation state machine. Every operation locks
// the room before touching reservations so booking and check-in/out on the
// same room serialize.
type reservationLedger struct {
	uow          shared.UnitOfWork
	availability *AvailabilityChecker
	guard        *IdempotencyGuard
	invoices     *InvoiceGenerator
	clock        clock.Clock
}

func NewReservationUseCase(
	uow shared.UnitOfWork,
	availability *AvailabilityChecker,
	guard *IdempotencyGuard,
	invoices *InvoiceGenerator,
	clk clock.Clock,
) ReservationCommands {
	return &reservationLedger{
		uow:          uow,
		availability: availability,
		guard:        guard,
		invoices:     invoices,
		clock:        clk,
	}
}

func (uc *reservationLedger) CreateReservation(ctx context.Context, in CreateReservationInput) (*CreateReservationResult, error) {
	if in.Stay.IsZero() {
		return nil, domainErr(reservation.ErrInvalidDateRange)
	}
	if in.Stay.StartsBefore(clock.Today(uc.clock)) {
		return nil, domainErr(reservation.ErrStayInPast)
	}
	key, err := NormalizeIdempotencyKey(in.IdempotencyKey)
	if err != nil {
		return nil, err
	}
	fingerprint := reservation.Fingerprint(in.ClientID, in.RoomID, in.Stay)

	var result CreateReservationResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().ClientByID(ctx, in.ClientID); err != nil {
			return notFoundOr(err, ErrClientNotFound)
		}
		// Same-key requests queue behind this lock, so the replay lookup
		// below sees the winner's row once it commits.
		rm, err := tx.Rooms().GetForUpdate(ctx, in.RoomID)
		if err != nil {
			return notFoundOr(err, ErrRoomNotFound)
		}

		res, replayed, err := uc.guard.Reserve(ctx, tx, key, fingerprint, func(ctx context.Context) (*reservation.Reservation, error) {
			if !rm.IsBookable() {
				return nil, domainErr(room.ErrRoomNotBookable)
			}
			free, err := uc.availability.IsAvailable(ctx, tx, in.RoomID, in.Stay, nil)
			if err != nil {
				return nil, err
			}
			if !free {
				return nil, ErrRoomUnavailable
			}
			res, err := reservation.NewReservation(uc.clock, reservation.NewParams{
				ClientID:       in.ClientID,
				RoomID:         in.RoomID,
				Stay:           in.Stay,
				IdempotencyKey: &key,
			})
			if err != nil {
				return nil, domainErr(err)
			}
			return res, nil
		})
		if err != nil {
			return err
		}

		result = CreateReservationResult{Reservation: res, Replayed: replayed}
		if replayed {
			return nil
		}
		return enqueue(ctx, tx, uc.clock, TopicReservationCreated, res.ID(), reservationEvent(res))
	})
	if err != nil {
		return nil, err
	}

	if !result.Replayed {
		slog.Info("reservation created",
			"reservation_id", result.Reservation.ID(),
			"room_id", in.RoomID,
			"stay", in.Stay.String())
	}
	return &result, nil
}

func (uc *reservationLedger) ModifyDates(ctx context.Context, in ModifyDatesInput) (*reservation.Reservation, error) {
	if in.Version < 1 {
		return nil, ErrInvalidVersion
	}
	if in.CheckIn == nil && in.CheckOut == nil {
		return nil, ErrNoDatesGiven
	}

	var updated *reservation.Reservation
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := uc.load(ctx, tx, in.ReservationID, in.Version)
		if err != nil {
			return err
		}
		if _, err := tx.Rooms().GetForUpdate(ctx, res.RoomID()); err != nil {
			return notFoundOr(err, ErrRoomNotFound)
		}

		if err := res.ModifyDates(uc.clock, in.CheckIn, in.CheckOut); err != nil {
			return domainErr(err)
		}
		self := res.ID()
		free, err := uc.availability.IsAvailable(ctx, tx, res.RoomID(), res.Stay(), &self)
		if err != nil {
			return err
		}
		if !free {
			return ErrRoomUnavailable
		}

		if err := tx.Reservations().Update(ctx, res, in.Version); err != nil {
			return writeErr(err)
		}
		updated = res
		return enqueue(ctx, tx, uc.clock, TopicReservationDatesChanged, res.ID(), reservationEvent(res))
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// CheckIn occupies the room. A room under maintenance is a conflict even when
// the reservation itself is ready.
func (uc *reservationLedger) CheckIn(ctx context.Context, in TransitionInput) (*reservation.Reservation, error) {
	if in.Version < 1 {
		return nil, ErrInvalidVersion
	}
	meta, err := reservation.NewMetadata(in.Metadata)
	if err != nil {
		return nil, domainErr(err)
	}

	var updated *reservation.Reservation
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := uc.load(ctx, tx, in.ReservationID, in.Version)
		if err != nil {
			return err
		}
		rm, err := tx.Rooms().GetForUpdate(ctx, res.RoomID())
		if err != nil {
			return notFoundOr(err, ErrRoomNotFound)
		}

		if err := res.CheckIn(uc.clock, meta); err != nil {
			return domainErr(err)
		}
		if err := rm.Occupy(uc.clock.Now()); err != nil {
			return domainErr(err)
		}
		if err := tx.Rooms().UpdateStatus(ctx, rm); err != nil {
			return notFoundOr(err, ErrRoomNotFound)
		}
		if err := tx.Reservations().Update(ctx, res, in.Version); err != nil {
			return writeErr(err)
		}
		updated = res
		return enqueue(ctx, tx, uc.clock, TopicReservationCheckedIn, res.ID(), reservationEvent(res))
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// CheckOut frees the room and bills the stay in one transaction.
func (uc *reservationLedger) CheckOut(ctx context.Context, in TransitionInput) (*CheckOutResult, error) {
	if in.Version < 1 {
		return nil, ErrInvalidVersion
	}
	meta, err := reservation.NewMetadata(in.Metadata)
	if err != nil {
		return nil, domainErr(err)
	}

	var result CheckOutResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := uc.load(ctx, tx, in.ReservationID, in.Version)
		if err != nil {
			return err
		}
		rm, err := tx.Rooms().GetForUpdate(ctx, res.RoomID())
		if err != nil {
			return notFoundOr(err, ErrRoomNotFound)
		}

		if err := res.CheckOut(uc.clock, meta); err != nil {
			return domainErr(err)
		}
		if err := rm.Release(uc.clock.Now()); err != nil {
			return domainErr(err)
		}
		if err := tx.Rooms().UpdateStatus(ctx, rm); err != nil {
			return notFoundOr(err, ErrRoomNotFound)
		}
		if err := tx.Reservations().Update(ctx, res, in.Version); err != nil {
			return writeErr(err)
		}

		inv, err := uc.invoices.Generate(ctx, tx, res, rm)
		if err != nil {
			return err
		}
		result = CheckOutResult{Reservation: res, Invoice: inv}
		return enqueue(ctx, tx, uc.clock, TopicReservationCheckedOut, res.ID(), reservationEvent(res))
	})
	if err != nil {
		return nil, err
	}

	slog.Info("reservation checked out",
		"reservation_id", result.Reservation.ID(),
		"invoice_number", result.Invoice.Number(),
		"total", result.Invoice.Total().StringFixed(2))
	return &result, nil
}

func (uc *reservationLedger) CancelReservation(ctx context.Context, in CancelInput) (*reservation.Reservation, error) {
	if in.Version < 1 {
		return nil, ErrInvalidVersion
	}

	var updated *reservation.Reservation
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := uc.load(ctx, tx, in.ReservationID, in.Version)
		if err != nil {
			return err
		}
		rm, err := tx.Rooms().GetForUpdate(ctx, res.RoomID())
		if err != nil {
			return notFoundOr(err, ErrRoomNotFound)
		}

		wasInProgress := res.Status() == reservation.StatusInProgress
		if err := res.Cancel(uc.clock, in.Reason); err != nil {
			return domainErr(err)
		}
		if wasInProgress && rm.Status() == room.StatusOccupied {
			if err := rm.Release(uc.clock.Now()); err != nil {
				return domainErr(err)
			}
			if err := tx.Rooms().UpdateStatus(ctx, rm); err != nil {
				return notFoundOr(err, ErrRoomNotFound)
			}
		}
		if err := tx.Reservations().Update(ctx, res, in.Version); err != nil {
			return writeErr(err)
		}
		updated = res
		return enqueue(ctx, tx, uc.clock, TopicReservationCancelled, res.ID(), reservationEvent(res))
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// load reads the reservation and rejects a stale version before any write.
func (uc *reservationLedger) load(ctx context.Context, tx shared.Tx, id uuid.UUID, version int64) (*reservation.Reservation, error) {
	res, err := tx.Reservations().FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, ErrReservationNotFound)
	}
	if res.Version() != version {
		return nil, ErrStaleVersion
	}
	return res, nil
}
