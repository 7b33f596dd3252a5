package commands

import (
	"context"
	"strings"

	"hotel-core/internal/domain/room"
	"hotel-core/internal/pkg/clock"
	"hotel-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomCommands interface {
	ChangeRoomStatus(ctx context.Context, roomID uuid.UUID, status string) (*room.Room, error)
}

type roomUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRoomUseCase(uow shared.UnitOfWork, clk clock.Clock) RoomCommands {
	return &roomUseCaseImpl{uow: uow, clock: clk}
}

// ChangeRoomStatus is the maintenance path. OCCUPIED rooms are left to check-out.
func (uc *roomUseCaseImpl) ChangeRoomStatus(ctx context.Context, roomID uuid.UUID, status string) (*room.Room, error) {
	target := room.Status(strings.ToUpper(strings.TrimSpace(status)))
	if !target.IsValid() {
		return nil, domainErr(room.ErrInvalidStatus)
	}
	if !target.IsServiceStatus() {
		return nil, domainErr(room.ErrStatusNotSettable)
	}

	var updated *room.Room
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := tx.Rooms().GetForUpdate(ctx, roomID)
		if err != nil {
			return notFoundOr(err, ErrRoomNotFound)
		}
		if err := rm.SetServiceStatus(target, uc.clock.Now()); err != nil {
			return domainErr(err)
		}
		if err := tx.Rooms().UpdateStatus(ctx, rm); err != nil {
			return notFoundOr(err, ErrRoomNotFound)
		}
		updated = rm
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
