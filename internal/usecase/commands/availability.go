package commands

import (
	"context"

	"hotel-core/internal/domain/reservation"
	"hotel-core/internal/usecase/shared"

	"github.com/google/uuid"
)

// AvailabilityChecker answers whether a room is free for a stay. It must run
// in the same transaction as the write it guards, after the room is locked.
type AvailabilityChecker struct{}

func NewAvailabilityChecker() *AvailabilityChecker {
	return &AvailabilityChecker{}
}

// IsAvailable ignores exclude, so a reservation can be re-validated against
// everything but itself.
func (c *AvailabilityChecker) IsAvailable(ctx context.Context, tx shared.Tx, roomID uuid.UUID, stay reservation.DateRange, exclude *uuid.UUID) (bool, error) {
	overlapping, err := tx.Reservations().HasOverlap(ctx, roomID, stay, exclude)
	if err != nil {
		return false, err
	}
	return !overlapping, nil
}
