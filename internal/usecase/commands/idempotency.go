package commands

import (
	"context"
	"log/slog"
	"strings"

	"hotel-core/internal/domain/reservation"
	"hotel-core/internal/infra"
	"hotel-core/internal/pkg/errs"
	"hotel-core/internal/usecase/shared"
)

const MaxIdempotencyKeyLength = 255

// IdempotencyGuard deduplicates reservation creation by client-supplied key.
// The unique index on the key decides races; the lookup only short-cuts replays.
type IdempotencyGuard struct{}

func NewIdempotencyGuard() *IdempotencyGuard {
	return &IdempotencyGuard{}
}

func NormalizeIdempotencyKey(key *string) (string, error) {
	if key == nil {
		return "", nil
	}
	k := strings.TrimSpace(*key)
	if len(k) > MaxIdempotencyKeyLength {
		return "", ErrIdempotencyKeyLength
	}
	return k, nil
}

// Reserve returns the reservation stored under key, or persists the one built
// by create. The boolean reports a replay.
func (g *IdempotencyGuard) Reserve(
	ctx context.Context,
	tx shared.Tx,
	key string,
	fingerprint string,
	create func(ctx context.Context) (*reservation.Reservation, error),
) (*reservation.Reservation, bool, error) {
	if key != "" {
		existing, err := g.lookup(ctx, tx, key, fingerprint)
		if err != nil {
			return nil, false, err
		}
		if existing != nil {
			slog.Info("replaying reservation for idempotency key", "reservation_id", existing.ID())
			return existing, true, nil
		}
	}

	res, err := create(ctx)
	if err != nil {
		return nil, false, err
	}

	inserted, err := tx.Reservations().Insert(ctx, res)
	if err != nil {
		return nil, false, writeErr(err)
	}
	if inserted {
		return res, false, nil
	}
	if key == "" {
		return nil, false, errs.New("reservation insert affected no rows")
	}

	// A concurrent request committed the same key first.
	existing, err := g.lookup(ctx, tx, key, fingerprint)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		return nil, false, errs.New("reservation for idempotency key disappeared after insert conflict")
	}
	slog.Info("idempotency key won by concurrent request", "reservation_id", existing.ID())
	return existing, true, nil
}

func (g *IdempotencyGuard) lookup(ctx context.Context, tx shared.Tx, key, fingerprint string) (*reservation.Reservation, error) {
	existing, err := tx.Reservations().FindByIdempotencyKey(ctx, key)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if !existing.MatchesRequest(fingerprint) {
		return nil, ErrIdempotencyKeyReused
	}
	return existing, nil
}
