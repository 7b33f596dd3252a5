//go:build unit

package outbox_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-core/internal/infra/memstore"
	"hotel-core/internal/pkg/clock"
	"hotel-core/internal/pkg/config"
	"hotel-core/internal/usecase/shared"
	"hotel-core/internal/worker/outbox"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, msg shared.OutboxMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type relayFixture struct {
	ctx       context.Context
	store     *memstore.Store
	uow       shared.UnitOfWork
	clock     *clock.MockClock
	publisher *mockPublisher
	relay     *outbox.Relay
}

func newRelayFixture(t *testing.T, maxAttempts int) *relayFixture {
	t.Helper()
	store := memstore.New()
	uow := memstore.NewUnitOfWork(store)
	clk := clock.NewMockClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	pub := &mockPublisher{}
	t.Cleanup(func() { pub.AssertExpectations(t) })

	relay, err := outbox.NewRelay(uow, pub, clk, config.BrokerConfig{
		PollInterval: time.Second,
		BatchSize:    10,
		MaxAttempts:  maxAttempts,
	})
	require.NoError(t, err)

	return &relayFixture{
		ctx:       context.Background(),
		store:     store,
		uow:       uow,
		clock:     clk,
		publisher: pub,
		relay:     relay,
	}
}

func (f *relayFixture) enqueue(t *testing.T, topic string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	err := f.uow.Within(f.ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Outbox().Enqueue(ctx, shared.OutboxMessage{
			ID:          id,
			Topic:       topic,
			AggregateID: uuid.New(),
			Payload:     []byte(`{}`),
			RunAt:       f.clock.Now(),
		})
	})
	require.NoError(t, err)
	return id
}

func TestRelay_RunOnce(t *testing.T) {
	t.Run("success: publishes every due event once", func(t *testing.T) {
		f := newRelayFixture(t, 3)
		ids := []uuid.UUID{
			f.enqueue(t, "reservation.created"),
			f.enqueue(t, "invoice.issued"),
			f.enqueue(t, "payment.registered"),
		}
		f.publisher.On("Publish", mock.Anything, mock.AnythingOfType("shared.OutboxMessage")).Return(nil).Times(3)

		published, err := f.relay.RunOnce(f.ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, published)

		statuses := f.store.OutboxStatuses()
		for _, id := range ids {
			assert.Equal(t, shared.OutboxPublished, statuses[id])
		}

		published, err = f.relay.RunOnce(f.ctx)
		require.NoError(t, err)
		assert.Zero(t, published)
	})

	t.Run("failure: event stays queued and waits for its backoff", func(t *testing.T) {
		f := newRelayFixture(t, 3)
		id := f.enqueue(t, "reservation.created")
		f.publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

		published, err := f.relay.RunOnce(f.ctx)
		require.NoError(t, err)
		assert.Zero(t, published)
		assert.Equal(t, shared.OutboxQueued, f.store.OutboxStatuses()[id])

		// not due yet: the publisher must not be called again
		published, err = f.relay.RunOnce(f.ctx)
		require.NoError(t, err)
		assert.Zero(t, published)

		f.clock.Add(time.Second)
		f.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()
		published, err = f.relay.RunOnce(f.ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, published)
		assert.Equal(t, shared.OutboxPublished, f.store.OutboxStatuses()[id])
	})

	t.Run("failure: gives up after max attempts", func(t *testing.T) {
		f := newRelayFixture(t, 2)
		id := f.enqueue(t, "ledger.adjusted")
		f.publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("channel closed")).Twice()

		_, err := f.relay.RunOnce(f.ctx)
		require.NoError(t, err)
		f.clock.Add(time.Minute)
		_, err = f.relay.RunOnce(f.ctx)
		require.NoError(t, err)

		assert.Equal(t, shared.OutboxFailed, f.store.OutboxStatuses()[id])

		f.clock.Add(time.Hour)
		published, err := f.relay.RunOnce(f.ctx)
		require.NoError(t, err)
		assert.Zero(t, published)
	})
}

func TestNewRelay(t *testing.T) {
	valid := config.BrokerConfig{PollInterval: time.Second, BatchSize: 10, MaxAttempts: 3}
	cases := []struct {
		name   string
		mutate func(*config.BrokerConfig)
		errMsg string
	}{
		{name: "zero poll interval", mutate: func(c *config.BrokerConfig) { c.PollInterval = 0 }, errMsg: "OUTBOX_POLL_INTERVAL"},
		{name: "negative poll interval", mutate: func(c *config.BrokerConfig) { c.PollInterval = -time.Second }, errMsg: "OUTBOX_POLL_INTERVAL"},
		{name: "zero batch size", mutate: func(c *config.BrokerConfig) { c.BatchSize = 0 }, errMsg: "OUTBOX_BATCH_SIZE"},
		{name: "zero max attempts", mutate: func(c *config.BrokerConfig) { c.MaxAttempts = 0 }, errMsg: "OUTBOX_MAX_ATTEMPTS"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := valid
			c.mutate(&cfg)
			relay, err := outbox.NewRelay(memstore.NewUnitOfWork(memstore.New()), &mockPublisher{}, clock.NewRealClock(), cfg)
			require.Error(t, err)
			assert.Nil(t, relay)
			assert.Contains(t, err.Error(), c.errMsg)
		})
	}

	t.Run("success: valid config", func(t *testing.T) {
		relay, err := outbox.NewRelay(memstore.NewUnitOfWork(memstore.New()), &mockPublisher{}, clock.NewRealClock(), valid)
		require.NoError(t, err)
		assert.NotNil(t, relay)
	})
}

func TestRelay_Run(t *testing.T) {
	t.Run("stops when the context is cancelled", func(t *testing.T) {
		f := newRelayFixture(t, 3)
		ctx, cancel := context.WithCancel(f.ctx)

		done := make(chan struct{})
		go func() {
			f.relay.Run(ctx)
			close(done)
		}()
		cancel()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("relay did not stop after cancel")
		}
	})
}
