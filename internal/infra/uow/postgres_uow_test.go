//go:build unit

package uow

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTx struct {
	pgx.Tx
	commitErr  error
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Commit(context.Context) error {
	if f.commitErr != nil {
		return f.commitErr
	}
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(context.Context) error {
	if f.committed {
		return pgx.ErrTxClosed
	}
	f.rolledBack = true
	return nil
}

type fakeStarter struct {
	txs   []*fakeTx
	began int
}

func (f *fakeStarter) BeginTx(context.Context, pgx.TxOptions) (pgx.Tx, error) {
	tx := &fakeTx{}
	if f.began < len(f.txs) {
		tx = f.txs[f.began]
	}
	f.began++
	return tx, nil
}

func newTestUoW(starter TxStarter) *PostgresUoW {
	return &PostgresUoW{pool: starter, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func TestWithin_CommitsOnSuccess(t *testing.T) {
	tx := &fakeTx{}
	starter := &fakeStarter{txs: []*fakeTx{tx}}

	err := newTestUoW(starter).Within(context.Background(), func(_ context.Context, repos shared.Tx) error {
		assert.Same(t, repos.Rooms(), repos.Rooms())
		assert.NotNil(t, repos.Reservations())
		assert.NotNil(t, repos.Users())
		return nil
	})

	require.NoError(t, err)
	assert.True(t, tx.committed)
	assert.Equal(t, 1, starter.began)
}

func TestWithin_RollsBackOnError(t *testing.T) {
	tx := &fakeTx{}
	starter := &fakeStarter{txs: []*fakeTx{tx}}
	boom := errors.New("slot taken")

	err := newTestUoW(starter).Within(context.Background(), func(context.Context, shared.Tx) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.True(t, tx.rolledBack)
	assert.Equal(t, 1, starter.began)
}

func TestWithin_RetriesSerializationFailure(t *testing.T) {
	starter := &fakeStarter{}
	calls := 0

	err := newTestUoW(starter).Within(context.Background(), func(context.Context, shared.Tx) error {
		calls++
		if calls == 1 {
			return &pgconn.PgError{Code: pgErrCodeSerializationFailure}
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, starter.began)
}

func TestWithin_GivesUpAfterMaxRetries(t *testing.T) {
	starter := &fakeStarter{}

	err := newTestUoW(starter).Within(context.Background(), func(context.Context, shared.Tx) error {
		return &pgconn.PgError{Code: pgErrCodeDeadlockDetected}
	})

	assert.True(t, errs.Is(err, errMaxRetriesExceeded))
	assert.Equal(t, maxRetries+1, starter.began)
}

func TestWithin_MarksCommitFailure(t *testing.T) {
	starter := &fakeStarter{txs: []*fakeTx{{commitErr: errors.New("connection reset")}}}

	err := newTestUoW(starter).Within(context.Background(), func(context.Context, shared.Tx) error {
		return nil
	})

	assert.True(t, errs.Is(err, errTransactionCommit))
}

func TestWithin_StopsWhenContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	starter := &fakeStarter{}

	err := newTestUoW(starter).Within(ctx, func(context.Context, shared.Tx) error {
		cancel()
		return &pgconn.PgError{Code: pgErrCodeSerializationFailure}
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, starter.began)
}

func TestCalculateBackoff(t *testing.T) {
	for attempt, floor := range []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 400 * time.Millisecond} {
		got := calculateBackoff(attempt, backoffBase)
		assert.GreaterOrEqual(t, got, floor)
		assert.Less(t, got, floor+floor/5+time.Millisecond)
	}
}
