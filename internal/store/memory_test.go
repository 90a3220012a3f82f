package store

import (
	"context"
	"testing"
	"time"

	"cglines/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTx(txType string, amount int64) domain.Transaction {
	return domain.Transaction{
		ID:     "tx-" + txType,
		Amount: amount,
		Type:   txType,
		Date:   time.Now().UTC(),
	}
}

func TestMemoryStoreLoadInitializes(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	data, err := s.Load(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(0), data.Balance)
	assert.Empty(t, data.Transactions)
}

func TestMemoryStoreAppendMovesBalance(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	data, err := s.Append(ctx, 7, testTx(domain.TransactionCredit, 100), 0, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(100), data.Balance)
	require.Len(t, data.Transactions, 1)

	data, err = s.Append(ctx, 7, testTx(domain.TransactionDebit, 40), 100, 60)
	require.NoError(t, err)
	assert.Equal(t, int64(60), data.Balance)
	require.Len(t, data.Transactions, 2)
	assert.Equal(t, domain.TransactionDebit, data.Transactions[0].Type)
}

func TestMemoryStoreAppendRejectsStaleBalance(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Append(ctx, 7, testTx(domain.TransactionCredit, 100), 0, 100)
	require.NoError(t, err)

	// A writer holding a stale balance must not win
	_, err = s.Append(ctx, 7, testTx(domain.TransactionDebit, 40), 0, -40)
	require.ErrorIs(t, err, domain.ErrBalanceConflict)

	data, err := s.Load(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(100), data.Balance)
	require.Len(t, data.Transactions, 1)
}

func TestMemoryStoreSnapshotsAreIsolated(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	data, err := s.Append(ctx, 7, testTx(domain.TransactionCredit, 100), 0, 100)
	require.NoError(t, err)

	// Mutating the returned record must not leak into the store
	data.Balance = 9999
	data.Transactions[0].Amount = 9999

	reloaded, err := s.Load(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(100), reloaded.Balance)
	assert.Equal(t, int64(100), reloaded.Transactions[0].Amount)
}

func TestMemoryStoreAppointmentsNewestFirst(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	first := &domain.Appointment{ID: "a1", UserID: 7, Status: domain.StatusConfirmed}
	second := &domain.Appointment{ID: "a2", UserID: 7, Status: domain.StatusConfirmed}
	require.NoError(t, s.SaveAppointment(ctx, first))
	require.NoError(t, s.SaveAppointment(ctx, second))

	appts, err := s.ListAppointments(ctx, 7)
	require.NoError(t, err)
	require.Len(t, appts, 2)
	assert.Equal(t, "a2", appts[0].ID)
	assert.Equal(t, "a1", appts[1].ID)

	// Other users see nothing
	other, err := s.ListAppointments(ctx, 8)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestMemoryStoreReviews(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.SaveReview(ctx, &domain.Review{ID: "r1", ProfessionalID: "1", Rating: 5}))
	require.NoError(t, s.SaveReview(ctx, &domain.Review{ID: "r2", ProfessionalID: "1", Rating: 3}))

	reviews, err := s.ListReviews(ctx, "1")
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "r2", reviews[0].ID)
}
