package wallet

import (
	"context"
	"testing"

	"cglines/internal/domain"
	"cglines/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger() *Ledger {
	return NewLedger(store.NewMemoryStore())
}

func TestGetWalletDataInitializesEmptyWallet(t *testing.T) {
	ledger := newTestLedger()
	ctx := context.Background()

	data, err := ledger.GetWalletData(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), data.Balance)
	assert.Empty(t, data.Transactions)

	// Repeated calls without a mutation return the same record
	again, err := ledger.GetWalletData(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, data.Balance, again.Balance)
	assert.Equal(t, data.Transactions, again.Transactions)
}

func TestAddCoinsFreshAccount(t *testing.T) {
	ledger := newTestLedger()
	ctx := context.Background()

	data, err := ledger.AddCoins(ctx, 1, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(100), data.Balance)
	require.Len(t, data.Transactions, 1)
	tx := data.Transactions[0]
	assert.Equal(t, domain.TransactionCredit, tx.Type)
	assert.Equal(t, int64(100), tx.Amount)
	assert.Equal(t, DescriptionAddCoins, tx.Description)
	assert.NotEmpty(t, tx.ID)
	assert.False(t, tx.Date.IsZero())
	assert.Nil(t, tx.AppointmentID)
}

func TestAddCoinsRejectsNonPositiveAmounts(t *testing.T) {
	ledger := newTestLedger()
	ctx := context.Background()

	for _, amount := range []int64{0, -1, -100} {
		_, err := ledger.AddCoins(ctx, 1, amount)
		require.ErrorIs(t, err, domain.ErrInvalidAmount, "amount=%d", amount)
	}

	// Nothing was recorded
	data, err := ledger.GetWalletData(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), data.Balance)
	assert.Empty(t, data.Transactions)
}

func TestDeductCoinsNewestFirstWithBackReference(t *testing.T) {
	ledger := newTestLedger()
	ctx := context.Background()

	_, err := ledger.AddCoins(ctx, 1, 100)
	require.NoError(t, err)

	apptID := "appt-1"
	data, err := ledger.DeductCoins(ctx, 1, 40, "Appointment with Dr. Sarah Johnson", &apptID)
	require.NoError(t, err)
	assert.Equal(t, int64(60), data.Balance)
	require.Len(t, data.Transactions, 2)

	// Newest first: the debit precedes the credit
	debit := data.Transactions[0]
	assert.Equal(t, domain.TransactionDebit, debit.Type)
	assert.Equal(t, int64(40), debit.Amount)
	require.NotNil(t, debit.AppointmentID)
	assert.Equal(t, "appt-1", *debit.AppointmentID)
	assert.Equal(t, domain.TransactionCredit, data.Transactions[1].Type)
}

func TestDeductCoinsInsufficientBalanceIsNoOp(t *testing.T) {
	ledger := newTestLedger()
	ctx := context.Background()

	_, err := ledger.AddCoins(ctx, 1, 30)
	require.NoError(t, err)

	_, err = ledger.DeductCoins(ctx, 1, 31, "too much", nil)
	require.ErrorIs(t, err, domain.ErrInsufficientBalance)

	// Balance and history are unchanged: rejected, not clamped
	data, err := ledger.GetWalletData(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(30), data.Balance)
	require.Len(t, data.Transactions, 1)
	assert.Equal(t, domain.TransactionCredit, data.Transactions[0].Type)
}

func TestDeductCoinsRejectsNonPositiveAmounts(t *testing.T) {
	ledger := newTestLedger()
	ctx := context.Background()

	_, err := ledger.AddCoins(ctx, 1, 50)
	require.NoError(t, err)

	for _, amount := range []int64{0, -5} {
		_, err := ledger.DeductCoins(ctx, 1, amount, "bad", nil)
		require.ErrorIs(t, err, domain.ErrInvalidAmount, "amount=%d", amount)
	}
}

func TestBalanceEqualsCreditsMinusDebits(t *testing.T) {
	ledger := newTestLedger()
	ctx := context.Background()

	steps := []struct {
		txType string
		amount int64
	}{
		{domain.TransactionCredit, 100},
		{domain.TransactionDebit, 40},
		{domain.TransactionCredit, 300},
		{domain.TransactionDebit, 50},
		{domain.TransactionDebit, 310},
		{domain.TransactionCredit, 25},
	}
	for _, step := range steps {
		var err error
		if step.txType == domain.TransactionCredit {
			_, err = ledger.AddCoins(ctx, 1, step.amount)
		} else {
			_, err = ledger.DeductCoins(ctx, 1, step.amount, "spend", nil)
		}
		require.NoError(t, err)
	}

	data, err := ledger.GetWalletData(ctx, 1)
	require.NoError(t, err)

	var sum int64
	for _, tx := range data.Transactions {
		if tx.Type == domain.TransactionCredit {
			sum += tx.Amount
		} else {
			sum -= tx.Amount
		}
	}
	assert.Equal(t, sum, data.Balance)
	assert.GreaterOrEqual(t, data.Balance, int64(0))
	assert.Equal(t, int64(25), data.Balance)
}

func TestWalletsAreIndependentPerUser(t *testing.T) {
	ledger := newTestLedger()
	ctx := context.Background()

	_, err := ledger.AddCoins(ctx, 1, 100)
	require.NoError(t, err)

	balance, err := ledger.GetBalance(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)

	balance, err = ledger.GetBalance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(100), balance)
}
