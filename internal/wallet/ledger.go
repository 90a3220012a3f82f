// Package wallet implements the coin ledger: the sole mutator of wallet
// state. Every mutation appends a transaction and keeps the balance equal to
// the sum of credits minus debits, never negative.
package wallet

import (
	"context"
	"time"

	"cglines/internal/domain"
	"cglines/internal/store"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DescriptionAddCoins labels every top-up transaction.
const DescriptionAddCoins = "Added coins to wallet"

// Ledger owns all balance mutations for wallet accounts.
type Ledger struct {
	store store.WalletStore
}

// NewLedger returns a ledger over the given wallet store.
func NewLedger(s store.WalletStore) *Ledger {
	return &Ledger{store: s}
}

// GetBalance returns the current balance for a user.
func (l *Ledger) GetBalance(ctx context.Context, userID uint) (int64, error) {
	data, err := l.store.Load(ctx, userID)
	if err != nil {
		return 0, err
	}
	return data.Balance, nil
}

// GetWalletData returns the balance and the newest-first transaction log,
// initializing an empty wallet on first access. Repeated calls without an
// intervening mutation return the same record.
func (l *Ledger) GetWalletData(ctx context.Context, userID uint) (*domain.WalletData, error) {
	return l.store.Load(ctx, userID)
}

// AddCoins credits amount coins to the user's wallet and returns the updated
// record. Non-positive amounts are rejected with domain.ErrInvalidAmount.
func (l *Ledger) AddCoins(ctx context.Context, userID uint, amount int64) (*domain.WalletData, error) {
	return l.Credit(ctx, userID, amount, DescriptionAddCoins, nil)
}

// Credit appends a credit transaction with the given description. Used by
// AddCoins and by the booking orchestrator's compensating refund.
func (l *Ledger) Credit(ctx context.Context, userID uint, amount int64, description string, appointmentID *string) (*domain.WalletData, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	data, err := l.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	tx := newTransaction(domain.TransactionCredit, amount, description, appointmentID)
	updated, err := l.store.Append(ctx, userID, tx, data.Balance, data.Balance+amount)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"amount":  amount,
			"error":   err.Error(),
		}).Error("Credit failed")
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"user_id":        userID,
		"amount":         amount,
		"type":           domain.TransactionCredit,
		"transaction_id": tx.ID,
		"balance":        updated.Balance,
	}).Info("Wallet credit")
	return updated, nil
}

// DeductCoins debits amount coins from the user's wallet. When amount exceeds
// the current balance it fails with domain.ErrInsufficientBalance and leaves
// the wallet untouched. The optional appointmentID links the debit to the
// appointment that caused it.
func (l *Ledger) DeductCoins(ctx context.Context, userID uint, amount int64, description string, appointmentID *string) (*domain.WalletData, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	data, err := l.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if data.Balance < amount {
		return nil, domain.ErrInsufficientBalance
	}
	tx := newTransaction(domain.TransactionDebit, amount, description, appointmentID)
	updated, err := l.store.Append(ctx, userID, tx, data.Balance, data.Balance-amount)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"amount":  amount,
			"error":   err.Error(),
		}).Error("Debit failed")
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"user_id":        userID,
		"amount":         amount,
		"type":           domain.TransactionDebit,
		"transaction_id": tx.ID,
		"balance":        updated.Balance,
	}).Info("Wallet debit")
	return updated, nil
}

// newTransaction builds an immutable transaction record.
func newTransaction(txType string, amount int64, description string, appointmentID *string) domain.Transaction {
	return domain.Transaction{
		ID:            uuid.NewString(),
		Amount:        amount,
		Type:          txType,
		Description:   description,
		AppointmentID: appointmentID,
		Date:          time.Now().UTC(),
	}
}
