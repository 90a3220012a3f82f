package store

import (
	"context"
	"sync"

	"cglines/internal/domain"
)

// MemoryStore is an in-process implementation of the store interfaces,
// used as a test double. The mutex makes Load and Append a critical section,
// mirroring the transactional guarantees of the database-backed store.
type MemoryStore struct {
	mu           sync.Mutex
	wallets      map[uint]*domain.WalletData
	appointments map[uint][]domain.Appointment
	reviews      map[string][]domain.Review
	nextSeq      uint
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		wallets:      make(map[uint]*domain.WalletData),
		appointments: make(map[uint][]domain.Appointment),
		reviews:      make(map[string][]domain.Review),
	}
}

// Load returns the wallet record for a user, creating a zero-balance wallet
// on first access.
func (s *MemoryStore) Load(ctx context.Context, userID uint) (*domain.WalletData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(s.loadLocked(userID)), nil
}

// Append records a transaction and moves the balance, failing with
// domain.ErrBalanceConflict if the stored balance no longer matches
// expectedBalance.
func (s *MemoryStore) Append(ctx context.Context, userID uint, tx domain.Transaction, expectedBalance, newBalance int64) (*domain.WalletData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	wallet := s.loadLocked(userID)
	if wallet.Balance != expectedBalance {
		return nil, domain.ErrBalanceConflict
	}
	s.nextSeq++
	tx.Seq = s.nextSeq
	wallet.Balance = newBalance
	wallet.Transactions = append([]domain.Transaction{tx}, wallet.Transactions...)
	return s.snapshot(wallet), nil
}

// loadLocked fetches or initializes a wallet. Callers must hold the mutex.
func (s *MemoryStore) loadLocked(userID uint) *domain.WalletData {
	wallet, ok := s.wallets[userID]
	if !ok {
		wallet = &domain.WalletData{Balance: 0, Transactions: []domain.Transaction{}}
		s.wallets[userID] = wallet
	}
	return wallet
}

// snapshot copies a wallet record so callers cannot mutate stored state.
func (s *MemoryStore) snapshot(wallet *domain.WalletData) *domain.WalletData {
	out := &domain.WalletData{
		Balance:      wallet.Balance,
		Transactions: make([]domain.Transaction, len(wallet.Transactions)),
	}
	copy(out.Transactions, wallet.Transactions)
	return out
}

// SaveAppointment persists a new appointment record.
func (s *MemoryStore) SaveAppointment(ctx context.Context, appt *domain.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointments[appt.UserID] = append([]domain.Appointment{*appt}, s.appointments[appt.UserID]...)
	return nil
}

// ListAppointments returns a user's appointments, newest first.
func (s *MemoryStore) ListAppointments(ctx context.Context, userID uint) ([]domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Appointment, len(s.appointments[userID]))
	copy(out, s.appointments[userID])
	return out, nil
}

// SaveReview persists a new review.
func (s *MemoryStore) SaveReview(ctx context.Context, review *domain.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews[review.ProfessionalID] = append([]domain.Review{*review}, s.reviews[review.ProfessionalID]...)
	return nil
}

// ListReviews returns the reviews for a professional, newest first.
func (s *MemoryStore) ListReviews(ctx context.Context, professionalID string) ([]domain.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Review, len(s.reviews[professionalID]))
	copy(out, s.reviews[professionalID])
	return out, nil
}
