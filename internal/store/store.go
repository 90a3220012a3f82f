// Package store owns persistence for wallets, appointments and reviews.
// Ledger and booking logic depend on these interfaces only, so the gorm
// implementation can be swapped for the in-memory one (or a future backend)
// without touching either.
package store

import (
	"context"

	"cglines/internal/domain"
)

// WalletStore persists wallet records. Load initializes a zero-balance wallet
// on first access; Append is the single mutation primitive and must apply the
// balance update and the transaction record atomically. It is compare-and-set
// on the previous balance: if the stored balance no longer equals
// expectedBalance, it fails with domain.ErrBalanceConflict and writes nothing.
type WalletStore interface {
	Load(ctx context.Context, userID uint) (*domain.WalletData, error)
	Append(ctx context.Context, userID uint, tx domain.Transaction, expectedBalance, newBalance int64) (*domain.WalletData, error)
}

// AppointmentStore persists appointment records, append-only.
type AppointmentStore interface {
	SaveAppointment(ctx context.Context, appt *domain.Appointment) error
	ListAppointments(ctx context.Context, userID uint) ([]domain.Appointment, error)
}

// ReviewStore persists professional reviews, append-only.
type ReviewStore interface {
	SaveReview(ctx context.Context, review *domain.Review) error
	ListReviews(ctx context.Context, professionalID string) ([]domain.Review, error)
}

var (
	_ WalletStore      = (*GormStore)(nil)
	_ AppointmentStore = (*GormStore)(nil)
	_ ReviewStore      = (*GormStore)(nil)
	_ WalletStore      = (*MemoryStore)(nil)
	_ AppointmentStore = (*MemoryStore)(nil)
	_ ReviewStore      = (*MemoryStore)(nil)
)
