package store

import (
	"context"
	"errors"

	"cglines/internal/domain"

	"gorm.io/gorm"
)

// GormStore implements every store interface on top of a relational database.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an open gorm connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Load returns the wallet record for a user, creating a zero-balance wallet
// on first access.
func (s *GormStore) Load(ctx context.Context, userID uint) (*domain.WalletData, error) {
	var wallet domain.Wallet
	// Create the wallet row if this is the first access
	if err := s.db.WithContext(ctx).Where(domain.Wallet{UserID: userID}).FirstOrCreate(&wallet).Error; err != nil {
		return nil, err
	}
	return s.assemble(ctx, &wallet)
}

// Append records a transaction and moves the balance in one database
// transaction. The balance update is guarded on expectedBalance so a
// concurrent change rolls everything back instead of losing an update.
func (s *GormStore) Append(ctx context.Context, userID uint, tx domain.Transaction, expectedBalance, newBalance int64) (*domain.WalletData, error) {
	var wallet domain.Wallet
	err := s.db.WithContext(ctx).Transaction(func(dbtx *gorm.DB) error {
		// Fetch the wallet row
		if err := dbtx.Where("user_id = ?", userID).First(&wallet).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrWalletNotFound
			}
			return err
		}
		// Guarded balance update: zero rows updated means the balance moved
		res := dbtx.Model(&domain.Wallet{}).
			Where("id = ? AND balance = ?", wallet.ID, expectedBalance).
			Update("balance", newBalance)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrBalanceConflict
		}
		// Record the transaction
		tx.WalletID = wallet.ID
		if err := dbtx.Create(&tx).Error; err != nil {
			return err // Return error to rollback
		}
		return nil // Commit transaction
	})
	if err != nil {
		return nil, err
	}
	wallet.Balance = newBalance
	return s.assemble(ctx, &wallet)
}

// assemble builds the WalletData view: balance plus the newest-first log.
func (s *GormStore) assemble(ctx context.Context, wallet *domain.Wallet) (*domain.WalletData, error) {
	var transactions []domain.Transaction
	if err := s.db.WithContext(ctx).
		Where("wallet_id = ?", wallet.ID).
		Order("seq desc").
		Find(&transactions).Error; err != nil {
		return nil, err
	}
	return &domain.WalletData{Balance: wallet.Balance, Transactions: transactions}, nil
}

// SaveAppointment persists a new appointment record.
func (s *GormStore) SaveAppointment(ctx context.Context, appt *domain.Appointment) error {
	return s.db.WithContext(ctx).Create(appt).Error
}

// ListAppointments returns a user's appointments, newest first.
func (s *GormStore) ListAppointments(ctx context.Context, userID uint) ([]domain.Appointment, error) {
	var appts []domain.Appointment
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&appts).Error; err != nil {
		return nil, err
	}
	return appts, nil
}

// SaveReview persists a new review.
func (s *GormStore) SaveReview(ctx context.Context, review *domain.Review) error {
	return s.db.WithContext(ctx).Create(review).Error
}

// ListReviews returns the reviews for a professional, newest first.
func (s *GormStore) ListReviews(ctx context.Context, professionalID string) ([]domain.Review, error) {
	var reviews []domain.Review
	if err := s.db.WithContext(ctx).
		Where("professional_id = ?", professionalID).
		Order("date desc").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}
