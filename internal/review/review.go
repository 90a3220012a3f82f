// Package review manages user reviews of professionals.
package review

import (
	"context"
	"strings"
	"time"

	"cglines/internal/catalog"
	"cglines/internal/domain"
	"cglines/internal/store"

	"github.com/google/uuid"
)

// Service validates and stores professional reviews.
type Service struct {
	store   store.ReviewStore
	catalog catalog.Finder
}

// NewService wires the review service.
func NewService(s store.ReviewStore, finder catalog.Finder) *Service {
	return &Service{store: s, catalog: finder}
}

// Add stores a review. Rating must be 1..5 and the comment must be
// non-empty.
func (s *Service) Add(ctx context.Context, userID uint, userName, professionalID string, rating int, comment string) (*domain.Review, error) {
	if _, ok := s.catalog.ByID(professionalID); !ok {
		return nil, domain.ErrProfessionalNotFound
	}
	if rating < 1 || rating > 5 {
		return nil, domain.ErrInvalidRating
	}
	if strings.TrimSpace(comment) == "" {
		return nil, domain.ErrMissingComment
	}
	r := &domain.Review{
		ID:             uuid.NewString(),
		ProfessionalID: professionalID,
		UserID:         userID,
		UserName:       userName,
		Rating:         rating,
		Comment:        comment,
		Date:           time.Now().UTC(),
	}
	if err := s.store.SaveReview(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// List returns the reviews for a professional, newest first.
func (s *Service) List(ctx context.Context, professionalID string) ([]domain.Review, error) {
	if _, ok := s.catalog.ByID(professionalID); !ok {
		return nil, domain.ErrProfessionalNotFound
	}
	return s.store.ListReviews(ctx, professionalID)
}
