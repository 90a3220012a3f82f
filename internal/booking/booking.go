// Package booking coordinates slot validation, payment and appointment
// persistence as one logical transaction. Payment always precedes
// persistence: an appointment record never exists for a coin payment that
// was not debited.
package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cglines/internal/catalog"
	"cglines/internal/domain"
	"cglines/internal/store"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Ledger is the wallet surface the orchestrator needs. Credit exists for the
// compensating refund when persistence fails after a successful debit.
type Ledger interface {
	GetBalance(ctx context.Context, userID uint) (int64, error)
	DeductCoins(ctx context.Context, userID uint, amount int64, description string, appointmentID *string) (*domain.WalletData, error)
	Credit(ctx context.Context, userID uint, amount int64, description string, appointmentID *string) (*domain.WalletData, error)
}

// Request carries the booking form input.
type Request struct {
	ProfessionalID string `json:"professional_id" binding:"required"`
	Date           string `json:"date" binding:"required"`
	Time           string `json:"time" binding:"required"`
	Description    string `json:"description"`
	ExpertiseLevel string `json:"expertise_level"`
	PaymentMethod  string `json:"payment_method" binding:"required"`
}

// Service is the booking orchestrator.
type Service struct {
	ledger       Ledger
	appointments store.AppointmentStore
	catalog      catalog.Finder
	cost         int64
}

// NewService wires the orchestrator. cost is the fixed coin price of one
// appointment.
func NewService(ledger Ledger, appointments store.AppointmentStore, finder catalog.Finder, cost int64) *Service {
	return &Service{ledger: ledger, appointments: appointments, catalog: finder, cost: cost}
}

// Cost returns the fixed coin price of one appointment.
func (s *Service) Cost() int64 {
	return s.cost
}

// Book validates the requested slot and form input, charges the wallet when
// paying with coins, and persists a confirmed appointment. On any failure
// before persistence no appointment exists; if persistence itself fails after
// a debit, the debit is compensated with a refund credit.
func (s *Service) Book(ctx context.Context, userID uint, req Request) (*domain.Appointment, error) {
	professional, ok := s.catalog.ByID(req.ProfessionalID)
	if !ok {
		return nil, domain.ErrProfessionalNotFound
	}
	// Defend against stale or hand-crafted input even though the UI disables
	// unavailable slots
	if !professional.HasSlot(req.Date, req.Time) {
		return nil, domain.ErrInvalidSlot
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, domain.ErrMissingDescription
	}
	if strings.TrimSpace(req.ExpertiseLevel) == "" {
		return nil, domain.ErrMissingExpertise
	}
	if req.PaymentMethod != domain.PaymentCoins && req.PaymentMethod != domain.PaymentCard {
		return nil, domain.ErrInvalidPaymentMethod
	}

	appt := &domain.Appointment{
		ID:             uuid.NewString(),
		UserID:         userID,
		ProfessionalID: professional.ID,
		Date:           req.Date,
		Time:           req.Time,
		Description:    req.Description,
		ExpertiseLevel: req.ExpertiseLevel,
		PaymentMethod:  req.PaymentMethod,
		Cost:           s.cost,
		Status:         domain.StatusConfirmed,
		CreatedAt:      time.Now().UTC(),
	}

	if req.PaymentMethod == domain.PaymentCoins {
		balance, err := s.ledger.GetBalance(ctx, userID)
		if err != nil {
			return nil, err
		}
		if balance < s.cost {
			return nil, domain.ErrInsufficientBalance
		}
		description := "Appointment with " + professional.Name
		if _, err := s.ledger.DeductCoins(ctx, userID, s.cost, description, &appt.ID); err != nil {
			// Includes the race where the balance changed between check and
			// deduct; the wallet is untouched either way
			return nil, fmt.Errorf("%w: %v", domain.ErrPaymentFailed, err)
		}
	}
	// Card payments are simulated, no charge is processed

	if err := s.appointments.SaveAppointment(ctx, appt); err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id":         userID,
			"professional_id": professional.ID,
			"appointment_id":  appt.ID,
			"error":           err.Error(),
		}).Error("Appointment persistence failed")
		if req.PaymentMethod == domain.PaymentCoins {
			s.refund(ctx, userID, professional.Name, appt.ID)
		}
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":         userID,
		"professional_id": professional.ID,
		"appointment_id":  appt.ID,
		"payment_method":  req.PaymentMethod,
		"cost":            s.cost,
	}).Info("Appointment booked")
	return appt, nil
}

// refund compensates a debited booking whose appointment could not be saved.
// Best effort: a failed refund leaves the coins deducted, so it is logged
// loudly for manual follow-up.
func (s *Service) refund(ctx context.Context, userID uint, professionalName, appointmentID string) {
	description := "Refund: appointment with " + professionalName
	if _, err := s.ledger.Credit(ctx, userID, s.cost, description, &appointmentID); err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id":        userID,
			"appointment_id": appointmentID,
			"amount":         s.cost,
			"error":          err.Error(),
		}).Error("Refund failed, coins remain deducted")
		return
	}
	logrus.WithFields(logrus.Fields{
		"user_id":        userID,
		"appointment_id": appointmentID,
		"amount":         s.cost,
	}).Info("Booking refunded")
}

// List returns the user's appointments, newest first.
func (s *Service) List(ctx context.Context, userID uint) ([]domain.Appointment, error) {
	return s.appointments.ListAppointments(ctx, userID)
}
