package domain

import "errors"

// Sentinel errors surfaced by the wallet ledger, booking orchestrator and
// review service. Handlers translate these into user-facing messages.
var (
	ErrInvalidAmount        = errors.New("amount must be a positive number of coins")
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrBalanceConflict      = errors.New("wallet balance changed concurrently")
	ErrWalletNotFound       = errors.New("wallet not found")
	ErrProfessionalNotFound = errors.New("professional not found")
	ErrInvalidSlot          = errors.New("selected date and time is not available")
	ErrMissingDescription   = errors.New("description is required")
	ErrMissingExpertise     = errors.New("expertise level is required")
	ErrInvalidPaymentMethod = errors.New("unsupported payment method")
	ErrPaymentFailed        = errors.New("payment failed")
	ErrInvalidRating        = errors.New("rating must be between 1 and 5")
	ErrMissingComment       = errors.New("comment is required")
)
