package domain

import "errors"

var (
	// ErrEventNotFound is returned when an event id is unknown
	ErrEventNotFound = errors.New("event not found")

	// ErrUnauthorized is returned when the caller lacks the required role
	ErrUnauthorized = errors.New("caller is not allowed to perform this operation")

	// ErrInvalidEventState is returned when an operation is not valid for the
	// event's current lifecycle status
	ErrInvalidEventState = errors.New("operation not valid for event state")

	// ErrAlreadySponsored is returned when a sponsor deposits a second time
	// into the same event without an intervening claim
	ErrAlreadySponsored = errors.New("event already sponsored by this account")

	// ErrNotSponsored is returned when no balance is recorded for the
	// (sponsor, event) pair
	ErrNotSponsored = errors.New("event not sponsored by this account")

	// ErrAmountOverflow is returned when checked addition would wrap around
	ErrAmountOverflow = errors.New("amount overflow")

	// ErrInsufficientBalance is returned when a withdrawal exceeds the balance
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInsufficientPayment is returned when the anti-spam minimum payment
	// is not attached to a paid operation
	ErrInsufficientPayment = errors.New("insufficient payment attached")

	// ErrPaymentMismatch is returned when the attached payment does not equal
	// the deposit amount
	ErrPaymentMismatch = errors.New("attached payment must equal the amount")

	// ErrTransferFailed is returned when the external transfer collaborator
	// reports a failed transfer
	ErrTransferFailed = errors.New("asset transfer failed")

	// ErrClaimPending is returned when a claim is attempted while a prior
	// settlement for the same (sponsor, event) pair is still in flight
	ErrClaimPending = errors.New("claim settlement already in progress")

	// ErrAccountRegistered is returned when registering an account twice
	ErrAccountRegistered = errors.New("account already registered")

	// ErrAccountNotRegistered is returned when an account has no balance entry
	ErrAccountNotRegistered = errors.New("account not registered")

	// ErrTransferNotFound is returned when a confirmation references an
	// unknown correlation id
	ErrTransferNotFound = errors.New("claim transfer not found")
)
