package dto

import (
	"github.com/plats-network/sponsor-ledger/internal/domain"
)

// CreateEventRequest registers a new funding event. The event id is
// caller-chosen; reusing one silently overwrites the prior event.
type CreateEventRequest struct {
	EventID string `json:"event_id" binding:"required"`
	Name    string `json:"name" binding:"required"`
}

// SponseRequest deposits into an event. Payment carries the attached value
// and must equal Amount.
type SponseRequest struct {
	Amount  uint64           `json:"amount" binding:"required"`
	Asset   domain.AssetKind `json:"asset"`
	Payment uint64           `json:"payment"`
}

// PaymentRequest carries the attached value of an operation that only needs
// a confirmation fee (cancel, claim, storage activation)
type PaymentRequest struct {
	Payment uint64 `json:"payment"`
}

// StorageActivateRequest requests the one-time storage registration of the
// ledger account with the token service
type StorageActivateRequest struct {
	Account string `json:"account" binding:"required"`
	Payment uint64 `json:"payment"`
}

// TransferTokenRequest moves token-mirror balance between registered accounts
type TransferTokenRequest struct {
	Receiver string `json:"receiver" binding:"required"`
	Amount   uint64 `json:"amount" binding:"required"`
}
