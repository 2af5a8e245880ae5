package dto

import (
	"time"

	"github.com/plats-network/sponsor-ledger/internal/store/schema"
)

// EventResponse is the public view of a funding event
type EventResponse struct {
	EventID     string    `json:"event_id"`
	Owner       string    `json:"owner"`
	Name        string    `json:"name"`
	TotalNative uint64    `json:"total_native"`
	TotalToken  uint64    `json:"total_token"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// EventListResponse wraps a list of events
type EventListResponse struct {
	Events []EventResponse `json:"events"`
	Total  int             `json:"total"`
}

// SponsorListResponse is the ordered, non-deduplicated sponsor list of an event
type SponsorListResponse struct {
	EventID  string   `json:"event_id"`
	Sponsors []string `json:"sponsors"`
}

// SponsorshipResponse is one funded event as seen by its sponsor
type SponsorshipResponse struct {
	EventID      string `json:"event_id"`
	EventName    string `json:"event_name"`
	NativeAmount uint64 `json:"native_amount"`
	TokenAmount  uint64 `json:"token_amount"`
}

// SponsorshipListResponse wraps everything a sponsor has funded
type SponsorshipListResponse struct {
	Sponsor      string                `json:"sponsor"`
	Sponsorships []SponsorshipResponse `json:"sponsorships"`
}

// ClaimResponse identifies the settlement started for a claim
type ClaimResponse struct {
	WorkflowID string `json:"workflow_id"`
	RunID      string `json:"run_id"`
}

// ClaimTransferResponse is the operator view of one settlement transfer
type ClaimTransferResponse struct {
	CorrelationID string     `json:"correlation_id"`
	EventID       string     `json:"event_id"`
	Sponsor       string     `json:"sponsor"`
	Asset         string     `json:"asset"`
	Amount        uint64     `json:"amount"`
	Status        string     `json:"status"`
	FailureReason string     `json:"failure_reason,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	ResolvedAt    *time.Time `json:"resolved_at,omitempty"`
}

// ClaimTransferListResponse wraps the settlement transfers of an event
type ClaimTransferListResponse struct {
	EventID   string                  `json:"event_id"`
	Transfers []ClaimTransferResponse `json:"transfers"`
}

// BalanceResponse is an account's token-mirror balance
type BalanceResponse struct {
	Account string `json:"account"`
	Balance uint64 `json:"balance"`
}

// SupplyResponse is the recorded token total supply
type SupplyResponse struct {
	TotalSupply uint64 `json:"total_supply"`
}

// MapEventToDTO converts an event row to its public view
func MapEventToDTO(event *schema.Event) *EventResponse {
	return &EventResponse{
		EventID:     event.ID,
		Owner:       event.Owner,
		Name:        event.Name,
		TotalNative: event.TotalNative,
		TotalToken:  event.TotalToken,
		Status:      string(event.Status),
		CreatedAt:   event.CreatedAt,
	}
}

// MapClaimTransferToDTO converts a claim transfer row to its operator view
func MapClaimTransferToDTO(transfer *schema.ClaimTransfer) *ClaimTransferResponse {
	return &ClaimTransferResponse{
		CorrelationID: transfer.ID,
		EventID:       transfer.EventID,
		Sponsor:       transfer.Sponsor,
		Asset:         transfer.Asset,
		Amount:        transfer.Amount,
		Status:        string(transfer.Status),
		FailureReason: transfer.FailureReason,
		CreatedAt:     transfer.CreatedAt,
		ResolvedAt:    transfer.ResolvedAt,
	}
}
