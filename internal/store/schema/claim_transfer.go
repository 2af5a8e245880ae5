package schema

import (
	"time"

	"gorm.io/datatypes"
)

// ClaimTransferStatus is the status of one settlement transfer
type ClaimTransferStatus string

const (
	// ClaimTransferStatusPending is a transfer issued but not yet resolved
	ClaimTransferStatusPending ClaimTransferStatus = "pending"
	// ClaimTransferStatusConfirmed is a transfer the collaborator confirmed
	ClaimTransferStatusConfirmed ClaimTransferStatus = "confirmed"
	// ClaimTransferStatusFailed is a transfer the collaborator rejected
	ClaimTransferStatusFailed ClaimTransferStatus = "failed"
)

// ClaimTransfer represents the claim_transfers table - audit log and
// correlation state of the per-asset settlement sub-state machines. One row
// per transfer request issued to the asset-transfer service; a row that stays
// pending marks a half-settled claim.
type ClaimTransfer struct {
	// ID is the correlation key (UUID) echoed back by the transfer service
	ID string `gorm:"column:id;primaryKey;type:varchar(36)"`
	// EventID is the event the claim belongs to
	EventID string `gorm:"column:event_id;not null;type:text;index:idx_claim_transfers_event"`
	// Sponsor is the claiming account and transfer receiver
	Sponsor string `gorm:"column:sponsor;not null;type:text;index:idx_claim_transfers_sponsor"`
	// Asset is the asset kind being transferred (native, token)
	Asset string `gorm:"column:asset;not null;type:text"`
	// Amount is the transferred amount
	Amount uint64 `gorm:"column:amount;not null"`
	// WorkflowID is the settlement workflow awaiting this transfer's result
	WorkflowID string `gorm:"column:workflow_id;not null;type:varchar(255)"`
	// Request is the complete transfer request payload as JSON
	Request datatypes.JSON `gorm:"column:request;not null;type:jsonb"`
	// Status indicates the current state: pending, confirmed, failed
	Status ClaimTransferStatus `gorm:"column:status;not null;default:pending"`
	// FailureReason contains the collaborator's error if the transfer failed
	FailureReason string `gorm:"column:failure_reason;type:text"`
	// CreatedAt is the timestamp when the transfer was issued
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// ResolvedAt is the timestamp when the result arrived
	ResolvedAt *time.Time `gorm:"column:resolved_at;type:timestamptz"`
}

// TableName specifies the table name for the ClaimTransfer model
func (ClaimTransfer) TableName() string {
	return "claim_transfers"
}
