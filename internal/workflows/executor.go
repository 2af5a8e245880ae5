package workflows

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/plats-network/sponsor-ledger/internal/adapter"
	"github.com/plats-network/sponsor-ledger/internal/domain"
	"github.com/plats-network/sponsor-ledger/internal/logger"
	"github.com/plats-network/sponsor-ledger/internal/store"
	"github.com/plats-network/sponsor-ledger/internal/store/schema"
	"github.com/plats-network/sponsor-ledger/internal/transfer"
)

// IssueTransferInput describes one outbound settlement transfer
type IssueTransferInput struct {
	EventID    string           `json:"event_id"`
	Sponsor    string           `json:"sponsor"`
	Asset      domain.AssetKind `json:"asset"`
	Amount     uint64           `json:"amount"`
	WorkflowID string           `json:"workflow_id"`
}

// Executor defines the interface for executing settlement activities
//
//go:generate mockgen -source=executor.go -destination=../mocks/executor_core.go -package=mocks -mock_names=Executor=MockCoreExecutor
type Executor interface {
	// IssueTransfer records a pending transfer and publishes the request to
	// the asset-transfer service. Returns the correlation id of the transfer.
	IssueTransfer(ctx context.Context, input IssueTransferInput) (string, error)

	// RemoveSponsorRecord deletes the sponsor's recorded balance without
	// touching aggregate totals (legacy eager index removal)
	RemoveSponsorRecord(ctx context.Context, eventID string, sponsor string) error

	// ApplySettlement settles a confirmed transfer against the ledger
	ApplySettlement(ctx context.Context, correlationID string) error

	// MarkTransferFailed records a collaborator-reported transfer failure
	MarkTransferFailed(ctx context.Context, correlationID string, reason string) error
}

// executor is the concrete implementation of Executor
type executor struct {
	store     store.Store
	publisher transfer.Publisher
	json      adapter.JSON
}

// NewExecutor creates a new settlement activity executor
func NewExecutor(
	store store.Store,
	publisher transfer.Publisher,
	jsonAdapter adapter.JSON,
) Executor {
	return &executor{
		store:     store,
		publisher: publisher,
		json:      jsonAdapter,
	}
}

// IssueTransfer records a pending transfer and publishes the request
func (e *executor) IssueTransfer(ctx context.Context, input IssueTransferInput) (string, error) {
	req := domain.TransferRequest{
		CorrelationID: uuid.NewString(),
		EventID:       domain.EventID(input.EventID),
		Receiver:      domain.Account(input.Sponsor),
		Asset:         input.Asset,
		Amount:        input.Amount,
	}

	rawRequest, err := e.json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal transfer request: %w", err)
	}

	if err := e.store.CreateClaimTransfer(ctx, &schema.ClaimTransfer{
		ID:         req.CorrelationID,
		EventID:    input.EventID,
		Sponsor:    input.Sponsor,
		Asset:      string(input.Asset),
		Amount:     input.Amount,
		WorkflowID: input.WorkflowID,
		Request:    datatypes.JSON(rawRequest),
		Status:     schema.ClaimTransferStatusPending,
	}); err != nil {
		return "", fmt.Errorf("failed to record claim transfer: %w", err)
	}

	if err := e.publisher.PublishTransferRequest(ctx, &req); err != nil {
		// The pending row stays; the operator can replay the request from
		// its stored payload.
		return "", fmt.Errorf("failed to publish transfer request: %w", err)
	}

	logger.InfoCtx(ctx, "Transfer request issued",
		zap.String("correlationID", req.CorrelationID),
		zap.String("eventID", input.EventID),
		zap.String("sponsor", input.Sponsor),
		zap.String("asset", string(input.Asset)),
		zap.Uint64("amount", input.Amount))

	return req.CorrelationID, nil
}

// RemoveSponsorRecord deletes the sponsor's recorded balance eagerly
func (e *executor) RemoveSponsorRecord(ctx context.Context, eventID string, sponsor string) error {
	if err := e.store.RemoveSponsorRecord(ctx, sponsor, eventID); err != nil {
		return fmt.Errorf("failed to remove sponsor record: %w", err)
	}

	logger.InfoCtx(ctx, "Sponsor record removed eagerly",
		zap.String("eventID", eventID),
		zap.String("sponsor", sponsor))

	return nil
}

// ApplySettlement settles a confirmed transfer against the ledger
func (e *executor) ApplySettlement(ctx context.Context, correlationID string) error {
	if err := e.store.ApplyClaimSettlement(ctx, correlationID); err != nil {
		return fmt.Errorf("failed to apply settlement: %w", err)
	}

	logger.InfoCtx(ctx, "Settlement applied",
		zap.String("correlationID", correlationID))

	return nil
}

// MarkTransferFailed records a collaborator-reported transfer failure
func (e *executor) MarkTransferFailed(ctx context.Context, correlationID string, reason string) error {
	if err := e.store.MarkClaimTransferFailed(ctx, correlationID, reason); err != nil {
		return fmt.Errorf("failed to mark transfer failed: %w", err)
	}

	logger.WarnCtx(ctx, "Transfer failed",
		zap.String("correlationID", correlationID),
		zap.String("reason", reason))

	return nil
}
