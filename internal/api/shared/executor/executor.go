package executor

import (
	"context"
	"errors"
	"fmt"

	"go.temporal.io/api/enums/v1"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"

	"github.com/plats-network/sponsor-ledger/internal/api/shared/dto"
	apierrors "github.com/plats-network/sponsor-ledger/internal/api/shared/errors"
	"github.com/plats-network/sponsor-ledger/internal/domain"
	"github.com/plats-network/sponsor-ledger/internal/providers/temporal"
	"github.com/plats-network/sponsor-ledger/internal/store"
	"github.com/plats-network/sponsor-ledger/internal/store/schema"
	"github.com/plats-network/sponsor-ledger/internal/transfer"
	"github.com/plats-network/sponsor-ledger/internal/workflows"
)

// Config holds ledger-level settings for the API executor
type Config struct {
	// TaskQueue is the Temporal task queue for settlement workflows
	TaskQueue string
	// OwnerAccount is the administrative account of the ledger
	OwnerAccount string
	// MinStoragePayment is the minimum fee for the storage activation request
	MinStoragePayment uint64
	// StrictFinishAuth rejects finish requests from non-owners instead of
	// silently ignoring them
	StrictFinishAuth bool
}

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// CreateEvent registers a funding event owned by the caller
	CreateEvent(ctx context.Context, owner string, eventID string, name string) (*dto.EventResponse, error)

	// GetEvent retrieves a single event with its per-asset totals
	GetEvent(ctx context.Context, eventID string) (*dto.EventResponse, error)

	// ListEvents retrieves events, optionally filtered on active status
	ListEvents(ctx context.Context, active *bool) (*dto.EventListResponse, error)

	// ListClientEvents retrieves the events created by a client account
	ListClientEvents(ctx context.Context, client string) (*dto.EventListResponse, error)

	// ListEventSponsors retrieves the ordered sponsor list of an event
	ListEventSponsors(ctx context.Context, eventID string) (*dto.SponsorListResponse, error)

	// ListEventTransfers retrieves the settlement transfers of an event
	ListEventTransfers(ctx context.Context, eventID string, pendingOnly bool) (*dto.ClaimTransferListResponse, error)

	// FinishEvent marks an event finished. Non-owner callers are silently
	// ignored unless strict finish auth is enabled.
	FinishEvent(ctx context.Context, caller string, eventID string) error

	// CancelEvent cancels an event, opening it for claims
	CancelEvent(ctx context.Context, caller string, eventID string, payment uint64) error

	// Sponse records a first deposit into an event
	Sponse(ctx context.Context, sponsor string, eventID string, amount uint64, asset domain.AssetKind, payment uint64) error

	// TopUp adds to an existing deposit
	TopUp(ctx context.Context, sponsor string, eventID string, amount uint64, asset domain.AssetKind, payment uint64) error

	// ListSponsorships retrieves everything the calling sponsor has funded
	ListSponsorships(ctx context.Context, sponsor string) (*dto.SponsorshipListResponse, error)

	// Claim starts the settlement returning the sponsor's recorded balance
	Claim(ctx context.Context, sponsor string, eventID string, payment uint64) (*dto.ClaimResponse, error)

	// RegisterAccount creates a zero token balance for the caller
	RegisterAccount(ctx context.Context, account string) error

	// GetBalance retrieves an account's token balance
	GetBalance(ctx context.Context, account string) (*dto.BalanceResponse, error)

	// GetTotalSupply retrieves the recorded token total supply
	GetTotalSupply(ctx context.Context) (*dto.SupplyResponse, error)

	// TransferToken moves token balance from the caller to a receiver
	TransferToken(ctx context.Context, sender string, receiver string, amount uint64) error

	// ActivateTokenStorage publishes the one-time storage registration for
	// the ledger account with the token service
	ActivateTokenStorage(ctx context.Context, caller string, payment uint64) error
}

type executor struct {
	config       Config
	store        store.Store
	orchestrator temporal.TemporalOrchestrator
	publisher    transfer.Publisher
}

// NewExecutor creates a new API executor
func NewExecutor(
	cfg Config,
	store store.Store,
	orchestrator temporal.TemporalOrchestrator,
	publisher transfer.Publisher,
) Executor {
	return &executor{
		config:       cfg,
		store:        store,
		orchestrator: orchestrator,
		publisher:    publisher,
	}
}

func (e *executor) CreateEvent(ctx context.Context, owner string, eventID string, name string) (*dto.EventResponse, error) {
	event, err := e.store.CreateEvent(ctx, eventID, owner, name)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to create event: %v", err))
	}
	return dto.MapEventToDTO(event), nil
}

func (e *executor) GetEvent(ctx context.Context, eventID string) (*dto.EventResponse, error) {
	event, err := e.store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get event: %v", err))
	}
	if event == nil {
		return nil, domain.ErrEventNotFound
	}
	return dto.MapEventToDTO(event), nil
}

func (e *executor) ListEvents(ctx context.Context, active *bool) (*dto.EventListResponse, error) {
	var events []schema.Event
	var err error
	if active == nil {
		events, err = e.store.ListEvents(ctx)
	} else {
		events, err = e.store.ListEventsByStatus(ctx, *active)
	}
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list events: %v", err))
	}
	return mapEventList(events), nil
}

func (e *executor) ListClientEvents(ctx context.Context, client string) (*dto.EventListResponse, error) {
	events, err := e.store.ListEventsByClient(ctx, client)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list client events: %v", err))
	}
	return mapEventList(events), nil
}

func (e *executor) ListEventSponsors(ctx context.Context, eventID string) (*dto.SponsorListResponse, error) {
	event, err := e.store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get event: %v", err))
	}
	if event == nil {
		return nil, domain.ErrEventNotFound
	}

	sponsors, err := e.store.ListEventSponsors(ctx, eventID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list sponsors: %v", err))
	}

	return &dto.SponsorListResponse{
		EventID:  eventID,
		Sponsors: sponsors,
	}, nil
}

func (e *executor) ListEventTransfers(ctx context.Context, eventID string, pendingOnly bool) (*dto.ClaimTransferListResponse, error) {
	event, err := e.store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get event: %v", err))
	}
	if event == nil {
		return nil, domain.ErrEventNotFound
	}

	transfers, err := e.store.ListClaimTransfersByEvent(ctx, eventID, pendingOnly)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list transfers: %v", err))
	}

	transferDTOs := make([]dto.ClaimTransferResponse, len(transfers))
	for i := range transfers {
		transferDTOs[i] = *dto.MapClaimTransferToDTO(&transfers[i])
	}

	return &dto.ClaimTransferListResponse{
		EventID:   eventID,
		Transfers: transferDTOs,
	}, nil
}

func (e *executor) FinishEvent(ctx context.Context, caller string, eventID string) error {
	event, err := e.store.GetEvent(ctx, eventID)
	if err != nil {
		return apierrors.NewDatabaseError(fmt.Sprintf("Failed to get event: %v", err))
	}
	if event == nil {
		return domain.ErrEventNotFound
	}

	if event.Owner != caller {
		if e.config.StrictFinishAuth {
			return domain.ErrUnauthorized
		}
		// Historical behavior: a finish request from anyone else is
		// acknowledged and ignored
		return nil
	}

	if err := e.store.UpdateEventStatus(ctx, eventID, schema.EventStatusFinish); err != nil {
		if errors.Is(err, domain.ErrInvalidEventState) || errors.Is(err, domain.ErrEventNotFound) {
			return err
		}
		return apierrors.NewDatabaseError(fmt.Sprintf("Failed to finish event: %v", err))
	}
	return nil
}

func (e *executor) CancelEvent(ctx context.Context, caller string, eventID string, payment uint64) error {
	if payment < 1 {
		return domain.ErrInsufficientPayment
	}

	event, err := e.store.GetEvent(ctx, eventID)
	if err != nil {
		return apierrors.NewDatabaseError(fmt.Sprintf("Failed to get event: %v", err))
	}
	if event == nil {
		return domain.ErrEventNotFound
	}
	if event.Owner != caller {
		return domain.ErrUnauthorized
	}

	if err := e.store.UpdateEventStatus(ctx, eventID, schema.EventStatusCancel); err != nil {
		if errors.Is(err, domain.ErrInvalidEventState) || errors.Is(err, domain.ErrEventNotFound) {
			return err
		}
		return apierrors.NewDatabaseError(fmt.Sprintf("Failed to cancel event: %v", err))
	}
	return nil
}

func (e *executor) Sponse(ctx context.Context, sponsor string, eventID string, amount uint64, asset domain.AssetKind, payment uint64) error {
	if amount == 0 {
		return apierrors.NewValidationError("amount must be positive")
	}
	if payment != amount {
		return domain.ErrPaymentMismatch
	}

	err := e.store.CreateSponsorship(ctx, sponsor, eventID, amount, asset)
	if err != nil {
		if isLedgerError(err) {
			return err
		}
		return apierrors.NewDatabaseError(fmt.Sprintf("Failed to record sponsorship: %v", err))
	}
	return nil
}

func (e *executor) TopUp(ctx context.Context, sponsor string, eventID string, amount uint64, asset domain.AssetKind, payment uint64) error {
	if amount == 0 {
		return apierrors.NewValidationError("amount must be positive")
	}
	if payment != amount {
		return domain.ErrPaymentMismatch
	}

	err := e.store.TopUpSponsorship(ctx, sponsor, eventID, amount, asset)
	if err != nil {
		if isLedgerError(err) {
			return err
		}
		return apierrors.NewDatabaseError(fmt.Sprintf("Failed to top up sponsorship: %v", err))
	}
	return nil
}

func (e *executor) ListSponsorships(ctx context.Context, sponsor string) (*dto.SponsorshipListResponse, error) {
	sponsorships, err := e.store.ListSponsorshipsBySponsor(ctx, sponsor)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list sponsorships: %v", err))
	}

	sponsorshipDTOs := make([]dto.SponsorshipResponse, len(sponsorships))
	for i, sp := range sponsorships {
		name := ""
		event, err := e.store.GetEvent(ctx, sp.EventID)
		if err != nil {
			return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get event: %v", err))
		}
		if event != nil {
			name = event.Name
		}

		sponsorshipDTOs[i] = dto.SponsorshipResponse{
			EventID:      sp.EventID,
			EventName:    name,
			NativeAmount: sp.NativeAmount,
			TokenAmount:  sp.TokenAmount,
		}
	}

	return &dto.SponsorshipListResponse{
		Sponsor:      sponsor,
		Sponsorships: sponsorshipDTOs,
	}, nil
}

func (e *executor) Claim(ctx context.Context, sponsor string, eventID string, payment uint64) (*dto.ClaimResponse, error) {
	if payment < 1 {
		return nil, domain.ErrInsufficientPayment
	}

	event, err := e.store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get event: %v", err))
	}
	if event == nil {
		return nil, domain.ErrEventNotFound
	}
	if event.Status != schema.EventStatusCancel {
		return nil, domain.ErrInvalidEventState
	}

	sponsorship, err := e.store.GetSponsorship(ctx, sponsor, eventID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get sponsorship: %v", err))
	}
	if sponsorship == nil || (sponsorship.NativeAmount == 0 && sponsorship.TokenAmount == 0) {
		return nil, domain.ErrNotSponsored
	}

	w := workflows.NewSettlementCore(nil, workflows.SettlementCoreConfig{})
	options := client.StartWorkflowOptions{
		ID:        domain.ClaimWorkflowID(domain.EventID(eventID), domain.Account(sponsor)),
		TaskQueue: e.config.TaskQueue,
		// The workflow ID is the pending-claim marker: a running or
		// completed settlement rejects a second claim, but a failed
		// transfer leaves the balance claimable again.
		WorkflowIDReusePolicy: enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE_FAILED_ONLY,
	}

	input := workflows.ClaimSettlementInput{
		EventID:      eventID,
		Sponsor:      sponsor,
		NativeAmount: sponsorship.NativeAmount,
		TokenAmount:  sponsorship.TokenAmount,
	}

	wfRun, err := e.orchestrator.ExecuteWorkflow(ctx, options, w.ClaimSettlement, input)
	if err != nil {
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &alreadyStarted) {
			return nil, domain.ErrClaimPending
		}
		return nil, apierrors.NewServiceError(fmt.Sprintf("Failed to start settlement: %v", err))
	}

	return &dto.ClaimResponse{
		WorkflowID: wfRun.GetID(),
		RunID:      wfRun.GetRunID(),
	}, nil
}

func (e *executor) RegisterAccount(ctx context.Context, account string) error {
	err := e.store.RegisterAccount(ctx, account)
	if err != nil {
		if isLedgerError(err) {
			return err
		}
		return apierrors.NewDatabaseError(fmt.Sprintf("Failed to register account: %v", err))
	}
	return nil
}

func (e *executor) GetBalance(ctx context.Context, account string) (*dto.BalanceResponse, error) {
	balance, err := e.store.GetAccountBalance(ctx, account)
	if err != nil {
		if isLedgerError(err) {
			return nil, err
		}
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get balance: %v", err))
	}
	return &dto.BalanceResponse{
		Account: account,
		Balance: balance,
	}, nil
}

func (e *executor) GetTotalSupply(ctx context.Context) (*dto.SupplyResponse, error) {
	supply, err := e.store.GetTotalSupply(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get total supply: %v", err))
	}
	return &dto.SupplyResponse{TotalSupply: supply}, nil
}

func (e *executor) TransferToken(ctx context.Context, sender string, receiver string, amount uint64) error {
	err := e.store.TransferBalance(ctx, sender, receiver, amount)
	if err != nil {
		if isLedgerError(err) {
			return err
		}
		return apierrors.NewDatabaseError(fmt.Sprintf("Failed to transfer balance: %v", err))
	}
	return nil
}

func (e *executor) ActivateTokenStorage(ctx context.Context, caller string, payment uint64) error {
	if caller != e.config.OwnerAccount {
		return domain.ErrUnauthorized
	}
	if payment < e.config.MinStoragePayment {
		return domain.ErrInsufficientPayment
	}

	registered, err := e.store.GetValue(ctx, store.KeyStorageRegistered)
	if err != nil {
		return apierrors.NewDatabaseError(fmt.Sprintf("Failed to check storage registration: %v", err))
	}
	if registered == "true" {
		return domain.ErrAccountRegistered
	}

	err = e.publisher.PublishStorageRegistration(ctx, &domain.StorageRegistration{
		Account: domain.Account(e.config.OwnerAccount),
	})
	if err != nil {
		return apierrors.NewServiceError(fmt.Sprintf("Failed to publish storage registration: %v", err))
	}

	if err := e.store.SetValue(ctx, store.KeyStorageRegistered, "true"); err != nil {
		return apierrors.NewDatabaseError(fmt.Sprintf("Failed to record storage registration: %v", err))
	}
	return nil
}

// isLedgerError reports whether err is one of the domain sentinels that maps
// to a client-facing error instead of an internal one
func isLedgerError(err error) bool {
	for _, sentinel := range []error{
		domain.ErrEventNotFound,
		domain.ErrUnauthorized,
		domain.ErrInvalidEventState,
		domain.ErrAlreadySponsored,
		domain.ErrNotSponsored,
		domain.ErrAmountOverflow,
		domain.ErrInsufficientBalance,
		domain.ErrInsufficientPayment,
		domain.ErrPaymentMismatch,
		domain.ErrClaimPending,
		domain.ErrAccountRegistered,
		domain.ErrAccountNotRegistered,
		domain.ErrTransferNotFound,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

func mapEventList(events []schema.Event) *dto.EventListResponse {
	eventDTOs := make([]dto.EventResponse, len(events))
	for i := range events {
		eventDTOs[i] = *dto.MapEventToDTO(&events[i])
	}
	return &dto.EventListResponse{
		Events: eventDTOs,
		Total:  len(eventDTOs),
	}
}
