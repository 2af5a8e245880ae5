package store

import (
	"context"

	"github.com/plats-network/sponsor-ledger/internal/domain"
	"github.com/plats-network/sponsor-ledger/internal/store/schema"
)

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// CreateEvent registers an event and records it in the creator's client
	// index. An existing event with the same id is silently overwritten;
	// callers must guarantee id uniqueness upstream.
	CreateEvent(ctx context.Context, eventID string, owner string, name string) (*schema.Event, error)

	// GetEvent retrieves an event by id, nil if absent
	GetEvent(ctx context.Context, eventID string) (*schema.Event, error)

	// ListEvents retrieves all events ordered by creation time
	ListEvents(ctx context.Context) ([]schema.Event, error)

	// ListEventsByStatus retrieves events filtered on status == active
	// (active=true) or status != active (active=false)
	ListEventsByStatus(ctx context.Context, active bool) ([]schema.Event, error)

	// ListEventsByClient retrieves events recorded in a client's event index
	ListEventsByClient(ctx context.Context, client string) ([]schema.Event, error)

	// UpdateEventStatus transitions an event's lifecycle status, enforcing
	// forward-only movement
	UpdateEventStatus(ctx context.Context, eventID string, status schema.EventStatus) error

	// ListEventSponsors returns the ordered, non-deduplicated sponsor list
	ListEventSponsors(ctx context.Context, eventID string) ([]string, error)

	// CreateSponsorship records a first deposit for a (sponsor, event) pair:
	// inserts the sponsorship row, appends the sponsor to the event's sponsor
	// list, and increments the event aggregate total for the asset. Fails
	// with domain.ErrAlreadySponsored when the pair already has a balance.
	CreateSponsorship(ctx context.Context, sponsor string, eventID string, amount uint64, asset domain.AssetKind) error

	// TopUpSponsorship adds to an existing deposit with checked addition,
	// mirroring the increment into the event aggregate total. Fails with
	// domain.ErrNotSponsored when no balance exists for the pair.
	TopUpSponsorship(ctx context.Context, sponsor string, eventID string, amount uint64, asset domain.AssetKind) error

	// GetSponsorship retrieves the recorded balance of a (sponsor, event)
	// pair, nil if absent
	GetSponsorship(ctx context.Context, sponsor string, eventID string) (*schema.Sponsorship, error)

	// ListSponsorshipsBySponsor returns everything a sponsor has funded
	ListSponsorshipsBySponsor(ctx context.Context, sponsor string) ([]schema.Sponsorship, error)

	// CreateClaimTransfer persists a pending settlement transfer keyed by its
	// correlation id
	CreateClaimTransfer(ctx context.Context, transfer *schema.ClaimTransfer) error

	// GetClaimTransfer retrieves a settlement transfer by correlation id,
	// nil if absent
	GetClaimTransfer(ctx context.Context, correlationID string) (*schema.ClaimTransfer, error)

	// ListClaimTransfersByEvent returns the settlement transfers of an event,
	// optionally filtered to pending ones
	ListClaimTransfersByEvent(ctx context.Context, eventID string, pendingOnly bool) ([]schema.ClaimTransfer, error)

	// ApplyClaimSettlement applies a confirmed transfer in one transaction:
	// marks the transfer confirmed, decrements the event aggregate total and
	// the settled asset on the sponsorship by the transferred amount, and
	// once both assets reach zero deletes the sponsorship row together with
	// the sponsor's entries in the event sponsor list. Any surplus deposited
	// after the claim snapshot stays on the row.
	ApplyClaimSettlement(ctx context.Context, correlationID string) error

	// MarkClaimTransferFailed records a collaborator-reported failure
	MarkClaimTransferFailed(ctx context.Context, correlationID string, reason string) error

	// RemoveSponsorRecord deletes the sponsorship row of a (sponsor, event)
	// pair without touching aggregate totals. Only used by the legacy eager
	// index-removal mode, which reproduces the upstream behavior of advancing
	// the index before the transfer confirms.
	RemoveSponsorRecord(ctx context.Context, sponsor string, eventID string) error

	// RegisterAccount creates a zero balance for an account, failing with
	// domain.ErrAccountRegistered when it already exists
	RegisterAccount(ctx context.Context, account string) error

	// GetAccountBalance returns an account's token-mirror balance, failing
	// with domain.ErrAccountNotRegistered for unknown accounts
	GetAccountBalance(ctx context.Context, account string) (uint64, error)

	// TransferBalance moves value between registered accounts with checked
	// arithmetic; sender and receiver must differ and amount must be positive
	TransferBalance(ctx context.Context, sender string, receiver string, amount uint64) error

	// EnsureTotalSupply mints the initial supply to the owner account exactly
	// once; subsequent calls are no-ops
	EnsureTotalSupply(ctx context.Context, owner string, totalSupply uint64) error

	// GetTotalSupply returns the recorded total supply
	GetTotalSupply(ctx context.Context) (uint64, error)

	// GetValue retrieves a raw key-value entry, empty string if absent
	GetValue(ctx context.Context, key string) (string, error)

	// SetValue stores a raw key-value entry
	SetValue(ctx context.Context, key string, value string) error

	// Migrate creates or updates the database schema
	Migrate(ctx context.Context) error
}
