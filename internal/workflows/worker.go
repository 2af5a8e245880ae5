package workflows

import (
	"go.temporal.io/sdk/workflow"
)

// ClaimSettlementInput carries the recorded balances of the claiming sponsor
// at initiation time. One settlement transfer is issued per non-zero asset.
type ClaimSettlementInput struct {
	EventID      string `json:"event_id"`
	Sponsor      string `json:"sponsor"`
	NativeAmount uint64 `json:"native_amount"`
	TokenAmount  uint64 `json:"token_amount"`
}

// SettlementCore defines the interface for running claim settlements
//
//go:generate mockgen -source=worker.go -destination=../mocks/settlement_core.go -package=mocks -mock_names=SettlementCore=MockSettlementCore
type SettlementCore interface {
	// ClaimSettlement runs one claim from transfer initiation through
	// confirmation and ledger settlement
	ClaimSettlement(ctx workflow.Context, input ClaimSettlementInput) error
}

type SettlementCoreConfig struct {
	// EagerIndexRemoval removes the sponsor record right after transfer
	// initiation instead of waiting for confirmation. This reproduces the
	// legacy behavior in which an unconfirmed transfer leaves the record
	// gone while the aggregate total still carries the amount.
	EagerIndexRemoval bool
}

// settlementCore is the concrete implementation of SettlementCore
type settlementCore struct {
	config   SettlementCoreConfig
	executor Executor
}

// NewSettlementCore creates a new settlement core instance
func NewSettlementCore(executor Executor, config SettlementCoreConfig) SettlementCore {
	return &settlementCore{
		executor: executor,
		config:   config,
	}
}
