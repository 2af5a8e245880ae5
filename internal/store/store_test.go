package store

import (
	"context"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/plats-network/sponsor-ledger/internal/domain"
	"github.com/plats-network/sponsor-ledger/internal/store/schema"
)

// RunStoreTests runs the complete store test suite against any Store
// implementation. The initDB function must return a store with a clean state.
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store) {
	t.Run("EventRegistry", func(t *testing.T) { testEventRegistry(t, initDB(t)) })
	t.Run("EventStatus", func(t *testing.T) { testEventStatus(t, initDB(t)) })
	t.Run("Sponsorships", func(t *testing.T) { testSponsorships(t, initDB(t)) })
	t.Run("TopUp", func(t *testing.T) { testTopUp(t, initDB(t)) })
	t.Run("ClaimSettlement", func(t *testing.T) { testClaimSettlement(t, initDB(t)) })
	t.Run("PendingClaim", func(t *testing.T) { testPendingClaim(t, initDB(t)) })
	t.Run("AccountBalances", func(t *testing.T) { testAccountBalances(t, initDB(t)) })
	t.Run("KeyValues", func(t *testing.T) { testKeyValues(t, initDB(t)) })
}

func testEventRegistry(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("create and get event", func(t *testing.T) {
		event, err := store.CreateEvent(ctx, "ev-registry-1", "alice.near", "Launch Party")
		require.NoError(t, err)
		require.NotNil(t, event)
		assert.Equal(t, schema.EventStatusActive, event.Status)

		got, err := store.GetEvent(ctx, "ev-registry-1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "alice.near", got.Owner)
		assert.Equal(t, "Launch Party", got.Name)
		assert.Equal(t, uint64(0), got.TotalNative)
		assert.Equal(t, uint64(0), got.TotalToken)
	})

	t.Run("get missing event returns nil", func(t *testing.T) {
		got, err := store.GetEvent(ctx, "ev-missing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("reusing an id overwrites the event and clears its sponsors", func(t *testing.T) {
		_, err := store.CreateEvent(ctx, "ev-registry-2", "alice.near", "First")
		require.NoError(t, err)
		require.NoError(t, store.CreateSponsorship(ctx, "bob.near", "ev-registry-2", 500, domain.AssetNative))

		_, err = store.CreateEvent(ctx, "ev-registry-2", "carol.near", "Second")
		require.NoError(t, err)

		got, err := store.GetEvent(ctx, "ev-registry-2")
		require.NoError(t, err)
		assert.Equal(t, "carol.near", got.Owner)
		assert.Equal(t, "Second", got.Name)
		assert.Equal(t, uint64(0), got.TotalNative)

		sponsors, err := store.ListEventSponsors(ctx, "ev-registry-2")
		require.NoError(t, err)
		assert.Empty(t, sponsors)
	})

	t.Run("client event index", func(t *testing.T) {
		_, err := store.CreateEvent(ctx, "ev-client-1", "dave.near", "One")
		require.NoError(t, err)
		_, err = store.CreateEvent(ctx, "ev-client-2", "dave.near", "Two")
		require.NoError(t, err)

		events, err := store.ListEventsByClient(ctx, "dave.near")
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, "ev-client-1", events[0].ID)
		assert.Equal(t, "ev-client-2", events[1].ID)

		events, err = store.ListEventsByClient(ctx, "nobody.near")
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

func testEventStatus(t *testing.T, store Store) {
	ctx := context.Background()

	_, err := store.CreateEvent(ctx, "ev-status", "alice.near", "Status")
	require.NoError(t, err)

	t.Run("active to cancel", func(t *testing.T) {
		require.NoError(t, store.UpdateEventStatus(ctx, "ev-status", schema.EventStatusCancel))

		got, err := store.GetEvent(ctx, "ev-status")
		require.NoError(t, err)
		assert.Equal(t, schema.EventStatusCancel, got.Status)
	})

	t.Run("terminal states are final", func(t *testing.T) {
		err := store.UpdateEventStatus(ctx, "ev-status", schema.EventStatusActive)
		assert.ErrorIs(t, err, domain.ErrInvalidEventState)

		err = store.UpdateEventStatus(ctx, "ev-status", schema.EventStatusFinish)
		assert.ErrorIs(t, err, domain.ErrInvalidEventState)
	})

	t.Run("missing event", func(t *testing.T) {
		err := store.UpdateEventStatus(ctx, "ev-nope", schema.EventStatusCancel)
		assert.ErrorIs(t, err, domain.ErrEventNotFound)
	})

	t.Run("list by status", func(t *testing.T) {
		_, err := store.CreateEvent(ctx, "ev-status-active", "alice.near", "Active")
		require.NoError(t, err)

		active, err := store.ListEventsByStatus(ctx, true)
		require.NoError(t, err)
		inactive, err := store.ListEventsByStatus(ctx, false)
		require.NoError(t, err)

		assert.Contains(t, eventIDs(active), "ev-status-active")
		assert.Contains(t, eventIDs(inactive), "ev-status")
		assert.NotContains(t, eventIDs(active), "ev-status")
	})
}

func testSponsorships(t *testing.T, store Store) {
	ctx := context.Background()

	_, err := store.CreateEvent(ctx, "ev-sponsor", "alice.near", "Sponsored")
	require.NoError(t, err)

	t.Run("deposit on missing event", func(t *testing.T) {
		err := store.CreateSponsorship(ctx, "bob.near", "ev-nope", 1000, domain.AssetNative)
		assert.ErrorIs(t, err, domain.ErrEventNotFound)
	})

	t.Run("two sponsors deposit native", func(t *testing.T) {
		// scenario: two 5000 native deposits end at totals 10000/0 with a
		// two-entry sponsor list
		require.NoError(t, store.CreateSponsorship(ctx, "s1.near", "ev-sponsor", 5000, domain.AssetNative))
		require.NoError(t, store.CreateSponsorship(ctx, "s2.near", "ev-sponsor", 5000, domain.AssetNative))

		event, err := store.GetEvent(ctx, "ev-sponsor")
		require.NoError(t, err)
		assert.Equal(t, uint64(10000), event.TotalNative)
		assert.Equal(t, uint64(0), event.TotalToken)

		sponsors, err := store.ListEventSponsors(ctx, "ev-sponsor")
		require.NoError(t, err)
		assert.Equal(t, []string{"s1.near", "s2.near"}, sponsors)
	})

	t.Run("second deposit for the same pair is rejected", func(t *testing.T) {
		err := store.CreateSponsorship(ctx, "s1.near", "ev-sponsor", 100, domain.AssetNative)
		assert.ErrorIs(t, err, domain.ErrAlreadySponsored)

		err = store.CreateSponsorship(ctx, "s1.near", "ev-sponsor", 100, domain.AssetToken)
		assert.ErrorIs(t, err, domain.ErrAlreadySponsored)

		event, err := store.GetEvent(ctx, "ev-sponsor")
		require.NoError(t, err)
		assert.Equal(t, uint64(10000), event.TotalNative)
	})

	t.Run("token deposit tracked separately", func(t *testing.T) {
		require.NoError(t, store.CreateSponsorship(ctx, "s3.near", "ev-sponsor", 700, domain.AssetToken))

		event, err := store.GetEvent(ctx, "ev-sponsor")
		require.NoError(t, err)
		assert.Equal(t, uint64(10000), event.TotalNative)
		assert.Equal(t, uint64(700), event.TotalToken)

		sp, err := store.GetSponsorship(ctx, "s3.near", "ev-sponsor")
		require.NoError(t, err)
		require.NotNil(t, sp)
		assert.Equal(t, uint64(0), sp.NativeAmount)
		assert.Equal(t, uint64(700), sp.TokenAmount)
	})

	t.Run("list by sponsor", func(t *testing.T) {
		_, err := store.CreateEvent(ctx, "ev-sponsor-2", "alice.near", "Another")
		require.NoError(t, err)
		require.NoError(t, store.CreateSponsorship(ctx, "s1.near", "ev-sponsor-2", 42, domain.AssetNative))

		sponsorships, err := store.ListSponsorshipsBySponsor(ctx, "s1.near")
		require.NoError(t, err)
		require.Len(t, sponsorships, 2)
		assert.Equal(t, "ev-sponsor", sponsorships[0].EventID)
		assert.Equal(t, "ev-sponsor-2", sponsorships[1].EventID)
	})
}

func testTopUp(t *testing.T, store Store) {
	ctx := context.Background()

	_, err := store.CreateEvent(ctx, "ev-topup", "alice.near", "TopUp")
	require.NoError(t, err)
	require.NoError(t, store.CreateSponsorship(ctx, "s1.near", "ev-topup", 5000, domain.AssetNative))

	t.Run("three top-ups accumulate", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			require.NoError(t, store.TopUpSponsorship(ctx, "s1.near", "ev-topup", 20000, domain.AssetNative))
		}

		sp, err := store.GetSponsorship(ctx, "s1.near", "ev-topup")
		require.NoError(t, err)
		assert.Equal(t, uint64(65000), sp.NativeAmount)

		event, err := store.GetEvent(ctx, "ev-topup")
		require.NoError(t, err)
		assert.Equal(t, uint64(65000), event.TotalNative)
	})

	t.Run("top-up without prior deposit", func(t *testing.T) {
		err := store.TopUpSponsorship(ctx, "s2.near", "ev-topup", 100, domain.AssetNative)
		assert.ErrorIs(t, err, domain.ErrNotSponsored)
	})

	t.Run("overflow leaves state unchanged", func(t *testing.T) {
		err := store.TopUpSponsorship(ctx, "s1.near", "ev-topup", math.MaxUint64, domain.AssetNative)
		assert.ErrorIs(t, err, domain.ErrAmountOverflow)

		sp, err := store.GetSponsorship(ctx, "s1.near", "ev-topup")
		require.NoError(t, err)
		assert.Equal(t, uint64(65000), sp.NativeAmount)

		event, err := store.GetEvent(ctx, "ev-topup")
		require.NoError(t, err)
		assert.Equal(t, uint64(65000), event.TotalNative)
	})

	t.Run("top-up of the other asset keeps one sponsorship row", func(t *testing.T) {
		require.NoError(t, store.TopUpSponsorship(ctx, "s1.near", "ev-topup", 300, domain.AssetToken))

		sp, err := store.GetSponsorship(ctx, "s1.near", "ev-topup")
		require.NoError(t, err)
		assert.Equal(t, uint64(65000), sp.NativeAmount)
		assert.Equal(t, uint64(300), sp.TokenAmount)
	})
}

func seedClaimTransfer(t *testing.T, store Store, eventID, sponsor string, asset domain.AssetKind, amount uint64) string {
	t.Helper()
	id := uuid.NewString()
	err := store.CreateClaimTransfer(context.Background(), &schema.ClaimTransfer{
		ID:         id,
		EventID:    eventID,
		Sponsor:    sponsor,
		Asset:      string(asset),
		Amount:     amount,
		WorkflowID: domain.ClaimWorkflowID(domain.EventID(eventID), domain.Account(sponsor)),
		Request:    datatypes.JSON([]byte(`{}`)),
		Status:     schema.ClaimTransferStatusPending,
	})
	require.NoError(t, err)
	return id
}

func testClaimSettlement(t *testing.T, store Store) {
	ctx := context.Background()

	_, err := store.CreateEvent(ctx, "ev-claim", "alice.near", "Claimable")
	require.NoError(t, err)
	require.NoError(t, store.CreateSponsorship(ctx, "s1.near", "ev-claim", 5000, domain.AssetNative))
	require.NoError(t, store.CreateSponsorship(ctx, "s2.near", "ev-claim", 3000, domain.AssetNative))
	require.NoError(t, store.TopUpSponsorship(ctx, "s1.near", "ev-claim", 800, domain.AssetToken))
	require.NoError(t, store.UpdateEventStatus(ctx, "ev-claim", schema.EventStatusCancel))

	t.Run("confirming one asset keeps the record", func(t *testing.T) {
		id := seedClaimTransfer(t, store, "ev-claim", "s1.near", domain.AssetNative, 5000)
		require.NoError(t, store.ApplyClaimSettlement(ctx, id))

		event, err := store.GetEvent(ctx, "ev-claim")
		require.NoError(t, err)
		assert.Equal(t, uint64(3000), event.TotalNative)
		assert.Equal(t, uint64(800), event.TotalToken)

		sp, err := store.GetSponsorship(ctx, "s1.near", "ev-claim")
		require.NoError(t, err)
		require.NotNil(t, sp)
		assert.Equal(t, uint64(0), sp.NativeAmount)
		assert.Equal(t, uint64(800), sp.TokenAmount)

		sponsors, err := store.ListEventSponsors(ctx, "ev-claim")
		require.NoError(t, err)
		assert.Contains(t, sponsors, "s1.near")

		transfer, err := store.GetClaimTransfer(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, schema.ClaimTransferStatusConfirmed, transfer.Status)
		assert.NotNil(t, transfer.ResolvedAt)
	})

	t.Run("confirming the last asset removes the record", func(t *testing.T) {
		id := seedClaimTransfer(t, store, "ev-claim", "s1.near", domain.AssetToken, 800)
		require.NoError(t, store.ApplyClaimSettlement(ctx, id))

		event, err := store.GetEvent(ctx, "ev-claim")
		require.NoError(t, err)
		assert.Equal(t, uint64(3000), event.TotalNative)
		assert.Equal(t, uint64(0), event.TotalToken)

		sp, err := store.GetSponsorship(ctx, "s1.near", "ev-claim")
		require.NoError(t, err)
		assert.Nil(t, sp)

		sponsors, err := store.ListEventSponsors(ctx, "ev-claim")
		require.NoError(t, err)
		assert.Equal(t, []string{"s2.near"}, sponsors)
	})

	t.Run("re-applying a confirmed transfer is a no-op", func(t *testing.T) {
		id := seedClaimTransfer(t, store, "ev-claim", "s2.near", domain.AssetNative, 3000)
		require.NoError(t, store.ApplyClaimSettlement(ctx, id))
		require.NoError(t, store.ApplyClaimSettlement(ctx, id))

		event, err := store.GetEvent(ctx, "ev-claim")
		require.NoError(t, err)
		assert.Equal(t, uint64(0), event.TotalNative)
	})

	t.Run("unknown correlation id", func(t *testing.T) {
		err := store.ApplyClaimSettlement(ctx, uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrTransferNotFound)
	})

	t.Run("failed transfer keeps ledger state", func(t *testing.T) {
		_, err := store.CreateEvent(ctx, "ev-claim-fail", "alice.near", "Failing")
		require.NoError(t, err)
		require.NoError(t, store.CreateSponsorship(ctx, "s9.near", "ev-claim-fail", 1200, domain.AssetNative))

		id := seedClaimTransfer(t, store, "ev-claim-fail", "s9.near", domain.AssetNative, 1200)
		require.NoError(t, store.MarkClaimTransferFailed(ctx, id, "receiver not registered"))

		transfer, err := store.GetClaimTransfer(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, schema.ClaimTransferStatusFailed, transfer.Status)
		assert.Equal(t, "receiver not registered", transfer.FailureReason)

		event, err := store.GetEvent(ctx, "ev-claim-fail")
		require.NoError(t, err)
		assert.Equal(t, uint64(1200), event.TotalNative)

		sp, err := store.GetSponsorship(ctx, "s9.near", "ev-claim-fail")
		require.NoError(t, err)
		require.NotNil(t, sp)
		assert.Equal(t, uint64(1200), sp.NativeAmount)

		// a failed transfer cannot be marked again
		err = store.MarkClaimTransferFailed(ctx, id, "again")
		assert.ErrorIs(t, err, domain.ErrTransferNotFound)
	})

	t.Run("top-up during an in-flight claim survives confirmation", func(t *testing.T) {
		_, err := store.CreateEvent(ctx, "ev-claim-race", "alice.near", "Racing")
		require.NoError(t, err)
		require.NoError(t, store.CreateSponsorship(ctx, "s7.near", "ev-claim-race", 6000, domain.AssetNative))
		require.NoError(t, store.UpdateEventStatus(ctx, "ev-claim-race", schema.EventStatusCancel))

		// transfer issued for the full balance at claim time
		id := seedClaimTransfer(t, store, "ev-claim-race", "s7.near", domain.AssetNative, 6000)

		// deposit lands while the transfer is in flight
		require.NoError(t, store.TopUpSponsorship(ctx, "s7.near", "ev-claim-race", 2500, domain.AssetNative))

		require.NoError(t, store.ApplyClaimSettlement(ctx, id))

		event, err := store.GetEvent(ctx, "ev-claim-race")
		require.NoError(t, err)
		assert.Equal(t, uint64(2500), event.TotalNative)

		sp, err := store.GetSponsorship(ctx, "s7.near", "ev-claim-race")
		require.NoError(t, err)
		require.NotNil(t, sp)
		assert.Equal(t, uint64(2500), sp.NativeAmount)

		sponsors, err := store.ListEventSponsors(ctx, "ev-claim-race")
		require.NoError(t, err)
		assert.Contains(t, sponsors, "s7.near")
	})
}

func testPendingClaim(t *testing.T, store Store) {
	ctx := context.Background()

	_, err := store.CreateEvent(ctx, "ev-pending", "alice.near", "Pending")
	require.NoError(t, err)
	require.NoError(t, store.CreateSponsorship(ctx, "s1.near", "ev-pending", 4000, domain.AssetNative))

	t.Run("unconfirmed transfer leaves ledger intact", func(t *testing.T) {
		id := seedClaimTransfer(t, store, "ev-pending", "s1.near", domain.AssetNative, 4000)

		event, err := store.GetEvent(ctx, "ev-pending")
		require.NoError(t, err)
		assert.Equal(t, uint64(4000), event.TotalNative)

		sp, err := store.GetSponsorship(ctx, "s1.near", "ev-pending")
		require.NoError(t, err)
		require.NotNil(t, sp)
		assert.Equal(t, uint64(4000), sp.NativeAmount)

		pending, err := store.ListClaimTransfersByEvent(ctx, "ev-pending", true)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, id, pending[0].ID)
	})

	t.Run("eager removal drops the record before confirmation", func(t *testing.T) {
		// the legacy mode: the sponsorship row disappears while the aggregate
		// total still carries the amount
		require.NoError(t, store.RemoveSponsorRecord(ctx, "s1.near", "ev-pending"))

		sp, err := store.GetSponsorship(ctx, "s1.near", "ev-pending")
		require.NoError(t, err)
		assert.Nil(t, sp)

		event, err := store.GetEvent(ctx, "ev-pending")
		require.NoError(t, err)
		assert.Equal(t, uint64(4000), event.TotalNative)
	})

	t.Run("late confirmation settles in eager mode", func(t *testing.T) {
		pending, err := store.ListClaimTransfersByEvent(ctx, "ev-pending", true)
		require.NoError(t, err)
		require.Len(t, pending, 1)

		require.NoError(t, store.ApplyClaimSettlement(ctx, pending[0].ID))

		event, err := store.GetEvent(ctx, "ev-pending")
		require.NoError(t, err)
		assert.Equal(t, uint64(0), event.TotalNative)

		sponsors, err := store.ListEventSponsors(ctx, "ev-pending")
		require.NoError(t, err)
		assert.Empty(t, sponsors)
	})
}

func testAccountBalances(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("bootstrap mints supply once", func(t *testing.T) {
		require.NoError(t, store.EnsureTotalSupply(ctx, "owner.near", 1_000_000))
		require.NoError(t, store.EnsureTotalSupply(ctx, "owner.near", 5))

		supply, err := store.GetTotalSupply(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(1_000_000), supply)

		balance, err := store.GetAccountBalance(ctx, "owner.near")
		require.NoError(t, err)
		assert.Equal(t, uint64(1_000_000), balance)
	})

	t.Run("register account", func(t *testing.T) {
		require.NoError(t, store.RegisterAccount(ctx, "new.near"))

		balance, err := store.GetAccountBalance(ctx, "new.near")
		require.NoError(t, err)
		assert.Equal(t, uint64(0), balance)

		err = store.RegisterAccount(ctx, "new.near")
		assert.ErrorIs(t, err, domain.ErrAccountRegistered)
	})

	t.Run("unregistered account", func(t *testing.T) {
		_, err := store.GetAccountBalance(ctx, "ghost.near")
		assert.ErrorIs(t, err, domain.ErrAccountNotRegistered)
	})

	t.Run("transfer between accounts", func(t *testing.T) {
		require.NoError(t, store.TransferBalance(ctx, "owner.near", "new.near", 250))

		from, err := store.GetAccountBalance(ctx, "owner.near")
		require.NoError(t, err)
		to, err := store.GetAccountBalance(ctx, "new.near")
		require.NoError(t, err)
		assert.Equal(t, uint64(999_750), from)
		assert.Equal(t, uint64(250), to)
	})

	t.Run("transfer rules", func(t *testing.T) {
		err := store.TransferBalance(ctx, "new.near", "new.near", 10)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)

		err = store.TransferBalance(ctx, "new.near", "owner.near", 0)
		assert.ErrorIs(t, err, domain.ErrInsufficientPayment)

		err = store.TransferBalance(ctx, "new.near", "owner.near", 999_999)
		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

		err = store.TransferBalance(ctx, "ghost.near", "owner.near", 10)
		assert.ErrorIs(t, err, domain.ErrAccountNotRegistered)
	})
}

func testKeyValues(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		value, err := store.GetValue(ctx, "nothing")
		require.NoError(t, err)
		assert.Equal(t, "", value)
	})

	t.Run("set and overwrite", func(t *testing.T) {
		require.NoError(t, store.SetValue(ctx, KeyStorageRegistered, "true"))

		value, err := store.GetValue(ctx, KeyStorageRegistered)
		require.NoError(t, err)
		assert.Equal(t, "true", value)

		require.NoError(t, store.SetValue(ctx, KeyStorageRegistered, "false"))
		value, err = store.GetValue(ctx, KeyStorageRegistered)
		require.NoError(t, err)
		assert.Equal(t, "false", value)
	})
}

func eventIDs(events []schema.Event) []string {
	ids := make([]string, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	return ids
}
