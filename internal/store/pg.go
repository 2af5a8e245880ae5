package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/plats-network/sponsor-ledger/internal/domain"
	"github.com/plats-network/sponsor-ledger/internal/store/schema"
)

const (
	// keyTotalSupply is the key-value entry holding the minted total supply
	keyTotalSupply = "token:total_supply"
	// KeyStorageRegistered is the key-value entry set once the contract
	// account has been registered with the token service's storage accounting
	KeyStorageRegistered = "token:storage_registered"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to reasonable defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// Migrate creates or updates the database schema
func (s *pgStore) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(
		&schema.Event{},
		&schema.EventSponsor{},
		&schema.Sponsorship{},
		&schema.ClientEvent{},
		&schema.AccountBalance{},
		&schema.KeyValueStore{},
		&schema.ClaimTransfer{},
	)
}

// CreateEvent registers an event. Reusing an id silently overwrites the prior
// event and clears its sponsor list; the id is caller-chosen and callers must
// guarantee uniqueness upstream.
func (s *pgStore) CreateEvent(ctx context.Context, eventID string, owner string, name string) (*schema.Event, error) {
	event := schema.Event{
		ID:     eventID,
		Owner:  owner,
		Name:   name,
		Status: schema.EventStatusActive,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"owner", "name", "total_native", "total_token", "status", "updated_at",
			}),
		}).Create(&event).Error; err != nil {
			return fmt.Errorf("failed to create event: %w", err)
		}

		if err := tx.Where("event_id = ?", eventID).Delete(&schema.EventSponsor{}).Error; err != nil {
			return fmt.Errorf("failed to reset event sponsors: %w", err)
		}

		clientEvent := schema.ClientEvent{Client: owner, EventID: eventID}
		if err := tx.Where("client = ? AND event_id = ?", owner, eventID).
			FirstOrCreate(&clientEvent).Error; err != nil {
			return fmt.Errorf("failed to index client event: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &event, nil
}

// GetEvent retrieves an event by id, nil if absent
func (s *pgStore) GetEvent(ctx context.Context, eventID string) (*schema.Event, error) {
	var event schema.Event
	err := s.db.WithContext(ctx).Where("id = ?", eventID).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return &event, nil
}

// ListEvents retrieves all events ordered by creation time
func (s *pgStore) ListEvents(ctx context.Context) ([]schema.Event, error) {
	var events []schema.Event
	err := s.db.WithContext(ctx).Order("created_at ASC").Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// ListEventsByStatus retrieves events filtered on active / inactive status
func (s *pgStore) ListEventsByStatus(ctx context.Context, active bool) ([]schema.Event, error) {
	var events []schema.Event
	query := s.db.WithContext(ctx).Order("created_at ASC")
	if active {
		query = query.Where("status = ?", schema.EventStatusActive)
	} else {
		query = query.Where("status <> ?", schema.EventStatusActive)
	}
	if err := query.Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to list events by status: %w", err)
	}
	return events, nil
}

// ListEventsByClient retrieves events recorded in a client's event index
func (s *pgStore) ListEventsByClient(ctx context.Context, client string) ([]schema.Event, error) {
	var events []schema.Event
	err := s.db.WithContext(ctx).
		Joins("JOIN client_events ON client_events.event_id = events.id").
		Where("client_events.client = ?", client).
		Order("client_events.id ASC").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list events by client: %w", err)
	}
	return events, nil
}

// UpdateEventStatus transitions an event's lifecycle status, enforcing
// forward-only movement
func (s *pgStore) UpdateEventStatus(ctx context.Context, eventID string, status schema.EventStatus) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		event, err := lockEvent(tx, eventID)
		if err != nil {
			return err
		}

		current := domain.EventStatus(event.Status)
		if !current.CanTransition(domain.EventStatus(status)) {
			return domain.ErrInvalidEventState
		}

		if err := tx.Model(event).Update("status", status).Error; err != nil {
			return fmt.Errorf("failed to update event status: %w", err)
		}
		return nil
	})
}

// ListEventSponsors returns the ordered, non-deduplicated sponsor list
func (s *pgStore) ListEventSponsors(ctx context.Context, eventID string) ([]string, error) {
	var accounts []string
	err := s.db.WithContext(ctx).
		Model(&schema.EventSponsor{}).
		Where("event_id = ?", eventID).
		Order("id ASC").
		Pluck("account", &accounts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list event sponsors: %w", err)
	}
	return accounts, nil
}

// lockEvent fetches an event row with a FOR UPDATE lock inside a transaction
func lockEvent(tx *gorm.DB, eventID string) (*schema.Event, error) {
	var event schema.Event
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", eventID).
		First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to lock event: %w", err)
	}
	return &event, nil
}

// CreateSponsorship records a first deposit for a (sponsor, event) pair
func (s *pgStore) CreateSponsorship(ctx context.Context, sponsor string, eventID string, amount uint64, asset domain.AssetKind) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		event, err := lockEvent(tx, eventID)
		if err != nil {
			return err
		}

		var existing schema.Sponsorship
		err = tx.Where("sponsor = ? AND event_id = ?", sponsor, eventID).First(&existing).Error
		if err == nil {
			return domain.ErrAlreadySponsored
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check sponsorship: %w", err)
		}

		sponsorship := schema.Sponsorship{Sponsor: sponsor, EventID: eventID}
		switch asset {
		case domain.AssetToken:
			sponsorship.TokenAmount = amount
			event.TotalToken, err = domain.AddChecked(event.TotalToken, amount)
		default:
			sponsorship.NativeAmount = amount
			event.TotalNative, err = domain.AddChecked(event.TotalNative, amount)
		}
		if err != nil {
			return err
		}

		if err := tx.Create(&sponsorship).Error; err != nil {
			return fmt.Errorf("failed to create sponsorship: %w", err)
		}
		if err := tx.Create(&schema.EventSponsor{EventID: eventID, Account: sponsor}).Error; err != nil {
			return fmt.Errorf("failed to append event sponsor: %w", err)
		}
		if err := tx.Model(event).Updates(map[string]interface{}{
			"total_native": event.TotalNative,
			"total_token":  event.TotalToken,
		}).Error; err != nil {
			return fmt.Errorf("failed to update event totals: %w", err)
		}
		return nil
	})
}

// TopUpSponsorship adds to an existing deposit with checked addition
func (s *pgStore) TopUpSponsorship(ctx context.Context, sponsor string, eventID string, amount uint64, asset domain.AssetKind) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		event, err := lockEvent(tx, eventID)
		if err != nil {
			return err
		}

		var sponsorship schema.Sponsorship
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("sponsor = ? AND event_id = ?", sponsor, eventID).
			First(&sponsorship).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotSponsored
			}
			return fmt.Errorf("failed to lock sponsorship: %w", err)
		}

		switch asset {
		case domain.AssetToken:
			sponsorship.TokenAmount, err = domain.AddChecked(sponsorship.TokenAmount, amount)
			if err != nil {
				return err
			}
			event.TotalToken, err = domain.AddChecked(event.TotalToken, amount)
		default:
			sponsorship.NativeAmount, err = domain.AddChecked(sponsorship.NativeAmount, amount)
			if err != nil {
				return err
			}
			event.TotalNative, err = domain.AddChecked(event.TotalNative, amount)
		}
		if err != nil {
			return err
		}

		if err := tx.Model(&sponsorship).Updates(map[string]interface{}{
			"native_amount": sponsorship.NativeAmount,
			"token_amount":  sponsorship.TokenAmount,
		}).Error; err != nil {
			return fmt.Errorf("failed to update sponsorship: %w", err)
		}
		if err := tx.Model(event).Updates(map[string]interface{}{
			"total_native": event.TotalNative,
			"total_token":  event.TotalToken,
		}).Error; err != nil {
			return fmt.Errorf("failed to update event totals: %w", err)
		}
		return nil
	})
}

// GetSponsorship retrieves the recorded balance of a (sponsor, event) pair
func (s *pgStore) GetSponsorship(ctx context.Context, sponsor string, eventID string) (*schema.Sponsorship, error) {
	var sponsorship schema.Sponsorship
	err := s.db.WithContext(ctx).
		Where("sponsor = ? AND event_id = ?", sponsor, eventID).
		First(&sponsorship).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get sponsorship: %w", err)
	}
	return &sponsorship, nil
}

// ListSponsorshipsBySponsor returns everything a sponsor has funded
func (s *pgStore) ListSponsorshipsBySponsor(ctx context.Context, sponsor string) ([]schema.Sponsorship, error) {
	var sponsorships []schema.Sponsorship
	err := s.db.WithContext(ctx).
		Where("sponsor = ?", sponsor).
		Order("created_at ASC").
		Find(&sponsorships).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sponsorships: %w", err)
	}
	return sponsorships, nil
}

// CreateClaimTransfer persists a pending settlement transfer
func (s *pgStore) CreateClaimTransfer(ctx context.Context, transfer *schema.ClaimTransfer) error {
	if err := s.db.WithContext(ctx).Create(transfer).Error; err != nil {
		return fmt.Errorf("failed to create claim transfer: %w", err)
	}
	return nil
}

// GetClaimTransfer retrieves a settlement transfer by correlation id
func (s *pgStore) GetClaimTransfer(ctx context.Context, correlationID string) (*schema.ClaimTransfer, error) {
	var transfer schema.ClaimTransfer
	err := s.db.WithContext(ctx).Where("id = ?", correlationID).First(&transfer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get claim transfer: %w", err)
	}
	return &transfer, nil
}

// ListClaimTransfersByEvent returns the settlement transfers of an event
func (s *pgStore) ListClaimTransfersByEvent(ctx context.Context, eventID string, pendingOnly bool) ([]schema.ClaimTransfer, error) {
	var transfers []schema.ClaimTransfer
	query := s.db.WithContext(ctx).Where("event_id = ?", eventID)
	if pendingOnly {
		query = query.Where("status = ?", schema.ClaimTransferStatusPending)
	}
	if err := query.Order("created_at ASC").Find(&transfers).Error; err != nil {
		return nil, fmt.Errorf("failed to list claim transfers: %w", err)
	}
	return transfers, nil
}

// ApplyClaimSettlement applies a confirmed transfer in one transaction.
// Re-applying an already-resolved transfer is a no-op so redelivered
// confirmations cannot double-settle.
func (s *pgStore) ApplyClaimSettlement(ctx context.Context, correlationID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var transfer schema.ClaimTransfer
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", correlationID).
			First(&transfer).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrTransferNotFound
			}
			return fmt.Errorf("failed to lock claim transfer: %w", err)
		}
		if transfer.Status != schema.ClaimTransferStatusPending {
			return nil
		}

		event, err := lockEvent(tx, transfer.EventID)
		if err != nil {
			return err
		}

		switch domain.AssetKind(transfer.Asset) {
		case domain.AssetToken:
			event.TotalToken, err = domain.SubChecked(event.TotalToken, transfer.Amount)
		default:
			event.TotalNative, err = domain.SubChecked(event.TotalNative, transfer.Amount)
		}
		if err != nil {
			// Aggregate total drifted below the settled amount. The upstream
			// system would underflow here; we surface it as a hard error.
			return fmt.Errorf("event %s total inconsistent with settlement %s: %w",
				transfer.EventID, correlationID, err)
		}

		removeSponsor := false
		var sponsorship schema.Sponsorship
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("sponsor = ? AND event_id = ?", transfer.Sponsor, transfer.EventID).
			First(&sponsorship).Error
		switch {
		case err == nil:
			// Subtract the settled amount rather than zeroing. Top-ups are
			// accepted while a transfer is in flight, so the row may hold
			// more than the claim snapshot and the surplus must survive.
			if domain.AssetKind(transfer.Asset) == domain.AssetToken {
				sponsorship.TokenAmount, err = domain.SubChecked(sponsorship.TokenAmount, transfer.Amount)
			} else {
				sponsorship.NativeAmount, err = domain.SubChecked(sponsorship.NativeAmount, transfer.Amount)
			}
			if err != nil {
				return fmt.Errorf("sponsorship %s/%s inconsistent with settlement %s: %w",
					transfer.Sponsor, transfer.EventID, correlationID, err)
			}
			if sponsorship.NativeAmount == 0 && sponsorship.TokenAmount == 0 {
				if err := tx.Delete(&sponsorship).Error; err != nil {
					return fmt.Errorf("failed to delete sponsorship: %w", err)
				}
				removeSponsor = true
			} else {
				if err := tx.Model(&sponsorship).Updates(map[string]interface{}{
					"native_amount": sponsorship.NativeAmount,
					"token_amount":  sponsorship.TokenAmount,
				}).Error; err != nil {
					return fmt.Errorf("failed to update sponsorship: %w", err)
				}
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// Legacy eager mode already removed the record at initiation.
			removeSponsor = true
		default:
			return fmt.Errorf("failed to lock sponsorship: %w", err)
		}

		if removeSponsor {
			if err := tx.Where("event_id = ? AND account = ?", transfer.EventID, transfer.Sponsor).
				Delete(&schema.EventSponsor{}).Error; err != nil {
				return fmt.Errorf("failed to remove event sponsor: %w", err)
			}
		}

		if err := tx.Model(event).Updates(map[string]interface{}{
			"total_native": event.TotalNative,
			"total_token":  event.TotalToken,
		}).Error; err != nil {
			return fmt.Errorf("failed to update event totals: %w", err)
		}

		now := time.Now()
		if err := tx.Model(&transfer).Updates(map[string]interface{}{
			"status":      schema.ClaimTransferStatusConfirmed,
			"resolved_at": &now,
		}).Error; err != nil {
			return fmt.Errorf("failed to confirm claim transfer: %w", err)
		}
		return nil
	})
}

// MarkClaimTransferFailed records a collaborator-reported failure
func (s *pgStore) MarkClaimTransferFailed(ctx context.Context, correlationID string, reason string) error {
	now := time.Now()
	result := s.db.WithContext(ctx).
		Model(&schema.ClaimTransfer{}).
		Where("id = ? AND status = ?", correlationID, schema.ClaimTransferStatusPending).
		Updates(map[string]interface{}{
			"status":         schema.ClaimTransferStatusFailed,
			"failure_reason": reason,
			"resolved_at":    &now,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to mark claim transfer failed: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrTransferNotFound
	}
	return nil
}

// RemoveSponsorRecord deletes the sponsorship row of a (sponsor, event) pair
// without touching aggregate totals (legacy eager index removal)
func (s *pgStore) RemoveSponsorRecord(ctx context.Context, sponsor string, eventID string) error {
	err := s.db.WithContext(ctx).
		Where("sponsor = ? AND event_id = ?", sponsor, eventID).
		Delete(&schema.Sponsorship{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove sponsor record: %w", err)
	}
	return nil
}

// RegisterAccount creates a zero balance for an account
func (s *pgStore) RegisterAccount(ctx context.Context, account string) error {
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&schema.AccountBalance{Account: account})
	if result.Error != nil {
		return fmt.Errorf("failed to register account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrAccountRegistered
	}
	return nil
}

// GetAccountBalance returns an account's token-mirror balance
func (s *pgStore) GetAccountBalance(ctx context.Context, account string) (uint64, error) {
	var balance schema.AccountBalance
	err := s.db.WithContext(ctx).Where("account = ?", account).First(&balance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, domain.ErrAccountNotRegistered
		}
		return 0, fmt.Errorf("failed to get account balance: %w", err)
	}
	return balance.Balance, nil
}

// TransferBalance moves value between registered accounts with checked arithmetic
func (s *pgStore) TransferBalance(ctx context.Context, sender string, receiver string, amount uint64) error {
	if sender == receiver {
		return fmt.Errorf("sender and receiver must differ: %w", domain.ErrUnauthorized)
	}
	if amount == 0 {
		return fmt.Errorf("amount must be positive: %w", domain.ErrInsufficientPayment)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lockBalance := func(account string) (*schema.AccountBalance, error) {
			var balance schema.AccountBalance
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("account = ?", account).
				First(&balance).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, domain.ErrAccountNotRegistered
				}
				return nil, fmt.Errorf("failed to lock account balance: %w", err)
			}
			return &balance, nil
		}

		from, err := lockBalance(sender)
		if err != nil {
			return err
		}
		to, err := lockBalance(receiver)
		if err != nil {
			return err
		}

		from.Balance, err = domain.SubChecked(from.Balance, amount)
		if err != nil {
			return err
		}
		to.Balance, err = domain.AddChecked(to.Balance, amount)
		if err != nil {
			return err
		}

		if err := tx.Model(from).Update("balance", from.Balance).Error; err != nil {
			return fmt.Errorf("failed to debit sender: %w", err)
		}
		if err := tx.Model(to).Update("balance", to.Balance).Error; err != nil {
			return fmt.Errorf("failed to credit receiver: %w", err)
		}
		return nil
	})
}

// EnsureTotalSupply mints the initial supply to the owner account exactly once
func (s *pgStore) EnsureTotalSupply(ctx context.Context, owner string, totalSupply uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var kv schema.KeyValueStore
		err := tx.Where("key = ?", keyTotalSupply).First(&kv).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check total supply: %w", err)
		}

		if err := tx.Create(&schema.KeyValueStore{
			Key:   keyTotalSupply,
			Value: strconv.FormatUint(totalSupply, 10),
		}).Error; err != nil {
			return fmt.Errorf("failed to record total supply: %w", err)
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account"}},
			DoUpdates: clause.AssignmentColumns([]string{"balance"}),
		}).Create(&schema.AccountBalance{Account: owner, Balance: totalSupply}).Error; err != nil {
			return fmt.Errorf("failed to mint supply to owner: %w", err)
		}
		return nil
	})
}

// GetTotalSupply returns the recorded total supply
func (s *pgStore) GetTotalSupply(ctx context.Context) (uint64, error) {
	value, err := s.GetValue(ctx, keyTotalSupply)
	if err != nil {
		return 0, err
	}
	if value == "" {
		return 0, nil
	}
	supply, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse total supply: %w", err)
	}
	return supply, nil
}

// GetValue retrieves a raw key-value entry, empty string if absent
func (s *pgStore) GetValue(ctx context.Context, key string) (string, error) {
	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get value: %w", err)
	}
	return kv.Value, nil
}

// SetValue stores a raw key-value entry
func (s *pgStore) SetValue(ctx context.Context, key string, value string) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&schema.KeyValueStore{Key: key, Value: value}).Error
	if err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}
	return nil
}
