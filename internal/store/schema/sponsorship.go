package schema

import (
	"time"
)

// Sponsorship represents the sponsorships table - the recorded per-asset
// balance of one (sponsor, event) pair. A sponsor's set of rows is their
// sponsor record; deleting the last row deletes the record.
type Sponsorship struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Sponsor is the depositing account
	Sponsor string `gorm:"column:sponsor;not null;type:text;uniqueIndex:idx_sponsorships_sponsor_event,priority:1"`
	// EventID is the sponsored event
	EventID string `gorm:"column:event_id;not null;type:text;uniqueIndex:idx_sponsorships_sponsor_event,priority:2;index:idx_sponsorships_event"`
	// NativeAmount is the recorded native deposit
	NativeAmount uint64 `gorm:"column:native_amount;not null;default:0"`
	// TokenAmount is the recorded token deposit
	TokenAmount uint64 `gorm:"column:token_amount;not null;default:0"`
	// CreatedAt is the timestamp of the first deposit
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp of the last top-up or settlement
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Sponsorship model
func (Sponsorship) TableName() string {
	return "sponsorships"
}

// ClientEvent represents the client_events table - the append-only index of
// events created by each client account.
type ClientEvent struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Client is the creator account
	Client string `gorm:"column:client;not null;type:text;index:idx_client_events_client"`
	// EventID is the created event
	EventID string `gorm:"column:event_id;not null;type:text"`
}

// TableName specifies the table name for the ClientEvent model
func (ClientEvent) TableName() string {
	return "client_events"
}
