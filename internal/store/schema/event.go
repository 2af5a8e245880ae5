package schema

import (
	"time"
)

// EventStatus is the lifecycle state of an event row
type EventStatus string

const (
	// EventStatusPending is the initial state before activation
	EventStatusPending EventStatus = "pending"
	// EventStatusActive is the state accepting sponsorships
	EventStatusActive EventStatus = "active"
	// EventStatusFinish is the terminal state of a completed event
	EventStatusFinish EventStatus = "finish"
	// EventStatusCancel is the terminal state that permits claims
	EventStatusCancel EventStatus = "cancel"
)

// Event represents the events table - one funding event with its aggregate
// per-asset totals. The totals must equal the sum of the event's sponsorship
// rows except while a claim settlement is in flight.
type Event struct {
	// ID is the caller-chosen event identifier
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Owner is the account that created the event
	Owner string `gorm:"column:owner;not null;type:text;index:idx_events_owner"`
	// Name is the display name of the event
	Name string `gorm:"column:name;not null;type:text"`
	// TotalNative is the aggregate native deposit across all sponsors
	TotalNative uint64 `gorm:"column:total_native;not null;default:0"`
	// TotalToken is the aggregate token deposit across all sponsors
	TotalToken uint64 `gorm:"column:total_token;not null;default:0"`
	// Status is the lifecycle state (pending, active, finish, cancel)
	Status EventStatus `gorm:"column:status;not null;default:active;index:idx_events_status"`
	// CreatedAt is the timestamp when this event was registered
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this event was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Sponsors     []EventSponsor `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
	Sponsorships []Sponsorship  `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Event model
func (Event) TableName() string {
	return "events"
}

// EventSponsor represents the event_sponsors table - the ordered sponsor list
// of an event. The same account may appear more than once; rows are only
// removed when that sponsor's claim settles.
type EventSponsor struct {
	// ID is an auto-incrementing sequence number preserving insertion order
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// EventID is the event being sponsored
	EventID string `gorm:"column:event_id;not null;type:text;index:idx_event_sponsors_event"`
	// Account is the sponsor's account
	Account string `gorm:"column:account;not null;type:text"`
}

// TableName specifies the table name for the EventSponsor model
func (EventSponsor) TableName() string {
	return "event_sponsors"
}
