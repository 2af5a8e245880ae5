package domain

import "fmt"

// Account is an opaque account identifier chosen by the surrounding platform.
type Account string

// EventID is the caller-chosen identifier of a funding event. The service does
// not generate these and does not re-check uniqueness beyond overwrite-on-insert.
type EventID string

// EventStatus represents the lifecycle state of an event
type EventStatus string

const (
	EventStatusPending EventStatus = "pending"
	EventStatusActive  EventStatus = "active"
	EventStatusFinish  EventStatus = "finish"
	EventStatusCancel  EventStatus = "cancel"
)

// IsValidEventStatus checks if a status is one of the known lifecycle states
func IsValidEventStatus(s EventStatus) bool {
	return s == EventStatusPending ||
		s == EventStatusActive ||
		s == EventStatusFinish ||
		s == EventStatusCancel
}

// Terminal reports whether no further transition is allowed out of s
func (s EventStatus) Terminal() bool {
	return s == EventStatusFinish || s == EventStatusCancel
}

// CanTransition reports whether the status may move to target. The lifecycle
// only moves forward: pending/active may become finish or cancel, nothing
// leaves finish or cancel.
func (s EventStatus) CanTransition(target EventStatus) bool {
	if s.Terminal() {
		return false
	}
	switch target {
	case EventStatusActive:
		return s == EventStatusPending
	case EventStatusFinish, EventStatusCancel:
		return true
	default:
		return false
	}
}

// AssetKind identifies one of the two value types tracked per event and per
// sponsor: the platform-native balance or the external fungible-token balance.
type AssetKind string

const (
	AssetNative AssetKind = "native"
	AssetToken  AssetKind = "token"
)

// IsValidAssetKind checks if an asset kind is supported
func IsValidAssetKind(a AssetKind) bool {
	return a == AssetNative || a == AssetToken
}

// Amount holds the per-asset balances of a single (sponsor, event) pair
type Amount struct {
	Native uint64 `json:"native"`
	Token  uint64 `json:"token"`
}

// IsZero reports whether both asset components are zero
func (a Amount) IsZero() bool {
	return a.Native == 0 && a.Token == 0
}

// Get returns the component for the given asset kind
func (a Amount) Get(kind AssetKind) uint64 {
	if kind == AssetToken {
		return a.Token
	}
	return a.Native
}

// AddChecked returns a+b, failing with ErrAmountOverflow on wraparound
func AddChecked(a, b uint64) (uint64, error) {
	sum := a + b
	if sum < a {
		return 0, ErrAmountOverflow
	}
	return sum, nil
}

// SubChecked returns a-b, failing with ErrInsufficientBalance when b > a
func SubChecked(a, b uint64) (uint64, error) {
	if b > a {
		return 0, ErrInsufficientBalance
	}
	return a - b, nil
}

// Event is the aggregate view of a funding event
type Event struct {
	ID          EventID     `json:"id"`
	Owner       Account     `json:"owner"`
	Name        string      `json:"name"`
	TotalNative uint64      `json:"total_native"`
	TotalToken  uint64      `json:"total_token"`
	Status      EventStatus `json:"status"`
	Sponsors    []Account   `json:"sponsors"`
}

// ClaimWorkflowID builds the workflow identifier of the settlement workflow
// for a (sponsor, event) pair. Workflow ID uniqueness is what rejects a second
// claim while the first one is still in flight.
func ClaimWorkflowID(eventID EventID, sponsor Account) string {
	return fmt.Sprintf("claim:%s:%s", eventID, sponsor)
}
