package schema

import "time"

// AccountBalance represents the account_balances table - the token-mirror
// ledger of registered accounts. The sum of all balances equals the total
// supply recorded in the key-value store.
type AccountBalance struct {
	// Account is the registered account identifier
	Account string `gorm:"column:account;primaryKey;type:text"`
	// Balance is the account's token balance
	Balance uint64 `gorm:"column:balance;not null;default:0"`
	// CreatedAt is the timestamp of registration
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp of the last balance change
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the AccountBalance model
func (AccountBalance) TableName() string {
	return "account_balances"
}

// KeyValueStore stores arbitrary key-value pairs for configuration and state
// Used for the total supply and the storage-registration flag.
type KeyValueStore struct {
	Key       string    `gorm:"primaryKey;type:text"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (KeyValueStore) TableName() string {
	return "key_value_store"
}
