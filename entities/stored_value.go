package entities

import "time"

// StoredValue is one key of an owner's key-value store. The saved farm list
// is serialized whole into a single row.
type StoredValue struct {
	Owner     string `gorm:"primaryKey"`
	Key       string `gorm:"primaryKey;column:store_key"`
	Value     string
	UpdatedAt time.Time
}
