package models

import "time"

// KVEntry backs the flat key-value store used for mentor state
// (missions, rule preferences, config). The mentor core never touches
// this table directly; it only sees the storage.Store contract.
type KVEntry struct {
	Key       string    `gorm:"primaryKey" json:"key"`
	Value     string    `gorm:"not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName keeps the mentor state table clearly namespaced.
func (KVEntry) TableName() string { return "mentor_kv" }
