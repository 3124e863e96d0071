package models

import "time"

// StorageBlob is one key-value row of the durable store. Runs, stats, the
// active-run pointer and the case cache are each serialized as a JSON blob
// under a fixed key.
type StorageBlob struct {
	Key       string    `gorm:"primarykey;size:120" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for StorageBlob model
func (StorageBlob) TableName() string {
	return "storage_blobs"
}
