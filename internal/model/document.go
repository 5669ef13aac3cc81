package model

import "time"

// Document is a keyed, whole-value record used by the SQL document store.
type Document struct {
	Key       string    `gorm:"primaryKey;size:191"`
	Value     string    `gorm:"type:longtext;not null"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName pins the table name.
func (Document) TableName() string {
	return "documents"
}
