package models

import "time"

// Account is the entity an invoice is attributed to. Rows are created
// lazily by the first invoice that references them and are never deleted.
// IsSuspicious is maintained by the admin surface, the scoring engine
// only reads it.
type Account struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	IsSuspicious bool      `gorm:"not null;default:false" json:"is_suspicious"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
