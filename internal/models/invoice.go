package models

import "time"

// Invoice statuses
const (
	InvoiceStatusApproved = "APPROVED"
	InvoiceStatusRejected = "REJECTED"
)

// Invoice is a single scored financial event. The externally supplied ID
// doubles as the idempotency key: each id is committed at most once and
// the row is immutable afterwards. CreatedAt is assigned by the ledger
// at commit time and drives the ordering the history rules read.
type Invoice struct {
	ID          string       `gorm:"primaryKey" json:"id"`
	AccountID   string       `gorm:"not null;index" json:"account_id"`
	Amount      float64      `gorm:"not null" json:"amount"`
	Status      string       `gorm:"not null" json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	FraudRecord *FraudRecord `gorm:"foreignKey:InvoiceID" json:"fraud_record,omitempty"`
}
