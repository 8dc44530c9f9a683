package models

import "time"

// FraudReason identifies the rule that rejected an invoice. The set is
// open ended: new rules introduce new reasons without breaking existing
// consumers, which match on the string value.
type FraudReason string

const (
	ReasonSuspiciousAccount FraudReason = "SUSPICIOUS_ACCOUNT"
	ReasonUnusualPattern    FraudReason = "UNUSUAL_PATTERN"
	ReasonFrequentHighValue FraudReason = "FREQUENT_HIGH_VALUE"
)

// FraudRecord is the persisted explanation for a rejected invoice.
// It is created in the same transaction as its invoice and never
// modified or deleted. An approved invoice has no record.
type FraudRecord struct {
	ID          string      `gorm:"primaryKey" json:"id"`
	InvoiceID   string      `gorm:"not null;uniqueIndex" json:"invoice_id"`
	Reason      FraudReason `gorm:"not null" json:"reason"`
	Description string      `gorm:"not null" json:"description"`
	CreatedAt   time.Time   `json:"created_at"`
}
