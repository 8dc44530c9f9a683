package invoice

import (
	"antifraud/internal/models"
	"antifraud/internal/services/fraud"
)

// ProcessRequest is the ingestion payload for a single invoice. The
// invoice id is the idempotency key supplied by the upstream system.
type ProcessRequest struct {
	InvoiceID string
	AccountID string
	Amount    float64
}

// ProcessResult is the committed invoice plus the engine's verdict.
// A rejected invoice is a successful classification, not an error.
type ProcessResult struct {
	Invoice *models.Invoice
	Verdict fraud.Verdict
}
