package fraud

import "antifraud/internal/models"

// History is the snapshot of prior committed invoices the rules read.
// It never contains the invoice being evaluated: the snapshot is taken
// before that invoice is committed.
type History struct {
	// Recent holds the account's most recent invoices, newest first,
	// capped at HistoryDepth. Empty for a first-time account.
	Recent []models.Invoice

	// WindowCount is the number of invoices the account committed in the
	// trailing FrequencyWindow.
	WindowCount int64
}

// Verdict is the engine's classification of a single invoice. A rejected
// verdict carries the reason and an audit description with the concrete
// numbers that tripped the rule.
type Verdict struct {
	Rejected    bool
	Reason      models.FraudReason
	Description string
}
