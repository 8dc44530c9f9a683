package invoice

import (
	"errors"
	"fmt"
)

// Service errors
var (
	// ErrDuplicateInvoice means the invoice id was already committed,
	// whether approved or rejected. Resubmitting the same id never works.
	ErrDuplicateInvoice = errors.New("invoice has already been processed")

	// ErrCommitConflict means a concurrent submission of the same id won
	// the commit race. Callers should treat it like ErrDuplicateInvoice.
	ErrCommitConflict = errors.New("invoice was committed concurrently")

	// ErrStoreUnavailable wraps infrastructure failures of the ledger
	// store. The whole call is safe to retry; dedup protects replays.
	ErrStoreUnavailable = errors.New("ledger store unavailable")

	ErrInvoiceNotFound = errors.New("invoice not found")
)

// ValidationError marks malformed input rejected before any store
// access. The caller can recover by fixing the request.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
