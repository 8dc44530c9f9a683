package invoice

import (
	"context"
	"time"

	"antifraud/internal/models"
)

// Ledger is the slice of the ledger store the ingestion protocol needs.
// CommitInvoice must fail with repositories.ErrDuplicateInvoice when the
// invoice id already exists; a silent overwrite would re-score committed
// invoices.
type Ledger interface {
	FindInvoice(ctx context.Context, id string) (*models.Invoice, error)
	UpsertAccount(ctx context.Context, id string) (*models.Account, error)
	RecentInvoices(ctx context.Context, accountID string, limit int) ([]models.Invoice, error)
	CountInvoicesSince(ctx context.Context, accountID string, since time.Time) (int64, error)
	CommitInvoice(ctx context.Context, invoice *models.Invoice, record *models.FraudRecord) error
	InvoicesByAccount(ctx context.Context, accountID string, limit, offset int) ([]models.Invoice, int64, error)
}

// VerdictCache caches committed invoices for the read endpoints.
type VerdictCache interface {
	CacheInvoice(ctx context.Context, invoice *models.Invoice) error
	GetInvoice(ctx context.Context, id string) (*models.Invoice, bool, error)
}

type Service interface {
	Process(ctx context.Context, req ProcessRequest) (*ProcessResult, error)
	GetInvoice(ctx context.Context, id string) (*models.Invoice, error)
	ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]models.Invoice, int64, error)
}
