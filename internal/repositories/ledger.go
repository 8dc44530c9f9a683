package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"antifraud/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LedgerRepository is the transactional store of accounts, invoices and
// fraud records. History reads return a stable created_at DESC view so
// the scoring rules always see the same ordering the ledger committed.
type LedgerRepository interface {
	FindInvoice(ctx context.Context, id string) (*models.Invoice, error)
	UpsertAccount(ctx context.Context, id string) (*models.Account, error)
	RecentInvoices(ctx context.Context, accountID string, limit int) ([]models.Invoice, error)
	CountInvoicesSince(ctx context.Context, accountID string, since time.Time) (int64, error)
	CommitInvoice(ctx context.Context, invoice *models.Invoice, record *models.FraudRecord) error
	InvoicesByAccount(ctx context.Context, accountID string, limit, offset int) ([]models.Invoice, int64, error)
	SetAccountSuspicion(ctx context.Context, accountID string, suspicious bool) (*models.Account, error)
}

type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a ledger repository on top of the given
// database handle.
func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	if db == nil {
		panic("db is required")
	}
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) FindInvoice(ctx context.Context, id string) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.WithContext(ctx).
		Preload("FraudRecord").
		First(&invoice, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to find invoice: %w", err)
	}
	return &invoice, nil
}

// UpsertAccount creates the account if absent and returns the stored row
// untouched otherwise. ON CONFLICT DO NOTHING keeps concurrent first-time
// creations for the same id from surfacing a duplicate-key failure.
func (r *ledgerRepository) UpsertAccount(ctx context.Context, id string) (*models.Account, error) {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Account{ID: id}).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert account: %w", err)
	}

	var account models.Account
	if err := r.db.WithContext(ctx).First(&account, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	return &account, nil
}

func (r *ledgerRepository) RecentInvoices(ctx context.Context, accountID string, limit int) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Limit(limit).
		Find(&invoices).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load recent invoices: %w", err)
	}
	return invoices, nil
}

func (r *ledgerRepository) CountInvoicesSince(ctx context.Context, accountID string, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Where("account_id = ? AND created_at >= ?", accountID, since).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count invoices: %w", err)
	}
	return count, nil
}

// CommitInvoice writes the invoice and, for rejections, its fraud record
// as one database transaction. A concurrent commit of the same invoice id
// trips the primary key constraint and is reported as ErrDuplicateInvoice
// instead of overwriting the earlier verdict.
func (r *ledgerRepository) CommitInvoice(ctx context.Context, invoice *models.Invoice, record *models.FraudRecord) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(invoice).Error; err != nil {
			return err
		}
		if record != nil {
			if err := tx.Create(record).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateInvoice
		}
		return fmt.Errorf("failed to commit invoice: %w", err)
	}
	return nil
}

func (r *ledgerRepository) InvoicesByAccount(ctx context.Context, accountID string, limit, offset int) ([]models.Invoice, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Where("account_id = ?", accountID).
		Count(&total).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count invoices: %w", err)
	}

	var invoices []models.Invoice
	err = r.db.WithContext(ctx).
		Preload("FraudRecord").
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&invoices).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, total, nil
}

// SetAccountSuspicion flips the out-of-band suspicion flag, creating the
// account first when it has not been seen yet.
func (r *ledgerRepository) SetAccountSuspicion(ctx context.Context, accountID string, suspicious bool) (*models.Account, error) {
	account, err := r.UpsertAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).
		Model(account).
		Update("is_suspicious", suspicious).Error
	if err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	account.IsSuspicious = suspicious
	return account, nil
}
