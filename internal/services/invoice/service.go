// Package invoice implements the invoice ingestion protocol: input
// validation, duplicate detection, lazy account creation, fraud scoring
// and the atomic commit of the invoice with its verdict.
package invoice

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"antifraud/internal/models"
	"antifraud/internal/repositories"
	"antifraud/internal/services/fraud"

	"github.com/google/uuid"
)

type service struct {
	ledger Ledger
	engine *fraud.Engine
	cache  VerdictCache
	now    func() time.Time
}

// NewService creates the ingestion service. The cache is optional; a nil
// cache disables read-side caching but never affects scoring.
func NewService(ledger Ledger, engine *fraud.Engine, cache VerdictCache) Service {
	if ledger == nil {
		panic("ledger is required")
	}
	if engine == nil {
		panic("engine is required")
	}

	return &service{
		ledger: ledger,
		engine: engine,
		cache:  cache,
		now:    time.Now,
	}
}

// Process ingests one invoice end to end. Any prior submission of the
// same id is a hard stop before scoring; the commit itself detects ids
// that landed between the duplicate check and the write, so concurrent
// submissions of one id produce exactly one committed row.
func (s *service) Process(ctx context.Context, req ProcessRequest) (*ProcessResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	_, err := s.ledger.FindInvoice(ctx, req.InvoiceID)
	switch {
	case err == nil:
		return nil, ErrDuplicateInvoice
	case !errors.Is(err, repositories.ErrInvoiceNotFound):
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	account, err := s.ledger.UpsertAccount(ctx, req.AccountID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	history, err := s.historySnapshot(ctx, req.AccountID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	verdict := s.engine.Evaluate(account, req.Amount, history)

	invoice := &models.Invoice{
		ID:        req.InvoiceID,
		AccountID: req.AccountID,
		Amount:    req.Amount,
		Status:    models.InvoiceStatusApproved,
	}
	var record *models.FraudRecord
	if verdict.Rejected {
		invoice.Status = models.InvoiceStatusRejected
		record = &models.FraudRecord{
			ID:          uuid.NewString(),
			InvoiceID:   invoice.ID,
			Reason:      verdict.Reason,
			Description: verdict.Description,
		}
	}

	if err := s.ledger.CommitInvoice(ctx, invoice, record); err != nil {
		if errors.Is(err, repositories.ErrDuplicateInvoice) {
			return nil, ErrCommitConflict
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	invoice.FraudRecord = record

	if s.cache != nil {
		if err := s.cache.CacheInvoice(ctx, invoice); err != nil {
			log.Printf("failed to cache invoice %s: %v", invoice.ID, err)
		}
	}

	return &ProcessResult{Invoice: invoice, Verdict: verdict}, nil
}

func (s *service) GetInvoice(ctx context.Context, id string) (*models.Invoice, error) {
	if s.cache != nil {
		if invoice, found, err := s.cache.GetInvoice(ctx, id); err == nil && found {
			return invoice, nil
		}
	}

	invoice, err := s.ledger.FindInvoice(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrInvoiceNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if s.cache != nil {
		if err := s.cache.CacheInvoice(ctx, invoice); err != nil {
			log.Printf("failed to cache invoice %s: %v", invoice.ID, err)
		}
	}
	return invoice, nil
}

func (s *service) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]models.Invoice, int64, error) {
	invoices, total, err := s.ledger.InvoicesByAccount(ctx, accountID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return invoices, total, nil
}

// historySnapshot reads the state the rules evaluate against. It runs
// before the commit, so the invoice being scored is never part of its
// own history.
func (s *service) historySnapshot(ctx context.Context, accountID string) (fraud.History, error) {
	recent, err := s.ledger.RecentInvoices(ctx, accountID, fraud.HistoryDepth)
	if err != nil {
		return fraud.History{}, err
	}

	since := s.now().Add(-fraud.FrequencyWindow)
	count, err := s.ledger.CountInvoicesSince(ctx, accountID, since)
	if err != nil {
		return fraud.History{}, err
	}

	return fraud.History{Recent: recent, WindowCount: count}, nil
}

func validateRequest(req ProcessRequest) error {
	if req.InvoiceID == "" {
		return &ValidationError{Field: "invoice_id", Reason: "must not be empty"}
	}
	if req.AccountID == "" {
		return &ValidationError{Field: "account_id", Reason: "must not be empty"}
	}
	if req.Amount < 0 {
		return &ValidationError{Field: "amount", Reason: "must not be negative"}
	}
	return nil
}
