// Package account exposes the out-of-band account administration the
// scoring core reads from: the suspicion flag is written here and only
// ever read by the fraud rules.
package account

import (
	"context"
	"errors"
	"fmt"

	"antifraud/internal/models"
)

var ErrEmptyAccountID = errors.New("account id is required")

// Flagger is the slice of the ledger store the admin surface needs.
type Flagger interface {
	SetAccountSuspicion(ctx context.Context, accountID string, suspicious bool) (*models.Account, error)
}

type Service interface {
	Flag(ctx context.Context, accountID string, suspicious bool) (*models.Account, error)
}

type service struct {
	ledger Flagger
}

func NewService(ledger Flagger) Service {
	if ledger == nil {
		panic("ledger is required")
	}
	return &service{ledger: ledger}
}

// Flag sets or clears the suspicion flag, creating the account if it has
// not submitted an invoice yet.
func (s *service) Flag(ctx context.Context, accountID string, suspicious bool) (*models.Account, error) {
	if accountID == "" {
		return nil, ErrEmptyAccountID
	}

	account, err := s.ledger.SetAccountSuspicion(ctx, accountID, suspicious)
	if err != nil {
		return nil, fmt.Errorf("failed to flag account: %w", err)
	}
	return account, nil
}
