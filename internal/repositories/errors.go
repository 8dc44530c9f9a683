package repositories

import "errors"

// Repository errors
var (
	ErrInvoiceNotFound  = errors.New("invoice not found")
	ErrAccountNotFound  = errors.New("account not found")
	ErrDuplicateInvoice = errors.New("invoice already exists")
)
