package handlers

import (
	"errors"
	"log"

	"antifraud/internal/services/invoice"
	"antifraud/internal/utils"

	"github.com/gofiber/fiber/v2"
)

const maxInvoiceLimit = 100 // Maximum allowed invoices per page

type InvoiceHandler struct {
	service invoice.Service
}

func NewInvoiceHandler(service invoice.Service) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

// ProcessInvoice ingests one invoice and returns the committed row with
// its verdict. A REJECTED verdict is still a 201: fraud detection is a
// classification result, not an error path.
func (h *InvoiceHandler) ProcessInvoice(c *fiber.Ctx) error {
	var input struct {
		InvoiceID string  `json:"invoice_id"`
		AccountID string  `json:"account_id"`
		Amount    float64 `json:"amount"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	result, err := h.service.Process(c.Context(), invoice.ProcessRequest{
		InvoiceID: input.InvoiceID,
		AccountID: input.AccountID,
		Amount:    input.Amount,
	})
	if err != nil {
		var validationErr *invoice.ValidationError
		switch {
		case errors.As(err, &validationErr):
			return utils.BadRequest(c, validationErr.Error())
		case errors.Is(err, invoice.ErrDuplicateInvoice), errors.Is(err, invoice.ErrCommitConflict):
			return utils.Conflict(c, "Invoice has already been processed")
		case errors.Is(err, invoice.ErrStoreUnavailable):
			log.Printf("invoice %s: %v", input.InvoiceID, err)
			return utils.ServiceUnavailable(c, "Ledger store unavailable, retry later")
		default:
			log.Printf("invoice %s: %v", input.InvoiceID, err)
			return utils.InternalError(c, "Failed to process invoice")
		}
	}

	return utils.Created(c, fiber.Map{
		"invoice": result.Invoice,
		"verdict": fiber.Map{
			"status":      result.Invoice.Status,
			"reason":      result.Verdict.Reason,
			"description": result.Verdict.Description,
		},
	})
}

func (h *InvoiceHandler) GetInvoice(c *fiber.Ctx) error {
	id := c.Params("id")

	inv, err := h.service.GetInvoice(c.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, invoice.ErrInvoiceNotFound):
			return utils.NotFound(c, "Invoice not found")
		case errors.Is(err, invoice.ErrStoreUnavailable):
			log.Printf("invoice %s: %v", id, err)
			return utils.ServiceUnavailable(c, "Ledger store unavailable, retry later")
		default:
			log.Printf("invoice %s: %v", id, err)
			return utils.InternalError(c, "Failed to load invoice")
		}
	}

	return utils.Success(c, inv)
}

func (h *InvoiceHandler) ListAccountInvoices(c *fiber.Ctx) error {
	accountID := c.Params("id")

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if limit > maxInvoiceLimit {
		limit = maxInvoiceLimit
	}
	if limit < 1 {
		limit = 10
	}
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	invoices, total, err := h.service.ListByAccount(c.Context(), accountID, limit, offset)
	if err != nil {
		log.Printf("account %s invoices: %v", accountID, err)
		return utils.ServiceUnavailable(c, "Ledger store unavailable, retry later")
	}

	return utils.Success(c, fiber.Map{
		"invoices": invoices,
		"page":     page,
		"limit":    limit,
		"total":    total,
	})
}
