package handlers

import (
	"errors"
	"log"

	"antifraud/internal/services/account"
	"antifraud/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	accounts account.Service
}

func NewAdminHandler(accounts account.Service) *AdminHandler {
	return &AdminHandler{accounts: accounts}
}

// FlagAccount sets or clears the account suspicion flag. This is the
// out-of-band entry point; the scoring engine itself never writes it.
func (h *AdminHandler) FlagAccount(c *fiber.Ctx) error {
	var input struct {
		Suspicious bool `json:"suspicious"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	acc, err := h.accounts.Flag(c.Context(), c.Params("id"), input.Suspicious)
	if err != nil {
		if errors.Is(err, account.ErrEmptyAccountID) {
			return utils.BadRequest(c, err.Error())
		}
		log.Printf("flag account %s: %v", c.Params("id"), err)
		return utils.ServiceUnavailable(c, "Ledger store unavailable, retry later")
	}

	return utils.Success(c, acc)
}
