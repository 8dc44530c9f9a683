package fraud

import (
	"fmt"

	"antifraud/internal/models"
)

type ruleFunc func(account *models.Account, amount float64, history History) (Verdict, bool)

// Rule order is part of the contract: suspicion beats pattern analysis,
// pattern analysis beats frequency.
var rules = []ruleFunc{
	suspiciousAccountRule,
	unusualPatternRule,
	frequencyRule,
}

func suspiciousAccountRule(account *models.Account, _ float64, _ History) (Verdict, bool) {
	if !account.IsSuspicious {
		return Verdict{}, false
	}
	return Verdict{
		Rejected:    true,
		Reason:      models.ReasonSuspiciousAccount,
		Description: "Account is suspicious",
	}, true
}

// unusualPatternRule rejects amounts that exceed the recent average by
// more than DeviationFactor. It needs at least one prior invoice, so a
// first-time account is never caught here.
func unusualPatternRule(_ *models.Account, amount float64, history History) (Verdict, bool) {
	if len(history.Recent) == 0 {
		return Verdict{}, false
	}

	var sum float64
	for _, invoice := range history.Recent {
		sum += invoice.Amount
	}
	average := sum / float64(len(history.Recent))

	if amount <= average*DeviationFactor+average {
		return Verdict{}, false
	}
	return Verdict{
		Rejected: true,
		Reason:   models.ReasonUnusualPattern,
		Description: fmt.Sprintf(
			"Amount %.2f is higher than the average amount %.2f by more than 50%%",
			amount, average),
	}, true
}

func frequencyRule(account *models.Account, _ float64, history History) (Verdict, bool) {
	if history.WindowCount <= FrequencyLimit {
		return Verdict{}, false
	}
	return Verdict{
		Rejected: true,
		Reason:   models.ReasonFrequentHighValue,
		Description: fmt.Sprintf(
			"Account %s committed %d invoices in the last 24 hours, above the limit of %d",
			account.ID, history.WindowCount, FrequencyLimit),
	}, true
}
