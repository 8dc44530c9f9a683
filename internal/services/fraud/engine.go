// Package fraud implements the rule engine that classifies invoices.
//
// Evaluation is a pure function of the account flags, the submitted
// amount and a history snapshot. Rules run in a fixed priority order and
// the first match wins; an invoice that matches no rule is approved.
package fraud

import "antifraud/internal/models"

type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Evaluate classifies one invoice amount against the account's flags and
// history. Calling it twice with the same inputs yields the same verdict.
func (e *Engine) Evaluate(account *models.Account, amount float64, history History) Verdict {
	for _, rule := range rules {
		if verdict, matched := rule(account, amount, history); matched {
			return verdict
		}
	}
	return Verdict{}
}
