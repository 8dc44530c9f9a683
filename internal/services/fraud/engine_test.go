package fraud

import (
	"fmt"
	"testing"

	"antifraud/internal/models"

	"github.com/stretchr/testify/assert"
)

func testAccount(suspicious bool) *models.Account {
	return &models.Account{ID: "acc-1", IsSuspicious: suspicious}
}

// recent builds a newest-first history slice from the given amounts.
func recent(amounts ...float64) []models.Invoice {
	invoices := make([]models.Invoice, len(amounts))
	for i, a := range amounts {
		invoices[i] = models.Invoice{
			ID:        fmt.Sprintf("inv-%d", i),
			AccountID: "acc-1",
			Amount:    a,
			Status:    models.InvoiceStatusApproved,
		}
	}
	return invoices
}

func TestEngine_Evaluate(t *testing.T) {
	tests := []struct {
		name       string
		account    *models.Account
		amount     float64
		history    History
		wantReject bool
		wantReason models.FraudReason
	}{
		{
			name:       "clean account with no history is approved",
			account:    testAccount(false),
			amount:     1_000_000,
			history:    History{},
			wantReject: false,
		},
		{
			name:       "zero amount is scored normally and approved",
			account:    testAccount(false),
			amount:     0,
			history:    History{Recent: recent(100, 100)},
			wantReject: false,
		},
		{
			name:       "suspicious account is rejected regardless of amount",
			account:    testAccount(true),
			amount:     1,
			history:    History{},
			wantReject: true,
			wantReason: models.ReasonSuspiciousAccount,
		},
		{
			name:    "suspicion outranks the pattern and frequency rules",
			account: testAccount(true),
			amount:  10_000,
			history: History{
				Recent:      recent(10, 10, 10),
				WindowCount: FrequencyLimit + 50,
			},
			wantReject: true,
			wantReason: models.ReasonSuspiciousAccount,
		},
		{
			name:       "amount at exactly 2.5x the average is approved",
			account:    testAccount(false),
			amount:     250,
			history:    History{Recent: recent(100, 100, 100)},
			wantReject: false,
		},
		{
			name:       "amount just above 2.5x the average is rejected",
			account:    testAccount(false),
			amount:     250.01,
			history:    History{Recent: recent(100, 100, 100)},
			wantReject: true,
			wantReason: models.ReasonUnusualPattern,
		},
		{
			name:    "pattern rule outranks the frequency rule",
			account: testAccount(false),
			amount:  1000,
			history: History{
				Recent:      recent(10, 10),
				WindowCount: FrequencyLimit + 1,
			},
			wantReject: true,
			wantReason: models.ReasonUnusualPattern,
		},
		{
			name:       "exactly the frequency limit is approved",
			account:    testAccount(false),
			amount:     10,
			history:    History{Recent: recent(10, 10), WindowCount: FrequencyLimit},
			wantReject: false,
		},
		{
			name:       "one past the frequency limit is rejected",
			account:    testAccount(false),
			amount:     10,
			history:    History{Recent: recent(10, 10), WindowCount: FrequencyLimit + 1},
			wantReject: true,
			wantReason: models.ReasonFrequentHighValue,
		},
	}

	engine := NewEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := engine.Evaluate(tt.account, tt.amount, tt.history)

			assert.Equal(t, tt.wantReject, verdict.Rejected)
			if tt.wantReject {
				assert.Equal(t, tt.wantReason, verdict.Reason)
				assert.NotEmpty(t, verdict.Description)
			} else {
				assert.Empty(t, string(verdict.Reason))
				assert.Empty(t, verdict.Description)
			}
		})
	}
}

func TestEngine_Evaluate_Descriptions(t *testing.T) {
	engine := NewEngine()

	t.Run("suspicious account", func(t *testing.T) {
		verdict := engine.Evaluate(testAccount(true), 50, History{})
		assert.Equal(t, "Account is suspicious", verdict.Description)
	})

	t.Run("unusual pattern carries the amount and the average", func(t *testing.T) {
		verdict := engine.Evaluate(testAccount(false), 260, History{Recent: recent(100, 100, 100)})
		assert.True(t, verdict.Rejected)
		assert.Contains(t, verdict.Description, "260")
		assert.Contains(t, verdict.Description, "100")
	})

	t.Run("frequency names the account and the count", func(t *testing.T) {
		verdict := engine.Evaluate(testAccount(false), 10, History{WindowCount: 101})
		assert.True(t, verdict.Rejected)
		assert.Contains(t, verdict.Description, "acc-1")
		assert.Contains(t, verdict.Description, "101")
	})
}

func TestEngine_Evaluate_Deterministic(t *testing.T) {
	engine := NewEngine()
	history := History{Recent: recent(100, 200, 300), WindowCount: 5}

	first := engine.Evaluate(testAccount(false), 900, history)
	second := engine.Evaluate(testAccount(false), 900, history)
	assert.Equal(t, first, second)
}
