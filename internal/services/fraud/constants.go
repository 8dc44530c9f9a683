package fraud

import "time"

// Rule thresholds
const (
	// HistoryDepth is how many of the account's most recent invoices the
	// unusual-pattern rule averages over.
	HistoryDepth = 20

	// DeviationFactor rejects amounts exceeding average*(1+DeviationFactor),
	// i.e. more than 2.5x the recent average.
	DeviationFactor = 1.5

	// FrequencyLimit is the number of invoices an account may commit in
	// the trailing FrequencyWindow before further ones are rejected.
	FrequencyLimit = 100

	// FrequencyWindow is true elapsed wall-clock time, computed as
	// now minus 24h, never day-of-month arithmetic.
	FrequencyWindow = 24 * time.Hour
)
