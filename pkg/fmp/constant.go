package fmp

import "time"

const (
	// DefaultBaseURL is the Financial Modeling Prep v3 API root.
	DefaultBaseURL = "https://financialmodelingprep.com/api/v3"

	// DefaultTimeout applies per HTTP call when no timeout is configured.
	DefaultTimeout = 30 * time.Second

	// DefaultSearchLimit caps fuzzy symbol-search results.
	DefaultSearchLimit = 5

	// DefaultCacheSize is the max number of cached responses.
	DefaultCacheSize = 256

	// SymbolUnknown is the sentinel returned when no symbol matches.
	SymbolUnknown = "UNKNOWN"

	// PeriodAnnual and PeriodQuarter are the income statement periods.
	PeriodAnnual  = "annual"
	PeriodQuarter = "quarter"
)
