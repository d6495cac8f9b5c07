package model

import (
	"time"

	"financial-assistant/pkg/fmp"
)

// FinancialReport is the composed multi-source analysis for a symbol.
// Deterministic for identical inputs apart from GeneratedAt.
type FinancialReport struct {
	Symbol           string
	CompanyName      string
	ExecutiveSummary string

	// Source records the report was composed from
	IncomeStatement   fmp.IncomeStatement
	CompanyFinancials fmp.CompanyFinancials
	StockPrice        fmp.StockPrice

	KeyInsights       []string
	Strengths         []string
	Concerns          []string
	DataQualityScore  float64 // fraction of key fields populated, [0,1]
	CompletenessScore float64 // fraction of data sections populated, [0,1]
	Markdown          string
	GeneratedAt       time.Time
}
