package usecase

import (
	"fmt"
	"strings"
	"time"

	"financial-assistant/internal/model"
	"financial-assistant/pkg/fmp"
)

// composeReport builds the multi-source financial report. Deterministic
// for identical record inputs; only GeneratedAt varies.
func composeReport(symbol string, income fmp.IncomeStatement, financials fmp.CompanyFinancials, price fmp.StockPrice) model.FinancialReport {
	insights := generateKeyInsights(income, financials, price)
	strengths := identifyStrengths(income, financials)
	concerns := identifyConcerns(income, financials, price)

	companyName := financials.CompanyName
	if companyName == "" {
		companyName = price.Name
	}
	if companyName == "" {
		companyName = symbol
	}

	quality := calculateDataQuality(income, financials, price)
	completeness := calculateCompleteness(income, financials, price)
	generatedAt := time.Now().UTC()

	executiveSummary := fmt.Sprintf(
		"Comprehensive financial analysis of %s (%s) based on latest available data including income statement, financial ratios, and current market performance.",
		companyName, symbol)

	markdown := fmt.Sprintf(`# Financial Report - %s (%s)

## Executive Summary
%s

**Data Quality Score**: %s
**Data Completeness**: %s

## Key Insights
%s

## Financial Data

### Income Statement
%s

### Company Financials & Ratios
%s

### Stock Price & Market Data
%s

## Analysis Summary

**Strengths:**
%s

**Areas of Attention:**
%s

---
*Report generated at %s UTC*
`,
		symbol, companyName,
		executiveSummary,
		formatPercent(quality),
		formatPercent(completeness),
		bulletList(insights),
		formatIncomeStatement(income, symbol),
		formatCompanyFinancials(financials, symbol),
		formatStockPrice(price, symbol),
		bulletList(strengths),
		bulletList(concerns),
		generatedAt.Format("2006-01-02 15:04:05"),
	)

	return model.FinancialReport{
		Symbol:            symbol,
		CompanyName:       companyName,
		ExecutiveSummary:  executiveSummary,
		IncomeStatement:   income,
		CompanyFinancials: financials,
		StockPrice:        price,
		KeyInsights:       insights,
		Strengths:         strengths,
		Concerns:          concerns,
		DataQualityScore:  quality,
		CompletenessScore: completeness,
		Markdown:          markdown,
		GeneratedAt:       generatedAt,
	}
}

// generateKeyInsights emits applicable insights in fixed priority order
func generateKeyInsights(income fmp.IncomeStatement, financials fmp.CompanyFinancials, price fmp.StockPrice) []string {
	var insights []string

	if income.Revenue > 0 {
		insights = append(insights, fmt.Sprintf("Revenue: $%s", formatAmount(income.Revenue)))
	}

	if income.NetIncomeRatio > 0 {
		insights = append(insights, fmt.Sprintf("Net margin: %s", formatPercent(income.NetIncomeRatio)))
	}

	peRatio := financials.PERatio
	if peRatio == 0 {
		peRatio = price.PERatio
	}
	if peRatio > 0 {
		insights = append(insights, fmt.Sprintf("P/E ratio: %.2f", peRatio))
	}

	if price.ChangePercent != 0 {
		direction := "up"
		change := price.ChangePercent
		if change < 0 {
			direction = "down"
			change = -change
		}
		insights = append(insights, fmt.Sprintf("Stock %s %.2f%% today", direction, change))
	}

	marketCap := financials.MarketCap
	if marketCap == 0 {
		marketCap = price.MarketCap
	}
	if marketCap > 0 {
		switch {
		case marketCap > LargeCapThreshold:
			insights = append(insights, "Large-cap company (>$200B)")
		case marketCap > MidCapThreshold:
			insights = append(insights, "Mid-cap company ($10B-$200B)")
		default:
			insights = append(insights, "Small-cap company (<$10B)")
		}
	}

	if len(insights) == 0 {
		return []string{"Financial data analysis in progress"}
	}
	return insights
}

// identifyStrengths flags positive indicators from the records
func identifyStrengths(income fmp.IncomeStatement, financials fmp.CompanyFinancials) []string {
	var strengths []string

	if income.NetIncomeRatio > StrongNetMargin {
		strengths = append(strengths, fmt.Sprintf("Strong profitability with %s net margin", formatPercent(income.NetIncomeRatio)))
	}

	if financials.ROE > StrongROE {
		strengths = append(strengths, fmt.Sprintf("Excellent return on equity at %s", formatPercent(financials.ROE)))
	}

	if financials.DebtToEquity > 0 && financials.DebtToEquity < ConservativeDebtEquity {
		strengths = append(strengths, "Conservative debt levels")
	}

	if financials.RevenueGrowth > StrongRevenueGrowth {
		strengths = append(strengths, fmt.Sprintf("Strong revenue growth at %s", formatPercent(financials.RevenueGrowth)))
	}

	if len(strengths) == 0 {
		return []string{"Detailed analysis requires additional data"}
	}
	return strengths
}

// identifyConcerns flags potential problem areas from the records
func identifyConcerns(income fmp.IncomeStatement, financials fmp.CompanyFinancials, price fmp.StockPrice) []string {
	var concerns []string

	if income.NetIncomeRatio < 0 {
		concerns = append(concerns, "Company is currently unprofitable")
	} else if income.NetIncomeRatio < LowNetMargin {
		concerns = append(concerns, "Low profit margins")
	}

	if financials.DebtToEquity > HighDebtEquity {
		concerns = append(concerns, "High debt levels relative to equity")
	}

	if financials.ROE > 0 && financials.ROE < LowROE {
		concerns = append(concerns, "Low return on equity")
	}

	peRatio := financials.PERatio
	if peRatio == 0 {
		peRatio = price.PERatio
	}
	if peRatio > HighPERatio {
		concerns = append(concerns, fmt.Sprintf("High P/E ratio at %.1f may indicate overvaluation", peRatio))
	}

	if len(concerns) == 0 {
		return []string{"No significant concerns identified"}
	}
	return concerns
}

// calculateDataQuality scores the fraction of populated key fields
// across an 11-field checklist spanning the three records.
func calculateDataQuality(income fmp.IncomeStatement, financials fmp.CompanyFinancials, price fmp.StockPrice) float64 {
	fields := []float64{
		income.Revenue, income.NetIncome, income.EPS, income.NetIncomeRatio,
		financials.PERatio, financials.MarketCap, financials.ROE, financials.DebtToEquity,
		price.Price, price.Change, float64(price.Volume),
	}

	filled := 0
	for _, f := range fields {
		if f != 0 {
			filled++
		}
	}
	return float64(filled) / float64(len(fields))
}

// calculateCompleteness scores how many of the three data sections
// carry at least one populated key field.
func calculateCompleteness(income fmp.IncomeStatement, financials fmp.CompanyFinancials, price fmp.StockPrice) float64 {
	sections := 0

	if income.Revenue != 0 || income.NetIncome != 0 {
		sections++
	}
	if financials.PERatio != 0 || financials.MarketCap != 0 {
		sections++
	}
	if price.Price != 0 || price.Change != 0 {
		sections++
	}

	return float64(sections) / 3.0
}

func bulletList(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "• " + item
	}
	return strings.Join(lines, "\n")
}
