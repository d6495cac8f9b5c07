package usecase

import (
	"fmt"

	"financial-assistant/internal/model"
	"financial-assistant/pkg/fmp"
)

// formatFinancialData renders a single data record into the markdown
// template matching its category.
func formatFinancialData(category model.Category, symbol string, income fmp.IncomeStatement, financials fmp.CompanyFinancials, price fmp.StockPrice) string {
	switch category {
	case model.CategoryIncomeStatement:
		return formatIncomeStatement(income, symbol)
	case model.CategoryCompanyFinancials:
		return formatCompanyFinancials(financials, symbol)
	case model.CategoryStockPrice:
		return formatStockPrice(price, symbol)
	default:
		return fmt.Sprintf("Unknown data type: %s", category)
	}
}

func formatIncomeStatement(data fmp.IncomeStatement, symbol string) string {
	return fmt.Sprintf(`# Income Statement - %s

## Revenue
- Total Revenue: $%s
- Gross Profit: $%s

## Expenses & Income
- Operating Income: $%s
- Net Income: $%s

## Key Metrics
- EPS: %.2f
- Operating Margin: %s

*Data period: %s*
`,
		symbol,
		formatAmount(data.Revenue),
		formatAmount(data.GrossProfit),
		formatAmount(data.OperatingIncome),
		formatAmount(data.NetIncome),
		data.EPS,
		formatPercent(data.OperatingIncomeRatio),
		orNA(data.Date),
	)
}

func formatCompanyFinancials(data fmp.CompanyFinancials, symbol string) string {
	return fmt.Sprintf(`# Company Financials - %s

## Valuation Metrics
- P/E Ratio: %.2f
- Market Cap: $%s
- Enterprise Value: $%s

## Financial Ratios
- ROE: %s
- ROA: %s
- Debt to Equity: %.2f

## Profitability
- Gross Margin: %s
- Operating Margin: %s
- Net Margin: %s
`,
		symbol,
		data.PERatio,
		formatAmount(data.MarketCap),
		formatAmount(data.EnterpriseValue),
		formatPercent(data.ROE),
		formatPercent(data.ROA),
		data.DebtToEquity,
		formatPercent(data.GrossMargin),
		formatPercent(data.OperatingMargin),
		formatPercent(data.NetMargin),
	)
}

func formatStockPrice(data fmp.StockPrice, symbol string) string {
	return fmt.Sprintf(`# Stock Price - %s

## Current Price
- Price: $%.2f
- Change: %.2f (%.2f%%)

## Trading Data
- Volume: %s
- Market Cap: $%s

## 52-Week Range
- High: $%.2f
- Low: $%.2f

*Last updated: %d*
`,
		symbol,
		data.Price,
		data.Change,
		data.ChangePercent,
		formatAmount(float64(data.Volume)),
		formatAmount(data.MarketCap),
		data.FiftyTwoWeekHigh,
		data.FiftyTwoWeekLow,
		data.Timestamp,
	)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
