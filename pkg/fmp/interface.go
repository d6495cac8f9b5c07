package fmp

import "context"

//go:generate mockery --name IFMP
type IFMP interface {
	// SearchSymbol resolves a free-text query to a ticker symbol.
	SearchSymbol(ctx context.Context, query string) (SymbolSearchResult, error)

	// GetIncomeStatement returns the most recent income statement.
	GetIncomeStatement(ctx context.Context, symbol, period string) (IncomeStatement, error)

	// GetCompanyFinancials returns combined key metrics, ratios, and
	// profile data for a symbol.
	GetCompanyFinancials(ctx context.Context, symbol string) (CompanyFinancials, error)

	// GetStockPrice returns the current quote for a symbol.
	GetStockPrice(ctx context.Context, symbol string) (StockPrice, error)

	// GetCompanyProfile returns descriptive company information.
	GetCompanyProfile(ctx context.Context, symbol string) (CompanyProfile, error)
}
