package fmp

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// SearchSymbol resolves a free-text query to a ticker symbol. Short
// all-letter queries are first tried as a direct symbol lookup, then
// the fuzzy search endpoint is consulted and the first hit wins.
func (c *Client) SearchSymbol(ctx context.Context, query string) (SymbolSearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return SymbolSearchResult{Symbol: SymbolUnknown, Found: false, Error: "empty query"}, fmt.Errorf("fmp: empty search query")
	}

	if looksLikeTicker(query) {
		symbol := strings.ToUpper(query)
		raw, err := c.get(ctx, "profile/"+url.PathEscape(symbol), nil)
		if err == nil {
			profiles, derr := decodeList[profileWire](raw)
			if derr == nil && len(profiles) > 0 {
				return SymbolSearchResult{
					Symbol:      symbol,
					CompanyName: profiles[0].CompanyName,
					Exchange:    profiles[0].ExchangeShortName,
					Found:       true,
				}, nil
			}
		}
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("limit", strconv.Itoa(DefaultSearchLimit))

	raw, err := c.get(ctx, "search", params)
	if err != nil {
		c.l.Warnf(ctx, "fmp.SearchSymbol: search %q failed: %v", query, err)
		return SymbolSearchResult{Symbol: SymbolUnknown, Found: false, Error: err.Error()}, err
	}

	hits, err := decodeList[searchWire](raw)
	if err != nil {
		return SymbolSearchResult{Symbol: SymbolUnknown, Found: false, Error: err.Error()}, fmt.Errorf("fmp: decode search response: %w", err)
	}

	if len(hits) == 0 {
		return SymbolSearchResult{
			Symbol: SymbolUnknown,
			Found:  false,
			Error:  fmt.Sprintf("no matching symbol found for %q", query),
		}, nil
	}

	return SymbolSearchResult{
		Symbol:      hits[0].Symbol,
		CompanyName: hits[0].Name,
		Exchange:    hits[0].ExchangeShortName,
		Found:       true,
	}, nil
}

// GetIncomeStatement returns the most recent income statement for a
// symbol. Missing upstream data yields a zero-filled record with
// Success=false rather than a nil result.
func (c *Client) GetIncomeStatement(ctx context.Context, symbol, period string) (IncomeStatement, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if period != PeriodQuarter {
		period = PeriodAnnual
	}

	out := IncomeStatement{Symbol: symbol}

	params := url.Values{}
	params.Set("period", period)
	params.Set("limit", "1")

	raw, err := c.get(ctx, "income-statement/"+url.PathEscape(symbol), params)
	if err != nil {
		out.Error = err.Error()
		return out, err
	}

	items, err := decodeList[incomeWire](raw)
	if err != nil {
		out.Error = err.Error()
		return out, fmt.Errorf("fmp: decode income statement: %w", err)
	}

	if len(items) == 0 {
		out.Error = fmt.Sprintf("no income statement data for %s", symbol)
		return out, nil
	}

	w := items[0]
	out = IncomeStatement{
		Symbol:                 symbol,
		Date:                   w.Date,
		Period:                 w.Period,
		Revenue:                w.Revenue,
		GrossProfit:            w.GrossProfit,
		OperatingIncome:        w.OperatingIncome,
		NetIncome:              w.NetIncome,
		EPS:                    w.EPS,
		GrossProfitRatio:       w.GrossProfitRatio,
		OperatingIncomeRatio:   w.OperatingIncomeRatio,
		NetIncomeRatio:         w.NetIncomeRatio,
		ResearchAndDevelopment: w.ResearchAndDevelopmentExpenses,
		TotalOperatingExpenses: w.TotalOperatingExpenses,
		Success:                true,
	}
	return out, nil
}

// GetCompanyFinancials fetches key metrics, ratios, and profile data
// concurrently and merges them into one record. The key-metrics
// response decides success; ratios and profile enrich when present.
func (c *Client) GetCompanyFinancials(ctx context.Context, symbol string) (CompanyFinancials, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	out := CompanyFinancials{Symbol: symbol}

	limitOne := url.Values{}
	limitOne.Set("limit", "1")

	var (
		metricsRaw, ratiosRaw, profileRaw []byte
		metricsErr, ratiosErr, profileErr error
	)

	// Sub-request failures are captured per goroutine so one slow or
	// failing endpoint does not cancel the others.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		metricsRaw, metricsErr = c.get(gctx, "key-metrics/"+url.PathEscape(symbol), cloneValues(limitOne))
		return nil
	})
	g.Go(func() error {
		ratiosRaw, ratiosErr = c.get(gctx, "ratios/"+url.PathEscape(symbol), cloneValues(limitOne))
		return nil
	})
	g.Go(func() error {
		profileRaw, profileErr = c.get(gctx, "profile/"+url.PathEscape(symbol), nil)
		return nil
	})
	_ = g.Wait()

	if metricsErr != nil {
		out.Error = metricsErr.Error()
		return out, metricsErr
	}

	metrics, err := decodeList[metricsWire](metricsRaw)
	if err != nil {
		out.Error = err.Error()
		return out, fmt.Errorf("fmp: decode key metrics: %w", err)
	}
	if len(metrics) == 0 {
		out.Error = fmt.Sprintf("no financial data for %s", symbol)
		return out, nil
	}

	out.PERatio = metrics[0].PERatio
	out.RevenueGrowth = metrics[0].RevenueGrowth
	out.EnterpriseValue = metrics[0].EnterpriseValue
	out.WorkingCapital = metrics[0].WorkingCapital
	out.Date = metrics[0].Date
	out.Success = true

	if ratiosErr == nil {
		if ratios, err := decodeList[ratiosWire](ratiosRaw); err == nil && len(ratios) > 0 {
			r := ratios[0]
			out.PriceToBook = r.PriceToBookRatio
			out.PriceToSales = r.PriceToSalesRatio
			out.DebtToEquity = r.DebtEquityRatio
			out.CurrentRatio = r.CurrentRatio
			out.QuickRatio = r.QuickRatio
			out.ROE = r.ReturnOnEquity
			out.ROA = r.ReturnOnAssets
			out.GrossMargin = r.GrossProfitMargin
			out.OperatingMargin = r.OperatingProfitMargin
			out.NetMargin = r.NetProfitMargin
		}
	} else {
		c.l.Warnf(ctx, "fmp.GetCompanyFinancials: ratios for %s failed: %v", symbol, ratiosErr)
	}

	if profileErr == nil {
		if profiles, err := decodeList[profileWire](profileRaw); err == nil && len(profiles) > 0 {
			out.CompanyName = profiles[0].CompanyName
			out.MarketCap = profiles[0].MktCap
			out.Beta = profiles[0].Beta
		}
	} else {
		c.l.Warnf(ctx, "fmp.GetCompanyFinancials: profile for %s failed: %v", symbol, profileErr)
	}

	return out, nil
}

// GetStockPrice returns the current quote for a symbol.
func (c *Client) GetStockPrice(ctx context.Context, symbol string) (StockPrice, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	out := StockPrice{Symbol: symbol}

	raw, err := c.get(ctx, "quote/"+url.PathEscape(symbol), nil)
	if err != nil {
		out.Error = err.Error()
		return out, err
	}

	quotes, err := decodeList[quoteWire](raw)
	if err != nil {
		out.Error = err.Error()
		return out, fmt.Errorf("fmp: decode quote: %w", err)
	}

	if len(quotes) == 0 {
		out.Error = fmt.Sprintf("no price data for %s", symbol)
		return out, nil
	}

	q := quotes[0]
	out = StockPrice{
		Symbol:           symbol,
		Name:             q.Name,
		Price:            q.Price,
		Change:           q.Change,
		ChangePercent:    q.ChangesPercentage,
		PreviousClose:    q.PreviousClose,
		Open:             q.Open,
		High:             q.DayHigh,
		Low:              q.DayLow,
		Volume:           q.Volume,
		AvgVolume:        q.AvgVolume,
		MarketCap:        q.MarketCap,
		PERatio:          q.PE,
		EPS:              q.EPS,
		FiftyTwoWeekHigh: q.YearHigh,
		FiftyTwoWeekLow:  q.YearLow,
		Exchange:         q.Exchange,
		Timestamp:        q.Timestamp,
		Success:          true,
	}
	return out, nil
}

// GetCompanyProfile returns descriptive company information.
func (c *Client) GetCompanyProfile(ctx context.Context, symbol string) (CompanyProfile, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	out := CompanyProfile{Symbol: symbol}

	raw, err := c.get(ctx, "profile/"+url.PathEscape(symbol), nil)
	if err != nil {
		out.Error = err.Error()
		return out, err
	}

	profiles, err := decodeList[profileWire](raw)
	if err != nil {
		out.Error = err.Error()
		return out, fmt.Errorf("fmp: decode profile: %w", err)
	}

	if len(profiles) == 0 {
		out.Error = fmt.Sprintf("no profile data for %s", symbol)
		return out, nil
	}

	p := profiles[0]
	out = CompanyProfile{
		Symbol:      symbol,
		CompanyName: p.CompanyName,
		Description: p.Description,
		Industry:    p.Industry,
		Sector:      p.Sector,
		Website:     p.Website,
		CEO:         p.CEO,
		Employees:   int64(p.FullTimeEmployees),
		Country:     p.Country,
		Exchange:    p.ExchangeShortName,
		Currency:    p.Currency,
		Success:     true,
	}
	return out, nil
}

// looksLikeTicker reports whether a query could itself be a symbol.
func looksLikeTicker(query string) bool {
	if len(query) == 0 || len(query) > 5 {
		return false
	}
	for _, r := range query {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

func cloneValues(v url.Values) url.Values {
	out := url.Values{}
	for k, vals := range v {
		for _, val := range vals {
			out.Add(k, val)
		}
	}
	return out
}
