package fmp

import (
	"encoding/json"
	"strconv"
	"strings"
)

// SymbolSearchResult is the outcome of a symbol lookup.
type SymbolSearchResult struct {
	Symbol      string `json:"symbol"`
	CompanyName string `json:"company_name"`
	Exchange    string `json:"exchange"`
	Found       bool   `json:"found"`
	Error       string `json:"error,omitempty"`
}

// IncomeStatement is the most recent income statement for a company.
// Numeric fields are zero when the upstream value is null or absent;
// downstream arithmetic relies on them never being missing.
type IncomeStatement struct {
	Symbol                 string  `json:"symbol"`
	Date                   string  `json:"date"`
	Period                 string  `json:"period"`
	Revenue                float64 `json:"revenue"`
	GrossProfit            float64 `json:"gross_profit"`
	OperatingIncome        float64 `json:"operating_income"`
	NetIncome              float64 `json:"net_income"`
	EPS                    float64 `json:"eps"`
	GrossProfitRatio       float64 `json:"gross_profit_ratio"`
	OperatingIncomeRatio   float64 `json:"operating_income_ratio"`
	NetIncomeRatio         float64 `json:"net_income_ratio"`
	ResearchAndDevelopment float64 `json:"research_and_development"`
	TotalOperatingExpenses float64 `json:"total_operating_expenses"`
	Success                bool    `json:"success"`
	Error                  string  `json:"error,omitempty"`
}

// CompanyFinancials combines key metrics, ratios, and profile data.
type CompanyFinancials struct {
	Symbol          string  `json:"symbol"`
	CompanyName     string  `json:"company_name"`
	MarketCap       float64 `json:"market_cap"`
	Beta            float64 `json:"beta"`
	PERatio         float64 `json:"pe_ratio"`
	PriceToBook     float64 `json:"price_to_book"`
	PriceToSales    float64 `json:"price_to_sales"`
	DebtToEquity    float64 `json:"debt_to_equity"`
	CurrentRatio    float64 `json:"current_ratio"`
	QuickRatio      float64 `json:"quick_ratio"`
	ROE             float64 `json:"roe"`
	ROA             float64 `json:"roa"`
	RevenueGrowth   float64 `json:"revenue_growth"`
	GrossMargin     float64 `json:"gross_margin"`
	OperatingMargin float64 `json:"operating_margin"`
	NetMargin       float64 `json:"net_margin"`
	EnterpriseValue float64 `json:"enterprise_value"`
	WorkingCapital  float64 `json:"working_capital"`
	Date            string  `json:"date"`
	Success         bool    `json:"success"`
	Error           string  `json:"error,omitempty"`
}

// StockPrice is the current quote for a symbol.
type StockPrice struct {
	Symbol           string  `json:"symbol"`
	Name             string  `json:"name"`
	Price            float64 `json:"price"`
	Change           float64 `json:"change"`
	ChangePercent    float64 `json:"change_percent"`
	PreviousClose    float64 `json:"previous_close"`
	Open             float64 `json:"open"`
	High             float64 `json:"high"`
	Low              float64 `json:"low"`
	Volume           int64   `json:"volume"`
	AvgVolume        int64   `json:"avg_volume"`
	MarketCap        float64 `json:"market_cap"`
	PERatio          float64 `json:"pe_ratio"`
	EPS              float64 `json:"eps"`
	FiftyTwoWeekHigh float64 `json:"fifty_two_week_high"`
	FiftyTwoWeekLow  float64 `json:"fifty_two_week_low"`
	Exchange         string  `json:"exchange"`
	Timestamp        int64   `json:"timestamp"`
	Success          bool    `json:"success"`
	Error            string  `json:"error,omitempty"`
}

// CompanyProfile is basic descriptive company information.
type CompanyProfile struct {
	Symbol      string `json:"symbol"`
	CompanyName string `json:"company_name"`
	Description string `json:"description"`
	Industry    string `json:"industry"`
	Sector      string `json:"sector"`
	Website     string `json:"website"`
	CEO         string `json:"ceo"`
	Employees   int64  `json:"employees"`
	Country     string `json:"country"`
	Exchange    string `json:"exchange"`
	Currency    string `json:"currency"`
	Success     bool   `json:"success"`
	Error       string `json:"error,omitempty"`
}

// flexInt64 decodes integers that FMP sometimes serializes as strings
// (e.g. fullTimeEmployees). Null and empty string decode to zero.
type flexInt64 int64

func (f *flexInt64) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		*f = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexInt64(v)
	return nil
}

// Wire shapes: FMP returns arrays of camelCase objects. Null numeric
// values unmarshal as the zero value, which is exactly the coercion
// the typed records require.

type searchWire struct {
	Symbol            string `json:"symbol"`
	Name              string `json:"name"`
	ExchangeShortName string `json:"exchangeShortName"`
}

type profileWire struct {
	CompanyName       string    `json:"companyName"`
	MktCap            float64   `json:"mktCap"`
	Beta              float64   `json:"beta"`
	Description       string    `json:"description"`
	Industry          string    `json:"industry"`
	Sector            string    `json:"sector"`
	Website           string    `json:"website"`
	CEO               string    `json:"ceo"`
	FullTimeEmployees flexInt64 `json:"fullTimeEmployees"`
	Country           string    `json:"country"`
	ExchangeShortName string    `json:"exchangeShortName"`
	Currency          string    `json:"currency"`
}

type incomeWire struct {
	Date                           string  `json:"date"`
	Period                         string  `json:"period"`
	Revenue                        float64 `json:"revenue"`
	GrossProfit                    float64 `json:"grossProfit"`
	OperatingIncome                float64 `json:"operatingIncome"`
	NetIncome                      float64 `json:"netIncome"`
	EPS                            float64 `json:"eps"`
	GrossProfitRatio               float64 `json:"grossProfitRatio"`
	OperatingIncomeRatio           float64 `json:"operatingIncomeRatio"`
	NetIncomeRatio                 float64 `json:"netIncomeRatio"`
	ResearchAndDevelopmentExpenses float64 `json:"researchAndDevelopmentExpenses"`
	TotalOperatingExpenses         float64 `json:"totalOperatingExpenses"`
}

type metricsWire struct {
	Date            string  `json:"date"`
	PERatio         float64 `json:"peRatio"`
	RevenueGrowth   float64 `json:"revenueGrowth"`
	EnterpriseValue float64 `json:"enterpriseValue"`
	WorkingCapital  float64 `json:"workingCapital"`
}

type ratiosWire struct {
	PriceToBookRatio      float64 `json:"priceToBookRatio"`
	PriceToSalesRatio     float64 `json:"priceToSalesRatio"`
	DebtEquityRatio       float64 `json:"debtEquityRatio"`
	CurrentRatio          float64 `json:"currentRatio"`
	QuickRatio            float64 `json:"quickRatio"`
	ReturnOnEquity        float64 `json:"returnOnEquity"`
	ReturnOnAssets        float64 `json:"returnOnAssets"`
	GrossProfitMargin     float64 `json:"grossProfitMargin"`
	OperatingProfitMargin float64 `json:"operatingProfitMargin"`
	NetProfitMargin       float64 `json:"netProfitMargin"`
}

type quoteWire struct {
	Name              string  `json:"name"`
	Price             float64 `json:"price"`
	Change            float64 `json:"change"`
	ChangesPercentage float64 `json:"changesPercentage"`
	PreviousClose     float64 `json:"previousClose"`
	Open              float64 `json:"open"`
	DayHigh           float64 `json:"dayHigh"`
	DayLow            float64 `json:"dayLow"`
	Volume            int64   `json:"volume"`
	AvgVolume         int64   `json:"avgVolume"`
	MarketCap         float64 `json:"marketCap"`
	PE                float64 `json:"pe"`
	EPS               float64 `json:"eps"`
	YearHigh          float64 `json:"yearHigh"`
	YearLow           float64 `json:"yearLow"`
	Exchange          string  `json:"exchange"`
	Timestamp         int64   `json:"timestamp"`
}

// decodeList unmarshals an FMP array-of-objects payload.
func decodeList[T any](raw []byte) ([]T, error) {
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}
