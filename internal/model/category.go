package model

// Category is the routing decision for a user request
type Category string

const (
	CategoryIncomeStatement   Category = "income_statement"
	CategoryCompanyFinancials Category = "company_financials"
	CategoryStockPrice        Category = "stock_price"
	CategoryReport            Category = "report"
	CategoryChat              Category = "chat"
)

// Categories lists all valid routing categories
var Categories = []Category{
	CategoryIncomeStatement,
	CategoryCompanyFinancials,
	CategoryStockPrice,
	CategoryReport,
	CategoryChat,
}

// ParseCategory maps a raw label to a Category. Unknown labels return
// false so callers can apply their default.
func ParseCategory(raw string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == raw {
			return c, true
		}
	}
	return "", false
}

// RequiresSymbol reports whether the category needs a resolved ticker
func (c Category) RequiresSymbol() bool {
	switch c {
	case CategoryIncomeStatement, CategoryCompanyFinancials, CategoryStockPrice, CategoryReport:
		return true
	default:
		return false
	}
}

// RouterResult is the outcome of classifying a single request
type RouterResult struct {
	Category   Category
	Confidence float64
	Reasoning  string
}
