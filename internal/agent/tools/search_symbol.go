package tools

import (
	"context"
	"fmt"

	"financial-assistant/internal/agent"
	"financial-assistant/pkg/fmp"
)

// SearchSymbolTool lets the LLM validate a company reference against
// the data provider's symbol search.
type SearchSymbolTool struct {
	client fmp.IFMP
}

// NewSearchSymbolTool creates a new symbol search tool.
func NewSearchSymbolTool(client fmp.IFMP) agent.Tool {
	return &SearchSymbolTool{client: client}
}

func (t *SearchSymbolTool) Name() string {
	return "search_symbol"
}

func (t *SearchSymbolTool) Description() string {
	return "Search for a stock ticker symbol by company name or partial ticker. Returns the best matching symbol with company name and exchange."
}

func (t *SearchSymbolTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "Company name or ticker to look up, e.g. 'Apple' or 'AAPL'",
			},
		},
		"required": []string{"query"},
	}
}

func (t *SearchSymbolTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	query, ok := params["query"].(string)
	if !ok || query == "" {
		return nil, fmt.Errorf("query parameter is required")
	}

	result, err := t.client.SearchSymbol(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("symbol search failed: %w", err)
	}

	return map[string]interface{}{
		"symbol":       result.Symbol,
		"company_name": result.CompanyName,
		"exchange":     result.Exchange,
		"found":        result.Found,
	}, nil
}
