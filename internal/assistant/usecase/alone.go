package usecase

import (
	"context"
	"fmt"
	"strings"

	"financial-assistant/internal/model"
	"financial-assistant/pkg/fmp"
)

// handleAlone serves the single-datum path. It resolves the symbol,
// then fetches and formats the one record matching the category.
func (uc *implUseCase) handleAlone(ctx context.Context, s *model.SessionState, message, conversationContext string, category model.Category) string {
	symbol, ok := uc.extractSymbol(ctx, s, message, conversationContext)
	if !ok {
		return MsgSymbolNotFound
	}

	var (
		income     fmp.IncomeStatement
		financials fmp.CompanyFinancials
		price      fmp.StockPrice
		fetchErr   error
	)

	switch category {
	case model.CategoryIncomeStatement:
		income, fetchErr = uc.fmp.GetIncomeStatement(ctx, symbol, uc.cfg.IncomeStatementPeriod)
	case model.CategoryCompanyFinancials:
		financials, fetchErr = uc.fmp.GetCompanyFinancials(ctx, symbol)
	case model.CategoryStockPrice:
		price, fetchErr = uc.fmp.GetStockPrice(ctx, symbol)
	default:
		return "Invalid category for data request. Please specify income statement, company financials, or stock price."
	}

	if fetchErr != nil {
		uc.l.Warnf(ctx, "%s: fetch %s for %s failed: %v", LogPrefixHandle, category, symbol, fetchErr)
		errMsg := fmt.Sprintf("Error retrieving %s data for %s: %v",
			strings.ReplaceAll(string(category), "_", " "), symbol, fetchErr)

		uc.appendMessage(s, model.ConversationMessage{
			Role:      model.RoleAgent,
			Content:   errMsg,
			AgentName: AgentNameSystem,
			StructuredData: map[string]interface{}{
				"error_type": "data_fetch_failed",
			},
		})
		return errMsg
	}

	content := formatFinancialData(category, symbol, income, financials, price)

	uc.appendMessage(s, model.ConversationMessage{
		Role:      model.RoleAgent,
		Content:   content,
		AgentName: AgentNameData,
		StructuredData: map[string]interface{}{
			"symbol":      symbol,
			"data_type":   string(category),
			"data_source": "Financial Modeling Prep",
		},
	})

	s.WorkflowPath = model.WorkflowPathAlone
	return content
}

// extractSymbol resolves a ticker and records the extraction step in
// the audit trail. Returns false when resolution failed, after logging
// the fixed guidance message.
func (uc *implUseCase) extractSymbol(ctx context.Context, s *model.SessionState, message, conversationContext string) (string, bool) {
	symbol := uc.resolveSymbol(ctx, message, conversationContext)

	uc.appendMessage(s, model.ConversationMessage{
		Role:      model.RoleAgent,
		Content:   fmt.Sprintf("Extracted symbol: %s", symbol),
		AgentName: AgentNameSymbol,
		StructuredData: map[string]interface{}{
			"symbol":                symbol,
			"extraction_successful": symbol != fmp.SymbolUnknown,
		},
	})

	if symbol == fmp.SymbolUnknown {
		uc.appendMessage(s, model.ConversationMessage{
			Role:      model.RoleAgent,
			Content:   MsgSymbolNotFound,
			AgentName: AgentNameSystem,
			StructuredData: map[string]interface{}{
				"error_type": "symbol_extraction_failed",
			},
		})
		return "", false
	}

	s.CurrentSymbol = symbol
	s.AddCompany(symbol)
	return symbol, true
}
