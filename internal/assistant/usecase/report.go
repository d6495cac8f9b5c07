package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"financial-assistant/internal/model"
	"financial-assistant/pkg/fmp"
)

// handleReport serves the multi-source path. All three records are
// fetched concurrently after symbol resolution. A single failed fetch
// degrades to a zero-filled record; only all three failing produces
// the symbol-scoped error message.
func (uc *implUseCase) handleReport(ctx context.Context, s *model.SessionState, message, conversationContext string) string {
	symbol, ok := uc.extractSymbol(ctx, s, message, conversationContext)
	if !ok {
		return MsgSymbolNotFound
	}

	var (
		income     fmp.IncomeStatement
		financials fmp.CompanyFinancials
		price      fmp.StockPrice

		incomeErr, financialsErr, priceErr error
	)

	// Fan-out with per-fetch error capture; one failure must not
	// cancel its siblings.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		income, incomeErr = uc.fmp.GetIncomeStatement(gctx, symbol, uc.cfg.IncomeStatementPeriod)
		return nil
	})
	g.Go(func() error {
		financials, financialsErr = uc.fmp.GetCompanyFinancials(gctx, symbol)
		return nil
	})
	g.Go(func() error {
		price, priceErr = uc.fmp.GetStockPrice(gctx, symbol)
		return nil
	})
	_ = g.Wait()

	if incomeErr != nil && financialsErr != nil && priceErr != nil {
		errMsg := fmt.Sprintf("Error retrieving financial data for %s: %v", symbol, incomeErr)

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

	for _, fetch := range []struct {
		name string
		err  error
	}{
		{"income_statement", incomeErr},
		{"company_financials", financialsErr},
		{"stock_price", priceErr},
	} {
		if fetch.err != nil {
			uc.l.Warnf(ctx, "%s: %s fetch for %s degraded: %v", LogPrefixHandle, fetch.name, symbol, fetch.err)
		}
	}

	report := composeReport(symbol, income, financials, price)

	uc.appendMessage(s, model.ConversationMessage{
		Role:      model.RoleAgent,
		Content:   report.Markdown,
		AgentName: AgentNameComposer,
		StructuredData: map[string]interface{}{
			"symbol":       symbol,
			"data_sources": []string{"income_statement", "company_financials", "stock_price"},
			"report_type":  "comprehensive",
		},
	})

	s.WorkflowPath = model.WorkflowPathReport
	return report.Markdown
}
