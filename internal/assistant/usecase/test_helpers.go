package usecase

import (
	"context"
	"errors"

	"financial-assistant/internal/agent"
	"financial-assistant/internal/agent/tools"
	"financial-assistant/internal/model"
	"financial-assistant/pkg/fmp"
	"financial-assistant/pkg/llmprovider"
)

// Test doubles shared by the usecase tests.

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any) {}

// mockFMP implements fmp.IFMP with configurable records and errors.
type mockFMP struct {
	search     fmp.SymbolSearchResult
	searchErr  error
	income     fmp.IncomeStatement
	incomeErr  error
	fin        fmp.CompanyFinancials
	finErr     error
	price      fmp.StockPrice
	priceErr   error
	profile    fmp.CompanyProfile
	profileErr error

	searchCalls int
	incomeCalls int
	finCalls    int
	priceCalls  int
}

func (m *mockFMP) SearchSymbol(ctx context.Context, query string) (fmp.SymbolSearchResult, error) {
	m.searchCalls++
	return m.search, m.searchErr
}

func (m *mockFMP) GetIncomeStatement(ctx context.Context, symbol, period string) (fmp.IncomeStatement, error) {
	m.incomeCalls++
	return m.income, m.incomeErr
}

func (m *mockFMP) GetCompanyFinancials(ctx context.Context, symbol string) (fmp.CompanyFinancials, error) {
	m.finCalls++
	return m.fin, m.finErr
}

func (m *mockFMP) GetStockPrice(ctx context.Context, symbol string) (fmp.StockPrice, error) {
	m.priceCalls++
	return m.price, m.priceErr
}

func (m *mockFMP) GetCompanyProfile(ctx context.Context, symbol string) (fmp.CompanyProfile, error) {
	return m.profile, m.profileErr
}

// scriptedProvider replays canned LLM responses in order. When the
// script is exhausted the last response repeats.
type scriptedProvider struct {
	responses []string
	fail      bool
	calls     int
}

func (p *scriptedProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	p.calls++
	if p.fail {
		return nil, errors.New("scripted provider failure")
	}
	idx := p.calls - 1
	if idx >= len(p.responses) {
		idx = len(p.responses) - 1
	}
	if idx < 0 {
		return nil, errors.New("no scripted responses")
	}
	return &llmprovider.Response{
		Content: llmprovider.Message{
			Role:  "assistant",
			Parts: []llmprovider.Part{{Text: p.responses[idx]}},
		},
		Usage: &llmprovider.Usage{},
	}, nil
}

func (p *scriptedProvider) Name() string  { return "scripted" }
func (p *scriptedProvider) Model() string { return "scripted-model" }

// stubRouter returns a fixed classification.
type stubRouter struct {
	category model.Category
	calls    int
}

func (r *stubRouter) Classify(ctx context.Context, message string, conversationContext string) model.RouterResult {
	r.calls++
	return model.RouterResult{Category: r.category, Confidence: 0.9}
}

func newTestManager(p llmprovider.Provider) *llmprovider.Manager {
	return llmprovider.NewManager([]llmprovider.Provider{p}, &llmprovider.Config{
		RetryAttempts: 1,
	}, &mockLogger{})
}

func newTestUseCase(client *mockFMP, provider llmprovider.Provider, r *stubRouter, cfg Config) *implUseCase {
	registry := agent.NewToolRegistry()
	registry.Register(tools.NewSearchSymbolTool(client))
	return New(&mockLogger{}, newTestManager(provider), client, registry, r, cfg)
}
