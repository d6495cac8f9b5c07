package usecase

import (
	"context"
	"strings"
	"testing"

	"financial-assistant/internal/assistant"
	"financial-assistant/internal/model"
	"financial-assistant/pkg/fmp"
)

func workingFMP() *mockFMP {
	income, fin, price := sampleRecords()
	return &mockFMP{
		search: fmp.SymbolSearchResult{Symbol: "AAPL", CompanyName: "Apple Inc.", Exchange: "NASDAQ", Found: true},
		income: income,
		fin:    fin,
		price:  price,
	}
}

func TestHandle_StockPriceAlonePath(t *testing.T) {
	client := workingFMP()
	provider := &scriptedProvider{responses: []string{"AAPL"}}
	uc := newTestUseCase(client, provider, &stubRouter{category: model.CategoryStockPrice}, Config{})

	out, err := uc.Handle(context.Background(), assistant.HandleInput{
		SessionID: "s1",
		Message:   "What is Apple's stock price?",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Category != model.CategoryStockPrice {
		t.Errorf("expected stock_price category, got %s", out.Category)
	}
	if out.Symbol != "AAPL" {
		t.Errorf("expected AAPL, got %q", out.Symbol)
	}
	if out.WorkflowPath != model.WorkflowPathAlone {
		t.Errorf("expected alone path, got %s", out.WorkflowPath)
	}
	if !strings.Contains(out.Content, "# Stock Price - AAPL") {
		t.Errorf("expected price markdown, got:\n%s", out.Content)
	}
	if strings.Contains(out.Content, "Executive Summary") {
		t.Error("alone path must not compose a report")
	}
	if client.priceCalls != 1 || client.incomeCalls != 0 || client.finCalls != 0 {
		t.Errorf("expected only the price fetch, got income=%d fin=%d price=%d",
			client.incomeCalls, client.finCalls, client.priceCalls)
	}
}

func TestHandle_ReportPath(t *testing.T) {
	client := workingFMP()
	provider := &scriptedProvider{responses: []string{"AAPL"}}
	uc := newTestUseCase(client, provider, &stubRouter{category: model.CategoryReport}, Config{})

	out, err := uc.Handle(context.Background(), assistant.HandleInput{
		SessionID: "s1",
		Message:   "Tell me about Apple's business",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.WorkflowPath != model.WorkflowPathReport {
		t.Errorf("expected report path, got %s", out.WorkflowPath)
	}
	for _, section := range []string{
		"## Executive Summary",
		"## Key Insights",
		"### Income Statement",
		"### Company Financials & Ratios",
		"### Stock Price & Market Data",
	} {
		if !strings.Contains(out.Content, section) {
			t.Errorf("report missing section %q", section)
		}
	}
	if client.incomeCalls != 1 || client.finCalls != 1 || client.priceCalls != 1 {
		t.Errorf("expected all three fetches, got income=%d fin=%d price=%d",
			client.incomeCalls, client.finCalls, client.priceCalls)
	}
}

func TestHandle_UnknownSymbol(t *testing.T) {
	client := workingFMP()
	provider := &scriptedProvider{responses: []string{"UNKNOWN"}}
	uc := newTestUseCase(client, provider, &stubRouter{category: model.CategoryIncomeStatement}, Config{})

	out, err := uc.Handle(context.Background(), assistant.HandleInput{
		SessionID: "s1",
		Message:   "asdkjasd 12345",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Content != MsgSymbolNotFound {
		t.Errorf("expected verbatim guidance string, got %q", out.Content)
	}
	if client.incomeCalls != 0 {
		t.Errorf("no data fetch expected after failed resolution, got %d", client.incomeCalls)
	}
}

func TestHandle_ChatPath(t *testing.T) {
	client := workingFMP()
	provider := &scriptedProvider{responses: []string{
		`{"content": "The P/E ratio compares a company's share price to its earnings per share.", "confidence": 0.95}`,
	}}
	uc := newTestUseCase(client, provider, &stubRouter{category: model.CategoryChat}, Config{})

	out, err := uc.Handle(context.Background(), assistant.HandleInput{
		SessionID: "s1",
		Message:   "What is a P/E ratio?",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.WorkflowPath != model.WorkflowPathChat {
		t.Errorf("expected chat path, got %s", out.WorkflowPath)
	}
	if !strings.Contains(out.Content, "P/E ratio compares") {
		t.Errorf("unexpected chat content: %q", out.Content)
	}
	if client.searchCalls != 0 {
		t.Error("chat path must not resolve symbols")
	}
	if client.incomeCalls+client.finCalls+client.priceCalls != 0 {
		t.Error("chat path must not fetch data")
	}
}

func TestHandle_ChatFallbacks(t *testing.T) {
	t.Run("Raw Text Reply", func(t *testing.T) {
		uc := newTestUseCase(workingFMP(), &scriptedProvider{responses: []string{"plain text, no JSON here"}},
			&stubRouter{category: model.CategoryChat}, Config{})
		out, _ := uc.Handle(context.Background(), assistant.HandleInput{SessionID: "s1", Message: "hi"})
		if out.Content != "plain text, no JSON here" {
			t.Errorf("expected raw text passthrough, got %q", out.Content)
		}
	})

	t.Run("Empty Reply", func(t *testing.T) {
		uc := newTestUseCase(workingFMP(), &scriptedProvider{responses: []string{""}},
			&stubRouter{category: model.CategoryChat}, Config{})
		out, _ := uc.Handle(context.Background(), assistant.HandleInput{SessionID: "s1", Message: "hi"})
		if out.Content != MsgNoChatResponse {
			t.Errorf("expected %q, got %q", MsgNoChatResponse, out.Content)
		}
	})

	t.Run("LLM Failure", func(t *testing.T) {
		uc := newTestUseCase(workingFMP(), &scriptedProvider{fail: true},
			&stubRouter{category: model.CategoryChat}, Config{})
		out, _ := uc.Handle(context.Background(), assistant.HandleInput{SessionID: "s1", Message: "hi"})
		if out.Content != MsgNoChatResponse {
			t.Errorf("expected %q, got %q", MsgNoChatResponse, out.Content)
		}
	})
}

func TestHandle_ReportPartialFetchFailure(t *testing.T) {
	client := workingFMP()
	client.incomeErr = context.DeadlineExceeded
	client.income = fmp.IncomeStatement{Symbol: "AAPL", Error: "timeout"}

	provider := &scriptedProvider{responses: []string{"AAPL"}}
	uc := newTestUseCase(client, provider, &stubRouter{category: model.CategoryReport}, Config{})

	out, err := uc.Handle(context.Background(), assistant.HandleInput{
		SessionID: "s1",
		Message:   "Tell me about Apple",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The two healthy sources still populate the report
	if !strings.Contains(out.Content, "P/E Ratio: 29.80") {
		t.Errorf("financials data missing from degraded report:\n%s", out.Content)
	}
	if !strings.Contains(out.Content, "Price: $229.87") {
		t.Errorf("price data missing from degraded report:\n%s", out.Content)
	}
	// The failed source renders zero-filled
	if !strings.Contains(out.Content, "Total Revenue: $0") {
		t.Errorf("income section should be zero-filled:\n%s", out.Content)
	}
}

func TestHandle_ReportAllFetchesFail(t *testing.T) {
	client := workingFMP()
	client.incomeErr = context.DeadlineExceeded
	client.finErr = context.DeadlineExceeded
	client.priceErr = context.DeadlineExceeded

	provider := &scriptedProvider{responses: []string{"AAPL"}}
	uc := newTestUseCase(client, provider, &stubRouter{category: model.CategoryReport}, Config{})

	out, err := uc.Handle(context.Background(), assistant.HandleInput{
		SessionID: "s1",
		Message:   "Tell me about Apple",
	})
	if err != nil {
		t.Fatalf("branch failures must not surface as errors: %v", err)
	}

	if !strings.HasPrefix(out.Content, "Error retrieving financial data for AAPL") {
		t.Errorf("expected symbol-scoped error message, got %q", out.Content)
	}
}

func TestHandle_EmptyMessage(t *testing.T) {
	uc := newTestUseCase(workingFMP(), &scriptedProvider{}, &stubRouter{category: model.CategoryChat}, Config{})
	if _, err := uc.Handle(context.Background(), assistant.HandleInput{SessionID: "s1", Message: "   "}); err != assistant.ErrEmptyMessage {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
}

func TestHandle_AuditTrail(t *testing.T) {
	client := workingFMP()
	provider := &scriptedProvider{responses: []string{"AAPL"}}
	uc := newTestUseCase(client, provider, &stubRouter{category: model.CategoryStockPrice}, Config{})

	if _, err := uc.Handle(context.Background(), assistant.HandleInput{
		SessionID: "s1",
		Message:   "What is Apple's stock price?",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := uc.getSession("s1")
	agents := make([]string, 0, len(s.Messages))
	for _, msg := range s.Messages {
		if msg.Role == model.RoleAgent {
			agents = append(agents, msg.AgentName)
		}
	}

	want := []string{AgentNameRouter, AgentNameSymbol, AgentNameData}
	if len(agents) != len(want) {
		t.Fatalf("expected agent trail %v, got %v", want, agents)
	}
	for i := range want {
		if agents[i] != want[i] {
			t.Errorf("audit step %d: expected %q, got %q", i, want[i], agents[i])
		}
	}
}
