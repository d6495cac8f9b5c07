package usecase

import (
	"context"
	"testing"

	"financial-assistant/internal/model"
	"financial-assistant/pkg/fmp"
	"financial-assistant/pkg/llmprovider"
)

// toolCallProvider replays canned responses that may contain function
// calls, recording the last request for inspection.
type toolCallProvider struct {
	responses []*llmprovider.Response
	calls     int
	lastReq   *llmprovider.Request
}

func (p *toolCallProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	p.lastReq = req
	idx := p.calls
	p.calls++
	if idx >= len(p.responses) {
		idx = len(p.responses) - 1
	}
	return p.responses[idx], nil
}

func (p *toolCallProvider) Name() string  { return "toolcall" }
func (p *toolCallProvider) Model() string { return "toolcall-model" }

func textResponse(text string) *llmprovider.Response {
	return &llmprovider.Response{
		Content: llmprovider.Message{Role: "assistant", Parts: []llmprovider.Part{{Text: text}}},
	}
}

func functionCallResponse(name string, args map[string]interface{}) *llmprovider.Response {
	return &llmprovider.Response{
		Content: llmprovider.Message{
			Role:  "assistant",
			Parts: []llmprovider.Part{{FunctionCall: &llmprovider.FunctionCall{Name: name, Args: args}}},
		},
	}
}

func newResolverTestUseCase(client *mockFMP, provider llmprovider.Provider) *implUseCase {
	return newTestUseCase(client, provider, &stubRouter{category: model.CategoryChat}, Config{})
}

func TestResolveSymbol_ToolCallLoop(t *testing.T) {
	client := workingFMP()
	provider := &toolCallProvider{responses: []*llmprovider.Response{
		functionCallResponse("search_symbol", map[string]interface{}{"query": "Apple"}),
		textResponse("AAPL"),
	}}
	uc := newResolverTestUseCase(client, provider)

	symbol := uc.resolveSymbol(context.Background(), "Tell me about Apple", "")
	if symbol != "AAPL" {
		t.Fatalf("expected AAPL, got %q", symbol)
	}
	if provider.calls != 2 {
		t.Errorf("expected 2 LLM steps, got %d", provider.calls)
	}

	// The second request carries the model's call and the tool result
	msgs := provider.lastReq.Messages
	if len(msgs) != 3 {
		t.Fatalf("expected prompt + call + result messages, got %d", len(msgs))
	}
	if msgs[1].Role != "model" || msgs[1].Parts[0].FunctionCall == nil {
		t.Error("second message should carry the function call")
	}
	if msgs[2].Role != "function" || msgs[2].Parts[0].FunctionResponse == nil {
		t.Error("third message should carry the function response")
	}
	// search_symbol executes once for the tool call, once for validation
	if client.searchCalls != 2 {
		t.Errorf("expected 2 symbol searches, got %d", client.searchCalls)
	}
}

func TestResolveSymbol_MaxSteps(t *testing.T) {
	client := workingFMP()
	provider := &toolCallProvider{responses: []*llmprovider.Response{
		functionCallResponse("search_symbol", map[string]interface{}{"query": "Apple"}),
	}}
	uc := newResolverTestUseCase(client, provider)

	symbol := uc.resolveSymbol(context.Background(), "Tell me about Apple", "")
	if symbol != fmp.SymbolUnknown {
		t.Fatalf("expected UNKNOWN after exhausting steps, got %q", symbol)
	}
	if provider.calls != MaxResolverSteps {
		t.Errorf("expected %d LLM steps, got %d", MaxResolverSteps, provider.calls)
	}
}

func TestValidateSymbol(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		search fmp.SymbolSearchResult
		want   string
	}{
		{"Clean Ticker", "AAPL", fmp.SymbolSearchResult{Symbol: "AAPL", Found: true}, "AAPL"},
		{"Lowercase Normalized", "aapl", fmp.SymbolSearchResult{Symbol: "AAPL", Found: true}, "AAPL"},
		{"Quoted Ticker", `"MSFT"`, fmp.SymbolSearchResult{Symbol: "MSFT", Found: true}, "MSFT"},
		{"Unknown Sentinel", "UNKNOWN", fmp.SymbolSearchResult{}, fmp.SymbolUnknown},
		{"Empty Answer", "", fmp.SymbolSearchResult{}, fmp.SymbolUnknown},
		{"Prose Answer", "The ticker is AAPL", fmp.SymbolSearchResult{}, fmp.SymbolUnknown},
		{"Not Found Upstream", "ZZZZ", fmp.SymbolSearchResult{Symbol: "UNKNOWN", Found: false}, fmp.SymbolUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockFMP{search: tt.search}
			uc := newTestUseCase(client, &scriptedProvider{}, &stubRouter{category: model.CategoryChat}, Config{})
			if got := uc.validateSymbol(context.Background(), tt.answer); got != tt.want {
				t.Errorf("validateSymbol(%q) = %q, want %q", tt.answer, got, tt.want)
			}
		})
	}
}
