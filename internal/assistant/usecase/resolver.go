package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"financial-assistant/pkg/fmp"
	"financial-assistant/pkg/llmprovider"
)

var symbolPattern = regexp.MustCompile(`^[A-Z][A-Z.\-]{0,9}$`)

// resolveSymbol extracts a ticker symbol from the user message using a
// tool-calling loop: the LLM may call search_symbol to validate a
// company reference before answering. Every failure mode collapses to
// the UNKNOWN sentinel; callers treat that as a terminal user-facing
// condition, never an error.
func (uc *implUseCase) resolveSymbol(ctx context.Context, message, conversationContext string) string {
	if conversationContext == "" {
		conversationContext = "(none)"
	}
	prompt := fmt.Sprintf(PromptSymbolExtraction, message, conversationContext)

	req := &llmprovider.Request{
		Messages: []llmprovider.Message{
			{Role: "user", Parts: []llmprovider.Part{{Text: prompt}}},
		},
		Tools: uc.registry.ToFunctionDefinitions(),
	}

	for step := 0; step < MaxResolverSteps; step++ {
		resp, err := uc.llm.GenerateContent(ctx, req)
		if err != nil {
			uc.l.Warnf(ctx, "%s: LLM error at step %d: %v", LogPrefixResolve, step, err)
			return fmp.SymbolUnknown
		}

		calls := resp.FunctionCalls()
		if len(calls) == 0 {
			return uc.validateSymbol(ctx, resp.Text())
		}

		call := calls[0]
		uc.l.Debugf(ctx, "%s: calling tool %s with args %+v", LogPrefixResolve, call.Name, call.Args)

		var toolResult interface{}
		if tool, ok := uc.registry.Get(call.Name); ok {
			res, err := tool.Execute(ctx, call.Args)
			if err != nil {
				uc.l.Warnf(ctx, "%s: tool %s failed: %v", LogPrefixResolve, call.Name, err)
				toolResult = map[string]string{"error": err.Error()}
			} else {
				toolResult = res
			}
		} else {
			toolResult = map[string]string{"error": "tool not found"}
		}

		req.Messages = append(req.Messages, llmprovider.Message{
			Role:  "model",
			Parts: []llmprovider.Part{{FunctionCall: call}},
		})
		req.Messages = append(req.Messages, llmprovider.Message{
			Role: "function",
			Parts: []llmprovider.Part{{
				FunctionResponse: &llmprovider.FunctionResponse{
					Name:     call.Name,
					Response: toolResult,
				},
			}},
		})
	}

	uc.l.Warnf(ctx, "%s: exceeded max steps (%d)", LogPrefixResolve, MaxResolverSteps)
	return fmp.SymbolUnknown
}

// validateSymbol normalizes the LLM's final answer into a ticker or
// UNKNOWN. Plausible-looking answers the model produced without a tool
// call are verified against the provider's symbol search.
func (uc *implUseCase) validateSymbol(ctx context.Context, answer string) string {
	symbol := strings.ToUpper(strings.TrimSpace(answer))
	symbol = strings.Trim(symbol, `"'.`)

	if symbol == "" || symbol == fmp.SymbolUnknown {
		return fmp.SymbolUnknown
	}
	if !symbolPattern.MatchString(symbol) {
		return fmp.SymbolUnknown
	}

	result, err := uc.fmp.SearchSymbol(ctx, symbol)
	if err != nil || !result.Found {
		return fmp.SymbolUnknown
	}
	return strings.ToUpper(result.Symbol)
}
