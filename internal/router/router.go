package router

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"financial-assistant/internal/model"
	"financial-assistant/pkg/llmprovider"
)

// routerWire is the JSON shape the classification prompt asks for
type routerWire struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// Classify determines the handling category for a user message. Any
// failure degrades to the chat category instead of returning an error;
// chat is the only path that needs no upstream data.
func (r *CategoryRouter) Classify(ctx context.Context, message string, conversationContext string) model.RouterResult {
	if conversationContext == "" {
		conversationContext = "(none)"
	}
	prompt := fmt.Sprintf(PromptRouterSystem, message, conversationContext)

	resp, err := r.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages: []llmprovider.Message{
			{
				Role:  "user",
				Parts: []llmprovider.Part{{Text: prompt}},
			},
		},
		Temperature: RouterTemperature,
	})
	if err != nil {
		r.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, ErrMsgLLMCallFailed, err)
		return fallbackResult(ReasonLLMFailure)
	}

	responseText := strings.TrimSpace(resp.Text())
	if responseText == "" {
		r.l.Warnf(ctx, "%s: %s", LogPrefixClassify, ErrMsgEmptyResponse)
		return fallbackResult(ReasonEmptyResponse)
	}

	responseText = stripCodeFences(responseText)

	var wire routerWire
	if err := json.Unmarshal([]byte(responseText), &wire); err != nil {
		// The model sometimes answers with just the category word
		if cat, ok := scanForCategory(responseText); ok {
			r.l.Debugf(ctx, "%s: recovered category %q from raw text", LogPrefixClassify, cat)
			return model.RouterResult{
				Category:   cat,
				Confidence: RouterFallbackConfidence,
				Reasoning:  "Category token found in unstructured response",
			}
		}
		r.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, ErrMsgJSONParseFailed, err)
		return fallbackResult(ReasonParsingError)
	}

	category, ok := model.ParseCategory(strings.ToLower(strings.TrimSpace(wire.Category)))
	if !ok {
		r.l.Warnf(ctx, "%s: unknown category %q, falling back to chat", LogPrefixClassify, wire.Category)
		return fallbackResult(ReasonParsingError)
	}

	r.l.Infof(ctx, "%s: Classified as %s (confidence: %.2f)", LogPrefixClassify, category, wire.Confidence)
	return model.RouterResult{
		Category:   category,
		Confidence: wire.Confidence,
		Reasoning:  wire.Reasoning,
	}
}

func fallbackResult(reason string) model.RouterResult {
	return model.RouterResult{
		Category:   model.CategoryChat,
		Confidence: RouterFallbackConfidence,
		Reasoning:  reason,
	}
}

// stripCodeFences removes markdown code blocks if present (```json ... ```)
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSuffix(s, "```")
		return strings.TrimSpace(s)
	}
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
		return strings.TrimSpace(s)
	}
	return s
}

// scanForCategory looks for a category label inside unstructured text.
// Longer labels are checked first so "income_statement" is not shadowed
// by a shorter substring match.
func scanForCategory(s string) (model.Category, bool) {
	lower := strings.ToLower(s)
	ordered := []model.Category{
		model.CategoryIncomeStatement,
		model.CategoryCompanyFinancials,
		model.CategoryStockPrice,
		model.CategoryReport,
		model.CategoryChat,
	}
	for _, c := range ordered {
		if strings.Contains(lower, string(c)) {
			return c, true
		}
	}
	return "", false
}
