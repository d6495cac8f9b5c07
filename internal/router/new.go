package router

import (
	"context"

	"financial-assistant/internal/model"
	"financial-assistant/pkg/llmprovider"
	"financial-assistant/pkg/log"
)

// Router is the interface for request classification
type Router interface {
	Classify(ctx context.Context, message string, conversationContext string) model.RouterResult
}

// CategoryRouter classifies user requests into handling categories using LLM
type CategoryRouter struct {
	llm *llmprovider.Manager
	l   log.Logger
}

// Ensure CategoryRouter implements Router interface
var _ Router = (*CategoryRouter)(nil)

// New creates a new CategoryRouter
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(llm *llmprovider.Manager, l log.Logger) *CategoryRouter {
	return &CategoryRouter{
		llm: llm,
		l:   l,
	}
}
