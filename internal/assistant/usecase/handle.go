package usecase

import (
	"context"
	"strings"

	"financial-assistant/internal/assistant"
	"financial-assistant/internal/model"
)

// Handle routes a user message through the workflow:
// received -> routed -> {alone|report|chat} -> responded.
// Every internal failure collapses to a defined fallback response;
// only input validation surfaces as an error.
func (uc *implUseCase) Handle(ctx context.Context, input assistant.HandleInput) (assistant.HandleOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return assistant.HandleOutput{}, assistant.ErrEmptyMessage
	}

	s := uc.getSession(input.SessionID)

	uc.appendMessage(s, model.ConversationMessage{
		Role:    model.RoleUser,
		Content: message,
	})

	uc.maybeUpdateSummary(ctx, s)

	conversationContext := uc.conversationContext(s)

	result := uc.router.Classify(ctx, message, conversationContext)
	s.CurrentCategory = result.Category

	uc.appendMessage(s, model.ConversationMessage{
		Role:      model.RoleAgent,
		Content:   string(result.Category),
		AgentName: AgentNameRouter,
		StructuredData: map[string]interface{}{
			"category":   string(result.Category),
			"confidence": result.Confidence,
		},
	})

	uc.l.Infof(ctx, "%s: session=%s category=%s", LogPrefixHandle, s.ID, result.Category)

	var content string
	switch result.Category {
	case model.CategoryReport:
		content = uc.handleReport(ctx, s, message, conversationContext)
	case model.CategoryChat:
		content = uc.handleChat(ctx, s, message, conversationContext)
	default:
		content = uc.handleAlone(ctx, s, message, conversationContext, result.Category)
	}

	return assistant.HandleOutput{
		SessionID:    s.ID,
		Content:      content,
		Category:     s.CurrentCategory,
		Symbol:       s.CurrentSymbol,
		WorkflowPath: s.WorkflowPath,
	}, nil
}
