package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"financial-assistant/internal/model"
	"financial-assistant/pkg/llmprovider"
)

// chatWire is the structured reply shape the chat prompt asks for
type chatWire struct {
	Content             string   `json:"content"`
	EducationalContext  string   `json:"educational_context"`
	References          []string `json:"references"`
	FollowUpSuggestions []string `json:"follow_up_suggestions"`
	Confidence          float64  `json:"confidence"`
}

// handleChat serves the conversational path. No symbol resolution and
// no data fetching happen here. Replies that are not valid structured
// JSON fall back to raw text, and empty replies fall back to the
// fixed default message.
func (uc *implUseCase) handleChat(ctx context.Context, s *model.SessionState, message, conversationContext string) string {
	s.WorkflowPath = model.WorkflowPathChat

	if conversationContext == "" {
		conversationContext = "(none)"
	}
	prompt := fmt.Sprintf(PromptChat, message, conversationContext)

	content := MsgNoChatResponse
	var structured *chatWire

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages: []llmprovider.Message{
			{Role: "user", Parts: []llmprovider.Part{{Text: prompt}}},
		},
	})
	if err != nil {
		uc.l.Warnf(ctx, "%s: chat generation failed: %v", LogPrefixHandle, err)
	} else {
		raw := strings.TrimSpace(resp.Text())

		var wire chatWire
		if jsonErr := json.Unmarshal([]byte(sanitizeJSONResponse(raw)), &wire); jsonErr == nil && wire.Content != "" {
			content = wire.Content
			structured = &wire
		} else if raw != "" {
			content = raw
		}
	}

	msg := model.ConversationMessage{
		Role:      model.RoleAgent,
		Content:   content,
		AgentName: AgentNameChat,
		StructuredData: map[string]interface{}{
			"response_type": "conversational",
		},
	}
	if structured != nil {
		msg.StructuredData = map[string]interface{}{
			"response_type":         "conversational",
			"educational_context":   structured.EducationalContext,
			"references":            structured.References,
			"follow_up_suggestions": structured.FollowUpSuggestions,
			"confidence":            structured.Confidence,
		}
	}
	uc.appendMessage(s, msg)

	return content
}
