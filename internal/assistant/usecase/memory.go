package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"financial-assistant/internal/model"
	"financial-assistant/pkg/llmprovider"
)

// appendMessage records a message in the session audit trail, trimming
// the history window when it grows past the configured maximum.
func (uc *implUseCase) appendMessage(s *model.SessionState, msg model.ConversationMessage) {
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}
	s.Messages = append(s.Messages, msg)

	if len(s.Messages) > uc.cfg.MaxHistory {
		dropped := len(s.Messages) - uc.cfg.MaxHistory
		s.Messages = s.Messages[dropped:]
		s.LastSummaryMessageCount -= dropped
		if s.LastSummaryMessageCount < 0 {
			s.LastSummaryMessageCount = 0
		}
	}
}

// conversationContext builds the compact context blob handed to the
// router, resolver, and chat prompts. Cheap and side-effect free.
func (uc *implUseCase) conversationContext(s *model.SessionState) string {
	companies := strings.Join(s.CompaniesDiscussed, ", ")
	if s.Summary != nil {
		return fmt.Sprintf("Previous conversation: %s\nCompanies discussed: %s", s.Summary.Summary, companies)
	}
	return companies
}

// summaryWire is the JSON shape the summary prompt asks for
type summaryWire struct {
	Summary            string   `json:"summary"`
	KeyTopics          []string `json:"key_topics"`
	CompaniesMentioned []string `json:"companies_mentioned"`
}

// maybeUpdateSummary regenerates the rolling conversation summary once
// enough new messages have accrued. A failed regeneration is skipped
// silently, keeping the previous summary in place.
func (uc *implUseCase) maybeUpdateSummary(ctx context.Context, s *model.SessionState) {
	messageCount := len(s.Messages)
	if messageCount-s.LastSummaryMessageCount < uc.cfg.SummaryUpdateThreshold {
		return
	}

	var parts []string
	if s.Summary != nil {
		parts = append(parts, fmt.Sprintf("Previous summary: %s", s.Summary.Summary))
	}

	parts = append(parts, "\nNew messages to summarize:")
	for _, msg := range s.Messages[s.LastSummaryMessageCount:] {
		parts = append(parts, formatSummaryLine(msg))
	}
	parts = append(parts, fmt.Sprintf("\nTotal messages in conversation: %d", messageCount))

	prompt := fmt.Sprintf(PromptSummary, strings.Join(parts, "\n"))

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages: []llmprovider.Message{
			{Role: "user", Parts: []llmprovider.Part{{Text: prompt}}},
		},
	})
	if err != nil {
		uc.l.Warnf(ctx, "%s: could not generate conversation summary: %v", LogPrefixSummary, err)
		return
	}

	raw := sanitizeJSONResponse(resp.Text())
	var wire summaryWire
	if err := json.Unmarshal([]byte(raw), &wire); err != nil || wire.Summary == "" {
		// Unstructured but non-empty output still makes a usable summary
		text := strings.TrimSpace(resp.Text())
		if text == "" {
			uc.l.Warnf(ctx, "%s: empty summary response, keeping previous summary", LogPrefixSummary)
			return
		}
		wire = summaryWire{Summary: text}
	}

	s.Summary = &model.ConversationSummary{
		Summary:                  wire.Summary,
		KeyTopics:                wire.KeyTopics,
		CompaniesMentioned:       wire.CompaniesMentioned,
		MessageCountAtGeneration: messageCount,
		LastUpdated:              time.Now(),
	}
	s.LastSummaryMessageCount = messageCount
}

// formatSummaryLine renders one history entry for the summary prompt
func formatSummaryLine(msg model.ConversationMessage) string {
	role := titleCase(string(msg.Role))
	if msg.Role == model.RoleAgent && msg.AgentName != "" {
		return fmt.Sprintf("- %s (%s): %s", role, msg.AgentName, msg.Content)
	}
	return fmt.Sprintf("- %s: %s", role, msg.Content)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
