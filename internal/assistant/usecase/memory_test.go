package usecase

import (
	"context"
	"fmt"
	"testing"

	"financial-assistant/internal/model"
)

func newMemoryTestUseCase(provider *scriptedProvider, cfg Config) *implUseCase {
	return newTestUseCase(&mockFMP{}, provider, &stubRouter{category: model.CategoryChat}, cfg)
}

func TestMaybeUpdateSummary_ThresholdExact(t *testing.T) {
	provider := &scriptedProvider{responses: []string{
		`{"summary": "Discussed Apple fundamentals", "key_topics": ["valuation"], "companies_mentioned": ["AAPL"]}`,
	}}
	uc := newMemoryTestUseCase(provider, Config{SummaryUpdateThreshold: 5})
	s := uc.getSession("s1")

	// Four messages: below threshold, no summary generated
	for i := 0; i < 4; i++ {
		uc.appendMessage(s, model.ConversationMessage{Role: model.RoleUser, Content: fmt.Sprintf("message %d", i)})
	}
	uc.maybeUpdateSummary(context.Background(), s)
	if s.Summary != nil {
		t.Fatal("summary should not be generated below threshold")
	}
	if provider.calls != 0 {
		t.Fatalf("no LLM call expected below threshold, got %d", provider.calls)
	}

	// Fifth message crosses the threshold
	uc.appendMessage(s, model.ConversationMessage{Role: model.RoleUser, Content: "message 4"})
	uc.maybeUpdateSummary(context.Background(), s)
	if s.Summary == nil {
		t.Fatal("summary should be generated at threshold")
	}
	if s.Summary.Summary != "Discussed Apple fundamentals" {
		t.Errorf("unexpected summary: %q", s.Summary.Summary)
	}
	if s.LastSummaryMessageCount != 5 {
		t.Errorf("expected LastSummaryMessageCount=5, got %d", s.LastSummaryMessageCount)
	}
	if s.Summary.MessageCountAtGeneration != 5 {
		t.Errorf("expected MessageCountAtGeneration=5, got %d", s.Summary.MessageCountAtGeneration)
	}
}

func TestMaybeUpdateSummary_FailureKeepsPrevious(t *testing.T) {
	provider := &scriptedProvider{fail: true}
	uc := newMemoryTestUseCase(provider, Config{SummaryUpdateThreshold: 5})
	s := uc.getSession("s1")

	previous := &model.ConversationSummary{Summary: "old summary"}
	s.Summary = previous
	s.LastSummaryMessageCount = 0

	for i := 0; i < 5; i++ {
		uc.appendMessage(s, model.ConversationMessage{Role: model.RoleUser, Content: "m"})
	}
	uc.maybeUpdateSummary(context.Background(), s)

	if s.Summary != previous {
		t.Fatal("failed regeneration should keep the previous summary")
	}
	if s.LastSummaryMessageCount != 0 {
		t.Errorf("failed regeneration should not advance the counter, got %d", s.LastSummaryMessageCount)
	}
}

func TestConversationContext(t *testing.T) {
	uc := newMemoryTestUseCase(&scriptedProvider{}, Config{})
	s := uc.getSession("s1")

	t.Run("Empty Session", func(t *testing.T) {
		if got := uc.conversationContext(s); got != "" {
			t.Errorf("expected empty context, got %q", got)
		}
	})

	t.Run("Companies Only", func(t *testing.T) {
		s.AddCompany("AAPL")
		s.AddCompany("MSFT")
		s.AddCompany("AAPL") // deduplicated
		if got := uc.conversationContext(s); got != "AAPL, MSFT" {
			t.Errorf("unexpected context: %q", got)
		}
	})

	t.Run("With Summary", func(t *testing.T) {
		s.Summary = &model.ConversationSummary{Summary: "talked about tech stocks"}
		want := "Previous conversation: talked about tech stocks\nCompanies discussed: AAPL, MSFT"
		if got := uc.conversationContext(s); got != want {
			t.Errorf("unexpected context:\n got %q\nwant %q", got, want)
		}
	})
}

func TestAppendMessage_HistoryTrim(t *testing.T) {
	uc := newMemoryTestUseCase(&scriptedProvider{}, Config{MaxHistory: 10, SummaryUpdateThreshold: 100})
	s := uc.getSession("s1")
	s.LastSummaryMessageCount = 8

	for i := 0; i < 15; i++ {
		uc.appendMessage(s, model.ConversationMessage{Role: model.RoleUser, Content: fmt.Sprintf("m%d", i)})
	}

	if len(s.Messages) != 10 {
		t.Fatalf("expected history capped at 10, got %d", len(s.Messages))
	}
	if s.Messages[len(s.Messages)-1].Content != "m14" {
		t.Errorf("most recent message should survive the trim")
	}
	if s.LastSummaryMessageCount < 0 || s.LastSummaryMessageCount > len(s.Messages) {
		t.Errorf("summary counter out of range after trim: %d", s.LastSummaryMessageCount)
	}
}

func TestFormatSummaryLine(t *testing.T) {
	user := model.ConversationMessage{Role: model.RoleUser, Content: "hello"}
	if got := formatSummaryLine(user); got != "- User: hello" {
		t.Errorf("unexpected line: %q", got)
	}

	agent := model.ConversationMessage{Role: model.RoleAgent, AgentName: "Router Agent", Content: "chat"}
	if got := formatSummaryLine(agent); got != "- Agent (Router Agent): chat" {
		t.Errorf("unexpected line: %q", got)
	}
}
