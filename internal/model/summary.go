package model

import "time"

// ConversationSummary is a rolling digest of older conversation turns.
type ConversationSummary struct {
	Summary                  string    // Narrative digest of the conversation so far
	KeyTopics                []string  // Topics mentioned across turns
	CompaniesMentioned       []string  // Ticker symbols discussed
	MessageCountAtGeneration int       // History length when the summary was produced
	LastUpdated              time.Time // When the summary was last regenerated
}
