package model

import "time"

// WorkflowPath identifies which processing branch handled a request
type WorkflowPath string

const (
	WorkflowPathAlone  WorkflowPath = "alone"
	WorkflowPathReport WorkflowPath = "report"
	WorkflowPathChat   WorkflowPath = "chat"
)

// SessionState holds per-session conversation state. A session is
// mutated by one request at a time; the session store serializes access.
type SessionState struct {
	ID                      string
	Messages                []ConversationMessage
	Summary                 *ConversationSummary
	LastSummaryMessageCount int      // History length at last summary refresh
	CompaniesDiscussed      []string // Symbols resolved during the session, oldest first
	CurrentCategory         Category // Category of the latest request
	CurrentSymbol           string   // Symbol of the latest request, if any
	WorkflowPath            WorkflowPath
	CreatedAt               time.Time
	LastActive              time.Time
}

// AddCompany records a resolved symbol once, preserving first-seen order.
func (s *SessionState) AddCompany(symbol string) {
	for _, existing := range s.CompaniesDiscussed {
		if existing == symbol {
			return
		}
	}
	s.CompaniesDiscussed = append(s.CompaniesDiscussed, symbol)
}
