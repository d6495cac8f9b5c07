package http

import (
	"github.com/google/uuid"

	"financial-assistant/internal/assistant"
)

// --- Request DTOs ---

type createMessageReq struct {
	SessionID string `json:"session_id" binding:"omitempty,max=128"`
	Message   string `json:"message"    binding:"required,min=1,max=4000"`
}

func (r createMessageReq) validate() error { return nil }

// toInput generates a fresh session ID when the caller did not supply
// one; the ID is echoed back so the conversation can continue.
func (r createMessageReq) toInput() assistant.HandleInput {
	sessionID := r.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	return assistant.HandleInput{
		SessionID: sessionID,
		Message:   r.Message,
	}
}

// --- Response DTOs ---

type messageResp struct {
	SessionID    string `json:"session_id"`
	Content      string `json:"content"`
	Category     string `json:"category"`
	Symbol       string `json:"symbol,omitempty"`
	WorkflowPath string `json:"workflow_path"`
}

func (h *handler) newMessageResp(out assistant.HandleOutput) messageResp {
	return messageResp{
		SessionID:    out.SessionID,
		Content:      out.Content,
		Category:     string(out.Category),
		Symbol:       out.Symbol,
		WorkflowPath: string(out.WorkflowPath),
	}
}
