package assistant

import "financial-assistant/internal/model"

// HandleInput is a single user request
type HandleInput struct {
	SessionID string
	Message   string
}

// HandleOutput is the assistant's response
type HandleOutput struct {
	SessionID    string
	Content      string
	Category     model.Category
	Symbol       string
	WorkflowPath model.WorkflowPath
}
