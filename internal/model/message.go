package model

import "time"

// Role identifies who authored a conversation message
type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)

// ConversationMessage is a single entry in a session's history
type ConversationMessage struct {
	Role           Role        // "user" or "agent"
	Content        string      // Message text
	AgentName      string      // Which agent produced the message (agent role only)
	Timestamp      time.Time   // When the message was recorded
	StructuredData interface{} // Optional typed payload backing the message
}
