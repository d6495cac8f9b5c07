package usecase

// Log prefixes
const (
	LogPrefixHandle          = "internal.assistant.usecase.Handle"
	LogPrefixResolve         = "internal.assistant.usecase.resolveSymbol"
	LogPrefixSummary         = "internal.assistant.usecase.maybeUpdateSummary"
	LogPrefixCleanupSessions = "internal.assistant.usecase.cleanupExpiredSessions"
)

// Agent names recorded in the conversation audit trail
const (
	AgentNameRouter   = "Router Agent"
	AgentNameSymbol   = "Symbol Extraction Agent"
	AgentNameData     = "Financial Data Agent"
	AgentNameComposer = "Financial Report Composer"
	AgentNameChat     = "Chat Agent"
	AgentNameSystem   = "Workflow System"
)

// Fixed user-facing strings
const (
	MsgSymbolNotFound = "Could not extract a valid stock symbol from your request. Please specify a company name or ticker symbol."
	MsgNoChatResponse = "No response generated"
)

// Workflow configuration defaults
const (
	DefaultSummaryUpdateThreshold = 5
	DefaultMaxHistory             = 50
	MaxResolverSteps              = 3
)

// Report policy constants
const (
	StrongNetMargin        = 0.15
	StrongROE              = 0.15
	ConservativeDebtEquity = 0.3
	StrongRevenueGrowth    = 0.1
	LowNetMargin           = 0.05
	HighDebtEquity         = 1.0
	LowROE                 = 0.05
	HighPERatio            = 30.0
	LargeCapThreshold      = 200_000_000_000
	MidCapThreshold        = 10_000_000_000
)

// Prompts
const (
	PromptSymbolExtraction = `You are a stock symbol extraction assistant. Extract the company the user is asking about and produce its stock ticker symbol.

User request: "%s"

Conversation context:
%s

Rules:
1. Use the search_symbol tool to validate a company name or ticker before answering.
2. If the user refers to a previously discussed company ("it", "that company", "their"), resolve the reference using the conversation context.
3. Respond with ONLY the ticker symbol in uppercase, e.g. AAPL.
4. If no valid company can be identified, respond with exactly UNKNOWN.`

	PromptChat = `You are a financial education assistant. Answer the user's question clearly and concisely, building on the conversation so far.

User message: "%s"

Conversation context:
%s

Return JSON with this format:
{
  "content": "your answer",
  "educational_context": "optional background",
  "references": ["optional sources"],
  "follow_up_suggestions": ["optional follow-up questions"],
  "confidence": 0.0-1.0
}`

	PromptSummary = `You are a conversation summarizer for a financial assistant. Produce an updated summary of the conversation.

%s

Return JSON with this format:
{
  "summary": "concise narrative summary",
  "key_topics": ["topics discussed"],
  "companies_mentioned": ["ticker symbols"]
}`
)
