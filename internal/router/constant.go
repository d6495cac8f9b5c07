package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Router prompts
const (
	PromptRouterSystem = `You are a financial request router. Analyze the user message and classify it into exactly one category.

User message: "%s"

Conversation context:
%s

Categories:
1. income_statement: revenue, profit, earnings, income statement questions about a specific company
2. company_financials: ratios, valuation metrics, fundamentals questions about a specific company
3. stock_price: current price, quote, market performance questions about a specific company
4. report: broad analysis requests about a company ("tell me about", "analyze", "full picture")
5. chat: greetings, educational questions, or anything not tied to fetching data for one company

Return JSON with this format:
{
  "category": "income_statement|company_financials|stock_price|report|chat",
  "confidence": 0.0-1.0,
  "reasoning": "Brief explanation"
}`
)

// Router configuration
const (
	RouterTemperature        = 0.1
	RouterFallbackConfidence = 0.5
)

// Error messages
const (
	ErrMsgLLMCallFailed   = "LLM call failed, falling back to chat"
	ErrMsgJSONParseFailed = "Failed to parse JSON, falling back to chat"
	ErrMsgEmptyResponse   = "Empty LLM response, falling back to chat"
)

// Fallback reasons
const (
	ReasonLLMFailure    = "Fallback due to LLM failure - route to conversational agent"
	ReasonParsingError  = "Fallback due to parsing error - route to conversational agent"
	ReasonEmptyResponse = "Fallback due to empty response"
)
