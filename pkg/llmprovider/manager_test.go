package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name       string
	model      string
	shouldFail bool
	response   *Response
	callCount  int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	if m.shouldFail {
		return nil, errors.New("mock provider error")
	}
	return m.response, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Model() string {
	return m.model
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.infoMessages = append(m.infoMessages, msg)
		}
	}
}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.warnMessages = append(m.warnMessages, msg)
		}
	}
}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {}

func newTestResponse(provider, text string) *Response {
	return &Response{
		Content: Message{
			Role:  "assistant",
			Parts: []Part{{Text: text}},
		},
		ProviderName: provider,
		Usage: &Usage{
			InputTokens:  100,
			OutputTokens: 50,
			TotalTokens:  150,
		},
	}
}

func TestGenerateContent_SuccessWithPrimaryProvider(t *testing.T) {
	primary := &mockProvider{
		name:     "primary",
		model:    "primary-model",
		response: newTestResponse("primary", "Hello from primary provider"),
	}

	manager := NewManager([]Provider{primary}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   3,
		RetryDelay:      10 * time.Millisecond,
	}, &mockLogger{})

	resp, err := manager.GenerateContent(context.Background(), &Request{
		Messages: []Message{{Role: "user", Parts: []Part{{Text: "Hello"}}}},
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "primary" {
		t.Errorf("Expected primary provider, got: %s", resp.ProviderName)
	}
	if primary.callCount != 1 {
		t.Errorf("Expected 1 call, got: %d", primary.callCount)
	}
}

func TestGenerateContent_FallbackToSecondary(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "m1", shouldFail: true}
	secondary := &mockProvider{
		name:     "secondary",
		model:    "m2",
		response: newTestResponse("secondary", "Hello from secondary"),
	}

	logger := &mockLogger{}
	manager := NewManager([]Provider{primary, secondary}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      time.Millisecond,
	}, logger)

	resp, err := manager.GenerateContent(context.Background(), &Request{
		Messages: []Message{{Role: "user", Parts: []Part{{Text: "Hello"}}}},
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "secondary" {
		t.Errorf("Expected secondary provider, got: %s", resp.ProviderName)
	}
	if primary.callCount != 2 {
		t.Errorf("Expected primary to be retried twice, got: %d", primary.callCount)
	}
	if len(logger.warnMessages) == 0 {
		t.Errorf("Expected failure to be logged")
	}
}

func TestGenerateContent_AllProvidersFail(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "m1", shouldFail: true}
	secondary := &mockProvider{name: "secondary", model: "m2", shouldFail: true}

	manager := NewManager([]Provider{primary, secondary}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   1,
	}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), &Request{})
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Fatalf("Expected ErrAllProvidersFailed, got: %v", err)
	}
}

func TestGenerateContent_FallbackDisabled(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "m1", shouldFail: true}
	secondary := &mockProvider{
		name:     "secondary",
		model:    "m2",
		response: newTestResponse("secondary", "should not be reached"),
	}

	manager := NewManager([]Provider{primary, secondary}, &Config{
		FallbackEnabled: false,
		RetryAttempts:   1,
	}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), &Request{})
	if err == nil {
		t.Fatal("Expected error when primary fails and fallback is disabled")
	}
	if secondary.callCount != 0 {
		t.Errorf("Expected secondary to never be called, got: %d", secondary.callCount)
	}
}

func TestGenerateContent_ZeroRetryAttemptsClamped(t *testing.T) {
	primary := &mockProvider{
		name:     "primary",
		model:    "m1",
		response: newTestResponse("primary", "still answered"),
	}

	manager := NewManager([]Provider{primary}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   0,
	}, &mockLogger{})

	resp, err := manager.GenerateContent(context.Background(), &Request{
		Messages: []Message{{Role: "user", Parts: []Part{{Text: "Hello"}}}},
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp == nil {
		t.Fatal("Expected a response, got nil")
	}
	if primary.callCount != 1 {
		t.Errorf("Expected exactly 1 call, got: %d", primary.callCount)
	}
}

func TestGenerateContent_NoProviders(t *testing.T) {
	manager := NewManager(nil, &Config{}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), &Request{})
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Fatalf("Expected ErrNoProvidersConfigured, got: %v", err)
	}
}

func TestResponse_Text(t *testing.T) {
	resp := &Response{
		Content: Message{
			Parts: []Part{
				{Text: "part one "},
				{Text: "part two"},
				{FunctionCall: &FunctionCall{Name: "ignored"}},
			},
		},
	}
	if got := resp.Text(); got != "part one part two" {
		t.Errorf("unexpected text: %q", got)
	}
}

func TestResponse_FunctionCalls(t *testing.T) {
	resp := &Response{
		Content: Message{
			Parts: []Part{
				{Text: "thinking"},
				{FunctionCall: &FunctionCall{Name: "search_symbol", Args: map[string]interface{}{"query": "Apple"}}},
			},
		},
	}
	calls := resp.FunctionCalls()
	if len(calls) != 1 || calls[0].Name != "search_symbol" {
		t.Fatalf("unexpected calls: %+v", calls)
	}
}
