package deepseek_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"financial-assistant/pkg/deepseek"
)

func TestGenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-deepseek-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"invalid api key"}}`))
			return
		}

		var req deepseek.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if req.Model == "" {
			t.Errorf("expected model to be filled in")
		}

		w.Write([]byte(`{
			"id": "chatcmpl-123",
			"model": "deepseek-chat",
			"choices": [
				{ "index": 0, "message": { "role": "assistant", "content": "mocked reply" }, "finish_reason": "stop" }
			],
			"usage": { "prompt_tokens": 12, "completion_tokens": 4, "total_tokens": 16 }
		}`))
	}))
	defer ts.Close()

	client, err := deepseek.New(deepseek.Config{
		APIKey:  "test-deepseek-key",
		BaseURL: ts.URL,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &deepseek.Request{
			Messages: []deepseek.Message{{Role: "user", Content: "Hello"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Choices) != 1 || resp.Choices[0].Message.Content != "mocked reply" {
			t.Fatalf("unexpected response: %+v", resp)
		}
		if resp.Usage.TotalTokens != 16 {
			t.Errorf("unexpected usage: %+v", resp.Usage)
		}
	})

	t.Run("Unauthorized Error Flow", func(t *testing.T) {
		badClient, _ := deepseek.New(deepseek.Config{APIKey: "bad-key", BaseURL: ts.URL})
		_, err := badClient.GenerateContent(context.Background(), &deepseek.Request{
			Messages: []deepseek.Message{{Role: "user", Content: "Hello"}},
		})
		if err == nil {
			t.Fatalf("expected error from 401 response")
		}
	})
}

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := deepseek.New(deepseek.Config{}); err == nil {
		t.Fatal("expected error for missing API key")
	}
}
