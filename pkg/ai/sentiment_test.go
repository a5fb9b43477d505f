package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/johnquangdev/talksense/pkg/config"
)

func TestClassifyBatch_Success(t *testing.T) {
	// Mock classifier server
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		var payload sentimentRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if len(payload.Texts) != 2 {
			t.Fatalf("expected 2 texts, got %d", len(payload.Texts))
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode([]SentimentResult{
			{Label: "POSITIVE", Score: 0.91},
			{Label: "NEGATIVE", Score: 0.84},
		})
	}))
	defer ts.Close()

	client := NewSentimentClient(&config.SentimentConfig{Endpoint: ts.URL, Timeout: 5 * time.Second}, nil)
	if client == nil {
		t.Fatal("expected a client for a configured endpoint")
	}

	results, err := client.ClassifyBatch(context.Background(), []string{"great demo", "bad outage"})
	if err != nil {
		t.Fatalf("ClassifyBatch failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Label != "POSITIVE" || results[0].Score != 0.91 {
		t.Fatalf("unexpected first result %+v", results[0])
	}
}

func TestClassifyBatch_ClientErrorIsPermanent(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer ts.Close()

	client := NewSentimentClient(&config.SentimentConfig{Endpoint: ts.URL, Timeout: 5 * time.Second}, nil)
	if _, err := client.ClassifyBatch(context.Background(), []string{"some text"}); err == nil {
		t.Fatal("expected an error on 400")
	}
	if calls != 1 {
		t.Fatalf("4xx must not be retried, got %d calls", calls)
	}
}

func TestClassifyBatch_ServerErrorRetries(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode([]SentimentResult{{Label: "NEUTRAL", Score: 0.5}})
	}))
	defer ts.Close()

	client := NewSentimentClient(&config.SentimentConfig{Endpoint: ts.URL, Timeout: 5 * time.Second}, nil)
	results, err := client.ClassifyBatch(context.Background(), []string{"some text"})
	if err != nil {
		t.Fatalf("ClassifyBatch failed after retry: %v", err)
	}
	if calls < 2 {
		t.Fatalf("5xx must be retried, got %d calls", calls)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
}

func TestClassifyBatch_LengthMismatch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]SentimentResult{{Label: "NEUTRAL", Score: 0.5}})
	}))
	defer ts.Close()

	client := NewSentimentClient(&config.SentimentConfig{Endpoint: ts.URL, Timeout: 5 * time.Second}, nil)
	if _, err := client.ClassifyBatch(context.Background(), []string{"one", "two"}); err == nil {
		t.Fatal("expected an error on batch size mismatch")
	}
}

func TestClassifyBatch_EmptyInput(t *testing.T) {
	client := NewSentimentClient(&config.SentimentConfig{Endpoint: "http://localhost:1", Timeout: time.Second}, nil)
	results, err := client.ClassifyBatch(context.Background(), nil)
	if err != nil || results != nil {
		t.Fatalf("empty input is a no-op, got %v / %v", results, err)
	}
}

func TestNewSentimentClient_NoEndpoint(t *testing.T) {
	if client := NewSentimentClient(&config.SentimentConfig{}, nil); client != nil {
		t.Fatal("missing endpoint must yield a nil client")
	}
	if client := NewSentimentClient(nil, nil); client != nil {
		t.Fatal("nil config must yield a nil client")
	}
}
