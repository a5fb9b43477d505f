package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/talksense/pkg/config"
)

// SentimentResult is one raw classifier verdict. Labels arrive in whatever
// format the serving model emits (POSITIVE, negative, "4 stars", ...);
// normalisation happens downstream.
type SentimentResult struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// sentimentRequest is the batch payload for the classifier endpoint
type sentimentRequest struct {
	Texts []string `json:"texts"`
}

// SentimentClient calls an external sentiment classifier over HTTP. One
// conversation is classified in a single batched request.
type SentimentClient struct {
	endpoint string
	client   *http.Client
	logger   *zap.Logger
}

// NewSentimentClient creates a sentiment client. Returns nil when no
// endpoint is configured; callers treat a nil client as neutral-only mode.
func NewSentimentClient(cfg *config.SentimentConfig, logger *zap.Logger) *SentimentClient {
	if cfg == nil || cfg.Endpoint == "" {
		if logger != nil {
			logger.Warn("⚠️ Sentiment endpoint not configured, analysis runs in neutral-only mode")
		}
		return nil
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &SentimentClient{
		endpoint: cfg.Endpoint,
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

// ClassifyBatch classifies all texts in one request, with retry. The result
// slice is index-aligned with the input.
func (c *SentimentClient) ClassifyBatch(ctx context.Context, texts []string) ([]SentimentResult, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	body, err := json.Marshal(sentimentRequest{Texts: texts})
	if err != nil {
		return nil, err
	}

	var results []SentimentResult
	classifyFn := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			return fmt.Errorf("sentiment request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return fmt.Errorf("sentiment classifier returned status %d", resp.StatusCode)
		}
		if resp.StatusCode >= 400 {
			return backoff.Permanent(fmt.Errorf("sentiment classifier returned status %d", resp.StatusCode))
		}

		results = results[:0]
		if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
			return backoff.Permanent(fmt.Errorf("failed to decode sentiment response: %w", err))
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 1 * time.Second
	bo.MaxElapsedTime = 20 * time.Second
	bo.MaxInterval = 5 * time.Second

	if err := backoff.Retry(classifyFn, backoff.WithContext(bo, ctx)); err != nil {
		return nil, err
	}

	if len(results) != len(texts) {
		return nil, fmt.Errorf("sentiment batch mismatch: sent %d, received %d", len(texts), len(results))
	}

	if c.logger != nil {
		c.logger.Info("✅ Sentiment batch classified",
			zap.Int("count", len(results)),
		)
	}
	return results, nil
}
