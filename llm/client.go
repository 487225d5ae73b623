// Package llm provides the sentence-semantics client: given sentence text,
// a chat-completion model returns sentiment, tense, a short summary, a
// grade-level estimate, rhetorical devices, and numbered semantic-category
// assignments. Failures degrade to empty results; the engine treats a
// failed call as a lookup miss, never as a processing error.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"time"
)

// maxResponseSize limits the response body to prevent memory exhaustion.
const maxResponseSize = 10 * 1024 * 1024 // 10MB

// Client is a chat-completion client with retry and backoff.
type Client struct {
	url         string
	apiKey      string
	model       string
	httpClient  *http.Client
	retryConfig RetryConfig
	logger      *slog.Logger
}

// Message is one chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) { client.httpClient = c }
}

// WithRetryConfig sets the retry configuration.
func WithRetryConfig(cfg RetryConfig) Option {
	return func(client *Client) { client.retryConfig = cfg }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(client *Client) { client.logger = logger }
}

// NewClient creates a client for an OpenAI-compatible chat endpoint.
func NewClient(url, apiKey, model string, opts ...Option) *Client {
	c := &Client{
		url:         url,
		apiKey:      apiKey,
		model:       model,
		retryConfig: DefaultRetryConfig(),
		httpClient: &http.Client{
			Timeout: 180 * time.Second,
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Complete sends a completion request with retry and backoff and returns
// the generated text.
func (c *Client) Complete(ctx context.Context, messages []Message) (string, error) {
	if len(messages) == 0 {
		return "", fmt.Errorf("at least one message is required")
	}

	var lastErr error
	for attempt := 1; attempt <= c.retryConfig.MaxAttempts; attempt++ {
		content, err := c.doRequest(ctx, messages)
		if err == nil {
			return content, nil
		}
		lastErr = err

		if IsFatal(err) {
			return "", err
		}
		if attempt < c.retryConfig.MaxAttempts {
			backoff := c.calculateBackoff(attempt)
			c.logger.Debug("completion failed, retrying",
				"attempt", attempt,
				"max_attempts", c.retryConfig.MaxAttempts,
				"backoff", backoff,
				"error", err)
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
		}
	}
	return "", fmt.Errorf("completion failed after %d attempts: %w", c.retryConfig.MaxAttempts, lastErr)
}

// calculateBackoff computes exponential backoff with jitter. Jitter
// prevents synchronized retries from multiple processes.
func (c *Client) calculateBackoff(attempt int) time.Duration {
	multiplier := 1.0
	for i := 1; i < attempt; i++ {
		multiplier *= c.retryConfig.BackoffMultiplier
	}
	backoff := time.Duration(float64(c.retryConfig.BackoffBase) * multiplier)
	if backoff > c.retryConfig.MaxBackoff {
		backoff = c.retryConfig.MaxBackoff
	}
	jitter := float64(backoff) * 0.25 * (rand.Float64()*2 - 1)
	return backoff + time.Duration(jitter)
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// doRequest executes a single HTTP request to the completion endpoint.
func (c *Client) doRequest(ctx context.Context, messages []Message) (string, error) {
	body, err := json.Marshal(chatRequest{Model: c.model, Messages: messages})
	if err != nil {
		return "", NewFatalError(fmt.Errorf("marshal request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", NewFatalError(fmt.Errorf("create HTTP request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", NewTransientError(fmt.Errorf("HTTP request failed: %w", err))
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseSize))
	if err != nil {
		return "", NewTransientError(fmt.Errorf("read response body: %w", err))
	}
	if httpResp.StatusCode != http.StatusOK {
		return "", classifyHTTPError(httpResp.StatusCode, respBody)
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", NewTransientError(fmt.Errorf("parse response: %w", err))
	}
	if len(parsed.Choices) == 0 {
		return "", NewTransientError(fmt.Errorf("empty completion response"))
	}
	return parsed.Choices[0].Message.Content, nil
}

// classifyHTTPError sorts an HTTP error into transient or fatal.
func classifyHTTPError(statusCode int, body []byte) error {
	bodyStr := string(body)
	if len(bodyStr) > 200 {
		bodyStr = bodyStr[:200] + "..."
	}
	err := fmt.Errorf("completion API error (status %d): %s", statusCode, bodyStr)

	switch {
	case statusCode == http.StatusTooManyRequests:
		return NewTransientError(err)
	case statusCode >= 500:
		return NewTransientError(err)
	case statusCode == http.StatusUnauthorized, statusCode == http.StatusForbidden:
		return NewFatalError(err)
	default:
		return NewFatalError(err)
	}
}
