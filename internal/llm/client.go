package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const systemPrompt = "You are a helpful, accurate, and concise AI assistant."

// Client talks to the local OpenAI-compatible inference server.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates an inference client. The timeout covers the whole
// completion round trip; a timeout surfaces as a generation failure.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

var _ Generator = (*Client)(nil)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
	TopP        float64       `json:"top_p,omitempty"`
	TopK        int           `json:"top_k,omitempty"`
	Stop        []string      `json:"stop,omitempty"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Generate sends a non-streaming chat completion request.
func (c *Client) Generate(ctx context.Context, message string, spec ModelSpec) (string, error) {
	body, err := json.Marshal(completionRequest{
		Model: spec.Name,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: message},
		},
		MaxTokens:   spec.MaxTokens,
		Temperature: spec.Temperature,
		TopP:        spec.TopP,
		TopK:        spec.TopK,
		Stop:        spec.Stop,
	})
	if err != nil {
		return "", fmt.Errorf("marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send completion request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read completion response: %w", err)
	}

	var result completionResponse
	if resp.StatusCode != http.StatusOK {
		if err := json.Unmarshal(respBody, &result); err == nil && result.Error != nil {
			return "", fmt.Errorf("inference error [%d]: %s (type: %s)", resp.StatusCode, result.Error.Message, result.Error.Type)
		}
		return "", fmt.Errorf("inference error [%d]: %s", resp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("unmarshal completion response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("inference returned no choices")
	}

	return strings.TrimSpace(result.Choices[0].Message.Content), nil
}
