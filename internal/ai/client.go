// Package ai is a thin client for the Anthropic messages API, used for
// theme proposal, tag assignment, and vision-based photo renaming.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

const (
	endpoint   = "https://api.anthropic.com/v1/messages"
	apiVersion = "2023-06-01"
	maxRetries = 3
)

// Client issues requests against a single model.
type Client struct {
	httpClient *http.Client
	apiKey     string
	model      string
}

// New builds a client. The API key comes from the caller (loaded from the
// environment or .env by the CLI layer).
func New(apiKey, model string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		apiKey:     apiKey,
		model:      model,
	}
}

// ContentBlock is one element of a user message: either text or a
// base64-encoded image.
type ContentBlock struct {
	Type   string       `json:"type"`
	Text   string       `json:"text,omitempty"`
	Source *ImageSource `json:"source,omitempty"`
}

// ImageSource is the base64 image payload form.
type ImageSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

// TextBlock builds a text content block.
func TextBlock(text string) ContentBlock {
	return ContentBlock{Type: "text", Text: text}
}

// ImageBlock builds a base64 image content block.
func ImageBlock(mediaType, data string) ContentBlock {
	return ContentBlock{Type: "image", Source: &ImageSource{
		Type:      "base64",
		MediaType: mediaType,
		Data:      data,
	}}
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string         `json:"role"`
	Content []ContentBlock `json:"content"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends a single user message and returns the model's text reply.
// 429 responses are retried with exponential backoff, honoring Retry-After.
func (c *Client) Complete(ctx context.Context, maxTokens int, content []ContentBlock) (string, error) {
	body, err := json.Marshal(messagesRequest{
		Model:     c.model,
		MaxTokens: maxTokens,
		Messages:  []message{{Role: "user", Content: content}},
	})
	if err != nil {
		return "", err
	}

	for i := 0; i <= maxRetries; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
		if err != nil {
			return "", err
		}
		req.Header.Set("x-api-key", c.apiKey)
		req.Header.Set("anthropic-version", apiVersion)
		req.Header.Set("content-type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return "", err
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			_ = resp.Body.Close()
			if i == maxRetries {
				return "", fmt.Errorf("anthropic: rate limit exceeded after retries")
			}

			// Default wait 2s, or respect Retry-After.
			wait := 2 * time.Second
			if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
				if seconds, err := strconv.Atoi(retryAfter); err == nil {
					wait = time.Duration(seconds) * time.Second
				}
			}

			select {
			case <-time.After(wait * time.Duration(1<<i)):
				continue
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		data, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err != nil {
			return "", err
		}

		var parsed messagesResponse
		if err := json.Unmarshal(data, &parsed); err != nil {
			return "", fmt.Errorf("anthropic: parse response: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			if parsed.Error != nil {
				return "", fmt.Errorf("anthropic: %s: %s", parsed.Error.Type, parsed.Error.Message)
			}
			return "", fmt.Errorf("anthropic: unexpected status %d", resp.StatusCode)
		}
		for _, block := range parsed.Content {
			if block.Type == "text" {
				return block.Text, nil
			}
		}
		return "", fmt.Errorf("anthropic: no text content in response")
	}
	return "", fmt.Errorf("anthropic: request failed after retries")
}
