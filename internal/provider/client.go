package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://openrouter.ai/api/v1"

	// Fixed sampling temperature for both tasks.
	temperature = 0.7
)

// Client talks to an OpenAI-compatible chat-completions endpoint
// (OpenRouter by default). Referer and Title are sent as HTTP-Referer /
// X-Title headers, which OpenRouter uses for traffic attribution.
// The API key is supplied per call, not stored on the client.
type Client struct {
	BaseURL    string
	Referer    string
	Title      string
	HTTPClient *http.Client
}

// NewClient builds a Client with a 60s request timeout.
func NewClient(baseURL, referer, title string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		BaseURL:    baseURL,
		Referer:    referer,
		Title:      title,
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *Client) Name() string { return "openrouter" }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type providerError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete performs one blocking chat-completion call. It never returns a
// Go error: every transport failure, non-2xx status, or malformed body is
// folded into Result{Success:false} with a normalized message.
func (c *Client) Complete(ctx context.Context, key string, req TaskRequest) Result {
	body, err := json.Marshal(chatRequest{
		Model: req.Model,
		Messages: []chatMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.User},
		},
		Temperature: temperature,
	})
	if err != nil {
		return failure(err.Error())
	}

	url := strings.TrimRight(c.BaseURL, "/") + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return failure(err.Error())
	}
	c.setHeaders(httpReq, key)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return failure(normalizeTransport(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return failure(normalizeStatus(resp.StatusCode, readProviderMessage(resp.Body)))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return failure("decode response: " + err.Error())
	}
	if len(chatResp.Choices) == 0 {
		return failure("empty response choices")
	}

	return Result{Success: true, Content: chatResp.Choices[0].Message.Content}
}

func (c *Client) setHeaders(req *http.Request, key string) {
	req.Header.Set("Authorization", "Bearer "+key)
	if c.Referer != "" {
		req.Header.Set("HTTP-Referer", c.Referer)
	}
	if c.Title != "" {
		req.Header.Set("X-Title", c.Title)
	}
}

// readProviderMessage pulls the error message out of an OpenRouter-style
// {"error":{"message":...}} body, falling back to the raw body text.
func readProviderMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return ""
	}
	var pe providerError
	if err := json.Unmarshal(raw, &pe); err == nil && pe.Error.Message != "" {
		return pe.Error.Message
	}
	return strings.TrimSpace(string(raw))
}

func failure(msg string) Result {
	return Result{Success: false, Content: "error: " + msg}
}

// Normalized messages for the fixed error taxonomy.
const (
	msgUnauthorized = "API key invalid or expired"
	msgPayment      = "insufficient account balance"
	msgRateLimited  = "rate limited, retry later"
	msgTimeout      = "request timed out"
)

// normalizeStatus maps a provider status plus message onto the taxonomy.
// Unmatched signals pass the raw message through.
func normalizeStatus(status int, msg string) string {
	lower := strings.ToLower(msg)
	switch {
	case status == http.StatusUnauthorized || strings.Contains(msg, "Unauthorized"):
		return msgUnauthorized
	case status == http.StatusPaymentRequired || strings.Contains(msg, "Payment"):
		return msgPayment
	case status == http.StatusTooManyRequests || strings.Contains(lower, "rate"):
		return msgRateLimited
	case strings.Contains(lower, "timeout"):
		return msgTimeout
	}
	if msg == "" {
		return fmt.Sprintf("unexpected status %d", status)
	}
	return msg
}

// normalizeTransport classifies round-trip errors. Client timeouts and
// context expiry land in the timeout category; everything else passes
// through raw.
func normalizeTransport(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return msgTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return msgTimeout
	}
	if strings.Contains(strings.ToLower(err.Error()), "timeout") {
		return msgTimeout
	}
	return err.Error()
}
