// Package client talks to the settings API the way a browser page does:
// identity travels in the userId cookie.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/chennai-a11y/prefsync/internal/domain/preference"
	"github.com/chennai-a11y/prefsync/internal/shared/logger"
	"github.com/chennai-a11y/prefsync/internal/shared/utils"
)

const httpTimeout = 10 * time.Second

// maxResponseBytes caps response bodies read from the server.
const maxResponseBytes = 1 << 20

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("settings api returned %d: %s", e.StatusCode, e.Message)
}

// Ack mirrors the success body of the mutation endpoints.
type Ack struct {
	Success  bool   `json:"success"`
	Message  string `json:"message,omitempty"`
	Language string `json:"language,omitempty"`
}

type Client struct {
	baseURL    string
	userID     string
	httpClient *http.Client
	logger     logger.Interface
}

// New creates a client for baseURL. An empty userID sends no identity.
func New(baseURL, userID string, log logger.Interface) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		userID:  userID,
		httpClient: &http.Client{
			Timeout: httpTimeout,
		},
		logger: log,
	}
}

// GetSettings fetches the stored settings document.
func (c *Client) GetSettings(ctx context.Context) (preference.Document, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/settings", nil)
	if err != nil {
		return nil, err
	}
	return preference.ParseDocument(body)
}

// SaveSettings replaces the stored document with doc.
func (c *Client) SaveSettings(ctx context.Context, doc preference.Document) (*Ack, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/settings", doc)
	if err != nil {
		return nil, err
	}

	var ack Ack
	if err := json.Unmarshal(body, &ack); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &ack, nil
}

func (c *Client) GetTranslations(ctx context.Context, lang string) (map[string]string, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/translations/"+url.PathEscape(lang), nil)
	if err != nil {
		return nil, err
	}

	var dict map[string]string
	if err := json.Unmarshal(body, &dict); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return dict, nil
}

func (c *Client) SetLanguage(ctx context.Context, lang string) (*Ack, error) {
	payload, err := json.Marshal(map[string]string{"language": lang})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	body, err := c.do(ctx, http.MethodPost, "/api/language", payload)
	if err != nil {
		return nil, err
	}

	var ack Ack
	if err := json.Unmarshal(body, &ack); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &ack, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userID != "" {
		req.AddCookie(&http.Cookie{Name: utils.UserIDCookie, Value: c.userID})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody utils.ErrorBody
		_ = json.Unmarshal(body, &errBody)
		c.logger.Debugw("settings api request failed",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
		)
		return nil, &APIError{StatusCode: resp.StatusCode, Message: errBody.Error}
	}

	return body, nil
}
