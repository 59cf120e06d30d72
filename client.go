package tlt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client handles HTTP communication with the PyThaiNLP sidecar service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an HTTP client for the sidecar service.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// ServiceError represents an error returned by the sidecar service.
type ServiceError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (e ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// serviceResponse is the common response envelope from all endpoints.
type serviceResponse struct {
	Data     json.RawMessage        `json:"data"`
	Metadata map[string]interface{} `json:"metadata"`
	Error    *ServiceError          `json:"error"`
}

// doRequest performs an HTTP request and unwraps the response envelope.
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}) (*serviceResponse, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var envelope serviceResponse
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if envelope.Error != nil {
		return nil, envelope.Error
	}

	return &envelope, nil
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status  string              `json:"status"`
	Version string              `json:"version"`
	Engines map[string][]string `json:"engines"`
}

// Health checks the service health status.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	// Health endpoint returns plain JSON, not wrapped
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var health HealthResponse
	if err := json.Unmarshal(body, &health); err != nil {
		return nil, fmt.Errorf("failed to parse health response: %w", err)
	}

	return &health, nil
}

// Tokenize segments text into word tokens.
func (c *Client) Tokenize(ctx context.Context, text, engine string) ([]string, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/tokenize", map[string]string{
		"text":   text,
		"engine": engine,
	})
	if err != nil {
		return nil, err
	}

	var data struct {
		Tokens []string `json:"tokens"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return nil, fmt.Errorf("failed to parse tokenize response: %w", err)
	}
	return data.Tokens, nil
}

// TagPOS tags a token sequence, returning tags aligned with the input.
func (c *Client) TagPOS(ctx context.Context, words []string, engine string) ([]string, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/pos", map[string]interface{}{
		"words":  words,
		"engine": engine,
	})
	if err != nil {
		return nil, err
	}

	var data struct {
		Tags []string `json:"tags"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return nil, fmt.Errorf("failed to parse pos response: %w", err)
	}
	return data.Tags, nil
}

// Romanize romanizes text under a named scheme.
func (c *Client) Romanize(ctx context.Context, text, scheme string) (string, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/romanize", map[string]string{
		"text":   text,
		"engine": scheme,
	})
	if err != nil {
		return "", err
	}

	var data struct {
		Romanized string `json:"romanized"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return "", fmt.Errorf("failed to parse romanize response: %w", err)
	}
	return data.Romanized, nil
}

// Translate translates text between languages. Only available when the
// sidecar runs with full requirements; otherwise the service reports a
// translation-unavailable error.
func (c *Client) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/translate", map[string]string{
		"text":   text,
		"source": sourceLang,
		"target": targetLang,
	})
	if err != nil {
		return "", err
	}

	var data struct {
		Translated string `json:"translated"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return "", fmt.Errorf("failed to parse translate response: %w", err)
	}
	return data.Translated, nil
}

// Stopwords fetches the Thai stopword list.
func (c *Client) Stopwords(ctx context.Context) ([]string, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/stopwords", nil)
	if err != nil {
		return nil, err
	}

	var data struct {
		Stopwords []string `json:"stopwords"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return nil, fmt.Errorf("failed to parse stopwords response: %w", err)
	}
	return data.Stopwords, nil
}
