package generation

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

// Config holds the configuration for the Ollama client
type Config struct {
	BaseURL string
	Model   string
	Timeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		BaseURL: "http://localhost:11434",
		Model:   "codellama:7b",
		Timeout: 120 * time.Second,
	}
}

// Client is the HTTP client for the Ollama generation server
type Client struct {
	httpClient *http.Client
	config     Config
}

// NewClient creates a new Ollama client
func NewClient(config Config) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		config: Config{
			BaseURL: strings.TrimSuffix(config.BaseURL, "/"),
			Model:   config.Model,
			Timeout: config.Timeout,
		},
	}
}

// Model returns the model name the client generates with
func (c *Client) Model() string {
	return c.config.Model
}

// Ping calls GET /api/tags to verify the server is up and reports whether
// the configured model is pulled.
func (c *Client) Ping(ctx context.Context) error {
	var tags tagsResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/tags", nil, &tags); err != nil {
		return fmt.Errorf("%w: %v", ErrOllamaUnavailable, err)
	}

	for _, m := range tags.Models {
		if m.Name == c.config.Model {
			return nil
		}
	}
	return fmt.Errorf("%w: model %q is not pulled", ErrOllamaUnavailable, c.config.Model)
}

// Generate calls POST /api/generate with a non-streaming completion request
func (c *Client) Generate(ctx context.Context, prompt, system string, maxTokens int, temperature float64) (*generateResponse, error) {
	req := generateRequest{
		Model:  c.config.Model,
		Prompt: prompt,
		System: system,
		Stream: false,
		Options: generateOptions{
			NumPredict:  maxTokens,
			Temperature: temperature,
			TopP:        0.9,
		},
	}

	var resp generateResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/generate", req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// doRequest executes a single HTTP request
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	url := c.config.BaseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOllamaUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 500 {
		return fmt.Errorf("%w: status %d: %s", ErrOllamaUnavailable, resp.StatusCode, string(respBody))
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("ollama returned status %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}
	}

	return nil
}
