// ABOUTME: Ollama client for local LLM completions via the /api/generate endpoint
// ABOUTME: Serves as the secondary strategy when the hosted provider is unavailable
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// OllamaClient talks to a local Ollama server
type OllamaClient struct {
	httpClient *http.Client
	baseURL    string
	model      string
}

// ollamaGenerateRequest is the /api/generate request body
type ollamaGenerateRequest struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options,omitempty"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

// ollamaGenerateResponse is the non-streaming /api/generate response body
type ollamaGenerateResponse struct {
	Model           string `json:"model"`
	Response        string `json:"response"`
	Done            bool   `json:"done"`
	PromptEvalCount int    `json:"prompt_eval_count,omitempty"`
	EvalCount       int    `json:"eval_count,omitempty"`
}

// NewOllamaClient creates a client for the Ollama server at baseURL.
// No connection test happens here; an unreachable server surfaces as an
// ordinary strategy failure at call time.
func NewOllamaClient(baseURL, model string) *OllamaClient {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if model == "" {
		model = "phi"
	}
	return &OllamaClient{
		httpClient: &http.Client{Timeout: 2 * time.Minute},
		baseURL:    baseURL,
		model:      model,
	}
}

// Complete satisfies the pipeline's completion interface by folding the
// system prompt into a single /api/generate prompt. Ollama's generate
// endpoint has no separate system role for all models, so inline framing is
// the portable form.
func (c *OllamaClient) Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float32) (string, int, error) {
	prompt := systemPrompt + "\n\n" + userPrompt
	return c.Generate(ctx, prompt, float64(temperature), 256)
}

// Generate sends a single prompt and returns the response text plus the token
// count (prompt + completion) reported by the server.
func (c *OllamaClient) Generate(ctx context.Context, prompt string, temperature float64, numPredict int) (string, int, error) {
	body, err := json.Marshal(ollamaGenerateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
		Options: ollamaOptions{
			Temperature: temperature,
			NumPredict:  numPredict,
		},
	})
	if err != nil {
		return "", 0, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", 0, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("calling ollama: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", 0, fmt.Errorf("ollama HTTP %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, fmt.Errorf("reading response: %w", err)
	}

	var out ollamaGenerateResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return "", 0, fmt.Errorf("decoding response: %w", err)
	}

	return out.Response, out.PromptEvalCount + out.EvalCount, nil
}
