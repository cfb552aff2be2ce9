// Package llm implements the translation provider against the Google
// Gemini API.
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

	"ident-translator/internal/session"

	"github.com/rs/zerolog/log"
)

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// Client handles translation requests via the Gemini API. It implements
// session.Provider.
type Client struct {
	apiKey     string
	model      string
	httpClient *http.Client
	refTerms   map[string]string
}

// NewClient creates a Gemini translation client.
func NewClient(apiKey, model string) *Client {
	return &Client{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// SetReferenceTerms supplies already-translated vocabulary terms to be
// quoted in prompts for consistency.
func (c *Client) SetReferenceTerms(terms map[string]string) {
	c.refTerms = terms
}

// --- Gemini API request/response types ---

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"systemInstruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  *genConfig      `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type genConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
	Temperature     float64 `json:"temperature,omitempty"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
	Error      *geminiError      `json:"error,omitempty"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}

type geminiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// TranslateBatch translates a batch of identifier tokens in one API
// call. Tokens missing from the response are returned with empty
// translations; the caller decides the fallback.
func (c *Client) TranslateBatch(ctx context.Context, targetLang string, tokens []string) ([]session.Pair, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	response, err := c.generate(ctx, buildSystemPrompt(targetLang), buildBatchPrompt(tokens, c.refTerms))
	if err != nil {
		return nil, err
	}

	parts := strings.Split(response, "|||")
	pairs := make([]session.Pair, len(tokens))
	for i, token := range tokens {
		pairs[i] = session.Pair{Original: token}
		if i < len(parts) {
			pairs[i].Translated = strings.TrimSpace(parts[i])
		}
	}
	return pairs, nil
}

// generate sends one request with retry and backoff.
func (c *Client) generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	reqBody := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: systemPrompt}},
		},
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: userPrompt}}},
		},
		GenerationConfig: &genConfig{
			MaxOutputTokens: 4096,
			Temperature:     0.2,
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal translation request: %w", err)
	}

	var lastErr error
	maxRetries := 3

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt*2) * time.Second
			log.Warn().Int("attempt", attempt+1).Dur("backoff", backoff).Msg("Retrying translation")
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
		}

		result, err := c.doRequest(ctx, bodyBytes)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return "", ctx.Err()
		}
	}

	return "", fmt.Errorf("translation failed after %d retries: %w", maxRetries, lastErr)
}

func (c *Client) doRequest(ctx context.Context, bodyBytes []byte) (string, error) {
	url := fmt.Sprintf("%s/%s:generateContent?key=%s", geminiBaseURL, c.model, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("API call: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return "", fmt.Errorf("retryable error (status %d): %s", resp.StatusCode, string(respBody))
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var apiResp geminiResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if apiResp.Error != nil {
		return "", fmt.Errorf("API error [%s]: %s", apiResp.Error.Status, apiResp.Error.Message)
	}
	if len(apiResp.Candidates) == 0 {
		return "", fmt.Errorf("empty response: no candidates")
	}

	var result strings.Builder
	for _, p := range apiResp.Candidates[0].Content.Parts {
		result.WriteString(p.Text)
	}
	return strings.TrimSpace(result.String()), nil
}
