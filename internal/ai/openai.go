package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/incidentdesk/backend/internal/models"
)

const defaultOpenAIModel = "gpt-3.5-turbo"

// OpenAIAdapter talks to any OpenAI-compatible /chat/completions endpoint.
type OpenAIAdapter struct {
	BaseURL   string
	Model     string
	APIKey    string
	MaxTokens int
	Client    *http.Client
	CacheTTL  time.Duration

	mu    sync.Mutex
	cache map[string]cacheEntry
}

type cacheEntry struct {
	value models.AnalysisResult
	exp   time.Time
}

type RateLimitError struct {
	RetryAfter time.Duration
}

func (r RateLimitError) Error() string {
	if r.RetryAfter > 0 {
		return fmt.Sprintf("rate limited, retry after %s", r.RetryAfter)
	}
	return "rate limited"
}

func (a *OpenAIAdapter) AnalyzeTicket(ctx context.Context, req models.AnalysisRequest) (models.AnalysisResult, error) {
	if strings.TrimSpace(a.BaseURL) == "" || strings.TrimSpace(a.APIKey) == "" {
		return models.AnalysisResult{}, ErrNoRemote
	}
	model := a.Model
	if strings.TrimSpace(model) == "" {
		model = defaultOpenAIModel
	}
	maxTokens := a.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 1000
	}

	prompt := BuildPrompt(req)
	if v, ok := a.cacheGet(prompt); ok {
		return v, nil
	}

	type msg struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}
	payload := struct {
		Model       string  `json:"model"`
		Temperature float64 `json:"temperature"`
		MaxTokens   int     `json:"max_tokens"`
		Messages    []msg   `json:"messages"`
	}{
		Model:       model,
		Temperature: 0.3,
		MaxTokens:   maxTokens,
		Messages: []msg{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return models.AnalysisResult{}, err
	}
	url := strings.TrimRight(a.BaseURL, "/") + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return models.AnalysisResult{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+a.APIKey)

	client := a.Client
	if client == nil {
		client = &http.Client{Timeout: 45 * time.Second}
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return models.AnalysisResult{}, fmt.Errorf("analyzer request timed out: %w", err)
		}
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return models.AnalysisResult{}, fmt.Errorf("analyzer request timed out: %w", err)
		}
		return models.AnalysisResult{}, fmt.Errorf("analyzer request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errBody map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		if resp.StatusCode == http.StatusTooManyRequests {
			return models.AnalysisResult{}, RateLimitError{RetryAfter: retryAfter(resp.Header.Get("Retry-After"))}
		}
		return models.AnalysisResult{}, fmt.Errorf("analyzer http error: %s: %v", resp.Status, errBody)
	}

	var res struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return models.AnalysisResult{}, fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}
	if len(res.Choices) == 0 {
		return models.AnalysisResult{}, fmt.Errorf("%w: no choices", ErrMalformedReply)
	}
	analysis, err := ParseReply(res.Choices[0].Message.Content)
	if err != nil {
		return models.AnalysisResult{}, err
	}
	a.cacheSet(prompt, analysis)
	return analysis, nil
}

func (a *OpenAIAdapter) cacheGet(key string) (models.AnalysisResult, bool) {
	if a.CacheTTL <= 0 {
		return models.AnalysisResult{}, false
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if e, ok := a.cache[key]; ok {
		if time.Now().Before(e.exp) {
			return e.value, true
		}
		delete(a.cache, key)
	}
	return models.AnalysisResult{}, false
}

func (a *OpenAIAdapter) cacheSet(key string, value models.AnalysisResult) {
	if a.CacheTTL <= 0 {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cache == nil {
		a.cache = map[string]cacheEntry{}
	}
	a.cache[key] = cacheEntry{value: value, exp: time.Now().Add(a.CacheTTL)}
}

func retryAfter(header string) time.Duration {
	header = strings.TrimSpace(header)
	if header == "" {
		return 0
	}
	if d, err := time.ParseDuration(header + "s"); err == nil {
		return d
	}
	return 0
}
