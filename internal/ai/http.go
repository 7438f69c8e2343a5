package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/incidentdesk/backend/internal/models"
)

// HTTPAdapter delegates to a standalone analysis service exposing
// POST {BaseURL}/analyze and replying with the analysis JSON object.
type HTTPAdapter struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

type analyzeRequestBody struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ReportedBy  string `json:"reportedBy,omitempty"`
}

func (h HTTPAdapter) AnalyzeTicket(ctx context.Context, req models.AnalysisRequest) (models.AnalysisResult, error) {
	if strings.TrimSpace(h.BaseURL) == "" {
		return models.AnalysisResult{}, ErrNoRemote
	}
	client := h.Client
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}

	b, err := json.Marshal(analyzeRequestBody{
		Title:       req.TicketTitle,
		Description: req.TicketDescription,
		Category:    req.Category,
		ReportedBy:  req.ReportedBy,
	})
	if err != nil {
		return models.AnalysisResult{}, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(h.BaseURL, "/")+"/analyze", bytes.NewReader(b))
	if err != nil {
		return models.AnalysisResult{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if strings.TrimSpace(h.APIKey) != "" {
		httpReq.Header.Set("Authorization", "Bearer "+h.APIKey)
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return models.AnalysisResult{}, fmt.Errorf("analysis service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return models.AnalysisResult{}, fmt.Errorf("analysis service error: %s", resp.Status)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return models.AnalysisResult{}, err
	}
	return ParseReply(string(body))
}
