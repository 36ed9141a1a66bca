package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/spec-kit/insighta-backoffice/internal/config"
	apperrors "github.com/spec-kit/insighta-backoffice/pkg/util"
)

// NLPService forwards prompts to the upstream language-analysis service.
// The request and response bodies pass through unchanged.
type NLPService struct {
	baseURL string
	client  *http.Client
}

// NLPResult is the upstream response shape.
type NLPResult struct {
	Output string `json:"output"`
}

// NewNLPService constructs the proxy.
func NewNLPService(cfg config.NLPConfig) *NLPService {
	return &NLPService{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: cfg.Timeout()},
	}
}

// Generate forwards a prompt and returns the upstream output.
func (s *NLPService) Generate(ctx context.Context, prompt string) (*NLPResult, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, apperrors.NewValidation("prompt is required", nil)
	}
	if s.baseURL == "" {
		return nil, apperrors.NewUnavailable("nlp service not configured", nil)
	}

	body, err := json.Marshal(map[string]string{"prompt": prompt})
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/nlp/generate", bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, apperrors.NewUnavailable("nlp service unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewUnavailable(fmt.Sprintf("nlp service returned status %d", resp.StatusCode), nil)
	}

	var result NLPResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, apperrors.NewUnavailable("nlp service returned malformed response", err)
	}
	return &result, nil
}
