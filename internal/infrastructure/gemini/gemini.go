// Package gemini — клиент REST API Google Gemini (generateContent).
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/DRSN-tech/inventory-backend/internal/cfg"
	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/DRSN-tech/inventory-backend/pkg/jitter"
	"github.com/DRSN-tech/inventory-backend/pkg/logger"
)

const (
	generationTemperature = 0.7
	generationMaxTokens   = 2048
)

// InsightService генерирует тексты рекомендаций через Gemini
// с retry-логикой и экспоненциальной задержкой.
type InsightService struct {
	httpClient *http.Client
	cfg        *cfg.GeminiCfg
	logger     logger.Logger
}

func NewInsightService(cfg *cfg.GeminiCfg, logger logger.Logger) *InsightService {
	return &InsightService{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
		logger:     logger,
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateInsightText отправляет prompt в Gemini и возвращает текст ответа.
// Без ключа API возвращает e.ErrInsightUnavailable сразу, не ходя в сеть.
func (s *InsightService) GenerateInsightText(ctx context.Context, prompt string) (string, error) {
	const (
		op         = "InsightService.GenerateInsightText"
		baseJitter = 1 * time.Second
		maxJitter  = 30 * time.Second
	)

	if s.cfg.ApiKey == "" {
		return "", e.Wrap(op, e.ErrInsightUnavailable)
	}

	for attempt := 0; attempt < s.cfg.MaxRetries; attempt++ {
		text, retryable, err := s.generate(ctx, prompt)
		if err == nil {
			return text, nil
		}

		if !retryable || attempt == s.cfg.MaxRetries-1 {
			s.logger.Warnf("insight generation failed: %v", err)
			return "", e.Wrap(op, e.ErrInsightUnavailable)
		}

		sleepTime := jitter.ExponentialBackoff(
			baseJitter,
			maxJitter,
			attempt,
			jitter.DefaultJitter,
		)

		s.logger.Warnf("insight generation failed, retrying in %v (attempt %d)", sleepTime, attempt+1)
		select {
		case <-time.After(sleepTime):
		case <-ctx.Done():
			return "", e.Wrap(op, ctx.Err())
		}
	}

	return "", e.Wrap(op, e.ErrInsightUnavailable)
}

// generate выполняет один запрос generateContent. Признак retryable означает,
// что ошибку имеет смысл повторить (5xx, 429, сетевые сбои).
func (s *InsightService) generate(ctx context.Context, prompt string) (text string, retryable bool, err error) {
	const op = "InsightService.generate"

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     generationTemperature,
			MaxOutputTokens: generationMaxTokens,
		},
	})
	if err != nil {
		return "", false, e.Wrap(op, err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", s.cfg.BaseURL, s.cfg.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", false, e.Wrap(op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.cfg.ApiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", true, e.Wrap(op, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", true, e.Wrap(op, err)
	}

	if resp.StatusCode != http.StatusOK {
		retryable := resp.StatusCode >= http.StatusInternalServerError ||
			resp.StatusCode == http.StatusTooManyRequests
		return "", retryable, fmt.Errorf("%s: status %d: %s", op, resp.StatusCode, respBody)
	}

	var parsed generateResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", false, e.Wrap(op, err)
	}

	if parsed.Error != nil {
		return "", false, fmt.Errorf("%s: api error %d: %s", op, parsed.Error.Code, parsed.Error.Message)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", false, fmt.Errorf("%s: empty response", op)
	}

	var sb strings.Builder
	for _, p := range parsed.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}

	return sb.String(), false, nil
}
