package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"caremate-health/internal/config"
)

// AdvisoryFallback is returned for any advisory gateway fault. An
// incorrect or missing AI answer must never block navigation, so this
// boundary degrades to a fixed string instead of an error.
const AdvisoryFallback = "Sorry, I couldn't find an answer right now. " +
	"Please try again in a moment, or consult a doctor for urgent concerns."

// ErrEmptyAdvisoryResponse indicates the endpoint answered without any
// usable candidate text.
var ErrEmptyAdvisoryResponse = errors.New("advisory response contained no text")

// AdvisoryGateway is the generative-language boundary
type AdvisoryGateway interface {
	Ask(ctx context.Context, query string) (string, error)
}

// GenerativeClient calls a hosted generative-language endpoint
type GenerativeClient struct {
	endpoint string
	apiKey   string
	model    string
	client   *http.Client
}

// NewGenerativeClient creates a client for the configured endpoint
func NewGenerativeClient(cfg config.AdvisoryConfig) *GenerativeClient {
	return &GenerativeClient{
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		apiKey:   cfg.APIKey,
		model:    cfg.Model,
		client:   &http.Client{Timeout: cfg.Timeout},
	}
}

type generateRequest struct {
	Contents []generateContent `json:"contents"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generatePart struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []generatePart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Ask sends the query and returns the first candidate's text
func (c *GenerativeClient) Ask(ctx context.Context, query string) (string, error) {
	prompt := "You are a health information assistant for a patient-facing app. " +
		"Answer the following health question briefly and clearly, and remind the " +
		"user to consult a doctor for diagnosis or treatment.\n\nQuestion: " + query

	payload := generateRequest{
		Contents: []generateContent{{Parts: []generatePart{{Text: prompt}}}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", c.endpoint, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("advisory endpoint returned %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed generateResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyAdvisoryResponse
	}

	text := strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", ErrEmptyAdvisoryResponse
	}
	return text, nil
}

// AdvisoryService wraps the advisory gateway with the fail-soft
// contract: callers always get text, never an error.
type AdvisoryService struct {
	gateway AdvisoryGateway
}

// NewAdvisoryService creates a new advisory service
func NewAdvisoryService(gateway AdvisoryGateway) *AdvisoryService {
	return &AdvisoryService{gateway: gateway}
}

// AskHealthQuestion answers a free-text health question, degrading to
// the fixed fallback on any gateway fault.
func (s *AdvisoryService) AskHealthQuestion(ctx context.Context, query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return AdvisoryFallback
	}

	answer, err := s.gateway.Ask(ctx, query)
	if err != nil {
		log.Printf("⚠️ Advisory gateway fault: %v", err)
		return AdvisoryFallback
	}
	return answer
}
