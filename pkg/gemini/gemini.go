// Package gemini provides a minimal HTTP client for the Google generative
// language API, used to turn raw intake responses into a structured clinical
// summary.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/intakeai/intakeai_backend/config"
	"github.com/intakeai/intakeai_backend/internal/clinical"
)

var (
	ErrMissingAPIKey = errors.New("gemini: api key is not configured")

	// ErrUnavailable covers transport-level failures: network errors, non-2xx
	// statuses, quota rejections.
	ErrUnavailable = errors.New("gemini: upstream request failed")

	// ErrNoCandidates means the API answered but returned no generated text
	// (e.g. the prompt was blocked by a safety filter).
	ErrNoCandidates = errors.New("gemini: response contained no candidates")

	// ErrMalformedOutput means the model's text was not the JSON document we
	// asked for. Distinct from ErrUnavailable so callers can tell transport
	// failures from model misbehavior.
	ErrMalformedOutput = errors.New("gemini: model output is not valid summary JSON")
)

// RawSummary is the model's summary before normalization. Fields the model
// omitted stay zero; the summary service fills defaults and derives the
// red-flag counters.
type RawSummary struct {
	ChiefComplaint  string                `json:"chiefComplaint"`
	Medications     []clinical.Medication `json:"medications"`
	SystemsReview   map[string]string     `json:"systemsReview"`
	RelevantHistory string                `json:"relevantHistory"`
	Lifestyle       string                `json:"lifestyle"`
	RedFlags        []clinical.RedFlag    `json:"redFlags"`
}

// Client is a lightweight generative-language API client.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// New creates a Client from config.
func New(cfg config.GeminiConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &Client{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    "https://generativelanguage.googleapis.com/v1beta",
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// NewWithBaseURL creates a Client pointed at a custom endpoint. Used in tests.
func NewWithBaseURL(cfg config.GeminiConfig, baseURL string) (*Client, error) {
	c, err := New(cfg)
	if err != nil {
		return nil, err
	}
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c, nil
}

// GenerateSummary sends the intake responses to the model and parses the
// structured summary out of its reply.
func (c *Client) GenerateSummary(ctx context.Context, responses map[string]string) (*RawSummary, error) {
	reqBody := map[string]any{
		"contents": []map[string]any{
			{
				"parts": []map[string]string{
					{"text": buildPrompt(responses)},
				},
			},
		},
	}

	var resp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	path := fmt.Sprintf("/models/%s:generateContent", c.model)
	if err := c.post(ctx, path, reqBody, &resp); err != nil {
		return nil, err
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, ErrNoCandidates
	}

	text := stripCodeFence(resp.Candidates[0].Content.Parts[0].Text)

	var raw RawSummary
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}

	return &raw, nil
}

// stripCodeFence removes a surrounding markdown code fence the model sometimes
// wraps its JSON in.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func buildPrompt(responses map[string]string) string {
	answer := func(id, fallback string) string {
		if v := strings.TrimSpace(responses[id]); v != "" {
			return v
		}
		return fallback
	}

	var b strings.Builder
	b.WriteString("Summarize this patient intake for a doctor. Return ONLY JSON, nothing else.\n\n")
	fmt.Fprintf(&b, "Patient says: %s\n", answer("chiefComplaint", "nothing"))
	fmt.Fprintf(&b, "Symptoms: %s\n", answer("symptoms", "none"))
	fmt.Fprintf(&b, "Duration: %s\n", answer("symptomDuration", "unknown"))
	fmt.Fprintf(&b, "Meds: %s\n", answer("medications", "none"))
	fmt.Fprintf(&b, "Supplements: %s\n", answer("supplements", "none"))
	fmt.Fprintf(&b, "Allergies: %s\n", answer("allergies", "none"))
	fmt.Fprintf(&b, "History: %s\n", answer("medicalHistory", "none"))
	fmt.Fprintf(&b, "Family history: %s\n", answer("familyHistory", "none"))
	fmt.Fprintf(&b, "Lifestyle: %s\n", answer("lifestyle", "unknown"))
	b.WriteString("\nCheck for red flags (serious findings such as chest pain or suicidal thoughts).\n")
	b.WriteString(`
Return JSON like this:
{
  "chiefComplaint": "short summary",
  "medications": [{"name": "", "dosage": "", "frequency": "", "purpose": ""}],
  "systemsReview": {
    "cardiovascular": "",
    "respiratory": "",
    "gastrointestinal": "",
    "musculoskeletal": "",
    "neurological": "",
    "endocrine": "",
    "immunological": "",
    "dermatological": "",
    "psychological": "",
    "other": ""
  },
  "relevantHistory": "",
  "lifestyle": "",
  "redFlags": [{"flag": "", "severity": "high/medium/low", "recommendation": ""}]
}`)

	return b.String()
}

// post sends a JSON POST request to baseURL+path and decodes the JSON response into out.
func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s%s?key=%s", c.baseURL, path, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrUnavailable, res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}
	return nil
}
