package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/intakeai/intakeai_backend/config"
)

func testConfig() config.GeminiConfig {
	return config.GeminiConfig{
		APIKey:         "test-key",
		Model:          "gemini-1.5-flash",
		TimeoutSeconds: 5,
	}
}

func candidateResponse(text string) string {
	body, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{
				"content": map[string]any{
					"parts": []map[string]string{{"text": text}},
				},
			},
		},
	})
	return string(body)
}

func TestNewRequiresAPIKey(t *testing.T) {
	cfg := testConfig()
	cfg.APIKey = ""
	if _, err := New(cfg); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestGenerateSummaryParsesFencedJSON(t *testing.T) {
	summaryJSON := `{
		"chiefComplaint": "chest pain for two days",
		"medications": [{"name": "aspirin", "dosage": "81mg", "frequency": "daily"}],
		"systemsReview": {"cardiovascular": "chest pain on exertion"},
		"relevantHistory": "hypertension",
		"lifestyle": "sedentary",
		"redFlags": [{"flag": "chest pain", "severity": "high", "recommendation": "urgent evaluation"}]
	}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("missing api key in query: %s", r.URL.RawQuery)
		}
		fmt.Fprint(w, candidateResponse("```json\n"+summaryJSON+"\n```"))
	}))
	defer srv.Close()

	c, err := NewWithBaseURL(testConfig(), srv.URL)
	if err != nil {
		t.Fatal(err)
	}

	raw, err := c.GenerateSummary(context.Background(), map[string]string{"chiefComplaint": "chest pain"})
	if err != nil {
		t.Fatalf("GenerateSummary: %v", err)
	}

	if raw.ChiefComplaint != "chest pain for two days" {
		t.Errorf("chiefComplaint = %q", raw.ChiefComplaint)
	}
	if len(raw.Medications) != 1 || raw.Medications[0].Name != "aspirin" {
		t.Errorf("medications = %+v", raw.Medications)
	}
	if len(raw.RedFlags) != 1 || raw.RedFlags[0].Severity != "high" {
		t.Errorf("redFlags = %+v", raw.RedFlags)
	}
	if raw.SystemsReview["cardiovascular"] == "" {
		t.Errorf("systemsReview missing cardiovascular entry")
	}
}

func TestGenerateSummaryNoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"candidates": []}`)
	}))
	defer srv.Close()

	c, _ := NewWithBaseURL(testConfig(), srv.URL)
	if _, err := c.GenerateSummary(context.Background(), nil); !errors.Is(err, ErrNoCandidates) {
		t.Fatalf("expected ErrNoCandidates, got %v", err)
	}
}

func TestGenerateSummaryMalformedOutput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, candidateResponse("Sure! Here is the summary you asked for."))
	}))
	defer srv.Close()

	c, _ := NewWithBaseURL(testConfig(), srv.URL)
	if _, err := c.GenerateSummary(context.Background(), nil); !errors.Is(err, ErrMalformedOutput) {
		t.Fatalf("expected ErrMalformedOutput, got %v", err)
	}
}

func TestGenerateSummaryUpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c, _ := NewWithBaseURL(testConfig(), srv.URL)
	if _, err := c.GenerateSummary(context.Background(), nil); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare json", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  ```json\n{\"a\":1}\n```  ", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripCodeFence(tt.in); got != tt.want {
				t.Errorf("stripCodeFence(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
