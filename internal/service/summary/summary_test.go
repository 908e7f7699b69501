package summary

import (
	"testing"

	"github.com/intakeai/intakeai_backend/internal/clinical"
	"github.com/intakeai/intakeai_backend/pkg/gemini"
)

func TestNormalizeFillsDefaults(t *testing.T) {
	n := Normalize(&gemini.RawSummary{})

	if n.ChiefComplaint != "unknown" {
		t.Errorf("chief complaint = %q, want unknown", n.ChiefComplaint)
	}
	if n.RelevantHistory != "none" || n.Lifestyle != "none" {
		t.Errorf("history/lifestyle = %q/%q, want none/none", n.RelevantHistory, n.Lifestyle)
	}
	if n.Medications == nil || len(n.Medications) != 0 {
		t.Errorf("medications = %#v, want empty non-nil slice", n.Medications)
	}
	if n.RedFlags == nil || len(n.RedFlags) != 0 {
		t.Errorf("redFlags = %#v, want empty non-nil slice", n.RedFlags)
	}
	if n.HasRedFlags || n.RedFlagCount != 0 {
		t.Errorf("hasRedFlags/redFlagCount = %v/%d, want false/0", n.HasRedFlags, n.RedFlagCount)
	}

	if len(n.SystemsReview) != len(clinical.SystemCategories) {
		t.Fatalf("systems review has %d categories, want %d", len(n.SystemsReview), len(clinical.SystemCategories))
	}
	for _, cat := range clinical.SystemCategories {
		if n.SystemsReview[cat] != clinical.NotReported {
			t.Errorf("systemsReview[%s] = %q, want %q", cat, n.SystemsReview[cat], clinical.NotReported)
		}
	}
}

func TestNormalizePreservesReportedValues(t *testing.T) {
	raw := &gemini.RawSummary{
		ChiefComplaint: "chest pain on exertion",
		SystemsReview: map[string]string{
			"cardiovascular": "intermittent chest pain",
		},
		Medications: []clinical.Medication{
			{Name: "aspirin", Dosage: "81mg", Frequency: "daily"},
		},
		RedFlags: []clinical.RedFlag{
			{Flag: "chest pain", Severity: "high", Recommendation: "urgent evaluation"},
		},
	}

	n := Normalize(raw)

	if n.ChiefComplaint != "chest pain on exertion" {
		t.Errorf("chief complaint = %q", n.ChiefComplaint)
	}
	if n.SystemsReview["cardiovascular"] != "intermittent chest pain" {
		t.Errorf("reported category was overwritten: %q", n.SystemsReview["cardiovascular"])
	}
	if n.SystemsReview["respiratory"] != clinical.NotReported {
		t.Errorf("absent category not defaulted: %q", n.SystemsReview["respiratory"])
	}
	if !n.HasRedFlags || n.RedFlagCount != 1 {
		t.Errorf("hasRedFlags/redFlagCount = %v/%d, want true/1", n.HasRedFlags, n.RedFlagCount)
	}
}

func TestNormalizeDerivesCountersFromLength(t *testing.T) {
	// Counters always come from the sequence itself, so a model that emits
	// flags without claiming any counts still yields consistent output.
	raw := &gemini.RawSummary{
		RedFlags: []clinical.RedFlag{
			{Flag: "a", Severity: "high", Recommendation: "x"},
			{Flag: "b", Severity: "low", Recommendation: "y"},
			{Flag: "c", Severity: "medium", Recommendation: "z"},
		},
	}

	n := Normalize(raw)
	if n.RedFlagCount != 3 || !n.HasRedFlags {
		t.Errorf("redFlagCount/hasRedFlags = %d/%v, want 3/true", n.RedFlagCount, n.HasRedFlags)
	}
}

func TestNormalizeSeverity(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"high", clinical.SeverityHigh},
		{"HIGH", clinical.SeverityHigh},
		{" low ", clinical.SeverityLow},
		{"medium", clinical.SeverityMedium},
		{"critical", clinical.SeverityMedium},
		{"", clinical.SeverityMedium},
	}

	for _, tt := range tests {
		if got := normalizeSeverity(tt.in); got != tt.want {
			t.Errorf("normalizeSeverity(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
