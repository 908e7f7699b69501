// Package summary orchestrates AI summary generation for submitted intakes.
package summary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/intakeai/intakeai_backend/internal/clinical"
	"github.com/intakeai/intakeai_backend/internal/repo"
	entintake "github.com/intakeai/intakeai_backend/internal/repo/intake"
	entsummary "github.com/intakeai/intakeai_backend/internal/repo/summary"
	"github.com/intakeai/intakeai_backend/internal/service/intake"
	"github.com/intakeai/intakeai_backend/pkg/gemini"
)

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Generate calls the model for the given intake, replacing any previous
	// summary. When red flags are found the intake transitions to FLAGGED.
	Generate(ctx context.Context, userID, intakeID uuid.UUID) (*repo.Summary, error)

	GetByIntake(ctx context.Context, userID, intakeID uuid.UUID) (*repo.Summary, error)
	Delete(ctx context.Context, userID, intakeID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type summaryService struct {
	db      *repo.Client
	intakes intake.Service
	gen     *gemini.Client
}

func New(db *repo.Client, intakes intake.Service, gen *gemini.Client) Service {
	return &summaryService{db: db, intakes: intakes, gen: gen}
}

func (s *summaryService) Generate(ctx context.Context, userID, intakeID uuid.UUID) (*repo.Summary, error) {
	in, err := s.intakes.GetByID(ctx, userID, intakeID)
	if err != nil {
		return nil, err
	}
	// The submission pipeline never commits an empty response set, but the
	// generator call is expensive enough to guard anyway.
	if len(in.Responses) == 0 {
		return nil, ErrEmptyResponses
	}

	raw, err := s.gen.GenerateSummary(ctx, in.Responses)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	norm := Normalize(raw)

	// Regeneration replaces: drop the old row before writing the new one.
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	_, err = tx.Summary.Delete().
		Where(entsummary.IntakeID(intakeID)).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("delete old summary: %w", err)
	}

	sum, err := tx.Summary.Create().
		SetIntakeID(intakeID).
		SetChiefComplaint(norm.ChiefComplaint).
		SetMedications(norm.Medications).
		SetSystemsReview(norm.SystemsReview).
		SetRelevantHistory(norm.RelevantHistory).
		SetLifestyle(norm.Lifestyle).
		SetRedFlags(norm.RedFlags).
		SetHasRedFlags(norm.HasRedFlags).
		SetRedFlagCount(norm.RedFlagCount).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create summary: %w", err)
	}

	// One-directional: red flags promote the intake to FLAGGED, but a clean
	// regeneration never demotes it back to COMPLETED.
	if norm.HasRedFlags && in.Status != entintake.StatusFLAGGED {
		_, err = tx.Intake.UpdateOneID(intakeID).
			SetStatus(entintake.StatusFLAGGED).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("flag intake: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	slog.InfoContext(ctx, "summary generated",
		"intake_id", intakeID,
		"red_flag_count", norm.RedFlagCount,
	)
	return sum, nil
}

func (s *summaryService) GetByIntake(ctx context.Context, userID, intakeID uuid.UUID) (*repo.Summary, error) {
	if _, err := s.intakes.GetByID(ctx, userID, intakeID); err != nil {
		return nil, err
	}

	sum, err := s.db.Summary.Query().
		Where(entsummary.IntakeID(intakeID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrSummaryNotFound
		}
		return nil, fmt.Errorf("get summary: %w", err)
	}
	return sum, nil
}

func (s *summaryService) Delete(ctx context.Context, userID, intakeID uuid.UUID) error {
	if _, err := s.intakes.GetByID(ctx, userID, intakeID); err != nil {
		return err
	}

	n, err := s.db.Summary.Delete().
		Where(entsummary.IntakeID(intakeID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete summary: %w", err)
	}
	if n == 0 {
		return ErrSummaryNotFound
	}
	return nil
}

// ---------------------------------------------------------------------------
// Normalization
// ---------------------------------------------------------------------------

// Normalized is the generator output after defaults and derivation. The
// red-flag counters are always recomputed here; whatever the model claims
// about its own flags is ignored.
type Normalized struct {
	ChiefComplaint  string
	Medications     []clinical.Medication
	SystemsReview   map[string]string
	RelevantHistory string
	Lifestyle       string
	RedFlags        []clinical.RedFlag
	HasRedFlags     bool
	RedFlagCount    int
}

// Normalize fills every gap the model may have left: all ten systems-review
// categories exist, sequences are non-nil, and the counters derive from the
// red-flags length.
func Normalize(raw *gemini.RawSummary) *Normalized {
	n := &Normalized{
		ChiefComplaint:  defaultIfBlank(raw.ChiefComplaint, "unknown"),
		RelevantHistory: defaultIfBlank(raw.RelevantHistory, "none"),
		Lifestyle:       defaultIfBlank(raw.Lifestyle, "none"),
		Medications:     raw.Medications,
		RedFlags:        raw.RedFlags,
	}
	if n.Medications == nil {
		n.Medications = []clinical.Medication{}
	}
	if n.RedFlags == nil {
		n.RedFlags = []clinical.RedFlag{}
	}

	n.SystemsReview = make(map[string]string, len(clinical.SystemCategories))
	for _, cat := range clinical.SystemCategories {
		n.SystemsReview[cat] = defaultIfBlank(raw.SystemsReview[cat], clinical.NotReported)
	}

	for i := range n.RedFlags {
		n.RedFlags[i].Severity = normalizeSeverity(n.RedFlags[i].Severity)
	}

	n.RedFlagCount = len(n.RedFlags)
	n.HasRedFlags = n.RedFlagCount > 0
	return n
}

func defaultIfBlank(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// normalizeSeverity clamps model output to the known tiers, defaulting to
// medium for anything unrecognized.
func normalizeSeverity(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case clinical.SeverityHigh:
		return clinical.SeverityHigh
	case clinical.SeverityLow:
		return clinical.SeverityLow
	default:
		return clinical.SeverityMedium
	}
}
