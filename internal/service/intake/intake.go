// Package intake implements the public intake form endpoints and the
// doctor-facing views of submitted forms.
package intake

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/intakeai/intakeai_backend/internal/intakeform"
	"github.com/intakeai/intakeai_backend/internal/repo"
	entintake "github.com/intakeai/intakeai_backend/internal/repo/intake"
	entintakelink "github.com/intakeai/intakeai_backend/internal/repo/intakelink"
	entpatient "github.com/intakeai/intakeai_backend/internal/repo/patient"
	"github.com/intakeai/intakeai_backend/internal/service/patient"
	"github.com/intakeai/intakeai_backend/pkg/util/codes"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// ListFilters narrows the doctor-wide intake listing.
type ListFilters struct {
	Status     *string // COMPLETED or FLAGGED
	HasSummary *bool
}

// FormView is what an unauthenticated patient sees when opening their link.
type FormView struct {
	PatientFirstName string
	SchemaVersion    int
	Questions        []intakeform.Question
	ExpiresAt        time.Time
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Public (token-authenticated) operations.
	GetForm(ctx context.Context, token string) (*FormView, error)
	Submit(ctx context.Context, token string, responses map[string]string) (*repo.Intake, error)

	// Doctor-facing operations.
	List(ctx context.Context, userID uuid.UUID, f ListFilters) ([]*repo.Intake, error)
	ListByPatient(ctx context.Context, userID, patientID uuid.UUID) ([]*repo.Intake, error)
	GetByID(ctx context.Context, userID, intakeID uuid.UUID) (*repo.Intake, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type intakeService struct {
	db       *repo.Client
	patients patient.Service
}

func New(db *repo.Client, patients patient.Service) Service {
	return &intakeService{db: db, patients: patients}
}

// ---------------------------------------------------------------------------
// Public operations
// ---------------------------------------------------------------------------

func (s *intakeService) GetForm(ctx context.Context, token string) (*FormView, error) {
	link, err := s.usableLink(ctx, token)
	if err != nil {
		return nil, err
	}

	p, err := s.db.Patient.Get(ctx, link.PatientID)
	if err != nil {
		return nil, fmt.Errorf("get patient: %w", err)
	}

	return &FormView{
		PatientFirstName: p.FirstName,
		SchemaVersion:    intakeform.Version,
		Questions:        intakeform.Current(),
		ExpiresAt:        link.ExpiresAt,
	}, nil
}

// Submit runs the full pipeline: token shape check, response validation,
// link state checks, then an atomic consume-and-create. Validation happens
// before the link is touched, so a rejected submission never burns the link.
func (s *intakeService) Submit(ctx context.Context, token string, responses map[string]string) (*repo.Intake, error) {
	if !codes.ValidIntakeToken(token) {
		return nil, ErrInvalidLink
	}

	if missing := intakeform.MissingRequired(responses); len(missing) > 0 {
		return nil, &ValidationError{MissingFields: missing}
	}

	link, err := s.lookupLink(ctx, token)
	if err != nil {
		return nil, err
	}
	if link.IsUsed {
		return nil, ErrAlreadySubmitted
	}
	if !time.Now().Before(link.ExpiresAt) {
		return nil, ErrLinkExpired
	}

	// Consume the link and create the intake atomically. The conditional
	// update is the arbiter under concurrency: of two racing submissions,
	// exactly one flips is_used and the other sees zero affected rows.
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	now := time.Now()
	n, err := tx.IntakeLink.Update().
		Where(entintakelink.ID(link.ID), entintakelink.IsUsed(false)).
		SetIsUsed(true).
		SetUsedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("consume link: %w", err)
	}
	if n == 0 {
		err = ErrAlreadySubmitted
		return nil, err
	}

	in, err := tx.Intake.Create().
		SetPatientID(link.PatientID).
		SetIntakeLinkID(link.ID).
		SetResponses(responses).
		SetSchemaVersion(intakeform.Version).
		SetCompletedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create intake: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return in, nil
}

// ---------------------------------------------------------------------------
// Doctor-facing operations
// ---------------------------------------------------------------------------

// List returns every intake across the doctor's patients, newest first.
func (s *intakeService) List(ctx context.Context, userID uuid.UUID, f ListFilters) ([]*repo.Intake, error) {
	q := s.db.Intake.Query().
		Where(entintake.HasPatientWith(entpatient.UserID(userID)))

	if f.Status != nil {
		switch st := entintake.Status(*f.Status); st {
		case entintake.StatusCOMPLETED, entintake.StatusFLAGGED:
			q = q.Where(entintake.StatusEQ(st))
		default:
			return nil, ErrInvalidStatusFilter
		}
	}
	if f.HasSummary != nil {
		if *f.HasSummary {
			q = q.Where(entintake.HasSummary())
		} else {
			q = q.Where(entintake.Not(entintake.HasSummary()))
		}
	}

	return q.Order(entintake.ByCompletedAt(sql.OrderDesc())).All(ctx)
}

func (s *intakeService) ListByPatient(ctx context.Context, userID, patientID uuid.UUID) ([]*repo.Intake, error) {
	if _, err := s.patients.GetByID(ctx, userID, patientID); err != nil {
		return nil, err
	}
	return s.db.Intake.Query().
		Where(entintake.PatientID(patientID)).
		Order(entintake.ByCompletedAt(sql.OrderDesc())).
		All(ctx)
}

func (s *intakeService) GetByID(ctx context.Context, userID, intakeID uuid.UUID) (*repo.Intake, error) {
	in, err := s.db.Intake.Get(ctx, intakeID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrIntakeNotFound
		}
		return nil, fmt.Errorf("get intake: %w", err)
	}
	if _, err := s.patients.GetByID(ctx, userID, in.PatientID); err != nil {
		return nil, err
	}
	return in, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// usableLink validates the token shape, loads the link, and checks its state.
// Shape and existence failures both map to ErrInvalidLink.
func (s *intakeService) usableLink(ctx context.Context, token string) (*repo.IntakeLink, error) {
	if !codes.ValidIntakeToken(token) {
		return nil, ErrInvalidLink
	}

	link, err := s.lookupLink(ctx, token)
	if err != nil {
		return nil, err
	}
	if link.IsUsed {
		return nil, ErrAlreadySubmitted
	}
	if !time.Now().Before(link.ExpiresAt) {
		return nil, ErrLinkExpired
	}
	return link, nil
}

func (s *intakeService) lookupLink(ctx context.Context, token string) (*repo.IntakeLink, error) {
	link, err := s.db.IntakeLink.Query().
		Where(entintakelink.Token(token)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInvalidLink
		}
		return nil, fmt.Errorf("find intake link: %w", err)
	}
	return link, nil
}
