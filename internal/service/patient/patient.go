package patient

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"

	"github.com/intakeai/intakeai_backend/internal/repo"
	entappointment "github.com/intakeai/intakeai_backend/internal/repo/appointment"
	entintake "github.com/intakeai/intakeai_backend/internal/repo/intake"
	entintakelink "github.com/intakeai/intakeai_backend/internal/repo/intakelink"
	entpatient "github.com/intakeai/intakeai_backend/internal/repo/patient"
	entsummary "github.com/intakeai/intakeai_backend/internal/repo/summary"
)

// defaultRegion is used when a phone number has no international prefix.
const defaultRegion = "US"

var reEmail = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type PaginatedResult[T any] struct {
	Data       []T
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

type ListPatientsRequest struct {
	Page    int
	PerPage int
	Search  string // matches first or last name, case-insensitive
}

type CreatePatientRequest struct {
	FirstName   string
	LastName    string
	Email       *string
	Phone       *string
	DateOfBirth *time.Time
}

type UpdatePatientRequest struct {
	FirstName   *string
	LastName    *string
	Email       *string
	Phone       *string
	DateOfBirth *time.Time
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, req CreatePatientRequest) (*repo.Patient, error)
	GetByID(ctx context.Context, userID, patientID uuid.UUID) (*repo.Patient, error)
	List(ctx context.Context, userID uuid.UUID, req ListPatientsRequest) (*PaginatedResult[*repo.Patient], error)
	Update(ctx context.Context, userID, patientID uuid.UUID, req UpdatePatientRequest) (*repo.Patient, error)
	Delete(ctx context.Context, userID, patientID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type patientService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &patientService{db: db}
}

func (s *patientService) Create(ctx context.Context, userID uuid.UUID, req CreatePatientRequest) (*repo.Patient, error) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	if req.FirstName == "" || req.LastName == "" {
		return nil, ErrNameRequired
	}

	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}
	phone, err := normalizePhone(req.Phone)
	if err != nil {
		return nil, err
	}

	c := s.db.Patient.Create().
		SetUserID(userID).
		SetFirstName(req.FirstName).
		SetLastName(req.LastName)

	if email != nil {
		c = c.SetEmail(*email)
	}
	if phone != nil {
		c = c.SetPhone(*phone)
	}
	if req.DateOfBirth != nil {
		c = c.SetDateOfBirth(*req.DateOfBirth)
	}

	p, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create patient: %w", err)
	}
	return p, nil
}

// GetByID loads a patient and enforces ownership. A patient that exists but
// belongs to another doctor yields ErrAccessDenied, not ErrPatientNotFound,
// so the handler can answer 403 instead of 404.
func (s *patientService) GetByID(ctx context.Context, userID, patientID uuid.UUID) (*repo.Patient, error) {
	p, err := s.db.Patient.Get(ctx, patientID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	if p.UserID != userID {
		return nil, ErrAccessDenied
	}
	return p, nil
}

func (s *patientService) List(ctx context.Context, userID uuid.UUID, req ListPatientsRequest) (*PaginatedResult[*repo.Patient], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Patient.Query().
		Where(entpatient.UserID(userID))

	if search := strings.TrimSpace(req.Search); search != "" {
		q = q.Where(entpatient.Or(
			entpatient.FirstNameContainsFold(search),
			entpatient.LastNameContainsFold(search),
		))
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count patients: %w", err)
	}

	patients, err := q.
		Order(entpatient.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.Patient]{
		Data:       patients,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *patientService) Update(ctx context.Context, userID, patientID uuid.UUID, req UpdatePatientRequest) (*repo.Patient, error) {
	p, err := s.GetByID(ctx, userID, patientID)
	if err != nil {
		return nil, err
	}

	u := s.db.Patient.UpdateOne(p)

	if req.FirstName != nil {
		name := strings.TrimSpace(*req.FirstName)
		if name == "" {
			return nil, ErrNameRequired
		}
		u = u.SetFirstName(name)
	}
	if req.LastName != nil {
		name := strings.TrimSpace(*req.LastName)
		if name == "" {
			return nil, ErrNameRequired
		}
		u = u.SetLastName(name)
	}
	if req.Email != nil {
		email, err := normalizeEmail(req.Email)
		if err != nil {
			return nil, err
		}
		if email == nil {
			u = u.ClearEmail()
		} else {
			u = u.SetEmail(*email)
		}
	}
	if req.Phone != nil {
		phone, err := normalizePhone(req.Phone)
		if err != nil {
			return nil, err
		}
		if phone == nil {
			u = u.ClearPhone()
		} else {
			u = u.SetPhone(*phone)
		}
	}
	if req.DateOfBirth != nil {
		u = u.SetDateOfBirth(*req.DateOfBirth)
	}

	updated, err := u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update patient: %w", err)
	}
	return updated, nil
}

// Delete removes the patient and everything hanging off the record. Children
// go first so foreign keys never dangle mid-transaction: summaries, intakes,
// intake links, appointments, then the patient row itself.
func (s *patientService) Delete(ctx context.Context, userID, patientID uuid.UUID) error {
	if _, err := s.GetByID(ctx, userID, patientID); err != nil {
		return err
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	_, err = tx.Summary.Delete().
		Where(entsummary.HasIntakeWith(entintake.PatientID(patientID))).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete summaries: %w", err)
	}

	_, err = tx.Intake.Delete().
		Where(entintake.PatientID(patientID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete intakes: %w", err)
	}

	_, err = tx.IntakeLink.Delete().
		Where(entintakelink.PatientID(patientID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete intake links: %w", err)
	}

	_, err = tx.Appointment.Delete().
		Where(entappointment.PatientID(patientID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete appointments: %w", err)
	}

	if err = tx.Patient.DeleteOneID(patientID).Exec(ctx); err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func normalizeEmail(in *string) (*string, error) {
	if in == nil {
		return nil, nil
	}
	email := strings.ToLower(strings.TrimSpace(*in))
	if email == "" {
		return nil, nil
	}
	if !reEmail.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	return &email, nil
}

// normalizePhone parses the input and re-renders it in E.164, so one patient
// never ends up stored with two spellings of the same number.
func normalizePhone(in *string) (*string, error) {
	if in == nil {
		return nil, nil
	}
	raw := strings.TrimSpace(*in)
	if raw == "" {
		return nil, nil
	}

	num, err := phonenumbers.Parse(raw, defaultRegion)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPhone, err)
	}
	if !phonenumbers.IsValidNumber(num) {
		return nil, ErrInvalidPhone
	}

	formatted := phonenumbers.Format(num, phonenumbers.E164)
	return &formatted, nil
}
