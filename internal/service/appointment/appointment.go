package appointment

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/intakeai/intakeai_backend/internal/repo"
	entappointment "github.com/intakeai/intakeai_backend/internal/repo/appointment"
	"github.com/intakeai/intakeai_backend/internal/service/patient"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateAppointmentRequest struct {
	ScheduledAt     time.Time
	DurationMinutes *int
	Reason          *string
}

type UpdateAppointmentRequest struct {
	ScheduledAt     *time.Time
	DurationMinutes *int
	Reason          *string
	Status          *string
	Notes           *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, userID, patientID uuid.UUID, req CreateAppointmentRequest) (*repo.Appointment, error)
	ListByPatient(ctx context.Context, userID, patientID uuid.UUID) ([]*repo.Appointment, error)
	Update(ctx context.Context, userID, appointmentID uuid.UUID, req UpdateAppointmentRequest) (*repo.Appointment, error)
	Delete(ctx context.Context, userID, appointmentID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type appointmentService struct {
	db       *repo.Client
	patients patient.Service
}

func New(db *repo.Client, patients patient.Service) Service {
	return &appointmentService{db: db, patients: patients}
}

func (s *appointmentService) Create(ctx context.Context, userID, patientID uuid.UUID, req CreateAppointmentRequest) (*repo.Appointment, error) {
	if _, err := s.patients.GetByID(ctx, userID, patientID); err != nil {
		return nil, err
	}
	if req.ScheduledAt.IsZero() {
		return nil, ErrInvalidTime
	}

	c := s.db.Appointment.Create().
		SetPatientID(patientID).
		SetScheduledAt(req.ScheduledAt)

	if req.DurationMinutes != nil {
		c = c.SetDurationMinutes(*req.DurationMinutes)
	}
	if req.Reason != nil {
		c = c.SetNillableReason(req.Reason)
	}

	a, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}
	return a, nil
}

func (s *appointmentService) ListByPatient(ctx context.Context, userID, patientID uuid.UUID) ([]*repo.Appointment, error) {
	if _, err := s.patients.GetByID(ctx, userID, patientID); err != nil {
		return nil, err
	}
	return s.db.Appointment.Query().
		Where(entappointment.PatientID(patientID)).
		Order(entappointment.ByScheduledAt(sql.OrderAsc())).
		All(ctx)
}

func (s *appointmentService) Update(ctx context.Context, userID, appointmentID uuid.UUID, req UpdateAppointmentRequest) (*repo.Appointment, error) {
	a, err := s.ownedAppointment(ctx, userID, appointmentID)
	if err != nil {
		return nil, err
	}

	u := s.db.Appointment.UpdateOne(a)
	if req.ScheduledAt != nil {
		u = u.SetScheduledAt(*req.ScheduledAt)
	}
	if req.DurationMinutes != nil {
		u = u.SetDurationMinutes(*req.DurationMinutes)
	}
	if req.Reason != nil {
		u = u.SetNillableReason(req.Reason)
	}
	if req.Status != nil {
		switch *req.Status {
		case string(entappointment.StatusSCHEDULED),
			string(entappointment.StatusCOMPLETED),
			string(entappointment.StatusCANCELLED):
			u = u.SetStatus(entappointment.Status(*req.Status))
		default:
			return nil, ErrInvalidStatus
		}
	}
	if req.Notes != nil {
		u = u.SetNillableNotes(req.Notes)
	}

	updated, err := u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update appointment: %w", err)
	}
	return updated, nil
}

func (s *appointmentService) Delete(ctx context.Context, userID, appointmentID uuid.UUID) error {
	a, err := s.ownedAppointment(ctx, userID, appointmentID)
	if err != nil {
		return err
	}
	if err := s.db.Appointment.DeleteOne(a).Exec(ctx); err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *appointmentService) ownedAppointment(ctx context.Context, userID, appointmentID uuid.UUID) (*repo.Appointment, error) {
	a, err := s.db.Appointment.Get(ctx, appointmentID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	if _, err := s.patients.GetByID(ctx, userID, a.PatientID); err != nil {
		return nil, err
	}
	return a, nil
}
