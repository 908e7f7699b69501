// Package intakelink manages the lifecycle of single-use intake invitations.
package intakelink

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/intakeai/intakeai_backend/config"
	"github.com/intakeai/intakeai_backend/internal/repo"
	entintakelink "github.com/intakeai/intakeai_backend/internal/repo/intakelink"
	"github.com/intakeai/intakeai_backend/internal/service/patient"
	"github.com/intakeai/intakeai_backend/pkg/email"
	"github.com/intakeai/intakeai_backend/pkg/sms"
	"github.com/intakeai/intakeai_backend/pkg/util/codes"
)

// tokenRetries bounds the uniqueness retry loop. A collision on 32 random
// bytes is effectively impossible, so more than a couple of retries means
// something is wrong with the RNG.
const tokenRetries = 3

// ---------------------------------------------------------------------------
// Status
// ---------------------------------------------------------------------------

// Status is derived on read, never stored. Used wins over expired: a link
// consumed before its deadline stays "used" forever, even after expires_at
// passes.
type Status string

const (
	StatusActive  Status = "active"
	StatusUsed    Status = "used"
	StatusExpired Status = "expired"
)

// DeriveStatus computes the display status of a link at the given instant.
func DeriveStatus(link *repo.IntakeLink, now time.Time) Status {
	if link.IsUsed {
		return StatusUsed
	}
	if !now.Before(link.ExpiresAt) {
		return StatusExpired
	}
	return StatusActive
}

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateLinkRequest struct {
	// ExpiryDays overrides the configured default when set. Must be within
	// [1, link_expiry_max_days].
	ExpiryDays *int

	// SendEmail / SendSMS deliver the link to the patient's stored contact
	// info. Delivery is best-effort; failures are logged, never returned.
	SendEmail bool
	SendSMS   bool
}

// LinkWithStatus pairs a stored link with its derived status and public URL.
type LinkWithStatus struct {
	Link   *repo.IntakeLink
	Status Status
	URL    string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, userID, patientID uuid.UUID, req CreateLinkRequest) (*LinkWithStatus, error)
	List(ctx context.Context, userID, patientID uuid.UUID) ([]*LinkWithStatus, error)
	Get(ctx context.Context, userID, linkID uuid.UUID) (*LinkWithStatus, error)
	Revoke(ctx context.Context, userID, linkID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type linkService struct {
	db       *repo.Client
	patients patient.Service
	mailer   *email.Client
	sms      *sms.Client
	cfg      *config.Config
}

func New(
	db *repo.Client,
	patients patient.Service,
	mailer *email.Client,
	smsCli *sms.Client,
	cfg *config.Config,
) Service {
	return &linkService{
		db:       db,
		patients: patients,
		mailer:   mailer,
		sms:      smsCli,
		cfg:      cfg,
	}
}

func (s *linkService) Create(ctx context.Context, userID, patientID uuid.UUID, req CreateLinkRequest) (*LinkWithStatus, error) {
	p, err := s.patients.GetByID(ctx, userID, patientID)
	if err != nil {
		return nil, err
	}

	days := s.cfg.Intake.LinkExpiryDays
	if req.ExpiryDays != nil {
		days = *req.ExpiryDays
	}
	if days < 1 || days > s.cfg.Intake.LinkExpiryMaxDays {
		return nil, ErrInvalidExpiry
	}
	expiresAt := time.Now().Add(time.Duration(days) * 24 * time.Hour)

	link, err := s.createWithUniqueToken(ctx, patientID, expiresAt)
	if err != nil {
		return nil, err
	}

	out := &LinkWithStatus{
		Link:   link,
		Status: StatusActive,
		URL:    s.publicURL(link.Token),
	}

	s.deliver(ctx, p, out, req)
	return out, nil
}

func (s *linkService) List(ctx context.Context, userID, patientID uuid.UUID) ([]*LinkWithStatus, error) {
	if _, err := s.patients.GetByID(ctx, userID, patientID); err != nil {
		return nil, err
	}

	links, err := s.db.IntakeLink.Query().
		Where(entintakelink.PatientID(patientID)).
		Order(entintakelink.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list intake links: %w", err)
	}

	now := time.Now()
	out := make([]*LinkWithStatus, 0, len(links))
	for _, l := range links {
		out = append(out, &LinkWithStatus{
			Link:   l,
			Status: DeriveStatus(l, now),
			URL:    s.publicURL(l.Token),
		})
	}
	return out, nil
}

func (s *linkService) Get(ctx context.Context, userID, linkID uuid.UUID) (*LinkWithStatus, error) {
	link, err := s.ownedLink(ctx, userID, linkID)
	if err != nil {
		return nil, err
	}
	return &LinkWithStatus{
		Link:   link,
		Status: DeriveStatus(link, time.Now()),
		URL:    s.publicURL(link.Token),
	}, nil
}

// Revoke deletes an unused link, invalidating its URL immediately. A used
// link cannot be revoked: its intake references it, and deleting the row
// would orphan the submission.
func (s *linkService) Revoke(ctx context.Context, userID, linkID uuid.UUID) error {
	link, err := s.ownedLink(ctx, userID, linkID)
	if err != nil {
		return err
	}
	if link.IsUsed {
		return ErrLinkUsed
	}

	if err := s.db.IntakeLink.DeleteOne(link).Exec(ctx); err != nil {
		return fmt.Errorf("delete intake link: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// ownedLink loads a link and checks the owning doctor through the patient
// record. Links of other doctors' patients surface as patient.ErrAccessDenied.
func (s *linkService) ownedLink(ctx context.Context, userID, linkID uuid.UUID) (*repo.IntakeLink, error) {
	link, err := s.db.IntakeLink.Get(ctx, linkID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrLinkNotFound
		}
		return nil, fmt.Errorf("get intake link: %w", err)
	}
	if _, err := s.patients.GetByID(ctx, userID, link.PatientID); err != nil {
		return nil, err
	}
	return link, nil
}

func (s *linkService) createWithUniqueToken(ctx context.Context, patientID uuid.UUID, expiresAt time.Time) (*repo.IntakeLink, error) {
	for i := 0; i < tokenRetries; i++ {
		token, err := codes.GenerateIntakeToken()
		if err != nil {
			return nil, fmt.Errorf("generate token: %w", err)
		}

		link, err := s.db.IntakeLink.Create().
			SetPatientID(patientID).
			SetToken(token).
			SetExpiresAt(expiresAt).
			Save(ctx)
		if err != nil {
			if repo.IsConstraintError(err) {
				continue
			}
			return nil, fmt.Errorf("create intake link: %w", err)
		}
		return link, nil
	}
	return nil, ErrTokenExhaust
}

func (s *linkService) publicURL(token string) string {
	return s.cfg.Server.PublicBaseURL + "/intake/" + token
}

// deliver sends the link to the patient over the requested channels. Failures
// are logged and swallowed: the doctor already has the URL on screen.
func (s *linkService) deliver(ctx context.Context, p *repo.Patient, link *LinkWithStatus, req CreateLinkRequest) {
	if req.SendEmail && p.Email != nil {
		data := email.IntakeLinkEmailData{
			PatientFirstName: p.FirstName,
			IntakeURL:        link.URL,
			ExpiresAt:        link.Link.ExpiresAt,
		}
		if doc, err := s.db.User.Get(ctx, p.UserID); err == nil {
			data.DoctorName = doc.FirstName + " " + doc.LastName
			data.PracticeName = doc.PracticeName
		}
		msg := email.BuildIntakeLinkEmail(data)
		msg.To = []string{*p.Email}
		if err := s.mailer.Send(ctx, msg); err != nil {
			slog.WarnContext(ctx, "intake link email delivery failed", "patient_id", p.ID, "error", err)
		}
	}

	if req.SendSMS && p.Phone != nil {
		if err := s.sms.SendIntakeLink(ctx, *p.Phone, link.URL); err != nil {
			slog.WarnContext(ctx, "intake link SMS delivery failed", "patient_id", p.ID, "error", err)
		}
	}
}
