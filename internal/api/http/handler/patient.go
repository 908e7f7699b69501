package handler

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/intakeai/intakeai_backend/internal/service/patient"
	pasetotoken "github.com/intakeai/intakeai_backend/pkg/paseto"
)

type PatientHandler struct {
	svc patient.Service
}

func NewPatientHandler(svc patient.Service) *PatientHandler {
	return &PatientHandler{svc: svc}
}

// userIDFromClaims extracts the authenticated doctor's ID. AuthRequired
// guarantees claims are present on protected routes.
func userIDFromClaims(c fiber.Ctx) (uuid.UUID, bool) {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return uuid.Nil, false
	}
	return claims.UserID, true
}

func mapPatientError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, patient.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, patient.ErrAccessDenied):
		return forbidden(c)
	case errors.Is(err, patient.ErrInvalidPhone),
		errors.Is(err, patient.ErrInvalidEmail),
		errors.Is(err, patient.ErrNameRequired):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// patientBody is shared by Create and Update.
type patientBody struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	DateOfBirth *string `json:"date_of_birth"` // YYYY-MM-DD
}

func parseDOB(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GET /api/v1/patients
func (h *PatientHandler) List(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	perPage, _ := strconv.Atoi(c.Query("per_page", "20"))

	result, err := h.svc.List(c.Context(), userID, patient.ListPatientsRequest{
		Page:    page,
		PerPage: perPage,
		Search:  c.Query("search"),
	})
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, fiber.Map{
		"patients":    result.Data,
		"total":       result.Total,
		"page":        result.Page,
		"per_page":    result.PerPage,
		"total_pages": result.TotalPages,
	})
}

// POST /api/v1/patients
func (h *PatientHandler) Create(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	var body patientBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.FirstName == nil || body.LastName == nil {
		return badRequest(c, "first_name and last_name are required")
	}

	dob, err := parseDOB(body.DateOfBirth)
	if err != nil {
		return badRequest(c, "date_of_birth must be YYYY-MM-DD")
	}

	p, err := h.svc.Create(c.Context(), userID, patient.CreatePatientRequest{
		FirstName:   *body.FirstName,
		LastName:    *body.LastName,
		Email:       body.Email,
		Phone:       body.Phone,
		DateOfBirth: dob,
	})
	if err != nil {
		return mapPatientError(c, err)
	}

	return created(c, p)
}

// GET /api/v1/patients/:id
func (h *PatientHandler) Get(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	p, err := h.svc.GetByID(c.Context(), userID, patientID)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, p)
}

// PATCH /api/v1/patients/:id
func (h *PatientHandler) Update(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body patientBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	dob, err := parseDOB(body.DateOfBirth)
	if err != nil {
		return badRequest(c, "date_of_birth must be YYYY-MM-DD")
	}

	p, err := h.svc.Update(c.Context(), userID, patientID, patient.UpdatePatientRequest{
		FirstName:   body.FirstName,
		LastName:    body.LastName,
		Email:       body.Email,
		Phone:       body.Phone,
		DateOfBirth: dob,
	})
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, p)
}

// DELETE /api/v1/patients/:id
func (h *PatientHandler) Delete(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	if err := h.svc.Delete(c.Context(), userID, patientID); err != nil {
		return mapPatientError(c, err)
	}
	return noContent(c)
}
