package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/intakeai/intakeai_backend/internal/service/intake"
	"github.com/intakeai/intakeai_backend/internal/service/patient"
)

// IntakeHandler serves the doctor-facing read endpoints for submitted forms.
type IntakeHandler struct {
	svc intake.Service
}

func NewIntakeHandler(svc intake.Service) *IntakeHandler {
	return &IntakeHandler{svc: svc}
}

func mapIntakeError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, intake.ErrIntakeNotFound),
		errors.Is(err, patient.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, patient.ErrAccessDenied):
		return forbidden(c)
	case errors.Is(err, intake.ErrInvalidStatusFilter):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /api/v1/intakes
func (h *IntakeHandler) List(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	var f intake.ListFilters
	if s := c.Query("status"); s != "" {
		f.Status = &s
	}
	if hs := c.Query("has_summary"); hs != "" {
		v, err := strconv.ParseBool(hs)
		if err != nil {
			return badRequest(c, "has_summary must be a boolean")
		}
		f.HasSummary = &v
	}

	intakes, err := h.svc.List(c.Context(), userID, f)
	if err != nil {
		return mapIntakeError(c, err)
	}
	return ok(c, intakes)
}

// GET /api/v1/patients/:id/intakes
func (h *IntakeHandler) ListByPatient(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	intakes, err := h.svc.ListByPatient(c.Context(), userID, patientID)
	if err != nil {
		return mapIntakeError(c, err)
	}
	return ok(c, intakes)
}

// GET /api/v1/intakes/:id
func (h *IntakeHandler) Get(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	intakeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid intake id")
	}

	in, err := h.svc.GetByID(c.Context(), userID, intakeID)
	if err != nil {
		return mapIntakeError(c, err)
	}
	return ok(c, in)
}
