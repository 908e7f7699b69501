package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/intakeai/intakeai_backend/internal/service/intake"
	"github.com/intakeai/intakeai_backend/internal/service/patient"
	"github.com/intakeai/intakeai_backend/internal/service/summary"
)

type SummaryHandler struct {
	svc summary.Service
}

func NewSummaryHandler(svc summary.Service) *SummaryHandler {
	return &SummaryHandler{svc: svc}
}

func mapSummaryError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, summary.ErrSummaryNotFound),
		errors.Is(err, intake.ErrIntakeNotFound),
		errors.Is(err, patient.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, patient.ErrAccessDenied):
		return forbidden(c)
	case errors.Is(err, summary.ErrEmptyResponses):
		return badRequest(c, err.Error())
	case errors.Is(err, summary.ErrUpstream):
		return badGateway(c, "summary generation failed upstream")
	default:
		return internalError(c)
	}
}

// POST /api/v1/intakes/:id/summary
func (h *SummaryHandler) Generate(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	intakeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid intake id")
	}

	sum, err := h.svc.Generate(c.Context(), userID, intakeID)
	if err != nil {
		return mapSummaryError(c, err)
	}
	return created(c, sum)
}

// GET /api/v1/intakes/:id/summary
func (h *SummaryHandler) GetByIntake(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	intakeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid intake id")
	}

	sum, err := h.svc.GetByIntake(c.Context(), userID, intakeID)
	if err != nil {
		return mapSummaryError(c, err)
	}
	return ok(c, sum)
}

// DELETE /api/v1/intakes/:id/summary
func (h *SummaryHandler) Delete(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	intakeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid intake id")
	}

	if err := h.svc.Delete(c.Context(), userID, intakeID); err != nil {
		return mapSummaryError(c, err)
	}
	return noContent(c)
}
