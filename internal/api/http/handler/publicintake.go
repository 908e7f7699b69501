package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/intakeai/intakeai_backend/internal/service/intake"
)

// PublicIntakeHandler serves the unauthenticated, token-addressed endpoints
// that patients use to fill in their form.
type PublicIntakeHandler struct {
	svc intake.Service
}

func NewPublicIntakeHandler(svc intake.Service) *PublicIntakeHandler {
	return &PublicIntakeHandler{svc: svc}
}

func mapPublicIntakeError(c fiber.Ctx, err error) error {
	var verr *intake.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":          "required fields are missing",
			"missing_fields": verr.MissingFields,
		})
	case errors.Is(err, intake.ErrInvalidLink):
		return notFound(c, err.Error())
	case errors.Is(err, intake.ErrAlreadySubmitted),
		errors.Is(err, intake.ErrLinkExpired):
		return gone(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /api/v1/public/intake/:token
func (h *PublicIntakeHandler) GetForm(c fiber.Ctx) error {
	form, err := h.svc.GetForm(c.Context(), c.Params("token"))
	if err != nil {
		return mapPublicIntakeError(c, err)
	}

	return ok(c, fiber.Map{
		"patient_first_name": form.PatientFirstName,
		"schema_version":     form.SchemaVersion,
		"questions":          form.Questions,
		"expires_at":         form.ExpiresAt,
	})
}

// POST /api/v1/public/intake/:token
func (h *PublicIntakeHandler) Submit(c fiber.Ctx) error {
	var body struct {
		Responses map[string]string `json:"responses"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Responses == nil {
		return badRequest(c, "responses is required")
	}

	in, err := h.svc.Submit(c.Context(), c.Params("token"), body.Responses)
	if err != nil {
		return mapPublicIntakeError(c, err)
	}

	return created(c, fiber.Map{
		"id":           in.ID,
		"completed_at": in.CompletedAt,
	})
}
