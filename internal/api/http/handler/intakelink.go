package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/intakeai/intakeai_backend/internal/service/intakelink"
	"github.com/intakeai/intakeai_backend/internal/service/patient"
)

type IntakeLinkHandler struct {
	svc intakelink.Service
}

func NewIntakeLinkHandler(svc intakelink.Service) *IntakeLinkHandler {
	return &IntakeLinkHandler{svc: svc}
}

func mapIntakeLinkError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, intakelink.ErrLinkNotFound),
		errors.Is(err, patient.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, patient.ErrAccessDenied):
		return forbidden(c)
	case errors.Is(err, intakelink.ErrInvalidExpiry):
		return badRequest(c, err.Error())
	case errors.Is(err, intakelink.ErrLinkUsed):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// linkJSON flattens a link with its derived status for API responses.
func linkJSON(l *intakelink.LinkWithStatus) fiber.Map {
	return fiber.Map{
		"id":         l.Link.ID,
		"patient_id": l.Link.PatientID,
		"token":      l.Link.Token,
		"url":        l.URL,
		"status":     l.Status,
		"expires_at": l.Link.ExpiresAt,
		"used_at":    l.Link.UsedAt,
		"created_at": l.Link.CreatedAt,
	}
}

// POST /api/v1/patients/:id/intake-links
func (h *IntakeLinkHandler) Create(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body struct {
		ExpiryDays *int `json:"expiry_days"`
		SendEmail  bool `json:"send_email"`
		SendSMS    bool `json:"send_sms"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	link, err := h.svc.Create(c.Context(), userID, patientID, intakelink.CreateLinkRequest{
		ExpiryDays: body.ExpiryDays,
		SendEmail:  body.SendEmail,
		SendSMS:    body.SendSMS,
	})
	if err != nil {
		return mapIntakeLinkError(c, err)
	}
	return created(c, linkJSON(link))
}

// GET /api/v1/patients/:id/intake-links
func (h *IntakeLinkHandler) ListByPatient(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	links, err := h.svc.List(c.Context(), userID, patientID)
	if err != nil {
		return mapIntakeLinkError(c, err)
	}

	out := make([]fiber.Map, 0, len(links))
	for _, l := range links {
		out = append(out, linkJSON(l))
	}
	return ok(c, out)
}

// GET /api/v1/intake-links/:id
func (h *IntakeLinkHandler) Get(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	linkID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid link id")
	}

	link, err := h.svc.Get(c.Context(), userID, linkID)
	if err != nil {
		return mapIntakeLinkError(c, err)
	}
	return ok(c, linkJSON(link))
}

// DELETE /api/v1/intake-links/:id
func (h *IntakeLinkHandler) Revoke(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	linkID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid link id")
	}

	if err := h.svc.Revoke(c.Context(), userID, linkID); err != nil {
		return mapIntakeLinkError(c, err)
	}
	return noContent(c)
}
