package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/intakeai/intakeai_backend/internal/service/appointment"
	"github.com/intakeai/intakeai_backend/internal/service/patient"
)

type AppointmentHandler struct {
	svc appointment.Service
}

func NewAppointmentHandler(svc appointment.Service) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

func mapAppointmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, appointment.ErrAppointmentNotFound),
		errors.Is(err, patient.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, patient.ErrAccessDenied):
		return forbidden(c)
	case errors.Is(err, appointment.ErrInvalidTime),
		errors.Is(err, appointment.ErrInvalidStatus):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /api/v1/patients/:id/appointments
func (h *AppointmentHandler) Create(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body struct {
		ScheduledAt     time.Time `json:"scheduled_at"`
		DurationMinutes *int      `json:"duration_minutes"`
		Reason          *string   `json:"reason"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	a, err := h.svc.Create(c.Context(), userID, patientID, appointment.CreateAppointmentRequest{
		ScheduledAt:     body.ScheduledAt,
		DurationMinutes: body.DurationMinutes,
		Reason:          body.Reason,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return created(c, a)
}

// GET /api/v1/patients/:id/appointments
func (h *AppointmentHandler) ListByPatient(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	apts, err := h.svc.ListByPatient(c.Context(), userID, patientID)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, apts)
}

// PATCH /api/v1/appointments/:id
func (h *AppointmentHandler) Update(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	appointmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		ScheduledAt     *time.Time `json:"scheduled_at"`
		DurationMinutes *int       `json:"duration_minutes"`
		Reason          *string    `json:"reason"`
		Status          *string    `json:"status"`
		Notes           *string    `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	a, err := h.svc.Update(c.Context(), userID, appointmentID, appointment.UpdateAppointmentRequest{
		ScheduledAt:     body.ScheduledAt,
		DurationMinutes: body.DurationMinutes,
		Reason:          body.Reason,
		Status:          body.Status,
		Notes:           body.Notes,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, a)
}

// DELETE /api/v1/appointments/:id
func (h *AppointmentHandler) Delete(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	appointmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	if err := h.svc.Delete(c.Context(), userID, appointmentID); err != nil {
		return mapAppointmentError(c, err)
	}
	return noContent(c)
}
