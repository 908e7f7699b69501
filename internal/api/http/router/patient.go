package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/intakeai/intakeai_backend/internal/api/http/handler"
)

func (r *Router) registerPatientRoutes(
	api fiber.Router,
	ph *handler.PatientHandler,
	lh *handler.IntakeLinkHandler,
	ih *handler.IntakeHandler,
	ah *handler.AppointmentHandler,
	authRequired fiber.Handler,
) {
	patients := api.Group("/patients", authRequired)

	// Patient CRUD
	patients.Get("/", ph.List)
	patients.Post("/", ph.Create)

	p := patients.Group("/:id")
	p.Get("/", ph.Get)
	p.Patch("/", ph.Update)
	p.Delete("/", ph.Delete)

	// Intake links
	p.Get("/intake-links", lh.ListByPatient)
	p.Post("/intake-links", lh.Create)

	// Submitted intakes
	p.Get("/intakes", ih.ListByPatient)

	// Appointments
	p.Get("/appointments", ah.ListByPatient)
	p.Post("/appointments", ah.Create)
}
