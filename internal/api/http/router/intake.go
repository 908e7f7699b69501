package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/intakeai/intakeai_backend/internal/api/http/handler"
)

func (r *Router) registerIntakeRoutes(
	api fiber.Router,
	lh *handler.IntakeLinkHandler,
	ih *handler.IntakeHandler,
	sh *handler.SummaryHandler,
	ah *handler.AppointmentHandler,
	authRequired fiber.Handler,
) {
	links := api.Group("/intake-links", authRequired)
	links.Get("/:id", lh.Get)
	links.Delete("/:id", lh.Revoke)

	intakes := api.Group("/intakes", authRequired)
	intakes.Get("/", ih.List)
	intakes.Get("/:id", ih.Get)
	intakes.Post("/:id/summary", sh.Generate)
	intakes.Get("/:id/summary", sh.GetByIntake)
	intakes.Delete("/:id/summary", sh.Delete)

	appointments := api.Group("/appointments", authRequired)
	appointments.Patch("/:id", ah.Update)
	appointments.Delete("/:id", ah.Delete)
}
