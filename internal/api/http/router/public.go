package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/intakeai/intakeai_backend/internal/api/http/handler"
)

// Public intake routes are unauthenticated. The token in the path is the only
// credential, so the group carries its own tighter rate limit.
func (r *Router) registerPublicIntakeRoutes(api fiber.Router, h *handler.PublicIntakeHandler, limiter fiber.Handler) {
	group := api.Group("/public/intake", limiter)
	group.Get("/:token", h.GetForm)
	group.Post("/:token", h.Submit)
}
