package http

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"

	"github.com/intakeai/intakeai_backend/config"
	"github.com/intakeai/intakeai_backend/internal/api/http/router"
	"github.com/intakeai/intakeai_backend/internal/app"
)

func Start(cfg *config.Config, timeout time.Duration) {
	fx.New(
		fx.Supply(cfg),
		app.InfraModule,
		app.ServiceModule,
		router.Module,
		Module, // This is the http.Module from server.go

		// Invoke *fiber.App so the server is constructed and its OnStart
		// hook registered.
		fx.Invoke(func(*fiber.App) {}),

		fx.StopTimeout(timeout),
	).Run()
}
