package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/intakeai/intakeai_backend/config"
	"github.com/intakeai/intakeai_backend/internal/api/http/handler"
	"github.com/intakeai/intakeai_backend/internal/api/http/middleware"
	"github.com/intakeai/intakeai_backend/internal/service/appointment"
	"github.com/intakeai/intakeai_backend/internal/service/auth"
	"github.com/intakeai/intakeai_backend/internal/service/intake"
	"github.com/intakeai/intakeai_backend/internal/service/intakelink"
	"github.com/intakeai/intakeai_backend/internal/service/patient"
	"github.com/intakeai/intakeai_backend/internal/service/summary"
	pasetotoken "github.com/intakeai/intakeai_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg            *config.Config
	Redis          *redis.Client
	AuthSvc        auth.Service
	PatientSvc     patient.Service
	IntakeLinkSvc  intakelink.Service
	IntakeSvc      intake.Service
	SummarySvc     summary.Service
	AppointmentSvc appointment.Service
	PasetoMgr      *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)
	intakeLimiter := middleware.NewPublicIntakeLimiter(r.p.Redis)

	// 3. Initialize Handlers
	authH := handler.NewAuthHandler(r.p.AuthSvc)
	patientH := handler.NewPatientHandler(r.p.PatientSvc)
	linkH := handler.NewIntakeLinkHandler(r.p.IntakeLinkSvc)
	intakeH := handler.NewIntakeHandler(r.p.IntakeSvc)
	publicH := handler.NewPublicIntakeHandler(r.p.IntakeSvc)
	summaryH := handler.NewSummaryHandler(r.p.SummarySvc)
	appointmentH := handler.NewAppointmentHandler(r.p.AppointmentSvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerAuthRoutes(api, authH, authRequired)
	r.registerPatientRoutes(api, patientH, linkH, intakeH, appointmentH, authRequired)
	r.registerIntakeRoutes(api, linkH, intakeH, summaryH, appointmentH, authRequired)
	r.registerPublicIntakeRoutes(api, publicH, intakeLimiter)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New())
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
