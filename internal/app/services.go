package app

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/intakeai/intakeai_backend/config"
	"github.com/intakeai/intakeai_backend/internal/repo"
	"github.com/intakeai/intakeai_backend/internal/service/appointment"
	"github.com/intakeai/intakeai_backend/internal/service/auth"
	"github.com/intakeai/intakeai_backend/internal/service/intake"
	"github.com/intakeai/intakeai_backend/internal/service/intakelink"
	"github.com/intakeai/intakeai_backend/internal/service/patient"
	"github.com/intakeai/intakeai_backend/internal/service/summary"
	"github.com/intakeai/intakeai_backend/pkg/email"
	"github.com/intakeai/intakeai_backend/pkg/gemini"
	pasetotoken "github.com/intakeai/intakeai_backend/pkg/paseto"
	"github.com/intakeai/intakeai_backend/pkg/sms"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAuthService,
		ProvidePatientService,
		ProvideIntakeLinkService,
		ProvideIntakeService,
		ProvideSummaryService,
		ProvideAppointmentService,
		ProvidePasetoManager,
	),
)

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
) auth.Service {
	return auth.New(db, rdb, paseto, cfg)
}

func ProvidePatientService(db *repo.Client) patient.Service {
	return patient.New(db)
}

func ProvideIntakeLinkService(
	db *repo.Client,
	patients patient.Service,
	mailer *email.Client,
	smsCli *sms.Client,
	cfg *config.Config,
) intakelink.Service {
	return intakelink.New(db, patients, mailer, smsCli, cfg)
}

func ProvideIntakeService(db *repo.Client, patients patient.Service) intake.Service {
	return intake.New(db, patients)
}

func ProvideSummaryService(db *repo.Client, intakes intake.Service, gen *gemini.Client) summary.Service {
	return summary.New(db, intakes, gen)
}

func ProvideAppointmentService(db *repo.Client, patients patient.Service) appointment.Service {
	return appointment.New(db, patients)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
