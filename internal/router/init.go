package router

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/twotier/userapi/config"
	"github.com/twotier/userapi/internal/application"
	pginfra "github.com/twotier/userapi/internal/infrastructure/postgres"
	handlers "github.com/twotier/userapi/internal/interface/http"
	"github.com/twotier/userapi/internal/router/modules"
)

// Deps holds the process-level singletons built in main. Modules are wired from
// it explicitly; there is no package-global container, so the whole graph is
// visible at the call site and trivially replaceable in tests.
type Deps struct {
	Cfg    *config.Config
	Logger *logrus.Logger
	Pool   *pgxpool.Pool
	Redis  *redis.Client // nil disables rate limiting
}

// InitModules builds the repositories, services, and handlers and registers
// every feature module with the router registry. Called once during startup.
func InitModules(r *Registry, d Deps) {
	users := pginfra.NewUserRepository(d.Pool)
	events := pginfra.NewEventLogRepository(d.Pool)

	userSvc := application.NewUserService(users, events, d.Logger, d.Cfg.InstanceID, d.Cfg.StoreTimeout)
	logSvc := application.NewEventLogService(events, d.Cfg.StoreTimeout)
	sysSvc := &application.SystemService{
		DB:            d.Pool,
		AppName:       d.Cfg.AppName,
		AppVersion:    d.Cfg.AppVersion,
		InstanceID:    d.Cfg.InstanceID,
		DBHost:        d.Cfg.DBHost,
		DBName:        d.Cfg.DBName,
		HealthTimeout: d.Cfg.HealthTimeout,
	}

	r.Add(modules.NewSystemModule(handlers.NewSystemHandler(sysSvc)))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, d.Logger), d.Redis))
	r.Add(modules.NewEventLogModule(handlers.NewEventLogHandler(logSvc, d.Logger)))
	if d.Cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(d.Redis))
	}
}
