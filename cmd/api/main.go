package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/callcrm-api/internal/application/auth"
	"github.com/jhoicas/callcrm-api/internal/application/calllog"
	"github.com/jhoicas/callcrm-api/internal/application/followup"
	"github.com/jhoicas/callcrm-api/internal/application/report"
	"github.com/jhoicas/callcrm-api/internal/application/usecase"
	"github.com/jhoicas/callcrm-api/internal/domain/policy"
	"github.com/jhoicas/callcrm-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/callcrm-api/internal/interfaces/http"
	"github.com/jhoicas/callcrm-api/pkg/config"
	"github.com/jhoicas/callcrm-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	employeeRepo := postgres.NewEmployeeRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	callLogRepo := postgres.NewCallLogRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)

	pol := policy.New(time.Duration(cfg.Policy.EditWindowHours) * time.Hour)

	authUC := auth.NewAuthUseCase(employeeRepo, auth.JWTConfig{
		Secret:         cfg.JWT.Secret,
		ExpMinutes:     cfg.JWT.ExpMinutes,
		RefreshSecret:  cfg.JWT.RefreshSecret,
		RefreshExpDays: cfg.JWT.RefreshExpDays,
		Issuer:         cfg.JWT.Issuer,
	})
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, callLogRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo, callLogRepo)
	callLogUC := calllog.NewUseCase(callLogRepo, customerRepo, reportRepo, pol)
	followupUC := followup.NewUseCase(callLogRepo)
	reportUC := report.NewUseCase(reportRepo, followupUC, report.Config{
		UnaddressedAfter: time.Duration(cfg.Policy.UnaddressedHours) * time.Hour,
		InactiveAfter:    time.Duration(cfg.Policy.InactiveDays) * 24 * time.Hour,
	})
	dashboardUC := report.NewDashboardUseCase(reportRepo, callLogRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name + " API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		EmployeeUC:  employeeUC,
		CustomerUC:  customerUC,
		CallLogUC:   callLogUC,
		FollowupUC:  followupUC,
		ReportUC:    reportUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
