package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/callcrm-api/internal/application/auth"
	"github.com/jhoicas/callcrm-api/internal/application/calllog"
	"github.com/jhoicas/callcrm-api/internal/application/followup"
	"github.com/jhoicas/callcrm-api/internal/application/report"
	"github.com/jhoicas/callcrm-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	EmployeeUC  *usecase.EmployeeUseCase
	CustomerUC  *usecase.CustomerUseCase
	CallLogUC   *calllog.UseCase
	FollowupUC  *followup.UseCase
	ReportUC    *report.UseCase
	DashboardUC *report.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth: login y refresh públicos, el resto con token.
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)
	authGroup.Post("/change-password", AuthMiddleware(deps.JWTSecret), authHandler.ChangePassword)

	// Rutas protegidas (requieren Bearer Token).
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Employees (solo Admin)
	employees := protected.Group("/employees", RequireAdmin())
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/:id", employeeHandler.Get)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)
	employees.Post("/:id/reset-password", employeeHandler.ResetPassword)

	// Customers: lectura para todos, escritura solo Admin.
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Get("/search", customerHandler.QuickSearch)
	customers.Get("/check-mobile", customerHandler.CheckMobile)
	customers.Post("/", RequireAdmin(), customerHandler.Create)
	customers.Get("/:id", customerHandler.Get)
	customers.Get("/:id/calls", customerHandler.Calls)
	customers.Put("/:id", RequireAdmin(), customerHandler.Update)
	customers.Delete("/:id", RequireAdmin(), customerHandler.Delete)

	// Call logs: la política fina (ventana de edición, alcance por rol)
	// vive en el caso de uso, no acá.
	callLogs := protected.Group("/call-logs")
	callLogHandler := NewCallLogHandler(deps.CallLogUC, deps.FollowupUC)
	callLogs.Post("/", callLogHandler.Create)
	callLogs.Get("/", callLogHandler.List)
	callLogs.Get("/my-logs", callLogHandler.MyLogs)
	callLogs.Get("/stats", callLogHandler.Stats)
	callLogs.Get("/followups", callLogHandler.Followups)
	callLogs.Get("/:id", callLogHandler.Get)
	callLogs.Put("/:id", callLogHandler.Update)
	callLogs.Delete("/:id", callLogHandler.Delete)

	// Reports: agregados de solo lectura; los Agents quedan acotados a su
	// propio employee_id dentro de cada handler.
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/employee-performance", reportHandler.EmployeePerformance)
	reports.Get("/employee-breakdown", reportHandler.EmployeeBreakdown)
	reports.Get("/purpose-summary", reportHandler.PurposeSummary)
	reports.Get("/call-trends", reportHandler.CallTrends)
	reports.Get("/missed-calls", reportHandler.MissedCalls)
	reports.Get("/pending-followups", reportHandler.PendingFollowups)
	reports.Get("/customer-engagement", reportHandler.CustomerEngagement)

	// Dashboards
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/admin", RequireAdmin(), dashboardHandler.Admin)
	dashboard.Get("/employee", dashboardHandler.Employee)
}
