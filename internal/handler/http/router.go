package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/cmlabs-hris/hris-admin-go/internal/config"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/profile"
	"github.com/cmlabs-hris/hris-admin-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/metrics"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// NewLogger returns the JSON request logger shared by the binaries.
func NewLogger(app string, cfg config.AppConfig) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(cfg.Env != "production")
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       parseLevel(cfg.LogLevel),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", app),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)
}

func parseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}

func NewRouter(
	cfg *config.Config,
	logger *slog.Logger,
	JWTService jwt.Service,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	payrollHandler PayrollHandler,
	recruitmentHandler RecruitmentHandler,
	dashboardHandler DashboardHandler,
	settingsHandler SettingsHandler,
	notificationHandler NotificationHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.CORSOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Handle("/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Route("/session", func(r chi.Router) {
				r.Get("/", settingsHandler.GetSession)
				r.Post("/sign-out", settingsHandler.SignOut)
			})

			r.Route("/profile", func(r chi.Router) {
				r.With(middleware.RequirePermission(profile.PermissionViewOwnProfile)).Get("/", settingsHandler.GetProfile)
				r.With(middleware.RequirePermission(profile.PermissionEditOwnProfile)).Put("/", settingsHandler.UpdateProfile)
			})

			r.Route("/profiles", func(r chi.Router) {
				r.Use(middleware.RequirePermission(profile.PermissionSettingsManage))
				r.Get("/", settingsHandler.ListProfiles)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", settingsHandler.GetCompanySettings)
				r.With(middleware.RequirePermission(profile.PermissionSettingsManage)).Put("/", settingsHandler.UpdateCompanySettings)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(profile.PermissionEmployeeViewAll))
					r.Get("/", employeeHandler.ListEmployees)
					r.Get("/{id}", employeeHandler.GetEmployee)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(profile.PermissionEmployeeManage))
					r.Post("/", employeeHandler.CreateEmployee)
					r.Put("/{id}", employeeHandler.EditEmployee)
					r.Patch("/{id}", employeeHandler.UpdateEmployee)
					r.Delete("/{id}", employeeHandler.DeleteEmployee)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(profile.PermissionAttendanceViewAll))
					r.Get("/", attendanceHandler.ListAttendance)
					r.Get("/{id}", attendanceHandler.GetAttendance)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(profile.PermissionAttendanceManage))
					r.Post("/", attendanceHandler.RecordAttendance)
					r.Put("/{id}", attendanceHandler.EditAttendance)
					r.Patch("/{id}", attendanceHandler.UpdateAttendance)
					r.Delete("/{id}", attendanceHandler.DeleteAttendance)
				})
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(profile.PermissionLeaveViewAll))
					r.Get("/", leaveHandler.ListLeaveRequests)
					r.Get("/{id}", leaveHandler.GetLeaveRequest)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(profile.PermissionLeaveManage))
					r.Post("/", leaveHandler.CreateLeaveRequest)
					r.Put("/{id}", leaveHandler.EditLeaveRequest)
					r.Patch("/{id}", leaveHandler.UpdateLeaveRequest)
					r.Delete("/{id}", leaveHandler.DeleteLeaveRequest)
				})

				r.With(middleware.RequirePermission(profile.PermissionLeaveApprove)).Post("/{id}/decision", leaveHandler.DecideLeaveRequest)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(profile.PermissionPayrollViewAll))
					r.Get("/", payrollHandler.ListPayrollRecords)
					r.Get("/{id}", payrollHandler.GetPayrollRecord)
					r.Get("/{id}/payslip.pdf", payrollHandler.DownloadPayslip)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(profile.PermissionPayrollManage))
					r.Post("/", payrollHandler.CreatePayrollRecord)
					r.Put("/{id}", payrollHandler.EditPayrollRecord)
					r.Patch("/{id}", payrollHandler.UpdatePayrollRecord)
					r.Delete("/{id}", payrollHandler.DeletePayrollRecord)
				})
			})

			r.Route("/recruitment", func(r chi.Router) {
				r.Use(middleware.RequirePermission(profile.PermissionRecruitmentManage))

				r.Route("/applicants", func(r chi.Router) {
					r.Get("/", recruitmentHandler.ListApplicants)
					r.Post("/", recruitmentHandler.CreateApplicant)
					r.Patch("/{id}", recruitmentHandler.UpdateApplicant)
					r.Delete("/{id}", recruitmentHandler.DeleteApplicant)
				})
				r.Route("/job-offers", func(r chi.Router) {
					r.Get("/", recruitmentHandler.ListJobOffers)
					r.Post("/", recruitmentHandler.CreateJobOffer)
					r.Patch("/{id}", recruitmentHandler.UpdateJobOffer)
					r.Delete("/{id}", recruitmentHandler.DeleteJobOffer)
				})
				r.Route("/onboarding", func(r chi.Router) {
					r.Get("/", recruitmentHandler.ListOnboarding)
					r.Post("/", recruitmentHandler.CreateOnboarding)
					r.Patch("/{id}", recruitmentHandler.UpdateOnboarding)
					r.Delete("/{id}", recruitmentHandler.DeleteOnboarding)
				})
				r.Route("/regularizations", func(r chi.Router) {
					r.Get("/", recruitmentHandler.ListRegularizations)
					r.Post("/", recruitmentHandler.CreateRegularization)
					r.Patch("/{id}", recruitmentHandler.UpdateRegularization)
					r.Delete("/{id}", recruitmentHandler.DeleteRegularization)
				})
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequirePermission(profile.PermissionReportsView))
				r.Get("/dashboard", dashboardHandler.GetDashboard)
				r.Get("/reports", dashboardHandler.GetReport)
				r.Get("/reports/export.xlsx", dashboardHandler.ExportEmployeeCosts)
			})

			r.With(middleware.RequirePermission(profile.PermissionLeaveApprove)).
				Post("/notifications/leave-decision", notificationHandler.SendLeaveDecision)
		})
	})
	return r
}

// NewNotifierRouter serves the standalone leave notification endpoint:
// open CORS, per-client rate limiting and no authentication.
func NewNotifierRouter(logger *slog.Logger, notificationHandler NotificationHandler, limiter func(http.Handler) http.Handler, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"POST", "OPTIONS"},
		AllowedHeaders: []string{"authorization", "x-client-info", "apikey", "content-type"},
		MaxAge:         300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))
	r.Use(chiMiddleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Handle("/metrics", metrics.Handler())
	r.With(limiter).Post("/send-leave-notification", notificationHandler.SendLeaveDecision)
	return r
}
