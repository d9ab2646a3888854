package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/config"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/notification"
	appHTTP "github.com/cmlabs-hris/hris-admin-go/internal/handler/http"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/email"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/idempotency"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-admin-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/hris-admin-go/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/hris-admin-go/internal/service/auth"
	dashboardService "github.com/cmlabs-hris/hris-admin-go/internal/service/dashboard"
	employeeService "github.com/cmlabs-hris/hris-admin-go/internal/service/employee"
	leaveService "github.com/cmlabs-hris/hris-admin-go/internal/service/leave"
	notificationService "github.com/cmlabs-hris/hris-admin-go/internal/service/notification"
	payrollService "github.com/cmlabs-hris/hris-admin-go/internal/service/payroll"
	profileService "github.com/cmlabs-hris/hris-admin-go/internal/service/profile"
	recruitmentService "github.com/cmlabs-hris/hris-admin-go/internal/service/recruitment"
	reportService "github.com/cmlabs-hris/hris-admin-go/internal/service/report"
	settingsService "github.com/cmlabs-hris/hris-admin-go/internal/service/settings"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid config: ", err)
	}

	logger := appHTTP.NewLogger("hris-admin", cfg.App)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	// Redis is optional: without it settings are read from the store on
	// every request and notification dedupe is off.
	var (
		cache  redis.Cmdable
		dedupe notification.DedupeStore
	)
	if cfg.Redis.Addr != "" {
		rdb, err := idempotency.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal("Error connecting to redis: ", err)
		}
		defer rdb.Close()
		cache = rdb
		dedupe = idempotency.NewRedisStore(rdb, cfg.Notification.DedupeTTL)
	} else {
		slog.Warn("REDIS_ADDR not set, notification dedupe disabled")
	}

	mailer, err := email.NewMailer(cfg.Email)
	if err != nil {
		log.Fatal("Failed to initialize mailer: ", err)
	}
	templates, err := email.NewTemplates()
	if err != nil {
		log.Fatal("Failed to load email templates: ", err)
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	profileRepo := postgresql.NewProfileRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	applicantRepo := postgresql.NewApplicantRepository(db)
	jobOfferRepo := postgresql.NewJobOfferRepository(db)
	onboardingRepo := postgresql.NewOnboardingRepository(db)
	regularizationRepo := postgresql.NewRegularizationRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	settingsSvc := settingsService.NewSettingsService(settingsRepo, cache)
	profileSvc := profileService.NewProfileService(profileRepo)
	dispatcher := notificationService.NewDispatcher(leaveRequestRepo, mailer, templates, dedupe)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, settingsSvc)
	leaveSvc := leaveService.NewLeaveService(db, leaveRequestRepo, employeeRepo, dispatcher, profileSvc, settingsSvc)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, employeeRepo, settingsSvc)
	recruitmentSvc := recruitmentService.NewRecruitmentService(applicantRepo, jobOfferRepo, onboardingRepo, regularizationRepo)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo, attendanceRepo, leaveRequestRepo, settingsSvc)
	reportSvc := reportService.NewReportService(employeeRepo, attendanceRepo, payrollRepo, settingsSvc)
	authSvc := serviceAuth.NewAuthService(JWTService)

	router := appHTTP.NewRouter(
		cfg,
		logger,
		JWTService,
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewLeaveHandler(leaveSvc),
		appHTTP.NewPayrollHandler(payrollSvc),
		appHTTP.NewRecruitmentHandler(recruitmentSvc),
		appHTTP.NewDashboardHandler(dashboardSvc, reportSvc),
		appHTTP.NewSettingsHandler(authSvc, profileSvc, settingsSvc),
		appHTTP.NewNotificationHandler(dispatcher),
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", srv.Addr, "env", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
}
