// Command notifier serves the public leave decision endpoint on its own:
// POST /send-leave-notification with open CORS and per-client rate limits.
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
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/ratelimit"
	"github.com/cmlabs-hris/hris-admin-go/internal/repository/postgresql"
	notificationService "github.com/cmlabs-hris/hris-admin-go/internal/service/notification"
	"golang.org/x/time/rate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid config: ", err)
	}

	logger := appHTTP.NewLogger("hris-notifier", cfg.App)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	var dedupe notification.DedupeStore
	if cfg.Redis.Addr != "" {
		rdb, err := idempotency.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal("Error connecting to redis: ", err)
		}
		defer rdb.Close()
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

	dispatcher := notificationService.NewDispatcher(postgresql.NewLeaveRequestRepository(db), mailer, templates, dedupe)

	limiter := ratelimit.ByIP(rate.Limit(cfg.Notification.RateLimit), cfg.Notification.RateBurst, func(w http.ResponseWriter) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"Too many requests"}` + "\n"))
	})

	router := appHTTP.NewNotifierRouter(logger, appHTTP.NewNotificationHandler(dispatcher), limiter, cfg.Notification.AllowedOrg)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Notification.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Notifier running", "addr", srv.Addr, "provider", mailer.Provider())
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
