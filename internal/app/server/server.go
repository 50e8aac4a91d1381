// Package server assembles the HTTP API from the domain services.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrms/internal/domain/attendance"
	"hrms/internal/domain/auth"
	"hrms/internal/domain/calendar"
	"hrms/internal/domain/core"
	"hrms/internal/domain/leave"
	"hrms/internal/domain/notices"
	"hrms/internal/domain/organization"
	"hrms/internal/domain/payroll"
	"hrms/internal/domain/recruitment"
	"hrms/internal/domain/reports"
	"hrms/internal/domain/requests"
	"hrms/internal/domain/schedule"
	"hrms/internal/platform/config"
	"hrms/internal/platform/email"
	"hrms/internal/platform/jobs"
	"hrms/internal/platform/metrics"
	attendancehandler "hrms/internal/transport/http/handlers/attendance"
	authhandler "hrms/internal/transport/http/handlers/auth"
	calendarhandler "hrms/internal/transport/http/handlers/calendar"
	corehandler "hrms/internal/transport/http/handlers/core"
	leavehandler "hrms/internal/transport/http/handlers/leave"
	noticeshandler "hrms/internal/transport/http/handlers/notices"
	payrollhandler "hrms/internal/transport/http/handlers/payroll"
	recruitmenthandler "hrms/internal/transport/http/handlers/recruitment"
	reportshandler "hrms/internal/transport/http/handlers/reports"
	requestshandler "hrms/internal/transport/http/handlers/requests"
	schedulehandler "hrms/internal/transport/http/handlers/schedule"
	"hrms/internal/transport/http/middleware"
)

// Services bundles everything the routes call into.
type Services struct {
	Gate          *auth.Gate
	Recovery      *auth.Recovery
	Core          *core.Service
	Organizations *organization.Service
	Attendance    *attendance.Service
	Leave         *leave.Service
	Requests      *requests.Service
	Payroll       *payroll.Service
	Notices       *notices.Service
	Calendar      *calendar.Service
	Recruitment   *recruitment.Service
	Schedule      *schedule.Service
	Reports       *reports.Service
}

// NewServices wires every service to its Postgres store.
func NewServices(pool *pgxpool.Pool, cfg config.Config) Services {
	accounts := core.NewStore(pool)
	sessions := auth.NewStore(pool)
	coreSvc := core.NewService(accounts)
	return Services{
		Gate:          auth.NewGate(sessions, coreSvc, cfg.JWTSecret, cfg.SessionTTL),
		Recovery:      auth.NewRecovery(accounts, sessions, email.New(cfg), cfg.PasswordResetTTL, cfg.VerificationTTL),
		Core:          coreSvc,
		Organizations: organization.NewService(organization.NewStore(pool)),
		Attendance:    attendance.NewService(attendance.NewStore(pool)),
		Leave:         leave.NewService(leave.NewStore(pool)),
		Requests:      requests.NewService(requests.NewStore(pool)),
		Payroll:       payroll.NewService(payroll.NewStore(pool)),
		Notices:       notices.NewService(notices.NewStore(pool)),
		Calendar:      calendar.NewService(calendar.NewStore(pool)),
		Recruitment:   recruitment.NewService(recruitment.NewStore(pool)),
		Schedule:      schedule.NewService(schedule.NewStore(pool)),
		Reports:       reports.NewService(reports.NewStore(pool)),
	}
}

// Options are the router inputs that do not come from the services.
type Options struct {
	Config  config.Config
	Metrics *metrics.Collector
	// Gate overrides Services.Gate when set.
	Gate  middleware.Gate
	Ready func(ctx context.Context) error
}

// NewRouter mounts the API under /api/v1 plus the liveness and readiness checks.
func NewRouter(svc Services, opts Options) http.Handler {
	cfg := opts.Config
	collector := opts.Metrics
	if collector == nil {
		collector = metrics.New()
	}
	var gate middleware.Gate = svc.Gate
	if opts.Gate != nil {
		gate = opts.Gate
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if opts.Ready != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := opts.Ready(ctx); err != nil {
				http.Error(w, "db not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	limiter := middleware.SensitiveRateLimit(cfg.LoginRateLimitPerMinute, time.Minute)
	authHandler := authhandler.NewHandler(svc.Gate, svc.Organizations, svc.Core, svc.Recovery)

	router.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(limiter)
			authHandler.RegisterPublic(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(gate))
			r.Use(limiter)

			authHandler.RegisterRoutes(r)
			corehandler.NewHandler(svc.Core, svc.Organizations, gate).RegisterRoutes(r)
			attendancehandler.NewHandler(svc.Attendance, gate).RegisterRoutes(r)
			leavehandler.NewHandler(svc.Leave, gate).RegisterRoutes(r)
			requestshandler.NewHandler(svc.Requests, gate).RegisterRoutes(r)
			payrollhandler.NewHandler(svc.Payroll, gate).RegisterRoutes(r)
			noticeshandler.NewHandler(svc.Notices, gate).RegisterRoutes(r)
			calendarhandler.NewHandler(svc.Calendar, gate).RegisterRoutes(r)
			recruitmenthandler.NewHandler(svc.Recruitment, gate).RegisterRoutes(r)
			schedulehandler.NewHandler(svc.Schedule, gate).RegisterRoutes(r)
			reportshandler.NewHandler(svc.Reports, collector, gate).RegisterRoutes(r)
		})
	})

	return router
}

const SessionPurgeJob = "session_purge"

type SessionPurger interface {
	PurgeSessions(ctx context.Context, cutoff time.Time) (int64, error)
}

// PurgeSessions deletes sessions last issued more than ttl ago.
func PurgeSessions(sessions SessionPurger, ttl time.Duration) jobs.Task {
	return func(ctx context.Context) (any, error) {
		deleted, err := sessions.PurgeSessions(ctx, time.Now().Add(-ttl))
		return map[string]int64{"deleted": deleted}, err
	}
}

// Run serves the API on cfg.Addr until ctx is cancelled, then drains
// in-flight requests. Expired sessions are purged in the background.
func Run(ctx context.Context, cfg config.Config, pool *pgxpool.Pool) error {
	sessions := auth.NewStore(pool)
	scheduler := jobs.New()
	scheduler.Every(SessionPurgeJob, cfg.SessionPurgeInterval, PurgeSessions(sessions, cfg.SessionTTL))
	scheduler.Start(ctx)

	handler := NewRouter(NewServices(pool, cfg), Options{
		Config:  cfg,
		Metrics: metrics.New(),
		Ready:   pool.Ping,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("hrms server listening", "addr", cfg.Addr, "env", cfg.Environment)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
