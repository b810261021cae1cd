package api

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/peachieglow/glow/internal/metrics"
	"github.com/peachieglow/glow/internal/service"
	"github.com/peachieglow/glow/pkg/httputil"
)

const (
	defaultRequestTimeout = 10 * time.Second
	shutdownTimeout       = 10 * time.Second
)

type Server struct {
	mx                  *chi.Mux
	habitsService       service.HabitsServiceI
	achievementsService service.AchievementsServiceI
	userService         service.UserServiceI
	health              HealthChecker
	metrics             metrics.Recorder
	metricsHandler      http.Handler
	limiter             *RateLimiter
	requestTimeout      time.Duration
}

type ServicesList struct {
	HabitsService       service.HabitsServiceI
	AchievementsService service.AchievementsServiceI
	UserService         service.UserServiceI
	Health              HealthChecker

	// Optional. Without Metrics nothing is recorded, without MetricsHandler
	// /metrics is not mounted and without RateLimiter requests are not limited.
	Metrics        metrics.Recorder
	MetricsHandler http.Handler
	RateLimiter    *RateLimiter
	RequestTimeout time.Duration
}

func New(servicesOptions *ServicesList) *Server {
	if servicesOptions.HabitsService == nil || servicesOptions.AchievementsService == nil ||
		servicesOptions.UserService == nil || servicesOptions.Health == nil {
		log.Fatal("on api server provided nil services")
	}
	s := &Server{
		mx:                  chi.NewMux(),
		habitsService:       servicesOptions.HabitsService,
		achievementsService: servicesOptions.AchievementsService,
		userService:         servicesOptions.UserService,
		health:              servicesOptions.Health,
		metrics:             servicesOptions.Metrics,
		metricsHandler:      servicesOptions.MetricsHandler,
		limiter:             servicesOptions.RateLimiter,
		requestTimeout:      servicesOptions.RequestTimeout,
	}
	if s.metrics == nil {
		s.metrics = metrics.Noop{}
	}
	if s.requestTimeout <= 0 {
		s.requestTimeout = defaultRequestTimeout
	}
	s.mountRoutes()
	return s
}

func (s *Server) mountRoutes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, s.MetricsMiddleware, s.RecoveryMiddleware)
	s.mx.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteErrorResponse(w, http.StatusNotFound, "route not found")
	})
	s.mx.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteErrorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	s.mx.Get("/health", s.Health)
	s.mx.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	if s.metricsHandler != nil {
		s.mx.Method(http.MethodGet, "/metrics", s.metricsHandler)
	}

	s.mx.Route("/api/v1", func(r chi.Router) {
		if s.limiter != nil {
			r.Use(s.limiter.Middleware())
		}

		r.Route("/habits", func(r chi.Router) {
			r.Use(s.LoggerExtensionMiddleware)
			r.Post("/", s.RecordHabit)
			r.Get("/", s.GetHabits)
		})
		r.Route("/achievements", func(r chi.Router) {
			r.Use(s.LoggerExtensionMiddleware)
			r.Get("/", s.ListAchievements)
			r.Post("/unlock", s.UnlockAchievement)
			r.Post("/evaluate", s.EvaluateAchievements)
		})
		r.Route("/users", func(r chi.Router) {
			r.Post("/", s.ProvisionUser)
			r.Route("/{userId}", func(r chi.Router) {
				r.Use(s.LoggerExtensionMiddleware)
				r.Patch("/", s.UpdateProfile)
				r.Get("/stats", s.GetUserStats)
				r.Get("/activities", s.RecentActivity)
			})
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves on addr until ctx is cancelled, then shuts the server down
// letting in-flight requests finish.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("api server starting", slog.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.New("listening error: " + err.Error())
	case <-ctx.Done():
	}

	slog.Info("shutting down api server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("server shutdown error: " + err.Error())
	}
	slog.Info("api server stopped")
	return nil
}
