// Package httpapi exposes the EcoTracker services as a JSON REST API.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrijs2005/ecotracker/internal/emission"
	"github.com/dmitrijs2005/ecotracker/internal/footprint"
	"github.com/dmitrijs2005/ecotracker/internal/logging"
	"github.com/dmitrijs2005/ecotracker/internal/server/metrics"
	"github.com/dmitrijs2005/ecotracker/internal/server/models"
	"github.com/dmitrijs2005/ecotracker/internal/server/repositories/entries"
	"github.com/dmitrijs2005/ecotracker/internal/server/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type userSvc interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
}

type entrySvc interface {
	Submit(ctx context.Context, userID string, d emission.Details, occurredAt time.Time) (*models.Entry, error)
	Preview(ctx context.Context, d emission.Details) (emission.Assessment, error)
	History(ctx context.Context, userID string, filter entries.ListFilter) ([]*models.Entry, error)
	Recent(ctx context.Context, userID string) ([]*models.Entry, error)
}

type summarySvc interface {
	Dashboard(ctx context.Context, userID string) (footprint.Dashboard, error)
	Profile(ctx context.Context, userID string) (*services.Profile, error)
	Suggestions(ctx context.Context, userID string, co2 *float64) (footprint.Suggestions, error)
}

type reportSvc interface {
	Export(ctx context.Context, userID string) (*services.ExportResult, error)
}

// Services groups the business services the API dispatches to.
type Services struct {
	Users   userSvc
	Entries entrySvc
	Summary summarySvc
	Reports reportSvc
}

type Server struct {
	address         string
	users           userSvc
	entries         entrySvc
	summary         summarySvc
	reports         reportSvc
	metrics         *metrics.Metrics
	logger          logging.Logger
	jwtSecret       []byte
	shutdownTimeout time.Duration
}

func NewServer(a string, l logging.Logger, m *metrics.Metrics, svc Services, secretKey string, shutdownTimeout time.Duration) *Server {
	return &Server{
		address:         a,
		logger:          l.With("module", "http_server"),
		metrics:         m,
		users:           svc.Users,
		entries:         svc.Entries,
		summary:         svc.Summary,
		reports:         svc.Reports,
		jwtSecret:       []byte(secretKey),
		shutdownTimeout: shutdownTimeout,
	}
}

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(s.metricsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", s.metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/users/register", s.handleRegister)
		r.Post("/users/login", s.handleLogin)
		r.Post("/users/refresh", s.handleRefresh)
		r.Post("/users/logout", s.handleLogout)
		r.Post("/calc/{category}", s.handleCalc)

		r.Group(func(r chi.Router) {
			r.Use(s.bearerAuth)

			r.Post("/entries/{category}", s.handleSubmit)
			r.Get("/entries/history", s.handleHistory)
			r.Get("/entries/recent", s.handleRecent)
			r.Get("/dashboard/summary", s.handleSummary)
			r.Get("/user/profile", s.handleProfile)
			r.Get("/suggestions", s.handleSuggestions)
			r.Post("/export", s.handleExport)
		})
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve handles requests on lis until ctx is cancelled, then shuts down
// gracefully within the configured timeout.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		sctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			s.logger.Error(ctx, "HTTP shutdown", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		code := ww.Status()
		if code == 0 {
			code = http.StatusOK
		}
		s.metrics.ObserveRequest("http", route, strconv.Itoa(code), time.Since(start))
	})
}
