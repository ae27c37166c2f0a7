// Package server exposes stored graphs over HTTP.
//
// Routes:
//
//	POST   /graphs              generate and store a graph
//	GET    /graphs              list stored keys
//	PUT    /graphs/{id}         store an uploaded graph
//	GET    /graphs/{id}         persisted JSON, with an ETag
//	GET    /graphs/{id}/matrix  text rendering of the matrix
//	GET    /graphs/{id}/dot     Graphviz DOT
//	DELETE /graphs/{id}         remove a graph
//	GET    /healthz             liveness
//
// Failures are answered with a JSON body {"code": ..., "error": ...}.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/adjgraph/pkg/observability"
	"github.com/matzehuels/adjgraph/pkg/store"
)

const (
	// DefaultMaxNodes caps generation requests when Options.MaxNodes is zero.
	DefaultMaxNodes = 2000

	maxBodyBytes    = 64 << 20
	shutdownTimeout = 10 * time.Second
)

// Options configures a Server.
type Options struct {
	MaxNodes int
	Logger   *log.Logger
}

// Server serves graphs from a store.Store.
type Server struct {
	store    store.Store
	logger   *log.Logger
	maxNodes int
	maxBody  int64
	seed     func() uint64
}

// New returns a server backed by s.
func New(s store.Store, opts Options) *Server {
	if opts.MaxNodes == 0 {
		opts.MaxNodes = DefaultMaxNodes
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Server{
		store:    s,
		logger:   opts.Logger,
		maxNodes: opts.MaxNodes,
		maxBody:  maxBodyBytes,
		seed:     func() uint64 { return uint64(time.Now().UnixNano()) },
	}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/graphs", func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Post("/", s.handleCreate)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGet)
			r.Put("/", s.handlePut)
			r.Delete("/", s.handleDelete)
			r.Get("/matrix", s.handleMatrix)
			r.Get("/dot", s.handleDOT)
		})
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		elapsed := time.Since(start)

		observability.HTTP().OnRequest(r.Context(), r.Method, route, status, elapsed)
		s.logger.Debug("request",
			"method", r.Method,
			"route", route,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", elapsed.Round(time.Microsecond),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
