// Package server serves a directory of HTML pages with their component
// placeholders hydrated on the way out.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/pthm/hxui"
	"github.com/pthm/hxui/internal/config"
)

// Options wires a Server.
type Options struct {
	Config   *config.Config
	Registry *hxui.Registry
	Logger   zerolog.Logger
	// Metrics is the registry behind hydration metrics and /metrics. Nil
	// disables both.
	Metrics *prometheus.Registry
}

// Server is the page server.
type Server struct {
	cfg      *config.Config
	reg      *hxui.Registry
	hydrator *hxui.Hydrator
	pages    *Pages
	log      zerolog.Logger
	router   chi.Router
}

// New builds the server and its routes.
func New(opts Options) *Server {
	hopts := []hxui.HydratorOption{hxui.WithLogger(opts.Logger)}
	if opts.Metrics != nil {
		hopts = append(hopts, hxui.WithMetrics(hxui.NewMetrics(hxui.WithRegisterer(opts.Metrics))))
	}

	s := &Server{
		cfg:      opts.Config,
		reg:      opts.Registry,
		hydrator: hxui.NewHydrator(opts.Registry, hopts...),
		pages:    NewPages(opts.Config.Server.PagesDir, opts.Logger),
		log:      opts.Logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	if opts.Metrics != nil && opts.Config.Metrics.Enabled {
		r.Handle(opts.Config.Metrics.Path, promhttp.HandlerFor(opts.Metrics, promhttp.HandlerOpts{}))
	}
	r.Route("/_ui", func(r chi.Router) {
		r.Get("/components", s.listComponents)
		r.With(s.hydrator.Middleware).Get("/preview/{name}", s.preview)
	})
	r.With(s.hydrator.Middleware).Get("/*", s.servePage)

	s.router = r
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Pages returns the page store.
func (s *Server) Pages() *Pages {
	return s.pages
}

// Run serves until ctx is done, then shuts down gracefully. With
// server.watch set, page edits are picked up without a restart.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.cfg.Server.Watch {
		go func() {
			if err := s.pages.Watch(ctx, nil); err != nil {
				s.log.Error().Err(err).Msg("page watcher stopped")
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", srv.Addr).Str("pages", s.cfg.Server.PagesDir).Msg("serving")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) servePage(w http.ResponseWriter, r *http.Request) {
	name, err := s.pages.Resolve(r.URL.Path)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	data, err := s.pages.Get(name)
	if err != nil {
		if errors.Is(err, ErrPageNotFound) {
			http.NotFound(w, r)
			return
		}
		s.log.Error().Err(err).Str("page", name).Msg("read page")
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(data)
}

// preview renders a single placeholder page for the named component, with
// props taken from the "props" query parameter.
func (s *Server) preview(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if _, ok := s.reg.Lookup(name); !ok {
		http.NotFound(w, r)
		return
	}
	props := r.URL.Query().Get("props")
	if props == "" {
		props = "{}"
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte("<!DOCTYPE html><html><head><title>" + name + "</title></head><body>" +
		hxui.PlaceholderHTML(name, props) + "</body></html>"))
}

func (s *Server) listComponents(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"components": s.reg.Names()})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("request")
	})
}
