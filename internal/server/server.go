// Package server exposes sprite generation over HTTP.
//
// Routes:
//
//	GET  /healthz                 liveness and build version
//	GET  /presets                 registered masks
//	GET  /sprites/{name}.png      render a preset (query: seed, scale, option keys)
//	GET  /sprites/{name}.txt      resolved grid dump of a preset
//	POST /sprites                 render a mask supplied as JSON
//
// Responses carry the seed that produced them in X-Sprite-Seed. Requests
// with an explicit seed are deterministic and served through the cache.
package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"spritegen/internal/cache"
	"spritegen/internal/render"
)

const (
	defaultMaxScale = 32
	defaultTTL      = 24 * time.Hour
	maxBodyBytes    = 1 << 20
)

// Server renders sprites for HTTP clients.
type Server struct {
	logger   *log.Logger
	cache    cache.Cache
	base     render.Options
	maxScale int
	ttl      time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithCache sets the cache used for seeded requests.
func WithCache(c cache.Cache) Option { return func(s *Server) { s.cache = c } }

// WithBaseOptions sets the render options requests override.
func WithBaseOptions(o render.Options) Option { return func(s *Server) { s.base = o } }

// WithMaxScale bounds the scale query parameter.
func WithMaxScale(n int) Option { return func(s *Server) { s.maxScale = n } }

// WithTTL sets how long cached sprites live.
func WithTTL(d time.Duration) Option { return func(s *Server) { s.ttl = d } }

// New creates a Server. A nil logger uses log.Default().
func New(logger *log.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		logger:   logger,
		cache:    cache.NewNullCache(),
		base:     render.DefaultOptions(),
		maxScale: defaultMaxScale,
		ttl:      defaultTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.maxScale < 1 {
		s.maxScale = 1
	}
	return s
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Get("/presets", s.handlePresets)
	r.Get("/sprites/{name}.png", s.handlePresetPNG)
	r.Get("/sprites/{name}.txt", s.handlePresetDump)
	r.Post("/sprites", s.handleCustom)
	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"elapsed", time.Since(start).Round(time.Microsecond),
			"id", middleware.GetReqID(r.Context()),
		)
	})
}
