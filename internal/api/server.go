// File path: internal/api/server.go
package api

import (
	"context"
	"encoding/json"
	"errors"
	"expvar"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	chi "github.com/go-chi/chi/v5"

	"github.com/immensecng/cylinder-retest/internal/common"
	"github.com/immensecng/cylinder-retest/internal/session"
	"github.com/immensecng/cylinder-retest/internal/site"
	"github.com/immensecng/cylinder-retest/internal/web"
)

// SessionCookie names the cookie that carries the visitor's session id.
const SessionCookie = "cylinder_session"

// InquiryLog persists validated contact submissions.
type InquiryLog interface {
	RecordInquiry(ctx context.Context, inquiry site.Inquiry, chatURL string) (int64, error)
}

type Server struct {
	router    chi.Router
	sessions  *session.Registry
	renderer  *web.Renderer
	content   site.Content
	inquiries InquiryLog
	config    Config
}

// Config controls the outward behaviour of the HTTP surface.
type Config struct {
	WhatsAppNumber string
	SecureCookies  bool
}

// DefaultConfig returns the standard configuration used when no overrides are
// provided.
func DefaultConfig() Config {
	return Config{}
}

// Merge overlays non-empty configuration values from the override onto the
// base configuration.
func (c Config) Merge(override Config) Config {
	result := c
	if strings.TrimSpace(override.WhatsAppNumber) != "" {
		result.WhatsAppNumber = strings.TrimSpace(override.WhatsAppNumber)
	}
	if override.SecureCookies {
		result.SecureCookies = true
	}
	return result
}

// Option customises a Server.
type Option func(*Server)

// WithContent replaces the built-in marketing content.
func WithContent(content site.Content) Option {
	return func(s *Server) {
		s.content = content
	}
}

// WithInquiryLog records contact submissions before redirecting to chat.
func WithInquiryLog(log InquiryLog) Option {
	return func(s *Server) {
		s.inquiries = log
	}
}

func NewServer(registry *session.Registry, renderer *web.Renderer, cfg *Config, opts ...Option) (*Server, error) {
	logger := common.Logger()
	if registry == nil {
		return nil, fmt.Errorf("session registry required")
	}
	if renderer == nil {
		return nil, fmt.Errorf("renderer required")
	}
	configuration := DefaultConfig()
	if cfg != nil {
		configuration = configuration.Merge(*cfg)
	}
	srv := &Server{
		router:   chi.NewRouter(),
		sessions: registry,
		renderer: renderer,
		content:  site.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(srv)
		}
	}
	if configuration.WhatsAppNumber == "" {
		configuration.WhatsAppNumber = srv.content.Company.WhatsApp
	}
	srv.config = configuration
	logger.Info(
		"api: building server",
		"gallery_images", len(srv.content.Gallery.Images),
		"inquiry_log", srv.inquiries != nil,
		"secure_cookies", configuration.SecureCookies,
	)
	srv.routes()
	logger.Info("api: server ready")
	return srv, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	logger := common.Logger()
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("request", "method", r.Method, "path", r.URL.Path, "dur", time.Since(start), "remote", r.RemoteAddr)
		})
	})

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	s.router.Method(http.MethodGet, "/debug/vars", expvar.Handler())
	s.router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(web.Static()))))

	s.router.Get("/v1/catalog", s.handleCatalog)
	s.router.Get("/v1/content", s.handleContent)
	s.router.Get("/v1/logs", s.handleLogs)
	s.router.Post("/v1/contact", s.handleContactJSON)

	s.router.Get("/", s.handleHome)
	s.router.Get("/gallery", s.handleHome)
	s.router.Post("/contact", s.handleContactForm)

	s.router.Group(func(r chi.Router) {
		r.Use(s.withSession)

		r.Get("/identify", s.handleIdentify)
		r.Post("/identify/{action}", s.handleIdentifyAction)
		r.Get("/degassing", s.handleDegassing)
		r.Post("/degassing/records", s.handleRecordForm)

		r.Get("/v1/wizard", s.handleWizardState)
		r.Post("/v1/wizard/{action}", s.handleWizardAction)
		r.Get("/v1/records", s.handleListRecords)
		r.Post("/v1/records", s.handleCreateRecord)
		r.Get("/v1/records/summary", s.handleRecordSummary)
	})
}

func (s *Server) nav(active string) web.Nav {
	return web.Nav{Active: active, Company: s.content.Company}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	logger := common.Component("api")
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "status", status, "error", err)
	} else {
		logger.Warn("request failed", "status", status, "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// decodeJSON reads a request body of at most 1 MiB. An empty body is
// reported as io.EOF so callers can treat it as optional.
func decodeJSON(w http.ResponseWriter, r *http.Request, target any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	if err := dec.Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return io.EOF
		}
		return fmt.Errorf("decode request: %w", err)
	}
	return nil
}
