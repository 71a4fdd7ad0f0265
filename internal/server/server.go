// Package server exposes install order resolution over HTTP.
//
// Routes:
//
//	GET /healthz                      liveness and build version
//	GET /v1/order/{package}           install plan as JSON
//	GET /v1/graph/{package}?format=   dependency graph as DOT or SVG
//
// Every response carries an X-Request-ID header. A client-supplied ID is
// echoed back; otherwise a random UUID is assigned.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/aurorder/pkg/buildinfo"
	"github.com/matzehuels/aurorder/pkg/deps"
	apperrors "github.com/matzehuels/aurorder/pkg/errors"
	"github.com/matzehuels/aurorder/pkg/integrations"
	pkgio "github.com/matzehuels/aurorder/pkg/io"
	"github.com/matzehuels/aurorder/pkg/render/nodelink"
)

// DefaultTimeout bounds the time spent resolving one request.
const DefaultTimeout = 60 * time.Second

// Config configures a [Server].
type Config struct {
	Resolver *deps.Resolver
	Logger   *log.Logger   // Access and error log (default: log.Default())
	Timeout  time.Duration // Per-request resolution limit (default: DefaultTimeout)
}

// Server serves resolution requests. It holds no per-request state.
type Server struct {
	resolver *deps.Resolver
	logger   *log.Logger
	timeout  time.Duration
	router   chi.Router
}

// New creates a server from cfg.
func New(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	s := &Server{
		resolver: cfg.Resolver,
		logger:   cfg.Logger,
		timeout:  cfg.Timeout,
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.health)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/order/{package}", s.order)
		r.Get("/graph/{package}", s.graph)
	})
	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) order(w http.ResponseWriter, r *http.Request) {
	plan, err := s.resolve(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := pkgio.WritePlan(plan, w); err != nil {
		s.logger.Error("write plan", "request_id", RequestID(r.Context()), "error", err)
	}
}

func (s *Server) graph(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	format := q.Get("format")
	if format == "" {
		format = "dot"
	}
	if format != "dot" && format != "svg" {
		s.fail(w, r, apperrors.New(apperrors.ErrCodeInvalidInput, "unknown format %q (want dot or svg)", format))
		return
	}

	plan, err := s.resolve(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	dot := nodelink.ToDOT(plan.Graph, nodelink.Options{
		Detailed:     boolParam(r, "detailed"),
		HideExternal: boolParam(r, "hide_external"),
	})
	if format == "dot" {
		w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
		w.Write([]byte(dot))
		return
	}

	svg, err := nodelink.RenderSVG(r.Context(), dot)
	if err != nil {
		s.fail(w, r, apperrors.Wrap(apperrors.ErrCodeInternal, err, "render svg"))
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(svg)
}

// resolve validates the package path parameter and resolves it.
func (s *Server) resolve(r *http.Request) (*deps.Plan, error) {
	name := integrations.NormalizePkgName(chi.URLParam(r, "package"))
	if err := apperrors.ValidateAURPackageName(name); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	return s.resolver.Resolve(ctx, name, deps.Options{
		Refresh: boolParam(r, "refresh"),
		Logger:  s.logger.With("request_id", RequestID(r.Context())),
	})
}

// =============================================================================
// Errors
// =============================================================================

type errorBody struct {
	Error     errorDetail `json:"error"`
	RequestID string      `json:"request_id"`
}

type errorDetail struct {
	Code    apperrors.Code `json:"code"`
	Message string         `json:"message"`
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	code := apperrors.GetCode(err)
	if code == "" {
		code = apperrors.ErrCodeInternal
	}
	status := statusFor(err, code)
	id := RequestID(r.Context())

	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "request_id", id, "code", code, "error", err)
	}
	writeJSON(w, status, errorBody{
		Error:     errorDetail{Code: code, Message: apperrors.UserMessage(err)},
		RequestID: id,
	})
}

// statusFor maps an error code to an HTTP status.
func statusFor(err error, code apperrors.Code) int {
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}
	switch code {
	case apperrors.ErrCodeInvalidInput, apperrors.ErrCodeInvalidPackage, apperrors.ErrCodeQueryTooLong:
		return http.StatusBadRequest
	case apperrors.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case apperrors.ErrCodeTransport, apperrors.ErrCodeMalformedResponse, apperrors.ErrCodeProtocolMismatch:
		return http.StatusBadGateway
	case apperrors.ErrCodeCircularDependency:
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// =============================================================================
// Helpers
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(v)
}

func boolParam(r *http.Request, key string) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get(key))
	return err == nil && v
}
