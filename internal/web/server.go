// Package web serves the console page and the HTML fragments its forms load into result regions.
package web

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/samvad-hq/storefront-console/internal/console"
	"github.com/samvad-hq/storefront-console/internal/domain"
	"github.com/samvad-hq/storefront-console/internal/logger"
	"github.com/samvad-hq/storefront-console/internal/middleware"
	"github.com/samvad-hq/storefront-console/pkg/forms"
	"github.com/samvad-hq/storefront-console/pkg/operations"
	"github.com/samvad-hq/storefront-console/pkg/render"
)

const (
	HeaderRegion  = "X-Console-Region"
	HeaderOutcome = "X-Console-Outcome"

	defaultActivityLimit = 20
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Console is the behaviour the web layer drives.
type Console interface {
	Registry() operations.Registry
	BaseURL() string
	Execute(ctx context.Context, opID string, src forms.Source) (console.Result, error)
	TestConnection(ctx context.Context, src forms.Source) console.ConnectionStatus
	Recent(limit int) ([]domain.Outcome, error)
}

// Options tunes the console router.
type Options struct {
	// AllowedOrigins enables CORS when non-empty.
	AllowedOrigins []string
	ActivityLimit  int
	Log            logger.Logger
}

type server struct {
	console       Console
	tmpl          *template.Template
	activityLimit int
	log           logger.Logger
}

// NewRouter builds the console's HTTP handler.
func NewRouter(c Console, opts Options) (http.Handler, error) {
	if c == nil {
		return nil, fmt.Errorf("console must not be nil")
	}
	tmpl, err := template.New("console").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("open static assets: %w", err)
	}
	if opts.ActivityLimit <= 0 {
		opts.ActivityLimit = defaultActivityLimit
	}

	s := &server{
		console:       c,
		tmpl:          tmpl,
		activityLimit: opts.ActivityLimit,
		log:           logger.Ensure(opts.Log),
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog(s.log))
	r.Use(chimiddleware.Recoverer)
	if len(opts.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			ExposedHeaders: []string{HeaderRegion, HeaderOutcome},
			MaxAge:         300,
		}))
	}

	r.Get("/", s.handlePage)
	r.Post("/actions/{operation}", s.handleAction)
	r.Post("/connection", s.handleConnection)
	r.Get("/activity", s.handleActivity)
	r.Get("/healthz", s.handleHealth)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	return r, nil
}

func (s *server) handlePage(w http.ResponseWriter, r *http.Request) {
	s.writeTemplate(w, http.StatusOK, "page", newPage(s.console.Registry(), s.console.BaseURL()))
}

func (s *server) handleAction(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	res, err := s.console.Execute(r.Context(), chi.URLParam(r, "operation"), r.PostForm)
	if errors.Is(err, operations.ErrUnknownOperation) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		s.log.ErrorObj("execute action failed", "action_error", map[string]any{
			"operation": chi.URLParam(r, "operation"),
			"error":     err.Error(),
		})
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set(HeaderRegion, res.Region)
	w.Header().Set(HeaderOutcome, string(res.Kind))
	s.writeView(w, res.View)
}

func (s *server) handleConnection(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}
	st := s.console.TestConnection(r.Context(), r.PostForm)
	w.Header().Set(HeaderOutcome, string(st.Kind))
	s.writeTemplate(w, http.StatusOK, "connection", st)
}

func (s *server) handleActivity(w http.ResponseWriter, r *http.Request) {
	entries, err := s.console.Recent(s.activityLimit)
	if err != nil {
		s.log.ErrorObj("activity read failed", "error", err.Error())
		s.writeView(w, render.Notice{Text: "Activity is unavailable", Style: render.StyleError})
		return
	}
	s.writeTemplate(w, http.StatusOK, "activity", entries)
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		s.log.ErrorObj("failed to encode health response", "error", err.Error())
	}
}

func (s *server) writeView(w http.ResponseWriter, view render.View) {
	if view == nil {
		view = render.Notice{Text: "Success", Style: render.StyleSuccess}
	}
	s.writeTemplate(w, http.StatusOK, view.Template(), view)
}

// writeTemplate renders into a buffer first so a template error never leaves a half-written fragment.
func (s *server) writeTemplate(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		s.log.ErrorObj("render template failed", "template_error", map[string]any{
			"template": name,
			"error":    err.Error(),
		})
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
