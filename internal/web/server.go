// Package web provides the HTTP server for the visitor log page and JSON API.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"sync"

	"github.com/evcraddock/visitor-log/internal/logging"
	"github.com/evcraddock/visitor-log/internal/visitor"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Server is the visitor log HTTP server. Handlers may run concurrently, so
// access to the service is serialized: each check-in or check-out completes
// before the view reflects it.
type Server struct {
	mu        sync.Mutex
	svc       *visitor.Service
	templates *template.Template
	mux       *http.ServeMux
}

// NewServer creates a web server over the given service.
func NewServer(svc *visitor.Service) (*Server, error) {
	funcMap := template.FuncMap{
		"formatTime":     tmplFormatTime,
		"formatCheckOut": tmplFormatCheckOut,
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	s := &Server{
		svc:       svc,
		templates: tmpl,
		mux:       http.NewServeMux(),
	}

	staticContent, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("creating static sub-fs: %w", err)
	}

	s.mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticContent))))
	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/checkin", s.handleCheckinPost)
	s.mux.HandleFunc("/checkout", s.handleCheckoutPost)
	s.mux.HandleFunc("/reset", s.handleResetPost)
	s.mux.HandleFunc("/export", s.handleExport)
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/api/visitors", s.handleAPIVisitors)
	s.mux.HandleFunc("/api/visitors/", s.handleAPIVisitors)

	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(port int) error {
	addr := fmt.Sprintf(":%d", port)
	fmt.Printf("Starting visitor log on http://localhost%s\n", addr)
	return http.ListenAndServe(addr, logging.RequestLogger(s))
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	apiJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// viewParams reads the filter and sort selections from the query string.
// An unrecognized sort falls back to latest-first.
func viewParams(r *http.Request) (string, visitor.SortOrder) {
	filter := r.URL.Query().Get("filter")
	order := visitor.SortOrder(r.URL.Query().Get("sort"))
	if !order.IsValid() {
		order = visitor.SortLatest
	}
	return filter, order
}

// Template helper functions

const timeFormat = "2006-01-02 15:04"

func tmplFormatTime(t interface{ Format(string) string }) string {
	return t.Format(timeFormat)
}

func tmplFormatCheckOut(v *visitor.Visitor) string {
	if v.CheckOutTime == nil {
		return "N/A"
	}
	return v.CheckOutTime.Format(timeFormat)
}
