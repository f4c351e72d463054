package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/evcraddock/visitor-log/internal/export"
	"github.com/evcraddock/visitor-log/internal/visitor"
)

type indexData struct {
	Visitors   []*visitor.Visitor
	Filter     string
	Sort       visitor.SortOrder
	Purposes   []visitor.Purpose
	OnPremises int
	Total      int
}

// handleIndex renders the visitor log page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	filter, order := viewParams(r)

	s.mu.Lock()
	records := s.svc.View(filter, order)
	all := s.svc.Records()
	onPremises := 0
	for _, v := range all {
		if !v.CheckedOut() {
			onPremises++
		}
	}
	total := len(all)
	s.mu.Unlock()

	s.render(w, "index.html", indexData{
		Visitors:   records,
		Filter:     filter,
		Sort:       order,
		Purposes:   visitor.ValidPurposes,
		OnPremises: onPremises,
		Total:      total,
	})
}

// handleCheckinPost checks a visitor in via form POST.
func (s *Server) handleCheckinPost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	purpose := visitor.Purpose(strings.TrimSpace(r.FormValue("purpose")))
	contact := strings.TrimSpace(r.FormValue("contact"))

	s.mu.Lock()
	_, err := s.svc.CheckIn(name, purpose, contact)
	s.mu.Unlock()
	if err != nil {
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleCheckoutPost checks a visitor out via form POST.
func (s *Server) handleCheckoutPost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	id, err := strconv.ParseInt(r.FormValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid visitor ID", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	_, err = s.svc.CheckOut(id)
	s.mu.Unlock()
	if err != nil {
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleResetPost deletes every record via form POST.
func (s *Server) handleResetPost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.mu.Lock()
	err := s.svc.Reset()
	s.mu.Unlock()
	if err != nil {
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleExport streams the current view as a PDF download. The view is
// captured at the moment of export, with the same filter and sort the page
// uses.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	filter, order := viewParams(r)

	s.mu.Lock()
	records := s.svc.View(filter, order)
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.DefaultFilename))

	// The response is already streaming; a render failure can only be logged.
	if err := export.PDF(records, w); err != nil {
		slog.Error("exporting visitor list", "error", err)
	}
}

// render executes a template, reporting failures as 500s.
func (s *Server) render(w http.ResponseWriter, name string, data interface{}) {
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, fmt.Sprintf("Error rendering page: %v", err), http.StatusInternalServerError)
	}
}
