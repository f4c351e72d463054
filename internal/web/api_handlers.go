package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/evcraddock/visitor-log/internal/visitor"
)

// apiError writes a JSON error response.
func apiError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	resp := map[string]string{"error": msg}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// apiJSON writes a JSON response with the given status code.
func apiJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// statusForError maps domain errors to HTTP status codes.
func statusForError(err error) int {
	var ve *visitor.ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.Is(err, visitor.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, visitor.ErrAlreadyCheckedOut):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// handleAPIVisitors routes /api/visitors requests.
func (s *Server) handleAPIVisitors(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/visitors")
	path = strings.TrimPrefix(path, "/")

	// /api/visitors — list, check in, or reset
	if path == "" {
		switch r.Method {
		case http.MethodGet:
			s.apiListVisitors(w, r)
		case http.MethodPost:
			s.apiCheckIn(w, r)
		case http.MethodDelete:
			s.apiReset(w)
		default:
			apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	// /api/visitors/export — same PDF stream as the page's export link
	if path == "export" {
		if r.Method != http.MethodGet {
			apiError(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		s.handleExport(w, r)
		return
	}

	// /api/visitors/{id}/checkout
	if strings.HasSuffix(path, "/checkout") {
		idStr := strings.TrimSuffix(path, "/checkout")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			apiError(w, "invalid visitor ID", http.StatusBadRequest)
			return
		}
		if r.Method != http.MethodPost {
			apiError(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		s.apiCheckOut(w, id)
		return
	}

	// /api/visitors/{id}
	id, err := strconv.ParseInt(path, 10, 64)
	if err != nil {
		apiError(w, "invalid visitor ID", http.StatusBadRequest)
		return
	}
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.apiGetVisitor(w, id)
}

// apiListVisitors returns the filtered, sorted view.
func (s *Server) apiListVisitors(w http.ResponseWriter, r *http.Request) {
	filter, order := viewParams(r)

	s.mu.Lock()
	records := s.svc.View(filter, order)
	s.mu.Unlock()

	if records == nil {
		records = []*visitor.Visitor{}
	}
	apiJSON(w, records, http.StatusOK)
}

type checkInRequest struct {
	Name    string `json:"name"`
	Purpose string `json:"purpose"`
	Contact string `json:"contact"`
}

// apiCheckIn creates a visitor record from a JSON body.
func (s *Server) apiCheckIn(w http.ResponseWriter, r *http.Request) {
	var req checkInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	v, err := s.svc.CheckIn(req.Name, visitor.Purpose(req.Purpose), req.Contact)
	s.mu.Unlock()
	if err != nil {
		apiError(w, err.Error(), statusForError(err))
		return
	}

	apiJSON(w, v, http.StatusCreated)
}

// apiGetVisitor returns one record from the in-memory view.
func (s *Server) apiGetVisitor(w http.ResponseWriter, id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range s.svc.Records() {
		if v.ID == id {
			apiJSON(w, v, http.StatusOK)
			return
		}
	}
	apiError(w, "visitor not found", http.StatusNotFound)
}

// apiCheckOut stamps the checkout time on a record.
func (s *Server) apiCheckOut(w http.ResponseWriter, id int64) {
	s.mu.Lock()
	v, err := s.svc.CheckOut(id)
	s.mu.Unlock()
	if err != nil {
		apiError(w, err.Error(), statusForError(err))
		return
	}

	apiJSON(w, v, http.StatusOK)
}

// apiReset deletes every record.
func (s *Server) apiReset(w http.ResponseWriter) {
	s.mu.Lock()
	err := s.svc.Reset()
	s.mu.Unlock()
	if err != nil {
		apiError(w, err.Error(), statusForError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
