// Package roadmaptest runs an in-memory roadmap backend over HTTP so the
// client and CLI can be exercised end to end without the real service.
package roadmaptest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"time"

	"github.com/Amirmahdikahdouii/Mini-Mentor/client/internal/types"
	"github.com/gorilla/mux"
)

const (
	minQueryLen  = 3
	maxQueryLen  = 500
	maxTitleHint = 50
)

// Request is one exchange observed by the server.
type Request struct {
	Method   string
	Path     string
	RawQuery string
	Body     []byte
	Header   http.Header
}

// Generation is what a Generator produces for a query.
type Generation struct {
	Title      string
	Content    string
	VisualData *types.VisualData
}

// Generator produces roadmap content for a learning goal. A returned error
// is reported to the client as a 500.
type Generator func(query string) (Generation, error)

// Option configures a Server.
type Option func(*Server)

// WithGenerator replaces the default content generator.
func WithGenerator(g Generator) Option {
	return func(s *Server) { s.gen = g }
}

// WithClock replaces time.Now for created_at stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// Server is a started httptest server speaking the roadmap wire contract
// under /api.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	nextID   int64
	roadmaps []types.Roadmap // creation order
	requests []Request

	gen Generator
	now func() time.Time
}

// NewServer starts a server. Call Close when done.
func NewServer(opts ...Option) *Server {
	s := &Server{
		nextID: 1,
		gen:    defaultGenerator,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := mux.NewRouter()
	r.Use(s.record)
	r.HandleFunc("/", s.health).Methods(http.MethodGet)
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/roadmaps", s.create).Methods(http.MethodPost)
	api.HandleFunc("/roadmaps", s.list).Methods(http.MethodGet)
	api.HandleFunc("/roadmaps/{id}", s.get).Methods(http.MethodGet)
	api.HandleFunc("/roadmaps/{id}", s.delete).Methods(http.MethodDelete)

	s.Server = httptest.NewServer(r)
	return s
}

// BaseURL is the address clients should use as their base.
func (s *Server) BaseURL() string { return s.URL + "/api" }

// Requests returns a copy of every request seen so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Len reports how many roadmaps are stored.
func (s *Server) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.roadmaps)
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(body))

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:   r.Method,
			Path:     r.URL.Path,
			RawQuery: r.URL.RawQuery,
			Body:     body,
			Header:   r.Header.Clone(),
		})
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": "Mini Mentor Agent API"})
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	var req types.CreateRoadmapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	if n := len([]rune(req.Query)); n < minQueryLen || n > maxQueryLen {
		writeDetail(w, http.StatusUnprocessableEntity,
			fmt.Sprintf("query must be between %d and %d characters", minQueryLen, maxQueryLen))
		return
	}

	gen, err := s.gen(req.Query)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Failed to generate roadmap: "+err.Error())
		return
	}
	if gen.Title == "" {
		gen.Title = "Learning Roadmap: " + truncate(req.Query, maxTitleHint)
	}

	s.mu.Lock()
	rm := types.Roadmap{
		ID:         s.nextID,
		UserQuery:  req.Query,
		Title:      gen.Title,
		Content:    gen.Content,
		VisualData: gen.VisualData,
		CreatedAt:  types.Timestamp{Time: s.now().UTC()},
	}
	s.nextID++
	s.roadmaps = append(s.roadmaps, rm)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, rm)
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	skip, ok := intParam(w, r, "skip", 0)
	if !ok {
		return
	}
	limit, ok := intParam(w, r, "limit", 50)
	if !ok {
		return
	}

	s.mu.Lock()
	total := len(s.roadmaps)
	items := []types.RoadmapListItem{}
	// newest first
	for i := total - 1 - skip; i >= 0 && len(items) < limit; i-- {
		rm := s.roadmaps[i]
		items = append(items, types.RoadmapListItem{
			ID:        rm.ID,
			UserQuery: rm.UserQuery,
			Title:     rm.Title,
			CreatedAt: rm.CreatedAt,
		})
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, types.RoadmapList{Roadmaps: items, Total: total})
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	idx := s.indexOf(id)
	var rm types.Roadmap
	if idx >= 0 {
		rm = s.roadmaps[idx]
	}
	s.mu.Unlock()

	if idx < 0 {
		writeDetail(w, http.StatusNotFound, "Roadmap not found")
		return
	}
	writeJSON(w, http.StatusOK, rm)
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx >= 0 {
		s.roadmaps = append(s.roadmaps[:idx], s.roadmaps[idx+1:]...)
	}
	s.mu.Unlock()

	if idx < 0 {
		writeDetail(w, http.StatusNotFound, "Roadmap not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// indexOf must be called with s.mu held.
func (s *Server) indexOf(id int64) int {
	for i := range s.roadmaps {
		if s.roadmaps[i].ID == id {
			return i
		}
	}
	return -1
}

func defaultGenerator(query string) (Generation, error) {
	return Generation{
		Content: "# " + query,
		VisualData: &types.VisualData{
			Phases: []types.Phase{{
				ID:          1,
				Title:       "Foundations",
				Description: "Core concepts of " + query,
				Duration:    "2 weeks",
				Milestones:  []string{"Set up environment", "Finish first exercise"},
			}},
			TotalDuration: "2 weeks",
		},
	}, nil
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "roadmap id must be an integer")
		return 0, false
	}
	return id, true
}

func intParam(w http.ResponseWriter, r *http.Request, name string, def int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		writeDetail(w, http.StatusUnprocessableEntity, name+" must be a non-negative integer")
		return 0, false
	}
	return v, true
}

func truncate(s string, n int) string {
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n])
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
