// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package taastest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/siemens/taasctl/api"
)

// Request records the method and URL path of a request served by a Server.
type Request struct {
	Method string
	Path   string
}

// Server is a fake networking service serving the tap service, tap flow, and
// port REST endpoints from memory. It is safe for concurrent use.
type Server struct {
	*httptest.Server

	// Token, if non-empty, is required in the X-Auth-Token header of every
	// request.
	Token string
	// PageSize, if positive, paginates listings with "next" links.
	PageSize int

	mu       sync.Mutex
	recs     map[api.Kind]api.Records
	requests []Request
	fault    fault
}

// fault to inject into the next request matching the method, or any method
// if empty.
type fault struct {
	method string
	status int
}

// NewServer starts and returns a new fake networking service; callers should
// Close it when done.
func NewServer() *Server {
	s := &Server{recs: map[api.Kind]api.Records{}}
	r := chi.NewRouter()
	r.Use(s.record)
	r.Use(s.auth)
	r.Use(s.injectFault)
	r.Route("/v2.0", func(r chi.Router) {
		for _, kind := range api.Kinds {
			collection := "/" + kind.CollectionPath()
			r.Get(collection, s.list(kind))
			r.Post(collection, s.create(kind))
			r.Get(collection+"/{id}", s.show(kind))
			r.Put(collection+"/{id}", s.update(kind))
			r.Delete(collection+"/{id}", s.delete(kind))
		}
	})
	s.Server = httptest.NewServer(r)
	return s
}

// Seed adds records of the specified kind; records without an "id" get a
// freshly generated one. Seed returns the IDs of the seeded records.
func (s *Server) Seed(kind api.Kind, recs ...api.Record) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(recs))
	for _, rec := range recs {
		rec = clone(rec)
		if rec.ID() == "" {
			rec["id"] = uuid.NewString()
		}
		s.recs[kind] = append(s.recs[kind], rec)
		ids = append(ids, rec.ID())
	}
	return ids
}

// Records returns copies of the records of the specified kind.
func (s *Server) Records(kind api.Kind) api.Records {
	s.mu.Lock()
	defer s.mu.Unlock()
	recs := make(api.Records, 0, len(s.recs[kind]))
	for _, rec := range s.recs[kind] {
		recs = append(recs, clone(rec))
	}
	return recs
}

// Requests returns the requests served so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request{}, s.requests...)
}

// FailNext makes the next request fail with the specified HTTP status code.
func (s *Server) FailNext(status int) {
	s.FailNextOf("", status)
}

// FailNextOf makes the next request with the specified HTTP method fail with
// the specified HTTP status code.
func (s *Server) FailNextOf(method string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fault = fault{method: method, status: status}
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, Request{Method: r.Method, Path: r.URL.Path})
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.Token != "" && r.Header.Get("X-Auth-Token") != s.Token {
			serviceError(w, http.StatusUnauthorized, "HTTPUnauthorized",
				"Authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) injectFault(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		f := s.fault
		hit := f.status != 0 && (f.method == "" || f.method == r.Method)
		if hit {
			s.fault = fault{}
		}
		s.mu.Unlock()
		if hit {
			serviceError(w, f.status, "InjectedFault", "Request failed on purpose")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) list(kind api.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		recs := s.recs[kind]
		page := map[string]any{}
		start := 0
		if marker := r.URL.Query().Get("marker"); marker != "" {
			start = indexOf(recs, marker) + 1
		}
		end := len(recs)
		if s.PageSize > 0 && start+s.PageSize < end {
			end = start + s.PageSize
			next := *r.URL
			q := next.Query()
			q.Set("marker", recs[end-1].ID())
			q.Set("limit", strconv.Itoa(s.PageSize))
			next.RawQuery = q.Encode()
			page[kind.Plural()+"_links"] = []api.Link{
				{Rel: "next", Href: s.URL + next.RequestURI()},
			}
		}
		if start > end {
			start = end
		}
		page[kind.Plural()] = recs[start:end]
		respond(w, http.StatusOK, page)
	}
}

func (s *Server) show(kind api.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		s.mu.Lock()
		defer s.mu.Unlock()
		idx := indexOf(s.recs[kind], id)
		if idx < 0 {
			notFoundError(w, kind, id)
			return
		}
		respond(w, http.StatusOK, map[string]api.Record{string(kind): s.recs[kind][idx]})
	}
}

func (s *Server) create(kind api.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, ok := decode(w, r, kind)
		if !ok {
			return
		}
		rec := clone(fields)
		rec["id"] = uuid.NewString()
		if _, ok := rec["status"]; !ok {
			rec["status"] = "ACTIVE"
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		s.recs[kind] = append(s.recs[kind], rec)
		respond(w, http.StatusCreated, map[string]api.Record{string(kind): rec})
	}
}

func (s *Server) update(kind api.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		fields, ok := decode(w, r, kind)
		if !ok {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		idx := indexOf(s.recs[kind], id)
		if idx < 0 {
			notFoundError(w, kind, id)
			return
		}
		for field, value := range fields {
			s.recs[kind][idx][field] = value
		}
		respond(w, http.StatusOK, map[string]api.Record{string(kind): s.recs[kind][idx]})
	}
}

func (s *Server) delete(kind api.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		s.mu.Lock()
		defer s.mu.Unlock()
		idx := indexOf(s.recs[kind], id)
		if idx < 0 {
			notFoundError(w, kind, id)
			return
		}
		s.recs[kind] = append(s.recs[kind][:idx], s.recs[kind][idx+1:]...)
		w.WriteHeader(http.StatusNoContent)
	}
}

// decode returns the record inside the "<kind>" envelope of the request body.
func decode(w http.ResponseWriter, r *http.Request, kind api.Kind) (api.Record, bool) {
	var env map[string]api.Record
	if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
		serviceError(w, http.StatusBadRequest, "HTTPBadRequest", "Malformed request body")
		return nil, false
	}
	fields, ok := env[string(kind)]
	if !ok {
		serviceError(w, http.StatusBadRequest, "HTTPBadRequest",
			fmt.Sprintf("Resource body required: %s", kind))
		return nil, false
	}
	if fields == nil {
		fields = api.Record{}
	}
	return fields, true
}

func indexOf(recs api.Records, id string) int {
	for idx, rec := range recs {
		if rec.ID() == id {
			return idx
		}
	}
	return -1
}

func notFoundError(w http.ResponseWriter, kind api.Kind, id string) {
	serviceError(w, http.StatusNotFound, "NotFound",
		fmt.Sprintf("%s %s could not be found.", kind.Noun(), id))
}

func serviceError(w http.ResponseWriter, status int, typ, msg string) {
	var serr api.ServiceError
	serr.Error.Type = typ
	serr.Error.Message = msg
	respond(w, status, serr)
}

func respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
