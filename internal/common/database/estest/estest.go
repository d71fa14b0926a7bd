// Package estest fakes the Elasticsearch HTTP API for unit tests.
package estest

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/elastic/go-elasticsearch/v8"

	"idea-match-workers/internal/common/database"
)

// Request is a request the fake server received.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   string
}

// Responder answers one request with a status code and a JSON body.
type Responder func(req Request) (int, string)

// Server records every request and answers with a Responder.
type Server struct {
	mu       sync.Mutex
	requests []Request
	respond  Responder
}

func (s *Server) RoundTrip(r *http.Request) (*http.Response, error) {
	var body string
	if r.Body != nil {
		data, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, err
		}
		body = string(data)
	}
	req := Request{Method: r.Method, Path: r.URL.Path, Query: r.URL.Query(), Body: body}

	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()

	status, payload := s.respond(req)
	header := http.Header{}
	header.Set("Content-Type", "application/json")
	header.Set("X-Elastic-Product", "Elasticsearch")

	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(payload)),
		Request:    r,
	}, nil
}

// Requests returns what the server has seen so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// NewClient returns a client whose transport is a fake server.
func NewClient(t testing.TB, respond Responder) (*database.ElasticsearchClient, *Server) {
	t.Helper()

	srv := &Server{respond: respond}
	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{"http://es.test:9200"},
		Transport: srv,
	})
	if err != nil {
		t.Fatalf("create elasticsearch client: %v", err)
	}
	return &database.ElasticsearchClient{Client: es}, srv
}
