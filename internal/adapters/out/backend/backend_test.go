package backend

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"ordermanagement/internal/pkg/logger"

	"github.com/stretchr/testify/suite"
)

// recordedRequest is what the fake backend saw.
type recordedRequest struct {
	Method      string
	Path        string
	Body        string
	ContentType string
	RequestID   string
}

// backendSuite runs each test against an httptest server whose responses are
// set per test through handle.
type backendSuite struct {
	suite.Suite

	server *httptest.Server
	client *Client

	mu       sync.Mutex
	handler  http.HandlerFunc
	requests []recordedRequest
}

func (s *backendSuite) SetupTest() {
	s.requests = nil
	s.handler = func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		s.mu.Lock()
		s.requests = append(s.requests, recordedRequest{
			Method:      r.Method,
			Path:        r.URL.Path,
			Body:        string(body),
			ContentType: r.Header.Get("Content-Type"),
			RequestID:   r.Header.Get(requestIDHeader),
		})
		h := s.handler
		s.mu.Unlock()

		h(w, r)
	}))

	s.client = NewClient(Config{
		BaseURL: s.server.URL + "/api/",
		Timeout: 2 * time.Second,
		Breaker: DefaultBreakerSettings(),
	}, logger.Discard())
}

func (s *backendSuite) TearDownTest() {
	s.server.Close()
}

func (s *backendSuite) handle(h http.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handler = h
}

func (s *backendSuite) respond(status int, body string) {
	s.handle(func(w http.ResponseWriter, _ *http.Request) {
		if body != "" {
			w.Header().Set("Content-Type", "application/json")
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})
}

func (s *backendSuite) lastRequest() recordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Require().NotEmpty(s.requests)
	return s.requests[len(s.requests)-1]
}

func (s *backendSuite) requestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}
