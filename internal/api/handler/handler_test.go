package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/hrsuite/recruitment-service/internal/api/storage"
	"github.com/hrsuite/recruitment-service/internal/calendar"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubPublisher records published message bodies.
type stubPublisher struct {
	mu     sync.Mutex
	bodies [][]byte
	err    error
}

func (p *stubPublisher) PublishWithRetry(_ context.Context, body []byte, _ string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.bodies = append(p.bodies, body)
	return p.err
}

func (p *stubPublisher) publishCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.bodies)
}

func (p *stubPublisher) lastBody() []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.bodies) == 0 {
		return nil
	}
	return p.bodies[len(p.bodies)-1]
}

// stubScheduler returns a canned event or error.
type stubScheduler struct {
	event *calendar.Event
	err   error

	mu    sync.Mutex
	calls []calendar.Request
}

func (s *stubScheduler) ScheduleInterview(_ context.Context, req calendar.Request) (*calendar.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, req)
	if s.err != nil {
		return nil, s.err
	}
	return s.event, nil
}

func (s *stubScheduler) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func newTestDeps(t *testing.T) (*Dependencies, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &Dependencies{
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		Storage:    storage.NewStorage(sqlx.NewDb(db, "sqlmock")),
		Publisher:  &stubPublisher{},
		Scheduler:  &stubScheduler{},
		UploadsDir: t.TempDir(),
	}, mock
}

func performRequest(r http.Handler, method, path, contentType string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
