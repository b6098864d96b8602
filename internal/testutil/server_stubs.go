package testutil

import (
	"context"
	"net/http"
	"sync"
)

// StubHTTPServer stands in for the server package's httpServer.
// ListenAndServe returns ListenErr immediately. When ShutdownGate is set, Shutdown
// waits for it to close or for ctx to end.
type StubHTTPServer struct {
	AddrVal      string
	HandlerVal   http.Handler
	ListenErr    error
	ShutdownErr  error
	ShutdownGate chan struct{}

	mu       sync.Mutex
	listens  int
	shutdown int
}

func (s *StubHTTPServer) ListenAndServe() error {
	s.mu.Lock()
	s.listens++
	s.mu.Unlock()
	return s.ListenErr
}

func (s *StubHTTPServer) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.shutdown++
	s.mu.Unlock()
	if s.ShutdownGate != nil {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.ShutdownGate:
		}
	}
	return s.ShutdownErr
}

func (s *StubHTTPServer) Addr() string { return s.AddrVal }

func (s *StubHTTPServer) Handler() http.Handler {
	if s.HandlerVal == nil {
		return http.NewServeMux()
	}
	return s.HandlerVal
}

// ListenCalls reports how many times ListenAndServe ran.
func (s *StubHTTPServer) ListenCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listens
}

// ShutdownCalls reports how many times Shutdown ran.
func (s *StubHTTPServer) ShutdownCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shutdown
}
