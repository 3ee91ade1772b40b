// Package server exposes an editing session over a localhost HTTP API so a
// front end (or curl) can drive it. One session per process, no auth; the
// listener is meant to stay on the loopback interface.
package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/polyglot/pkg/editor"
)

// Server timeouts. The API serves one local user; generous write timeout
// covers a blocking translation call within a handler.
const (
	defaultReadTimeout     = 15 * time.Second
	defaultWriteTimeout    = 30 * time.Second
	defaultIdleTimeout     = 120 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// Server serves the editing API. HTTP handlers run concurrently, so all
// session access is serialized through a mutex; the session itself stays
// single-threaded as designed.
type Server struct {
	session *editor.Session
	warn    *WarningRecorder
	log     *slog.Logger
	addr    string

	mu sync.Mutex
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the server logger. Defaults to a discard logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}

// WithAddr sets the listen address. Default: localhost:7345.
func WithAddr(addr string) Option {
	return func(s *Server) {
		if addr != "" {
			s.addr = addr
		}
	}
}

// WithWarningRecorder attaches the recorder that the session's warning
// handler feeds, so add responses can carry translation warnings.
func WithWarningRecorder(rec *WarningRecorder) Option {
	return func(s *Server) {
		s.warn = rec
	}
}

// New creates a Server around an existing session.
func New(session *editor.Session, opts ...Option) *Server {
	s := &Server{
		session: session,
		warn:    NewWarningRecorder(),
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		addr:    "localhost:7345",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the HTTP handler with all routes and middleware mounted.
// Exposed separately from Run for tests.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(recoverer(s.log))
	r.Use(requestLogger(s.log))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/entries", s.handleListEntries)
		r.Post("/entries", s.handleAddEntry)
		r.Put("/entries/{key}", s.handleRenameEntry)
		r.Delete("/entries/{key}", s.handleDeleteEntry)
		r.Post("/save", s.handleSave)
	})

	return r
}

// Run starts the HTTP server and blocks until shutdown. It handles SIGINT
// and SIGTERM for graceful shutdown. Returns nil on clean shutdown.
func (s *Server) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	srv := &http.Server{
		Addr:         s.addr,
		Handler:      s.Handler(),
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
	}

	// Listen first to surface address errors before reporting readiness.
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", slog.String("address", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer shutdownCancel()
	return srv.Shutdown(shutdownCtx)
}
