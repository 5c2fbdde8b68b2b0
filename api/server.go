// Package api exposes the intake agent over HTTP JSON:
//
//	POST /chat             one conversational turn
//	POST /calendly-booked  booking-confirmation webhook
//	POST /upload           document upload into session knowledge
//	GET  /health           liveness probe
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	contractx "github.com/viliokaized/prime-intake/agent/contract"
	statex "github.com/viliokaized/prime-intake/agent/state"
)

const (
	DefaultAddr = ":3000"

	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 10 * time.Second
	readTimeout       = 30 * time.Second
	writeTimeout      = 60 * time.Second
	idleTimeout       = 120 * time.Second
)

// ChatService is the dialog entry point the transport delegates to.
type ChatService interface {
	HandleMessage(ctx context.Context, sessionID, question string) ([]contractx.BotMessage, error)
}

// Server routes HTTP requests to the orchestrator and session store.
type Server struct {
	mux *http.ServeMux

	chat    *ChatHandler
	booking *BookingHandler
	upload  *UploadHandler
}

func NewServer(chat ChatService, store *statex.Store, extractor contractx.TextExtractor) *Server {
	mux := http.NewServeMux()

	s := &Server{
		mux:     mux,
		chat:    &ChatHandler{service: chat},
		booking: &BookingHandler{store: store},
		upload:  &UploadHandler{store: store, extractor: extractor},
	}

	mux.HandleFunc("POST /chat", s.chat.handle)
	mux.HandleFunc("POST /calendly-booked", s.booking.handle)
	mux.HandleFunc("POST /upload", s.upload.handle)
	mux.HandleFunc("GET /health", handleHealth)

	return s
}

// Handler returns the mux wrapped in middleware:
// recovery -> logging -> cors -> handler.
func (s *Server) Handler() http.Handler {
	return chain(s.mux, recoveryMiddleware, loggingMiddleware, corsMiddleware)
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("http server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
