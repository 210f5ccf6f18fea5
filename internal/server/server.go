package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sarojd/portfolio-chatbot/internal/config"
	"github.com/sarojd/portfolio-chatbot/internal/llm"
	"github.com/sarojd/portfolio-chatbot/internal/portfolio"
	"github.com/sarojd/portfolio-chatbot/internal/prompt"
)

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	cache      *portfolio.Cache
	llmClient  llm.Client // nil when the credential is not configured
	persona    prompt.Persona
	logger     *zap.Logger
}

// New creates a server from configuration. A missing chat-completion
// credential is not a startup error; the chat endpoint reports it per
// request so the operator can fix configuration without a crash loop.
func New(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	loader := portfolio.NewHTTPLoader(cfg.PortfolioDataURL, cfg.FetchTimeout)
	cache := portfolio.NewCache(loader, cfg.CacheTTL, logger)

	var client llm.Client
	if cfg.GroqAPIKey != "" {
		llmCfg := llm.DefaultConfig()
		if cfg.GroqAPIURL != "" {
			llmCfg.BaseURL = cfg.GroqAPIURL
		}
		groq, err := llm.NewGroqClient(llmCfg, cfg.GroqAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create chat client: %w", err)
		}
		client = groq
	} else {
		logger.Warn("GROQ_API_KEY not set, chat requests will fail with a configuration error")
	}

	return newServer(cfg.Port, cache, client, logger), nil
}

// newServer wires the routes and middleware around already-built components.
func newServer(port int, cache *portfolio.Cache, client llm.Client, logger *zap.Logger) *Server {
	s := &Server{
		cache:     cache,
		llmClient: client,
		persona:   prompt.DefaultPersona(),
		logger:    logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /api/chat", s.handleChat)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.withLogging(s.withCORS(s.withRecovery(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}

	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers; the widget is served from another origin.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRecovery catches panics at the request boundary so an unexpected
// failure anywhere in the pipeline surfaces as a 500, never a crash.
func (s *Server) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("panic in request handler",
					zap.Any("panic", rec),
					zap.String("path", r.URL.Path),
				)
				s.errorResponse(w, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the response status for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withLogging adds structured request logging with a per-request id.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		s.logger.Info("request completed",
			zap.String("request_id", uuid.New().String()),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", recorder.status),
			zap.Duration("duration", time.Since(start)),
			zap.String("remote", r.RemoteAddr),
		)
	})
}

// handleRoot returns a minimal service description.
func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Portfolio Chatbot API",
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
