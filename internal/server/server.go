// Package server provides the HTTP REST API for the resume screening engine.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/rolemark/rolemark/internal/config"
	"github.com/rolemark/rolemark/internal/db"
	"github.com/rolemark/rolemark/internal/parsing"
	"github.com/rolemark/rolemark/internal/server/middleware"
	"github.com/rolemark/rolemark/internal/server/ratelimit"
)

// Server represents the HTTP server
type Server struct {
	httpServer       *http.Server
	db               *db.DB
	log              *zap.Logger
	extractor        *parsing.Extractor
	rateLimiter      *ratelimit.Limiter
	jwtService       *JWTService
	userService      *UserService
	authHandler      *AuthHandler
	enforceWeightSum bool
}

// Config holds server configuration
type Config struct {
	Addr             string
	DatabaseURL      string
	EnforceWeightSum bool
	Logger           *zap.Logger
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	s := &Server{
		db:               database,
		log:              log,
		extractor:        parsing.NewExtractor(),
		enforceWeightSum: cfg.EnforceWeightSum,
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(database, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	addr := cfg.Addr
	if addr == "" {
		addr = ":8080"
	}

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request mux. Everything under /v1/ and the password
// endpoint require a valid bearer token; health and auth are public.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /auth/register", s.handleRegister)
	mux.HandleFunc("POST /auth/login", s.handleLogin)

	auth := middleware.Auth(s.jwtService.AsTokenValidator())
	protected := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, auth(h))
	}

	protected("PUT /auth/password", s.handleUpdatePassword)

	// Roles and criteria
	protected("POST /v1/roles", s.handleCreateRole)
	protected("GET /v1/roles", s.handleListRoles)
	protected("GET /v1/roles/{id}", s.handleGetRole)
	protected("DELETE /v1/roles/{id}", s.handleDeleteRole)
	protected("POST /v1/roles/{id}/criteria", s.handleCreateCriterion)
	protected("GET /v1/roles/{id}/criteria", s.handleListCriteria)
	protected("DELETE /v1/criteria/{id}", s.handleDeleteCriterion)

	// Resumes and extracted signals
	protected("POST /v1/resumes", s.handleCreateResume)
	protected("GET /v1/resumes", s.handleListResumes)
	protected("GET /v1/resumes/{id}", s.handleGetResume)
	protected("DELETE /v1/resumes/{id}", s.handleDeleteResume)
	protected("GET /v1/resumes/{id}/signals", s.handleListSignals)

	// Scoring
	protected("POST /v1/roles/{id}/evaluations", s.handleEvaluate)
	protected("GET /v1/roles/{id}/rankings", s.handleRankings)
	protected("POST /v1/compare", s.handleCompare)

	return mux
}

// Start begins listening for requests and blocks until shutdown
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.log.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Fatal("server error", zap.Error(err))
		}
	}()

	<-stop
	s.log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	s.db.Close()
	s.log.Info("server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit enforces per-client token bucket limits
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging logs each request with its duration
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.Duration("duration", time.Since(start)))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleRegister handles user registration requests.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	s.authHandler.Register(w, r)
}

// handleLogin handles user login requests.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	s.authHandler.Login(w, r)
}

// handleUpdatePassword handles password update requests for the
// authenticated user.
func (s *Server) handleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	s.authHandler.UpdatePassword(w, r, userID)
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("encoding JSON response failed", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request.
// This uses the IP from RemoteAddr; X-Forwarded-For would only be safe
// behind a trusted proxy.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit
// information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	s.log.Warn("rate limit exceeded",
		zap.Int("limit", info.Limit),
		zap.Time("reset", info.ResetTime))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
