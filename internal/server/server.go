package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sabbir/outreach-composer/internal/db"
	"github.com/sabbir/outreach-composer/internal/llm"
	"github.com/sabbir/outreach-composer/internal/promptgen"
)

// Store is the configuration store surface the HTTP handlers need.
// *db.DB satisfies it; tests substitute a fake.
type Store interface {
	promptgen.Store

	ListWritingTypes(ctx context.Context) ([]db.WritingType, error)
	GetWritingTypeByValue(ctx context.Context, value string) (*db.WritingType, error)
	DeactivateWritingType(ctx context.Context, value string) error
	ListRoleLevels(ctx context.Context) ([]db.RoleLevel, error)

	CreateTone(ctx context.Context, value, label, description, toneContext string, displayOrder int) (*db.Tone, error)
	DeactivateTone(ctx context.Context, value, toneContext string) error

	UpdateProfile(ctx context.Context, p *db.Profile) (*db.Profile, error)

	ListTemplates(ctx context.Context) ([]db.PromptTemplate, error)
	CreateTemplate(ctx context.Context, writingType, name, content, notes string) (*db.PromptTemplate, error)
	DeactivateTemplate(ctx context.Context, writingType string, version int) error

	SaveGeneration(ctx context.Context, g *db.Generation) (*db.Generation, error)
	ListGenerations(ctx context.Context, limit int) ([]db.Generation, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	database   *db.DB
	store      Store
	assembler  *promptgen.Assembler
	llm        llm.Client
}

// Config holds server configuration
type Config struct {
	Port        int
	DatabaseURL string
	APIKey      string
	Model       string
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	// Connect to database
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// The LLM client is optional; without it only prompt_only requests succeed
	var client llm.Client
	if cfg.APIKey != "" {
		client, err = llm.NewClient(context.Background(), llm.DefaultConfig().WithModel(cfg.Model), cfg.APIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
	}

	s := newServer(database, client)
	s.database = database
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // Generation calls can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// newServer wires handlers against a store and an optional LLM client
func newServer(store Store, client llm.Client) *Server {
	return &Server{
		store:     store,
		assembler: promptgen.NewAssembler(store),
		llm:       client,
	}
}

// routes builds the request router
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /generate", s.handleGenerate)
	mux.HandleFunc("GET /health", s.handleHealth)

	// Catalog endpoints
	mux.HandleFunc("GET /writing-types", s.handleListWritingTypes)
	mux.HandleFunc("GET /writing-types/{value}", s.handleGetWritingType)
	mux.HandleFunc("DELETE /writing-types/{value}", s.handleDeactivateWritingType)
	mux.HandleFunc("GET /tones", s.handleListTones)
	mux.HandleFunc("POST /tones", s.handleCreateTone)
	mux.HandleFunc("DELETE /tones/{value}", s.handleDeactivateTone)
	mux.HandleFunc("GET /role-levels", s.handleListRoleLevels)

	// Profile endpoints
	mux.HandleFunc("GET /profile", s.handleGetProfile)
	mux.HandleFunc("PUT /profile", s.handleUpdateProfile)

	// Template endpoints
	mux.HandleFunc("GET /templates", s.handleListTemplates)
	mux.HandleFunc("POST /templates", s.handleCreateTemplate)
	mux.HandleFunc("DELETE /templates/{writing_type}/{version}", s.handleDeactivateTemplate)

	// History endpoints
	mux.HandleFunc("GET /history", s.handleListHistory)

	return mux
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.llm != nil {
		if err := s.llm.Close(); err != nil {
			log.Printf("Error closing LLM client: %v", err)
		}
	}

	if s.database != nil {
		s.database.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
