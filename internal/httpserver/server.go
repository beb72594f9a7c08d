// apps/solver/internal/httpserver/server.go
//
// HTTP wiring for the solver API.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Session endpoints: POST /api/session, GET /api/session/{id},
//     POST /api/session/{id}/guess.
//   - Admin endpoints: POST /api/auth/login, POST /api/simulate (JWT-gated,
//     single-flight).
//   - Idle-session sweep on a timer.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so cookies work).
//   - Tournament runs outlive the default handler timeout and get their own
//     route group with a wider bound.

package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"github.com/robalobadob/wordle/apps/solver/internal/store"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

const (
	sessionTTL = 30 * time.Minute
	sweepEvery = 5 * time.Minute
)

// Server bundles router, session store and the master lexicon.
type Server struct {
	r      *chi.Mux
	store  store.Store
	lex    *words.Lexicon
	simSem *semaphore.Weighted // one tournament at a time
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, lex *words.Lexicon) *Server {
	s := &Server{
		r:      chi.NewRouter(),
		store:  st,
		lex:    lex,
		simSem: semaphore.NewWeighted(1),
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID) // add X-Request-ID
	s.r.Use(chimw.RealIP)    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer) // recover from panics
	s.r.Use(jsonContentType) // default JSON responses
	s.r.Use(corsFromEnv)     // credentials-friendly CORS

	s.r.Group(func(r chi.Router) {
		r.Use(chimw.Timeout(10 * time.Second)) // bound handler time

		// --- diagnostics ---
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"service":"wordle-solver","endpoints":["/health","POST /api/session","POST /api/session/{id}/guess","POST /api/auth/login","POST /api/simulate"]}`))
		})
		r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"ok":true}`))
		})
		r.Get("/debug/words", func(w http.ResponseWriter, req *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]int{
				"words":    s.lex.Len(),
				"skipped":  s.lex.Skipped,
				"excluded": s.lex.Excluded,
			})
		})

		// --- interactive sessions ---
		r.Post("/api/session", s.handleNewSession)
		r.Get("/api/session/{id}", s.handleSessionState)
		r.Post("/api/session/{id}/guess", s.handleGuess)

		// --- admin auth ---
		r.Post("/api/auth/login", s.handleLogin)
	})

	// Tournaments run for minutes, not milliseconds.
	s.r.Group(func(r chi.Router) {
		r.Use(chimw.Timeout(5 * time.Minute))
		r.With(s.requireAuth()).Post("/api/simulate", s.handleSimulate)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+req.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr and sweeps idle sessions in the
// background.
func (s *Server) Start(addr string) error {
	go s.sweepSessions()
	return http.ListenAndServe(addr, s.r)
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// sweepSessions expires idle sessions on a fixed interval.
func (s *Server) sweepSessions() {
	t := time.NewTicker(sweepEvery)
	defer t.Stop()
	for range t.C {
		if n := s.store.Expire(context.Background(), time.Now().Add(-sessionTTL)); n > 0 {
			log.Debug().Int("sessions", n).Msg("expired idle sessions")
		}
	}
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------- small util --------------------------------

// envStr returns the value of k or def if unset/empty.
func envStr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
