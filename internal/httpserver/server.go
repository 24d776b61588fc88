// internal/httpserver/server.go
//
// HTTP server wiring for the phonics word game.
// Responsibilities:
//   - Router + middleware (request IDs, access logs, JSON, CORS, timeouts,
//     panic recovery).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Player endpoints (anonymous identity, see player.go): the game board,
//     key presses, panels, stats, hint and history (routes_game.go).
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so cookies work).
//   - Every response body is JSON, errors included: {"error":"code"}.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/phonicle/internal/config"
	"github.com/robalobadob/phonicle/internal/session"
)

// endpoints is the index served at "/".
var endpoints = []string{
	"/health",
	"GET /game",
	"POST /game/key",
	"POST /game/letter",
	"POST /game/delete",
	"POST /game/submit",
	"POST /game/modal/{name}",
	"GET /stats",
	"GET /hint",
	"GET /history",
}

// Server bundles the router and the session service.
type Server struct {
	r        *chi.Mux
	sessions *session.Service
	players  *players
	origin   string
	log      zerolog.Logger
}

// New constructs a Server, installs middleware, and registers routes.
func New(svc *session.Service, cfg *config.Config, logger zerolog.Logger) *Server {
	s := &Server{
		r:        chi.NewRouter(),
		sessions: svc,
		players: &players{
			secret:     []byte(cfg.JWTSecret),
			ttl:        cfg.TokenTTL(),
			cookieName: cfg.CookieName,
			secure:     cfg.IsProduction(),
			now:        time.Now,
		},
		origin: cfg.ClientOrigin,
		log:    logger,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                   // add X-Request-ID
	s.r.Use(chimw.RealIP)                      // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(hlog.NewHandler(logger))           // request-scoped logger
	s.r.Use(accessLog)                         // one line per request
	s.r.Use(chimw.Recoverer)                   // recover from panics
	s.r.Use(chimw.Timeout(cfg.RequestTimeout)) // bound handler time
	s.r.Use(jsonContentType)                   // default JSON responses
	s.r.Use(s.cors)                            // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"service": "phonicle", "endpoints": endpoints})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		a, g := s.sessions.Words().Stats()
		writeJSON(w, http.StatusOK, map[string]int{"answers": a, "allowed": g})
	})

	// --- game ---
	s.r.Group(func(r chi.Router) {
		r.Use(s.players.identify)
		s.mountGame(r)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})
	s.r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed")
	})

	return s
}

// Start serves HTTP on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured client origin.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", s.origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Expose-Headers", TokenHeader)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// accessLog logs method, path, status, size and duration with the request ID.
var accessLog = hlog.AccessHandler(func(r *http.Request, status, size int, d time.Duration) {
	hlog.FromRequest(r).Info().
		Str("req_id", chimw.GetReqID(r.Context())).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Int("size", size).
		Dur("duration", d).
		Msg("request")
})

// ------------------------------- helpers -----------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
