// internal/httpserver/server.go
//
// HTTP server wiring for the Wordle game API.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints: POST /game/new, then (session token required)
//     GET /game, POST /game/letter, /game/delete, /game/submit, /game/guess.
//   - Daily game: POST /daily/new (mounted from routes_daily.go).
//
// Notes:
//   - A client is bound to its game by a signed session token, sent back as a
//     cookie and in the body so non-browser clients can use a bearer header.
//   - Each request is one abstract input event, applied under the store lock.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/config"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/daily"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/store"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/words"
)

// Server bundles router, session store and word lists.
type Server struct {
	r      *chi.Mux
	store  store.Store
	lists  *words.Lists
	picker game.Picker
	daily  *daily.Picker
	cfg    config.Config
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, lists *words.Lists, cfg config.Config) *Server {
	s := &Server{
		r:      chi.NewRouter(),
		store:  st,
		lists:  lists,
		picker: words.NewRandomPicker(lists.Answers),
		daily:  daily.NewPicker(lists.Answers, cfg.DailySalt, nil),
		cfg:    cfg,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(hlog.NewHandler(log.Logger))     // request-scoped logger
	s.r.Use(accessLog)                       // one line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(cfg.ClientOrigin))          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-go","endpoints":["/health","POST /game/new","GET /game","POST /game/letter","POST /game/delete","POST /game/submit","POST /game/guess","POST /daily/new"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		a, d := s.lists.Stats()
		writeJSON(w, http.StatusOK, map[string]int{"answers": a, "dictionary": d, "sessions": s.store.Len()})
	})

	s.r.Route("/game", func(r chi.Router) {
		r.Post("/new", s.handleNewGame)
		r.Group(func(r chi.Router) {
			r.Use(s.requireSession)
			r.Get("/", s.handleView)
			r.Post("/letter", s.handleLetter)
			r.Post("/delete", s.handleDelete)
			r.Post("/submit", s.handleSubmit)
			r.Post("/guess", s.handleGuess)
		})
	})
	s.mountDaily(s.r)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})
	return s
}

// Start serves HTTP on addr until ctx is cancelled, then shuts down gracefully.
// Idle sessions are swept every minute.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 5 * time.Second}
	go s.sweepLoop(ctx, time.Minute)

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

func (s *Server) sweepLoop(ctx context.Context, every time.Duration) {
	if s.cfg.SessionTTL <= 0 {
		return
	}
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			if n := s.store.Sweep(ctx, now.Add(-s.cfg.SessionTTL)); n > 0 {
				log.Info().Int("removed", n).Msg("swept idle sessions")
			}
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

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
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
}

var accessLog = hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
	hlog.FromRequest(r).Info().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Str("request_id", chimw.GetReqID(r.Context())).
		Int("status", status).
		Int("size", size).
		Dur("duration", duration).
		Msg("request")
})

// ------------------------------ GAME ---------------------------------------

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Answer string `json:"answer"` // optional fixed answer (testing, ALLOW_FIXED_ANSWER)
}
type newGameRes struct {
	GameID string    `json:"gameId"`
	Token  string    `json:"token"`
	View   game.View `json:"view"`
}

// handleNewGame resets the caller's current game if it still exists,
// otherwise creates a new session and issues a token for it.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	answer, err := s.fixedAnswer(req.Answer)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.startGame(w, r, func(sess *game.Session) { sess.Reset(answer) }, answer)
}

// startGame resets the token's session with reset, or creates a session
// whose first secret is firstAnswer (picked when empty).
func (s *Server) startGame(w http.ResponseWriter, r *http.Request, reset func(*game.Session), firstAnswer string) {
	if tok := bearerOrCookie(r, s.cfg.CookieName); tok != "" {
		if gid, err := s.parseToken(tok); err == nil {
			var view game.View
			err := s.store.Update(r.Context(), gid, func(sess *game.Session) error {
				reset(sess)
				view = sess.Snapshot(game.Message{})
				return nil
			})
			if err == nil {
				writeJSON(w, http.StatusOK, newGameRes{GameID: gid, Token: tok, View: view})
				return
			}
		}
	}

	sess := game.New(s.lists.Dict, s.picker, firstAnswer)
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	tok, exp, err := s.signToken(sess.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	s.setSessionCookie(w, tok, exp)
	hlog.FromRequest(r).Info().Str("gameId", sess.ID).Msg("new session")
	writeJSON(w, http.StatusCreated, newGameRes{GameID: sess.ID, Token: tok, View: sess.Snapshot(game.Message{})})
}

var (
	errFixedAnswerDisabled = errors.New("fixed_answer_disabled")
	errBadAnswer           = errors.New("invalid_answer")
)

func (s *Server) fixedAnswer(a string) (string, error) {
	a = strings.ToLower(strings.TrimSpace(a))
	if a == "" {
		return "", nil
	}
	if !s.cfg.AllowFixedAnswer {
		return "", errFixedAnswerDisabled
	}
	if !s.lists.Dict.Contains(a) {
		return "", errBadAnswer
	}
	return a, nil
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	s.apply(w, r, func(*game.Session) (game.Message, error) { return game.Message{}, nil })
}

type letterReq struct {
	Letter string `json:"letter"`
}

func (s *Server) handleLetter(w http.ResponseWriter, r *http.Request) {
	var req letterReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if len(req.Letter) != 1 || !isLetter(req.Letter[0]) {
		writeError(w, http.StatusBadRequest, "invalid_letter")
		return
	}
	s.apply(w, r, func(sess *game.Session) (game.Message, error) {
		sess.EnterLetter(rune(req.Letter[0]))
		return game.Message{}, nil
	})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	s.apply(w, r, func(sess *game.Session) (game.Message, error) {
		sess.DeleteLetter()
		return game.Message{}, nil
	})
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	s.apply(w, r, func(sess *game.Session) (game.Message, error) {
		return sess.Submit(), nil
	})
}

// guessReq is the payload for POST /game/guess.
type guessReq struct {
	Guess string `json:"guess"`
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	s.apply(w, r, func(sess *game.Session) (game.Message, error) {
		return sess.ApplyGuess(req.Guess)
	})
}

// apply runs one event on the caller's session and writes the resulting view.
func (s *Server) apply(w http.ResponseWriter, r *http.Request, event func(*game.Session) (game.Message, error)) {
	gid := gameID(r.Context())
	var view game.View
	err := s.store.Update(r.Context(), gid, func(sess *game.Session) error {
		msg, err := event(sess)
		if err != nil {
			return err
		}
		view = sess.Snapshot(msg)
		return nil
	})
	switch {
	case err == nil:
		if view.Signal != "" {
			hlog.FromRequest(r).Debug().Str("gameId", gid).Str("signal", view.Signal).Msg("game signal")
		}
		writeJSON(w, http.StatusOK, view)
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	case errors.Is(err, game.ErrInvalidGuess):
		writeError(w, http.StatusBadRequest, "invalid_guess")
	case errors.Is(err, game.ErrFinished):
		writeError(w, http.StatusBadRequest, "game_finished")
	default:
		hlog.FromRequest(r).Error().Err(err).Str("gameId", gid).Msg("apply event")
		writeError(w, http.StatusInternalServerError, "internal")
	}
}

// ------------------------------- small util --------------------------------

func isLetter(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
