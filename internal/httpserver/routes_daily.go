// internal/httpserver/routes_daily.go
//
// HTTP route for the "daily" game: the first secret of the session is the
// word of the day (HMAC of the UTC date and DAILY_SALT); later new games on
// the same session pick at random as usual.

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
)

// mountDaily registers the /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", s.handleDailyNew)
	})
}

// handleDailyNew starts (or restarts) the caller's session on today's word.
func (s *Server) handleDailyNew(w http.ResponseWriter, r *http.Request) {
	word, date := s.daily.Today()
	w.Header().Set("X-Daily-Date", date)
	s.startGame(w, r, func(sess *game.Session) { sess.Reset(word) }, word)
}
