// internal/httpserver/routes_game.go
//
// HTTP routes for the player's daily game.
//   - GET  /game               → the board (starts today's game if needed)
//   - POST /game/key           → press an on-screen key: a letter, "Ent" or "Del"
//   - POST /game/letter        → type one letter
//   - POST /game/delete        → delete the last letter
//   - POST /game/submit        → score the current row
//   - POST /game/modal/{name}  → toggle the info, help or stats panel
//   - GET  /stats              → cumulative stats
//   - GET  /hint               → today's phoneme and its spellings
//   - GET  /history            → finished games, newest first
//
// Every game route answers with the full board view. The answer is only
// included once the game is over.

package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"github.com/robalobadob/phonicle/internal/game"
	"github.com/robalobadob/phonicle/internal/session"
)

const (
	defaultHistory = 20
	maxHistory     = 100
)

// mountGame registers the player routes on r.
func (s *Server) mountGame(r chi.Router) {
	r.Get("/game", s.handleGame)
	r.Post("/game/key", s.handleKey)
	r.Post("/game/letter", s.handleLetter)
	r.Post("/game/delete", s.handleDelete)
	r.Post("/game/submit", s.handleSubmit)
	r.Post("/game/modal/{name}", s.handleModal)
	r.Get("/stats", s.handleStats)
	r.Get("/hint", s.handleHint)
	r.Get("/history", s.handleHistory)
}

// -----------------------------------------------------------------------------
// views

type tileView struct {
	Letter string      `json:"letter"`
	Status game.Status `json:"status"`
}

type rowView struct {
	Cursor  int        `json:"cursor"`
	Letters []tileView `json:"letters"`
}

// gameView is the JSON shape of a game.
type gameView struct {
	Rows     []rowView     `json:"rows"`
	Round    int           `json:"round"`
	Outcome  game.Outcome  `json:"outcome"`
	Keyboard game.Keyboard `json:"keyboard"`
	Modals   game.Modals   `json:"modals"`
	Hint     string        `json:"hint"`
	Stats    game.Stats    `json:"stats"`
	Solution string        `json:"solution,omitempty"`
}

func tiles(letters []game.Letter) []tileView {
	return lo.Map(letters, func(l game.Letter, _ int) tileView {
		return tileView{Letter: l.String(), Status: l.Status}
	})
}

func newGameView(st game.State) gameView {
	v := gameView{
		Rows: lo.Map(st.Rows[:], func(r game.Row, _ int) rowView {
			return rowView{Cursor: r.Cursor, Letters: tiles(r.Guess[:])}
		}),
		Round:    st.Round,
		Outcome:  st.Outcome,
		Keyboard: st.Keyboard,
		Modals:   st.Modals,
		Hint:     st.Hint,
		Stats:    st.Stats(),
	}
	if v.Keyboard == nil {
		v.Keyboard = game.Keyboard{}
	}
	if st.Outcome.Finished() {
		v.Solution = st.Secret
	}
	return v
}

type spellingView struct {
	Grapheme string     `json:"grapheme"`
	Example  string     `json:"example"`
	Tiles    []tileView `json:"tiles"`
}

type hintView struct {
	Phoneme   string         `json:"phoneme"`
	Spellings []spellingView `json:"spellings"`
}

func newHintView(h session.Hint) hintView {
	return hintView{
		Phoneme: h.Phoneme,
		Spellings: lo.Map(h.Spellings, func(sp session.HintSpelling, _ int) spellingView {
			return spellingView{Grapheme: sp.Grapheme, Example: sp.Example, Tiles: tiles(sp.Tiles)}
		}),
	}
}

// -----------------------------------------------------------------------------
// handlers

func (s *Server) handleGame(w http.ResponseWriter, r *http.Request) {
	st := s.sessions.State(r.Context(), playerID(r))
	writeJSON(w, http.StatusOK, newGameView(st))
}

// keyReq is the request payload for /game/key.
type keyReq struct {
	Key string `json:"key"`
}

func (s *Server) handleKey(w http.ResponseWriter, r *http.Request) {
	var req keyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if strings.TrimSpace(req.Key) == "" {
		writeError(w, http.StatusBadRequest, "missing_key")
		return
	}
	st := s.sessions.Press(r.Context(), playerID(r), req.Key)
	writeJSON(w, http.StatusOK, newGameView(st))
}

// letterReq is the request payload for /game/letter.
type letterReq struct {
	Letter string `json:"letter"`
}

func (s *Server) handleLetter(w http.ResponseWriter, r *http.Request) {
	var req letterReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	letter := strings.TrimSpace(req.Letter)
	if utf8.RuneCountInString(letter) != 1 {
		writeError(w, http.StatusBadRequest, "want_one_letter")
		return
	}
	ch, _ := utf8.DecodeRuneInString(letter)
	st := s.sessions.EnterLetter(r.Context(), playerID(r), ch)
	writeJSON(w, http.StatusOK, newGameView(st))
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	st := s.sessions.Delete(r.Context(), playerID(r))
	writeJSON(w, http.StatusOK, newGameView(st))
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	st := s.sessions.Submit(r.Context(), playerID(r))
	writeJSON(w, http.StatusOK, newGameView(st))
}

func (s *Server) handleModal(w http.ResponseWriter, r *http.Request) {
	m, ok := game.ParseModal(chi.URLParam(r, "name"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown_modal")
		return
	}
	st := s.sessions.ToggleModal(r.Context(), playerID(r), m)
	writeJSON(w, http.StatusOK, newGameView(st))
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.sessions.Stats(r.Context(), playerID(r)))
}

func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newHintView(s.sessions.Hint(r.Context(), playerID(r))))
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistory
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "bad_limit")
			return
		}
		limit = min(n, maxHistory)
	}
	out, err := s.sessions.History(r.Context(), playerID(r), limit)
	if err != nil {
		s.log.Error().Err(err).Msg("load history")
		writeError(w, http.StatusInternalServerError, "history_failed")
		return
	}
	writeJSON(w, http.StatusOK, out)
}
