// internal/session/session.go
//
// Session service: binds players to their live game.
// Responsibilities:
//   - Reconcile a player's stored record with today's word on first use
//     (and again when the day rolls over while the game is cached).
//   - Apply key presses through the game engine, one at a time per player.
//   - Save the durable record after every transition that changes it.
//   - Record finished games in the store's history when the backend keeps one.
//
// Notes:
//   - Load and save failures never reach the player. A failed load starts a
//     fresh game, a failed save is logged and play continues.
//   - game.State is a value, so callers may keep what they are handed.

package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/robalobadob/phonicle/internal/daily"
	"github.com/robalobadob/phonicle/internal/game"
	"github.com/robalobadob/phonicle/internal/persist"
	"github.com/robalobadob/phonicle/internal/store"
	"github.com/robalobadob/phonicle/internal/words"
)

// Service owns the live games of all players.
type Service struct {
	store    store.Store
	list     *words.List
	selector *daily.Selector
	now      func() time.Time
	log      zerolog.Logger

	mu      sync.Mutex         // guards players
	players map[string]*player // keyed by player ID
}

// player is one cached game. mu serializes that player's transitions.
type player struct {
	mu     sync.Mutex
	state  game.State
	loaded bool
}

// Option customizes a Service.
type Option func(*Service)

// WithClock replaces time.Now, for tests and fixed-date play.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLogger sets the service logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Service) { s.log = l }
}

// New returns a Service playing list's answers in the order chosen by selector.
func New(st store.Store, list *words.List, selector *daily.Selector, opts ...Option) *Service {
	s := &Service{
		store:    st,
		list:     list,
		selector: selector,
		now:      time.Now,
		log:      zerolog.Nop(),
		players:  make(map[string]*player),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Words returns the word tables the service plays with.
func (s *Service) Words() *words.List { return s.list }

// Today returns the current answer.
func (s *Service) Today() words.Entry {
	return s.selector.Select(s.now())
}

// State returns the player's game, starting it if none is live.
func (s *Service) State(ctx context.Context, playerID string) game.State {
	p := s.player(playerID)
	p.mu.Lock()
	defer p.mu.Unlock()
	return s.current(ctx, playerID, p)
}

// Press applies an on-screen key (a letter, Ent or Del).
func (s *Service) Press(ctx context.Context, playerID, key string) game.State {
	return s.apply(ctx, playerID, true, func(st game.State) game.State {
		return st.Press(key, s.list)
	})
}

// EnterLetter types one letter.
func (s *Service) EnterLetter(ctx context.Context, playerID string, r rune) game.State {
	return s.apply(ctx, playerID, true, func(st game.State) game.State {
		return st.EnterLetter(r)
	})
}

// Delete removes the last typed letter.
func (s *Service) Delete(ctx context.Context, playerID string) game.State {
	return s.apply(ctx, playerID, true, game.State.DeleteLetter)
}

// Submit scores the current row.
func (s *Service) Submit(ctx context.Context, playerID string) game.State {
	return s.apply(ctx, playerID, true, func(st game.State) game.State {
		return st.SubmitGuess(s.list)
	})
}

// ToggleModal flips a panel. Panels are not stored, so nothing is saved.
func (s *Service) ToggleModal(ctx context.Context, playerID string, m game.Modal) game.State {
	return s.apply(ctx, playerID, false, func(st game.State) game.State {
		return st.ToggleModal(m)
	})
}

// Stats returns the player's cumulative stats.
func (s *Service) Stats(ctx context.Context, playerID string) game.Stats {
	return s.State(ctx, playerID).Stats()
}

// Hint is the phoneme practiced by today's word and its common spellings.
type Hint struct {
	Phoneme   string         `json:"phoneme"`
	Spellings []HintSpelling `json:"spellings"`
}

// HintSpelling is one spelling of the phoneme shown in an example word.
type HintSpelling struct {
	Grapheme string        `json:"grapheme"`
	Example  string        `json:"example"`
	Tiles    []game.Letter `json:"-"`
}

// Hint returns the hint for the player's current word.
func (s *Service) Hint(ctx context.Context, playerID string) Hint {
	st := s.State(ctx, playerID)
	h := Hint{Phoneme: st.Hint, Spellings: []HintSpelling{}}
	for _, g := range s.list.Graphemes(st.Hint) {
		h.Spellings = append(h.Spellings, HintSpelling{
			Grapheme: g.Grapheme,
			Example:  g.Example,
			Tiles:    game.HighlightGrapheme(strings.ToUpper(g.Grapheme), strings.ToUpper(g.Example)),
		})
	}
	return h
}

// History returns up to limit finished games, newest first. Backends without
// history give an empty list.
func (s *Service) History(ctx context.Context, playerID string, limit int) ([]store.Result, error) {
	rec, ok := s.store.(store.ResultRecorder)
	if !ok {
		return []store.Result{}, nil
	}
	return rec.Results(ctx, playerID, limit)
}

func (s *Service) player(playerID string) *player {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.players[playerID]
	if !ok {
		p = &player{}
		s.players[playerID] = p
	}
	return p
}

// apply runs f on the player's game and keeps the result.
func (s *Service) apply(ctx context.Context, playerID string, save bool, f func(game.State) game.State) game.State {
	p := s.player(playerID)
	p.mu.Lock()
	defer p.mu.Unlock()

	prev := s.current(ctx, playerID, p)
	next := f(prev)
	p.state = next

	if save {
		s.save(ctx, playerID, next)
	}
	if !prev.Outcome.Finished() && next.Outcome.Finished() {
		s.recordResult(ctx, playerID, next)
	}
	return next
}

// current returns the player's game for today. Callers hold p.mu.
func (s *Service) current(ctx context.Context, playerID string, p *player) game.State {
	entry := s.Today()
	today := persist.Today{Secret: entry.Word, Hint: entry.Hint}

	if p.loaded {
		if strings.EqualFold(p.state.Secret, today.Secret) {
			return p.state
		}
		// the day rolled over: start the new word, keep the stats
		rec := persist.Encode(p.state)
		p.state = persist.Restore(today, &rec)
		s.log.Info().Str("player", playerID).Str("date", s.selector.Day(s.now())).Msg("new daily word")
		s.save(ctx, playerID, p.state)
		return p.state
	}

	rec, err := s.store.Load(ctx, playerID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		rec = nil
	case err != nil:
		s.log.Warn().Err(err).Str("player", playerID).Msg("load record; starting fresh")
		rec = nil
	}
	p.state = persist.Restore(today, rec)
	p.loaded = true
	return p.state
}

func (s *Service) save(ctx context.Context, playerID string, st game.State) {
	if err := s.store.Save(ctx, playerID, persist.Encode(st)); err != nil {
		s.log.Error().Err(err).Str("player", playerID).Msg("save record")
	}
}

func (s *Service) recordResult(ctx context.Context, playerID string, st game.State) {
	rec, ok := s.store.(store.ResultRecorder)
	if !ok {
		return
	}
	res := store.Result{
		PlayerID:  playerID,
		Date:      s.selector.Day(s.now()),
		Solution:  st.Secret,
		Outcome:   st.Outcome.String(),
		Guesses:   st.Round + 1,
		CreatedAt: s.now().UTC(),
	}
	if err := rec.RecordResult(ctx, res); err != nil {
		s.log.Warn().Err(err).Str("player", playerID).Msg("record result")
		return
	}
	s.log.Info().Str("player", playerID).Str("outcome", res.Outcome).Int("guesses", res.Guesses).Msg("game finished")
}
