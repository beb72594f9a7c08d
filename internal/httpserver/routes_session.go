// apps/solver/internal/httpserver/routes_session.go
//
// Interactive solver sessions over HTTP. One session wraps one live
// game; every response carries the full turn state (recommendations,
// engine pick, remaining candidates) so clients stay stateless.

package httpserver

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
)

// apiWord is the wire shape of one candidate.
type apiWord struct {
	Word    string  `json:"word"`
	Entropy float64 `json:"entropy"`
	Rank    int     `json:"rank"`
}

// apiRec is one labeled recommendation slot.
type apiRec struct {
	Label   string  `json:"label"`
	Word    string  `json:"word"`
	Entropy float64 `json:"entropy"`
	Rank    int     `json:"rank"`
}

// sessionStateRes is the full turn state returned by every session
// endpoint.
type sessionStateRes struct {
	SessionID       string              `json:"sessionId"`
	Mode            string              `json:"mode"`
	Strategy        string              `json:"strategy"`
	Turn            int                 `json:"turn"`
	ValidCount      int                 `json:"validCount"`
	Solved          bool                `json:"solved"`
	Over            bool                `json:"over"`
	Recommendations []apiRec            `json:"recommendations"`
	Pick            *apiWord            `json:"pick,omitempty"`
	History         []solver.TurnResult `json:"history,omitempty"`
}

// sessionState assembles the response for the session's current turn.
func sessionState(sess *store.Session) sessionStateRes {
	g := sess.Game
	mode := "normal"
	if g.Hard {
		mode = "hard"
	}
	res := sessionStateRes{
		SessionID:  sess.ID,
		Mode:       mode,
		Strategy:   g.Strategy.Name,
		Turn:       g.Turn(),
		ValidCount: g.ValidCount(),
		Solved:     g.Solved(),
		Over:       g.Over(),
		History:    g.History,
	}
	if g.Over() {
		return res
	}
	if recs, ok := g.Recommendations(); ok {
		for _, rec := range recs {
			res.Recommendations = append(res.Recommendations, apiRec{
				Label:   rec.Label,
				Word:    rec.Entry.Word,
				Entropy: rec.Entry.Entropy,
				Rank:    rec.Entry.Rank,
			})
		}
	}
	if pick := g.Suggest(); pick != nil {
		res.Pick = &apiWord{Word: pick.Word, Entropy: pick.Entropy, Rank: pick.Rank}
	}
	return res
}

// newSessionReq is the payload for POST /api/session.
type newSessionReq struct {
	Mode     string `json:"mode"`     // "normal" (default) | "hard"
	Strategy int    `json:"strategy"` // roster index; 0 is the champion
}

// handleNewSession creates a session and returns the opening state.
func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	var req newSessionReq
	_ = json.NewDecoder(r.Body).Decode(&req) // empty body = defaults

	roster := solver.Roster()
	if req.Strategy < 0 || req.Strategy >= len(roster) {
		http.Error(w, `{"error":"unknown_strategy"}`, http.StatusBadRequest)
		return
	}
	var hard bool
	switch req.Mode {
	case "", "normal":
	case "hard":
		hard = true
	default:
		http.Error(w, `{"error":"unknown_mode"}`, http.StatusBadRequest)
		return
	}

	now := time.Now()
	sess := &store.Session{
		ID:        genID(),
		Game:      solver.NewGame(s.lex, roster[req.Strategy], hard),
		CreatedAt: now,
		LastSeen:  now,
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	log.Debug().Str("session", sess.ID).Str("strategy", sess.Game.Strategy.Name).Str("mode", req.Mode).Msg("session created")

	_ = json.NewEncoder(w).Encode(sessionState(sess))
}

// handleSessionState returns the current turn state.
func (s *Server) handleSessionState(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(sessionState(sess))
}

// guessReq is the payload for POST /api/session/{id}/guess.
type guessReq struct {
	Guess   string `json:"guess"`
	Pattern string `json:"pattern"` // five of B/Y/G (or 0/1/2)
}

// handleGuess folds one real-world result into the session and returns
// the refreshed state.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	p, err := game.ParsePattern(req.Pattern)
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	err = sess.Game.ApplyFeedback(req.Guess, p)
	switch {
	case errors.Is(err, solver.ErrFinished):
		http.Error(w, `{"error":"game_finished"}`, http.StatusConflict)
		return
	case errors.Is(err, solver.ErrExhausted):
		// Contradictory feedback emptied the pool; the session keeps its
		// history but cannot continue.
		http.Error(w, `{"error":"no_candidates"}`, http.StatusUnprocessableEntity)
		return
	case err != nil:
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	sess.LastSeen = time.Now()
	if err := s.store.Save(r.Context(), sess); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(sessionState(sess))
}

// genID creates a 22-char URL-safe, crypto-random identifier (no padding).
func genID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	s := base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(b[:])
	if len(s) > 22 {
		return s[:22]
	}
	return s
}
