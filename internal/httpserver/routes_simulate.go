// apps/solver/internal/httpserver/routes_simulate.go
//
// Tournament runs over HTTP. A weighted semaphore of capacity one keeps
// runs single-flight: a second request while one is in progress gets a
// 409 instead of fighting the first for cores.

package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/tournament"
)

// simulateReq is the payload for POST /api/simulate.
type simulateReq struct {
	Strategies []int `json:"strategies"` // roster indices; default roster when empty
	Hard       bool  `json:"hard"`
	Workers    int   `json:"workers"` // 0 = NumCPU
}

// simulateRes carries the per-strategy results plus the champion index.
type simulateRes struct {
	Results  []tournament.Stats `json:"results"`
	Champion int                `json:"champion"`
}

// handleSimulate runs a tournament for the requested strategies.
func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	if !s.simSem.TryAcquire(1) {
		http.Error(w, `{"error":"simulation_running"}`, http.StatusConflict)
		return
	}
	defer s.simSem.Release(1)

	var req simulateReq
	_ = json.NewDecoder(r.Body).Decode(&req) // empty body = default roster

	var strats []solver.Strategy
	if len(req.Strategies) == 0 {
		strats = tournament.DefaultRoster()
	} else {
		roster := solver.Roster()
		for _, i := range req.Strategies {
			if i < 0 || i >= len(roster) {
				http.Error(w, `{"error":"unknown_strategy"}`, http.StatusBadRequest)
				return
			}
			strats = append(strats, roster[i])
		}
	}

	runner := &tournament.Runner{Lexicon: s.lex, Hard: req.Hard, Workers: req.Workers}
	results, err := runner.Run(r.Context(), strats)
	if err != nil {
		log.Error().Err(err).Msg("simulation failed")
		http.Error(w, `{"error":"simulation_failed"}`, http.StatusInternalServerError)
		return
	}

	_ = json.NewEncoder(w).Encode(simulateRes{
		Results:  results,
		Champion: tournament.Champion(results),
	})
}
