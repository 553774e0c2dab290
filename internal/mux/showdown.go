package mux

import (
	"net/http"

	"pokerhands/pkg/deck"
	"pokerhands/pkg/showdown"
)

type showdownPayload struct {
	Board   deck.Hand         `json:"board"`
	Players []showdown.Player `json:"players"`
}

type showdownResult struct {
	ID   string       `json:"id"`
	Hand handResponse `json:"hand"`
}

type showdownResponse struct {
	Tiers [][]showdownResult `json:"tiers"`
}

func (m *Mux) postShowdown() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload showdownPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		tiers, err := showdown.Rank(payload.Board, payload.Players)
		if err != nil {
			writeMaybeBadRequestError(w, err)
			return
		}

		resp := showdownResponse{Tiers: make([][]showdownResult, len(tiers))}
		for i, tier := range tiers {
			resp.Tiers[i] = make([]showdownResult, len(tier))
			for j, result := range tier {
				resp.Tiers[i][j] = showdownResult{
					ID:   result.Player.ID,
					Hand: newHandResponse(result.Hand, result.Cards),
				}
			}
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
