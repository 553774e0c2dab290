package mux

import (
	"fmt"
	"net/http"

	"pokerhands/pkg/deck"
	"pokerhands/pkg/equity"
)

type equityPayload struct {
	Hands      []deck.Hand `json:"hands"`
	Board      deck.Hand   `json:"board"`
	Iterations int         `json:"iterations"`
	Seed       int64       `json:"seed"`
}

func (m *Mux) postEquity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload equityPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		iterations := payload.Iterations
		if iterations < 0 || iterations > m.equity.MaxIterations {
			writeJSONError(w, http.StatusBadRequest, fmt.Errorf("iterations must be between 0 and %d", m.equity.MaxIterations))
			return
		}

		if iterations == 0 {
			iterations = m.equity.Iterations
		}

		hands := make([][]deck.Card, len(payload.Hands))
		for i, h := range payload.Hands {
			hands[i] = h
		}

		result, err := equity.Calculate(r.Context(), equity.Request{
			Hands:      hands,
			Board:      payload.Board,
			Iterations: iterations,
			Workers:    m.equity.Workers,
			Seed:       payload.Seed,
			Logger:     m.logger,
		})
		if err != nil {
			writeMaybeBadRequestError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
