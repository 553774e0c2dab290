package mux

import (
	"net/http"

	"pokerhands/pkg/deck"
	"pokerhands/pkg/handanalyzer"
)

type handResponse struct {
	Category    string    `json:"category"`
	Rank        int       `json:"rank"`
	Description string    `json:"description"`
	Strength    int       `json:"strength"`
	Cards       deck.Hand `json:"cards,omitempty"`
}

func newHandResponse(h handanalyzer.Hand, cards deck.Hand) handResponse {
	return handResponse{
		Category:    h.Category().String(),
		Rank:        int(h.Category()),
		Description: h.String(),
		Strength:    handanalyzer.Strength(h),
		Cards:       cards,
	}
}

type cardsPayload struct {
	Cards deck.Hand `json:"cards"`
}

type comparePayload struct {
	A deck.Hand `json:"a"`
	B deck.Hand `json:"b"`
}

type compareResponse struct {
	Result int          `json:"result"`
	A      handResponse `json:"a"`
	B      handResponse `json:"b"`
}

func (m *Mux) postClassify() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload cardsPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		h, err := handanalyzer.Classify(payload.Cards)
		if err != nil {
			writeMaybeBadRequestError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newHandResponse(h, nil))
	}
}

func (m *Mux) postBest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload cardsPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		h, cards, err := handanalyzer.BestOf(payload.Cards)
		if err != nil {
			writeMaybeBadRequestError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newHandResponse(h, cards))
	}
}

func (m *Mux) postCompare() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload comparePayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		a, aCards, err := handanalyzer.BestOf(payload.A)
		if err != nil {
			writeMaybeBadRequestError(w, err)
			return
		}

		b, bCards, err := handanalyzer.BestOf(payload.B)
		if err != nil {
			writeMaybeBadRequestError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, compareResponse{
			Result: handanalyzer.Compare(a, b),
			A:      newHandResponse(a, aCards),
			B:      newHandResponse(b, bCards),
		})
	}
}
