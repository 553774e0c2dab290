package mux

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"pokerhands/pkg/deck"
	"pokerhands/pkg/equity"
	"pokerhands/pkg/handanalyzer"
	"pokerhands/pkg/showdown"
)

// errors caused by the request rather than the server
var badRequestErrors = []error{
	deck.ErrInvalidRank,
	deck.ErrInvalidSuit,
	handanalyzer.ErrWrongHandSize,
	handanalyzer.ErrDuplicateCard,
	handanalyzer.ErrInvalidHand,
	showdown.ErrNoPlayers,
	showdown.ErrDuplicatePlayer,
	showdown.ErrInvalidBoard,
	equity.ErrNoHands,
	equity.ErrTooManyHands,
	equity.ErrBoardTooLarge,
	equity.ErrHoleCards,
}

func decodeRequest(w http.ResponseWriter, r *http.Request, payload interface{}) bool {
	if ct := r.Header.Get("Content-Type"); ct != "application/json" && ct != "text/json" {
		writeJSONError(w, http.StatusUnsupportedMediaType, nil)
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("could not write JSON response")
	}
}

type errorResponse struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// if err was caused by bad input, treat as a 400, otherwise treat as a 500
func writeMaybeBadRequestError(w http.ResponseWriter, err error) {
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}
	}

	writeJSONError(w, http.StatusInternalServerError, err)
}

func writeJSONError(w http.ResponseWriter, statusCode int, err error) {
	var msg string

	if statusCode < 500 && err != nil {
		msg = err.Error()
	} else {
		msg = http.StatusText(statusCode)
	}

	if statusCode >= 500 {
		logrus.WithField("statusCode", statusCode).Error(err)
	}

	writeJSON(w, statusCode, errorResponse{
		Message:    msg,
		StatusCode: statusCode,
	})
}
