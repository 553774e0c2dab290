package handanalyzer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrWrongHandSize is returned when the number of cards does not match what the evaluation expects
var ErrWrongHandSize = errors.New("wrong number of cards")

// ErrDuplicateCard is returned when the same card (rank and suit) appears twice
var ErrDuplicateCard = errors.New("duplicate card")

// ErrInvalidHand is returned when the cards cannot be a hand dealt from a single 52-card deck
var ErrInvalidHand = errors.New("invalid hand")

// HandSizeError is an error on the number of cards handed to an evaluation.
// It matches ErrWrongHandSize with errors.Is.
type HandSizeError struct {
	Want []int
	Got  int
}

func (h HandSizeError) Error() string {
	want := make([]string, len(h.Want))
	for i, w := range h.Want {
		want[i] = strconv.Itoa(w)
	}

	return fmt.Sprintf("%v: expected %s cards, got %d", ErrWrongHandSize, strings.Join(want, " or "), h.Got)
}

// Unwrap returns ErrWrongHandSize
func (h HandSizeError) Unwrap() error {
	return ErrWrongHandSize
}
