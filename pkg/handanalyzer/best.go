package handanalyzer

import (
	"math/bits"

	"pokerhands/pkg/deck"
)

// BoardSize is the number of cards a hold'em player makes a hand from: two hole cards and five community cards
const BoardSize = 7

// BestHand returns the best five-card hand out of exactly seven cards
func BestHand(cards []deck.Card) (Hand, error) {
	if len(cards) != BoardSize {
		return nil, HandSizeError{Want: []int{BoardSize}, Got: len(cards)}
	}

	h, _, err := BestOf(cards)
	return h, err
}

// BestOf returns the best five-card hand that can be made from five, six or
// seven cards, along with the five cards that make it (high to low).
// Every five-card subset is classified; the first of several equal hands is kept.
func BestOf(cards []deck.Card) (Hand, deck.Hand, error) {
	if len(cards) < HandSize || len(cards) > BoardSize {
		return nil, nil, HandSizeError{Want: []int{HandSize, 6, BoardSize}, Got: len(cards)}
	}

	if err := validate(cards); err != nil {
		return nil, nil, err
	}

	var best Hand
	var bestCards deck.Hand
	subset := make(deck.Hand, HandSize)
	for _, mask := range subsets(len(cards)) {
		subset = subset[:0]
		for i, c := range cards {
			if mask&(1<<i) != 0 {
				subset = append(subset, c)
			}
		}

		h, err := classify(subset)
		if err != nil {
			return nil, nil, err
		}

		if best == nil || Compare(h, best) > 0 {
			best = h
			bestCards = subset.SortedByRank()
		}
	}

	return best, bestCards, nil
}

var subsetsBySize = func() map[int][]uint8 {
	m := make(map[int][]uint8)
	for n := HandSize; n <= BoardSize; n++ {
		for mask := 0; mask < 1<<n; mask++ {
			if bits.OnesCount(uint(mask)) == HandSize {
				m[n] = append(m[n], uint8(mask))
			}
		}
	}

	return m
}()

// subsets returns a bit mask for every five-card subset of n cards, n being 5 through 7
func subsets(n int) []uint8 {
	return subsetsBySize[n]
}
