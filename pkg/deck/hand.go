package deck

import (
	"sort"
	"strings"
)

// Hand represents a collection of cards
type Hand []Card

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c == card {
			return true
		}
	}

	return false
}

// Duplicate returns the first card that appears more than once in the hand
func (h Hand) Duplicate() (Card, bool) {
	seen := make(map[Card]bool, len(h))
	for _, c := range h {
		if seen[c] {
			return c, true
		}

		seen[c] = true
	}

	return Card{}, false
}

// SortedByRank returns a copy of the hand ordered from the highest rank to the
// lowest, ace high. Cards of equal rank keep the deck's suit order.
func (h Hand) SortedByRank() Hand {
	sorted := h.Clone()
	sort.Sort(sort.Reverse(sortByRank(sorted)))
	return sorted
}

// Ranks returns the rank of each card, in hand order
func (h Hand) Ranks() []int {
	ranks := make([]int, len(h))
	for i, c := range h {
		ranks[i] = c.Rank()
	}

	return ranks
}

func (h Hand) String() string {
	c := make([]string, len(h))
	for i, card := range h {
		c[i] = card.String()
	}

	return strings.Join(c, ",")
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}

var suitOrder = map[Suit]int{Clubs: 0, Diamonds: 1, Hearts: 2, Spades: 3}

type sortByRank Hand

func (s sortByRank) Len() int {
	return len(s)
}

func (s sortByRank) Less(i, j int) bool {
	if cmp := s[i].Compare(s[j]); cmp != 0 {
		return cmp < 0
	}

	// reversed so that clubs lead once the sort is reversed
	return suitOrder[s[i].suit] > suitOrder[s[j].suit]
}

func (s sortByRank) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}
