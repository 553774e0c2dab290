package handanalyzer

import (
	"fmt"
	"sort"

	"pokerhands/pkg/deck"
)

// HandSize is the number of cards in a poker hand
const HandSize = 5

// rankCount is one entry of a multiplicity profile
type rankCount struct {
	rank  int
	count int
}

// profile counts the cards of each rank, ordered by count then by rank, both descending
type profile []rankCount

func newProfile(ranks [HandSize]int) profile {
	counts := make(map[int]int, HandSize)
	for _, r := range ranks {
		counts[r]++
	}

	p := make(profile, 0, len(counts))
	for rank, count := range counts {
		p = append(p, rankCount{rank: rank, count: count})
	}

	sort.Sort(sort.Reverse(p))
	return p
}

func (p profile) Len() int {
	return len(p)
}

func (p profile) Less(i, j int) bool {
	if p[i].count != p[j].count {
		return p[i].count < p[j].count
	}

	return deck.CompareRanks(p[i].rank, p[j].rank) < 0
}

func (p profile) Swap(i, j int) {
	p[i], p[j] = p[j], p[i]
}

// Classify determines the category of exactly five distinct cards
func Classify(cards []deck.Card) (Hand, error) {
	if len(cards) != HandSize {
		return nil, HandSizeError{Want: []int{HandSize}, Got: len(cards)}
	}

	if err := validate(cards); err != nil {
		return nil, err
	}

	return classify(cards)
}

// validate ensures every card is a real card and no card appears twice
func validate(cards deck.Hand) error {
	for i, c := range cards {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("%w: card %d: %w", ErrInvalidHand, i+1, err)
		}
	}

	if c, ok := cards.Duplicate(); ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCard, c)
	}

	return nil
}

// classify expects five valid, distinct cards.
// The checks run in order because categories overlap: a straight flush is also
// a flush and a straight, a full house also holds three of a kind, etc.
func classify(cards deck.Hand) (Hand, error) {
	var ranks [HandSize]int
	copy(ranks[:], cards.SortedByRank().Ranks())

	p := newProfile(ranks)
	flush := isFlush(cards)
	high, straight := straightHigh(ranks)

	switch {
	case flush && straight:
		return StraightFlushHand{High: high}, nil
	case p[0].count == 4:
		return FourOfAKindHand{Quad: p[0].rank, Kicker: p[1].rank}, nil
	case len(p) == 2 && p[0].count == 3:
		return FullHouseHand{Trips: p[0].rank, Pair: p[1].rank}, nil
	case flush:
		return FlushHand{Ranks: ranks}, nil
	case straight:
		return StraightHand{High: high}, nil
	case len(p) == 3 && p[0].count == 3:
		return ThreeOfAKindHand{Trips: p[0].rank, Kickers: [2]int{p[1].rank, p[2].rank}}, nil
	case len(p) == 3 && p[0].count == 2:
		return TwoPairHand{High: p[0].rank, Low: p[1].rank, Kicker: p[2].rank}, nil
	case len(p) == 4:
		return OnePairHand{Pair: p[0].rank, Kickers: [3]int{p[1].rank, p[2].rank, p[3].rank}}, nil
	case len(p) == HandSize:
		return HighCardHand{Ranks: ranks}, nil
	}

	// five of a kind
	return nil, fmt.Errorf("%w: %s", ErrInvalidHand, cards)
}

func isFlush(cards deck.Hand) bool {
	suit := cards[0].Suit()
	for _, c := range cards[1:] {
		if c.Suit() != suit {
			return false
		}
	}

	return true
}

// straightHigh expects ranks ordered high to low, ace high.
// It returns the high card of the straight: 5 for the wheel, deck.Ace for broadway.
// Straights never wrap around the ace (Q-K-A-2-3 is not a straight).
func straightHigh(ranks [HandSize]int) (int, bool) {
	if ranks == [HandSize]int{deck.Ace, 5, 4, 3, 2} {
		return 5, true
	}

	for i := 0; i < HandSize-1; i++ {
		if deck.AceHigh(ranks[i]) != deck.AceHigh(ranks[i+1])+1 {
			return 0, false
		}
	}

	return ranks[0], true
}
