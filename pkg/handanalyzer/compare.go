package handanalyzer

import (
	"fmt"

	"pokerhands/pkg/deck"
)

// Compare orders two hands. It returns -1 if a is weaker than b, 1 if a is
// stronger and 0 if they tie. Hands of different categories are ordered by
// category alone; hands of the same category by their tie-break ranks, ace high.
func Compare(a, b Hand) int {
	if c := compareInt(int(a.Category()), int(b.Category())); c != 0 {
		return c
	}

	ta, tb := tieBreak(a), tieBreak(b)
	for i := range ta {
		if c := compareInt(ta[i], tb[i]); c != 0 {
			return c
		}
	}

	return 0
}

// Less returns true if a loses to b
func Less(a, b Hand) bool {
	return Compare(a, b) < 0
}

// Max returns the strongest of the hands, or nil if there are none.
// The first of several tied hands wins.
func Max(hands ...Hand) Hand {
	var best Hand
	for _, h := range hands {
		if best == nil || Compare(h, best) > 0 {
			best = h
		}
	}

	return best
}

// tieBreak returns the ace-high values that order hands within a category,
// most significant first. Hands of the same category always yield the same length.
func tieBreak(h Hand) []int {
	switch h := h.(type) {
	case StraightFlushHand:
		return aceHigh(h.High)
	case FourOfAKindHand:
		return aceHigh(h.Quad, h.Kicker)
	case FullHouseHand:
		return aceHigh(h.Trips, h.Pair)
	case FlushHand:
		return aceHigh(h.Ranks[:]...)
	case StraightHand:
		return aceHigh(h.High)
	case ThreeOfAKindHand:
		return aceHigh(h.Trips, h.Kickers[0], h.Kickers[1])
	case TwoPairHand:
		return aceHigh(h.High, h.Low, h.Kicker)
	case OnePairHand:
		return aceHigh(h.Pair, h.Kickers[0], h.Kickers[1], h.Kickers[2])
	case HighCardHand:
		return aceHigh(h.Ranks[:]...)
	default:
		panic(fmt.Sprintf("unknown hand: %T", h))
	}
}

func aceHigh(ranks ...int) []int {
	values := make([]int, len(ranks))
	for i, r := range ranks {
		values[i] = deck.AceHigh(r)
	}

	return values
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Strength packs a hand into a single integer that orders exactly like Compare:
// the category is the most significant base-15 digit, followed by five tie-break
// digits (unused trailing digits are zero).
func Strength(h Hand) int {
	values := tieBreak(h)

	strength := int(h.Category())
	for i := 0; i < HandSize; i++ {
		strength *= 15
		if i < len(values) {
			strength += values[i]
		}
	}

	return strength
}
