package handanalyzer

import (
	"fmt"
	"strings"

	"pokerhands/pkg/deck"
)

// Hand is a classified five-card poker hand.
//
// Each category has its own type carrying only what is needed to break ties
// within that category. Ranks are stored as card ranks (1 = ace) and are only
// mapped to ace-high values when hands are compared. The set of types is closed;
// a Hand is only ever one of the types declared in this file.
type Hand interface {
	Category() Category
	String() string

	sealed()
}

// StraightFlushHand is five suited cards in sequence.
// High is 5 for the wheel (A-2-3-4-5) and deck.Ace for a royal flush.
type StraightFlushHand struct {
	High int
}

// FourOfAKindHand is four cards of one rank plus a kicker
type FourOfAKindHand struct {
	Quad   int
	Kicker int
}

// FullHouseHand is three cards of one rank and two of another
type FullHouseHand struct {
	Trips int
	Pair  int
}

// FlushHand is five suited cards; Ranks are ordered high to low, ace high
type FlushHand struct {
	Ranks [5]int
}

// StraightHand is five cards in sequence.
// High is 5 for the wheel (A-2-3-4-5) and deck.Ace for broadway (T-J-Q-K-A).
type StraightHand struct {
	High int
}

// ThreeOfAKindHand is three cards of one rank plus two kickers, high to low
type ThreeOfAKindHand struct {
	Trips   int
	Kickers [2]int
}

// TwoPairHand is two pairs plus a kicker. High is the better pair.
type TwoPairHand struct {
	High   int
	Low    int
	Kicker int
}

// OnePairHand is a pair plus three kickers, high to low
type OnePairHand struct {
	Pair    int
	Kickers [3]int
}

// HighCardHand is five unrelated cards; Ranks are ordered high to low, ace high
type HighCardHand struct {
	Ranks [5]int
}

// Category returns StraightFlush
func (StraightFlushHand) Category() Category { return StraightFlush }

// Category returns FourOfAKind
func (FourOfAKindHand) Category() Category { return FourOfAKind }

// Category returns FullHouse
func (FullHouseHand) Category() Category { return FullHouse }

// Category returns Flush
func (FlushHand) Category() Category { return Flush }

// Category returns Straight
func (StraightHand) Category() Category { return Straight }

// Category returns ThreeOfAKind
func (ThreeOfAKindHand) Category() Category { return ThreeOfAKind }

// Category returns TwoPair
func (TwoPairHand) Category() Category { return TwoPair }

// Category returns OnePair
func (OnePairHand) Category() Category { return OnePair }

// Category returns HighCard
func (HighCardHand) Category() Category { return HighCard }

func (StraightFlushHand) sealed() {}
func (FourOfAKindHand) sealed()   {}
func (FullHouseHand) sealed()     {}
func (FlushHand) sealed()         {}
func (StraightHand) sealed()      {}
func (ThreeOfAKindHand) sealed()  {}
func (TwoPairHand) sealed()       {}
func (OnePairHand) sealed()       {}
func (HighCardHand) sealed()      {}

// IsRoyal returns true for the ace-high straight flush, the best possible hand
func (h StraightFlushHand) IsRoyal() bool {
	return h.High == deck.Ace
}

func (h StraightFlushHand) String() string {
	if h.IsRoyal() {
		return "Royal flush"
	}

	return fmt.Sprintf("Straight flush, %s to %s", deck.RankName(h.High), deck.RankName(straightLow(h.High)))
}

func (h FourOfAKindHand) String() string {
	return fmt.Sprintf("Four of a kind, %s", plural(h.Quad))
}

func (h FullHouseHand) String() string {
	return fmt.Sprintf("Full house, %s full of %s", plural(h.Trips), plural(h.Pair))
}

func (h FlushHand) String() string {
	return fmt.Sprintf("Flush, %s high", deck.RankName(h.Ranks[0]))
}

func (h StraightHand) String() string {
	return fmt.Sprintf("Straight, %s to %s", deck.RankName(h.High), deck.RankName(straightLow(h.High)))
}

func (h ThreeOfAKindHand) String() string {
	return fmt.Sprintf("Three of a kind, %s", plural(h.Trips))
}

func (h TwoPairHand) String() string {
	return fmt.Sprintf("Two pair, %s and %s", plural(h.High), plural(h.Low))
}

func (h OnePairHand) String() string {
	return fmt.Sprintf("One pair, %s", plural(h.Pair))
}

func (h HighCardHand) String() string {
	name := deck.RankName(h.Ranks[0])
	return strings.ToUpper(name[:1]) + name[1:] + " high"
}

// straightLow returns the bottom card of a straight ending at high
func straightLow(high int) int {
	if high == deck.Ace {
		return deck.Ten
	}

	// 5 - 4 lands on the ace for the wheel
	return high - 4
}

func plural(rank int) string {
	if rank == 6 {
		return "sixes"
	}

	return deck.RankName(rank) + "s"
}
