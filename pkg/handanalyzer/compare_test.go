package handanalyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokerhands/internal/rng"
	"pokerhands/pkg/deck"
)

// one hand per category, weakest category first
var ladder = []string{
	"Ac,Kd,Qh,Js,9c", // best possible high card
	"2c,2d,3h,4s,5d",
	"2c,2d,3h,3s,4d",
	"2c,2d,2h,3s,4d",
	"Ac,2d,3h,4s,5d", // worst possible straight
	"2c,3c,4c,5c,7c", // worst possible flush
	"2c,2d,2h,3s,3d",
	"2c,2d,2h,2s,3d",
	"Ad,5d,3d,4d,2d", // worst possible straight flush
}

func TestCompare_categoryDominates(t *testing.T) {
	for i := range ladder {
		for j := range ladder {
			a, b := classifyString(t, ladder[i]), classifyString(t, ladder[j])
			assert.Equal(t, compareInt(i, j), Compare(a, b), "%s vs %s", ladder[i], ladder[j])
		}
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name   string
		better string
		worse  string
	}{
		{"royal flush beats king-high straight flush", "Ah,Kh,Qh,Jh,Th", "Kc,Qc,Jc,Tc,9c"},
		{"six-high straight flush beats the wheel", "6c,5c,4c,3c,2c", "Ad,5d,3d,4d,2d"},
		{"quad rank dominates kicker", "Ac,Ad,As,Ah,Kc", "2c,2d,2s,2h,Ac"},
		{"quad kicker", "9c,9d,9s,9h,Kc", "9c,9d,9s,9h,Qc"},
		{"aces full of kings beats kings full of aces", "Ac,Ad,As,Kh,Kc", "Kc,Kd,Ks,Ah,Ad"},
		{"full house pair", "Ac,Ad,As,Kh,Kc", "Ac,Ad,As,Qh,Qc"},
		{"ace-high flush beats king-high flush", "Ac,3c,4c,5c,7c", "Kd,Qd,Jd,Td,8d"},
		{"flush decided by the last card", "Kc,Jc,9c,7c,3c", "Kd,Jd,9d,7d,2d"},
		{"broadway beats king-high straight", "Ah,Ks,Qd,Jh,Td", "Kh,Qs,Jd,Th,9d"},
		{"six-high straight beats the wheel", "6h,5s,4d,3h,2d", "Ac,5h,3d,4s,2s"},
		{"trips rank", "Ac,Ad,Ah,2s,3d", "Kc,Kd,Kh,Qs,Jd"},
		{"trips kickers", "7c,7d,7h,As,3d", "7c,7d,7h,Ks,Qd"},
		{"trips second kicker", "7c,7d,7h,As,4d", "7c,7d,7h,As,3d"},
		{"two pair kicker", "Kc,Kd,7h,7s,Tc", "Kh,Ks,7c,7d,9h"},
		{"two pair high pair", "Ac,Ad,2h,2s,3c", "Kh,Ks,Qc,Qd,Jh"},
		{"two pair low pair", "Kc,Kd,8h,8s,2c", "Kh,Ks,7c,7d,Ah"},
		{"pair rank", "Ac,Ad,2h,3s,4c", "Kh,Ks,Qc,Jd,9h"},
		{"pair kickers", "Tc,Td,Ah,3s,2c", "Th,Ts,Kc,Qd,Jh"},
		{"pair last kicker", "Tc,Td,Ah,Ks,3c", "Th,Ts,Ac,Kd,2h"},
		{"high card ace", "Ac,3d,4h,5s,7c", "Kh,Qs,Jc,9d,8h"},
		{"high card last card", "Ac,Kd,Qh,Js,9c", "Ah,Ks,Qc,Jd,8h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			better, worse := classifyString(t, tt.better), classifyString(t, tt.worse)
			assert.Equal(t, 1, Compare(better, worse))
			assert.Equal(t, -1, Compare(worse, better))
			assert.True(t, Less(worse, better))
			assert.False(t, Less(better, worse))
			assert.Greater(t, Strength(better), Strength(worse))
		})
	}
}

func TestCompare_ties(t *testing.T) {
	a := assert.New(t)

	// different suits, same ranks
	h1 := classifyString(t, "Kc,Kd,7h,7s,Tc")
	h2 := classifyString(t, "Kh,Ks,7c,7d,Th")
	a.Equal(0, Compare(h1, h2))
	a.Equal(h1, h2)
	a.Equal(Strength(h1), Strength(h2))

	h1 = classifyString(t, "Ah,Kh,Qh,Jh,Th")
	h2 = classifyString(t, "As,Ks,Qs,Js,Ts")
	a.Equal(0, Compare(h1, h2))

	h1 = classifyString(t, "Ac,5h,3d,4s,2s")
	h2 = classifyString(t, "Ad,5c,3s,4h,2h")
	a.Equal(0, Compare(h1, h2))
}

func TestRoyalFlush_isStrongest(t *testing.T) {
	royal := classifyString(t, "Ah,Kh,Qh,Jh,Th")
	for _, cards := range ladder {
		assert.Equal(t, 1, Compare(royal, classifyString(t, cards)), cards)
	}
}

func TestMax(t *testing.T) {
	a := assert.New(t)

	a.Nil(Max())

	pair := classifyString(t, "2c,2d,3h,4s,5d")
	flush := classifyString(t, "2c,3c,4c,5c,7c")
	a.Equal(flush, Max(pair, flush, pair))

	// the first of equal hands
	p1, p2 := classifyString(t, "2c,2d,3h,4s,5d"), classifyString(t, "2h,2s,3c,4d,5h")
	a.Equal(p1, Max(p1, p2))
}

func randomHands(t *testing.T, n int, seed int64) []Hand {
	t.Helper()

	g := rng.New(seed)
	hands := make([]Hand, 0, n)
	for len(hands) < n {
		d := deck.New()
		d.Shuffle(g)
		h, err := Classify(d.Cards[:HandSize])
		require.NoError(t, err)
		hands = append(hands, h)
	}

	return hands
}

// Compare must be a total order: exactly one of <, ==, > holds for every pair,
// it is antisymmetric and transitive, and it agrees with Strength.
func TestCompare_totalOrder(t *testing.T) {
	hands := randomHands(t, 120, 7)
	for _, cards := range ladder {
		hands = append(hands, classifyString(t, cards))
	}

	for _, a := range hands {
		assert.Equal(t, 0, Compare(a, a))

		for _, b := range hands {
			ab, ba := Compare(a, b), Compare(b, a)
			if !assert.Equal(t, -ab, ba, "%s vs %s", a, b) {
				return
			}

			lt, eq, gt := Less(a, b), ab == 0, Less(b, a)
			n := 0
			for _, v := range []bool{lt, eq, gt} {
				if v {
					n++
				}
			}
			if !assert.Equal(t, 1, n, "%s vs %s", a, b) {
				return
			}

			if !assert.Equal(t, compareInt(Strength(a), Strength(b)), ab, "%s vs %s", a, b) {
				return
			}

			// identical tie-break data is the only way to tie
			assert.Equal(t, ab == 0, a == b, "%s vs %s", a, b)
		}
	}

	for _, a := range hands[:40] {
		for _, b := range hands[:40] {
			for _, c := range hands[:40] {
				if Compare(a, b) <= 0 && Compare(b, c) <= 0 {
					if !assert.LessOrEqual(t, Compare(a, c), 0, "%s <= %s <= %s", a, b, c) {
						return
					}
				}
			}
		}
	}
}

func TestStrength(t *testing.T) {
	a := assert.New(t)

	// category in the top digit
	a.Equal(9*759375+14*50625, Strength(StraightFlushHand{High: deck.Ace}))
	a.Equal(1*759375+14*50625+13*3375+12*225+11*15+9, Strength(HighCardHand{Ranks: [5]int{deck.Ace, 13, 12, 11, 9}}))
	a.Greater(Strength(StraightHand{High: 6}), Strength(StraightHand{High: 5}))
	a.Greater(Strength(StraightHand{High: deck.Ace}), Strength(StraightHand{High: deck.King}))
}
