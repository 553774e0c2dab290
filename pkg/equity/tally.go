package equity

import (
	"pokerhands/pkg/deck"
	"pokerhands/pkg/handanalyzer"
)

// tally counts the outcomes seen by a single worker
type tally struct {
	sims  int
	wins  []int
	ties  []int
	share []float64

	cards   deck.Hand
	winners []int
}

func newTally(players int) *tally {
	return &tally{
		wins:    make([]int, players),
		ties:    make([]int, players),
		share:   make([]float64, players),
		cards:   make(deck.Hand, 0, boardSize+holeCards),
		winners: make([]int, 0, players),
	}
}

// add evaluates every hand against a completed board
func (t *tally) add(hands []deck.Hand, board, runout deck.Hand) error {
	best := -1
	t.winners = t.winners[:0]
	for i, hole := range hands {
		t.cards = append(append(append(t.cards[:0], board...), runout...), hole...)
		h, err := handanalyzer.BestHand(t.cards)
		if err != nil {
			return err
		}

		strength := handanalyzer.Strength(h)
		switch {
		case strength > best:
			best = strength
			t.winners = append(t.winners[:0], i)
		case strength == best:
			t.winners = append(t.winners, i)
		}
	}

	t.sims++
	if len(t.winners) == 1 {
		t.wins[t.winners[0]]++
		return nil
	}

	share := 1 / float64(len(t.winners))
	for _, i := range t.winners {
		t.ties[i]++
		t.share[i] += share
	}

	return nil
}

// combinations returns every k-card subset of cards, in deck order
func combinations(cards deck.Hand, k int) []deck.Hand {
	var out []deck.Hand
	idx := make([]int, k)

	var rec func(start, depth int)
	rec = func(start, depth int) {
		if depth == k {
			c := make(deck.Hand, k)
			for i, j := range idx {
				c[i] = cards[j]
			}

			out = append(out, c)
			return
		}

		for i := start; i <= len(cards)-(k-depth); i++ {
			idx[depth] = i
			rec(i+1, depth+1)
		}
	}

	rec(0, 0)
	return out
}

// binomial returns n choose k
func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}

	r := 1
	for i := 1; i <= k; i++ {
		r = r * (n - k + i) / i
	}

	return r
}
