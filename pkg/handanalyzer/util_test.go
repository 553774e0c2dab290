package handanalyzer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pokerhands/internal/rng"
	"pokerhands/pkg/deck"
)

func classifyString(t *testing.T, cards string) Hand {
	t.Helper()

	h, err := Classify(deck.MustCards(cards))
	require.NoError(t, err, cards)
	return h
}

func bestString(t *testing.T, cards string) Hand {
	t.Helper()

	h, err := BestHand(deck.MustCards(cards))
	require.NoError(t, err, cards)
	return h
}

// dealString deals n cards off a deck shuffled with seed
func dealString(seed int64, n int) deck.Hand {
	d := deck.New()
	d.Shuffle(rng.New(seed))
	return d.Cards[:n].Clone()
}
