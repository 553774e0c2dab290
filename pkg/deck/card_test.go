package deck

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, 1, Ace)
	assert.Equal(t, 11, Jack)
	assert.Equal(t, 12, Queen)
	assert.Equal(t, 13, King)
	assert.Equal(t, 14, HighAce)
}

func TestNewCard(t *testing.T) {
	a := assert.New(t)

	card, err := NewCard(Ace, Hearts)
	a.NoError(err)
	a.Equal(Ace, card.Rank())
	a.Equal(Hearts, card.Suit())

	for _, rank := range []int{0, 14, -1} {
		_, err = NewCard(rank, Hearts)
		a.True(errors.Is(err, ErrInvalidRank), "rank %d", rank)
	}

	_, err = NewCard(2, Suit("stars"))
	a.True(errors.Is(err, ErrInvalidSuit))
}

func TestCard_Validate(t *testing.T) {
	assert.NoError(t, MustCard("Kd").Validate())
	assert.True(t, errors.Is(Card{}.Validate(), ErrInvalidRank))
	assert.True(t, errors.Is(Card{rank: 3}.Validate(), ErrInvalidSuit))
}

func TestCard_String(t *testing.T) {
	a := assert.New(t)

	a.Equal("Ah", MustCard("ah").String())
	a.Equal("Th", MustCard("10h").String())
	a.Equal("2h", MustCard("2H").String())
	a.Equal("Jc", MustCard("Jc").String())
	a.Equal("Qd", MustCard("qd").String())
	a.Equal("Ks", MustCard("Ks").String())
}

func TestCard_LongName(t *testing.T) {
	a := assert.New(t)

	a.Equal("ace of hearts", MustCard("Ah").LongName())
	a.Equal("deuce of clubs", MustCard("2c").LongName())
	a.Equal("ten of spades", MustCard("Ts").LongName())
	a.Equal("king of diamonds", MustCard("Kd").LongName())
}

func TestCard_Compare(t *testing.T) {
	a := assert.New(t)

	// the ace is the highest rank
	a.Equal(1, MustCard("Ah").Compare(MustCard("Kd")))
	a.Equal(-1, MustCard("Kd").Compare(MustCard("Ah")))
	a.Equal(1, MustCard("Ah").Compare(MustCard("2d")))
	a.Equal(-1, MustCard("2d").Compare(MustCard("3d")))
	a.Equal(1, MustCard("Ts").Compare(MustCard("9s")))

	// rank only: suits never take part
	a.Equal(0, MustCard("Ah").Compare(MustCard("As")))
	a.NotEqual(MustCard("Ah"), MustCard("As"))
}

func TestAceHigh(t *testing.T) {
	assert.Equal(t, 14, AceHigh(Ace))
	assert.Equal(t, 13, AceHigh(King))
	assert.Equal(t, 2, AceHigh(2))
}

func TestCardFromString(t *testing.T) {
	tests := []struct {
		input   string
		rank    int
		suit    Suit
		wantErr bool
	}{
		{input: "Ah", rank: Ace, suit: Hearts},
		{input: "as", rank: Ace, suit: Spades},
		{input: "Td", rank: Ten, suit: Diamonds},
		{input: "10c", rank: Ten, suit: Clubs},
		{input: "9C", rank: 9, suit: Clubs},
		{input: " 2h ", rank: 2, suit: Hearts},
		{input: "1h", wantErr: true},
		{input: "14h", wantErr: true},
		{input: "Ax", wantErr: true},
		{input: "", wantErr: true},
		{input: "AhK", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			card, err := CardFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.rank, card.Rank())
			assert.Equal(t, tt.suit, card.Suit())
		})
	}
}

func TestCardsFromString(t *testing.T) {
	a := assert.New(t)

	cards, err := CardsFromString("Ah,Kd Qs\tJc, 10h")
	a.NoError(err)
	a.Equal("Ah,Kd,Qs,Jc,Th", cards.String())

	cards, err = CardsFromString("")
	a.NoError(err)
	a.Len(cards, 0)

	_, err = CardsFromString("Ah,Zz")
	a.Error(err)

	a.Panics(func() {
		MustCards("Ah,Zz")
	})
}

func TestCard_JSON(t *testing.T) {
	a := assert.New(t)

	b, err := json.Marshal(MustCards("Ah,Tc"))
	a.NoError(err)
	a.Equal(`["Ah","Tc"]`, string(b))

	var cards Hand
	a.NoError(json.Unmarshal([]byte(`["2d","10s"]`), &cards))
	a.Equal(MustCards("2d,Ts"), cards)

	a.Error(json.Unmarshal([]byte(`["1d"]`), &cards))
	a.Error(json.Unmarshal([]byte(`[3]`), &cards))
}
