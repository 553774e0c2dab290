package deck

import (
	"errors"
	"fmt"

	"pokerhands/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// ErrCardNotInDeck is an error when Remove() is given a card the deck does not hold
var ErrCardNotInDeck = errors.New("card is not in the deck")

// Deck represents a playing deck
type Deck struct {
	Cards Hand `json:"cards"`
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{}
	d.buildDeck()
	return d
}

func (d *Deck) buildDeck() {
	cards := make(Hand, 0, 52)
	for _, suit := range Suits {
		for rank := Ace; rank <= King; rank++ {
			cards = append(cards, Card{rank: rank, suit: suit})
		}
	}

	d.Cards = cards
}

// Shuffle will shuffle the remaining cards using the generator
func (d *Deck) Shuffle(g rng.Generator) {
	for j := len(d.Cards) - 1; j > 0; j-- {
		i := g.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with the zero card.
func (d *Deck) Draw() (Card, error) {
	if len(d.Cards) <= 0 {
		return Card{}, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// Remove takes the specified cards out of the deck, i.e., cards already dealt.
// Nothing is removed if any of the cards is missing.
func (d *Deck) Remove(cards ...Card) error {
	remove := make(map[Card]bool, len(cards))
	for _, c := range cards {
		if !d.Cards.HasCard(c) || remove[c] {
			return fmt.Errorf("%w: %s", ErrCardNotInDeck, c)
		}

		remove[c] = true
	}

	kept := make(Hand, 0, len(d.Cards)-len(remove))
	for _, c := range d.Cards {
		if !remove[c] {
			kept = append(kept, c)
		}
	}

	d.Cards = kept
	return nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
