package deck

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidRank is returned when a card rank is outside of 1 (ace) through 13 (king)
var ErrInvalidRank = errors.New("rank must be between 1 and 13")

// ErrInvalidSuit is returned when a card suit is not one of the four suits
var ErrInvalidSuit = errors.New("unknown suit")

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
	Spades   Suit = "spades"
)

// Suits is every suit in deck order
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// Letter returns the single letter used in the short card form
func (s Suit) Letter() string {
	switch s {
	case Hearts:
		return "h"
	case Diamonds:
		return "d"
	case Clubs:
		return "c"
	case Spades:
		return "s"
	default:
		return "?"
	}
}

func (s Suit) valid() bool {
	switch s {
	case Hearts, Diamonds, Clubs, Spades:
		return true
	}

	return false
}

// rank constants
const (
	Ace   = 1
	Ten   = 10
	Jack  = 11
	Queen = 12
	King  = 13

	// HighAce is the value an ace takes whenever ranks are compared
	HighAce = 14
)

var shortNames = map[int]string{Ace: "A", King: "K", Queen: "Q", Jack: "J", Ten: "T"}

var longNames = map[int]string{
	1:  "ace",
	2:  "deuce",
	3:  "three",
	4:  "four",
	5:  "five",
	6:  "six",
	7:  "seven",
	8:  "eight",
	9:  "nine",
	10: "ten",
	11: "jack",
	12: "queen",
	13: "king",
}

// Card is an individual playing card.
// Cards are values; two cards are the same physical card when they are ==.
type Card struct {
	rank int
	suit Suit
}

// NewCard returns a card of the given rank (1 = ace, 13 = king) and suit
func NewCard(rank int, suit Suit) (Card, error) {
	if rank < Ace || rank > King {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidRank, rank)
	}

	if !suit.valid() {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidSuit, suit)
	}

	return Card{rank: rank, suit: suit}, nil
}

// Rank returns the rank of the card, 1 (ace) through 13 (king)
func (c Card) Rank() int {
	return c.rank
}

// Suit returns the suit of the card
func (c Card) Suit() Suit {
	return c.suit
}

// Validate returns an error if the card is not one of the 52 cards of a deck.
// The zero Card is not valid.
func (c Card) Validate() error {
	if c.rank < Ace || c.rank > King {
		return fmt.Errorf("%w: %d", ErrInvalidRank, c.rank)
	}

	if !c.suit.valid() {
		return fmt.Errorf("%w: %q", ErrInvalidSuit, c.suit)
	}

	return nil
}

// Compare orders two cards by rank only, with the ace high.
// It returns -1, 0 or 1. Suit never takes part, so an ace of hearts
// compares equal to an ace of spades even though they are different cards.
func (c Card) Compare(other Card) int {
	return CompareRanks(c.rank, other.rank)
}

// String returns the short form of the card, i.e., Ah, Th, 2c
func (c Card) String() string {
	return RankShortName(c.rank) + c.suit.Letter()
}

// LongName returns the long form of the card, i.e., ace of hearts
func (c Card) LongName() string {
	return fmt.Sprintf("%s of %s", RankName(c.rank), c.suit)
}

// MarshalJSON encodes the card in its short form
func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes a card from its short form
func (c *Card) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	card, err := CardFromString(s)
	if err != nil {
		return err
	}

	*c = card
	return nil
}

// AceHigh returns the comparison value of a rank: an ace is worth 14, every
// other rank its face value
func AceHigh(rank int) int {
	if rank == Ace {
		return HighAce
	}

	return rank
}

// CompareRanks compares two ranks with the ace high
func CompareRanks(a, b int) int {
	a, b = AceHigh(a), AceHigh(b)
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// RankName returns the long name of a rank, i.e., deuce
func RankName(rank int) string {
	if name, ok := longNames[rank]; ok {
		return name
	}

	return strconv.Itoa(rank)
}

// RankShortName returns the single character name of a rank, i.e., A, T, 9
func RankShortName(rank int) string {
	if name, ok := shortNames[rank]; ok {
		return name
	}

	return strconv.Itoa(rank)
}

var cardRx = regexp.MustCompile(`(?i)^(10|[2-9akqjt])([cdhs])\z`)

// CardFromString parses a card from its short form.
// The rank is one of A,K,Q,J,T,10,9..2 and the suit one of c,d,h,s (case-insensitive).
func CardFromString(s string) (Card, error) {
	match := cardRx.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return Card{}, fmt.Errorf("could not parse card: %q", s)
	}

	var rank int
	switch strings.ToUpper(match[1]) {
	case "A":
		rank = Ace
	case "K":
		rank = King
	case "Q":
		rank = Queen
	case "J":
		rank = Jack
	case "T", "10":
		rank = Ten
	default:
		// the regexp only allows 2-9 here
		rank, _ = strconv.Atoi(match[1])
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	}

	return NewCard(rank, suit)
}

// CardsFromString parses a list of cards separated by commas and/or whitespace, i.e., "Ah,Kd Qs"
func CardsFromString(s string) (Hand, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	cards := make(Hand, len(fields))
	for i, field := range fields {
		card, err := CardFromString(field)
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// MustCard is CardFromString that panics on error. It is meant for tests and literals.
func MustCard(s string) Card {
	card, err := CardFromString(s)
	if err != nil {
		panic(err)
	}

	return card
}

// MustCards is CardsFromString that panics on error. It is meant for tests and literals.
func MustCards(s string) Hand {
	cards, err := CardsFromString(s)
	if err != nil {
		panic(err)
	}

	return cards
}
