// Package showdown orders the players of a hold'em hand by their best hand
package showdown

import (
	"errors"
	"fmt"
	"sort"

	"pokerhands/pkg/deck"
	"pokerhands/pkg/handanalyzer"
)

// HoleCards is the number of private cards each player holds
const HoleCards = 2

// MaxBoard is the number of community cards on the river
const MaxBoard = 5

// ErrNoPlayers is returned when a showdown is requested without players
var ErrNoPlayers = errors.New("no players in showdown")

// ErrDuplicatePlayer is returned when two players share an ID
var ErrDuplicatePlayer = errors.New("duplicate player")

// ErrInvalidBoard is returned when the board holds too many cards, or so few that no five-card hand can be made
var ErrInvalidBoard = errors.New("invalid board")

// Player is a participant in the showdown
type Player struct {
	ID   string    `json:"id"`
	Hole deck.Hand `json:"hole"`
}

// Result is a player's best hand
type Result struct {
	Player   Player            `json:"player"`
	Hand     handanalyzer.Hand `json:"-"`
	Cards    deck.Hand         `json:"cards"`
	Strength int               `json:"strength"`
}

// Tier is a group of players holding equal hands, in the order they were given
type Tier []Result

type tier struct {
	strength int
	results  Tier
}

// Rank computes each player's best hand from their hole cards and the board,
// and returns the players grouped into tiers, strongest first
func Rank(board []deck.Card, players []Player) ([]Tier, error) {
	if len(players) == 0 {
		return nil, ErrNoPlayers
	}

	if len(board) > MaxBoard || len(board)+HoleCards < handanalyzer.HandSize {
		return nil, fmt.Errorf("%w: %d cards", ErrInvalidBoard, len(board))
	}

	if err := validate(board, players); err != nil {
		return nil, err
	}

	tiers := make(map[int]*tier)
	for _, p := range players {
		cards := append(deck.Hand(board).Clone(), p.Hole...)
		h, best, err := handanalyzer.BestOf(cards)
		if err != nil {
			return nil, fmt.Errorf("player %s: %w", p.ID, err)
		}

		strength := handanalyzer.Strength(h)
		t, ok := tiers[strength]
		if !ok {
			t = &tier{strength: strength}
			tiers[strength] = t
		}

		t.results = append(t.results, Result{
			Player:   p,
			Hand:     h,
			Cards:    best,
			Strength: strength,
		})
	}

	return sortedTiers(tiers), nil
}

// Winners returns the players holding the best hand; more than one means a split
func Winners(board []deck.Card, players []Player) (Tier, error) {
	tiers, err := Rank(board, players)
	if err != nil {
		return nil, err
	}

	return tiers[0], nil
}

func validate(board []deck.Card, players []Player) error {
	seen := make(map[string]bool, len(players))
	all := deck.Hand(board).Clone()
	for _, p := range players {
		if seen[p.ID] {
			return fmt.Errorf("%w: %q", ErrDuplicatePlayer, p.ID)
		}
		seen[p.ID] = true

		if len(p.Hole) != HoleCards {
			return fmt.Errorf("player %s: %w", p.ID, handanalyzer.HandSizeError{Want: []int{HoleCards}, Got: len(p.Hole)})
		}

		all = append(all, p.Hole...)
	}

	if c, ok := all.Duplicate(); ok {
		return fmt.Errorf("%w: %s", handanalyzer.ErrDuplicateCard, c)
	}

	return nil
}

func sortedTiers(m map[int]*tier) []Tier {
	tiers := make([]*tier, 0, len(m))
	for _, t := range m {
		tiers = append(tiers, t)
	}

	sort.Sort(sort.Reverse(sortByStrength(tiers)))

	sorted := make([]Tier, len(tiers))
	for i, t := range tiers {
		sorted[i] = t.results
	}

	return sorted
}

type sortByStrength []*tier

func (s sortByStrength) Len() int {
	return len(s)
}

func (s sortByStrength) Less(i, j int) bool {
	return s[i].strength < s[j].strength
}

func (s sortByStrength) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}
