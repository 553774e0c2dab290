// Package equity estimates each hold'em hand's share of the pot, either by
// dealing out every remaining board or by Monte Carlo sampling.
package equity

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"pokerhands/internal/rng"
	"pokerhands/pkg/deck"
	"pokerhands/pkg/handanalyzer"
)

// DefaultIterations is the number of Monte Carlo samples when none are requested
const DefaultIterations = 10000

// ExhaustiveLimit is the most boards that are dealt out when no iterations are requested
const ExhaustiveLimit = 25000

const (
	holeCards = 2
	boardSize = 5
	maxHands  = (52 - boardSize) / holeCards

	// how many boards a worker evaluates between checks for cancellation
	checkEvery = 256
)

// ErrNoHands is returned when fewer than two hands are given
var ErrNoHands = errors.New("at least two hands are required")

// ErrTooManyHands is returned when the deck cannot deal every hand and a full board
var ErrTooManyHands = errors.New("too many hands")

// ErrBoardTooLarge is returned when the board has more than five cards
var ErrBoardTooLarge = errors.New("board has more than five cards")

// ErrHoleCards is returned when a hand does not have exactly two cards
var ErrHoleCards = errors.New("each hand must have two hole cards")

// Request describes an equity calculation
type Request struct {
	Hands [][]deck.Card
	Board []deck.Card

	// Iterations is the number of Monte Carlo samples. It is ignored once the
	// flop is out, when every remaining board is dealt. When zero, boards are
	// dealt out exhaustively if there are no more than ExhaustiveLimit of them,
	// otherwise DefaultIterations samples are taken.
	Iterations int

	// Workers defaults to the number of CPUs
	Workers int

	// Seed makes Monte Carlo runs reproducible for a given number of workers.
	// A zero seed is replaced by a random one.
	Seed int64

	Logger logrus.FieldLogger
}

// PlayerResult is the outcome for a single hand
type PlayerResult struct {
	Hole   deck.Hand `json:"hole"`
	Wins   int       `json:"wins"`
	Ties   int       `json:"ties"`
	Equity float64   `json:"equity"`
}

// Result is the outcome of an equity calculation
type Result struct {
	ID          string         `json:"id"`
	Exhaustive  bool           `json:"exhaustive"`
	Simulations int            `json:"simulations"`
	Seed        int64          `json:"seed,omitempty"`
	Players     []PlayerResult `json:"players"`
}

// Calculate runs the calculation described by the request. A tie between k
// hands credits each of them with 1/k of the pot.
func Calculate(ctx context.Context, req Request) (*Result, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger := req.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	workers := req.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	hands := make([]deck.Hand, len(req.Hands))
	used := deck.Hand(req.Board).Clone()
	for i, h := range req.Hands {
		hands[i] = deck.Hand(h).Clone()
		used = append(used, h...)
	}

	d := deck.New()
	if err := d.Remove(used...); err != nil {
		return nil, err
	}

	need := boardSize - len(req.Board)
	result := &Result{
		ID:      uuid.New().String(),
		Players: make([]PlayerResult, len(hands)),
	}

	log := logger.WithFields(logrus.Fields{
		"id":      result.ID,
		"hands":   len(hands),
		"board":   deck.Hand(req.Board).String(),
		"workers": workers,
	})

	iterations := req.Iterations
	boards := binomial(d.CardsLeft(), need)
	result.Exhaustive = len(req.Board) >= 3 || (iterations <= 0 && boards <= ExhaustiveLimit)
	if iterations <= 0 {
		iterations = DefaultIterations
	}

	start := time.Now()
	tallies := make([]*tally, workers)
	g, ctx := errgroup.WithContext(ctx)

	if result.Exhaustive {
		runouts := combinations(d.Cards, need)
		for w := 0; w < workers; w++ {
			w := w
			t := newTally(len(hands))
			tallies[w] = t

			g.Go(func() error {
				for i := w; i < len(runouts); i += workers {
					if i/workers%checkEvery == 0 {
						if err := ctx.Err(); err != nil {
							return err
						}
					}

					if err := t.add(hands, req.Board, runouts[i]); err != nil {
						return err
					}
				}

				return nil
			})
		}
	} else {
		seed := req.Seed
		if seed == 0 {
			seed = rng.NewSeed()
		}
		result.Seed = seed

		seeds := rng.New(seed)
		for w := 0; w < workers; w++ {
			samples := iterations / workers
			if w < iterations%workers {
				samples++
			}

			t := newTally(len(hands))
			tallies[w] = t
			g.Go(sampler(ctx, t, hands, req.Board, d.Cards, need, samples, rng.New(int64(seeds.Intn(math.MaxInt)))))
		}
	}

	if err := g.Wait(); err != nil {
		log.WithError(err).Warn("equity calculation stopped")
		return nil, err
	}

	for i := range result.Players {
		result.Players[i].Hole = hands[i]
	}

	share := make([]float64, len(hands))
	for _, t := range tallies {
		result.Simulations += t.sims
		for i := range result.Players {
			result.Players[i].Wins += t.wins[i]
			result.Players[i].Ties += t.ties[i]
			share[i] += t.share[i]
		}
	}

	if result.Simulations > 0 {
		for i := range result.Players {
			p := &result.Players[i]
			p.Equity = (float64(p.Wins) + share[i]) / float64(result.Simulations)
		}
	}

	log.WithFields(logrus.Fields{
		"exhaustive":  result.Exhaustive,
		"simulations": result.Simulations,
		"elapsed":     time.Since(start).String(),
	}).Debug("equity calculated")

	return result, nil
}

func sampler(ctx context.Context, t *tally, hands []deck.Hand, board, remaining deck.Hand, need, samples int, g rng.Generator) func() error {
	return func() error {
		cards := remaining.Clone()
		for i := 0; i < samples; i++ {
			if i%checkEvery == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}

			// partial Fisher-Yates: the first need cards become a uniform sample
			for j := 0; j < need; j++ {
				k := j + g.Intn(len(cards)-j)
				cards[j], cards[k] = cards[k], cards[j]
			}

			if err := t.add(hands, board, cards[:need]); err != nil {
				return err
			}
		}

		return nil
	}
}

func validate(req Request) error {
	if len(req.Hands) < 2 {
		return fmt.Errorf("%w: got %d", ErrNoHands, len(req.Hands))
	}

	if len(req.Hands) > maxHands {
		return fmt.Errorf("%w: got %d, at most %d", ErrTooManyHands, len(req.Hands), maxHands)
	}

	if len(req.Board) > boardSize {
		return fmt.Errorf("%w: got %d", ErrBoardTooLarge, len(req.Board))
	}

	all := deck.Hand(req.Board).Clone()
	for i, h := range req.Hands {
		if len(h) != holeCards {
			return fmt.Errorf("%w: hand %d has %d cards", ErrHoleCards, i+1, len(h))
		}

		all = append(all, h...)
	}

	for _, c := range all {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("%w: %w", handanalyzer.ErrInvalidHand, err)
		}
	}

	if c, ok := all.Duplicate(); ok {
		return fmt.Errorf("%w: %s", handanalyzer.ErrDuplicateCard, c)
	}

	return nil
}
