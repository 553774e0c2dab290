package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"regexp"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"pokerhands/internal/config"
	"pokerhands/pkg/deck"
	"pokerhands/pkg/equity"
)

var (
	board      = flag.String("board", "", "community cards, e.g. Ah,Kd,7c")
	iterations = flag.Int("iterations", 0, "Monte Carlo samples (defaults to the config)")
	workers    = flag.Int("workers", 0, "worker goroutines (defaults to the config)")
	seed       = flag.Int64("seed", 0, "random seed for reproducible runs")
	asJSON     = flag.Bool("json", false, "print the result as JSON (the default when not writing to a terminal)")
)

var cardPattern = regexp.MustCompile(`(?i)(10|[2-9akqjt])[cdhs]`)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] hand hand [hand...]\n\nhands are two cards each, e.g. AhKh or \"Qs,Qd\"\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := config.Instance()
	if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		logrus.SetLevel(level)
	}

	hands := make([][]deck.Card, flag.NArg())
	for i, arg := range flag.Args() {
		h, err := parseHand(arg)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse hand")
		}

		hands[i] = h
	}

	var boardCards deck.Hand
	if *board != "" {
		var err error
		if boardCards, err = parseHand(*board); err != nil {
			logrus.WithError(err).Fatal("could not parse board")
		}
	}

	req := equity.Request{
		Hands:      hands,
		Board:      boardCards,
		Iterations: cfg.Equity.Iterations,
		Workers:    cfg.Equity.Workers,
		Seed:       *seed,
	}
	if *iterations > 0 {
		req.Iterations = *iterations
	}
	if *workers > 0 {
		req.Workers = *workers
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := equity.Calculate(ctx, req)
	if err != nil {
		logrus.WithError(err).Fatal("could not calculate equity")
	}

	if *asJSON || !term.IsTerminal(int(os.Stdout.Fd())) {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			logrus.WithError(err).Fatal("could not write result")
		}

		return
	}

	printTable(result)
}

// parseHand accepts cards separated by commas or spaces, or run together ("AhKh")
func parseHand(s string) (deck.Hand, error) {
	if strings.ContainsAny(s, ", \t") {
		return deck.CardsFromString(s)
	}

	matches := cardPattern.FindAllString(s, -1)
	if strings.Join(matches, "") != s {
		return nil, fmt.Errorf("could not parse cards: %q", s)
	}

	return deck.CardsFromString(strings.Join(matches, ","))
}

func printTable(result *equity.Result) {
	method := "monte carlo"
	if result.Exhaustive {
		method = "exhaustive"
	}

	fmt.Printf("%d boards (%s)\n\n", result.Simulations, method)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "HAND\tEQUITY\tWINS\tTIES")
	for _, p := range result.Players {
		fmt.Fprintf(w, "%s\t%6.2f%%\t%d\t%d\n", p.Hole, p.Equity*100, p.Wins, p.Ties)
	}
	_ = w.Flush()
}
