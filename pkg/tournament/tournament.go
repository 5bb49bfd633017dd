// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package tournament runs a Swiss-system tournament on top of a store,
// pairing rounds with the swiss engine and recording their results.
package tournament

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/swiss/pkg/swiss"
)

// ErrInvalidWinner is returned when a reported winner did not take part
// in the pairing the result is reported for.
var ErrInvalidWinner = errors.New("tournament: winner is not part of the pairing")

// Store is the persistent state of a tournament.
type Store interface {
	swiss.History
	swiss.Directory

	Standings() ([]swiss.Standing, error)
	RecordMatch(winner, loser int) error
	RecordBye(player int) error
}

// Tournament is a single tournament session.
type Tournament struct {
	Store  Store
	Engine *swiss.Engine

	// Number of rounds paired in this session.
	Round int
}

// New creates a new tournament session over the given store.
func New(store Store, config swiss.Config) *Tournament {
	return &Tournament{
		Store:  store,
		Engine: swiss.New(store, store, config),
	}
}

// NextRound pairs the next round of the tournament from the current
// standings. The results of every previous round must have been reported.
func (tour *Tournament) NextRound() ([]swiss.Pairing, error) {
	standings, err := tour.Store.Standings()
	if err != nil {
		return nil, fmt.Errorf("next round: %w", err)
	}

	pairings, err := tour.Engine.Pair(standings)
	if err != nil {
		return nil, err
	}

	tour.Round++
	logrus.WithFields(logrus.Fields{
		"round":    tour.Round,
		"pairings": len(pairings),
	}).Debug("Paired round")

	return pairings, nil
}

// Report records the results of a round.
func (tour *Tournament) Report(results []Result) error {
	for _, result := range results {
		if err := tour.record(result); err != nil {
			return fmt.Errorf("report %s: %w", result.Pairing, err)
		}

		logrus.Infof("\x1b[32mFinished\x1b[0m Round #%d: %s", tour.Round, result)
	}

	return nil
}

func (tour *Tournament) record(result Result) error {
	if result.Pairing.IsBye() {
		if result.Winner != result.Pairing.ID1 {
			return ErrInvalidWinner
		}

		return tour.Store.RecordBye(result.Winner)
	}

	loser, err := result.Loser()
	if err != nil {
		return err
	}

	return tour.Store.RecordMatch(result.Winner, loser)
}

// Table writes the current standings to w as a table.
func (tour *Tournament) Table(w io.Writer) error {
	standings, err := tour.Store.Standings()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "╔═══════════════════════════════════════════════════════╗")
	fmt.Fprintln(w, "║    Name                   Elo Error  Wins Loss  Total ║")
	fmt.Fprintln(w, "╠═══════════════════════════════════════════════════════╣")
	for i, standing := range standings {
		losses := standing.Played - standing.Wins
		lower, elo, upper := Performance(standing.Wins, losses)

		fmt.Fprintf(w,
			"║ %2d. %-18s  %+5.0f %5.0f  %4d %4d  %5d ║\n",
			i+1, standing.Name,
			elo, math.Max(upper-elo, elo-lower),
			standing.Wins, losses, standing.Played)
	}
	fmt.Fprintln(w, "╚═══════════════════════════════════════════════════════╝")

	return nil
}

// Summary describes a simulated tournament.
type Summary struct {
	// Pairings of every round that was played.
	Rounds [][]swiss.Pairing

	// Id of the tournament winner, 0 if the tournament is undecided.
	Winner int
}

// Simulate plays up to the given number of rounds, deciding every match
// with a coin flip from rng. It stops early once the tournament has been
// decided. An error is returned, along with the rounds played so far, if
// a round cannot be paired.
func (tour *Tournament) Simulate(rounds int, rng *rand.Rand) (Summary, error) {
	var summary Summary
	for len(summary.Rounds) < rounds {
		pairings, err := tour.NextRound()
		switch {
		case errors.Is(err, swiss.ErrTournamentDecided):
			standings, err := tour.Store.Standings()
			if err != nil {
				return summary, err
			}

			summary.Winner = standings[0].ID
			return summary, nil

		case err != nil:
			return summary, err
		}

		summary.Rounds = append(summary.Rounds, pairings)

		results := make([]Result, len(pairings))
		for i, pairing := range pairings {
			results[i] = Result{Pairing: pairing, Winner: pairing.ID1}
			if !pairing.IsBye() && rng.Intn(2) == 1 {
				results[i].Winner = pairing.ID2
			}
		}

		if err := tour.Report(results); err != nil {
			return summary, err
		}
	}

	return summary, nil
}
