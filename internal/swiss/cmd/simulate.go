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
package cmd

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/elliotchance/pie/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"laptudirm.com/x/swiss/pkg/common"
	"laptudirm.com/x/swiss/pkg/store"
	"laptudirm.com/x/swiss/pkg/swiss"
	"laptudirm.com/x/swiss/pkg/tournament"
)

func Simulate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate a tournament with random results",
		Args:  cobra.ExactArgs(0),
		Long: heredoc.Doc(`simulate runs a whole tournament in memory, deciding every
			match with a coin flip. It stops once a single player is
			ahead of everyone else, when the next round cannot be paired,
			or after the given number of rounds.

			The tournament database is not touched. Use --save to write
			the simulated tournament to a YAML file.

			With --runs, many tournaments are simulated in parallel and
			only a summary of their lengths is printed.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			players, _ := cmd.Flags().GetInt("players")
			rounds, _ := cmd.Flags().GetInt("rounds")
			if players < 2 {
				return fmt.Errorf("simulate: need at least 2 players, got %d", players)
			}

			if runs, _ := cmd.Flags().GetInt("runs"); runs > 1 {
				return simulateMany(config, players, rounds, runs)
			}

			tour, db, err := newSimulation(config, players)
			if err != nil {
				return err
			}

			summary, err := tour.Simulate(rounds, config.Rand())
			if stopped(err) {
				logrus.Warnf("Stopped after %d rounds: %v", len(summary.Rounds), err)
			} else if err != nil {
				return err
			}

			fmt.Println()
			if err := tour.Table(os.Stdout); err != nil {
				return err
			}

			if summary.Winner != 0 {
				name, _ := db.NameOf(summary.Winner)
				fmt.Printf("\nWon by \x1b[32m%s\x1b[0m after %d rounds.\n", name, len(summary.Rounds))
			}

			if path, _ := cmd.Flags().GetString("save"); path != "" {
				return save(db, path)
			}

			return nil
		},
	}

	cmd.Flags().IntP("players", "n", 8, "Number of players in the tournament")
	cmd.Flags().IntP("rounds", "r", 10, "Maximum number of rounds to play")
	cmd.Flags().StringP("save", "o", "", "File to save the simulated tournament to")
	cmd.Flags().Int("runs", 1, "Number of tournaments to simulate")

	return cmd
}

func newSimulation(config common.Config, players int) (*tournament.Tournament, *store.Memory, error) {
	db := store.NewMemory()
	for i := 1; i <= players; i++ {
		if _, err := db.RegisterPlayer(fmt.Sprintf("Player %d", i)); err != nil {
			return nil, nil, err
		}
	}

	return tournament.New(db, config.Engine()), db, nil
}

// stopped checks if a simulation ended because a round could not be paired.
func stopped(err error) bool {
	return errors.Is(err, swiss.ErrUnresolvablePairing) || errors.Is(err, swiss.ErrNoByeCandidate)
}

func simulateMany(config common.Config, players, rounds, runs int) error {
	// the results of every match would be interleaved
	if logrus.GetLevel() == logrus.InfoLevel {
		logrus.SetLevel(logrus.WarnLevel)
	}

	summaries := make([]tournament.Summary, runs)

	var group errgroup.Group
	group.SetLimit(runtime.NumCPU())
	for i := range runs {
		run := config
		if config.Seed != 0 {
			run.Seed = config.Seed + int64(i)
		}

		group.Go(func() error {
			tour, _, err := newSimulation(run, players)
			if err != nil {
				return err
			}

			summary, err := tour.Simulate(rounds, run.Rand())
			if err != nil && !stopped(err) {
				return fmt.Errorf("run %d: %w", i+1, err)
			}

			summaries[i] = summary
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	decided := pie.Filter(summaries, func(summary tournament.Summary) bool {
		return summary.Winner != 0
	})

	lengths := pie.Map(summaries, func(summary tournament.Summary) int {
		return len(summary.Rounds)
	})

	fmt.Printf(
		"\x1b[32m%d\x1b[0m of %d tournaments decided, %.2f rounds on average (%d to %d)\n",
		len(decided), runs, pie.Average(lengths), pie.Min(lengths), pie.Max(lengths),
	)

	return nil
}

func save(db *store.Memory, path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, common.FilePermissions)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := db.Dump(file); err != nil {
		return err
	}

	logrus.Infof("Saved tournament to %s", path)
	return nil
}
