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

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/swiss/pkg/internal/util"
	"laptudirm.com/x/swiss/pkg/swiss"
	"laptudirm.com/x/swiss/pkg/tournament"
)

func Pair() *cobra.Command {
	return &cobra.Command{
		Use:   "pair",
		Short: "Pair the next round of the tournament",
		Args:  cobra.ExactArgs(0),
		Long: heredoc.Doc(`pair finds the pairings of the next round from the current
			standings. The first round is paired randomly; every later
			round pairs players with equal or nearly equal records who
			have not met before.

			When there is an odd number of players, the player with the
			fewest wins who has not had a bye yet gets one, and is marked
			as having had it. The results of every pairing have to be
			entered with report and bye before the next round is paired.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			config, db, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			tour := tournament.New(db, config.Engine())

			util.StartSpinner()
			pairings, err := tour.NextRound()
			util.PauseSpinner()

			if errors.Is(err, swiss.ErrTournamentDecided) {
				standings, err := db.Standings()
				if err != nil {
					return err
				}

				fmt.Printf(
					"The tournament has been won by \x1b[32m%s\x1b[0m (#%d).\n",
					standings[0].Name, standings[0].ID,
				)
				return nil
			}

			if err != nil {
				return err
			}

			logrus.Debugf("Paired %d boards", len(pairings))
			for i, pairing := range pairings {
				fmt.Printf("Board %2d: %s\n", i+1, pairing)
			}

			return nil
		},
	}
}
