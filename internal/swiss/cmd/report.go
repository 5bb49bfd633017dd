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
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

func Report() *cobra.Command {
	return &cobra.Command{
		Use:   "report winner loser",
		Short: "Report the result of a match",
		Args:  cobra.ExactArgs(2),
		Long: heredoc.Doc(`report records that the player with the id winner beat the
			player with the id loser. Use bye to record a bye instead.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			winner, err := parsePlayer(args[0])
			if err != nil {
				return err
			}

			loser, err := parsePlayer(args[1])
			if err != nil {
				return err
			}

			_, db, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.RecordMatch(winner, loser); err != nil {
				return err
			}

			winnerName, _ := db.NameOf(winner)
			loserName, _ := db.NameOf(loser)
			fmt.Printf("\x1b[32mRecorded\x1b[0m %s beats %s\n", winnerName, loserName)
			return nil
		},
	}
}
