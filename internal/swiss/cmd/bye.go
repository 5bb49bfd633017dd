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

func Bye() *cobra.Command {
	return &cobra.Command{
		Use:   "bye player",
		Short: "Report a bye given to a player",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`bye records the bye given to the player with the given id
			in the current round. A bye counts as a win. Every player
			can only be given a single bye in a tournament.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			player, err := parsePlayer(args[0])
			if err != nil {
				return err
			}

			_, db, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.RecordBye(player); err != nil {
				return err
			}

			name, _ := db.NameOf(player)
			fmt.Printf("\x1b[32mRecorded\x1b[0m bye for %s\n", name)
			return nil
		},
	}
}
