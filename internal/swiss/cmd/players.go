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
	"slices"

	"github.com/elliotchance/pie/v2"
	"github.com/spf13/cobra"

	"laptudirm.com/x/swiss/pkg/internal/util"
	"laptudirm.com/x/swiss/pkg/swiss"
)

func Players() *cobra.Command {
	return &cobra.Command{
		Use:   "players",
		Short: "Lists the registered players and their records",
		Args:  cobra.ExactArgs(0),

		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			players, err := db.Players()
			if err != nil {
				return err
			}

			if len(players) == 0 {
				fmt.Println("\x1b[31mNo Players Registered.\x1b[0m")
				return nil
			}

			slices.SortFunc(players, func(a, b swiss.Player) int {
				return util.NaturalCompare(a.Name, b.Name)
			})

			fmt.Println("\x1b[32mRegistered Players\x1b[0m:")
			fmt.Println()
			for _, player := range players {
				bye := ""
				if player.HadBye {
					bye = "\x1b[33mhad bye\x1b[0m"
				}

				name := fmt.Sprintf("\x1b[34m%s\x1b[0m:", player.Name)
				fmt.Printf("- %-30s #%-4d %d/%d %s\n", name, player.ID, player.Wins, player.Played, bye)
			}

			byes := pie.Filter(players, func(player swiss.Player) bool {
				return player.HadBye
			})

			fmt.Printf("\n%d players, %d had a bye\n", len(players), len(byes))
			return nil
		},
	}
}
