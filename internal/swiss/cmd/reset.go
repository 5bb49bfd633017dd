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

	"github.com/spf13/cobra"
)

func Reset() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the recorded matches",
		Args:  cobra.ExactArgs(0),

		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			if cmd.Flag("players").Changed {
				if err := db.DeletePlayers(); err != nil {
					return err
				}

				fmt.Println("\x1b[32mDeleted\x1b[0m every player and match.")
				return nil
			}

			if err := db.DeleteMatches(); err != nil {
				return err
			}

			fmt.Println("\x1b[32mDeleted\x1b[0m every match.")
			return nil
		},
	}

	cmd.Flags().BoolP("players", "p", false, "Delete the registered players too")

	return cmd
}
