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

func Register() *cobra.Command {
	return &cobra.Command{
		Use:   "register name...",
		Short: "Register players for the tournament",
		Args:  cobra.MinimumNArgs(1),
		Long: heredoc.Doc(`register adds the given players to the tournament and
			prints the id assigned to each of them. The ids are used to
			refer to the players in every other command.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			for _, name := range args {
				id, err := db.RegisterPlayer(name)
				if err != nil {
					return err
				}

				fmt.Printf("\x1b[32mRegistered\x1b[0m %s as #%d\n", name, id)
			}

			return nil
		},
	}
}
