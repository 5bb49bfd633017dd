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
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "swiss",
		Short: "Run Swiss-system tournaments",
		Args:  cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If --debug or --trace is provided, lower the logging level.
			if cmd.Flag("debug").Changed {
				logrus.SetLevel(logrus.DebugLevel)
			}

			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}
		},
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show Swiss's Version")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().BoolP("debug", "d", false, "Show Debug Information")

	root.PersistentFlags().StringP("config", "c", "", "Path of the configuration file")
	root.PersistentFlags().String("database", "", "Path of the tournament database")
	root.PersistentFlags().Int64("seed", 0, "Seed of the first round's shuffle")
	root.PersistentFlags().Int("max-repairs", 0, "Repairs to attempt before giving up on a round")

	versionStr := "v0.1.0\n"
	root.SetVersionTemplate(versionStr)
	root.Version = versionStr

	// Register the various commands.
	root.AddCommand(Register())
	root.AddCommand(Players())
	root.AddCommand(Standings())
	root.AddCommand(Pair())
	root.AddCommand(Report())
	root.AddCommand(Bye())
	root.AddCommand(Reset())
	root.AddCommand(Simulate())

	return root
}
