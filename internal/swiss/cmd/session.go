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
	"strconv"

	"github.com/spf13/cobra"

	"laptudirm.com/x/swiss/pkg/common"
	"laptudirm.com/x/swiss/pkg/store"
)

// loadConfig loads the configuration file and applies the command line
// overrides to it.
func loadConfig(cmd *cobra.Command) (common.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	config, err := common.LoadConfig(path)
	if err != nil {
		return config, err
	}

	if cmd.Flag("database").Changed {
		config.Database, _ = cmd.Flags().GetString("database")
	}

	if cmd.Flag("seed").Changed {
		config.Seed, _ = cmd.Flags().GetInt64("seed")
	}

	if cmd.Flag("max-repairs").Changed {
		config.MaxRepairs, _ = cmd.Flags().GetInt("max-repairs")
	}

	return config, nil
}

// openStore opens the tournament database named by the configuration.
func openStore(cmd *cobra.Command) (common.Config, *store.SQLite, error) {
	config, err := loadConfig(cmd)
	if err != nil {
		return config, nil, err
	}

	db, err := store.OpenSQLite(config.Database)
	if err != nil {
		return config, nil, fmt.Errorf("open %s: %w", config.Database, err)
	}

	return config, db, nil
}

func parsePlayer(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid player id %q", arg)
	}

	return id, nil
}
