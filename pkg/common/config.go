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
package common

import (
	_ "embed"
	"fmt"
	"math/rand"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"laptudirm.com/x/swiss/pkg/swiss"
)

//go:embed config.yaml
var BaseConfigFile []byte

// Config is the contents of the configuration file.
type Config struct {
	Database   string `yaml:"database"`
	MaxRepairs int    `yaml:"max-repairs"`
	Seed       int64  `yaml:"seed"`
}

// LoadConfig reads the configuration file at the given path. An empty path
// loads the file in the data directory, creating it with the defaults if
// it does not exist yet.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		TryMkdir(Directory)
		TryCreate(ConfigFile, BaseConfigFile)
		path = ConfigFile
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(file, &config); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	if config.Database == "" {
		TryMkdir(Directory)
		config.Database = DatabaseFile
	}

	if config.MaxRepairs < 0 {
		return Config{}, fmt.Errorf("load config %s: negative max-repairs %d", path, config.MaxRepairs)
	}

	return config, nil
}

// Rand returns the random source described by the seed.
func (config Config) Rand() *rand.Rand {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return rand.New(rand.NewSource(seed))
}

// Engine returns the pairing engine's configuration.
func (config Config) Engine() swiss.Config {
	return swiss.Config{
		MaxRepairs: config.MaxRepairs,
		Rand:       config.Rand(),
	}
}
