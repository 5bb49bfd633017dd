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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		expected Config
	}{
		{
			name:     "explicit",
			contents: "database: /tmp/t.db\nmax-repairs: 3\nseed: 99\n",
			expected: Config{Database: "/tmp/t.db", MaxRepairs: 3, Seed: 99},
		},
		{
			name:     "default_database",
			contents: "max-repairs: 10\n",
			expected: Config{Database: DatabaseFile, MaxRepairs: 10},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			config, err := LoadConfig(writeConfig(t, test.contents))
			require.NoError(t, err)
			assert.Equal(t, test.expected, config)
		})
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"missing", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") }},
		{"malformed", func(t *testing.T) string { return writeConfig(t, "seed: [") }},
		{"negative_repairs", func(t *testing.T) string { return writeConfig(t, "database: x.db\nmax-repairs: -1\n") }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := LoadConfig(test.path(t))
			assert.Error(t, err)
		})
	}
}

func TestBaseConfigFile(t *testing.T) {
	var config Config
	require.NoError(t, yaml.Unmarshal(BaseConfigFile, &config))
	assert.Equal(t, Config{MaxRepairs: 64}, config)
}

func TestConfig_Rand(t *testing.T) {
	a := Config{Seed: 5}.Rand()
	b := Config{Seed: 5}.Rand()
	assert.Equal(t, a.Int63(), b.Int63())

	engine := Config{MaxRepairs: 7, Seed: 5}.Engine()
	assert.Equal(t, 7, engine.MaxRepairs)
	assert.NotNil(t, engine.Rand)
}
