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
package util

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNaturalCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected int
	}{
		{"equal", "Player 1", "Player 1", 0},
		{"numbers_by_value", "Player 2", "Player 10", -1},
		{"numbers_by_value_reversed", "Player 10", "Player 2", 1},
		{"text", "Alice", "Bob", -1},
		{"prefix_first", "Player", "Player 1", -1},
		{"leading_zero", "a02", "a2", 1},
		{"number_before_text", "1a", "a", -1},
		{"empty", "", "a", -1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, NaturalCompare(test.a, test.b))
		})
	}
}

func TestNaturalCompare_Sort(t *testing.T) {
	names := []string{"Player 10", "Player 9", "Noether", "Player 1", "Hilbert"}
	slices.SortFunc(names, NaturalCompare)
	assert.Equal(t, []string{"Hilbert", "Noether", "Player 1", "Player 9", "Player 10"}, names)
}
