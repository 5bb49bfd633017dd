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
package swiss

import (
	"fmt"
	"iter"
	"slices"
)

// Pair is an encounter between two players, identified by their ids.
type Pair [2]int

// Matchings lazily enumerates every perfect matching of an even sized list
// of players, i.e. every way of splitting them up into disjoint pairs.
//
// The first remaining player is always paired with one of the other
// remaining players, trying them in their original order, and the rest of
// the list is matched recursively. The choice of partner at every step is
// kept in an odometer, the last step's choice turning the fastest:
//
//	[1 2 3 4] -> [(1 2) (3 4)], [(1 3) (2 4)], [(1 4) (2 3)]
//
// No matching is generated before it is asked for by Next.
type Matchings struct {
	players []int
	choices []int
	current []Pair

	started bool
	done    bool
}

// NewMatchings creates a new enumerator of the given players' matchings.
func NewMatchings(players []int) (*Matchings, error) {
	if len(players)%2 != 0 {
		return nil, fmt.Errorf("%w: %d players", ErrOddGroup, len(players))
	}

	return &Matchings{
		players: slices.Clone(players),
		choices: make([]int, len(players)/2),
	}, nil
}

// Next advances the enumerator to the next matching, which is then
// available through Pairs. It returns false once every matching has been
// enumerated.
func (matchings *Matchings) Next() bool {
	if matchings.done {
		return false
	}

	if matchings.started && !matchings.advance() {
		matchings.done = true
		matchings.current = nil
		return false
	}

	matchings.started = true
	matchings.current = matchings.build()
	return true
}

// Pairs returns the current matching.
func (matchings *Matchings) Pairs() []Pair {
	return matchings.current
}

// Reset rewinds the enumerator to before the first matching.
func (matchings *Matchings) Reset() {
	clear(matchings.choices)
	matchings.current = nil
	matchings.started = false
	matchings.done = false
}

// All returns the enumeration as an iterator, starting from the first
// matching. Breaking out of the loop stops the enumeration.
func (matchings *Matchings) All() iter.Seq[[]Pair] {
	return func(yield func([]Pair) bool) {
		matchings.Reset()
		for matchings.Next() {
			if !yield(matchings.Pairs()) {
				return
			}
		}
	}
}

// advance turns the choice odometer by one. Step i chooses between the
// n - 2i - 1 players left after the step's first player.
func (matchings *Matchings) advance() bool {
	for i := len(matchings.choices) - 1; i >= 0; i-- {
		matchings.choices[i]++
		if matchings.choices[i] < len(matchings.players)-2*i-1 {
			return true
		}

		matchings.choices[i] = 0
	}

	// every digit overflowed: enumeration complete
	return false
}

// build constructs the matching described by the current choices.
func (matchings *Matchings) build() []Pair {
	remaining := slices.Clone(matchings.players)
	pairs := make([]Pair, 0, len(matchings.choices))

	for _, choice := range matchings.choices {
		partner := choice + 1
		pairs = append(pairs, Pair{remaining[0], remaining[partner]})

		remaining = slices.Delete(remaining, partner, partner+1)[1:]
	}

	return pairs
}

// CountMatchings returns the number of perfect matchings of n players,
// which is (n-1)!! for an even n and zero for an odd one.
func CountMatchings(n int) int {
	if n%2 != 0 {
		return 0
	}

	count := 1
	for k := n - 1; k > 1; k -= 2 {
		count *= k
	}

	return count
}
