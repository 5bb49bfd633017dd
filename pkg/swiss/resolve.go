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
	"github.com/sirupsen/logrus"
)

// resolved is the failed group of a successful resolution.
const resolved = -1

// resolution is the outcome of an attempt to match every win group. Either
// all the groups were matched and pairings holds the result, or failed is
// the index of the first group which could not be matched.
type resolution struct {
	pairings []Pairing
	failed   int
}

func (result resolution) ok() bool {
	return result.failed == resolved
}

// resolve matches every group, lowest first, accepting for each group the
// first enumerated matching which contains no rematches. It stops at the
// first group for which no such matching exists.
func (round *round) resolve() (resolution, error) {
	var pairings []Pairing
	for i, bucket := range round.groups.buckets {
		pairs, found, err := round.resolveGroup(bucket)
		if err != nil {
			return resolution{}, err
		}

		if !found {
			logrus.WithFields(logrus.Fields{
				"group":   i,
				"players": bucket,
			}).Debug("No matching without rematches in win group")
			return resolution{failed: i}, nil
		}

		for _, pair := range pairs {
			pairing, err := round.name(pair)
			if err != nil {
				return resolution{}, err
			}

			pairings = append(pairings, pairing)
		}
	}

	return resolution{pairings: pairings, failed: resolved}, nil
}

// resolveGroup finds the first matching of the group without a rematch.
func (round *round) resolveGroup(bucket []int) ([]Pair, bool, error) {
	matchings, err := NewMatchings(bucket)
	if err != nil {
		return nil, false, err
	}

	tried := 0
	for matchings.Next() {
		tried++

		pairs := matchings.Pairs()
		rematch, err := round.containsRematch(pairs)
		if err != nil {
			return nil, false, err
		}

		if !rematch {
			logrus.WithFields(logrus.Fields{
				"players": bucket,
				"tried":   tried,
			}).Trace("Found matching for win group")
			return pairs, true, nil
		}
	}

	return nil, false, nil
}

func (round *round) containsRematch(pairs []Pair) (bool, error) {
	for _, pair := range pairs {
		played, err := round.history.HasPlayedBefore(pair[0], pair[1])
		if err != nil || played {
			return played, err
		}
	}

	return false, nil
}

func (round *round) name(pair Pair) (Pairing, error) {
	name1, err := round.directory.NameOf(pair[0])
	if err != nil {
		return Pairing{}, err
	}

	name2, err := round.directory.NameOf(pair[1])
	if err != nil {
		return Pairing{}, err
	}

	return Pairing{
		ID1: pair[0], Name1: name1,
		ID2: pair[1], Name2: name2,
	}, nil
}

// playedCache remembers the answers of a History for a single round, since
// the same pairs are looked up again and again by the enumeration.
type playedCache struct {
	history History
	played  map[Pair]bool
}

func newPlayedCache(history History) *playedCache {
	return &playedCache{
		history: history,
		played:  make(map[Pair]bool),
	}
}

func (cache *playedCache) HasPlayedBefore(player1, player2 int) (bool, error) {
	key := Pair{min(player1, player2), max(player1, player2)}
	if played, found := cache.played[key]; found {
		return played, nil
	}

	played, err := cache.history.HasPlayedBefore(player1, player2)
	if err != nil {
		return false, err
	}

	cache.played[key] = played
	return played, nil
}
