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
	"math/rand"
	"slices"
)

// FirstRound pairs up the players randomly, for when no matches have been
// played yet. If the field is odd, the first player in the shuffled order
// gets the bye.
func FirstRound(standings []Standing, rng *rand.Rand) []Pairing {
	shuffled := slices.Clone(standings)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	pairings := make([]Pairing, 0, (len(shuffled)+1)/2)
	if len(shuffled)%2 != 0 {
		pairings = append(pairings, byePairing(shuffled[0].ID, shuffled[0].Name))
		shuffled = shuffled[1:]
	}

	for i := 0; i+1 < len(shuffled); i += 2 {
		home, away := shuffled[i], shuffled[i+1]
		pairings = append(pairings, Pairing{
			ID1: home.ID, Name1: home.Name,
			ID2: away.ID, Name2: away.Name,
		})
	}

	return pairings
}
