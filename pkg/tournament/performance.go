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
package tournament

import "math"

// Performance estimates a player's Elo rating difference to the field from
// their wins and losses, along with the bounds of its 95% confidence
// interval. A perfect or winless record has no finite estimate and is
// reported as 0.
func Performance(wins, losses int) (lower, elo, upper float64) {
	N := float64(wins + losses) // total number of matches

	if N == 0 {
		return 0, 0, 0
	}

	// measured win probability, which is also the mean score
	w := float64(wins) / N

	// standard deviation of the mean score
	sigma := math.Sqrt(w*(1-w)) / math.Sqrt(N)

	lower = w + phiInv(0.025)*sigma
	upper = w + phiInv(0.975)*sigma

	return scoreToElo(lower), scoreToElo(w), scoreToElo(upper)
}

func scoreToElo(x float64) float64 {
	switch {
	case x <= 0, x >= 1:
		return 0

	default:
		return -400 * math.Log10(1/x-1)
	}
}

func phiInv(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}
