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

// SelectBye chooses the player who sits out the round in an odd field: the
// player with the fewest wins who has not yet had a bye. Ties go to the
// player who comes first in the standings.
func SelectBye(standings []Standing, directory Directory) (int, error) {
	var (
		chosen int
		wins   int
		found  bool
	)

	for _, standing := range standings {
		hadBye, err := directory.HasHadBye(standing.ID)
		if err != nil {
			return 0, err
		}

		if hadBye {
			continue
		}

		if !found || standing.Wins < wins {
			chosen, wins, found = standing.ID, standing.Wins, true
		}
	}

	if !found {
		return 0, ErrNoByeCandidate
	}

	return chosen, nil
}
