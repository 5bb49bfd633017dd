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

import "errors"

var (
	// ErrIncompleteRound is returned when not every player has played
	// the same number of matches, i.e. results are still missing.
	ErrIncompleteRound = errors.New("swiss: previous round is incomplete")

	// ErrTournamentDecided is returned when a single player is alone at
	// the top of the standings and no further rounds are needed.
	ErrTournamentDecided = errors.New("swiss: tournament already decided")

	// ErrNoByeCandidate is returned when the field is odd but every
	// player has already been given a bye.
	ErrNoByeCandidate = errors.New("swiss: no player is eligible for a bye")

	// ErrUnresolvablePairing is returned when no rematch-free pairing
	// could be found after repairing the win groups.
	ErrUnresolvablePairing = errors.New("swiss: no pairing without rematches exists")

	// ErrNoBucketToBorrow is an invariant violation: an odd win group had
	// no higher group left to borrow a player from.
	ErrNoBucketToBorrow = errors.New("swiss: no win group to borrow from")

	ErrOddGroup = errors.New("swiss: cannot match an odd number of players")
)
